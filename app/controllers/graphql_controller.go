package controllers

import (
	"encoding/json"
	"net/http"

	"blogql/app/graphql"
)

// GraphQLController handles HTTP requests for the GraphQL endpoint
type GraphQLController struct {
	executor *graphql.Executor
}

// NewGraphQLController creates a new GraphQLController
func NewGraphQLController(executor *graphql.Executor) *GraphQLController {
	return &GraphQLController{executor: executor}
}

// Query handles POST /graphql. Engine failures stay inside the GraphQL
// response envelope; only malformed requests get an HTTP error status.
func (gc *GraphQLController) Query(w http.ResponseWriter, r *http.Request) {
	var req graphql.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		gc.sendError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.Query == "" {
		gc.sendError(w, "Missing query", http.StatusBadRequest)
		return
	}

	gc.sendJSON(w, gc.executor.Execute(&req))
}

// Health handles GET /healthz
func (gc *GraphQLController) Health(w http.ResponseWriter, r *http.Request) {
	gc.sendJSON(w, map[string]string{"status": "ok"})
}

// Helper methods for consistent response handling

func (gc *GraphQLController) sendJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(data)
}

func (gc *GraphQLController) sendError(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
