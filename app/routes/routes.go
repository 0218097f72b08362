package routes

import (
	"blogql/app/controllers"
	"blogql/app/graphql"
	"blogql/app/middleware"

	"github.com/gorilla/mux"
)

// SetupRoutes defines the application's routes and returns a router.
func SetupRoutes(executor *graphql.Executor) *mux.Router {
	router := mux.NewRouter()

	// Apply global middleware
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.ContentTypeJSON)
	router.Use(middleware.Serialize)

	graphqlController := controllers.NewGraphQLController(executor)

	router.HandleFunc("/graphql", graphqlController.Query).Methods("POST")
	router.HandleFunc("/healthz", graphqlController.Health).Methods("GET")

	return router
}
