package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"blogql/app/graphql"
	"blogql/app/repositories"
	"blogql/app/resolvers"
	"blogql/app/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	db, err := repositories.Open()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, repositories.Seed(db))

	userRepo := repositories.NewBadgerUserRepository(db)
	postRepo := repositories.NewBadgerPostRepository(db)
	commentRepo := repositories.NewBadgerCommentRepository(db)

	executor := graphql.NewExecutor(
		services.NewUserService(userRepo, postRepo, commentRepo),
		services.NewPostService(userRepo, postRepo, commentRepo),
		services.NewCommentService(userRepo, postRepo, commentRepo),
		resolvers.NewResolver(userRepo, postRepo, commentRepo),
	)

	server := httptest.NewServer(SetupRoutes(executor))
	t.Cleanup(server.Close)
	return server
}

func postGraphQL(t *testing.T, server *httptest.Server, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := http.Post(server.URL+"/graphql", "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	var decoded map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp, decoded
}

func TestGraphQLEndpoint(t *testing.T) {
	server := newTestServer(t)

	t.Run("query", func(t *testing.T) {
		resp, body := postGraphQL(t, server, graphql.Request{
			Query: `{ users(query: "ann") { name email } }`,
		})
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

		users := body["data"].(map[string]interface{})["users"].([]interface{})
		require.Len(t, users, 1)
		assert.Equal(t, "Ann", users[0].(map[string]interface{})["name"])
	})

	t.Run("mutation error stays in the envelope", func(t *testing.T) {
		resp, body := postGraphQL(t, server, graphql.Request{
			Query: `mutation { deleteUser(id: "nope") { id } }`,
		})
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		errs := body["errors"].([]interface{})
		require.Len(t, errs, 1)
		ext := errs[0].(map[string]interface{})["extensions"].(map[string]interface{})
		assert.Equal(t, graphql.CodeNotFound, ext["code"])
	})

	t.Run("invalid JSON", func(t *testing.T) {
		resp, err := http.Post(server.URL+"/graphql", "application/json", bytes.NewReader([]byte("{")))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("missing query", func(t *testing.T) {
		resp, _ := postGraphQL(t, server, graphql.Request{})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("wrong method", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/graphql")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	})
}

func TestHealthz(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
}
