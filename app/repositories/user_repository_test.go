package repositories

import (
	"fmt"
	"testing"

	"blogql/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewBadgerUserRepository(db)

	t.Run("create assigns an id", func(t *testing.T) {
		user := &models.User{Name: "Ann", Email: "a@example.com"}
		require.NoError(t, repo.Create(user))
		assert.NotEmpty(t, user.ID)
	})

	t.Run("create keeps a preset id", func(t *testing.T) {
		user := &models.User{ID: "fixed", Name: "Bob", Email: "b@example.com"}
		require.NoError(t, repo.Create(user))
		assert.Equal(t, "fixed", user.ID)
	})

	t.Run("get by id", func(t *testing.T) {
		user, err := repo.GetByID("fixed")
		require.NoError(t, err)
		assert.Equal(t, "Bob", user.Name)
		assert.Equal(t, "b@example.com", user.Email)
	})

	t.Run("get by unknown id", func(t *testing.T) {
		_, err := repo.GetByID("nope")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("find by email", func(t *testing.T) {
		user, err := repo.FindByEmail("a@example.com")
		require.NoError(t, err)
		assert.Equal(t, "Ann", user.Name)

		_, err = repo.FindByEmail("missing@example.com")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("update replaces in place", func(t *testing.T) {
		user, err := repo.GetByID("fixed")
		require.NoError(t, err)
		user.Name = "Robert"
		require.NoError(t, repo.Update(user))

		updated, err := repo.GetByID("fixed")
		require.NoError(t, err)
		assert.Equal(t, "Robert", updated.Name)

		users, err := repo.List()
		require.NoError(t, err)
		require.Len(t, users, 2)
		assert.Equal(t, "Robert", users[1].Name, "update must not move the record")
	})

	t.Run("update unknown id", func(t *testing.T) {
		err := repo.Update(&models.User{ID: "nope", Name: "X", Email: "x@example.com"})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Delete("fixed"))
		_, err := repo.GetByID("fixed")
		assert.ErrorIs(t, err, ErrNotFound)

		assert.ErrorIs(t, repo.Delete("fixed"), ErrNotFound)
	})
}

func TestUserRepositoryListOrder(t *testing.T) {
	db := newTestDB(t)
	repo := NewBadgerUserRepository(db)

	// More than ten records so unpadded keys would mis-sort.
	for i := 0; i < 15; i++ {
		user := &models.User{
			ID:    fmt.Sprintf("u%02d", i),
			Name:  fmt.Sprintf("User %d", i),
			Email: fmt.Sprintf("u%d@example.com", i),
		}
		require.NoError(t, repo.Create(user))
	}

	users, err := repo.List()
	require.NoError(t, err)
	require.Len(t, users, 15)
	for i, user := range users {
		assert.Equal(t, fmt.Sprintf("u%02d", i), user.ID)
	}
}
