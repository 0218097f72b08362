package services

import (
	"testing"

	"blogql/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserServiceCreate(t *testing.T) {
	env := newTestEnv(t)

	t.Run("assigns an id", func(t *testing.T) {
		user := env.mustCreateUser(t, "Ann", "a@example.com")
		assert.NotEmpty(t, user.ID)
		assert.Equal(t, "Ann", user.Name)
	})

	t.Run("rejects a duplicate email", func(t *testing.T) {
		_, err := env.users.Create(&models.CreateUserInput{Name: "Impostor", Email: "a@example.com"})
		var conflict *models.ConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, "email", conflict.Field)

		users, err := env.users.List("")
		require.NoError(t, err)
		assert.Len(t, users, 1, "failed create must not insert")
	})

	t.Run("rejects a malformed email", func(t *testing.T) {
		_, err := env.users.Create(&models.CreateUserInput{Name: "X", Email: "not-an-email"})
		var validation *models.ValidationError
		assert.ErrorAs(t, err, &validation)
	})
}

func TestUserServiceUpdate(t *testing.T) {
	env := newTestEnv(t)
	ann := env.mustCreateUser(t, "Ann", "a@example.com")
	env.mustCreateUser(t, "Bob", "b@example.com")

	t.Run("patches only supplied fields", func(t *testing.T) {
		name := "Anne"
		updated, err := env.users.Update(ann.ID, &models.UpdateUserInput{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, "Anne", updated.Name)
		assert.Equal(t, "a@example.com", updated.Email, "email must be untouched")
	})

	t.Run("empty patch is a no-op", func(t *testing.T) {
		before, err := env.users.List("")
		require.NoError(t, err)

		_, err = env.users.Update(ann.ID, &models.UpdateUserInput{})
		require.NoError(t, err)

		after, err := env.users.List("")
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("rejects another user's email", func(t *testing.T) {
		email := "b@example.com"
		_, err := env.users.Update(ann.ID, &models.UpdateUserInput{Email: &email})
		var conflict *models.ConflictError
		assert.ErrorAs(t, err, &conflict)
	})

	t.Run("accepts the user's own email", func(t *testing.T) {
		email := "a@example.com"
		_, err := env.users.Update(ann.ID, &models.UpdateUserInput{Email: &email})
		assert.NoError(t, err)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := env.users.Update("nope", &models.UpdateUserInput{})
		var notFound *models.NotFoundError
		assert.ErrorAs(t, err, &notFound)
	})
}

func TestUserServiceDeleteCascades(t *testing.T) {
	env := newTestEnv(t)
	ann := env.mustCreateUser(t, "Ann", "a@x.com")
	bob := env.mustCreateUser(t, "Bob", "b@x.com")

	annPost := env.mustCreatePost(t, "T", true, ann.ID)
	bobPost := env.mustCreatePost(t, "Bob's", true, bob.ID)

	env.mustCreateComment(t, "hi", ann.ID, annPost.ID)
	env.mustCreateComment(t, "from bob", bob.ID, annPost.ID)
	env.mustCreateComment(t, "ann elsewhere", ann.ID, bobPost.ID)
	keep := env.mustCreateComment(t, "untouched", bob.ID, bobPost.ID)

	deleted, err := env.users.Delete(ann.ID)
	require.NoError(t, err)
	assert.Equal(t, ann.ID, deleted.ID)

	// No post authored by Ann and no comment referencing her or her posts
	// may survive.
	posts, err := env.posts.List("")
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, bobPost.ID, posts[0].ID)

	comments, err := env.comments.List()
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, keep.ID, comments[0].ID)
	for _, c := range comments {
		assert.NotEqual(t, ann.ID, c.Author)
		assert.NotEqual(t, annPost.ID, c.Post)
	}

	t.Run("delete is not repeatable", func(t *testing.T) {
		_, err := env.users.Delete(ann.ID)
		var notFound *models.NotFoundError
		assert.ErrorAs(t, err, &notFound)
	})
}

func TestUserServiceDeleteSoleUser(t *testing.T) {
	// One user, one post, one comment; deleting the user empties both
	// dependent collections.
	env := newTestEnv(t)
	ann := env.mustCreateUser(t, "Ann", "a@x.com")
	post := env.mustCreatePost(t, "T", true, ann.ID)
	env.mustCreateComment(t, "hi", ann.ID, post.ID)

	_, err := env.users.Delete(ann.ID)
	require.NoError(t, err)

	posts, err := env.posts.List("")
	require.NoError(t, err)
	assert.Empty(t, posts)

	comments, err := env.comments.List()
	require.NoError(t, err)
	assert.Empty(t, comments)
}

func TestUserServiceList(t *testing.T) {
	env := newTestEnv(t)
	env.mustCreateUser(t, "Ann", "a@example.com")
	env.mustCreateUser(t, "Bob", "b@example.com")
	env.mustCreateUser(t, "Annabel", "c@example.com")

	t.Run("no query returns everyone", func(t *testing.T) {
		users, err := env.users.List("")
		require.NoError(t, err)
		assert.Len(t, users, 3)
	})

	t.Run("case-insensitive substring match", func(t *testing.T) {
		users, err := env.users.List("ann")
		require.NoError(t, err)
		require.Len(t, users, 2)
		assert.Equal(t, "Ann", users[0].Name)
		assert.Equal(t, "Annabel", users[1].Name)
	})

	t.Run("no match", func(t *testing.T) {
		users, err := env.users.List("zzz")
		require.NoError(t, err)
		assert.Empty(t, users)
	})
}
