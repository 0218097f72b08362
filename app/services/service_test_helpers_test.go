package services

import (
	"testing"

	"blogql/app/models"
	"blogql/app/repositories"

	"github.com/stretchr/testify/require"
)

type testEnv struct {
	users    *UserService
	posts    *PostService
	comments *CommentService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db, err := repositories.Open()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	userRepo := repositories.NewBadgerUserRepository(db)
	postRepo := repositories.NewBadgerPostRepository(db)
	commentRepo := repositories.NewBadgerCommentRepository(db)

	return &testEnv{
		users:    NewUserService(userRepo, postRepo, commentRepo),
		posts:    NewPostService(userRepo, postRepo, commentRepo),
		comments: NewCommentService(userRepo, postRepo, commentRepo),
	}
}

func (env *testEnv) mustCreateUser(t *testing.T, name, email string) *models.User {
	t.Helper()
	user, err := env.users.Create(&models.CreateUserInput{Name: name, Email: email})
	require.NoError(t, err)
	return user
}

func (env *testEnv) mustCreatePost(t *testing.T, title string, published bool, author string) *models.Post {
	t.Helper()
	post, err := env.posts.Create(&models.CreatePostInput{
		Title:     title,
		Body:      "body",
		Published: published,
		Author:    author,
	})
	require.NoError(t, err)
	return post
}

func (env *testEnv) mustCreateComment(t *testing.T, text, author, post string) *models.Comment {
	t.Helper()
	comment, err := env.comments.Create(&models.CreateCommentInput{
		Text:   text,
		Author: author,
		Post:   post,
	})
	require.NoError(t, err)
	return comment
}
