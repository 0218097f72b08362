// Package resolvers answers relationship lookups against current store
// state. Each method is a pure read invoked once per requested field;
// nothing is cached between calls, so repeated lookups re-scan the
// collection.
package resolvers

import (
	"errors"
	"fmt"

	"blogql/app/models"
	"blogql/app/repositories"
)

// Resolver resolves the six relationship fields between users, posts and
// comments.
type Resolver struct {
	userRepo    repositories.UserRepository
	postRepo    repositories.PostRepository
	commentRepo repositories.CommentRepository
}

// NewResolver creates a new Resolver
func NewResolver(userRepo repositories.UserRepository, postRepo repositories.PostRepository, commentRepo repositories.CommentRepository) *Resolver {
	return &Resolver{
		userRepo:    userRepo,
		postRepo:    postRepo,
		commentRepo: commentRepo,
	}
}

// PostAuthor resolves the user who wrote the post. Cascade rules guarantee
// the author exists; a miss here is an integrity fault, not a not-found.
func (r *Resolver) PostAuthor(post *models.Post) (*models.User, error) {
	user, err := r.userRepo.GetByID(post.Author)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("%w: post %s references missing user %s", models.ErrIntegrity, post.ID, post.Author)
	}
	return user, err
}

// PostComments resolves the comments attached to the post, in insertion
// order.
func (r *Resolver) PostComments(post *models.Post) ([]*models.Comment, error) {
	return r.commentRepo.ListByPost(post.ID)
}

// UserPosts resolves the posts authored by the user, in insertion order.
func (r *Resolver) UserPosts(user *models.User) ([]*models.Post, error) {
	return r.postRepo.ListByAuthor(user.ID)
}

// UserComments resolves the comments written by the user, in insertion
// order.
func (r *Resolver) UserComments(user *models.User) ([]*models.Comment, error) {
	return r.commentRepo.ListByAuthor(user.ID)
}

// CommentAuthor resolves the user who wrote the comment.
func (r *Resolver) CommentAuthor(comment *models.Comment) (*models.User, error) {
	user, err := r.userRepo.GetByID(comment.Author)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("%w: comment %s references missing user %s", models.ErrIntegrity, comment.ID, comment.Author)
	}
	return user, err
}

// CommentPost resolves the post the comment is attached to.
func (r *Resolver) CommentPost(comment *models.Comment) (*models.Post, error) {
	post, err := r.postRepo.GetByID(comment.Post)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("%w: comment %s references missing post %s", models.ErrIntegrity, comment.ID, comment.Post)
	}
	return post, err
}
