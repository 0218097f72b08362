package services

import (
	"errors"

	"blogql/app/models"
	"blogql/app/repositories"
)

// CommentService enforces comment-level integrity rules. Beyond the
// author foreign key, the target post must exist and be published: an
// unpublished post may not receive comments.
type CommentService struct {
	userRepo    repositories.UserRepository
	postRepo    repositories.PostRepository
	commentRepo repositories.CommentRepository
}

// NewCommentService creates a new CommentService
func NewCommentService(userRepo repositories.UserRepository, postRepo repositories.PostRepository, commentRepo repositories.CommentRepository) *CommentService {
	return &CommentService{
		userRepo:    userRepo,
		postRepo:    postRepo,
		commentRepo: commentRepo,
	}
}

// Create inserts a new comment after checking the author and the target
// post. Commenting on an unpublished post is a content-policy violation,
// not a missing reference, so it surfaces as a ValidationError.
func (s *CommentService) Create(input *models.CreateCommentInput) (*models.Comment, error) {
	if err := input.Validate(); err != nil {
		return nil, &models.ValidationError{Reason: err.Error()}
	}

	_, err := s.userRepo.GetByID(input.Author)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, &models.NotFoundError{Entity: "author", ID: input.Author}
	}
	if err != nil {
		return nil, err
	}

	post, err := s.postRepo.GetByID(input.Post)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, &models.ValidationError{Reason: "post not found or not published"}
	}
	if err != nil {
		return nil, err
	}
	if !post.Published {
		return nil, &models.ValidationError{Reason: "post not found or not published"}
	}

	comment := &models.Comment{
		Text:   input.Text,
		Author: input.Author,
		Post:   input.Post,
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// Update applies a partial patch to the text. Relationship targets never
// change.
func (s *CommentService) Update(id string, input *models.UpdateCommentInput) (*models.Comment, error) {
	if err := input.Validate(); err != nil {
		return nil, &models.ValidationError{Reason: err.Error()}
	}

	comment, err := s.commentRepo.GetByID(id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, &models.NotFoundError{Entity: "comment", ID: id}
	}
	if err != nil {
		return nil, err
	}

	if input.Text != nil {
		comment.Text = *input.Text
	}

	if err := s.commentRepo.Update(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// Delete removes the comment. Nothing references comments, so there is no
// cascade.
func (s *CommentService) Delete(id string) (*models.Comment, error) {
	comment, err := s.commentRepo.GetByID(id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, &models.NotFoundError{Entity: "comment", ID: id}
	}
	if err != nil {
		return nil, err
	}

	if err := s.commentRepo.Delete(id); err != nil {
		return nil, err
	}
	return comment, nil
}

// List returns all comments in insertion order, unfiltered.
func (s *CommentService) List() ([]*models.Comment, error) {
	return s.commentRepo.List()
}
