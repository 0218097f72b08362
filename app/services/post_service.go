package services

import (
	"errors"
	"strings"

	"blogql/app/models"
	"blogql/app/repositories"
)

// PostService enforces post-level integrity rules: the author must exist
// at creation time, and deleting a post sweeps away its comments.
type PostService struct {
	userRepo    repositories.UserRepository
	postRepo    repositories.PostRepository
	commentRepo repositories.CommentRepository
}

// NewPostService creates a new PostService
func NewPostService(userRepo repositories.UserRepository, postRepo repositories.PostRepository, commentRepo repositories.CommentRepository) *PostService {
	return &PostService{
		userRepo:    userRepo,
		postRepo:    postRepo,
		commentRepo: commentRepo,
	}
}

// Create inserts a new post after checking that the author exists.
func (s *PostService) Create(input *models.CreatePostInput) (*models.Post, error) {
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

	post := &models.Post{
		Title:     input.Title,
		Body:      input.Body,
		Published: input.Published,
		Author:    input.Author,
	}
	if err := s.postRepo.Create(post); err != nil {
		return nil, err
	}
	return post, nil
}

// Update applies a partial patch to title, body and published. The author
// is never re-validated or changed.
func (s *PostService) Update(id string, input *models.UpdatePostInput) (*models.Post, error) {
	if err := input.Validate(); err != nil {
		return nil, &models.ValidationError{Reason: err.Error()}
	}

	post, err := s.postRepo.GetByID(id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, &models.NotFoundError{Entity: "post", ID: id}
	}
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		post.Title = *input.Title
	}
	if input.Body != nil {
		post.Body = *input.Body
	}
	if input.Published != nil {
		post.Published = *input.Published
	}

	if err := s.postRepo.Update(post); err != nil {
		return nil, err
	}
	return post, nil
}

// Delete removes the post and every comment attached to it.
func (s *PostService) Delete(id string) (*models.Post, error) {
	post, err := s.postRepo.GetByID(id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, &models.NotFoundError{Entity: "post", ID: id}
	}
	if err != nil {
		return nil, err
	}

	if err := s.postRepo.Delete(id); err != nil {
		return nil, err
	}
	if err := s.commentRepo.DeleteByPost(id); err != nil {
		return nil, err
	}

	return post, nil
}

// List returns all posts, or those whose title contains the query as a
// case-insensitive substring. Results follow insertion order.
func (s *PostService) List(query string) ([]*models.Post, error) {
	posts, err := s.postRepo.List()
	if err != nil {
		return nil, err
	}
	if query == "" {
		return posts, nil
	}

	q := strings.ToLower(query)
	filtered := make([]*models.Post, 0, len(posts))
	for _, post := range posts {
		if strings.Contains(strings.ToLower(post.Title), q) {
			filtered = append(filtered, post)
		}
	}
	return filtered, nil
}
