package services

import (
	"errors"
	"strings"

	"blogql/app/models"
	"blogql/app/repositories"
)

// UserService enforces user-level integrity rules: email uniqueness on
// create and update, and the full cascade on delete.
type UserService struct {
	userRepo    repositories.UserRepository
	postRepo    repositories.PostRepository
	commentRepo repositories.CommentRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo repositories.UserRepository, postRepo repositories.PostRepository, commentRepo repositories.CommentRepository) *UserService {
	return &UserService{
		userRepo:    userRepo,
		postRepo:    postRepo,
		commentRepo: commentRepo,
	}
}

// Create registers a new user after checking that the email is free.
func (s *UserService) Create(input *models.CreateUserInput) (*models.User, error) {
	if err := input.Validate(); err != nil {
		return nil, &models.ValidationError{Reason: err.Error()}
	}

	_, err := s.userRepo.FindByEmail(input.Email)
	if err == nil {
		return nil, &models.ConflictError{Field: "email", Value: input.Email}
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	user := &models.User{
		Name:  input.Name,
		Email: input.Email,
		Age:   input.Age,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Update applies a partial patch. Fields absent from the input keep their
// prior values; an email change is rejected if it collides with a
// different user's email.
func (s *UserService) Update(id string, input *models.UpdateUserInput) (*models.User, error) {
	if err := input.Validate(); err != nil {
		return nil, &models.ValidationError{Reason: err.Error()}
	}

	user, err := s.userRepo.GetByID(id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, &models.NotFoundError{Entity: "user", ID: id}
	}
	if err != nil {
		return nil, err
	}

	if input.Email != nil {
		existing, err := s.userRepo.FindByEmail(*input.Email)
		if err == nil && existing.ID != id {
			return nil, &models.ConflictError{Field: "email", Value: *input.Email}
		}
		if err != nil && !errors.Is(err, repositories.ErrNotFound) {
			return nil, err
		}
		user.Email = *input.Email
	}
	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Age != nil {
		user.Age = input.Age
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes the user and everything that references them: every post
// authored by the user (with that post's comments), then every remaining
// comment written by the user. After the initial existence check the
// cascade is a pure removal sweep, so it cannot stop part-way through.
func (s *UserService) Delete(id string) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, &models.NotFoundError{Entity: "user", ID: id}
	}
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.Delete(id); err != nil {
		return nil, err
	}

	posts, err := s.postRepo.ListByAuthor(id)
	if err != nil {
		return nil, err
	}
	for _, post := range posts {
		if err := s.commentRepo.DeleteByPost(post.ID); err != nil {
			return nil, err
		}
		if err := s.postRepo.Delete(post.ID); err != nil {
			return nil, err
		}
	}

	if err := s.commentRepo.DeleteByAuthor(id); err != nil {
		return nil, err
	}

	return user, nil
}

// List returns all users, or those whose name contains the query as a
// case-insensitive substring. Results follow insertion order.
func (s *UserService) List(query string) ([]*models.User, error) {
	users, err := s.userRepo.List()
	if err != nil {
		return nil, err
	}
	if query == "" {
		return users, nil
	}

	q := strings.ToLower(query)
	filtered := make([]*models.User, 0, len(users))
	for _, user := range users {
		if strings.Contains(strings.ToLower(user.Name), q) {
			filtered = append(filtered, user)
		}
	}
	return filtered, nil
}
