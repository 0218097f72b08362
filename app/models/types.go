package models

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// User represents a registered author. Email is unique across all users.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Age   *int   `json:"age,omitempty" validate:"omitempty,gte=0"`
}

// Post represents a blog post. Author holds the id of an existing User.
type Post struct {
	ID        string `json:"id"`
	Title     string `json:"title" validate:"required"`
	Body      string `json:"body" validate:"required"`
	Published bool   `json:"published"`
	Author    string `json:"author" validate:"required"`
}

// Comment represents a comment on a published post. Author holds a User id,
// Post holds a Post id.
type Comment struct {
	ID     string `json:"id"`
	Text   string `json:"text" validate:"required"`
	Author string `json:"author" validate:"required"`
	Post   string `json:"post" validate:"required"`
}
