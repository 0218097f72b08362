package models

// Shaped mutation arguments. Creates carry every required field; updates
// use pointer fields so an absent field leaves the record untouched.

// CreateUserInput carries the arguments for creating a user.
type CreateUserInput struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Age   *int   `json:"age" validate:"omitempty,gte=0"`
}

// Validate checks the input against its declared shape.
func (in *CreateUserInput) Validate() error {
	return validate.Struct(in)
}

// UpdateUserInput is a partial patch for a user.
type UpdateUserInput struct {
	Name  *string `json:"name" validate:"omitempty,min=1"`
	Email *string `json:"email" validate:"omitempty,email"`
	Age   *int    `json:"age" validate:"omitempty,gte=0"`
}

// Validate checks the input against its declared shape.
func (in *UpdateUserInput) Validate() error {
	return validate.Struct(in)
}

// CreatePostInput carries the arguments for creating a post.
type CreatePostInput struct {
	Title     string `json:"title" validate:"required"`
	Body      string `json:"body" validate:"required"`
	Published bool   `json:"published"`
	Author    string `json:"author" validate:"required"`
}

// Validate checks the input against its declared shape.
func (in *CreatePostInput) Validate() error {
	return validate.Struct(in)
}

// UpdatePostInput is a partial patch for a post. The author of a post
// never changes.
type UpdatePostInput struct {
	Title     *string `json:"title" validate:"omitempty,min=1"`
	Body      *string `json:"body" validate:"omitempty,min=1"`
	Published *bool   `json:"published"`
}

// Validate checks the input against its declared shape.
func (in *UpdatePostInput) Validate() error {
	return validate.Struct(in)
}

// CreateCommentInput carries the arguments for creating a comment.
type CreateCommentInput struct {
	Text   string `json:"text" validate:"required"`
	Author string `json:"author" validate:"required"`
	Post   string `json:"post" validate:"required"`
}

// Validate checks the input against its declared shape.
func (in *CreateCommentInput) Validate() error {
	return validate.Struct(in)
}

// UpdateCommentInput is a partial patch for a comment. Only the text is
// mutable.
type UpdateCommentInput struct {
	Text *string `json:"text" validate:"omitempty,min=1"`
}

// Validate checks the input against its declared shape.
func (in *UpdateCommentInput) Validate() error {
	return validate.Struct(in)
}
