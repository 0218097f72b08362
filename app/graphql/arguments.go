package graphql

import (
	"encoding/json"
	"fmt"

	"blogql/app/models"
)

// Argument maps come out of the parsed request already coerced by the
// schema; these helpers shape them into the engine's typed inputs.
// Update inputs only set the fields the client actually supplied, which
// is what makes an empty patch a no-op.

func stringArg(args map[string]interface{}, name string) string {
	s, _ := args[name].(string)
	return s
}

func coerceInt(v interface{}) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		return int(n), nil
	case json.Number:
		i, err := n.Int64()
		return int(i), err
	}
	return 0, &models.ValidationError{Reason: fmt.Sprintf("expected an Int, got %T", v)}
}

func inputObject(v interface{}) (map[string]interface{}, error) {
	m, ok := v.(map[string]interface{})
	if !ok {
		return nil, &models.ValidationError{Reason: "data must be an input object"}
	}
	return m, nil
}

func decodeCreateUserInput(v interface{}) (*models.CreateUserInput, error) {
	m, err := inputObject(v)
	if err != nil {
		return nil, err
	}
	input := &models.CreateUserInput{
		Name:  stringArg(m, "name"),
		Email: stringArg(m, "email"),
	}
	if age, ok := m["age"]; ok && age != nil {
		n, err := coerceInt(age)
		if err != nil {
			return nil, err
		}
		input.Age = &n
	}
	return input, nil
}

func decodeUpdateUserInput(v interface{}) (*models.UpdateUserInput, error) {
	m, err := inputObject(v)
	if err != nil {
		return nil, err
	}
	input := &models.UpdateUserInput{}
	if name, ok := m["name"].(string); ok {
		input.Name = &name
	}
	if email, ok := m["email"].(string); ok {
		input.Email = &email
	}
	if age, ok := m["age"]; ok && age != nil {
		n, err := coerceInt(age)
		if err != nil {
			return nil, err
		}
		input.Age = &n
	}
	return input, nil
}

func decodeCreatePostInput(v interface{}) (*models.CreatePostInput, error) {
	m, err := inputObject(v)
	if err != nil {
		return nil, err
	}
	published, _ := m["published"].(bool)
	return &models.CreatePostInput{
		Title:     stringArg(m, "title"),
		Body:      stringArg(m, "body"),
		Published: published,
		Author:    stringArg(m, "author"),
	}, nil
}

func decodeUpdatePostInput(v interface{}) (*models.UpdatePostInput, error) {
	m, err := inputObject(v)
	if err != nil {
		return nil, err
	}
	input := &models.UpdatePostInput{}
	if title, ok := m["title"].(string); ok {
		input.Title = &title
	}
	if body, ok := m["body"].(string); ok {
		input.Body = &body
	}
	if published, ok := m["published"].(bool); ok {
		input.Published = &published
	}
	return input, nil
}

func decodeCreateCommentInput(v interface{}) (*models.CreateCommentInput, error) {
	m, err := inputObject(v)
	if err != nil {
		return nil, err
	}
	return &models.CreateCommentInput{
		Text:   stringArg(m, "text"),
		Author: stringArg(m, "author"),
		Post:   stringArg(m, "post"),
	}, nil
}

func decodeUpdateCommentInput(v interface{}) (*models.UpdateCommentInput, error) {
	m, err := inputObject(v)
	if err != nil {
		return nil, err
	}
	input := &models.UpdateCommentInput{}
	if text, ok := m["text"].(string); ok {
		input.Text = &text
	}
	return input, nil
}
