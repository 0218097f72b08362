// Package graphql is the request-dispatching collaborator in front of the
// engine. It parses a client request into a field-selection tree,
// validates it against the schema, invokes the query and mutation
// operations, and calls a relationship resolver only for the nested
// fields the client actually requested.
package graphql

import (
	"fmt"

	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"

	"blogql/app/resolvers"
	"blogql/app/services"
)

// Request is the transport-level GraphQL request envelope.
type Request struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName,omitempty"`
	Variables     map[string]interface{} `json:"variables,omitempty"`
}

// Response is the GraphQL response envelope.
type Response struct {
	Data   map[string]interface{} `json:"data,omitempty"`
	Errors gqlerror.List          `json:"errors,omitempty"`
}

// Executor executes GraphQL requests against the engine. It holds no
// request state; every execution re-reads the store.
type Executor struct {
	users    *services.UserService
	posts    *services.PostService
	comments *services.CommentService
	resolver *resolvers.Resolver
}

// NewExecutor creates a new Executor
func NewExecutor(users *services.UserService, posts *services.PostService, comments *services.CommentService, resolver *resolvers.Resolver) *Executor {
	return &Executor{
		users:    users,
		posts:    posts,
		comments: comments,
		resolver: resolver,
	}
}

// Execute runs one request to completion. Top-level fields execute in
// order; a failing field yields a null entry and an error with the
// engine's error code in the extensions.
func (e *Executor) Execute(req *Request) *Response {
	doc, errs := gqlparser.LoadQuery(schema, req.Query)
	if len(errs) > 0 {
		return &Response{Errors: errs}
	}

	op := doc.Operations.ForName(req.OperationName)
	if op == nil {
		return &Response{Errors: gqlerror.List{gqlerror.Errorf("operation %q not found", req.OperationName)}}
	}
	if op.Operation == ast.Subscription {
		return &Response{Errors: gqlerror.List{gqlerror.Errorf("subscriptions are not supported")}}
	}

	data := map[string]interface{}{}
	var errors gqlerror.List
	for _, field := range collectFields(doc, op.SelectionSet) {
		var (
			value interface{}
			err   error
		)
		if op.Operation == ast.Mutation {
			value, err = e.executeMutation(doc, field, req.Variables)
		} else {
			value, err = e.executeQuery(doc, field, req.Variables)
		}
		if err != nil {
			errors = append(errors, toGQLError(field, err))
			data[aliasOf(field)] = nil
			continue
		}
		data[aliasOf(field)] = value
	}

	return &Response{Data: data, Errors: errors}
}

func (e *Executor) executeQuery(doc *ast.QueryDocument, field *ast.Field, vars map[string]interface{}) (interface{}, error) {
	args := field.ArgumentMap(vars)

	switch field.Name {
	case "users":
		users, err := e.users.List(stringArg(args, "query"))
		if err != nil {
			return nil, err
		}
		return e.renderUsers(doc, users, field.SelectionSet, vars)
	case "posts":
		posts, err := e.posts.List(stringArg(args, "query"))
		if err != nil {
			return nil, err
		}
		return e.renderPosts(doc, posts, field.SelectionSet, vars)
	case "comments":
		comments, err := e.comments.List()
		if err != nil {
			return nil, err
		}
		return e.renderComments(doc, comments, field.SelectionSet, vars)
	}
	return nil, fmt.Errorf("unknown query field %q", field.Name)
}

func (e *Executor) executeMutation(doc *ast.QueryDocument, field *ast.Field, vars map[string]interface{}) (interface{}, error) {
	args := field.ArgumentMap(vars)

	switch field.Name {
	case "createUser":
		input, err := decodeCreateUserInput(args["data"])
		if err != nil {
			return nil, err
		}
		user, err := e.users.Create(input)
		if err != nil {
			return nil, err
		}
		return e.renderUser(doc, user, field.SelectionSet, vars)
	case "updateUser":
		input, err := decodeUpdateUserInput(args["data"])
		if err != nil {
			return nil, err
		}
		user, err := e.users.Update(stringArg(args, "id"), input)
		if err != nil {
			return nil, err
		}
		return e.renderUser(doc, user, field.SelectionSet, vars)
	case "deleteUser":
		user, err := e.users.Delete(stringArg(args, "id"))
		if err != nil {
			return nil, err
		}
		return e.renderUser(doc, user, field.SelectionSet, vars)
	case "createPost":
		input, err := decodeCreatePostInput(args["data"])
		if err != nil {
			return nil, err
		}
		post, err := e.posts.Create(input)
		if err != nil {
			return nil, err
		}
		return e.renderPost(doc, post, field.SelectionSet, vars)
	case "updatePost":
		input, err := decodeUpdatePostInput(args["data"])
		if err != nil {
			return nil, err
		}
		post, err := e.posts.Update(stringArg(args, "id"), input)
		if err != nil {
			return nil, err
		}
		return e.renderPost(doc, post, field.SelectionSet, vars)
	case "deletePost":
		post, err := e.posts.Delete(stringArg(args, "id"))
		if err != nil {
			return nil, err
		}
		return e.renderPost(doc, post, field.SelectionSet, vars)
	case "createComment":
		input, err := decodeCreateCommentInput(args["data"])
		if err != nil {
			return nil, err
		}
		comment, err := e.comments.Create(input)
		if err != nil {
			return nil, err
		}
		return e.renderComment(doc, comment, field.SelectionSet, vars)
	case "updateComment":
		input, err := decodeUpdateCommentInput(args["data"])
		if err != nil {
			return nil, err
		}
		comment, err := e.comments.Update(stringArg(args, "id"), input)
		if err != nil {
			return nil, err
		}
		return e.renderComment(doc, comment, field.SelectionSet, vars)
	case "deleteComment":
		comment, err := e.comments.Delete(stringArg(args, "id"))
		if err != nil {
			return nil, err
		}
		return e.renderComment(doc, comment, field.SelectionSet, vars)
	}
	return nil, fmt.Errorf("unknown mutation field %q", field.Name)
}

// collectFields flattens a selection set into concrete fields, expanding
// fragment spreads and inline fragments.
func collectFields(doc *ast.QueryDocument, sel ast.SelectionSet) []*ast.Field {
	var fields []*ast.Field
	for _, s := range sel {
		switch s := s.(type) {
		case *ast.Field:
			fields = append(fields, s)
		case *ast.InlineFragment:
			fields = append(fields, collectFields(doc, s.SelectionSet)...)
		case *ast.FragmentSpread:
			if def := doc.Fragments.ForName(s.Name); def != nil {
				fields = append(fields, collectFields(doc, def.SelectionSet)...)
			}
		}
	}
	return fields
}

func aliasOf(field *ast.Field) string {
	if field.Alias != "" {
		return field.Alias
	}
	return field.Name
}
