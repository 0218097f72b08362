package graphql

import (
	"github.com/vektah/gqlparser/v2/ast"

	"blogql/app/models"
)

// Rendering walks the requested selection set and builds the response
// value field by field. Relationship fields call into the resolver, so a
// relationship is only ever computed when the client asked for it.

func (e *Executor) renderUser(doc *ast.QueryDocument, user *models.User, sel ast.SelectionSet, vars map[string]interface{}) (map[string]interface{}, error) {
	out := map[string]interface{}{}
	for _, field := range collectFields(doc, sel) {
		switch field.Name {
		case "id":
			out[aliasOf(field)] = user.ID
		case "name":
			out[aliasOf(field)] = user.Name
		case "email":
			out[aliasOf(field)] = user.Email
		case "age":
			if user.Age != nil {
				out[aliasOf(field)] = *user.Age
			} else {
				out[aliasOf(field)] = nil
			}
		case "posts":
			posts, err := e.resolver.UserPosts(user)
			if err != nil {
				return nil, err
			}
			rendered, err := e.renderPosts(doc, posts, field.SelectionSet, vars)
			if err != nil {
				return nil, err
			}
			out[aliasOf(field)] = rendered
		case "comments":
			comments, err := e.resolver.UserComments(user)
			if err != nil {
				return nil, err
			}
			rendered, err := e.renderComments(doc, comments, field.SelectionSet, vars)
			if err != nil {
				return nil, err
			}
			out[aliasOf(field)] = rendered
		case "__typename":
			out[aliasOf(field)] = "User"
		}
	}
	return out, nil
}

func (e *Executor) renderUsers(doc *ast.QueryDocument, users []*models.User, sel ast.SelectionSet, vars map[string]interface{}) ([]interface{}, error) {
	out := make([]interface{}, 0, len(users))
	for _, user := range users {
		rendered, err := e.renderUser(doc, user, sel, vars)
		if err != nil {
			return nil, err
		}
		out = append(out, rendered)
	}
	return out, nil
}

func (e *Executor) renderPost(doc *ast.QueryDocument, post *models.Post, sel ast.SelectionSet, vars map[string]interface{}) (map[string]interface{}, error) {
	out := map[string]interface{}{}
	for _, field := range collectFields(doc, sel) {
		switch field.Name {
		case "id":
			out[aliasOf(field)] = post.ID
		case "title":
			out[aliasOf(field)] = post.Title
		case "body":
			out[aliasOf(field)] = post.Body
		case "published":
			out[aliasOf(field)] = post.Published
		case "author":
			author, err := e.resolver.PostAuthor(post)
			if err != nil {
				return nil, err
			}
			rendered, err := e.renderUser(doc, author, field.SelectionSet, vars)
			if err != nil {
				return nil, err
			}
			out[aliasOf(field)] = rendered
		case "comments":
			comments, err := e.resolver.PostComments(post)
			if err != nil {
				return nil, err
			}
			rendered, err := e.renderComments(doc, comments, field.SelectionSet, vars)
			if err != nil {
				return nil, err
			}
			out[aliasOf(field)] = rendered
		case "__typename":
			out[aliasOf(field)] = "Post"
		}
	}
	return out, nil
}

func (e *Executor) renderPosts(doc *ast.QueryDocument, posts []*models.Post, sel ast.SelectionSet, vars map[string]interface{}) ([]interface{}, error) {
	out := make([]interface{}, 0, len(posts))
	for _, post := range posts {
		rendered, err := e.renderPost(doc, post, sel, vars)
		if err != nil {
			return nil, err
		}
		out = append(out, rendered)
	}
	return out, nil
}

func (e *Executor) renderComment(doc *ast.QueryDocument, comment *models.Comment, sel ast.SelectionSet, vars map[string]interface{}) (map[string]interface{}, error) {
	out := map[string]interface{}{}
	for _, field := range collectFields(doc, sel) {
		switch field.Name {
		case "id":
			out[aliasOf(field)] = comment.ID
		case "text":
			out[aliasOf(field)] = comment.Text
		case "author":
			author, err := e.resolver.CommentAuthor(comment)
			if err != nil {
				return nil, err
			}
			rendered, err := e.renderUser(doc, author, field.SelectionSet, vars)
			if err != nil {
				return nil, err
			}
			out[aliasOf(field)] = rendered
		case "post":
			post, err := e.resolver.CommentPost(comment)
			if err != nil {
				return nil, err
			}
			rendered, err := e.renderPost(doc, post, field.SelectionSet, vars)
			if err != nil {
				return nil, err
			}
			out[aliasOf(field)] = rendered
		case "__typename":
			out[aliasOf(field)] = "Comment"
		}
	}
	return out, nil
}

func (e *Executor) renderComments(doc *ast.QueryDocument, comments []*models.Comment, sel ast.SelectionSet, vars map[string]interface{}) ([]interface{}, error) {
	out := make([]interface{}, 0, len(comments))
	for _, comment := range comments {
		rendered, err := e.renderComment(doc, comment, sel, vars)
		if err != nil {
			return nil, err
		}
		out = append(out, rendered)
	}
	return out, nil
}
