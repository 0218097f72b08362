package graphql

import (
	"errors"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"

	"blogql/app/models"
)

// Error codes surfaced to clients in the error extensions.
const (
	CodeNotFound     = "NOT_FOUND"
	CodeConflict     = "CONFLICT"
	CodeBadUserInput = "BAD_USER_INPUT"
	CodeInternal     = "INTERNAL_ERROR"
)

// toGQLError translates an engine failure into a GraphQL error attached
// to the failing top-level field.
func toGQLError(field *ast.Field, err error) *gqlerror.Error {
	gqlErr := gqlerror.Errorf("%s", err.Error())
	gqlErr.Path = ast.Path{ast.PathName(aliasOf(field))}
	gqlErr.Extensions = map[string]interface{}{"code": codeFor(err)}
	return gqlErr
}

func codeFor(err error) string {
	var notFound *models.NotFoundError
	var conflict *models.ConflictError
	var validation *models.ValidationError

	switch {
	case errors.As(err, &notFound):
		return CodeNotFound
	case errors.As(err, &conflict):
		return CodeConflict
	case errors.As(err, &validation):
		return CodeBadUserInput
	}
	return CodeInternal
}
