package services

import (
	"errors"
	"fmt"

	"github.com/yukikurage/task-manager-api/internal/database"
)

var (
	ErrNotFound           = errors.New("resource not found")
	ErrConflict           = errors.New("resource conflict")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// Error carries a client-facing message together with one of the sentinel
// kinds above, so callers can branch with errors.Is.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func newError(kind error, format string, args ...any) error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func notFound(entity string, id uint64) error {
	return newError(ErrNotFound, "%s with id %d not found", entity, id)
}

func hasTasks(entity string, id uint64) error {
	return newError(ErrConflict, "%s with id %d can't be deleted, it has tasks", entity, id)
}

// classifyWrite turns a store error from an insert or update into a service
// error. Unrecognized errors are wrapped with op.
func classifyWrite(err error, op, entity, field string, value any) error {
	switch {
	case database.IsUniqueViolation(err):
		return newError(ErrConflict, "%s with %s %v already exists", entity, field, value)
	case database.IsForeignKeyViolation(err):
		return newError(ErrConflict, "%s references a record that does not exist", entity)
	default:
		return fmt.Errorf("failed to %s: %w", op, err)
	}
}

// classifyDelete turns a store error from a delete into a service error.
func classifyDelete(err error, entity string, id uint64) error {
	switch {
	case database.IsNotFound(err):
		return notFound(entity, id)
	case database.IsForeignKeyViolation(err):
		return hasTasks(entity, id)
	default:
		return fmt.Errorf("failed to delete %s: %w", entity, err)
	}
}

// find loads a row and maps a missing row to NotFound.
func find[T any](entity string, id uint64, load func() (*T, error)) (*T, error) {
	row, err := load()
	if err != nil {
		if database.IsNotFound(err) {
			return nil, notFound(entity, id)
		}
		return nil, fmt.Errorf("failed to find %s: %w", entity, err)
	}
	return row, nil
}
