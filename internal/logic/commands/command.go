// Package commands implements the CakeCollate operations. Each command is a
// plain value constructed from already-parsed arguments; Execute validates it
// against the model, mutates through the model, and reports a Result.
package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cakecollate/internal/model"
	"cakecollate/pkg/domain"
)

// Command is one executable user operation.
type Command interface {
	// Word is the command word a user types to invoke the command.
	Word() string
	Execute(ctx context.Context, m model.Model) (Result, error)
}

// Result is what a command reports back to the presentation layer.
type Result struct {
	Feedback string
	ShowHelp bool
	Exit     bool
}

// NewResult returns a Result carrying only feedback.
func NewResult(feedback string) Result { return Result{Feedback: feedback} }

// Error is the only error Execute returns. Message is shown to the user; Err,
// when set, is the underlying cause.
type Error struct {
	Message string
	Err     error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

func fail(message string, cause error) error {
	return &Error{Message: message, Err: cause}
}

// failf translates a model error, using duplicate for identity collisions.
func failf(err error, duplicate string) error {
	var rv domain.RuleViolationError
	switch {
	case domain.IsDuplicate(err):
		return fail(duplicate, err)
	case errors.As(err, &rv):
		return fail(rv.Error(), err)
	default:
		return fail(err.Error(), err)
	}
}

// invalidMessage returns the constraint message of a value error, or the
// error text for anything else.
func invalidMessage(err error) string {
	var iv *domain.InvalidValueError
	if errors.As(err, &iv) {
		return iv.Message
	}
	return err.Error()
}

func listOrders(orders []domain.Order) string {
	lines := make([]string, 0, len(orders))
	for i, o := range orders {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, o))
	}
	return strings.Join(lines, "\n")
}
