package cli

import (
	"errors"
	"fmt"

	"github.com/mathalama/review-universities/internal/client/client"
	"github.com/mathalama/review-universities/internal/client/services"
	"github.com/mathalama/review-universities/internal/client/session"
	"github.com/mathalama/review-universities/internal/common"
)

type usageError string

func (u usageError) Error() string {
	return "usage: " + string(u)
}

// idArg parses the single numeric argument of commands like "show <id>".
func idArg(args []string, usage string) (int64, error) {
	if len(args) != 1 {
		return 0, usageError(usage)
	}
	return common.ParseID(args[0])
}

// userMessage turns a command error into the line shown to the user.
func userMessage(err error) string {
	var apiErr *client.APIError
	var usage usageError

	switch {
	case errors.As(err, &usage):
		return usage.Error()
	case errors.Is(err, session.ErrResolving):
		return "the session is still being restored, try again in a moment"
	case errors.Is(err, session.ErrNotAuthenticated):
		return "please log in first"
	case errors.Is(err, session.ErrForbidden):
		return "this command requires the administrator role"
	case errors.Is(err, common.ErrorIncorrectID):
		return "identifiers are positive numbers"
	case errors.Is(err, services.ErrInvalidInput):
		return err.Error()
	case errors.Is(err, client.ErrUnavailable):
		return "server unavailable, try again later"
	case errors.As(err, &apiErr):
		if apiErr.Message != "" && len(apiErr.Fields) == 0 {
			return apiErr.Message
		}
		return apiErr.Error()
	}
	return fmt.Sprint(err)
}
