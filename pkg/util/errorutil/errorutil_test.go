package errorutil

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserMessage(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		err      error
		expected string
	}{
		{name: "nil error", err: nil, expected: ""},
		{name: "backend message wins", err: NewRejected("Email already exists"), expected: "Email already exists"},
		{name: "empty backend message", err: NewRejected(""), expected: "No staff found."},
		{name: "not found", err: NewNotFound("staff", nil), expected: "No staff found."},
		{name: "validation", err: NewValidationError("Please fill in all fields", nil), expected: "Please fill in all fields"},
		{name: "transport", err: NewUnreachable(errors.New("dial tcp"), nil), expected: "Error fetching staff."},
		{name: "plain error", err: errors.New("boom"), expected: "Error fetching staff."},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, UserMessage(tc.err, "No staff found.", "Error fetching staff."))
		})
	}
}

func TestIsUnauthorized(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("list staff: %w", NewUnauthorized("session expired"))
	assert.True(t, IsUnauthorized(wrapped))
	assert.False(t, IsUnauthorized(NewRejected("nope")))
	assert.False(t, IsUnauthorized(errors.New("plain")))
}

func TestToDomainError(t *testing.T) {
	t.Parallel()

	de := ToDomainError(errors.New("boom"))
	assert.Equal(t, CodeInternal, de.Code)
	assert.Equal(t, http.StatusInternalServerError, de.HTTPStatus)

	unreachable := ToDomainError(NewUnreachable(errors.New("timeout"), map[string]any{"endpoint": "/bookings"}))
	assert.Equal(t, CodeUnreachable, unreachable.Code)
	assert.Equal(t, http.StatusBadGateway, unreachable.HTTPStatus)
	assert.Contains(t, unreachable.Error(), "timeout")
}
