package api_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phrazzld/taskboard-api/internal/api"
	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/service"
	"github.com/phrazzld/taskboard-api/internal/service/auth"
	"github.com/phrazzld/taskboard-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid token", auth.ErrInvalidToken, http.StatusUnauthorized},
		{"expired token", auth.ErrExpiredToken, http.StatusUnauthorized},
		{"missing token", auth.ErrMissingToken, http.StatusUnauthorized},
		{"no user in context", domain.ErrUnauthorized, http.StatusUnauthorized},
		{"forbidden", service.ErrForbidden, http.StatusForbidden},
		{
			"wrapped forbidden",
			fmt.Errorf("%w: user is not a member of the board", service.ErrForbidden),
			http.StatusForbidden,
		},
		{"board not found", store.ErrBoardNotFound, http.StatusNotFound},
		{"task not found", store.ErrTaskNotFound, http.StatusNotFound},
		{"user not found", store.ErrUserNotFound, http.StatusNotFound},
		{"username taken", store.ErrUsernameExists, http.StatusConflict},
		{"already a member", store.ErrMembershipExists, http.StatusConflict},
		{"empty board name", domain.ErrEmptyBoardName, http.StatusBadRequest},
		{"empty task content", domain.ErrEmptyTaskContent, http.StatusBadRequest},
		{"empty comment content", domain.ErrEmptyContent, http.StatusBadRequest},
		{"malformed id", domain.ErrInvalidID, http.StatusBadRequest},
		{"patch field count", service.ErrNothingToUpdate, http.StatusBadRequest},
		{"validation failure", domain.ErrValidation, http.StatusBadRequest},
		{"unknown error", assert.AnError, http.StatusInternalServerError},
		{"nil error", nil, http.StatusInternalServerError},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, api.MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"expired token", auth.ErrExpiredToken, "Token expired"},
		{"forbidden", service.ErrForbidden, "You do not have permission to perform this action"},
		{"board not found", store.ErrBoardNotFound, "Board not found"},
		{"username taken", store.ErrUsernameExists, "Username already exists"},
		{"already a member", store.ErrMembershipExists, "User is already a member of this board"},
		{"empty board name", domain.ErrEmptyBoardName, "Board name cannot be empty"},
		{
			"patch field count",
			service.ErrNothingToUpdate,
			"Request must include exactly one field to update",
		},
		{"unknown error", assert.AnError, "An unexpected error occurred"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, api.GetSafeErrorMessage(tc.err))
		})
	}

	t.Run("internal detail never leaks", func(t *testing.T) {
		t.Parallel()

		err := fmt.Errorf("pq: connection refused host=10.0.0.3")
		assert.NotContains(t, api.GetSafeErrorMessage(err), "10.0.0.3")
	})
}
