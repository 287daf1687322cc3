package api

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/phrazzld/taskboard-api/internal/api/shared"
	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/service"
)

// UserHandler handles user lookup API requests.
type UserHandler struct {
	userService *service.UserService
}

// NewUserHandler creates a new UserHandler with the given dependencies.
func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// ListAvailable handles GET /users/available?boardId=, returning users that
// can still be added to the board.
func (h *UserHandler) ListAvailable(w http.ResponseWriter, r *http.Request) {
	if _, ok := getUserFromContext(r); !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized, "")
		return
	}

	boardParam := r.URL.Query().Get("boardId")
	if boardParam == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "boardId query parameter is required")
		return
	}
	boardID, err := uuid.Parse(boardParam)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "boardId has invalid format")
		return
	}

	users, err := h.userService.ListAvailableForBoard(r.Context(), boardID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	resp := make([]UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, UserResponse{ID: u.ID, Username: u.Username})
	}
	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}
