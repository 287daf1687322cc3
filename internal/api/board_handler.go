package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/phrazzld/taskboard-api/internal/api/shared"
	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/service"
)

// BoardHandler handles board and membership API requests.
type BoardHandler struct {
	boardService *service.BoardService
	validator    *validator.Validate
}

// NewBoardHandler creates a new BoardHandler with the given dependencies.
func NewBoardHandler(boardService *service.BoardService) *BoardHandler {
	return &BoardHandler{
		boardService: boardService,
		validator:    validator.New(),
	}
}

// ListBoards handles GET /boards, returning the boards the caller owns or
// is a member of.
func (h *BoardHandler) ListBoards(w http.ResponseWriter, r *http.Request) {
	user, ok := getUserFromContext(r)
	if !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized, "")
		return
	}

	boards, err := h.boardService.ListBoardsForUser(r.Context(), user.ID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	resp := make([]BoardResponse, 0, len(boards))
	for _, b := range boards {
		resp = append(resp, newBoardResponse(b))
	}
	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// CreateBoard handles POST /boards.
func (h *BoardHandler) CreateBoard(w http.ResponseWriter, r *http.Request) {
	user, ok := getUserFromContext(r)
	if !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized, "")
		return
	}

	var req CreateBoardRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	board, err := h.boardService.CreateBoard(r.Context(), user.ID, req.Name)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, newBoardResponse(board))
}

// UpdateBoard handles PATCH /boards/{boardID}, renaming the board.
func (h *BoardHandler) UpdateBoard(w http.ResponseWriter, r *http.Request) {
	user, boardID, ok := handleUserAndPathUUID(w, r, "boardID")
	if !ok {
		return
	}

	var req UpdateBoardRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	board, err := h.boardService.UpdateBoardName(r.Context(), boardID, user.ID, req.Name)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, newBoardResponse(board))
}

// DeleteBoard handles DELETE /boards/{boardID}.
func (h *BoardHandler) DeleteBoard(w http.ResponseWriter, r *http.Request) {
	user, boardID, ok := handleUserAndPathUUID(w, r, "boardID")
	if !ok {
		return
	}

	if err := h.boardService.DeleteBoard(r.Context(), boardID, user.ID); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusNoContent, nil)
}

// ListMembers handles GET /boards/{boardID}/members. Only usernames are
// exposed.
func (h *BoardHandler) ListMembers(w http.ResponseWriter, r *http.Request) {
	_, boardID, ok := handleUserAndPathUUID(w, r, "boardID")
	if !ok {
		return
	}

	members, err := h.boardService.ListMembersForBoard(r.Context(), boardID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	resp := make([]MemberResponse, 0, len(members))
	for _, m := range members {
		resp = append(resp, MemberResponse{Username: m.Username})
	}
	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// AddMember handles POST /boards/{boardID}/members.
func (h *BoardHandler) AddMember(w http.ResponseWriter, r *http.Request) {
	user, boardID, ok := handleUserAndPathUUID(w, r, "boardID")
	if !ok {
		return
	}

	var req AddMemberRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	if _, err := h.boardService.AddMember(r.Context(), boardID, user.ID, req.MemberID); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, nil)
}

// RemoveMember handles DELETE /boards/{boardID}/members/{memberID}.
// Removing a user who is not a member succeeds without effect.
func (h *BoardHandler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	user, boardID, ok := handleUserAndPathUUID(w, r, "boardID")
	if !ok {
		return
	}

	memberID, err := getPathUUID(r, "memberID")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.boardService.RemoveMember(r.Context(), boardID, user.ID, memberID); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusNoContent, nil)
}

// ListTasks handles GET /boards/{boardID}/tasks.
func (h *BoardHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	_, boardID, ok := handleUserAndPathUUID(w, r, "boardID")
	if !ok {
		return
	}

	tasks, err := h.boardService.ListTasksForBoard(r.Context(), boardID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	resp := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		resp = append(resp, newTaskResponse(t))
	}
	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}
