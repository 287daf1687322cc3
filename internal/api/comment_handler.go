package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/phrazzld/taskboard-api/internal/api/shared"
	"github.com/phrazzld/taskboard-api/internal/service"
)

// CommentHandler handles task comment API requests.
type CommentHandler struct {
	commentService *service.CommentService
	validator      *validator.Validate
}

// NewCommentHandler creates a new CommentHandler with the given dependencies.
func NewCommentHandler(commentService *service.CommentService) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
		validator:      validator.New(),
	}
}

// ListComments handles GET /tasks/{taskID}/comments, returning comments in
// ascending creation order.
func (h *CommentHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	_, taskID, ok := handleUserAndPathUUID(w, r, "taskID")
	if !ok {
		return
	}

	comments, err := h.commentService.ListCommentsForTask(r.Context(), taskID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	resp := make([]CommentResponse, 0, len(comments))
	for _, c := range comments {
		resp = append(resp, newCommentResponse(c))
	}
	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// CreateComment handles POST /tasks/{taskID}/comments.
func (h *CommentHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	user, taskID, ok := handleUserAndPathUUID(w, r, "taskID")
	if !ok {
		return
	}

	var req CreateCommentRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	comment, err := h.commentService.AddComment(r.Context(), taskID, user.ID, req.Content)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, newCommentResponse(comment))
}
