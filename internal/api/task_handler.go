package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/phrazzld/taskboard-api/internal/api/shared"
	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/service"
)

// TaskHandler handles task API requests.
type TaskHandler struct {
	taskService *service.TaskService
	validator   *validator.Validate
}

// NewTaskHandler creates a new TaskHandler with the given dependencies.
func NewTaskHandler(taskService *service.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
		validator:   validator.New(),
	}
}

// CreateTask handles POST /boards/{boardID}/tasks.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	user, boardID, ok := handleUserAndPathUUID(w, r, "boardID")
	if !ok {
		return
	}

	var req CreateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	task, err := h.taskService.CreateTask(
		r.Context(),
		boardID,
		user.ID,
		req.Content,
		req.AssignedMemberID,
		req.Status,
	)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, newTaskResponse(task))
}

// UpdateTask handles PATCH /tasks/{taskID}. The request body must contain
// exactly one of content, status, or assignedMemberId; which field is
// present selects the operation and its authorization rule. An explicit
// null assignedMemberId clears the assignment.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	user, taskID, ok := handleUserAndPathUUID(w, r, "taskID")
	if !ok {
		return
	}

	body := make(map[string]any)
	if err := shared.DecodeJSON(r, &body); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	_, hasContent := body["content"]
	_, hasStatus := body["status"]
	_, hasAssignee := body["assignedMemberId"]
	fields := 0
	for _, present := range []bool{hasContent, hasStatus, hasAssignee} {
		if present {
			fields++
		}
	}
	if fields != 1 {
		HandleAPIError(w, r, service.ErrNothingToUpdate, "")
		return
	}

	var (
		task *domain.Task
		err  error
	)
	switch {
	case hasContent:
		content, ok := body["content"].(string)
		if !ok {
			shared.RespondWithError(w, r, http.StatusBadRequest, "content must be a string")
			return
		}
		task, err = h.taskService.UpdateTaskContent(r.Context(), taskID, user.ID, content)

	case hasStatus:
		status, ok := body["status"].(string)
		if !ok {
			shared.RespondWithError(w, r, http.StatusBadRequest, "status must be a string")
			return
		}
		task, err = h.taskService.UpdateTaskStatus(r.Context(), taskID, user.ID, status)

	case hasAssignee:
		assigneeID, parseErr := parseOptionalUUID(body["assignedMemberId"])
		if parseErr != nil {
			HandleAPIError(w, r, parseErr, "")
			return
		}
		task, err = h.taskService.UpdateTaskAssignee(r.Context(), taskID, user.ID, assigneeID)
	}
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, newTaskResponse(task))
}

// DeleteTask handles DELETE /tasks/{taskID}.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	user, taskID, ok := handleUserAndPathUUID(w, r, "taskID")
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(r.Context(), taskID, user.ID); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusNoContent, nil)
}

// parseOptionalUUID interprets a JSON value as a nullable UUID. JSON null
// yields a nil pointer.
func parseOptionalUUID(v any) (*uuid.UUID, error) {
	if v == nil {
		return nil, nil
	}
	s, ok := v.(string)
	if !ok {
		return nil, domain.NewValidationError("assignedMemberId", "must be a UUID string or null", domain.ErrInvalidID)
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil, domain.NewValidationError("assignedMemberId", "has invalid format", domain.ErrInvalidID)
	}
	return &id, nil
}
