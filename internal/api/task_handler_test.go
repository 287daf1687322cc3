package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/taskboard-api/internal/api"
	"github.com/phrazzld/taskboard-api/internal/api/shared"
	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/mocks"
	"github.com/phrazzld/taskboard-api/internal/service"
)

type taskHandlerFixture struct {
	router *chi.Mux
	tasks  *mocks.MockTaskStore

	owner    *domain.User
	creator  *domain.User
	assignee *domain.User
	board    *domain.Board
	task     *domain.Task
}

func newTaskHandlerFixture(t *testing.T) *taskHandlerFixture {
	t.Helper()

	users := mocks.NewMockUserStore()
	boards := mocks.NewMockBoardStore()
	tasks := mocks.NewMockTaskStore()
	emitter := mocks.NewMockEmitter()

	boards.Users = users.Users
	users.Memberships = boards.Memberships

	owner := users.AddUser("alice")
	creator := users.AddUser("bob")
	assignee := users.AddUser("carol")

	board := boards.AddBoard("launch plan", owner.ID)
	for _, u := range []*domain.User{creator, assignee} {
		require.NoError(t, boards.AddMember(context.Background(), &domain.BoardMember{
			ID:      uuid.New(),
			BoardID: board.ID,
			UserID:  u.ID,
		}))
	}

	task := tasks.AddTask(board.ID, creator.ID, "ship the release")
	task.AssignedMemberID = &assignee.ID

	taskService, err := service.NewTaskService(tasks, boards, users, emitter, discardLogger())
	require.NoError(t, err)

	handler := api.NewTaskHandler(taskService)

	router := chi.NewRouter()
	router.Route("/tasks", func(r chi.Router) {
		r.Patch("/{taskID}", handler.UpdateTask)
		r.Delete("/{taskID}", handler.DeleteTask)
	})

	return &taskHandlerFixture{
		router:   router,
		tasks:    tasks,
		owner:    owner,
		creator:  creator,
		assignee: assignee,
		board:    board,
		task:     task,
	}
}

func (f *taskHandlerFixture) patch(t *testing.T, user *domain.User, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPatch, "/tasks/"+f.task.ID.String(),
		bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	req = req.WithContext(context.WithValue(req.Context(), shared.UserContextKey, user))

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func TestTaskHandler_UpdateTask_FieldSelection(t *testing.T) {
	t.Parallel()

	t.Run("content update by creator", func(t *testing.T) {
		t.Parallel()
		f := newTaskHandlerFixture(t)

		rec := f.patch(t, f.creator, `{"content": "ship the hotfix"}`)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp api.TaskResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "ship the hotfix", resp.Content)
	})

	t.Run("status update by assignee", func(t *testing.T) {
		t.Parallel()
		f := newTaskHandlerFixture(t)

		rec := f.patch(t, f.assignee, `{"status": "IN_PROGRESS"}`)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp api.TaskResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "IN_PROGRESS", resp.Status)
	})

	t.Run("null assignedMemberId clears the assignment", func(t *testing.T) {
		t.Parallel()
		f := newTaskHandlerFixture(t)

		rec := f.patch(t, f.creator, `{"assignedMemberId": null}`)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp api.TaskResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Nil(t, resp.AssignedMemberID)
		assert.Nil(t, f.tasks.Tasks[f.task.ID].AssignedMemberID)
	})

	t.Run("empty body is rejected", func(t *testing.T) {
		t.Parallel()
		f := newTaskHandlerFixture(t)

		rec := f.patch(t, f.creator, `{}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("two fields are rejected", func(t *testing.T) {
		t.Parallel()
		f := newTaskHandlerFixture(t)

		rec := f.patch(t, f.creator, `{"content": "x", "status": "DONE"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("non-string content is rejected", func(t *testing.T) {
		t.Parallel()
		f := newTaskHandlerFixture(t)

		rec := f.patch(t, f.creator, `{"content": 42}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed assignee uuid is rejected", func(t *testing.T) {
		t.Parallel()
		f := newTaskHandlerFixture(t)

		rec := f.patch(t, f.creator, `{"assignedMemberId": "not-a-uuid"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("assignee cannot edit content", func(t *testing.T) {
		t.Parallel()
		f := newTaskHandlerFixture(t)

		rec := f.patch(t, f.assignee, `{"content": "rewritten"}`)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestTaskHandler_DeleteTask(t *testing.T) {
	t.Parallel()

	t.Run("owner deletes task", func(t *testing.T) {
		t.Parallel()
		f := newTaskHandlerFixture(t)

		req := httptest.NewRequest(http.MethodDelete, "/tasks/"+f.task.ID.String(), nil)
		req = req.WithContext(context.WithValue(req.Context(), shared.UserContextKey, f.owner))
		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.NotContains(t, f.tasks.Tasks, f.task.ID)
	})

	t.Run("assignee cannot delete", func(t *testing.T) {
		t.Parallel()
		f := newTaskHandlerFixture(t)

		req := httptest.NewRequest(http.MethodDelete, "/tasks/"+f.task.ID.String(), nil)
		req = req.WithContext(context.WithValue(req.Context(), shared.UserContextKey, f.assignee))
		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
