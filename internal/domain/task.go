package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Well-known task status values. The status column is free-form text and
// callers may supply any string; these constants cover what the bundled
// frontend sends.
const (
	TaskStatusNotStarted = "NOT_STARTED"
	TaskStatusInProgress = "IN_PROGRESS"
	TaskStatusDone       = "DONE"
)

// Common validation errors for Task
var (
	ErrEmptyTaskID        = errors.New("task ID cannot be empty")
	ErrEmptyTaskContent   = errors.New("task content cannot be empty")
	ErrEmptyTaskBoardID   = errors.New("task board ID cannot be empty")
	ErrEmptyTaskCreatorID = errors.New("task creator ID cannot be empty")
)

// Task is a unit of work on a board. Board and creator references are
// immutable after creation; content, status, and assignee are mutable.
type Task struct {
	ID               uuid.UUID  `json:"id"`
	Content          string     `json:"content"`
	Status           string     `json:"status"`
	AssignedMemberID *uuid.UUID `json:"assigned_member_id,omitempty"`
	BoardID          uuid.UUID  `json:"board_id"`
	CreatorID        uuid.UUID  `json:"creator_id"`
	CreatedAt        time.Time  `json:"created_at"`
}

// NewTask creates a new Task on the given board. An empty status defaults
// to NOT_STARTED; any non-empty status string is accepted as-is.
func NewTask(
	boardID, creatorID uuid.UUID,
	content string,
	assignedMemberID *uuid.UUID,
	status string,
) (*Task, error) {
	if status == "" {
		status = TaskStatusNotStarted
	}

	task := &Task{
		ID:               uuid.New(),
		Content:          content,
		Status:           status,
		AssignedMemberID: assignedMemberID,
		BoardID:          boardID,
		CreatorID:        creatorID,
		CreatedAt:        time.Now().UTC(),
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
func (t *Task) Validate() error {
	if t.ID == uuid.Nil {
		return ErrEmptyTaskID
	}
	if t.Content == "" {
		return ErrEmptyTaskContent
	}
	if t.BoardID == uuid.Nil {
		return ErrEmptyTaskBoardID
	}
	if t.CreatorID == uuid.Nil {
		return ErrEmptyTaskCreatorID
	}
	return nil
}

// IsAssignedTo reports whether the task is currently assigned to the
// given user.
func (t *Task) IsAssignedTo(userID uuid.UUID) bool {
	return t.AssignedMemberID != nil && *t.AssignedMemberID == userID
}
