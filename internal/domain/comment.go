package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for Comment
var (
	ErrEmptyCommentID     = errors.New("comment ID cannot be empty")
	ErrEmptyCommentTaskID = errors.New("comment task ID cannot be empty")
	ErrEmptyCommentUserID = errors.New("comment user ID cannot be empty")
)

// Comment is an append-only note on a task. Comments are never updated or
// deleted individually; they disappear only when their task is deleted.
// CreatedAt is kept as epoch milliseconds to match the wire format the
// frontend expects.
type Comment struct {
	ID        uuid.UUID `json:"id"`
	TaskID    uuid.UUID `json:"task_id"`
	UserID    uuid.UUID `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt int64     `json:"created_at"`
}

// NewComment creates a new Comment with a server-assigned creation
// timestamp. Returns an error if validation fails.
func NewComment(taskID, userID uuid.UUID, content string) (*Comment, error) {
	comment := &Comment{
		ID:        uuid.New(),
		TaskID:    taskID,
		UserID:    userID,
		Content:   content,
		CreatedAt: time.Now().UTC().UnixMilli(),
	}

	if err := comment.Validate(); err != nil {
		return nil, err
	}

	return comment, nil
}

// Validate checks if the Comment has valid data.
func (c *Comment) Validate() error {
	if c.ID == uuid.Nil {
		return ErrEmptyCommentID
	}
	if c.TaskID == uuid.Nil {
		return ErrEmptyCommentTaskID
	}
	if c.UserID == uuid.Nil {
		return ErrEmptyCommentUserID
	}
	if c.Content == "" {
		return ErrEmptyContent
	}
	return nil
}
