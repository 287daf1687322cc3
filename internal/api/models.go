package api

import (
	"github.com/google/uuid"
	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/store"
)

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=1,max=64"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=1"`
}

// AuthResponse defines the successful response for the login endpoint.
type AuthResponse struct {
	Token    string    `json:"token"`
	Username string    `json:"username"`
	UserID   uuid.UUID `json:"user_id"`
}

// UserResponse is the public representation of a user account.
type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}

// CreateBoardRequest defines the payload for creating a board.
type CreateBoardRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

// UpdateBoardRequest defines the payload for renaming a board.
type UpdateBoardRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

// AddMemberRequest defines the payload for adding a board member.
type AddMemberRequest struct {
	MemberID uuid.UUID `json:"memberId" validate:"required"`
}

// CreateTaskRequest defines the payload for creating a task on a board.
type CreateTaskRequest struct {
	Content          string     `json:"content"          validate:"required"`
	Status           string     `json:"status"`
	AssignedMemberID *uuid.UUID `json:"assignedMemberId"`
}

// UpdateTaskRequest defines the payload for the task PATCH endpoint.
// Exactly one of the fields must be present.
type UpdateTaskRequest struct {
	Content          *string    `json:"content"`
	Status           *string    `json:"status"`
	AssignedMemberID *uuid.UUID `json:"assignedMemberId"`
}

// CreateCommentRequest defines the payload for posting a comment on a task.
type CreateCommentRequest struct {
	Content string `json:"content" validate:"required"`
}

// BoardResponse is the wire representation of a board.
type BoardResponse struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	OwnerID uuid.UUID `json:"ownerId"`
}

// MemberResponse is the wire representation of a board member.
// The member listing intentionally exposes only usernames.
type MemberResponse struct {
	Username string `json:"username"`
}

// TaskResponse is the wire representation of a task.
type TaskResponse struct {
	ID               uuid.UUID  `json:"id"`
	Content          string     `json:"content"`
	Status           string     `json:"status"`
	AssignedMemberID *uuid.UUID `json:"assignedMemberId"`
	CreatorID        uuid.UUID  `json:"creatorId"`
}

// CommentResponse is the wire representation of a comment, with the author's
// username joined in. CreatedAt is epoch milliseconds.
type CommentResponse struct {
	ID        uuid.UUID `json:"id"`
	TaskID    uuid.UUID `json:"taskId"`
	UserID    uuid.UUID `json:"userId"`
	Username  string    `json:"username"`
	Content   string    `json:"content"`
	CreatedAt int64     `json:"createdAt"`
}

// newBoardResponse maps a domain board to its wire form.
func newBoardResponse(b *domain.Board) BoardResponse {
	return BoardResponse{ID: b.ID, Name: b.Name, OwnerID: b.OwnerID}
}

// newTaskResponse maps a domain task to its wire form.
func newTaskResponse(t *domain.Task) TaskResponse {
	return TaskResponse{
		ID:               t.ID,
		Content:          t.Content,
		Status:           t.Status,
		AssignedMemberID: t.AssignedMemberID,
		CreatorID:        t.CreatorID,
	}
}

// newCommentResponse maps a stored comment with its author to its wire form.
func newCommentResponse(c *store.CommentWithAuthor) CommentResponse {
	return CommentResponse{
		ID:        c.ID,
		TaskID:    c.TaskID,
		UserID:    c.UserID,
		Username:  c.Username,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
	}
}
