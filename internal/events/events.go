package events

import (
	"context"
	"encoding/json"
)

// Event types broadcast to connected clients after a successful mutation.
const (
	TypeBoardCreated   = "BOARD_CREATED"
	TypeBoardUpdated   = "BOARD_UPDATED"
	TypeBoardDeleted   = "BOARD_DELETED"
	TypeTaskCreated    = "TASK_CREATED"
	TypeTaskUpdated    = "TASK_UPDATED"
	TypeTaskDeleted    = "TASK_DELETED"
	TypeCommentCreated = "COMMENT_CREATED"
)

// Event is a typed notification of a completed state change. The payload is
// a free-form map so each event type can carry its post-mutation snapshot
// without the events package depending on domain types.
type Event struct {
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload"`
}

// New creates an Event with the given type and payload.
func New(eventType string, payload map[string]any) *Event {
	return &Event{
		Type:    eventType,
		Payload: payload,
	}
}

// Marshal returns the wire representation of the event.
func (e *Event) Marshal() ([]byte, error) {
	return json.Marshal(e)
}

// Handler defines an interface for components that consume events, such as
// the websocket broadcast hub.
type Handler interface {
	// HandleEvent processes the given event within the provided context.
	// Returns an error if the event cannot be handled successfully.
	HandleEvent(ctx context.Context, event *Event) error
}

// Emitter defines an interface for components that publish events. This
// lets domain services announce mutations without direct knowledge of the
// broadcast mechanism.
type Emitter interface {
	// Emit publishes the given event to all registered handlers.
	Emit(ctx context.Context, event *Event) error
}
