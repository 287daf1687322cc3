package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/taskboard-api/internal/events"
)

// MockEmitter implements events.Emitter, recording every emitted event so
// tests can assert on broadcast behavior.
type MockEmitter struct {
	mu sync.Mutex

	// EmitFn overrides the default recording behavior.
	EmitFn func(ctx context.Context, event *events.Event) error

	// EmitError, when set, is returned from Emit after recording.
	EmitError error

	Events []*events.Event
}

// NewMockEmitter creates a new recording emitter.
func NewMockEmitter() *MockEmitter {
	return &MockEmitter{}
}

// Emit implements the events.Emitter interface.
func (m *MockEmitter) Emit(ctx context.Context, event *events.Event) error {
	if m.EmitFn != nil {
		return m.EmitFn(ctx, event)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.Events = append(m.Events, event)
	return m.EmitError
}

// EventTypes returns the types of all recorded events in emission order.
func (m *MockEmitter) EventTypes() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	types := make([]string, 0, len(m.Events))
	for _, e := range m.Events {
		types = append(types, e.Type)
	}
	return types
}

// LastEvent returns the most recently emitted event, or nil.
func (m *MockEmitter) LastEvent() *events.Event {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.Events) == 0 {
		return nil
	}
	return m.Events[len(m.Events)-1]
}

var _ events.Emitter = (*MockEmitter)(nil)
