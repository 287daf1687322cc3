package events_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/taskboard-api/internal/events"
)

// recordingHandler captures every event it receives and optionally fails.
type recordingHandler struct {
	received []*events.Event
	err      error
}

func (h *recordingHandler) HandleEvent(_ context.Context, event *events.Event) error {
	h.received = append(h.received, event)
	return h.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestInMemoryEmitter_Emit(t *testing.T) {
	t.Parallel()

	t.Run("delivers to all registered handlers", func(t *testing.T) {
		t.Parallel()

		emitter := events.NewInMemoryEmitter(discardLogger())
		first := &recordingHandler{}
		second := &recordingHandler{}
		emitter.RegisterHandler(first)
		emitter.RegisterHandler(second)

		event := events.New(events.TypeTaskCreated, map[string]any{"id": "t1"})
		require.NoError(t, emitter.Emit(context.Background(), event))

		require.Len(t, first.received, 1)
		require.Len(t, second.received, 1)
		assert.Equal(t, events.TypeTaskCreated, first.received[0].Type)
		assert.Same(t, event, second.received[0])
	})

	t.Run("no handlers is a no-op", func(t *testing.T) {
		t.Parallel()

		emitter := events.NewInMemoryEmitter(discardLogger())
		event := events.New(events.TypeBoardUpdated, map[string]any{"id": "b1"})
		assert.NoError(t, emitter.Emit(context.Background(), event))
	})

	t.Run("handler failure does not stop delivery", func(t *testing.T) {
		t.Parallel()

		firstErr := errors.New("first handler failed")
		emitter := events.NewInMemoryEmitter(discardLogger())
		failing := &recordingHandler{err: firstErr}
		healthy := &recordingHandler{}
		emitter.RegisterHandler(failing)
		emitter.RegisterHandler(healthy)

		event := events.New(events.TypeCommentCreated, map[string]any{"id": "c1"})
		err := emitter.Emit(context.Background(), event)

		assert.ErrorIs(t, err, firstErr)
		assert.Len(t, healthy.received, 1, "later handlers still receive the event")
	})

	t.Run("returns the first error when several handlers fail", func(t *testing.T) {
		t.Parallel()

		errA := errors.New("a failed")
		errB := errors.New("b failed")
		emitter := events.NewInMemoryEmitter(discardLogger())
		emitter.RegisterHandler(&recordingHandler{err: errA})
		emitter.RegisterHandler(&recordingHandler{err: errB})

		err := emitter.Emit(context.Background(), events.New(events.TypeBoardDeleted, nil))
		assert.ErrorIs(t, err, errA)
		assert.NotErrorIs(t, err, errB)
	})
}
