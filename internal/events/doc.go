// Package events defines the broadcast event types emitted by the domain
// services after each successful mutation, and a small in-memory emitter
// that fans them out to registered handlers (the websocket hub).
package events
