// Package store defines persistence interfaces for the task board's
// entities along with common store errors and transaction helpers.
// Implementations live in internal/platform/postgres.
package store
