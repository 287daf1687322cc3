// Package service contains the application-specific use cases and business
// logic. It orchestrates interactions between domain objects and the stores
// (defined in internal/store) to fulfill board, task, and comment features.
//
// Services enforce the authorization rules that span entities: board
// mutations are owner-only, task operations are restricted to the task
// creator, the board owner, or (for status changes) the assignee, and
// commenting requires board membership. Mutations that must be atomic, like
// creating a board together with its owner membership row, run inside a
// transaction via store.RunInTransaction.
//
// Services receive dependencies through constructor injection and publish
// domain events through an events.Emitter after successful mutations so that
// connected websocket clients see changes in near real time. Event emission
// is best effort and never fails the originating operation.
package service
