// Package mocks provides hand-written test doubles for the store and event
// interfaces. Each mock offers a working in-memory default implementation
// plus per-method function fields for overriding behavior in individual
// tests.
package mocks
