// Package domain contains the core entities of the task board: users,
// boards, board memberships, tasks, and comments. Entities are plain
// structs with constructor validation; they carry no persistence or
// transport concerns.
package domain
