// Package api handles incoming HTTP requests for the task board: request
// decoding and validation, path and query parameter parsing, and response
// formatting. It adapts HTTP concerns onto the board, task, comment, and
// user services, and hosts the websocket upgrade handler for the
// broadcast hub.
package api
