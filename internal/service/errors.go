package service

import "errors"

// ErrForbidden is returned when the calling user is not allowed to perform
// the requested mutation. It is wrapped with a message naming the rule that
// was violated; handlers map it to HTTP 403.
var ErrForbidden = errors.New("forbidden")

// ErrNothingToUpdate is returned when an update request selects none of the
// mutually exclusive update fields.
var ErrNothingToUpdate = errors.New("nothing to update")
