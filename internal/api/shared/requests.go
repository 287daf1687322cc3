package shared

import (
	"encoding/json"
	"net/http"
)

// DecodeJSON decodes the request body into the given value. Handlers
// validate the decoded struct themselves, since the task update endpoint
// needs to inspect raw field presence before any struct validation.
func DecodeJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}
