package utils

import (
	"doctors-portal-service/internal/pkg/exceptions"
	"net/http"

	"github.com/goccy/go-json"
)

// DecodeJSONBody decodes the request body into dst. Validation is left to the
// usecase so every caller of it gets the same checks.
func DecodeJSONBody(r *http.Request, dst interface{}) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}
	return nil
}
