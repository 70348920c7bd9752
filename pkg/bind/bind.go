// Package bind decodes request bodies into structs and runs validation.
package bind

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/adityakr/bazaari/pkg/validate"
)

// ErrEmptyBody is returned when the request carries no body.
var ErrEmptyBody = errors.New("bind: request body is empty")

// maxBodySize caps request bodies at 1 MiB.
const maxBodySize = 1 << 20

// JSON decodes the request body into dst. dst must be a pointer to a struct.
func JSON(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return ErrEmptyBody
	}
	body := http.MaxBytesReader(nil, r.Body, maxBodySize)
	defer body.Close()

	dec := json.NewDecoder(body)
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyBody
		}
		return err
	}
	return nil
}

// JSONValid decodes the body into dst and validates it. Validation errors
// come back in the map; a decode failure comes back as the error.
func JSONValid(r *http.Request, dst interface{}) (map[string]string, error) {
	if err := JSON(r, dst); err != nil {
		return nil, err
	}
	return validate.Struct(dst), nil
}

// Query reads a single query-string parameter, falling back to def when absent.
func Query(r *http.Request, key, def string) string {
	if v := r.URL.Query().Get(key); v != "" {
		return v
	}
	return def
}
