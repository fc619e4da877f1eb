package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"pantrypal/internal/common"
)

// StatusError describes a non-2xx backend response that does not map to a
// sentinel error. Detail carries the backend's error message, if any.
type StatusError struct {
	StatusCode int
	Detail     string
}

func (e *StatusError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("backend returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("backend returned status %d: %s", e.StatusCode, e.Detail)
}

// checkStatus maps a response status onto the error taxonomy. 401 and 404
// map to sentinels so callers can use errors.Is; everything else non-2xx
// becomes a StatusError with the backend's detail message.
func checkStatus(resp *http.Response) error {
	switch {
	case resp.StatusCode < http.StatusMultipleChoices:
		return nil
	case resp.StatusCode == http.StatusUnauthorized:
		return common.ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return common.ErrNotFound
	}

	return &StatusError{StatusCode: resp.StatusCode, Detail: decodeDetail(resp.Body)}
}

// decodeDetail extracts the "detail" field of a backend error body.
func decodeDetail(r io.Reader) string {
	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(r).Decode(&body); err != nil {
		return ""
	}
	return body.Detail
}
