// Package errresponse holds the error payloads rendered to clients. They
// carry a human-readable message only; the cause stays server-side.
package errresponse

import (
	"net/http"

	"github.com/go-chi/render"
)

// ErrResponse renderer type for handling all sorts of errors.
type ErrResponse struct {
	Err            error `json:"-"` // low-level runtime error, logged, never sent
	HTTPStatusCode int   `json:"-"`

	Message string `json:"message"`
}

func (e *ErrResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)

	return nil
}

// ErrNotFound is returned when an article id resolves to nothing.
var ErrNotFound = &ErrResponse{HTTPStatusCode: http.StatusNotFound, Message: "Article not found"}

// ErrInvalidRequest is the transport-level rejection of a body that is not JSON.
func ErrInvalidRequest(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusBadRequest,
		Message:        "Invalid request body",
	}
}

// ErrInternal is the generic failure for an operation. message names the
// operation, e.g. "An error occurred while creating the article".
func ErrInternal(err error, message string) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusInternalServerError,
		Message:        message,
	}
}

func ErrRender(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusUnprocessableEntity,
		Message:        "Error rendering response.",
	}
}

var (
	ErrRouteNotFound    = &ErrResponse{HTTPStatusCode: http.StatusNotFound, Message: "Resource not found."}
	ErrMethodNotAllowed = &ErrResponse{HTTPStatusCode: http.StatusMethodNotAllowed, Message: "Method not allowed."}
	ErrUnavailable      = &ErrResponse{HTTPStatusCode: http.StatusServiceUnavailable, Message: "Storage unavailable."}
)
