package handler

import (
	"fmt"
	"net/http"

	"github.com/quiet-dev/quiet/internal/errors"
)

// NotFound and MethodNotAllowed name the rejected request on the
// internal channel only; the client just sees a generic error page.

func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.renderError(w, errors.NotFound(
		fmt.Errorf("no route for %s %s", r.Method, r.URL.Path)))
}

func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	h.renderError(w, errors.MethodNotAllowed(
		fmt.Errorf("method %s not allowed for %s", r.Method, r.URL.Path)))
}
