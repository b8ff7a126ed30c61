package handler

import (
	"fmt"
	"io"
	"net/http"

	"github.com/quiet-dev/quiet/internal/errors"
	"github.com/quiet-dev/quiet/internal/logger"
	"github.com/quiet-dev/quiet/internal/templates"
)

type errorPageData struct {
	Title        string
	HTTPError    string
	ErrorMessage string
}

func (h *Handler) renderPage(w http.ResponseWriter, name string, data any) {
	body, err := h.templates.Render(name, data)
	if err != nil {
		// The engine's own failure must never reach the wire.
		logger.Log.Error("rendering page", "template", name, "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html")
	io.WriteString(w, body)
}

// renderError is the HTML side of the error boundary, used by page
// routes: an error template with the status line and the external
// message, diagnostic to the log only.
func (h *Handler) renderError(w http.ResponseWriter, err error) {
	e := errors.From(err)
	logger.Log.Error("request failed", "status", e.Status, "error", e.Internal)

	body, renderErr := h.templates.Render(templates.Error, errorPageData{
		Title:        "Error",
		HTTPError:    fmt.Sprintf("%d %s", e.Status, http.StatusText(e.Status)),
		ErrorMessage: e.Message,
	})
	if renderErr != nil {
		logger.Log.Error("rendering error page", "error", renderErr)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html")
	w.WriteHeader(e.Status)
	io.WriteString(w, body)
}
