package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/quiet-dev/quiet/internal/errors"
	"github.com/quiet-dev/quiet/internal/logger"
	"github.com/quiet-dev/quiet/internal/service"
	"github.com/quiet-dev/quiet/internal/templates"
)

type Handler struct {
	posts     service.PostService
	profiles  service.ProfileService
	templates *templates.Registry
}

func New(posts service.PostService, profiles service.ProfileService, tmpl *templates.Registry) *Handler {
	return &Handler{posts: posts, profiles: profiles, templates: tmpl}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// decodeValidate decodes a JSON body and runs the required-field pass.
// Either failure answers with the same generic malformed message; the
// decoder's own text stays on the internal channel.
func decodeValidate(r io.Reader, body any, malformed string) error {
	if err := json.NewDecoder(r).Decode(body); err != nil {
		return errors.BadRequest(fmt.Errorf("decoding request body: %w", err), malformed)
	}
	if err := validate.Struct(body); err != nil {
		return errors.BadRequest(fmt.Errorf("required fields missing: %w", err), malformed)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("encoding response", "error", err)
	}
}

// writeError is the JSON side of the error boundary: status from the
// external channel, body {"msg": ...}, diagnostic to the log only.
func writeError(w http.ResponseWriter, err error) {
	e := errors.From(err)
	logger.Log.Error("request failed", "status", e.Status, "error", e.Internal)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.Status)
	if encErr := json.NewEncoder(w).Encode(e.External()); encErr != nil {
		logger.Log.Error("encoding error response", "error", encErr)
	}
}
