package handler

import (
	"net/http"

	"github.com/quiet-dev/quiet/internal/domain"
	"github.com/quiet-dev/quiet/internal/logger"
)

func (h *Handler) CreateProfile(w http.ResponseWriter, r *http.Request) {
	var body domain.NewProfile
	if err := decodeValidate(r.Body, &body, "Your profile was malformed"); err != nil {
		writeError(w, err)
		return
	}

	profile, err := h.profiles.Create(r.Context(), body)
	if err != nil {
		writeError(w, err)
		return
	}

	logger.Log.Info("created profile", "id", profile.ID)
	writeJSON(w, struct {
		ID string `json:"id"`
	}{ID: profile.ID.String()})
}
