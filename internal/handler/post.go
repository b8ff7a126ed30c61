package handler

import (
	"io"
	"net/http"

	"github.com/quiet-dev/quiet/internal/domain"
	"github.com/quiet-dev/quiet/internal/logger"
)

func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var body domain.NewPost
	if err := decodeValidate(r.Body, &body, "Your post was malformed"); err != nil {
		writeError(w, err)
		return
	}

	if err := h.posts.Create(r.Context(), body); err != nil {
		writeError(w, err)
		return
	}

	logger.Log.Info("created post", "user_id", body.UserID)
	w.Header().Set("Location", "/")
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, "you made a post")
}
