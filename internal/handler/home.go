package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/quiet-dev/quiet/internal/domain"
	"github.com/quiet-dev/quiet/internal/templates"
)

// DemoUser owns the posts shown on the home page until there are real
// sessions to pick a user from.
var DemoUser = uuid.MustParse("fc53b101-1756-4b8f-b5fe-b71d103e9f20")

type homePageData struct {
	Title string
	Posts []domain.Post
}

func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	posts, err := h.posts.ByUser(r.Context(), DemoUser)
	if err != nil {
		h.renderError(w, err)
		return
	}
	h.renderPage(w, templates.Home, homePageData{Title: "quiet", Posts: posts})
}

func (h *Handler) NewPostForm(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, templates.NewPost, struct{ Title string }{Title: "quiet. new post."})
}
