package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/quiet-dev/quiet/internal/domain"
	"github.com/quiet-dev/quiet/internal/errors"
)

func TestHome(t *testing.T) {
	t.Run("renders posts", func(t *testing.T) {
		mockService := &MockPostService{
			MockByUser: func(_ context.Context, user uuid.UUID) ([]domain.Post, error) {
				assert.Equal(t, DemoUser, user)
				return []domain.Post{{Text: "first post", UserID: user}}, nil
			},
		}
		h := newTestHandler(t, mockService, nil)

		rr := httptest.NewRecorder()
		h.Home(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "text/html", rr.Header().Get("Content-Type"))
		assert.Contains(t, rr.Body.String(), "first post")
	})

	t.Run("empty feed still renders", func(t *testing.T) {
		h := newTestHandler(t, &MockPostService{}, nil)

		rr := httptest.NewRecorder()
		h.Home(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "nothing here yet")
	})

	t.Run("store failure renders the error page without internals", func(t *testing.T) {
		h := newTestHandler(t, &MockPostService{
			MockByUser: func(context.Context, uuid.UUID) ([]domain.Post, error) {
				return nil, errors.Internal(assert.AnError, "couldn't load posts from database")
			},
		}, nil)

		rr := httptest.NewRecorder()
		h.Home(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Equal(t, "text/html", rr.Header().Get("Content-Type"))
		assert.Contains(t, rr.Body.String(), "couldn&#39;t load posts from database")
		assert.NotContains(t, rr.Body.String(), assert.AnError.Error())
	})
}

func TestNewPostForm(t *testing.T) {
	h := newTestHandler(t, nil, nil)

	rr := httptest.NewRecorder()
	h.NewPostForm(rr, httptest.NewRequest(http.MethodGet, "/post", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/html", rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Body.String(), "<form")
}
