package domain

import (
	"fmt"
	"net/http"
	"net/url"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/quiet-dev/quiet/internal/errors"
)

const MaxPostChars = 1000

// NewPost is the untrusted shape decoded straight from a request body.
type NewPost struct {
	Text   string  `json:"text"`
	Link   *string `json:"link"`
	UserID string  `json:"user_id" validate:"required"`
}

// Post is a validated post. It is only ever constructed by PostFromNew,
// so downstream code can rely on its invariants without re-checking.
type Post struct {
	Text   string
	Link   *url.URL
	UserID uuid.UUID
}

// PostFromNew validates a NewPost and builds the trusted entity.
// Checks run in a fixed order and the first failure wins; every message
// only restates a format rule, so it is safe to show the client.
func PostFromNew(np NewPost) (Post, error) {
	if n := utf8.RuneCountInString(np.Text); n > MaxPostChars {
		return Post{}, errors.ExternalOnly(http.StatusBadRequest, fmt.Sprintf(
			"Posts can only have %d characters, but yours has %d", MaxPostChars, n))
	}
	userID, err := uuid.Parse(np.UserID)
	if err != nil {
		return Post{}, errors.ExternalOnly(http.StatusBadRequest,
			fmt.Sprintf("%s is an invalid user ID", np.UserID))
	}
	var link *url.URL
	if np.Link != nil {
		link, err = parseURL(*np.Link)
		if err != nil {
			return Post{}, errors.ExternalOnly(http.StatusBadRequest, "The URL is invalid")
		}
	}
	return Post{Text: np.Text, Link: link, UserID: userID}, nil
}

// parseURL accepts absolute URLs only; url.Parse alone is happy with
// almost any string.
func parseURL(s string) (*url.URL, error) {
	u, err := url.Parse(s)
	if err != nil {
		return nil, err
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("url %q is not absolute", s)
	}
	return u, nil
}
