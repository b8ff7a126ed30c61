package domain

import (
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/quiet-dev/quiet/internal/errors"
)

const MaxUsernameChars = 32

// Conservative shape check, not a deliverability check.
var emailPattern = regexp.MustCompile(
	`^[a-z0-9_+]([a-z0-9_+.]*[a-z0-9_+])?@[a-z0-9]+([-.][a-z0-9]+)*\.[a-z]{2,6}$`)

// NewProfile is the untrusted signup shape. It deliberately has no id
// or join-date field: those are server-assigned.
type NewProfile struct {
	Username string `json:"username"`
	Pic      string `json:"pic" validate:"required"`
	Email    string `json:"email" validate:"required"`
}

type Profile struct {
	Username   string
	DateJoined time.Time
	ID         uuid.UUID
	Pic        *url.URL
	Email      string
}

// ProfileFromNew validates a NewProfile and builds the trusted entity.
// ID and DateJoined are always freshly assigned here, never taken from
// input, so a client can't forge another user's identity or join date.
func ProfileFromNew(np NewProfile) (Profile, error) {
	if n := utf8.RuneCountInString(np.Username); n > MaxUsernameChars {
		return Profile{}, errors.ExternalOnly(http.StatusBadRequest, fmt.Sprintf(
			"Usernames can only have %d characters, but yours has %d", MaxUsernameChars, n))
	}
	pic, err := parseURL(np.Pic)
	if err != nil {
		return Profile{}, errors.ExternalOnly(http.StatusBadRequest, "Your picture URL is invalid")
	}
	if !emailPattern.MatchString(np.Email) {
		return Profile{}, errors.ExternalOnly(http.StatusBadRequest, "Your email address is invalid")
	}
	return Profile{
		Username:   np.Username,
		DateJoined: time.Now().UTC(),
		ID:         uuid.New(),
		Pic:        pic,
		Email:      np.Email,
	}, nil
}
