package storage

import (
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/quiet-dev/quiet/internal/domain"
)

// Storage records are the msgpack shape of the domain entities. URLs
// and UUIDs go over the wire as strings; the format is internal to the
// store, the only contract being that the same codec reads and writes.

type postRecord struct {
	Text   string `msgpack:"text"`
	Link   string `msgpack:"link"`
	UserID string `msgpack:"user_id"`
}

type profileRecord struct {
	Username   string    `msgpack:"username"`
	DateJoined time.Time `msgpack:"date_joined"`
	ID         string    `msgpack:"id"`
	Pic        string    `msgpack:"pic"`
	Email      string    `msgpack:"email"`
}

func encodePosts(posts []domain.Post) ([]byte, error) {
	records := make([]postRecord, len(posts))
	for i, p := range posts {
		records[i] = postRecord{Text: p.Text, UserID: p.UserID.String()}
		if p.Link != nil {
			records[i].Link = p.Link.String()
		}
	}
	return msgpack.Marshal(records)
}

func decodePosts(raw []byte) ([]domain.Post, error) {
	var records []postRecord
	if err := msgpack.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("unmarshaling post list: %w", err)
	}
	posts := make([]domain.Post, len(records))
	for i, rec := range records {
		userID, err := uuid.Parse(rec.UserID)
		if err != nil {
			return nil, fmt.Errorf("stored post %d has bad user id %q: %w", i, rec.UserID, err)
		}
		posts[i] = domain.Post{Text: rec.Text, UserID: userID}
		if rec.Link != "" {
			link, err := url.Parse(rec.Link)
			if err != nil {
				return nil, fmt.Errorf("stored post %d has bad link %q: %w", i, rec.Link, err)
			}
			posts[i].Link = link
		}
	}
	return posts, nil
}

func encodeProfile(profile domain.Profile) ([]byte, error) {
	return msgpack.Marshal(profileRecord{
		Username:   profile.Username,
		DateJoined: profile.DateJoined,
		ID:         profile.ID.String(),
		Pic:        profile.Pic.String(),
		Email:      profile.Email,
	})
}

func decodeProfile(raw []byte) (domain.Profile, error) {
	var rec profileRecord
	if err := msgpack.Unmarshal(raw, &rec); err != nil {
		return domain.Profile{}, fmt.Errorf("unmarshaling profile: %w", err)
	}
	id, err := uuid.Parse(rec.ID)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("stored profile has bad id %q: %w", rec.ID, err)
	}
	pic, err := url.Parse(rec.Pic)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("stored profile has bad pic %q: %w", rec.Pic, err)
	}
	return domain.Profile{
		Username:   rec.Username,
		DateJoined: rec.DateJoined,
		ID:         id,
		Pic:        pic,
		Email:      rec.Email,
	}, nil
}
