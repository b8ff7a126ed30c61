// Package storage persists domain entities in the external key-value
// store, translating store failures into the two-channel error model.
package storage

import (
	"context"

	"github.com/google/uuid"

	"github.com/quiet-dev/quiet/internal/domain"
	"github.com/quiet-dev/quiet/internal/errors"
	"github.com/quiet-dev/quiet/internal/storage/kv"
)

// Posts stores each user's posts as one msgpack-encoded list keyed by
// the user's id.
type Posts struct {
	store kv.Store
}

func NewPosts(store kv.Store) *Posts {
	return &Posts{store: store}
}

// Save appends post to its user's list. This is a plain
// read-modify-write: concurrent writers to the same user can race, and
// arbitration is left to the store.
func (p *Posts) Save(ctx context.Context, post domain.Post) error {
	posts, err := p.ByUser(ctx, post.UserID)
	if err != nil {
		return err
	}
	posts = append(posts, post)

	raw, err := encodePosts(posts)
	if err != nil {
		return errors.BadRequest(err, "Invalid post")
	}
	if err := p.store.Put(ctx, post.UserID.String(), raw); err != nil {
		return errors.Internal(err, "Post unsuccessful, please try again later")
	}
	return nil
}

// ByUser returns the user's posts. An absent key means the user simply
// hasn't posted yet and yields an empty list.
func (p *Posts) ByUser(ctx context.Context, user uuid.UUID) ([]domain.Post, error) {
	raw, err := p.store.Get(ctx, user.String())
	if kv.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Internal(err, "couldn't load posts from database")
	}
	posts, err := decodePosts(raw)
	if err != nil {
		return nil, errors.Internal(err, "couldn't load posts from database")
	}
	return posts, nil
}
