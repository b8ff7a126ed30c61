// Package service orchestrates the validate-then-persist pipeline.
// Validation always runs first: a post that fails validation is never
// written, so there are no partial side effects to undo.
package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/quiet-dev/quiet/internal/domain"
)

type PostService interface {
	Create(ctx context.Context, newPost domain.NewPost) error
	ByUser(ctx context.Context, user uuid.UUID) ([]domain.Post, error)
}

type PostStorage interface {
	Save(ctx context.Context, post domain.Post) error
	ByUser(ctx context.Context, user uuid.UUID) ([]domain.Post, error)
}

type Post struct {
	storage PostStorage
}

func NewPost(storage PostStorage) *Post {
	return &Post{storage: storage}
}

func (p *Post) Create(ctx context.Context, newPost domain.NewPost) error {
	post, err := domain.PostFromNew(newPost)
	if err != nil {
		return err
	}
	return p.storage.Save(ctx, post)
}

func (p *Post) ByUser(ctx context.Context, user uuid.UUID) ([]domain.Post, error) {
	return p.storage.ByUser(ctx, user)
}
