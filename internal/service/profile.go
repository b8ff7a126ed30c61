package service

import (
	"context"

	"github.com/quiet-dev/quiet/internal/domain"
)

type ProfileService interface {
	Create(ctx context.Context, newProfile domain.NewProfile) (domain.Profile, error)
}

type ProfileStorage interface {
	Save(ctx context.Context, profile domain.Profile) error
}

type Profile struct {
	storage ProfileStorage
}

func NewProfile(storage ProfileStorage) *Profile {
	return &Profile{storage: storage}
}

// Create returns the stored profile so the caller can echo the
// server-assigned id back to the client.
func (p *Profile) Create(ctx context.Context, newProfile domain.NewProfile) (domain.Profile, error) {
	profile, err := domain.ProfileFromNew(newProfile)
	if err != nil {
		return domain.Profile{}, err
	}
	if err := p.storage.Save(ctx, profile); err != nil {
		return domain.Profile{}, err
	}
	return profile, nil
}
