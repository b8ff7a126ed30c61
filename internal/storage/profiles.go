package storage

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/quiet-dev/quiet/internal/domain"
	"github.com/quiet-dev/quiet/internal/errors"
	"github.com/quiet-dev/quiet/internal/storage/kv"
)

// Profiles stores each profile under its own id, one record per key.
type Profiles struct {
	store kv.Store
}

func NewProfiles(store kv.Store) *Profiles {
	return &Profiles{store: store}
}

func (p *Profiles) Save(ctx context.Context, profile domain.Profile) error {
	raw, err := encodeProfile(profile)
	if err != nil {
		return errors.BadRequest(err, "Invalid profile")
	}
	if err := p.store.Put(ctx, profile.ID.String(), raw); err != nil {
		return errors.Internal(err, "Profile unsuccessful, please try again later")
	}
	return nil
}

func (p *Profiles) ByID(ctx context.Context, id uuid.UUID) (domain.Profile, error) {
	raw, err := p.store.Get(ctx, id.String())
	if kv.IsNotFound(err) {
		return domain.Profile{}, errors.New(
			fmt.Errorf("profile %s: %w", id, err), http.StatusNotFound, "Profile not found")
	}
	if err != nil {
		return domain.Profile{}, errors.Internal(err, "couldn't load profile from database")
	}
	profile, err := decodeProfile(raw)
	if err != nil {
		return domain.Profile{}, errors.Internal(err, "couldn't load profile from database")
	}
	return profile, nil
}
