// Package kv defines the contract for the external key-value store and
// its Redis implementation. The store is injected into the repositories
// so they can be tested against a fake.
package kv

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get for an absent key. Callers decide
// whether absence is an error; for post lists it just means "no data
// yet".
var ErrNotFound = errors.New("key not found")

type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, val []byte) error
	Delete(ctx context.Context, key string) error
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
