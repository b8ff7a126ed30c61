package storage

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quiet-dev/quiet/internal/domain"
	apperrors "github.com/quiet-dev/quiet/internal/errors"
	"github.com/quiet-dev/quiet/internal/storage/kv"
)

// memStore implements kv.Store in memory, with injectable failures.
type memStore struct {
	data    map[string][]byte
	getErr  error
	putErr  error
	deleted []string
}

func newMemStore() *memStore {
	return &memStore{data: map[string][]byte{}}
}

func (m *memStore) Get(_ context.Context, key string) ([]byte, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	val, ok := m.data[key]
	if !ok {
		return nil, kv.ErrNotFound
	}
	return val, nil
}

func (m *memStore) Put(_ context.Context, key string, val []byte) error {
	if m.putErr != nil {
		return m.putErr
	}
	m.data[key] = val
	return nil
}

func (m *memStore) Delete(_ context.Context, key string) error {
	m.deleted = append(m.deleted, key)
	delete(m.data, key)
	return nil
}

func mustURL(t *testing.T, s string) *url.URL {
	t.Helper()
	u, err := url.Parse(s)
	require.NoError(t, err)
	return u
}

func TestPostsSaveAppends(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	posts := NewPosts(store)
	user := uuid.MustParse("fc53b101-1756-4b8f-b5fe-b71d103e9f20")

	first := domain.Post{Text: "hello", UserID: user}
	second := domain.Post{Text: "again", Link: mustURL(t, "https://example.com"), UserID: user}

	require.NoError(t, posts.Save(ctx, first))
	require.NoError(t, posts.Save(ctx, second))

	got, err := posts.ByUser(ctx, user)
	require.NoError(t, err)
	require.Len(t, got, 2, "second save must not overwrite the first post")
	assert.Equal(t, "hello", got[0].Text)
	assert.Equal(t, "again", got[1].Text)
	assert.Equal(t, "https://example.com", got[1].Link.String())

	// Everything lives under the user's key.
	assert.Len(t, store.data, 1)
	assert.Contains(t, store.data, user.String())
}

func TestPostsByUserAbsentKey(t *testing.T) {
	posts := NewPosts(newMemStore())

	got, err := posts.ByUser(context.Background(), uuid.New())
	require.NoError(t, err, "no posts yet is not an error")
	assert.Empty(t, got)
}

func TestPostsStoreFailures(t *testing.T) {
	ctx := context.Background()
	user := uuid.New()

	t.Run("put failure", func(t *testing.T) {
		store := newMemStore()
		store.putErr = errors.New("connection reset")
		err := NewPosts(store).Save(ctx, domain.Post{Text: "hi", UserID: user})
		require.Error(t, err)
		e := apperrors.From(err)
		assert.Equal(t, http.StatusInternalServerError, e.Status)
		assert.Equal(t, "Post unsuccessful, please try again later", e.Message)
	})

	t.Run("get failure", func(t *testing.T) {
		store := newMemStore()
		store.getErr = errors.New("connection reset")
		_, err := NewPosts(store).ByUser(ctx, user)
		require.Error(t, err)
		e := apperrors.From(err)
		assert.Equal(t, http.StatusInternalServerError, e.Status)
		assert.Equal(t, "couldn't load posts from database", e.Message)
	})

	t.Run("corrupt stored value", func(t *testing.T) {
		store := newMemStore()
		store.data[user.String()] = []byte("definitely not msgpack")
		_, err := NewPosts(store).ByUser(ctx, user)
		require.Error(t, err)
		e := apperrors.From(err)
		assert.Equal(t, http.StatusInternalServerError, e.Status)
		assert.Equal(t, "couldn't load posts from database", e.Message)
	})
}

func TestPostsRoundTrip(t *testing.T) {
	original := []domain.Post{
		{Text: "plain", UserID: uuid.New()},
		{Text: "with link", Link: mustURL(t, "https://example.com/x?y=z"), UserID: uuid.New()},
	}

	raw, err := encodePosts(original)
	require.NoError(t, err)
	decoded, err := decodePosts(raw)
	require.NoError(t, err)

	require.Len(t, decoded, len(original))
	for i := range original {
		assert.Equal(t, original[i].Text, decoded[i].Text)
		assert.Equal(t, original[i].UserID, decoded[i].UserID)
		if original[i].Link == nil {
			assert.Nil(t, decoded[i].Link)
		} else {
			assert.Equal(t, original[i].Link.String(), decoded[i].Link.String())
		}
	}
}
