package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hailamir/academic-report-api/internal/models"
)

func TestMemorySessionStoreRoundTrip(t *testing.T) {
	store := NewMemorySessionStore(time.Minute)
	ctx := context.Background()

	session := &models.IntakeSession{
		ID:   "sess-1",
		Step: models.StepTitle,
		Fields: map[string]string{
			"title": "Artificial Intelligence in Education",
		},
	}
	require.NoError(t, store.Save(ctx, session))

	fetched, err := store.Get(ctx, "sess-1")
	require.NoError(t, err)
	require.Equal(t, models.StepTitle, fetched.Step)
	require.Equal(t, "Artificial Intelligence in Education", fetched.Fields["title"])
	require.False(t, fetched.UpdatedAt.IsZero())

	// Mutating the returned copy must not leak into the store.
	fetched.Fields["title"] = "changed"
	again, err := store.Get(ctx, "sess-1")
	require.NoError(t, err)
	require.Equal(t, "Artificial Intelligence in Education", again.Fields["title"])
}

func TestMemorySessionStoreMissing(t *testing.T) {
	store := NewMemorySessionStore(time.Minute)
	_, err := store.Get(context.Background(), "nope")
	require.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemorySessionStoreExpiry(t *testing.T) {
	store := NewMemorySessionStore(10 * time.Millisecond)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &models.IntakeSession{ID: "sess-2", Step: models.StepTitle}))
	time.Sleep(20 * time.Millisecond)

	_, err := store.Get(ctx, "sess-2")
	require.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemorySessionStoreDelete(t *testing.T) {
	store := NewMemorySessionStore(time.Minute)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &models.IntakeSession{ID: "sess-3", Step: models.StepLanguage}))
	require.NoError(t, store.Delete(ctx, "sess-3"))
	require.NoError(t, store.Delete(ctx, "sess-3"))

	_, err := store.Get(ctx, "sess-3")
	require.ErrorIs(t, err, ErrSessionNotFound)
}
