package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulsefeed/pulsefeed/internal/shared"
)

func TestCreateAndFind(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, "A", "a@x.com", "hash", []string{"sports"})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	byEmail, err := repo.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)

	byID, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "A", byID.Name)
	assert.Equal(t, []string{"sports"}, byID.Preferences)
}

func TestCreateDuplicateEmail(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, "A", "a@x.com", "h1", nil)
	require.NoError(t, err)

	_, err = repo.Create(ctx, "B", "a@x.com", "h2", nil)
	assert.ErrorIs(t, err, shared.ErrDuplicateUser)
}

func TestFindUnknown(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	_, err := repo.FindByEmail(ctx, "nobody@x.com")
	assert.ErrorIs(t, err, shared.ErrNotFound)

	_, err = repo.FindByID(ctx, "missing")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestRepositoryUpdatePreferences(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, "A", "a@x.com", "hash", []string{"sports"})
	require.NoError(t, err)

	updated, err := repo.UpdatePreferences(ctx, created.ID, []string{"science"})
	require.NoError(t, err)
	assert.Equal(t, []string{"science"}, updated.Preferences)

	// Overwrite, not merge.
	stored, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"science"}, stored.Preferences)
}

func TestUpdatePreferencesUnknownIdentity(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, "A", "a@x.com", "hash", []string{"sports"})
	require.NoError(t, err)

	_, err = repo.UpdatePreferences(ctx, "missing", []string{"science"})
	assert.ErrorIs(t, err, shared.ErrNotFound)

	// The failed update must not touch existing records.
	stored, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"sports"}, stored.Preferences)
}

func TestReturnedUserIsACopy(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, "A", "a@x.com", "hash", []string{"sports"})
	require.NoError(t, err)

	created.Preferences[0] = "mutated"

	stored, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"sports"}, stored.Preferences)
}
