//go:build integration
// +build integration

package characters_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cerrors "github.com/lgw4/cetools/internal/errors"
	"github.com/lgw4/cetools/internal/repositories/characters"
	"github.com/lgw4/cetools/internal/testutils"
)

func TestRedisRepository_Integration(t *testing.T) {
	// This test requires Redis to be running
	client := testutils.CreateTestRedisClientOrSkip(t)

	repo := characters.NewRedis(client)
	ctx := context.Background()

	t.Run("create and retrieve character", func(t *testing.T) {
		char := testutils.CreateTestCharacter("test-char-1", "Jamison Vane")

		err := repo.Create(ctx, char)
		require.NoError(t, err)

		retrieved, err := repo.Get(ctx, char.ID)
		require.NoError(t, err)
		require.NotNil(t, retrieved)

		assert.Equal(t, char.ID, retrieved.ID)
		assert.Equal(t, char.Name, retrieved.Name)
		assert.Equal(t, char.Career, retrieved.Career)
		assert.Equal(t, char.Attributes, retrieved.Attributes)
		assert.Equal(t, char.Skills, retrieved.Skills)
		assert.Equal(t, char.Equipment, retrieved.Equipment)
		assert.Equal(t, char.Credits, retrieved.Credits)
	})

	t.Run("create duplicate character fails", func(t *testing.T) {
		char := testutils.CreateTestCharacter("test-char-2", "Dalia Okonkwo")

		require.NoError(t, repo.Create(ctx, char))

		err := repo.Create(ctx, char)
		require.Error(t, err)
		assert.True(t, cerrors.IsAlreadyExists(err))
	})

	t.Run("list characters", func(t *testing.T) {
		chars, err := repo.List(ctx)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(chars), 2)
	})

	t.Run("delete character", func(t *testing.T) {
		char := testutils.CreateTestCharacter("test-char-3", "Adal Kerr")
		require.NoError(t, repo.Create(ctx, char))

		require.NoError(t, repo.Delete(ctx, char.ID))

		_, err := repo.Get(ctx, char.ID)
		assert.True(t, cerrors.IsNotFound(err))
	})
}
