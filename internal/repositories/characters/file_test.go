package characters

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lgw4/cetools/internal/entities"
	cerrors "github.com/lgw4/cetools/internal/errors"
)

func newTestFileRepo(t *testing.T) Repository {
	t.Helper()
	repo, err := NewFileRepository(filepath.Join(t.TempDir(), "characters"))
	require.NoError(t, err)
	return repo
}

func fileTestCharacter(t *testing.T, id, name string) *entities.Character {
	t.Helper()
	attrs, err := entities.NewAttributes(7, 8, 9, 10, 11, 12)
	require.NoError(t, err)

	return &entities.Character{
		ID:         id,
		Name:       name,
		Career:     entities.CareerMerchants,
		Attributes: attrs,
		Credits:    500,
	}
}

func TestFileRepository_CreateGetDelete(t *testing.T) {
	ctx := context.Background()
	repo := newTestFileRepo(t)

	char := fileTestCharacter(t, "char-1", "Dalia Okonkwo")
	require.NoError(t, repo.Create(ctx, char))

	got, err := repo.Get(ctx, "char-1")
	require.NoError(t, err)
	assert.Equal(t, "Dalia Okonkwo", got.Name)
	assert.Equal(t, char.Attributes, got.Attributes)

	err = repo.Create(ctx, char)
	require.Error(t, err)
	assert.True(t, cerrors.IsAlreadyExists(err))

	require.NoError(t, repo.Delete(ctx, "char-1"))

	_, err = repo.Get(ctx, "char-1")
	assert.True(t, cerrors.IsNotFound(err))

	err = repo.Delete(ctx, "char-1")
	assert.True(t, cerrors.IsNotFound(err))
}

func TestFileRepository_ListIgnoresStrayFiles(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "characters")
	repo, err := NewFileRepository(dir)
	require.NoError(t, err)

	require.NoError(t, repo.Create(ctx, fileTestCharacter(t, "char-2", "Zara Moss")))
	require.NoError(t, repo.Create(ctx, fileTestCharacter(t, "char-1", "Adal Kerr")))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("scratch"), 0o644))

	chars, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, chars, 2)
	assert.Equal(t, "Adal Kerr", chars[0].Name)
	assert.Equal(t, "Zara Moss", chars[1].Name)
}

func TestFileRepository_EmptyList(t *testing.T) {
	repo := newTestFileRepo(t)

	chars, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, chars)
}

func TestDefaultDir_HonorsXDG(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")

	dir, err := DefaultDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/xdg-data", "cetools", "characters"), dir)
}
