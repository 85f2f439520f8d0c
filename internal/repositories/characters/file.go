package characters

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/lgw4/cetools/internal/entities"
	cerrors "github.com/lgw4/cetools/internal/errors"
	"github.com/lgw4/cetools/internal/serialization"
)

// FileRepository stores each character as a JSON file in a directory.
// It is the default backend when no Redis URL is configured.
type FileRepository struct {
	mu  sync.Mutex
	dir string
}

// DefaultDir returns the platform data directory for character files,
// honoring XDG_DATA_HOME.
func DefaultDir() (string, error) {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, "cetools", "characters"), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", cerrors.Wrap(err, "cannot determine home directory")
	}
	return filepath.Join(home, ".local", "share", "cetools", "characters"), nil
}

// NewFileRepository creates a file-backed repository rooted at dir,
// creating the directory if needed.
func NewFileRepository(dir string) (Repository, error) {
	if dir == "" {
		return nil, cerrors.InvalidArgument("repository directory is required")
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, cerrors.Wrapf(err, "cannot create repository directory %s", dir)
	}

	return &FileRepository{dir: dir}, nil
}

func (r *FileRepository) path(id string) string {
	return filepath.Join(r.dir, id+".json")
}

// Create stores a new character
func (r *FileRepository) Create(ctx context.Context, character *entities.Character) error {
	if character == nil {
		return cerrors.InvalidArgument("character cannot be nil")
	}

	if character.ID == "" {
		return cerrors.InvalidArgument("character ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	path := r.path(character.ID)
	if _, err := os.Stat(path); err == nil {
		return cerrors.AlreadyExistsf("character with ID '%s' already exists", character.ID).
			WithMeta("character_id", character.ID)
	}

	return serialization.SaveFile(character, path, serialization.FormatJSON)
}

// Get retrieves a character by ID
func (r *FileRepository) Get(ctx context.Context, id string) (*entities.Character, error) {
	if id == "" {
		return nil, cerrors.InvalidArgument("character ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	var character entities.Character
	if err := serialization.LoadFile(r.path(id), &character, serialization.FormatJSON); err != nil {
		if cerrors.IsNotFound(err) {
			return nil, cerrors.NotFoundf("character with ID '%s' not found", id).
				WithMeta("character_id", id)
		}
		return nil, err
	}

	return &character, nil
}

// List retrieves all stored characters, sorted by name
func (r *FileRepository) List(ctx context.Context) ([]*entities.Character, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	dirEntries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, cerrors.Wrapf(err, "cannot read repository directory %s", r.dir)
	}

	var result []*entities.Character
	for _, entry := range dirEntries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		var character entities.Character
		path := filepath.Join(r.dir, entry.Name())
		if err := serialization.LoadFile(path, &character, serialization.FormatJSON); err != nil {
			return nil, cerrors.Wrapf(err, "cannot load character file %s", path)
		}
		result = append(result, &character)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Name != result[j].Name {
			return result[i].Name < result[j].Name
		}
		return result[i].ID < result[j].ID
	})

	return result, nil
}

// Delete removes a character
func (r *FileRepository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return cerrors.InvalidArgument("character ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	path := r.path(id)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cerrors.NotFoundf("character with ID '%s' not found", id).
			WithMeta("character_id", id)
	}

	if err := os.Remove(path); err != nil {
		return cerrors.Wrapf(err, "cannot delete character file %s", path)
	}
	return nil
}
