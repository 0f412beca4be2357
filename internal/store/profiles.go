// internal/store/profiles.go
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"matrimony-matcher/internal/common/errors"
	"matrimony-matcher/internal/common/logger"
	"matrimony-matcher/internal/models"

	"github.com/xeipuuv/gojsonschema"
)

// ProfileStore supplies the immutable profile snapshot the engine computes
// over. A load failure is represented as an empty snapshot, not an error.
type ProfileStore interface {
	GetAll() []models.Profile
	GetByID(id string) (*models.Profile, bool)
	Reload()
}

// FileProfileStore reads a JSON profile document from disk. The loaded
// snapshot is reused for a short TTL so a burst of searches does not re-read
// the file, and Reload invalidates it when profile data changed elsewhere.
type FileProfileStore struct {
	path   string
	ttl    time.Duration
	logger logger.Logger

	mu       sync.Mutex
	snapshot []models.Profile
	loadedAt time.Time
}

func NewFileProfileStore(path string, ttl time.Duration, log logger.Logger) *FileProfileStore {
	if ttl <= 0 {
		ttl = time.Second
	}
	return &FileProfileStore{
		path:   path,
		ttl:    ttl,
		logger: log.WithFields(map[string]interface{}{"component": "profile-store"}),
	}
}

// GetAll returns the current snapshot. Callers treat the returned slice as
// read-only; filter stages copy rather than mutate.
func (s *FileProfileStore) GetAll() []models.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snapshot != nil && time.Since(s.loadedAt) < s.ttl {
		return s.snapshot
	}

	profiles, err := s.load()
	if err != nil {
		s.logger.Warn("profile snapshot degraded to empty", map[string]interface{}{
			"path":  s.path,
			"error": errors.NewSnapshotLoadError(err).Error(),
		})
		profiles = []models.Profile{}
	}

	s.snapshot = profiles
	s.loadedAt = time.Now()
	return s.snapshot
}

// GetByID finds a profile in the current snapshot.
func (s *FileProfileStore) GetByID(id string) (*models.Profile, bool) {
	for _, p := range s.GetAll() {
		if p.ID == id {
			found := p
			return &found, true
		}
	}
	return nil, false
}

// Reload invalidates the cached snapshot; the next GetAll re-reads the file.
func (s *FileProfileStore) Reload() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = nil
	s.loadedAt = time.Time{}
}

func (s *FileProfileStore) load() ([]models.Profile, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read profiles: %w", err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(profileDocumentSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return nil, fmt.Errorf("validate profiles: %w", err)
	}
	if !result.Valid() {
		return nil, fmt.Errorf("profiles document rejected by schema: %s", firstSchemaError(result))
	}

	var profiles []models.Profile
	if err := json.Unmarshal(data, &profiles); err != nil {
		return nil, fmt.Errorf("decode profiles: %w", err)
	}

	s.logger.Debug("profile snapshot loaded", map[string]interface{}{
		"path":  s.path,
		"count": len(profiles),
	})
	return profiles, nil
}

func firstSchemaError(result *gojsonschema.Result) string {
	for _, desc := range result.Errors() {
		return desc.String()
	}
	return "unknown schema violation"
}
