package storage

import (
	"encoding/json"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

const fileExt = ".json"

// FileStore persists each key as a JSON file under a single directory.
// Key names are percent-escaped into safe file names, so namespaced keys
// like "pdv:budgets" round-trip unchanged.
type FileStore struct {
	notifier
	dir    string
	logger *zap.Logger
}

// NewFileStore creates the backing directory if needed. It never fails:
// when the directory cannot be created the store reports unavailable and
// every operation degrades per the Store contract.
func NewFileStore(dir string, logger *zap.Logger) *FileStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Warn("storage directory could not be created",
			zap.String("dir", dir), zap.Error(err))
	}
	return &FileStore{dir: dir, logger: logger}
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, url.PathEscape(key)+fileExt)
}

// Available probes the directory with a throwaway write.
func (s *FileStore) Available() bool {
	probe := filepath.Join(s.dir, ".probe")
	if err := os.WriteFile(probe, []byte("ok"), 0o644); err != nil {
		return false
	}
	_ = os.Remove(probe)
	return true
}

func (s *FileStore) Set(key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		s.logger.Error("value could not be serialized",
			zap.String("key", key), zap.Error(err))
		return
	}
	if err := os.WriteFile(s.path(key), raw, 0o644); err != nil {
		s.logger.Error("value could not be written",
			zap.String("key", key), zap.Error(err))
		return
	}
	s.notify(Event{Key: key, Value: raw})
}

func (s *FileStore) GetRaw(key string) (json.RawMessage, bool) {
	raw, err := os.ReadFile(s.path(key))
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Error("value could not be read",
				zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}
	if !json.Valid(raw) {
		s.logger.Error("stored value is not valid JSON, treating as absent",
			zap.String("key", key))
		return nil, false
	}
	return raw, true
}

func (s *FileStore) Remove(key string) {
	if err := os.Remove(s.path(key)); err != nil {
		if !os.IsNotExist(err) {
			s.logger.Error("value could not be removed",
				zap.String("key", key), zap.Error(err))
		}
		return
	}
	s.notify(Event{Key: key})
}

func (s *FileStore) Clear() {
	for _, key := range s.Keys() {
		s.Remove(key)
	}
}

// Has reports whether the key holds a readable value. A file that
// GetRaw would reject as invalid JSON does not count as present.
func (s *FileStore) Has(key string) bool {
	_, ok := s.GetRaw(key)
	return ok
}

func (s *FileStore) Keys() []string {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		s.logger.Error("storage directory could not be listed", zap.Error(err))
		return nil
	}
	keys := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, fileExt) {
			continue
		}
		key, err := url.PathUnescape(strings.TrimSuffix(name, fileExt))
		if err != nil {
			continue
		}
		keys = append(keys, key)
	}
	return keys
}

func (s *FileStore) Subscribe(fn Listener) func() {
	return s.subscribe(fn)
}
