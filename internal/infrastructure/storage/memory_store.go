package storage

import (
	"encoding/json"
	"sync"

	"go.uber.org/zap"
)

// MemoryStore is a map-backed Store for tests and ephemeral terminals.
type MemoryStore struct {
	notifier
	mu     sync.RWMutex
	data   map[string]json.RawMessage
	logger *zap.Logger
}

func NewMemoryStore(logger *zap.Logger) *MemoryStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MemoryStore{
		data:   make(map[string]json.RawMessage),
		logger: logger,
	}
}

func (s *MemoryStore) Available() bool {
	return true
}

func (s *MemoryStore) Set(key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		s.logger.Error("value could not be serialized",
			zap.String("key", key), zap.Error(err))
		return
	}
	s.mu.Lock()
	s.data[key] = raw
	s.mu.Unlock()
	s.notify(Event{Key: key, Value: raw})
}

func (s *MemoryStore) GetRaw(key string) (json.RawMessage, bool) {
	s.mu.RLock()
	raw, ok := s.data[key]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	out := make(json.RawMessage, len(raw))
	copy(out, raw)
	return out, true
}

// SetRaw stores a pre-encoded value verbatim. Tests use it to plant
// legacy or corrupted payloads.
func (s *MemoryStore) SetRaw(key string, raw json.RawMessage) {
	s.mu.Lock()
	s.data[key] = append(json.RawMessage(nil), raw...)
	s.mu.Unlock()
	s.notify(Event{Key: key, Value: raw})
}

func (s *MemoryStore) Remove(key string) {
	s.mu.Lock()
	_, ok := s.data[key]
	delete(s.data, key)
	s.mu.Unlock()
	if ok {
		s.notify(Event{Key: key})
	}
}

func (s *MemoryStore) Clear() {
	s.mu.Lock()
	keys := make([]string, 0, len(s.data))
	for key := range s.data {
		keys = append(keys, key)
	}
	s.data = make(map[string]json.RawMessage)
	s.mu.Unlock()
	for _, key := range keys {
		s.notify(Event{Key: key})
	}
}

func (s *MemoryStore) Has(key string) bool {
	s.mu.RLock()
	_, ok := s.data[key]
	s.mu.RUnlock()
	return ok
}

func (s *MemoryStore) Keys() []string {
	s.mu.RLock()
	keys := make([]string, 0, len(s.data))
	for key := range s.data {
		keys = append(keys, key)
	}
	s.mu.RUnlock()
	return keys
}

func (s *MemoryStore) Subscribe(fn Listener) func() {
	return s.subscribe(fn)
}
