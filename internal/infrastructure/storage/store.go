package storage

import "encoding/json"

// Event describes a change to a stored key. Value holds the JSON encoding
// of the new value and is nil when the key was removed.
type Event struct {
	Key   string
	Value json.RawMessage
}

// Listener receives change notifications from a Store.
type Listener func(Event)

// Store is a failure-tolerant key-value store with JSON encoding. A point
// of sale terminal must never crash mid-sale because of a storage hiccup,
// so mutating operations swallow and log failures instead of returning
// them; readers fall back to the caller's default.
//
// Every successful mutation notifies in-process subscribers so that
// independent consumers observing the same key stay consistent.
type Store interface {
	// Available probes whether the store can currently be written.
	Available() bool
	// Set serializes value to JSON and writes it under key.
	Set(key string, value any)
	// GetRaw returns the stored JSON for key, or false if absent.
	GetRaw(key string) (json.RawMessage, bool)
	// Remove deletes key. Removing an absent key is a no-op.
	Remove(key string)
	// Clear removes every key.
	Clear()
	// Has reports whether key exists.
	Has(key string) bool
	// Keys lists all stored keys.
	Keys() []string
	// Subscribe registers a listener for change events and returns a
	// function that unregisters it.
	Subscribe(fn Listener) (unsubscribe func())
}

// Get reads key from s and decodes it into T, returning def when the
// store is unavailable, the key is missing, or the payload fails to parse.
func Get[T any](s Store, key string, def T) T {
	raw, ok := s.GetRaw(key)
	if !ok {
		return def
	}
	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		return def
	}
	return value
}
