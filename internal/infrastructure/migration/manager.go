package migration

import (
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/leonardodavinci2049/point-of-sale-v2/internal/infrastructure/storage"
)

// Manager loads and saves versioned documents through a storage.Store,
// migrating old documents forward on read. It never returns an error to
// callers: any failure along the way resolves to the configured default
// payload, because resetting to an empty sale beats crashing the terminal.
type Manager[T any] struct {
	store  storage.Store
	cfg    Config[T]
	logger *zap.Logger
	now    func() time.Time
}

func NewManager[T any](store storage.Store, cfg Config[T], logger *zap.Logger) *Manager[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager[T]{store: store, cfg: cfg, logger: logger, now: time.Now}
}

// rawDocument probes a stored value for the versioned envelope. A value
// that fails to parse into this shape, or parses without both tags, is a
// legacy document.
type rawDocument struct {
	Version   *int            `json:"version"`
	Data      json.RawMessage `json:"data"`
	CreatedAt time.Time       `json:"createdAt,omitempty"`
	UpdatedAt time.Time       `json:"updatedAt,omitempty"`
}

// Load reads the document stored under key and brings it to the current
// version. Absent keys yield a fresh default document; unversioned values
// run the legacy chain from version 0; documents above the current
// version are returned as-is with a warning.
func (m *Manager[T]) Load(key string) Document[T] {
	raw, ok := m.store.GetRaw(key)
	if !ok {
		return m.initial()
	}

	var probe rawDocument
	if err := json.Unmarshal(raw, &probe); err != nil || probe.Version == nil || probe.Data == nil {
		return m.migrateFromLegacy(key, raw)
	}

	return m.migrateToCurrent(key, probe)
}

// Save wraps data with the current version and timestamps, preserving the
// original createdAt when the key already holds a versioned document.
func (m *Manager[T]) Save(key string, data T) {
	now := m.now()
	doc := Document[T]{
		Version:   m.cfg.CurrentVersion,
		Data:      data,
		CreatedAt: m.existingCreatedAt(key, now),
		UpdatedAt: now,
	}
	m.store.Set(key, doc)
}

func (m *Manager[T]) initial() Document[T] {
	now := m.now()
	return Document[T]{
		Version:   m.cfg.CurrentVersion,
		Data:      m.cfg.DefaultData(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (m *Manager[T]) fallback(key string, err error) Document[T] {
	m.logger.Error("migration failed, resetting to defaults",
		zap.String("key", key), zap.Error(err))
	if m.cfg.OnMigrationError != nil {
		m.cfg.OnMigrationError(err)
	}
	return m.initial()
}

func (m *Manager[T]) migrateFromLegacy(key string, raw json.RawMessage) Document[T] {
	var data any
	if err := json.Unmarshal(raw, &data); err != nil {
		return m.fallback(key, fmt.Errorf("legacy document is not valid JSON: %w", err))
	}

	migrated, err := m.runChain(key, data, 0)
	if err != nil {
		return m.fallback(key, err)
	}

	typed, err := m.finalize(migrated)
	if err != nil {
		return m.fallback(key, err)
	}

	now := m.now()
	return Document[T]{
		Version:   m.cfg.CurrentVersion,
		Data:      typed,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (m *Manager[T]) migrateToCurrent(key string, probe rawDocument) Document[T] {
	if probe.Version != nil && *probe.Version > m.cfg.CurrentVersion {
		m.logger.Warn("document version is newer than current, using as-is",
			zap.String("key", key),
			zap.Int("documentVersion", *probe.Version),
			zap.Int("currentVersion", m.cfg.CurrentVersion))
		var data T
		if err := json.Unmarshal(probe.Data, &data); err != nil {
			return m.fallback(key, fmt.Errorf("decode version %d document: %w", *probe.Version, err))
		}
		return Document[T]{
			Version:   *probe.Version,
			Data:      data,
			CreatedAt: probe.CreatedAt,
			UpdatedAt: probe.UpdatedAt,
		}
	}

	if *probe.Version == m.cfg.CurrentVersion {
		var data T
		if err := json.Unmarshal(probe.Data, &data); err != nil {
			return m.fallback(key, fmt.Errorf("decode current document: %w", err))
		}
		return Document[T]{
			Version:   *probe.Version,
			Data:      data,
			CreatedAt: probe.CreatedAt,
			UpdatedAt: probe.UpdatedAt,
		}
	}

	var data any
	if err := json.Unmarshal(probe.Data, &data); err != nil {
		return m.fallback(key, fmt.Errorf("decode version %d document: %w", *probe.Version, err))
	}

	migrated, err := m.runChain(key, data, *probe.Version)
	if err != nil {
		return m.fallback(key, err)
	}

	typed, err := m.finalize(migrated)
	if err != nil {
		return m.fallback(key, err)
	}

	createdAt := probe.CreatedAt
	if createdAt.IsZero() {
		createdAt = m.now()
	}
	return Document[T]{
		Version:   m.cfg.CurrentVersion,
		Data:      typed,
		CreatedAt: createdAt,
		UpdatedAt: m.now(),
	}
}

// runChain applies migrations in increasing version order, selecting at
// each step the single migration whose FromVersion matches. A gap in the
// chain aborts the whole migration.
func (m *Manager[T]) runChain(key string, data any, fromVersion int) (any, error) {
	version := fromVersion
	for version < m.cfg.CurrentVersion {
		step, ok := m.cfg.find(version)
		if !ok {
			return nil, fmt.Errorf("no migration from version %d to %d", version, m.cfg.CurrentVersion)
		}
		m.logger.Info("running migration",
			zap.String("key", key),
			zap.Int("fromVersion", step.FromVersion),
			zap.Int("toVersion", step.ToVersion),
			zap.String("description", step.Description))

		migrated, err := step.Migrate(data)
		if err != nil {
			return nil, fmt.Errorf("migration %q: %w", step.Description, err)
		}
		data = migrated
		version = step.ToVersion
	}
	return data, nil
}

// finalize converts the loosely typed chain output into T and validates it.
func (m *Manager[T]) finalize(data any) (T, error) {
	var typed T
	if direct, ok := data.(T); ok {
		typed = direct
	} else {
		raw, err := json.Marshal(data)
		if err != nil {
			return typed, fmt.Errorf("encode migrated data: %w", err)
		}
		if err := json.Unmarshal(raw, &typed); err != nil {
			return typed, fmt.Errorf("decode migrated data: %w", err)
		}
	}
	if m.cfg.Validate != nil && !m.cfg.Validate(typed) {
		return typed, fmt.Errorf("migrated data failed validation")
	}
	return typed, nil
}

func (m *Manager[T]) existingCreatedAt(key string, fallback time.Time) time.Time {
	raw, ok := m.store.GetRaw(key)
	if !ok {
		return fallback
	}
	var probe rawDocument
	if err := json.Unmarshal(raw, &probe); err != nil || probe.Version == nil || probe.CreatedAt.IsZero() {
		return fallback
	}
	return probe.CreatedAt
}
