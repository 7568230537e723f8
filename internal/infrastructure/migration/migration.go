package migration

import (
	"fmt"
	"time"
)

// Document wraps a persisted payload with its schema version and
// timestamps. Version only ever moves forward: documents newer than the
// running code are returned untouched, never migrated downward.
type Document[T any] struct {
	Version   int       `json:"version"`
	Data      T         `json:"data"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// Migration is a single step of the upgrade chain. Migrate receives the
// decoded document payload (a map for legacy shapes, or whatever the
// previous step produced) and returns the payload at ToVersion.
type Migration struct {
	FromVersion int
	ToVersion   int
	Description string
	Migrate     func(data any) (any, error)
}

// Config declares how documents under one key family are versioned.
type Config[T any] struct {
	CurrentVersion int
	Migrations     []Migration
	// DefaultData builds the payload used for fresh documents and as the
	// fallback whenever loading or migrating fails.
	DefaultData func() T
	// Validate, when set, is run against migrated payloads; a failed
	// validation is treated like any other migration error.
	Validate func(data T) bool
	// OnMigrationError is reported to (if set) whenever the chain falls
	// back to defaults.
	OnMigrationError func(err error)
}

// VerifyChain asserts that every version in [0, CurrentVersion) has
// exactly one outgoing migration, so a missing step is caught at startup
// instead of surfacing as a silent reset in production.
func (c Config[T]) VerifyChain() error {
	for version := 0; version < c.CurrentVersion; version++ {
		count := 0
		for _, m := range c.Migrations {
			if m.FromVersion == version {
				count++
			}
		}
		if count == 0 {
			return fmt.Errorf("no migration registered from version %d", version)
		}
		if count > 1 {
			return fmt.Errorf("%d migrations registered from version %d, want exactly one", count, version)
		}
	}
	return nil
}

func (c Config[T]) find(fromVersion int) (Migration, bool) {
	for _, m := range c.Migrations {
		if m.FromVersion == fromVersion {
			return m, true
		}
	}
	return Migration{}, false
}
