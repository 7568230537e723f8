// Package backup snapshots sets of storage keys into checksummed,
// timestamped records so destructive operations can be undone.
package backup

import (
	"encoding/json"
	"hash/fnv"
	"sort"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/leonardodavinci2049/point-of-sale-v2/internal/infrastructure/storage"
)

const (
	// KeyPrefix namespaces every backup record in the store.
	KeyPrefix      = "pdv_backup_"
	metadataSuffix = "_metadata"

	// recordVersion tags the backup format, not the payload schema.
	recordVersion = "1.0.0"
)

// Metadata describes a backup for fast listing; it is stored both inside
// the record and under a sibling key.
type Metadata struct {
	CreatedAt   time.Time `json:"createdAt"`
	Version     string    `json:"version"`
	KeyCount    int       `json:"keyCount"`
	Size        int       `json:"size"`
	Checksum    string    `json:"checksum"`
	Description string    `json:"description,omitempty"`
}

// Record is a stored backup: the raw value of every captured key plus
// metadata. A record whose recomputed checksum disagrees with the stored
// one is corrupt.
type Record struct {
	Metadata Metadata                   `json:"metadata"`
	Data     map[string]json.RawMessage `json:"data"`
}

// Config describes what to capture and how to retain it.
type Config struct {
	// Keys lists the storage keys to capture. Absent keys are skipped.
	Keys []string
	// Name prefixes the backup key.
	Name string
	// MaxBackups, when positive, prunes older backups sharing Name.
	MaxBackups int
	// WithoutTimestamp uses Name alone as the backup key (overwriting any
	// earlier backup of that name). By default a normalized timestamp is
	// appended.
	WithoutTimestamp bool
}

// RestoreOptions controls how a backup is applied.
type RestoreOptions struct {
	// VerifyIntegrity recomputes the checksum and refuses a mismatch.
	VerifyIntegrity bool
	// SpecificKeys restores only the listed keys instead of all captured.
	SpecificKeys []string
	// CreateBackupBefore snapshots the keys about to be overwritten under
	// the "before_restore" name first.
	CreateBackupBefore bool
}

// Entry pairs a backup key with its metadata for listings.
type Entry struct {
	Key      string   `json:"key"`
	Metadata Metadata `json:"metadata"`
}

// Manager creates, lists, validates, restores and prunes backups on top
// of a storage.Store. It follows the store's failure policy: operations
// report failure through their return values and a log line, never a panic.
type Manager struct {
	store  storage.Store
	logger *zap.Logger
	now    func() time.Time
}

func NewManager(store storage.Store, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{store: store, logger: logger, now: time.Now}
}

var timestampNormalizer = strings.NewReplacer(":", "-", ".", "-")

// Create captures the configured keys into a new backup record and
// returns its key. It returns ok=false when the store is unavailable or
// nothing could be written.
func (m *Manager) Create(cfg Config, description string) (string, bool) {
	if !m.store.Available() {
		m.logger.Warn("storage unavailable, skipping backup",
			zap.String("name", cfg.Name))
		return "", false
	}

	backupName := cfg.Name
	if !cfg.WithoutTimestamp {
		timestamp := timestampNormalizer.Replace(m.now().UTC().Format("2006-01-02T15:04:05.000Z"))
		backupName = cfg.Name + "_" + timestamp
	}
	backupKey := KeyPrefix + backupName

	data := make(map[string]json.RawMessage, len(cfg.Keys))
	totalSize := 0
	for _, key := range cfg.Keys {
		raw, ok := m.store.GetRaw(key)
		if !ok {
			continue
		}
		data[key] = raw
		totalSize += len(raw)
	}

	metadata := Metadata{
		CreatedAt:   m.now(),
		Version:     recordVersion,
		KeyCount:    len(data),
		Size:        totalSize,
		Checksum:    Checksum(data),
		Description: description,
	}

	m.store.Set(backupKey, Record{Metadata: metadata, Data: data})
	m.store.Set(backupKey+metadataSuffix, metadata)

	if !m.store.Has(backupKey) {
		m.logger.Error("backup record was not persisted", zap.String("key", backupKey))
		return "", false
	}

	if cfg.MaxBackups > 0 {
		m.Cleanup(cfg.Name, cfg.MaxBackups)
	}

	m.logger.Info("backup created",
		zap.String("key", backupKey),
		zap.Int("keyCount", metadata.KeyCount),
		zap.Int("size", metadata.Size))
	return backupKey, true
}

// List returns the metadata of every backup whose name starts with name
// (all backups when name is empty), most recent first.
func (m *Manager) List(name string) []Entry {
	prefix := KeyPrefix + name
	entries := []Entry{}
	for _, key := range m.store.Keys() {
		if !strings.HasPrefix(key, prefix) || !strings.HasSuffix(key, metadataSuffix) {
			continue
		}
		backupKey := strings.TrimSuffix(key, metadataSuffix)
		metadata, ok := getAs[Metadata](m.store, key)
		if !ok {
			continue
		}
		entries = append(entries, Entry{Key: backupKey, Metadata: metadata})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Metadata.CreatedAt.After(entries[j].Metadata.CreatedAt)
	})
	return entries
}

// Restore writes the captured values back into the store. It refuses a
// missing record, and with VerifyIntegrity set, a corrupt one. It never
// partially applies a corrupt backup.
func (m *Manager) Restore(backupKey string, opts RestoreOptions) bool {
	if !m.store.Available() {
		m.logger.Warn("storage unavailable, cannot restore backup")
		return false
	}

	record, ok := getAs[Record](m.store, backupKey)
	if !ok {
		m.logger.Error("backup not found", zap.String("key", backupKey))
		return false
	}

	if opts.VerifyIntegrity {
		if got := Checksum(record.Data); got != record.Metadata.Checksum {
			m.logger.Error("backup corrupt, checksum mismatch",
				zap.String("key", backupKey),
				zap.String("stored", record.Metadata.Checksum),
				zap.String("computed", got))
			return false
		}
	}

	keys := opts.SpecificKeys
	if len(keys) == 0 {
		keys = make([]string, 0, len(record.Data))
		for key := range record.Data {
			keys = append(keys, key)
		}
		sort.Strings(keys)
	}

	if opts.CreateBackupBefore {
		m.Create(Config{
			Keys:       keys,
			Name:       "before_restore",
			MaxBackups: 3,
		}, "automatic backup before restoring "+backupKey)
	}

	restored := 0
	for _, key := range keys {
		raw, ok := record.Data[key]
		if !ok {
			continue
		}
		m.store.Set(key, raw)
		restored++
	}

	m.logger.Info("backup restored",
		zap.String("key", backupKey), zap.Int("restoredKeys", restored))
	return true
}

// Delete removes a backup and its metadata sibling. Idempotent.
func (m *Manager) Delete(backupKey string) {
	m.store.Remove(backupKey)
	m.store.Remove(backupKey + metadataSuffix)
}

// Validate checks that the record and its metadata are both present and
// that the recomputed checksum matches the stored one.
func (m *Manager) Validate(backupKey string) bool {
	record, ok := getAs[Record](m.store, backupKey)
	if !ok {
		return false
	}
	if _, ok := getAs[Metadata](m.store, backupKey+metadataSuffix); !ok {
		return false
	}
	return Checksum(record.Data) == record.Metadata.Checksum
}

// Cleanup keeps the max most recent backups under name and deletes the
// remainder.
func (m *Manager) Cleanup(name string, max int) {
	entries := m.List(name)
	if len(entries) <= max {
		return
	}
	for _, entry := range entries[max:] {
		m.Delete(entry.Key)
	}
	m.logger.Info("old backups pruned",
		zap.String("name", name), zap.Int("removed", len(entries)-max))
}

// Checksum computes the integrity hash of a backup's data map: FNV-1a
// over its JSON encoding, which serializes keys in sorted order. This
// guards against accidental corruption, not tampering.
func Checksum(data map[string]json.RawMessage) string {
	raw, err := json.Marshal(data)
	if err != nil {
		return ""
	}
	h := fnv.New32a()
	h.Write(raw)
	return strconv.FormatUint(uint64(h.Sum32()), 16)
}

func getAs[T any](s storage.Store, key string) (T, bool) {
	var zero T
	raw, ok := s.GetRaw(key)
	if !ok {
		return zero, false
	}
	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		return zero, false
	}
	return value, true
}
