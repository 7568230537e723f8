package backup

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leonardodavinci2049/point-of-sale-v2/internal/infrastructure/storage"
)

func newManager(t *testing.T) (*Manager, *storage.MemoryStore) {
	t.Helper()
	store := storage.NewMemoryStore(nil)
	return NewManager(store, nil), store
}

func TestCreateAndRestoreRoundTrip(t *testing.T) {
	mgr, store := newManager(t)

	store.Set("pdv:budgets", []string{"b1", "b2"})
	store.Set("pdv-storage", map[string]any{"version": 1})

	key, ok := mgr.Create(Config{
		Keys: []string{"pdv:budgets", "pdv-storage", "absent-key"},
		Name: "pdv_full",
	}, "manual snapshot")
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(key, KeyPrefix+"pdv_full_"))

	before, _ := store.GetRaw("pdv:budgets")

	// Wreck the live data, then restore.
	store.Set("pdv:budgets", []string{"overwritten"})
	store.Remove("pdv-storage")

	require.True(t, mgr.Restore(key, RestoreOptions{VerifyIntegrity: true}))

	after, ok := store.GetRaw("pdv:budgets")
	require.True(t, ok)
	assert.Equal(t, string(before), string(after), "restored value is byte-identical")
	assert.True(t, store.Has("pdv-storage"))
}

func TestCreateSkipsAbsentKeys(t *testing.T) {
	mgr, store := newManager(t)
	store.Set("present", 1)

	key, ok := mgr.Create(Config{Keys: []string{"present", "absent"}, Name: "b"}, "")
	require.True(t, ok)

	entries := mgr.List("b")
	require.Len(t, entries, 1)
	assert.Equal(t, key, entries[0].Key)
	assert.Equal(t, 1, entries[0].Metadata.KeyCount)
	assert.Equal(t, "1.0.0", entries[0].Metadata.Version)
	assert.NotEmpty(t, entries[0].Metadata.Checksum)
}

func TestBackupKeyTimestampHasNoReservedCharacters(t *testing.T) {
	mgr, _ := newManager(t)
	mgr.now = func() time.Time {
		return time.Date(2025, 1, 2, 13, 14, 15, 160_000_000, time.UTC)
	}

	key, ok := mgr.Create(Config{Keys: nil, Name: "pdv_full"}, "")
	require.True(t, ok)
	assert.Equal(t, KeyPrefix+"pdv_full_2025-01-02T13-14-15-160Z", key)
}

func TestCreateWithoutTimestampOverwrites(t *testing.T) {
	mgr, store := newManager(t)
	store.Set("k", "v1")

	first, ok := mgr.Create(Config{Keys: []string{"k"}, Name: "fixed", WithoutTimestamp: true}, "")
	require.True(t, ok)

	store.Set("k", "v2")
	second, ok := mgr.Create(Config{Keys: []string{"k"}, Name: "fixed", WithoutTimestamp: true}, "")
	require.True(t, ok)

	assert.Equal(t, first, second)
	assert.Len(t, mgr.List("fixed"), 1)
}

func TestRestoreRefusesMissingBackup(t *testing.T) {
	mgr, _ := newManager(t)
	assert.False(t, mgr.Restore(KeyPrefix+"nope", RestoreOptions{}))
}

func TestRestoreRefusesTamperedBackup(t *testing.T) {
	mgr, store := newManager(t)
	store.Set("k", "original")

	key, ok := mgr.Create(Config{Keys: []string{"k"}, Name: "b"}, "")
	require.True(t, ok)

	// Flip a captured value without updating the checksum.
	var record Record
	raw, _ := store.GetRaw(key)
	require.NoError(t, json.Unmarshal(raw, &record))
	record.Data["k"] = json.RawMessage(`"tampered"`)
	store.Set(key, record)

	assert.False(t, mgr.Restore(key, RestoreOptions{VerifyIntegrity: true}))
	assert.False(t, mgr.Validate(key))

	// Without verification the damaged record still applies.
	assert.True(t, mgr.Restore(key, RestoreOptions{}))
}

func TestRestoreSpecificKeys(t *testing.T) {
	mgr, store := newManager(t)
	store.Set("a", 1)
	store.Set("b", 2)

	key, ok := mgr.Create(Config{Keys: []string{"a", "b"}, Name: "b"}, "")
	require.True(t, ok)

	store.Set("a", 100)
	store.Set("b", 200)

	require.True(t, mgr.Restore(key, RestoreOptions{SpecificKeys: []string{"a"}}))

	assert.Equal(t, 1, storage.Get(store, "a", 0))
	assert.Equal(t, 200, storage.Get(store, "b", 0), "keys outside the selection are untouched")
}

func TestRestoreCreatesSafetyBackupFirst(t *testing.T) {
	mgr, store := newManager(t)
	store.Set("k", "old")

	key, ok := mgr.Create(Config{Keys: []string{"k"}, Name: "b"}, "")
	require.True(t, ok)

	store.Set("k", "current")
	require.True(t, mgr.Restore(key, RestoreOptions{CreateBackupBefore: true}))

	safety := mgr.List("before_restore")
	require.Len(t, safety, 1)

	// The safety backup captured the value that was about to be lost.
	require.True(t, mgr.Restore(safety[0].Key, RestoreOptions{VerifyIntegrity: true}))
	assert.Equal(t, "current", storage.Get(store, "k", ""))
}

func TestCleanupKeepsMostRecent(t *testing.T) {
	mgr, store := newManager(t)
	store.Set("k", "v")

	base := time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)
	var keys []string
	for i := 0; i < 5; i++ {
		tick := base.Add(time.Duration(i) * time.Minute)
		mgr.now = func() time.Time { return tick }
		key, ok := mgr.Create(Config{Keys: []string{"k"}, Name: "pdv_cart"}, "")
		require.True(t, ok)
		keys = append(keys, key)
	}

	mgr.Cleanup("pdv_cart", 3)

	entries := mgr.List("pdv_cart")
	require.Len(t, entries, 3)
	assert.Equal(t, keys[4], entries[0].Key)
	assert.Equal(t, keys[2], entries[2].Key)
	assert.False(t, store.Has(keys[0]))
	assert.False(t, store.Has(keys[0]+"_metadata"))
}

func TestCreatePrunesBeyondMaxBackups(t *testing.T) {
	mgr, store := newManager(t)
	store.Set("k", "v")

	base := time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 4; i++ {
		tick := base.Add(time.Duration(i) * time.Minute)
		mgr.now = func() time.Time { return tick }
		_, ok := mgr.Create(Config{Keys: []string{"k"}, Name: "pdv_cart", MaxBackups: 2}, "")
		require.True(t, ok)
	}

	assert.Len(t, mgr.List("pdv_cart"), 2)
}

func TestDeleteIsIdempotent(t *testing.T) {
	mgr, store := newManager(t)
	store.Set("k", "v")

	key, ok := mgr.Create(Config{Keys: []string{"k"}, Name: "b"}, "")
	require.True(t, ok)

	mgr.Delete(key)
	mgr.Delete(key)

	assert.False(t, store.Has(key))
	assert.Empty(t, mgr.List("b"))
}

func TestChecksumIsDeterministicAndSensitive(t *testing.T) {
	data := map[string]json.RawMessage{
		"b": json.RawMessage(`2`),
		"a": json.RawMessage(`1`),
	}
	same := map[string]json.RawMessage{
		"a": json.RawMessage(`1`),
		"b": json.RawMessage(`2`),
	}

	assert.Equal(t, Checksum(data), Checksum(same), "insertion order must not matter")

	data["a"] = json.RawMessage(`9`)
	assert.NotEqual(t, Checksum(data), Checksum(same))
}
