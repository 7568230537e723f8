package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leonardodavinci2049/point-of-sale-v2/internal/config"
	"github.com/leonardodavinci2049/point-of-sale-v2/internal/infrastructure/backup"
	"github.com/leonardodavinci2049/point-of-sale-v2/internal/infrastructure/storage"
	"github.com/leonardodavinci2049/point-of-sale-v2/pkg/apperror"
)

func newTestBackups(t *testing.T) (*BackupService, *storage.MemoryStore) {
	t.Helper()
	store := storage.NewMemoryStore(nil)
	svc := NewBackupService(backup.NewManager(store, nil), config.BackupConfig{
		FullMaxBackups: 10,
		CartMaxBackups: 5,
	}, nil)
	return svc, store
}

func TestFullBackupCoversEveryKeyFamily(t *testing.T) {
	svc, store := newTestBackups(t)

	store.Set(storage.KeyWorkingSale, map[string]int{"version": 1})
	store.Set(storage.KeyBudgets, []string{"b1"})
	store.Set(storage.KeyPendingSales, []string{"v1"})
	store.Set(storage.KeyTheme, "dark")
	store.Set(storage.KeyLastSale, map[string]any{"total": 10})

	key, err := svc.CreateFullBackup("end of day")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(key, backup.KeyPrefix+"pdv_full_"))

	entries := svc.List("pdv_full")
	require.Len(t, entries, 1)
	assert.Equal(t, 5, entries[0].Metadata.KeyCount)
	assert.Equal(t, "end of day", entries[0].Metadata.Description)
}

func TestCartBackupCapturesOnlyWorkingSale(t *testing.T) {
	svc, store := newTestBackups(t)

	store.Set(storage.KeyWorkingSale, map[string]int{"version": 1})
	store.Set(storage.KeyBudgets, []string{"b1"})

	key, err := svc.CreateCartBackup("")
	require.NoError(t, err)

	require.True(t, svc.Validate(key))
	entries := svc.List("pdv_cart")
	require.Len(t, entries, 1)
	assert.Equal(t, 1, entries[0].Metadata.KeyCount)
}

func TestRestoreFullBackupVerifiesAndSnapshotsFirst(t *testing.T) {
	svc, store := newTestBackups(t)

	store.Set(storage.KeyWorkingSale, "before")
	key, err := svc.CreateFullBackup("")
	require.NoError(t, err)

	store.Set(storage.KeyWorkingSale, "after")
	require.NoError(t, svc.RestoreFullBackup(key))

	assert.Equal(t, "before", storage.Get(store, storage.KeyWorkingSale, ""))
	assert.NotEmpty(t, svc.List("before_restore"))
}

func TestRestoreMissingBackup(t *testing.T) {
	svc, _ := newTestBackups(t)

	err := svc.RestoreFullBackup(backup.KeyPrefix + "pdv_full_nope")
	assert.ErrorIs(t, err, apperror.ErrBackupCorrupt)
}

func TestDeleteBackup(t *testing.T) {
	svc, store := newTestBackups(t)

	store.Set(storage.KeyWorkingSale, "v")
	key, err := svc.CreateCartBackup("")
	require.NoError(t, err)

	svc.Delete(key)
	assert.False(t, svc.Validate(key))
	assert.Empty(t, svc.List("pdv_cart"))
}
