package service

import (
	"go.uber.org/zap"

	"github.com/leonardodavinci2049/point-of-sale-v2/internal/config"
	"github.com/leonardodavinci2049/point-of-sale-v2/internal/infrastructure/backup"
	"github.com/leonardodavinci2049/point-of-sale-v2/internal/infrastructure/storage"
	"github.com/leonardodavinci2049/point-of-sale-v2/pkg/apperror"
)

const (
	fullBackupName = "pdv_full"
	cartBackupName = "pdv_cart"
)

// fullBackupKeys is everything a terminal persists that is worth
// snapshotting before a risky operation.
var fullBackupKeys = []string{
	storage.KeyWorkingSale,
	storage.KeyBudgets,
	storage.KeyPendingSales,
	storage.KeyTheme,
	storage.KeyLastSale,
}

// BackupService exposes the terminal's backup conveniences over the
// backup manager.
type BackupService struct {
	backups *backup.Manager
	cfg     config.BackupConfig
	logger  *zap.Logger
}

func NewBackupService(backups *backup.Manager, cfg config.BackupConfig, logger *zap.Logger) *BackupService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BackupService{backups: backups, cfg: cfg, logger: logger}
}

// CreateFullBackup snapshots every persisted key family.
func (s *BackupService) CreateFullBackup(description string) (string, error) {
	key, ok := s.backups.Create(backup.Config{
		Keys:       fullBackupKeys,
		Name:       fullBackupName,
		MaxBackups: s.cfg.FullMaxBackups,
	}, description)
	if !ok {
		return "", apperror.ErrBackupFailed
	}
	return key, nil
}

// CreateCartBackup snapshots only the working-sale document.
func (s *BackupService) CreateCartBackup(description string) (string, error) {
	key, ok := s.backups.Create(backup.Config{
		Keys:       []string{storage.KeyWorkingSale},
		Name:       cartBackupName,
		MaxBackups: s.cfg.CartMaxBackups,
	}, description)
	if !ok {
		return "", apperror.ErrBackupFailed
	}
	return key, nil
}

// List returns backups filtered by name prefix, newest first. An empty
// prefix lists every backup.
func (s *BackupService) List(namePrefix string) []backup.Entry {
	return s.backups.List(namePrefix)
}

// Restore applies a backup by key.
func (s *BackupService) Restore(backupKey string, opts backup.RestoreOptions) error {
	if !s.backups.Restore(backupKey, opts) {
		return apperror.ErrBackupCorrupt
	}
	return nil
}

// RestoreFullBackup applies a full backup with integrity verification,
// snapshotting the current state first.
func (s *BackupService) RestoreFullBackup(backupKey string) error {
	return s.Restore(backupKey, backup.RestoreOptions{
		VerifyIntegrity:    true,
		CreateBackupBefore: true,
	})
}

// Delete removes a backup. Idempotent.
func (s *BackupService) Delete(backupKey string) {
	s.backups.Delete(backupKey)
}

// Validate checks a backup's structure and checksum.
func (s *BackupService) Validate(backupKey string) bool {
	return s.backups.Validate(backupKey)
}
