package request

// CreateBackupRequest represents the request to create a backup
type CreateBackupRequest struct {
	Description string `json:"description" binding:"omitempty,max=200"`
}

// RestoreBackupRequest represents the request to restore a backup
type RestoreBackupRequest struct {
	VerifyIntegrity    *bool    `json:"verifyIntegrity"`
	SpecificKeys       []string `json:"specificKeys"`
	CreateBackupBefore *bool    `json:"createBackupBefore"`
}
