package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/leonardodavinci2049/point-of-sale-v2/internal/application/service"
	"github.com/leonardodavinci2049/point-of-sale-v2/internal/infrastructure/backup"
	"github.com/leonardodavinci2049/point-of-sale-v2/internal/presentation/http/dto/request"
	"github.com/leonardodavinci2049/point-of-sale-v2/internal/presentation/http/dto/response"
)

// BackupHandler exposes snapshot and restore of the terminal's
// persisted state.
type BackupHandler struct {
	backups *service.BackupService
}

func NewBackupHandler(backups *service.BackupService) *BackupHandler {
	return &BackupHandler{backups: backups}
}

// List handles GET /backups. An optional name query filters by backup
// name prefix.
func (h *BackupHandler) List(c *gin.Context) {
	response.OK(c, "Backups", h.backups.List(c.Query("name")))
}

// CreateFull handles POST /backups/full
func (h *BackupHandler) CreateFull(c *gin.Context) {
	var req request.CreateBackupRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, "Invalid request body: "+err.Error())
			return
		}
	}

	key, err := h.backups.CreateFullBackup(req.Description)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Full backup created", gin.H{"key": key})
}

// CreateCart handles POST /backups/cart
func (h *BackupHandler) CreateCart(c *gin.Context) {
	var req request.CreateBackupRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, "Invalid request body: "+err.Error())
			return
		}
	}

	key, err := h.backups.CreateCartBackup(req.Description)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Cart backup created", gin.H{"key": key})
}

// Restore handles POST /backups/:key/restore
func (h *BackupHandler) Restore(c *gin.Context) {
	var req request.RestoreBackupRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, "Invalid request body: "+err.Error())
			return
		}
	}

	// Verification and a safety snapshot are on unless the caller
	// switches them off.
	opts := backup.RestoreOptions{
		VerifyIntegrity:    true,
		CreateBackupBefore: true,
		SpecificKeys:       req.SpecificKeys,
	}
	if req.VerifyIntegrity != nil {
		opts.VerifyIntegrity = *req.VerifyIntegrity
	}
	if req.CreateBackupBefore != nil {
		opts.CreateBackupBefore = *req.CreateBackupBefore
	}

	if err := h.backups.Restore(c.Param("key"), opts); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Backup restored", gin.H{"key": c.Param("key")})
}

// Validate handles GET /backups/:key/validate
func (h *BackupHandler) Validate(c *gin.Context) {
	valid := h.backups.Validate(c.Param("key"))
	response.OK(c, "Backup validation result", gin.H{
		"key":   c.Param("key"),
		"valid": valid,
	})
}

// Delete handles DELETE /backups/:key
func (h *BackupHandler) Delete(c *gin.Context) {
	h.backups.Delete(c.Param("key"))
	response.NoContent(c)
}
