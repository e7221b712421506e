package repository

import (
	"hospital-backend/internal/models"

	"gorm.io/gorm"
)

type AuditRepository struct {
	db *gorm.DB
}

func NewAuditRepo(db *gorm.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

// CreateAuditLog appends an audit trail entry
func (r *AuditRepository) CreateAuditLog(userID *uint, actorRole, action, details string) error {
	entry := models.AuditLog{
		UserID:    userID,
		ActorRole: actorRole,
		Action:    action,
		Details:   details,
	}
	return r.db.Create(&entry).Error
}

// ListRecent retrieves the most recent audit entries, newest first
func (r *AuditRepository) ListRecent(limit int) ([]models.AuditLog, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	var entries []models.AuditLog
	err := r.db.
		Preload("User").
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}
