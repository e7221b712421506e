package service

import "hospital-backend/internal/models"

// AuditService exposes the audit trail to admin views
type AuditService struct {
	auditRepo AuditRepository
}

func NewAuditService(auditRepo AuditRepository) *AuditService {
	return &AuditService{auditRepo: auditRepo}
}

// ListRecent retrieves the most recent audit entries
func (s *AuditService) ListRecent(limit int) ([]models.AuditLog, error) {
	return s.auditRepo.ListRecent(limit)
}
