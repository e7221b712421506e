package models

import "time"

// Audit actions written by the services
const (
	ActionUserLogin          = "user_login"
	ActionUserRegister       = "user_register"
	ActionAdmissionCreate    = "admission_create"
	ActionAdmissionDischarge = "admission_discharge"
	ActionAdmissionTransfer  = "admission_transfer"
	ActionBillCreate         = "bill_create"
	ActionBillMarkPaid       = "bill_mark_paid"
	ActionPaymentRecord      = "payment_record"
	ActionBedOverride        = "bed_status_override"
)

// AuditLog represents the audit_logs table, an append-only trail of
// mutating actions with the acting user and their role at the time.
type AuditLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    *uint     `gorm:"index" json:"user_id"`
	ActorRole string    `gorm:"size:20" json:"actor_role"`
	Action    string    `gorm:"size:100;not null" json:"action"`
	Details   string    `gorm:"type:text" json:"details"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	User      *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// TableName specifies the table name for AuditLog model
func (AuditLog) TableName() string {
	return "audit_logs"
}
