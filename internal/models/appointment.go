package models

import "time"

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "PENDING"
	AppointmentApproved  AppointmentStatus = "APPROVED"
	AppointmentCompleted AppointmentStatus = "COMPLETED"
	AppointmentCancelled AppointmentStatus = "CANCELLED"
	AppointmentExpired   AppointmentStatus = "EXPIRED"
)

// Appointment represents a scheduled consultation between a patient and a doctor
type Appointment struct {
	ID              uint              `gorm:"primaryKey" json:"id"`
	PatientID       uint              `gorm:"not null;index" json:"patient_id"`
	DoctorID        *uint             `gorm:"index" json:"doctor_id,omitempty"`
	AppointmentDate time.Time         `gorm:"not null" json:"appointment_date"`
	Status          AppointmentStatus `gorm:"size:20;default:'PENDING'" json:"status"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
	Patient         Patient           `gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE" json:"patient,omitempty"`
	Doctor          *Doctor           `gorm:"foreignKey:DoctorID;constraint:OnDelete:SET NULL" json:"doctor,omitempty"`
}

// TableName specifies the table name for Appointment model
func (Appointment) TableName() string {
	return "appointments"
}

// IsPastDue reports whether the appointment slot has passed while the
// appointment was still waiting to happen.
func (a *Appointment) IsPastDue(now time.Time) bool {
	if !a.AppointmentDate.Before(now) {
		return false
	}
	return a.Status == AppointmentPending || a.Status == AppointmentApproved
}

// ResolveOverdue applies the overdue transition in place:
// PENDING becomes EXPIRED, APPROVED becomes COMPLETED.
// Returns true when a transition was applied. Safe to call repeatedly.
func (a *Appointment) ResolveOverdue(now time.Time) bool {
	if !a.IsPastDue(now) {
		return false
	}
	switch a.Status {
	case AppointmentPending:
		a.Status = AppointmentExpired
	case AppointmentApproved:
		a.Status = AppointmentCompleted
	}
	return true
}
