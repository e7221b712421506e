package models

import "time"

// Staff is the employment profile attached 1:1 to a user with role STAFF
type Staff struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	UserID       uint        `gorm:"not null;uniqueIndex" json:"user_id"`
	DepartmentID *uint       `gorm:"index" json:"department_id,omitempty"`
	Salary       float64     `json:"salary"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
	User         User        `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Department   *Department `gorm:"foreignKey:DepartmentID;constraint:OnDelete:SET NULL" json:"department,omitempty"`
}

// TableName specifies the table name for Staff model
func (Staff) TableName() string {
	return "staff"
}

// Procedure types recorded on a staff assignment
const (
	ProcedureRoutine    = "ROUTINE"
	ProcedureSurgery    = "SURGERY"
	ProcedureEmergency  = "EMERGENCY"
	ProcedureMedication = "MEDICATION"
)

// Outcome values recorded on a staff assignment
const (
	OutcomeStable     = "STABLE"
	OutcomeImproved   = "IMPROVED"
	OutcomeCritical   = "CRITICAL"
	OutcomeDischarged = "DISCHARGED"
)

// StaffAssignment links a staff member to a patient under their care
type StaffAssignment struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	StaffID       uint      `gorm:"not null;index" json:"staff_id"`
	PatientID     uint      `gorm:"not null;index" json:"patient_id"`
	AcuityLevel   int       `gorm:"not null" json:"acuity_level"`
	ProcedureType string    `gorm:"size:20;default:'ROUTINE'" json:"procedure_type"`
	OutcomeStatus string    `gorm:"size:20;default:'STABLE'" json:"outcome_status"`
	AssignedDate  time.Time `gorm:"autoCreateTime" json:"assigned_date"`
	Staff         Staff     `gorm:"foreignKey:StaffID;constraint:OnDelete:CASCADE" json:"staff,omitempty"`
	Patient       Patient   `gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE" json:"patient,omitempty"`
}

// TableName specifies the table name for StaffAssignment model
func (StaffAssignment) TableName() string {
	return "staff_assignments"
}
