package models

import "time"

// LabReport represents a laboratory result filed against a patient
type LabReport struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	PatientID  uint      `gorm:"not null;index" json:"patient_id"`
	DoctorID   uint      `gorm:"not null;index" json:"doctor_id"`
	ReportType string    `gorm:"size:100;not null" json:"report_type"`
	Result     string    `gorm:"type:text" json:"result"`
	LabCharge  float64   `json:"lab_charge"`
	CreatedAt  time.Time `json:"report_date"`
	Patient    Patient   `gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE" json:"patient,omitempty"`
	Doctor     Doctor    `gorm:"foreignKey:DoctorID;constraint:OnDelete:CASCADE" json:"doctor,omitempty"`
}

// TableName specifies the table name for LabReport model
func (LabReport) TableName() string {
	return "lab_reports"
}
