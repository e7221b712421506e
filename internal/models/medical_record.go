package models

import (
	"time"

	"gorm.io/datatypes"
)

// MedicalRecord represents a diagnosis/treatment entry written by a doctor
type MedicalRecord struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	PatientID uint           `gorm:"not null;index" json:"patient_id"`
	DoctorID  uint           `gorm:"not null;index" json:"doctor_id"`
	Diagnosis string         `gorm:"type:text;not null" json:"diagnosis"`
	Treatment string         `gorm:"type:text" json:"treatment"`
	Vitals    datatypes.JSON `json:"vitals,omitempty"`
	CreatedAt time.Time      `json:"record_date"`
	UpdatedAt time.Time      `json:"updated_at"`
	Patient   Patient        `gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE" json:"patient,omitempty"`
	Doctor    Doctor         `gorm:"foreignKey:DoctorID;constraint:OnDelete:CASCADE" json:"doctor,omitempty"`
}

// TableName specifies the table name for MedicalRecord model
func (MedicalRecord) TableName() string {
	return "medical_records"
}
