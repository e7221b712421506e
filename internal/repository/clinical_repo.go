package repository

import (
	"errors"

	"hospital-backend/internal/apperrors"
	"hospital-backend/internal/models"

	"gorm.io/gorm"
)

// ClinicalRepository manages medical records and lab reports
type ClinicalRepository struct {
	db *gorm.DB
}

func NewClinicalRepo(db *gorm.DB) *ClinicalRepository {
	return &ClinicalRepository{db: db}
}

// CreateMedicalRecord creates a new medical record
func (r *ClinicalRepository) CreateMedicalRecord(record *models.MedicalRecord) error {
	return r.db.Create(record).Error
}

// FindMedicalRecordByID retrieves a medical record
func (r *ClinicalRepository) FindMedicalRecordByID(id uint) (*models.MedicalRecord, error) {
	var record models.MedicalRecord
	err := r.db.Preload("Patient.User").Preload("Doctor.User").First(&record, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

// ListMedicalRecordsByPatient retrieves a patient's records, newest first
func (r *ClinicalRepository) ListMedicalRecordsByPatient(patientID uint) ([]models.MedicalRecord, error) {
	var records []models.MedicalRecord
	err := r.db.
		Where("patient_id = ?", patientID).
		Preload("Doctor.User").
		Order("created_at DESC").
		Find(&records).Error
	return records, err
}

// CreateLabReport creates a new lab report
func (r *ClinicalRepository) CreateLabReport(report *models.LabReport) error {
	return r.db.Create(report).Error
}

// ListLabReportsByPatient retrieves a patient's lab reports, newest first
func (r *ClinicalRepository) ListLabReportsByPatient(patientID uint) ([]models.LabReport, error) {
	var reports []models.LabReport
	err := r.db.
		Where("patient_id = ?", patientID).
		Preload("Doctor.User").
		Order("created_at DESC").
		Find(&reports).Error
	return reports, err
}
