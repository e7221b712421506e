package service

import (
	"fmt"

	"hospital-backend/internal/models"
)

// ClinicalService manages medical records and lab reports
type ClinicalService struct {
	clinicalRepo ClinicalRepository
	profileRepo  ProfileRepository
}

func NewClinicalService(clinicalRepo ClinicalRepository, profileRepo ProfileRepository) *ClinicalService {
	return &ClinicalService{
		clinicalRepo: clinicalRepo,
		profileRepo:  profileRepo,
	}
}

// CreateMedicalRecord files a diagnosis/treatment entry for a patient
func (s *ClinicalService) CreateMedicalRecord(record *models.MedicalRecord) error {
	if _, err := s.profileRepo.FindPatientByID(record.PatientID); err != nil {
		return fmt.Errorf("patient %d: %w", record.PatientID, err)
	}
	if _, err := s.profileRepo.FindDoctorByID(record.DoctorID); err != nil {
		return fmt.Errorf("doctor %d: %w", record.DoctorID, err)
	}
	return s.clinicalRepo.CreateMedicalRecord(record)
}

// GetMedicalRecord retrieves a single medical record
func (s *ClinicalService) GetMedicalRecord(id uint) (*models.MedicalRecord, error) {
	return s.clinicalRepo.FindMedicalRecordByID(id)
}

// ListMedicalRecords retrieves a patient's records
func (s *ClinicalService) ListMedicalRecords(patientID uint) ([]models.MedicalRecord, error) {
	return s.clinicalRepo.ListMedicalRecordsByPatient(patientID)
}

// CreateLabReport files a lab result for a patient
func (s *ClinicalService) CreateLabReport(report *models.LabReport) error {
	if _, err := s.profileRepo.FindPatientByID(report.PatientID); err != nil {
		return fmt.Errorf("patient %d: %w", report.PatientID, err)
	}
	if _, err := s.profileRepo.FindDoctorByID(report.DoctorID); err != nil {
		return fmt.Errorf("doctor %d: %w", report.DoctorID, err)
	}
	return s.clinicalRepo.CreateLabReport(report)
}

// ListLabReports retrieves a patient's lab reports
func (s *ClinicalService) ListLabReports(patientID uint) ([]models.LabReport, error) {
	return s.clinicalRepo.ListLabReportsByPatient(patientID)
}
