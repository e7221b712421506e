package repository

import (
	"errors"

	"hospital-backend/internal/apperrors"
	"hospital-backend/internal/models"

	"gorm.io/gorm"
)

// ProfileRepository manages the role profiles (patients, doctors, staff)
// attached 1:1 to user accounts, plus staff assignments.
type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepo(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// CreatePatient creates a patient profile
func (r *ProfileRepository) CreatePatient(patient *models.Patient) error {
	return r.db.Create(patient).Error
}

// FindPatientByID retrieves a patient with their user record
func (r *ProfileRepository) FindPatientByID(id uint) (*models.Patient, error) {
	var patient models.Patient
	err := r.db.Preload("User").First(&patient, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &patient, nil
}

// FindPatientByUserID retrieves the patient profile for a user account
func (r *ProfileRepository) FindPatientByUserID(userID uint) (*models.Patient, error) {
	var patient models.Patient
	err := r.db.Where("user_id = ?", userID).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &patient, nil
}

// ListPatients retrieves all patient profiles with user records
func (r *ProfileRepository) ListPatients() ([]models.Patient, error) {
	var patients []models.Patient
	err := r.db.Preload("User").Order("id ASC").Find(&patients).Error
	return patients, err
}

// CreateDoctor creates a doctor profile
func (r *ProfileRepository) CreateDoctor(doctor *models.Doctor) error {
	return r.db.Create(doctor).Error
}

// FindDoctorByID retrieves a doctor with their user record
func (r *ProfileRepository) FindDoctorByID(id uint) (*models.Doctor, error) {
	var doctor models.Doctor
	err := r.db.Preload("User").Preload("Department").First(&doctor, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &doctor, nil
}

// FindDoctorByUserID retrieves the doctor profile for a user account
func (r *ProfileRepository) FindDoctorByUserID(userID uint) (*models.Doctor, error) {
	var doctor models.Doctor
	err := r.db.Where("user_id = ?", userID).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &doctor, nil
}

// ListDoctors retrieves doctors, optionally only the available ones
func (r *ProfileRepository) ListDoctors(availableOnly bool) ([]models.Doctor, error) {
	var doctors []models.Doctor
	query := r.db.Preload("User").Preload("Department").Order("id ASC")
	if availableOnly {
		query = query.Where("is_available = ?", true)
	}
	err := query.Find(&doctors).Error
	return doctors, err
}

// CreateStaff creates a staff profile
func (r *ProfileRepository) CreateStaff(staff *models.Staff) error {
	return r.db.Create(staff).Error
}

// FindStaffByID retrieves a staff member with their user record
func (r *ProfileRepository) FindStaffByID(id uint) (*models.Staff, error) {
	var staff models.Staff
	err := r.db.Preload("User").Preload("Department").First(&staff, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &staff, nil
}

// ListStaff retrieves all staff profiles
func (r *ProfileRepository) ListStaff() ([]models.Staff, error) {
	var staff []models.Staff
	err := r.db.Preload("User").Preload("Department").Order("id ASC").Find(&staff).Error
	return staff, err
}

// CreateAssignment links a staff member to a patient
func (r *ProfileRepository) CreateAssignment(assignment *models.StaffAssignment) error {
	return r.db.Create(assignment).Error
}

// ListAssignmentsByStaff retrieves a staff member's patient assignments
func (r *ProfileRepository) ListAssignmentsByStaff(staffID uint) ([]models.StaffAssignment, error) {
	var assignments []models.StaffAssignment
	err := r.db.
		Where("staff_id = ?", staffID).
		Preload("Patient.User").
		Order("assigned_date DESC").
		Find(&assignments).Error
	return assignments, err
}
