package repository

import (
	"errors"
	"time"

	"hospital-backend/internal/apperrors"
	"hospital-backend/internal/models"

	"gorm.io/gorm"
)

type AppointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepo(db *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

// CreateAppointment creates a new appointment
func (r *AppointmentRepository) CreateAppointment(appointment *models.Appointment) error {
	return r.db.Create(appointment).Error
}

// FindByID retrieves an appointment with patient and doctor preloaded
func (r *AppointmentRepository) FindByID(id uint) (*models.Appointment, error) {
	var appointment models.Appointment
	err := r.db.Preload("Patient.User").Preload("Doctor.User").First(&appointment, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &appointment, nil
}

// ListByPatient retrieves a patient's appointments, newest slot first
func (r *AppointmentRepository) ListByPatient(patientID uint) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.
		Where("patient_id = ?", patientID).
		Preload("Doctor.User").
		Order("appointment_date DESC").
		Find(&appointments).Error
	return appointments, err
}

// ListByDoctor retrieves a doctor's appointments, newest slot first
func (r *AppointmentRepository) ListByDoctor(doctorID uint) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.
		Where("doctor_id = ?", doctorID).
		Preload("Patient.User").
		Order("appointment_date DESC").
		Find(&appointments).Error
	return appointments, err
}

// UpdateStatus sets an appointment's status
func (r *AppointmentRepository) UpdateStatus(id uint, status models.AppointmentStatus) error {
	result := r.db.Model(&models.Appointment{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindOverdue retrieves PENDING/APPROVED appointments whose slot has passed
func (r *AppointmentRepository) FindOverdue(now time.Time) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.
		Where("appointment_date < ? AND status IN ?", now,
			[]models.AppointmentStatus{models.AppointmentPending, models.AppointmentApproved}).
		Find(&appointments).Error
	return appointments, err
}

// Save persists the full appointment row
func (r *AppointmentRepository) Save(appointment *models.Appointment) error {
	return r.db.Save(appointment).Error
}
