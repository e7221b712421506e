package service

import (
	"fmt"
	"time"

	"hospital-backend/internal/apperrors"
	"hospital-backend/internal/models"
)

// AppointmentService manages booking and doctor-side status updates
type AppointmentService struct {
	appointmentRepo AppointmentRepository
	profileRepo     ProfileRepository
}

func NewAppointmentService(appointmentRepo AppointmentRepository, profileRepo ProfileRepository) *AppointmentService {
	return &AppointmentService{
		appointmentRepo: appointmentRepo,
		profileRepo:     profileRepo,
	}
}

// statusChangesByDoctor are the transitions a doctor may apply by hand;
// EXPIRED is reserved for the overdue sweep.
var statusChangesByDoctor = map[models.AppointmentStatus]bool{
	models.AppointmentApproved:  true,
	models.AppointmentCompleted: true,
	models.AppointmentCancelled: true,
}

// Book creates a PENDING appointment. Slots in the past are rejected
// before anything is persisted.
func (s *AppointmentService) Book(patientID uint, doctorID *uint, date time.Time) (*models.Appointment, error) {
	if date.Before(time.Now()) {
		return nil, apperrors.ErrPastAppointment
	}
	if _, err := s.profileRepo.FindPatientByID(patientID); err != nil {
		return nil, fmt.Errorf("patient %d: %w", patientID, err)
	}
	if doctorID != nil {
		if _, err := s.profileRepo.FindDoctorByID(*doctorID); err != nil {
			return nil, fmt.Errorf("doctor %d: %w", *doctorID, err)
		}
	}

	appointment := &models.Appointment{
		PatientID:       patientID,
		DoctorID:        doctorID,
		AppointmentDate: date,
		Status:          models.AppointmentPending,
	}
	if err := s.appointmentRepo.CreateAppointment(appointment); err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}
	return appointment, nil
}

// UpdateStatus applies a doctor's decision to their own appointment
func (s *AppointmentService) UpdateStatus(doctorID uint, appointmentID uint, status models.AppointmentStatus) (*models.Appointment, error) {
	if !statusChangesByDoctor[status] {
		return nil, fmt.Errorf("status %s cannot be set manually", status)
	}

	appointment, err := s.appointmentRepo.FindByID(appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment.DoctorID == nil || *appointment.DoctorID != doctorID {
		return nil, apperrors.ErrNotFound
	}

	if err := s.appointmentRepo.UpdateStatus(appointmentID, status); err != nil {
		return nil, err
	}
	appointment.Status = status
	return appointment, nil
}

// ListForPatient retrieves a patient's appointments
func (s *AppointmentService) ListForPatient(patientID uint) ([]models.Appointment, error) {
	return s.appointmentRepo.ListByPatient(patientID)
}

// ListForDoctor retrieves a doctor's appointments
func (s *AppointmentService) ListForDoctor(doctorID uint) ([]models.Appointment, error) {
	return s.appointmentRepo.ListByDoctor(doctorID)
}
