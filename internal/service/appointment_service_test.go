package service

import (
	"testing"
	"time"

	"hospital-backend/internal/apperrors"
	"hospital-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newAppointmentFixture() (*AppointmentService, *mockAppointmentRepo, *mockProfileRepo) {
	appointmentRepo := new(mockAppointmentRepo)
	profileRepo := new(mockProfileRepo)
	svc := NewAppointmentService(appointmentRepo, profileRepo)
	return svc, appointmentRepo, profileRepo
}

func TestBook_Success(t *testing.T) {
	svc, appointmentRepo, profileRepo := newAppointmentFixture()

	profileRepo.On("FindPatientByID", uint(7)).Return(&models.Patient{ID: 7}, nil)
	profileRepo.On("FindDoctorByID", uint(3)).Return(&models.Doctor{ID: 3}, nil)
	appointmentRepo.On("CreateAppointment", mock.AnythingOfType("*models.Appointment")).Return(nil)

	appointment, err := svc.Book(7, uintPtr(3), time.Now().Add(24*time.Hour))

	assert.NoError(t, err)
	assert.Equal(t, models.AppointmentPending, appointment.Status)
	appointmentRepo.AssertExpectations(t)
}

func TestBook_PastSlotRejected(t *testing.T) {
	svc, appointmentRepo, _ := newAppointmentFixture()

	_, err := svc.Book(7, nil, time.Now().Add(-time.Hour))

	assert.ErrorIs(t, err, apperrors.ErrPastAppointment)
	appointmentRepo.AssertNotCalled(t, "CreateAppointment", mock.Anything)
}

func TestUpdateStatus_OwnAppointment(t *testing.T) {
	svc, appointmentRepo, _ := newAppointmentFixture()

	appointmentRepo.On("FindByID", uint(10)).Return(&models.Appointment{
		ID:       10,
		DoctorID: uintPtr(3),
		Status:   models.AppointmentPending,
	}, nil)
	appointmentRepo.On("UpdateStatus", uint(10), models.AppointmentApproved).Return(nil)

	appointment, err := svc.UpdateStatus(3, 10, models.AppointmentApproved)

	assert.NoError(t, err)
	assert.Equal(t, models.AppointmentApproved, appointment.Status)
}

func TestUpdateStatus_OtherDoctorsAppointment(t *testing.T) {
	svc, appointmentRepo, _ := newAppointmentFixture()

	appointmentRepo.On("FindByID", uint(10)).Return(&models.Appointment{
		ID:       10,
		DoctorID: uintPtr(99),
		Status:   models.AppointmentPending,
	}, nil)

	_, err := svc.UpdateStatus(3, 10, models.AppointmentApproved)

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	appointmentRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
}

func TestUpdateStatus_ExpiredIsReservedForSweep(t *testing.T) {
	svc, appointmentRepo, _ := newAppointmentFixture()

	_, err := svc.UpdateStatus(3, 10, models.AppointmentExpired)

	assert.Error(t, err)
	appointmentRepo.AssertNotCalled(t, "FindByID", mock.Anything)
}
