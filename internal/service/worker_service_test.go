package service

import (
	"errors"
	"testing"
	"time"

	"hospital-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSweepOverdue_ResolvesBothTransitions(t *testing.T) {
	appointmentRepo := new(mockAppointmentRepo)
	svc := NewWorkerService(appointmentRepo, time.Minute)

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	overdue := []models.Appointment{
		{ID: 1, AppointmentDate: now.Add(-time.Hour), Status: models.AppointmentPending},
		{ID: 2, AppointmentDate: now.Add(-2 * time.Hour), Status: models.AppointmentApproved},
	}

	appointmentRepo.On("FindOverdue", now).Return(overdue, nil)
	appointmentRepo.On("Save", mock.MatchedBy(func(a *models.Appointment) bool {
		return a.ID == 1 && a.Status == models.AppointmentExpired
	})).Return(nil)
	appointmentRepo.On("Save", mock.MatchedBy(func(a *models.Appointment) bool {
		return a.ID == 2 && a.Status == models.AppointmentCompleted
	})).Return(nil)

	updated := svc.SweepOverdue(now)

	assert.Equal(t, 2, updated)
	appointmentRepo.AssertExpectations(t)
}

func TestSweepOverdue_NothingDue(t *testing.T) {
	appointmentRepo := new(mockAppointmentRepo)
	svc := NewWorkerService(appointmentRepo, time.Minute)

	now := time.Now()
	appointmentRepo.On("FindOverdue", now).Return([]models.Appointment{}, nil)

	assert.Equal(t, 0, svc.SweepOverdue(now))
	appointmentRepo.AssertNotCalled(t, "Save", mock.Anything)
}

func TestSweepOverdue_RepoErrorReturnsZero(t *testing.T) {
	appointmentRepo := new(mockAppointmentRepo)
	svc := NewWorkerService(appointmentRepo, time.Minute)

	now := time.Now()
	appointmentRepo.On("FindOverdue", now).Return(nil, errors.New("db gone"))

	assert.Equal(t, 0, svc.SweepOverdue(now))
}

func TestSweepOverdue_PartialSaveFailure(t *testing.T) {
	appointmentRepo := new(mockAppointmentRepo)
	svc := NewWorkerService(appointmentRepo, time.Minute)

	now := time.Now()
	overdue := []models.Appointment{
		{ID: 1, AppointmentDate: now.Add(-time.Hour), Status: models.AppointmentPending},
		{ID: 2, AppointmentDate: now.Add(-time.Hour), Status: models.AppointmentApproved},
	}

	appointmentRepo.On("FindOverdue", now).Return(overdue, nil)
	appointmentRepo.On("Save", mock.MatchedBy(func(a *models.Appointment) bool {
		return a.ID == 1
	})).Return(errors.New("write failed"))
	appointmentRepo.On("Save", mock.MatchedBy(func(a *models.Appointment) bool {
		return a.ID == 2
	})).Return(nil)

	assert.Equal(t, 1, svc.SweepOverdue(now))
}
