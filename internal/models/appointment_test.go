package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsPastDue(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name    string
		date    time.Time
		status  AppointmentStatus
		pastDue bool
	}{
		{"pending in the past", past, AppointmentPending, true},
		{"approved in the past", past, AppointmentApproved, true},
		{"pending in the future", future, AppointmentPending, false},
		{"cancelled in the past", past, AppointmentCancelled, false},
		{"completed in the past", past, AppointmentCompleted, false},
		{"expired in the past", past, AppointmentExpired, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Appointment{AppointmentDate: tt.date, Status: tt.status}
			assert.Equal(t, tt.pastDue, a.IsPastDue(now))
		})
	}
}

func TestResolveOverdue_PendingExpires(t *testing.T) {
	now := time.Now()
	a := Appointment{AppointmentDate: now.Add(-time.Hour), Status: AppointmentPending}

	assert.True(t, a.ResolveOverdue(now))
	assert.Equal(t, AppointmentExpired, a.Status)
}

func TestResolveOverdue_ApprovedCompletes(t *testing.T) {
	now := time.Now()
	a := Appointment{AppointmentDate: now.Add(-time.Hour), Status: AppointmentApproved}

	assert.True(t, a.ResolveOverdue(now))
	assert.Equal(t, AppointmentCompleted, a.Status)
}

func TestResolveOverdue_Idempotent(t *testing.T) {
	now := time.Now()
	a := Appointment{AppointmentDate: now.Add(-time.Hour), Status: AppointmentPending}

	assert.True(t, a.ResolveOverdue(now))
	assert.False(t, a.ResolveOverdue(now))
	assert.Equal(t, AppointmentExpired, a.Status)
}

func TestResolveOverdue_FutureUntouched(t *testing.T) {
	now := time.Now()
	a := Appointment{AppointmentDate: now.Add(time.Hour), Status: AppointmentPending}

	assert.False(t, a.ResolveOverdue(now))
	assert.Equal(t, AppointmentPending, a.Status)
}
