package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLengthOfStay_SameDay(t *testing.T) {
	admit := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	discharge := time.Date(2026, 3, 1, 17, 30, 0, 0, time.UTC)
	a := Admission{AdmitDate: admit, DischargeDate: &discharge}

	assert.Equal(t, 1, a.LengthOfStay(time.Now()))
}

func TestLengthOfStay_CountsCalendarDaysNotHours(t *testing.T) {
	// Two hours of elapsed time across a midnight boundary is a 2-day stay.
	admit := time.Date(2026, 3, 1, 23, 0, 0, 0, time.UTC)
	discharge := time.Date(2026, 3, 2, 1, 0, 0, 0, time.UTC)
	a := Admission{AdmitDate: admit, DischargeDate: &discharge}

	assert.Equal(t, 2, a.LengthOfStay(time.Now()))
}

func TestLengthOfStay_MultiDay(t *testing.T) {
	admit := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	discharge := time.Date(2026, 3, 6, 9, 0, 0, 0, time.UTC)
	a := Admission{AdmitDate: admit, DischargeDate: &discharge}

	assert.Equal(t, 6, a.LengthOfStay(time.Now()))
}

func TestLengthOfStay_ActiveStayUsesNow(t *testing.T) {
	admit := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	a := Admission{AdmitDate: admit, Status: AdmissionAdmitted}

	now := time.Date(2026, 3, 3, 0, 30, 0, 0, time.UTC)
	assert.Equal(t, 3, a.LengthOfStay(now))
}

func TestLengthOfStay_StableAfterDischarge(t *testing.T) {
	admit := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	discharge := time.Date(2026, 3, 3, 12, 0, 0, 0, time.UTC)
	a := Admission{AdmitDate: admit, DischargeDate: &discharge, Status: AdmissionDischarged}

	// Whatever "now" is, a closed stay keeps its discharge-date length.
	assert.Equal(t, 3, a.LengthOfStay(discharge.Add(72*time.Hour)))
	assert.Equal(t, 3, a.LengthOfStay(discharge.Add(720*time.Hour)))
}

func TestLengthOfStay_MonthBoundary(t *testing.T) {
	admit := time.Date(2026, 2, 27, 14, 0, 0, 0, time.UTC)
	discharge := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	a := Admission{AdmitDate: admit, DischargeDate: &discharge}

	// Feb 27, 28, Mar 1, Mar 2 inclusive
	assert.Equal(t, 4, a.LengthOfStay(time.Now()))
}

func TestClosed(t *testing.T) {
	assert.False(t, (&Admission{Status: AdmissionAdmitted}).Closed())
	assert.True(t, (&Admission{Status: AdmissionDischarged}).Closed())
	assert.True(t, (&Admission{Status: AdmissionTransferred}).Closed())
}
