package service

import (
	"errors"
	"testing"
	"time"

	"hospital-backend/internal/apperrors"
	"hospital-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newAdmissionFixture() (*AdmissionService, *mockAdmissionRepo, *mockProfileRepo, *mockRoomRepo, *mockBillRepo, *mockAuditRepo) {
	admissionRepo := new(mockAdmissionRepo)
	profileRepo := new(mockProfileRepo)
	roomRepo := new(mockRoomRepo)
	billRepo := new(mockBillRepo)
	auditRepo := new(mockAuditRepo)
	svc := NewAdmissionService(admissionRepo, profileRepo, roomRepo, billRepo, auditRepo)
	return svc, admissionRepo, profileRepo, roomRepo, billRepo, auditRepo
}

func uintPtr(v uint) *uint {
	return &v
}

var testPrincipal = Principal{UserID: 1, Role: models.RoleAdmin}

func TestAdmit_Success(t *testing.T) {
	svc, admissionRepo, profileRepo, roomRepo, _, auditRepo := newAdmissionFixture()

	profileRepo.On("FindPatientByID", uint(7)).Return(&models.Patient{ID: 7}, nil)
	roomRepo.On("GetRoomByID", uint(3)).Return(&models.Room{ID: 3}, nil)
	admissionRepo.On("CreateWithBed", mock.AnythingOfType("*models.Admission")).
		Run(func(args mock.Arguments) {
			args.Get(0).(*models.Admission).ID = 42
		}).Return(nil)
	auditRepo.On("CreateAuditLog", mock.Anything, models.RoleAdmin, models.ActionAdmissionCreate, mock.Anything).Return(nil)

	resp, err := svc.Admit(testPrincipal, AdmitRequest{
		PatientID: 7,
		RoomID:    uintPtr(3),
		BedID:     uintPtr(11),
	})

	assert.NoError(t, err)
	assert.Equal(t, uint(42), resp.ID)
	assert.Equal(t, models.AdmissionAdmitted, resp.Status)
	assert.Equal(t, 1, resp.LengthOfStay)
	admissionRepo.AssertExpectations(t)
}

func TestAdmit_UnknownPatient(t *testing.T) {
	svc, admissionRepo, profileRepo, _, _, _ := newAdmissionFixture()

	profileRepo.On("FindPatientByID", uint(99)).Return(nil, apperrors.ErrNotFound)

	_, err := svc.Admit(testPrincipal, AdmitRequest{PatientID: 99})

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	admissionRepo.AssertNotCalled(t, "CreateWithBed", mock.Anything)
}

func TestAdmit_BedUnavailable(t *testing.T) {
	svc, admissionRepo, profileRepo, _, _, _ := newAdmissionFixture()

	profileRepo.On("FindPatientByID", uint(7)).Return(&models.Patient{ID: 7}, nil)
	admissionRepo.On("CreateWithBed", mock.AnythingOfType("*models.Admission")).
		Return(apperrors.ErrBedUnavailable)

	_, err := svc.Admit(testPrincipal, AdmitRequest{PatientID: 7, BedID: uintPtr(11)})

	assert.ErrorIs(t, err, apperrors.ErrBedUnavailable)
}

func TestDischarge_Success(t *testing.T) {
	svc, admissionRepo, _, _, billRepo, auditRepo := newAdmissionFixture()

	admitDate := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	active := &models.Admission{ID: 5, PatientID: 7, AdmitDate: admitDate, Status: models.AdmissionAdmitted}

	dischargeDate := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	discharged := &models.Admission{
		ID:            5,
		PatientID:     7,
		AdmitDate:     admitDate,
		DischargeDate: &dischargeDate,
		Status:        models.AdmissionDischarged,
	}

	admissionRepo.On("FindByID", uint(5)).Return(active, nil)
	billRepo.On("FindUnpaidByAdmission", uint(5)).Return([]models.Bill{}, nil)
	admissionRepo.On("Discharge", uint(5), mock.AnythingOfType("time.Time")).Return(discharged, nil)
	auditRepo.On("CreateAuditLog", mock.Anything, models.RoleAdmin, models.ActionAdmissionDischarge, mock.Anything).Return(nil)

	resp, err := svc.Discharge(testPrincipal, 5)

	assert.NoError(t, err)
	assert.Equal(t, models.AdmissionDischarged, resp.Status)
	assert.NotNil(t, resp.DischargeDate)
	assert.Equal(t, 2, resp.LengthOfStay)
	admissionRepo.AssertExpectations(t)
}

func TestDischarge_BlockedByUnpaidBills(t *testing.T) {
	svc, admissionRepo, _, _, billRepo, _ := newAdmissionFixture()

	active := &models.Admission{ID: 5, PatientID: 7, AdmitDate: time.Now().UTC(), Status: models.AdmissionAdmitted}
	admissionRepo.On("FindByID", uint(5)).Return(active, nil)
	billRepo.On("FindUnpaidByAdmission", uint(5)).Return([]models.Bill{
		{ID: 21, Status: models.BillUnpaid},
		{ID: 22, Status: models.BillUnpaid},
	}, nil)

	_, err := svc.Discharge(testPrincipal, 5)

	var billingErr *apperrors.UnclearedBillingError
	assert.True(t, errors.As(err, &billingErr))
	assert.Equal(t, uint(5), billingErr.AdmissionID)
	assert.Equal(t, []uint{21, 22}, billingErr.BillIDs)
	admissionRepo.AssertNotCalled(t, "Discharge", mock.Anything, mock.Anything)
}

func TestDischarge_AlreadyClosed(t *testing.T) {
	svc, admissionRepo, _, _, billRepo, _ := newAdmissionFixture()

	closed := &models.Admission{ID: 5, Status: models.AdmissionDischarged}
	admissionRepo.On("FindByID", uint(5)).Return(closed, nil)

	_, err := svc.Discharge(testPrincipal, 5)

	assert.ErrorIs(t, err, apperrors.ErrAdmissionClosed)
	billRepo.AssertNotCalled(t, "FindUnpaidByAdmission", mock.Anything)
}

func TestDischarge_NotFound(t *testing.T) {
	svc, admissionRepo, _, _, _, _ := newAdmissionFixture()

	admissionRepo.On("FindByID", uint(404)).Return(nil, apperrors.ErrNotFound)

	_, err := svc.Discharge(testPrincipal, 404)

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestTransfer_Success(t *testing.T) {
	svc, admissionRepo, _, _, _, auditRepo := newAdmissionFixture()

	transferred := &models.Admission{
		ID:        5,
		PatientID: 7,
		AdmitDate: time.Now().UTC(),
		Status:    models.AdmissionTransferred,
	}
	admissionRepo.On("MarkTransferred", uint(5)).Return(transferred, nil)
	auditRepo.On("CreateAuditLog", mock.Anything, models.RoleAdmin, models.ActionAdmissionTransfer, mock.Anything).Return(nil)

	resp, err := svc.Transfer(testPrincipal, 5)

	assert.NoError(t, err)
	assert.Equal(t, models.AdmissionTransferred, resp.Status)
}

func TestTransfer_ClosedAdmission(t *testing.T) {
	svc, admissionRepo, _, _, _, _ := newAdmissionFixture()

	admissionRepo.On("MarkTransferred", uint(5)).Return(nil, apperrors.ErrAdmissionClosed)

	_, err := svc.Transfer(testPrincipal, 5)

	assert.ErrorIs(t, err, apperrors.ErrAdmissionClosed)
}

func TestList_AttachesLengthOfStay(t *testing.T) {
	svc, admissionRepo, _, _, _, _ := newAdmissionFixture()

	admitDate := time.Now().UTC().Add(-48 * time.Hour)
	admissionRepo.On("List", models.AdmissionAdmitted).Return([]models.Admission{
		{ID: 1, AdmitDate: admitDate, Status: models.AdmissionAdmitted},
	}, nil)

	responses, err := svc.List(models.AdmissionAdmitted)

	assert.NoError(t, err)
	assert.Len(t, responses, 1)
	assert.Equal(t, 3, responses[0].LengthOfStay)
}
