package service

import (
	"testing"

	"hospital-backend/internal/apperrors"
	"hospital-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newBillingFixture() (*BillingService, *mockBillRepo, *mockProfileRepo, *mockAuditRepo) {
	billRepo := new(mockBillRepo)
	profileRepo := new(mockProfileRepo)
	auditRepo := new(mockAuditRepo)
	svc := NewBillingService(billRepo, profileRepo, auditRepo)
	return svc, billRepo, profileRepo, auditRepo
}

func TestCreateBill_ComputesTotal(t *testing.T) {
	svc, billRepo, profileRepo, auditRepo := newBillingFixture()

	profileRepo.On("FindPatientByID", uint(7)).Return(&models.Patient{ID: 7}, nil)
	billRepo.On("CreateBill", mock.AnythingOfType("*models.Bill")).Return(nil)
	auditRepo.On("CreateAuditLog", mock.Anything, mock.Anything, models.ActionBillCreate, mock.Anything).Return(nil)

	bill, err := svc.CreateBill(testPrincipal, CreateBillRequest{
		PatientID:   7,
		RoomCharge:  1200,
		StaffCharge: 450,
		Tax:         165,
	})

	assert.NoError(t, err)
	assert.Equal(t, 1815.0, bill.TotalAmount)
	assert.Equal(t, models.BillUnpaid, bill.Status)
	assert.NotEmpty(t, bill.ReferenceCode)
}

func TestCreateBill_UnknownPatient(t *testing.T) {
	svc, billRepo, profileRepo, _ := newBillingFixture()

	profileRepo.On("FindPatientByID", uint(99)).Return(nil, apperrors.ErrNotFound)

	_, err := svc.CreateBill(testPrincipal, CreateBillRequest{PatientID: 99})

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	billRepo.AssertNotCalled(t, "CreateBill", mock.Anything)
}

func TestMarkBillPaid(t *testing.T) {
	svc, billRepo, _, auditRepo := newBillingFixture()

	billRepo.On("FindByID", uint(21)).Return(&models.Bill{ID: 21, Status: models.BillUnpaid}, nil)
	billRepo.On("UpdateStatus", uint(21), models.BillPaid).Return(nil)
	auditRepo.On("CreateAuditLog", mock.Anything, mock.Anything, models.ActionBillMarkPaid, mock.Anything).Return(nil)

	bill, err := svc.MarkBillPaid(testPrincipal, 21)

	assert.NoError(t, err)
	assert.Equal(t, models.BillPaid, bill.Status)
	billRepo.AssertExpectations(t)
}

func TestMarkBillPaid_AlreadyPaidIsNoop(t *testing.T) {
	svc, billRepo, _, _ := newBillingFixture()

	billRepo.On("FindByID", uint(21)).Return(&models.Bill{ID: 21, Status: models.BillPaid}, nil)

	bill, err := svc.MarkBillPaid(testPrincipal, 21)

	assert.NoError(t, err)
	assert.Equal(t, models.BillPaid, bill.Status)
	billRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
}

func TestRecordPayment_DoesNotSettleBill(t *testing.T) {
	svc, billRepo, _, auditRepo := newBillingFixture()

	billRepo.On("FindByID", uint(21)).Return(&models.Bill{ID: 21, Status: models.BillUnpaid}, nil)
	billRepo.On("CreatePayment", mock.AnythingOfType("*models.Payment")).Return(nil)
	auditRepo.On("CreateAuditLog", mock.Anything, mock.Anything, models.ActionPaymentRecord, mock.Anything).Return(nil)

	payment, err := svc.RecordPayment(testPrincipal, 21, 500, "CARD", true)

	assert.NoError(t, err)
	assert.Equal(t, models.PaymentSuccess, payment.PaymentStatus)
	assert.Equal(t, 500.0, payment.TotalAmount)
	// Recording a payment never touches the bill's status.
	billRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
}

func TestRecordPayment_FailedAttemptKept(t *testing.T) {
	svc, billRepo, _, auditRepo := newBillingFixture()

	billRepo.On("FindByID", uint(21)).Return(&models.Bill{ID: 21, Status: models.BillUnpaid}, nil)
	billRepo.On("CreatePayment", mock.AnythingOfType("*models.Payment")).Return(nil)
	auditRepo.On("CreateAuditLog", mock.Anything, mock.Anything, models.ActionPaymentRecord, mock.Anything).Return(nil)

	payment, err := svc.RecordPayment(testPrincipal, 21, 500, "UPI", false)

	assert.NoError(t, err)
	assert.Equal(t, models.PaymentFailed, payment.PaymentStatus)
	billRepo.AssertCalled(t, "CreatePayment", mock.AnythingOfType("*models.Payment"))
}
