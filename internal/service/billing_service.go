package service

import (
	"fmt"

	"hospital-backend/internal/models"

	"github.com/google/uuid"
)

// BillingService manages bills and their append-only payment records.
// Payments never flip a bill's status; settling a bill is the explicit
// MarkBillPaid action.
type BillingService struct {
	billRepo    BillRepository
	profileRepo ProfileRepository
	auditRepo   AuditRepository
}

func NewBillingService(billRepo BillRepository, profileRepo ProfileRepository, auditRepo AuditRepository) *BillingService {
	return &BillingService{
		billRepo:    billRepo,
		profileRepo: profileRepo,
		auditRepo:   auditRepo,
	}
}

// CreateBillRequest carries the bill components. The total is computed
// here, never trusted from the caller.
type CreateBillRequest struct {
	PatientID     uint
	AdmissionID   *uint
	AppointmentID *uint
	RoomCharge    float64
	StaffCharge   float64
	Tax           float64
}

// CreateBill creates an UNPAID bill with total = room + staff + tax
func (s *BillingService) CreateBill(principal Principal, req CreateBillRequest) (*models.Bill, error) {
	if _, err := s.profileRepo.FindPatientByID(req.PatientID); err != nil {
		return nil, fmt.Errorf("patient %d: %w", req.PatientID, err)
	}

	bill := &models.Bill{
		ReferenceCode: uuid.New().String(),
		PatientID:     req.PatientID,
		AdmissionID:   req.AdmissionID,
		AppointmentID: req.AppointmentID,
		RoomCharge:    req.RoomCharge,
		StaffCharge:   req.StaffCharge,
		Tax:           req.Tax,
		TotalAmount:   req.RoomCharge + req.StaffCharge + req.Tax,
		Status:        models.BillUnpaid,
	}

	if err := s.billRepo.CreateBill(bill); err != nil {
		return nil, fmt.Errorf("failed to create bill: %w", err)
	}

	_ = s.auditRepo.CreateAuditLog(&principal.UserID, principal.Role, models.ActionBillCreate,
		fmt.Sprintf("Bill %d created for patient %d, total %.2f", bill.ID, bill.PatientID, bill.TotalAmount))

	return bill, nil
}

// GetBill retrieves a bill with its payments
func (s *BillingService) GetBill(id uint) (*models.Bill, error) {
	return s.billRepo.FindByID(id)
}

// ListByPatient retrieves a patient's bills
func (s *BillingService) ListByPatient(patientID uint) ([]models.Bill, error) {
	return s.billRepo.ListByPatient(patientID)
}

// ListByAdmission retrieves the bills linked to an admission
func (s *BillingService) ListByAdmission(admissionID uint) ([]models.Bill, error) {
	return s.billRepo.ListByAdmission(admissionID)
}

// MarkBillPaid settles a bill. This is the only path to PAID.
func (s *BillingService) MarkBillPaid(principal Principal, billID uint) (*models.Bill, error) {
	bill, err := s.billRepo.FindByID(billID)
	if err != nil {
		return nil, err
	}
	if bill.Status == models.BillPaid {
		return bill, nil
	}

	if err := s.billRepo.UpdateStatus(billID, models.BillPaid); err != nil {
		return nil, err
	}
	bill.Status = models.BillPaid

	_ = s.auditRepo.CreateAuditLog(&principal.UserID, principal.Role, models.ActionBillMarkPaid,
		fmt.Sprintf("Bill %d marked PAID", billID))

	return bill, nil
}

// RecordPayment appends a payment against a bill without touching the
// bill's status.
func (s *BillingService) RecordPayment(principal Principal, billID uint, amount float64, method string, success bool) (*models.Payment, error) {
	if _, err := s.billRepo.FindByID(billID); err != nil {
		return nil, err
	}

	status := models.PaymentSuccess
	if !success {
		status = models.PaymentFailed
	}
	payment := &models.Payment{
		BillID:        billID,
		TotalAmount:   amount,
		PaymentMethod: method,
		PaymentStatus: status,
	}
	if err := s.billRepo.CreatePayment(payment); err != nil {
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}

	_ = s.auditRepo.CreateAuditLog(&principal.UserID, principal.Role, models.ActionPaymentRecord,
		fmt.Sprintf("Payment of %.2f (%s) recorded against bill %d", amount, status, billID))

	return payment, nil
}

// ListPayments retrieves the payments recorded against a bill
func (s *BillingService) ListPayments(billID uint) ([]models.Payment, error) {
	return s.billRepo.ListPayments(billID)
}
