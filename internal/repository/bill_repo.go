package repository

import (
	"errors"

	"hospital-backend/internal/apperrors"
	"hospital-backend/internal/models"

	"gorm.io/gorm"
)

type BillRepository struct {
	db *gorm.DB
}

func NewBillRepo(db *gorm.DB) *BillRepository {
	return &BillRepository{db: db}
}

// CreateBill creates a new bill
func (r *BillRepository) CreateBill(bill *models.Bill) error {
	return r.db.Create(bill).Error
}

// FindByID retrieves a bill with its payments
func (r *BillRepository) FindByID(id uint) (*models.Bill, error) {
	var bill models.Bill
	err := r.db.Preload("Payments").First(&bill, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &bill, nil
}

// ListByPatient retrieves a patient's bills, newest first
func (r *BillRepository) ListByPatient(patientID uint) ([]models.Bill, error) {
	var bills []models.Bill
	err := r.db.
		Where("patient_id = ?", patientID).
		Order("created_at DESC").
		Find(&bills).Error
	return bills, err
}

// ListByAdmission retrieves all bills linked to an admission
func (r *BillRepository) ListByAdmission(admissionID uint) ([]models.Bill, error) {
	var bills []models.Bill
	err := r.db.
		Where("admission_id = ?", admissionID).
		Order("created_at DESC").
		Find(&bills).Error
	return bills, err
}

// FindUnpaidByAdmission retrieves the UNPAID bills linked to an admission
func (r *BillRepository) FindUnpaidByAdmission(admissionID uint) ([]models.Bill, error) {
	var bills []models.Bill
	err := r.db.
		Where("admission_id = ? AND status = ?", admissionID, models.BillUnpaid).
		Find(&bills).Error
	return bills, err
}

// UpdateStatus sets a bill's settlement status
func (r *BillRepository) UpdateStatus(id uint, status models.BillStatus) error {
	result := r.db.Model(&models.Bill{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// CreatePayment appends a payment record against a bill
func (r *BillRepository) CreatePayment(payment *models.Payment) error {
	return r.db.Create(payment).Error
}

// ListPayments retrieves the payments recorded against a bill
func (r *BillRepository) ListPayments(billID uint) ([]models.Payment, error) {
	var payments []models.Payment
	err := r.db.
		Where("bill_id = ?", billID).
		Order("created_at ASC").
		Find(&payments).Error
	return payments, err
}
