package repository

import (
	"errors"
	"time"

	"hospital-backend/internal/apperrors"
	"hospital-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AdmissionRepository struct {
	db *gorm.DB
}

func NewAdmissionRepo(db *gorm.DB) *AdmissionRepository {
	return &AdmissionRepository{db: db}
}

// CreateWithBed creates an admission and, when a bed is attached, reserves it
// in the same transaction. The bed row is locked FOR UPDATE before the
// availability check so that two admitting actors racing for the same bed
// serialize: the second observes OCCUPIED after the first commits and fails
// with ErrBedUnavailable. Either both writes commit or neither does.
func (r *AdmissionRepository) CreateWithBed(admission *models.Admission) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if admission.BedID != nil {
			var bed models.Bed
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&bed, *admission.BedID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperrors.ErrNotFound
				}
				return err
			}
			if bed.Status != models.BedAvailable {
				return apperrors.ErrBedUnavailable
			}
			if err := tx.Create(admission).Error; err != nil {
				return err
			}
			return tx.Model(&models.Bed{}).
				Where("id = ?", bed.ID).
				Update("status", models.BedOccupied).Error
		}
		return tx.Create(admission).Error
	})
}

// Discharge closes an admission and releases its bed as one atomic unit.
// The unpaid-bill gate is re-checked inside the transaction: bills can be
// created between an upstream validation and the commit, and the admission
// must stay ADMITTED (bed OCCUPIED) whenever the gate fails.
func (r *AdmissionRepository) Discharge(id uint, now time.Time) (*models.Admission, error) {
	var admission models.Admission
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&admission, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrNotFound
			}
			return err
		}
		if admission.Closed() {
			return apperrors.ErrAdmissionClosed
		}
		if now.Before(admission.AdmitDate) {
			return apperrors.ErrInvalidDateRange
		}

		var unpaidIDs []uint
		if err := tx.Model(&models.Bill{}).
			Where("admission_id = ? AND status = ?", id, models.BillUnpaid).
			Pluck("id", &unpaidIDs).Error; err != nil {
			return err
		}
		if len(unpaidIDs) > 0 {
			return &apperrors.UnclearedBillingError{AdmissionID: id, BillIDs: unpaidIDs}
		}

		if err := tx.Model(&admission).Updates(map[string]interface{}{
			"status":         models.AdmissionDischarged,
			"discharge_date": now,
		}).Error; err != nil {
			return err
		}
		admission.Status = models.AdmissionDischarged
		admission.DischargeDate = &now

		if admission.BedID != nil {
			if err := tx.Model(&models.Bed{}).
				Where("id = ?", *admission.BedID).
				Update("status", models.BedAvailable).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &admission, nil
}

// MarkTransferred flips an active admission to the terminal TRANSFERRED
// state. No bed release is specified for transfers.
func (r *AdmissionRepository) MarkTransferred(id uint) (*models.Admission, error) {
	var admission models.Admission
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&admission, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrNotFound
			}
			return err
		}
		if admission.Closed() {
			return apperrors.ErrAdmissionClosed
		}
		if err := tx.Model(&admission).
			Update("status", models.AdmissionTransferred).Error; err != nil {
			return err
		}
		admission.Status = models.AdmissionTransferred
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &admission, nil
}

// FindByID retrieves an admission with its related records preloaded
func (r *AdmissionRepository) FindByID(id uint) (*models.Admission, error) {
	var admission models.Admission
	err := r.db.
		Preload("Patient.User").
		Preload("Doctor.User").
		Preload("Room").
		Preload("Bed").
		Preload("Bills").
		First(&admission, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &admission, nil
}

// List retrieves admissions, optionally filtered by status, newest first
func (r *AdmissionRepository) List(status models.AdmissionStatus) ([]models.Admission, error) {
	var admissions []models.Admission
	query := r.db.
		Preload("Patient.User").
		Preload("Room").
		Preload("Bed").
		Order("admit_date DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Find(&admissions).Error
	return admissions, err
}

// ListByPatient retrieves a patient's admission history, newest first
func (r *AdmissionRepository) ListByPatient(patientID uint) ([]models.Admission, error) {
	var admissions []models.Admission
	err := r.db.
		Where("patient_id = ?", patientID).
		Preload("Room").
		Preload("Bed").
		Order("admit_date DESC").
		Find(&admissions).Error
	return admissions, err
}

// ActiveAdmissionForBed returns the ADMITTED admission holding the bed,
// or ErrNotFound when the bed is free of active stays.
func (r *AdmissionRepository) ActiveAdmissionForBed(bedID uint) (*models.Admission, error) {
	var admission models.Admission
	err := r.db.
		Where("bed_id = ? AND status = ?", bedID, models.AdmissionAdmitted).
		First(&admission).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &admission, nil
}
