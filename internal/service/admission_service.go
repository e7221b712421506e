package service

import (
	"fmt"
	"time"

	"hospital-backend/internal/apperrors"
	"hospital-backend/internal/models"
)

// AdmissionService owns the admission lifecycle: bed reservation on admit,
// the billing-clearance gate on discharge, and bed release.
type AdmissionService struct {
	admissionRepo AdmissionRepository
	profileRepo   ProfileRepository
	roomRepo      RoomRepository
	billRepo      BillRepository
	auditRepo     AuditRepository
}

func NewAdmissionService(
	admissionRepo AdmissionRepository,
	profileRepo ProfileRepository,
	roomRepo RoomRepository,
	billRepo BillRepository,
	auditRepo AuditRepository,
) *AdmissionService {
	return &AdmissionService{
		admissionRepo: admissionRepo,
		profileRepo:   profileRepo,
		roomRepo:      roomRepo,
		billRepo:      billRepo,
		auditRepo:     auditRepo,
	}
}

// AdmitRequest carries the admit tuple. Doctor, room and bed are optional.
type AdmitRequest struct {
	PatientID uint
	DoctorID  *uint
	RoomID    *uint
	BedID     *uint
}

// AdmissionResponse decorates an admission with its derived length of stay
type AdmissionResponse struct {
	models.Admission
	LengthOfStay int `json:"length_of_stay"`
}

// Admit validates the tuple and creates the admission, reserving the bed
// atomically with the admission row. The bed availability check happens
// inside the reservation transaction, not here: upstream form state can be
// stale by the time two admitting actors submit.
//
// Bed-to-room membership is deliberately not validated; a bed may be
// reserved independently of the room on the admission.
func (s *AdmissionService) Admit(principal Principal, req AdmitRequest) (*AdmissionResponse, error) {
	if _, err := s.profileRepo.FindPatientByID(req.PatientID); err != nil {
		return nil, fmt.Errorf("patient %d: %w", req.PatientID, err)
	}
	if req.DoctorID != nil {
		if _, err := s.profileRepo.FindDoctorByID(*req.DoctorID); err != nil {
			return nil, fmt.Errorf("doctor %d: %w", *req.DoctorID, err)
		}
	}
	if req.RoomID != nil {
		if _, err := s.roomRepo.GetRoomByID(*req.RoomID); err != nil {
			return nil, fmt.Errorf("room %d: %w", *req.RoomID, err)
		}
	}

	now := time.Now().UTC()
	admission := &models.Admission{
		PatientID: req.PatientID,
		DoctorID:  req.DoctorID,
		RoomID:    req.RoomID,
		BedID:     req.BedID,
		AdmitDate: now,
		Status:    models.AdmissionAdmitted,
	}

	if err := s.admissionRepo.CreateWithBed(admission); err != nil {
		return nil, err
	}

	_ = s.auditRepo.CreateAuditLog(&principal.UserID, principal.Role, models.ActionAdmissionCreate,
		fmt.Sprintf("Admitted patient %d (admission %d)", admission.PatientID, admission.ID))

	return s.withLengthOfStay(admission, now), nil
}

// Discharge closes an admission once billing is settled. The unpaid-bill
// pre-check here produces the user-facing rejection without opening a
// transaction; the repository re-checks it atomically before committing,
// since bills can change in between.
func (s *AdmissionService) Discharge(principal Principal, admissionID uint) (*AdmissionResponse, error) {
	admission, err := s.admissionRepo.FindByID(admissionID)
	if err != nil {
		return nil, err
	}
	if admission.Closed() {
		return nil, apperrors.ErrAdmissionClosed
	}

	unpaid, err := s.billRepo.FindUnpaidByAdmission(admissionID)
	if err != nil {
		return nil, fmt.Errorf("failed to check billing clearance: %w", err)
	}
	if len(unpaid) > 0 {
		ids := make([]uint, 0, len(unpaid))
		for _, bill := range unpaid {
			ids = append(ids, bill.ID)
		}
		return nil, &apperrors.UnclearedBillingError{AdmissionID: admissionID, BillIDs: ids}
	}

	now := time.Now().UTC()
	discharged, err := s.admissionRepo.Discharge(admissionID, now)
	if err != nil {
		return nil, err
	}

	_ = s.auditRepo.CreateAuditLog(&principal.UserID, principal.Role, models.ActionAdmissionDischarge,
		fmt.Sprintf("Discharged admission %d (patient %d)", discharged.ID, discharged.PatientID))

	return s.withLengthOfStay(discharged, now), nil
}

// Transfer moves an active admission into the terminal TRANSFERRED state
func (s *AdmissionService) Transfer(principal Principal, admissionID uint) (*AdmissionResponse, error) {
	transferred, err := s.admissionRepo.MarkTransferred(admissionID)
	if err != nil {
		return nil, err
	}

	_ = s.auditRepo.CreateAuditLog(&principal.UserID, principal.Role, models.ActionAdmissionTransfer,
		fmt.Sprintf("Transferred admission %d (patient %d)", transferred.ID, transferred.PatientID))

	return s.withLengthOfStay(transferred, time.Now().UTC()), nil
}

// Get retrieves an admission with its derived length of stay
func (s *AdmissionService) Get(admissionID uint) (*AdmissionResponse, error) {
	admission, err := s.admissionRepo.FindByID(admissionID)
	if err != nil {
		return nil, err
	}
	return s.withLengthOfStay(admission, time.Now().UTC()), nil
}

// List retrieves admissions, optionally filtered by status
func (s *AdmissionService) List(status models.AdmissionStatus) ([]AdmissionResponse, error) {
	admissions, err := s.admissionRepo.List(status)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	responses := make([]AdmissionResponse, 0, len(admissions))
	for i := range admissions {
		responses = append(responses, *s.withLengthOfStay(&admissions[i], now))
	}
	return responses, nil
}

// ListByPatient retrieves a patient's admission history
func (s *AdmissionService) ListByPatient(patientID uint) ([]AdmissionResponse, error) {
	admissions, err := s.admissionRepo.ListByPatient(patientID)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	responses := make([]AdmissionResponse, 0, len(admissions))
	for i := range admissions {
		responses = append(responses, *s.withLengthOfStay(&admissions[i], now))
	}
	return responses, nil
}

func (s *AdmissionService) withLengthOfStay(admission *models.Admission, now time.Time) *AdmissionResponse {
	return &AdmissionResponse{
		Admission:    *admission,
		LengthOfStay: admission.LengthOfStay(now),
	}
}
