package service

import (
	"errors"
	"fmt"

	"hospital-backend/internal/apperrors"
	"hospital-backend/internal/models"
)

// FacilityService manages departments, rooms and beds
type FacilityService struct {
	departmentRepo DepartmentRepository
	roomRepo       RoomRepository
	admissionRepo  AdmissionRepository
	auditRepo      AuditRepository
}

func NewFacilityService(
	departmentRepo DepartmentRepository,
	roomRepo RoomRepository,
	admissionRepo AdmissionRepository,
	auditRepo AuditRepository,
) *FacilityService {
	return &FacilityService{
		departmentRepo: departmentRepo,
		roomRepo:       roomRepo,
		admissionRepo:  admissionRepo,
		auditRepo:      auditRepo,
	}
}

// ListDepartments retrieves all departments
func (s *FacilityService) ListDepartments() ([]models.Department, error) {
	return s.departmentRepo.ListDepartments()
}

// CreateDepartment creates a new department
func (s *FacilityService) CreateDepartment(department *models.Department) error {
	return s.departmentRepo.CreateDepartment(department)
}

// UpdateDepartment updates an existing department
func (s *FacilityService) UpdateDepartment(department *models.Department) error {
	if _, err := s.departmentRepo.FindByID(department.ID); err != nil {
		return err
	}
	return s.departmentRepo.UpdateDepartment(department)
}

// DeleteDepartment removes a department and its rooms
func (s *FacilityService) DeleteDepartment(id uint) error {
	return s.departmentRepo.DeleteDepartment(id)
}

// ListRooms retrieves all rooms with beds
func (s *FacilityService) ListRooms() ([]models.Room, error) {
	return s.roomRepo.GetAllRooms()
}

// ListRoomsByDepartment retrieves a department's rooms
func (s *FacilityService) ListRoomsByDepartment(departmentID uint) ([]models.Room, error) {
	if _, err := s.departmentRepo.FindByID(departmentID); err != nil {
		return nil, err
	}
	return s.roomRepo.GetRoomsByDepartment(departmentID)
}

// GetRoom retrieves a room with its beds
func (s *FacilityService) GetRoom(id uint) (*models.Room, error) {
	return s.roomRepo.GetRoomByID(id)
}

// CreateRoom creates a room under an existing department
func (s *FacilityService) CreateRoom(room *models.Room) error {
	if _, err := s.departmentRepo.FindByID(room.DepartmentID); err != nil {
		return fmt.Errorf("department %d: %w", room.DepartmentID, err)
	}
	return s.roomRepo.CreateRoom(room)
}

// UpdateRoom updates an existing room
func (s *FacilityService) UpdateRoom(room *models.Room) error {
	if _, err := s.roomRepo.GetRoomByID(room.ID); err != nil {
		return err
	}
	return s.roomRepo.UpdateRoom(room)
}

// DeleteRoom removes a room; beds cascade, admissions keep a NULL room
func (s *FacilityService) DeleteRoom(id uint) error {
	return s.roomRepo.DeleteRoom(id)
}

// CreateBed adds a bed to an existing room
func (s *FacilityService) CreateBed(bed *models.Bed) error {
	if _, err := s.roomRepo.GetRoomByID(bed.RoomID); err != nil {
		return fmt.Errorf("room %d: %w", bed.RoomID, err)
	}
	if bed.Status == "" {
		bed.Status = models.BedAvailable
	}
	return s.roomRepo.CreateBed(bed)
}

// ListBeds retrieves beds, optionally filtered by occupancy status
func (s *FacilityService) ListBeds(status models.BedStatus) ([]models.Bed, error) {
	return s.roomRepo.ListBedsByStatus(status)
}

// OverrideBedStatus is the manual toggle for facility staff. Releasing a bed
// still held by an active admission is refused: the occupancy invariant is
// owned by the admission lifecycle and a hand override must not break it.
func (s *FacilityService) OverrideBedStatus(principal Principal, bedID uint, status models.BedStatus) (*models.Bed, error) {
	bed, err := s.roomRepo.GetBedByID(bedID)
	if err != nil {
		return nil, err
	}
	if bed.Status == status {
		return bed, nil
	}

	if status == models.BedAvailable {
		_, err := s.admissionRepo.ActiveAdmissionForBed(bedID)
		if err == nil {
			return nil, apperrors.ErrBedInUse
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
	}

	if err := s.roomRepo.UpdateBedStatus(bedID, status); err != nil {
		return nil, err
	}
	bed.Status = status

	_ = s.auditRepo.CreateAuditLog(&principal.UserID, principal.Role, models.ActionBedOverride,
		fmt.Sprintf("Bed %d manually set to %s", bedID, status))

	return bed, nil
}
