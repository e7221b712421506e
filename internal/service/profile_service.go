package service

import (
	"fmt"

	"hospital-backend/internal/models"
)

// ProfileService manages the role profiles attached to user accounts and
// staff-to-patient assignments.
type ProfileService struct {
	profileRepo ProfileRepository
	userRepo    UserRepository
}

func NewProfileService(profileRepo ProfileRepository, userRepo UserRepository) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
		userRepo:    userRepo,
	}
}

// requireUserWithRole loads a user and checks their account role matches
// the profile being created for them.
func (s *ProfileService) requireUserWithRole(userID uint, role string) (*models.User, error) {
	user, err := s.userRepo.FindUserByID(userID)
	if err != nil {
		return nil, fmt.Errorf("user %d: %w", userID, err)
	}
	if user.Role != role {
		return nil, fmt.Errorf("user %d has role %s, expected %s", userID, user.Role, role)
	}
	return user, nil
}

// CreatePatient creates a patient profile for a PATIENT user
func (s *ProfileService) CreatePatient(patient *models.Patient) error {
	if _, err := s.requireUserWithRole(patient.UserID, models.RolePatient); err != nil {
		return err
	}
	return s.profileRepo.CreatePatient(patient)
}

// GetPatient retrieves a patient profile
func (s *ProfileService) GetPatient(id uint) (*models.Patient, error) {
	return s.profileRepo.FindPatientByID(id)
}

// GetPatientByUser retrieves the patient profile behind a user account
func (s *ProfileService) GetPatientByUser(userID uint) (*models.Patient, error) {
	return s.profileRepo.FindPatientByUserID(userID)
}

// ListPatients retrieves all patient profiles
func (s *ProfileService) ListPatients() ([]models.Patient, error) {
	return s.profileRepo.ListPatients()
}

// CreateDoctor creates a doctor profile for a DOCTOR user
func (s *ProfileService) CreateDoctor(doctor *models.Doctor) error {
	if _, err := s.requireUserWithRole(doctor.UserID, models.RoleDoctor); err != nil {
		return err
	}
	return s.profileRepo.CreateDoctor(doctor)
}

// GetDoctor retrieves a doctor profile
func (s *ProfileService) GetDoctor(id uint) (*models.Doctor, error) {
	return s.profileRepo.FindDoctorByID(id)
}

// GetDoctorByUser retrieves the doctor profile behind a user account
func (s *ProfileService) GetDoctorByUser(userID uint) (*models.Doctor, error) {
	return s.profileRepo.FindDoctorByUserID(userID)
}

// ListDoctors retrieves doctors, optionally only the available ones
func (s *ProfileService) ListDoctors(availableOnly bool) ([]models.Doctor, error) {
	return s.profileRepo.ListDoctors(availableOnly)
}

// CreateStaff creates a staff profile for a STAFF user
func (s *ProfileService) CreateStaff(staff *models.Staff) error {
	if _, err := s.requireUserWithRole(staff.UserID, models.RoleStaff); err != nil {
		return err
	}
	return s.profileRepo.CreateStaff(staff)
}

// ListStaff retrieves all staff profiles
func (s *ProfileService) ListStaff() ([]models.Staff, error) {
	return s.profileRepo.ListStaff()
}

// AssignStaff links a staff member to a patient under their care
func (s *ProfileService) AssignStaff(assignment *models.StaffAssignment) error {
	if assignment.AcuityLevel < 1 || assignment.AcuityLevel > 5 {
		return fmt.Errorf("acuity level %d out of range 1-5", assignment.AcuityLevel)
	}
	if _, err := s.profileRepo.FindStaffByID(assignment.StaffID); err != nil {
		return fmt.Errorf("staff %d: %w", assignment.StaffID, err)
	}
	if _, err := s.profileRepo.FindPatientByID(assignment.PatientID); err != nil {
		return fmt.Errorf("patient %d: %w", assignment.PatientID, err)
	}
	if assignment.ProcedureType == "" {
		assignment.ProcedureType = models.ProcedureRoutine
	}
	if assignment.OutcomeStatus == "" {
		assignment.OutcomeStatus = models.OutcomeStable
	}
	return s.profileRepo.CreateAssignment(assignment)
}

// ListAssignments retrieves a staff member's patient assignments
func (s *ProfileService) ListAssignments(staffID uint) ([]models.StaffAssignment, error) {
	return s.profileRepo.ListAssignmentsByStaff(staffID)
}
