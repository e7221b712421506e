package handler

import (
	"net/http"

	"hospital-backend/internal/models"
	"hospital-backend/internal/service"
	"hospital-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileService *service.ProfileService
}

func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

type PatientProfileRequest struct {
	UserID     uint   `json:"user_id" binding:"required"`
	BloodGroup string `json:"blood_group" binding:"omitempty,max=5"`
	Address    string `json:"address"`
	City       string `json:"city" binding:"omitempty,max=100"`
}

type DoctorProfileRequest struct {
	UserID         uint    `json:"user_id" binding:"required"`
	DepartmentID   *uint   `json:"department_id"`
	Specialization string  `json:"specialization" binding:"required,max=100"`
	Experience     int     `json:"experience" binding:"gte=0"`
	Charges        float64 `json:"charges" binding:"gte=0"`
	Qualification  string  `json:"qualification" binding:"omitempty,max=50"`
}

type StaffProfileRequest struct {
	UserID       uint    `json:"user_id" binding:"required"`
	DepartmentID *uint   `json:"department_id"`
	Salary       float64 `json:"salary" binding:"gte=0"`
}

type AssignmentRequest struct {
	StaffID       uint   `json:"staff_id" binding:"required"`
	PatientID     uint   `json:"patient_id" binding:"required"`
	AcuityLevel   int    `json:"acuity_level" binding:"required,min=1,max=5"`
	ProcedureType string `json:"procedure_type" binding:"omitempty,oneof=ROUTINE SURGERY EMERGENCY MEDICATION"`
	OutcomeStatus string `json:"outcome_status" binding:"omitempty,oneof=STABLE IMPROVED CRITICAL DISCHARGED"`
}

// CreatePatient attaches a patient profile to a PATIENT user
func (h *ProfileHandler) CreatePatient(c *gin.Context) {
	var req PatientProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	patient := models.Patient{
		UserID:     req.UserID,
		BloodGroup: req.BloodGroup,
		Address:    req.Address,
		City:       req.City,
	}
	if err := h.profileService.CreatePatient(&patient); err != nil {
		respondError(c, err)
		return
	}
	utils.CreatedResponse(c, patient)
}

// GetPatient returns one patient profile
func (h *ProfileHandler) GetPatient(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	patient, err := h.profileService.GetPatient(id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, patient)
}

// ListPatients returns all patient profiles
func (h *ProfileHandler) ListPatients(c *gin.Context) {
	patients, err := h.profileService.ListPatients()
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, patients)
}

// CreateDoctor attaches a doctor profile to a DOCTOR user
func (h *ProfileHandler) CreateDoctor(c *gin.Context) {
	var req DoctorProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	doctor := models.Doctor{
		UserID:         req.UserID,
		DepartmentID:   req.DepartmentID,
		Specialization: req.Specialization,
		Experience:     req.Experience,
		Charges:        req.Charges,
		Qualification:  req.Qualification,
		IsAvailable:    true,
	}
	if err := h.profileService.CreateDoctor(&doctor); err != nil {
		respondError(c, err)
		return
	}
	utils.CreatedResponse(c, doctor)
}

// GetDoctor returns one doctor profile
func (h *ProfileHandler) GetDoctor(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	doctor, err := h.profileService.GetDoctor(id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, doctor)
}

// ListDoctors returns doctors; ?available=true narrows to available ones
func (h *ProfileHandler) ListDoctors(c *gin.Context) {
	doctors, err := h.profileService.ListDoctors(c.Query("available") == "true")
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, doctors)
}

// CreateStaff attaches a staff profile to a STAFF user
func (h *ProfileHandler) CreateStaff(c *gin.Context) {
	var req StaffProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	staff := models.Staff{
		UserID:       req.UserID,
		DepartmentID: req.DepartmentID,
		Salary:       req.Salary,
	}
	if err := h.profileService.CreateStaff(&staff); err != nil {
		respondError(c, err)
		return
	}
	utils.CreatedResponse(c, staff)
}

// ListStaff returns all staff profiles
func (h *ProfileHandler) ListStaff(c *gin.Context) {
	staff, err := h.profileService.ListStaff()
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, staff)
}

// CreateAssignment links a staff member to a patient
func (h *ProfileHandler) CreateAssignment(c *gin.Context) {
	var req AssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	assignment := models.StaffAssignment{
		StaffID:       req.StaffID,
		PatientID:     req.PatientID,
		AcuityLevel:   req.AcuityLevel,
		ProcedureType: req.ProcedureType,
		OutcomeStatus: req.OutcomeStatus,
	}
	if err := h.profileService.AssignStaff(&assignment); err != nil {
		respondError(c, err)
		return
	}
	utils.CreatedResponse(c, assignment)
}

// ListAssignments returns one staff member's assignments
func (h *ProfileHandler) ListAssignments(c *gin.Context) {
	staffID, ok := pathID(c, "id")
	if !ok {
		return
	}
	assignments, err := h.profileService.ListAssignments(staffID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, assignments)
}
