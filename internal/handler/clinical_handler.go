package handler

import (
	"net/http"

	"hospital-backend/internal/models"
	"hospital-backend/internal/service"
	"hospital-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

type ClinicalHandler struct {
	clinicalService *service.ClinicalService
	profileService  *service.ProfileService
}

func NewClinicalHandler(clinicalService *service.ClinicalService, profileService *service.ProfileService) *ClinicalHandler {
	return &ClinicalHandler{
		clinicalService: clinicalService,
		profileService:  profileService,
	}
}

type MedicalRecordRequest struct {
	PatientID uint           `json:"patient_id" binding:"required"`
	Diagnosis string         `json:"diagnosis" binding:"required"`
	Treatment string         `json:"treatment"`
	Vitals    datatypes.JSON `json:"vitals"`
}

type LabReportRequest struct {
	PatientID  uint    `json:"patient_id" binding:"required"`
	DoctorID   *uint   `json:"doctor_id"`
	ReportType string  `json:"report_type" binding:"required,max=100"`
	Result     string  `json:"result"`
	LabCharge  float64 `json:"lab_charge" binding:"gte=0"`
}

// patientMayView lets a PATIENT caller read only their own clinical rows;
// other roles passed the route gate already.
func (h *ClinicalHandler) patientMayView(c *gin.Context, patientID uint) bool {
	principal := principalFrom(c)
	if principal.Role != models.RolePatient {
		return true
	}
	patient, err := h.profileService.GetPatientByUser(principal.UserID)
	if err != nil || patient.ID != patientID {
		utils.ErrorResponse(c, http.StatusForbidden, "Access denied")
		return false
	}
	return true
}

// CreateMedicalRecord files a record authored by the calling doctor
func (h *ClinicalHandler) CreateMedicalRecord(c *gin.Context) {
	principal := principalFrom(c)

	var req MedicalRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	doctor, err := h.profileService.GetDoctorByUser(principal.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	record := models.MedicalRecord{
		PatientID: req.PatientID,
		DoctorID:  doctor.ID,
		Diagnosis: req.Diagnosis,
		Treatment: req.Treatment,
		Vitals:    req.Vitals,
	}
	if err := h.clinicalService.CreateMedicalRecord(&record); err != nil {
		respondError(c, err)
		return
	}
	utils.CreatedResponse(c, record)
}

// GetMedicalRecord returns one medical record
func (h *ClinicalHandler) GetMedicalRecord(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	record, err := h.clinicalService.GetMedicalRecord(id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, record)
}

// ListMedicalRecords returns a patient's history, newest first
func (h *ClinicalHandler) ListMedicalRecords(c *gin.Context) {
	patientID, ok := pathID(c, "id")
	if !ok {
		return
	}
	if !h.patientMayView(c, patientID) {
		return
	}
	records, err := h.clinicalService.ListMedicalRecords(patientID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, records)
}

// CreateLabReport files a lab result. A doctor's own reports carry their
// profile; staff and admins name the ordering doctor explicitly.
func (h *ClinicalHandler) CreateLabReport(c *gin.Context) {
	principal := principalFrom(c)

	var req LabReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	var doctorID uint
	if principal.Role == models.RoleDoctor {
		doctor, err := h.profileService.GetDoctorByUser(principal.UserID)
		if err != nil {
			respondError(c, err)
			return
		}
		doctorID = doctor.ID
	} else {
		if req.DoctorID == nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "doctor_id is required")
			return
		}
		doctorID = *req.DoctorID
	}

	report := models.LabReport{
		PatientID:  req.PatientID,
		DoctorID:   doctorID,
		ReportType: req.ReportType,
		Result:     req.Result,
		LabCharge:  req.LabCharge,
	}
	if err := h.clinicalService.CreateLabReport(&report); err != nil {
		respondError(c, err)
		return
	}
	utils.CreatedResponse(c, report)
}

// ListLabReports returns a patient's lab reports, newest first
func (h *ClinicalHandler) ListLabReports(c *gin.Context) {
	patientID, ok := pathID(c, "id")
	if !ok {
		return
	}
	if !h.patientMayView(c, patientID) {
		return
	}
	reports, err := h.clinicalService.ListLabReports(patientID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, reports)
}
