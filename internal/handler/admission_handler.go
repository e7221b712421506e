package handler

import (
	"net/http"

	"hospital-backend/internal/models"
	"hospital-backend/internal/service"
	"hospital-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AdmissionHandler struct {
	admissionService *service.AdmissionService
}

func NewAdmissionHandler(admissionService *service.AdmissionService) *AdmissionHandler {
	return &AdmissionHandler{
		admissionService: admissionService,
	}
}

type AdmitRequest struct {
	PatientID uint  `json:"patient_id" binding:"required"`
	DoctorID  *uint `json:"doctor_id"`
	RoomID    *uint `json:"room_id"`
	BedID     *uint `json:"bed_id"`
}

// Admit creates an admission, reserving the requested bed
func (h *AdmissionHandler) Admit(c *gin.Context) {
	var req AdmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	admission, err := h.admissionService.Admit(principalFrom(c), service.AdmitRequest{
		PatientID: req.PatientID,
		DoctorID:  req.DoctorID,
		RoomID:    req.RoomID,
		BedID:     req.BedID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	utils.CreatedResponse(c, admission)
}

// Discharge closes an admission once its bills are settled
func (h *AdmissionHandler) Discharge(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	admission, err := h.admissionService.Discharge(principalFrom(c), id)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, admission)
}

// Transfer marks an admission TRANSFERRED
func (h *AdmissionHandler) Transfer(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	admission, err := h.admissionService.Transfer(principalFrom(c), id)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, admission)
}

// Get retrieves one admission with its length of stay
func (h *AdmissionHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	admission, err := h.admissionService.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, admission)
}

// List retrieves admissions, optionally filtered by ?status=
func (h *AdmissionHandler) List(c *gin.Context) {
	status := models.AdmissionStatus(c.Query("status"))

	admissions, err := h.admissionService.List(status)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, admissions)
}

// ListByPatient retrieves one patient's admission history
func (h *AdmissionHandler) ListByPatient(c *gin.Context) {
	patientID, ok := pathID(c, "id")
	if !ok {
		return
	}

	admissions, err := h.admissionService.ListByPatient(patientID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, admissions)
}
