package handler

import (
	"net/http"
	"time"

	"hospital-backend/internal/models"
	"hospital-backend/internal/service"
	"hospital-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AppointmentHandler struct {
	appointmentService *service.AppointmentService
	profileService     *service.ProfileService
}

func NewAppointmentHandler(appointmentService *service.AppointmentService, profileService *service.ProfileService) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentService: appointmentService,
		profileService:     profileService,
	}
}

type BookAppointmentRequest struct {
	DoctorID        *uint     `json:"doctor_id"`
	AppointmentDate time.Time `json:"appointment_date" binding:"required"`
}

type AppointmentStatusRequest struct {
	Status models.AppointmentStatus `json:"status" binding:"required,oneof=APPROVED COMPLETED CANCELLED"`
}

// Book creates an appointment for the authenticated patient
func (h *AppointmentHandler) Book(c *gin.Context) {
	var req BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	principal := principalFrom(c)
	patient, err := h.profileService.GetPatientByUser(principal.UserID)
	if err != nil {
		utils.ErrorResponse(c, http.StatusForbidden, "No patient profile for this account")
		return
	}

	appointment, err := h.appointmentService.Book(patient.ID, req.DoctorID, req.AppointmentDate)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.CreatedResponse(c, appointment)
}

// ListMine lists the authenticated principal's appointments: the patient
// view or the doctor view depending on role.
func (h *AppointmentHandler) ListMine(c *gin.Context) {
	principal := principalFrom(c)

	switch principal.Role {
	case models.RolePatient:
		patient, err := h.profileService.GetPatientByUser(principal.UserID)
		if err != nil {
			utils.ErrorResponse(c, http.StatusForbidden, "No patient profile for this account")
			return
		}
		appointments, err := h.appointmentService.ListForPatient(patient.ID)
		if err != nil {
			respondError(c, err)
			return
		}
		utils.SuccessResponse(c, appointments)
	case models.RoleDoctor:
		doctor, err := h.profileService.GetDoctorByUser(principal.UserID)
		if err != nil {
			utils.ErrorResponse(c, http.StatusForbidden, "No doctor profile for this account")
			return
		}
		appointments, err := h.appointmentService.ListForDoctor(doctor.ID)
		if err != nil {
			respondError(c, err)
			return
		}
		utils.SuccessResponse(c, appointments)
	default:
		utils.ErrorResponse(c, http.StatusForbidden, "Appointments are listed per patient or doctor")
	}
}

// UpdateStatus applies the authenticated doctor's decision
func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req AppointmentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	principal := principalFrom(c)
	doctor, err := h.profileService.GetDoctorByUser(principal.UserID)
	if err != nil {
		utils.ErrorResponse(c, http.StatusForbidden, "No doctor profile for this account")
		return
	}

	appointment, err := h.appointmentService.UpdateStatus(doctor.ID, id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, appointment)
}
