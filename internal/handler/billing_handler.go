package handler

import (
	"net/http"

	"hospital-backend/internal/service"
	"hospital-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type BillingHandler struct {
	billingService *service.BillingService
}

func NewBillingHandler(billingService *service.BillingService) *BillingHandler {
	return &BillingHandler{
		billingService: billingService,
	}
}

type CreateBillRequest struct {
	PatientID     uint    `json:"patient_id" binding:"required"`
	AdmissionID   *uint   `json:"admission_id"`
	AppointmentID *uint   `json:"appointment_id"`
	RoomCharge    float64 `json:"room_charge" binding:"gte=0"`
	StaffCharge   float64 `json:"staff_charge" binding:"gte=0"`
	Tax           float64 `json:"tax" binding:"gte=0"`
}

type PaymentRequest struct {
	Amount  float64 `json:"amount" binding:"required,gt=0"`
	Method  string  `json:"method" binding:"required,max=50"`
	Success *bool   `json:"success"`
}

// CreateBill creates an UNPAID bill
func (h *BillingHandler) CreateBill(c *gin.Context) {
	var req CreateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	bill, err := h.billingService.CreateBill(principalFrom(c), service.CreateBillRequest{
		PatientID:     req.PatientID,
		AdmissionID:   req.AdmissionID,
		AppointmentID: req.AppointmentID,
		RoomCharge:    req.RoomCharge,
		StaffCharge:   req.StaffCharge,
		Tax:           req.Tax,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	utils.CreatedResponse(c, bill)
}

// GetBill returns a bill with its payments
func (h *BillingHandler) GetBill(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	bill, err := h.billingService.GetBill(id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, bill)
}

// ListByPatient returns a patient's bills
func (h *BillingHandler) ListByPatient(c *gin.Context) {
	patientID, ok := pathID(c, "id")
	if !ok {
		return
	}
	bills, err := h.billingService.ListByPatient(patientID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, bills)
}

// ListByAdmission returns the bills linked to an admission
func (h *BillingHandler) ListByAdmission(c *gin.Context) {
	admissionID, ok := pathID(c, "id")
	if !ok {
		return
	}
	bills, err := h.billingService.ListByAdmission(admissionID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, bills)
}

// MarkPaid settles a bill
func (h *BillingHandler) MarkPaid(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	bill, err := h.billingService.MarkBillPaid(principalFrom(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, bill)
}

// RecordPayment appends a payment against a bill
func (h *BillingHandler) RecordPayment(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	success := true
	if req.Success != nil {
		success = *req.Success
	}
	payment, err := h.billingService.RecordPayment(principalFrom(c), id, req.Amount, req.Method, success)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.CreatedResponse(c, payment)
}

// ListPayments returns the payments recorded against a bill
func (h *BillingHandler) ListPayments(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	payments, err := h.billingService.ListPayments(id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, payments)
}
