package handler

import (
	"net/http"

	"hospital-backend/internal/models"
	"hospital-backend/internal/service"
	"hospital-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type FacilityHandler struct {
	facilityService *service.FacilityService
}

func NewFacilityHandler(facilityService *service.FacilityService) *FacilityHandler {
	return &FacilityHandler{
		facilityService: facilityService,
	}
}

type DepartmentRequest struct {
	Name  string `json:"name" binding:"required,max=100"`
	Floor int    `json:"floor"`
	HODID *uint  `json:"hod_id"`
}

type RoomRequest struct {
	DepartmentID uint    `json:"department_id" binding:"required"`
	RoomNumber   string  `json:"room_number" binding:"required,max=10"`
	Type         string  `json:"type" binding:"omitempty,oneof=GENERAL PRIVATE ICU"`
	RoomCharge   float64 `json:"room_charge" binding:"gte=0"`
}

type BedRequest struct {
	BedNumber string `json:"bed_number" binding:"required,max=10"`
}

type BedStatusRequest struct {
	Status models.BedStatus `json:"status" binding:"required,oneof=AVAILABLE OCCUPIED"`
}

// ListDepartments returns all departments
func (h *FacilityHandler) ListDepartments(c *gin.Context) {
	departments, err := h.facilityService.ListDepartments()
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, departments)
}

// CreateDepartment creates a department
func (h *FacilityHandler) CreateDepartment(c *gin.Context) {
	var req DepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	department := models.Department{Name: req.Name, Floor: req.Floor, HODID: req.HODID}
	if err := h.facilityService.CreateDepartment(&department); err != nil {
		respondError(c, err)
		return
	}
	utils.CreatedResponse(c, department)
}

// UpdateDepartment updates a department
func (h *FacilityHandler) UpdateDepartment(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req DepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	department := models.Department{ID: id, Name: req.Name, Floor: req.Floor, HODID: req.HODID}
	if err := h.facilityService.UpdateDepartment(&department); err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, department)
}

// DeleteDepartment removes a department
func (h *FacilityHandler) DeleteDepartment(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.facilityService.DeleteDepartment(id); err != nil {
		respondError(c, err)
		return
	}
	utils.MessageResponse(c, "Department deleted")
}

// ListRooms returns all rooms with their beds
func (h *FacilityHandler) ListRooms(c *gin.Context) {
	rooms, err := h.facilityService.ListRooms()
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, rooms)
}

// GetRoom returns one room with its beds
func (h *FacilityHandler) GetRoom(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	room, err := h.facilityService.GetRoom(id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, room)
}

// CreateRoom creates a room
func (h *FacilityHandler) CreateRoom(c *gin.Context) {
	var req RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	roomType := req.Type
	if roomType == "" {
		roomType = models.RoomGeneral
	}
	room := models.Room{
		DepartmentID: req.DepartmentID,
		RoomNumber:   req.RoomNumber,
		Type:         roomType,
		RoomCharge:   req.RoomCharge,
	}
	if err := h.facilityService.CreateRoom(&room); err != nil {
		respondError(c, err)
		return
	}
	utils.CreatedResponse(c, room)
}

// ListDepartmentRooms returns one department's rooms
func (h *FacilityHandler) ListDepartmentRooms(c *gin.Context) {
	departmentID, ok := pathID(c, "id")
	if !ok {
		return
	}
	rooms, err := h.facilityService.ListRoomsByDepartment(departmentID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, rooms)
}

// UpdateRoom updates a room's number, type or charge
func (h *FacilityHandler) UpdateRoom(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	roomType := req.Type
	if roomType == "" {
		roomType = models.RoomGeneral
	}
	room := models.Room{
		ID:           id,
		DepartmentID: req.DepartmentID,
		RoomNumber:   req.RoomNumber,
		Type:         roomType,
		RoomCharge:   req.RoomCharge,
	}
	if err := h.facilityService.UpdateRoom(&room); err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, room)
}

// DeleteRoom removes a room and its beds
func (h *FacilityHandler) DeleteRoom(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.facilityService.DeleteRoom(id); err != nil {
		respondError(c, err)
		return
	}
	utils.MessageResponse(c, "Room deleted")
}

// CreateBed adds a bed to a room
func (h *FacilityHandler) CreateBed(c *gin.Context) {
	roomID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req BedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	bed := models.Bed{RoomID: roomID, BedNumber: req.BedNumber}
	if err := h.facilityService.CreateBed(&bed); err != nil {
		respondError(c, err)
		return
	}
	utils.CreatedResponse(c, bed)
}

// ListBeds returns beds, optionally filtered by ?status=
func (h *FacilityHandler) ListBeds(c *gin.Context) {
	beds, err := h.facilityService.ListBeds(models.BedStatus(c.Query("status")))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, beds)
}

// OverrideBedStatus is the manual occupancy toggle for facility staff
func (h *FacilityHandler) OverrideBedStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req BedStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	bed, err := h.facilityService.OverrideBedStatus(principalFrom(c), id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, bed)
}
