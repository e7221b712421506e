package repository

import (
	"errors"

	"hospital-backend/internal/apperrors"
	"hospital-backend/internal/models"

	"gorm.io/gorm"
)

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepo(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

// GetAllRooms retrieves all rooms with their beds
func (r *RoomRepository) GetAllRooms() ([]models.Room, error) {
	var rooms []models.Room
	err := r.db.
		Preload("Beds").
		Preload("Department").
		Order("department_id ASC, room_number ASC").
		Find(&rooms).Error
	return rooms, err
}

// GetRoomByID retrieves a room with its beds
func (r *RoomRepository) GetRoomByID(id uint) (*models.Room, error) {
	var room models.Room
	err := r.db.Preload("Beds").First(&room, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &room, nil
}

// GetRoomsByDepartment retrieves all rooms for a department
func (r *RoomRepository) GetRoomsByDepartment(departmentID uint) ([]models.Room, error) {
	var rooms []models.Room
	err := r.db.
		Where("department_id = ?", departmentID).
		Preload("Beds").
		Order("room_number ASC").
		Find(&rooms).Error
	return rooms, err
}

// CreateRoom creates a new room
func (r *RoomRepository) CreateRoom(room *models.Room) error {
	return r.db.Create(room).Error
}

// UpdateRoom updates an existing room
func (r *RoomRepository) UpdateRoom(room *models.Room) error {
	return r.db.Save(room).Error
}

// DeleteRoom deletes a room; its beds cascade away with it
func (r *RoomRepository) DeleteRoom(id uint) error {
	result := r.db.Delete(&models.Room{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// CreateBed adds a bed to a room. The (room_id, bed_number) pair is unique.
func (r *RoomRepository) CreateBed(bed *models.Bed) error {
	return r.db.Create(bed).Error
}

// GetBedByID retrieves a bed
func (r *RoomRepository) GetBedByID(id uint) (*models.Bed, error) {
	var bed models.Bed
	err := r.db.First(&bed, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &bed, nil
}

// ListBedsByStatus retrieves beds filtered by occupancy status
func (r *RoomRepository) ListBedsByStatus(status models.BedStatus) ([]models.Bed, error) {
	var beds []models.Bed
	query := r.db.Preload("Room").Order("room_id ASC, bed_number ASC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Find(&beds).Error
	return beds, err
}

// UpdateBedStatus sets a bed's occupancy status
func (r *RoomRepository) UpdateBedStatus(id uint, status models.BedStatus) error {
	result := r.db.Model(&models.Bed{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
