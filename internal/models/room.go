package models

import "time"

// Room types
const (
	RoomGeneral = "GENERAL"
	RoomPrivate = "PRIVATE"
	RoomICU     = "ICU"
)

// Room represents a ward room owned by a department
type Room struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	DepartmentID uint       `gorm:"not null;index" json:"department_id"`
	RoomNumber   string     `gorm:"size:10;not null" json:"room_number"`
	Type         string     `gorm:"type:enum('GENERAL','PRIVATE','ICU');default:'GENERAL'" json:"type"`
	RoomCharge   float64    `json:"room_charge"`
	TotalDays    uint       `gorm:"default:0" json:"total_days"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	Department   Department `gorm:"foreignKey:DepartmentID;constraint:OnDelete:CASCADE" json:"department,omitempty"`
	Beds         []Bed      `gorm:"foreignKey:RoomID" json:"beds,omitempty"`
}

// TableName specifies the table name for Room model
func (Room) TableName() string {
	return "rooms"
}

// BedStatus represents the occupancy state of a bed
type BedStatus string

const (
	BedAvailable BedStatus = "AVAILABLE"
	BedOccupied  BedStatus = "OCCUPIED"
)

// Bed represents a single bed inside a room. A bed is OCCUPIED exactly while
// a non-discharged admission holds it.
type Bed struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	RoomID    uint      `gorm:"not null;uniqueIndex:idx_room_bed" json:"room_id"`
	BedNumber string    `gorm:"size:10;not null;uniqueIndex:idx_room_bed" json:"bed_number"`
	Status    BedStatus `gorm:"size:15;default:'AVAILABLE'" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Room      Room      `gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE" json:"room,omitempty"`
}

// TableName specifies the table name for Bed model
func (Bed) TableName() string {
	return "beds"
}
