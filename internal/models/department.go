package models

import "time"

// Department represents a hospital department (cardiology, ICU wing, ...)
type Department struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Floor     int       `json:"floor"`
	HODID     *uint     `gorm:"column:hod_id" json:"hod_id,omitempty"`
	HOD       *Doctor   `gorm:"foreignKey:HODID;constraint:OnDelete:SET NULL" json:"hod,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for Department model
func (Department) TableName() string {
	return "departments"
}
