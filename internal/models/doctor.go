package models

import "time"

// Doctor is the professional profile attached 1:1 to a user with role DOCTOR
type Doctor struct {
	ID             uint        `gorm:"primaryKey" json:"id"`
	UserID         uint        `gorm:"not null;uniqueIndex" json:"user_id"`
	DepartmentID   *uint       `gorm:"index" json:"department_id,omitempty"`
	Specialization string      `gorm:"size:100" json:"specialization"`
	Experience     int         `json:"experience"`
	Charges        float64     `json:"charges"`
	Qualification  string      `gorm:"size:50" json:"qualification"`
	JoiningDate    *time.Time  `json:"joining_date,omitempty"`
	IsAvailable    bool        `gorm:"default:true" json:"is_available"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
	User           User        `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Department     *Department `gorm:"foreignKey:DepartmentID;constraint:OnDelete:SET NULL" json:"department,omitempty"`
}

// TableName specifies the table name for Doctor model
func (Doctor) TableName() string {
	return "doctors"
}
