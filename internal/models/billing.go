package models

import "time"

// BillStatus represents the settlement state of a bill
type BillStatus string

const (
	BillPaid   BillStatus = "PAID"
	BillUnpaid BillStatus = "UNPAID"
)

// Bill represents an invoice against a patient. The admission and
// appointment references are SET NULL on deletion so the bill survives
// its originating record for audit purposes.
type Bill struct {
	ID            uint         `gorm:"primaryKey" json:"id"`
	ReferenceCode string       `gorm:"size:64;uniqueIndex" json:"reference_code"`
	PatientID     uint         `gorm:"not null;index" json:"patient_id"`
	AdmissionID   *uint        `gorm:"index" json:"admission_id,omitempty"`
	AppointmentID *uint        `gorm:"index" json:"appointment_id,omitempty"`
	RoomCharge    float64      `json:"room_charge"`
	StaffCharge   float64      `json:"staff_charge"`
	Tax           float64      `json:"tax"`
	TotalAmount   float64      `json:"total_amount"`
	Status        BillStatus   `gorm:"size:20;default:'UNPAID'" json:"status"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
	Patient       Patient      `gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE" json:"patient,omitempty"`
	Admission     *Admission   `gorm:"foreignKey:AdmissionID;constraint:OnDelete:SET NULL" json:"admission,omitempty"`
	Appointment   *Appointment `gorm:"foreignKey:AppointmentID;constraint:OnDelete:SET NULL" json:"appointment,omitempty"`
	Payments      []Payment    `gorm:"foreignKey:BillID" json:"payments,omitempty"`
}

// TableName specifies the table name for Bill model
func (Bill) TableName() string {
	return "bills"
}

// Payment statuses
const (
	PaymentSuccess = "SUCCESS"
	PaymentFailed  = "FAILED"
)

// Payment is an append-only record against a bill. Recording a payment
// never flips the bill's status; marking a bill PAID is a separate,
// explicit action.
type Payment struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	BillID        uint      `gorm:"not null;index" json:"bill_id"`
	TotalAmount   float64   `json:"total_amount"`
	PaymentMethod string    `gorm:"size:50" json:"payment_method"`
	PaymentStatus string    `gorm:"size:20;default:'SUCCESS'" json:"payment_status"`
	CreatedAt     time.Time `json:"payment_date"`
	Bill          Bill      `gorm:"foreignKey:BillID;constraint:OnDelete:CASCADE" json:"bill,omitempty"`
}

// TableName specifies the table name for Payment model
func (Payment) TableName() string {
	return "payments"
}
