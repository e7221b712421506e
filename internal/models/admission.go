package models

import "time"

// AdmissionStatus represents the lifecycle state of a hospital stay
type AdmissionStatus string

const (
	AdmissionAdmitted    AdmissionStatus = "ADMITTED"
	AdmissionDischarged  AdmissionStatus = "DISCHARGED"
	AdmissionTransferred AdmissionStatus = "TRANSFERRED"
)

// Admission records a patient's hospital stay, from admit to discharge.
// Room and bed references go NULL if the underlying facility rows are
// deleted; the admission itself survives for the patient's history.
type Admission struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	PatientID     uint            `gorm:"not null;index" json:"patient_id"`
	DoctorID      *uint           `gorm:"index" json:"doctor_id,omitempty"`
	RoomID        *uint           `gorm:"index" json:"room_id,omitempty"`
	BedID         *uint           `gorm:"index" json:"bed_id,omitempty"`
	AdmitDate     time.Time       `gorm:"not null" json:"admit_date"`
	DischargeDate *time.Time      `json:"discharge_date,omitempty"`
	Status        AdmissionStatus `gorm:"size:20;default:'ADMITTED'" json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	Patient       Patient         `gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE" json:"patient,omitempty"`
	Doctor        *Doctor         `gorm:"foreignKey:DoctorID;constraint:OnDelete:SET NULL" json:"doctor,omitempty"`
	Room          *Room           `gorm:"foreignKey:RoomID;constraint:OnDelete:SET NULL" json:"room,omitempty"`
	Bed           *Bed            `gorm:"foreignKey:BedID;constraint:OnDelete:SET NULL" json:"bed,omitempty"`
	Bills         []Bill          `gorm:"foreignKey:AdmissionID" json:"bills,omitempty"`
}

// TableName specifies the table name for Admission model
func (Admission) TableName() string {
	return "admissions"
}

// Closed reports whether the admission reached a terminal state
// (DISCHARGED or TRANSFERRED). No transition exists out of a closed
// admission.
func (a *Admission) Closed() bool {
	return a.Status != AdmissionAdmitted
}

// LengthOfStay returns the inclusive calendar-day count of the stay.
// The end point is the discharge date when set, otherwise now. Counting is
// by calendar date, not elapsed hours: admitting at 23:59 and discharging
// at 00:01 the next day is 2 days, and a same-day stay is always 1.
func (a *Admission) LengthOfStay(now time.Time) int {
	end := now
	if a.DischargeDate != nil {
		end = *a.DischargeDate
	}
	end = end.In(a.AdmitDate.Location())
	admitDay := time.Date(a.AdmitDate.Year(), a.AdmitDate.Month(), a.AdmitDate.Day(), 0, 0, 0, 0, a.AdmitDate.Location())
	endDay := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, end.Location())
	return int(endDay.Sub(admitDay).Hours()/24) + 1
}
