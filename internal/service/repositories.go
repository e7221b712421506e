package service

import (
	"time"

	"hospital-backend/internal/models"
)

// Repository contracts consumed by the services. The concrete GORM-backed
// implementations live in internal/repository; unit tests substitute
// testify mocks.

type UserRepository interface {
	CreateUser(user *models.User) error
	FindUserByUsername(username string) (*models.User, error)
	FindUserByID(id uint) (*models.User, error)
	CreateRefreshToken(token *models.RefreshToken) error
	FindRefreshTokenByHash(hash string) (*models.RefreshToken, error)
	RevokeRefreshTokenByHash(hash string) error
}

type ProfileRepository interface {
	CreatePatient(patient *models.Patient) error
	FindPatientByID(id uint) (*models.Patient, error)
	FindPatientByUserID(userID uint) (*models.Patient, error)
	ListPatients() ([]models.Patient, error)
	CreateDoctor(doctor *models.Doctor) error
	FindDoctorByID(id uint) (*models.Doctor, error)
	FindDoctorByUserID(userID uint) (*models.Doctor, error)
	ListDoctors(availableOnly bool) ([]models.Doctor, error)
	CreateStaff(staff *models.Staff) error
	FindStaffByID(id uint) (*models.Staff, error)
	ListStaff() ([]models.Staff, error)
	CreateAssignment(assignment *models.StaffAssignment) error
	ListAssignmentsByStaff(staffID uint) ([]models.StaffAssignment, error)
}

type DepartmentRepository interface {
	ListDepartments() ([]models.Department, error)
	FindByID(id uint) (*models.Department, error)
	CreateDepartment(department *models.Department) error
	UpdateDepartment(department *models.Department) error
	DeleteDepartment(id uint) error
}

type AppointmentRepository interface {
	CreateAppointment(appointment *models.Appointment) error
	FindByID(id uint) (*models.Appointment, error)
	ListByPatient(patientID uint) ([]models.Appointment, error)
	ListByDoctor(doctorID uint) ([]models.Appointment, error)
	UpdateStatus(id uint, status models.AppointmentStatus) error
	FindOverdue(now time.Time) ([]models.Appointment, error)
	Save(appointment *models.Appointment) error
}

type ClinicalRepository interface {
	CreateMedicalRecord(record *models.MedicalRecord) error
	FindMedicalRecordByID(id uint) (*models.MedicalRecord, error)
	ListMedicalRecordsByPatient(patientID uint) ([]models.MedicalRecord, error)
	CreateLabReport(report *models.LabReport) error
	ListLabReportsByPatient(patientID uint) ([]models.LabReport, error)
}

type RoomRepository interface {
	GetAllRooms() ([]models.Room, error)
	GetRoomByID(id uint) (*models.Room, error)
	GetRoomsByDepartment(departmentID uint) ([]models.Room, error)
	CreateRoom(room *models.Room) error
	UpdateRoom(room *models.Room) error
	DeleteRoom(id uint) error
	CreateBed(bed *models.Bed) error
	GetBedByID(id uint) (*models.Bed, error)
	ListBedsByStatus(status models.BedStatus) ([]models.Bed, error)
	UpdateBedStatus(id uint, status models.BedStatus) error
}

type AdmissionRepository interface {
	CreateWithBed(admission *models.Admission) error
	Discharge(id uint, now time.Time) (*models.Admission, error)
	MarkTransferred(id uint) (*models.Admission, error)
	FindByID(id uint) (*models.Admission, error)
	List(status models.AdmissionStatus) ([]models.Admission, error)
	ListByPatient(patientID uint) ([]models.Admission, error)
	ActiveAdmissionForBed(bedID uint) (*models.Admission, error)
}

type BillRepository interface {
	CreateBill(bill *models.Bill) error
	FindByID(id uint) (*models.Bill, error)
	ListByPatient(patientID uint) ([]models.Bill, error)
	ListByAdmission(admissionID uint) ([]models.Bill, error)
	FindUnpaidByAdmission(admissionID uint) ([]models.Bill, error)
	UpdateStatus(id uint, status models.BillStatus) error
	CreatePayment(payment *models.Payment) error
	ListPayments(billID uint) ([]models.Payment, error)
}

type AuditRepository interface {
	CreateAuditLog(userID *uint, actorRole, action, details string) error
	ListRecent(limit int) ([]models.AuditLog, error)
}
