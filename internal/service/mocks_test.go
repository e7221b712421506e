package service

import (
	"time"

	"hospital-backend/internal/models"

	"github.com/stretchr/testify/mock"
)

// Testify mocks for the repository contracts in repositories.go.

type mockProfileRepo struct {
	mock.Mock
}

func (m *mockProfileRepo) CreatePatient(patient *models.Patient) error {
	return m.Called(patient).Error(0)
}

func (m *mockProfileRepo) FindPatientByID(id uint) (*models.Patient, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Patient), args.Error(1)
}

func (m *mockProfileRepo) FindPatientByUserID(userID uint) (*models.Patient, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Patient), args.Error(1)
}

func (m *mockProfileRepo) ListPatients() ([]models.Patient, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Patient), args.Error(1)
}

func (m *mockProfileRepo) CreateDoctor(doctor *models.Doctor) error {
	return m.Called(doctor).Error(0)
}

func (m *mockProfileRepo) FindDoctorByID(id uint) (*models.Doctor, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Doctor), args.Error(1)
}

func (m *mockProfileRepo) FindDoctorByUserID(userID uint) (*models.Doctor, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Doctor), args.Error(1)
}

func (m *mockProfileRepo) ListDoctors(availableOnly bool) ([]models.Doctor, error) {
	args := m.Called(availableOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Doctor), args.Error(1)
}

func (m *mockProfileRepo) CreateStaff(staff *models.Staff) error {
	return m.Called(staff).Error(0)
}

func (m *mockProfileRepo) FindStaffByID(id uint) (*models.Staff, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Staff), args.Error(1)
}

func (m *mockProfileRepo) ListStaff() ([]models.Staff, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Staff), args.Error(1)
}

func (m *mockProfileRepo) CreateAssignment(assignment *models.StaffAssignment) error {
	return m.Called(assignment).Error(0)
}

func (m *mockProfileRepo) ListAssignmentsByStaff(staffID uint) ([]models.StaffAssignment, error) {
	args := m.Called(staffID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.StaffAssignment), args.Error(1)
}

type mockDepartmentRepo struct {
	mock.Mock
}

func (m *mockDepartmentRepo) ListDepartments() ([]models.Department, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Department), args.Error(1)
}

func (m *mockDepartmentRepo) FindByID(id uint) (*models.Department, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Department), args.Error(1)
}

func (m *mockDepartmentRepo) CreateDepartment(department *models.Department) error {
	return m.Called(department).Error(0)
}

func (m *mockDepartmentRepo) UpdateDepartment(department *models.Department) error {
	return m.Called(department).Error(0)
}

func (m *mockDepartmentRepo) DeleteDepartment(id uint) error {
	return m.Called(id).Error(0)
}

type mockAdmissionRepo struct {
	mock.Mock
}

func (m *mockAdmissionRepo) CreateWithBed(admission *models.Admission) error {
	return m.Called(admission).Error(0)
}

func (m *mockAdmissionRepo) Discharge(id uint, now time.Time) (*models.Admission, error) {
	args := m.Called(id, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Admission), args.Error(1)
}

func (m *mockAdmissionRepo) MarkTransferred(id uint) (*models.Admission, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Admission), args.Error(1)
}

func (m *mockAdmissionRepo) FindByID(id uint) (*models.Admission, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Admission), args.Error(1)
}

func (m *mockAdmissionRepo) List(status models.AdmissionStatus) ([]models.Admission, error) {
	args := m.Called(status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Admission), args.Error(1)
}

func (m *mockAdmissionRepo) ListByPatient(patientID uint) ([]models.Admission, error) {
	args := m.Called(patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Admission), args.Error(1)
}

func (m *mockAdmissionRepo) ActiveAdmissionForBed(bedID uint) (*models.Admission, error) {
	args := m.Called(bedID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Admission), args.Error(1)
}

type mockRoomRepo struct {
	mock.Mock
}

func (m *mockRoomRepo) GetAllRooms() ([]models.Room, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Room), args.Error(1)
}

func (m *mockRoomRepo) GetRoomByID(id uint) (*models.Room, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Room), args.Error(1)
}

func (m *mockRoomRepo) GetRoomsByDepartment(departmentID uint) ([]models.Room, error) {
	args := m.Called(departmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Room), args.Error(1)
}

func (m *mockRoomRepo) CreateRoom(room *models.Room) error {
	return m.Called(room).Error(0)
}

func (m *mockRoomRepo) UpdateRoom(room *models.Room) error {
	return m.Called(room).Error(0)
}

func (m *mockRoomRepo) DeleteRoom(id uint) error {
	return m.Called(id).Error(0)
}

func (m *mockRoomRepo) CreateBed(bed *models.Bed) error {
	return m.Called(bed).Error(0)
}

func (m *mockRoomRepo) GetBedByID(id uint) (*models.Bed, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Bed), args.Error(1)
}

func (m *mockRoomRepo) ListBedsByStatus(status models.BedStatus) ([]models.Bed, error) {
	args := m.Called(status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Bed), args.Error(1)
}

func (m *mockRoomRepo) UpdateBedStatus(id uint, status models.BedStatus) error {
	return m.Called(id, status).Error(0)
}

type mockBillRepo struct {
	mock.Mock
}

func (m *mockBillRepo) CreateBill(bill *models.Bill) error {
	return m.Called(bill).Error(0)
}

func (m *mockBillRepo) FindByID(id uint) (*models.Bill, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Bill), args.Error(1)
}

func (m *mockBillRepo) ListByPatient(patientID uint) ([]models.Bill, error) {
	args := m.Called(patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Bill), args.Error(1)
}

func (m *mockBillRepo) ListByAdmission(admissionID uint) ([]models.Bill, error) {
	args := m.Called(admissionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Bill), args.Error(1)
}

func (m *mockBillRepo) FindUnpaidByAdmission(admissionID uint) ([]models.Bill, error) {
	args := m.Called(admissionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Bill), args.Error(1)
}

func (m *mockBillRepo) UpdateStatus(id uint, status models.BillStatus) error {
	return m.Called(id, status).Error(0)
}

func (m *mockBillRepo) CreatePayment(payment *models.Payment) error {
	return m.Called(payment).Error(0)
}

func (m *mockBillRepo) ListPayments(billID uint) ([]models.Payment, error) {
	args := m.Called(billID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Payment), args.Error(1)
}

type mockAppointmentRepo struct {
	mock.Mock
}

func (m *mockAppointmentRepo) CreateAppointment(appointment *models.Appointment) error {
	return m.Called(appointment).Error(0)
}

func (m *mockAppointmentRepo) FindByID(id uint) (*models.Appointment, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *mockAppointmentRepo) ListByPatient(patientID uint) ([]models.Appointment, error) {
	args := m.Called(patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *mockAppointmentRepo) ListByDoctor(doctorID uint) ([]models.Appointment, error) {
	args := m.Called(doctorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *mockAppointmentRepo) UpdateStatus(id uint, status models.AppointmentStatus) error {
	return m.Called(id, status).Error(0)
}

func (m *mockAppointmentRepo) FindOverdue(now time.Time) ([]models.Appointment, error) {
	args := m.Called(now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *mockAppointmentRepo) Save(appointment *models.Appointment) error {
	return m.Called(appointment).Error(0)
}

type mockAuditRepo struct {
	mock.Mock
}

func (m *mockAuditRepo) CreateAuditLog(userID *uint, actorRole, action, details string) error {
	return m.Called(userID, actorRole, action, details).Error(0)
}

func (m *mockAuditRepo) ListRecent(limit int) ([]models.AuditLog, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.AuditLog), args.Error(1)
}
