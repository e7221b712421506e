package repository

import (
	"errors"

	"hospital-backend/internal/apperrors"
	"hospital-backend/internal/models"

	"gorm.io/gorm"
)

type DepartmentRepository struct {
	db *gorm.DB
}

func NewDepartmentRepo(db *gorm.DB) *DepartmentRepository {
	return &DepartmentRepository{db: db}
}

// ListDepartments retrieves all departments
func (r *DepartmentRepository) ListDepartments() ([]models.Department, error) {
	var departments []models.Department
	err := r.db.Preload("HOD.User").Order("floor ASC, name ASC").Find(&departments).Error
	return departments, err
}

// FindByID retrieves a department
func (r *DepartmentRepository) FindByID(id uint) (*models.Department, error) {
	var department models.Department
	err := r.db.First(&department, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &department, nil
}

// CreateDepartment creates a new department
func (r *DepartmentRepository) CreateDepartment(department *models.Department) error {
	return r.db.Create(department).Error
}

// UpdateDepartment updates an existing department
func (r *DepartmentRepository) UpdateDepartment(department *models.Department) error {
	return r.db.Save(department).Error
}

// DeleteDepartment removes a department; its rooms cascade away with it
func (r *DepartmentRepository) DeleteDepartment(id uint) error {
	result := r.db.Delete(&models.Department{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
