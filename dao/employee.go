package dao

import (
	"errors"

	"gorm.io/gorm"

	"github.com/ezeflt/horizon-ai/models"
)

// EmployeeDAO handles employee and employer database operations.
type EmployeeDAO struct {
	db *gorm.DB
}

func NewEmployeeDAO(db *gorm.DB) *EmployeeDAO {
	return &EmployeeDAO{db: db}
}

// CreateEmployee adds one employee record.
func (d *EmployeeDAO) CreateEmployee(lastNameEncoded, firstNameEncoded, ageEncoded string) (*models.Employee, error) {
	emp := &models.Employee{
		LastNameEncoded:  lastNameEncoded,
		FirstNameEncoded: firstNameEncoded,
		AgeEncoded:       ageEncoded,
	}
	if err := d.db.Create(emp).Error; err != nil {
		return nil, err
	}
	return emp, nil
}

// ListEmployees returns all employees in insertion order.
func (d *EmployeeDAO) ListEmployees() ([]models.Employee, error) {
	var emps []models.Employee
	if err := d.db.Order("id ASC").Find(&emps).Error; err != nil {
		return nil, err
	}
	return emps, nil
}

// ReplaceEmployer deletes any existing employer record and inserts the
// new one. The employer is a singleton.
func (d *EmployeeDAO) ReplaceEmployer(lastNameEncoded, firstNameEncoded string) (*models.Employer, error) {
	employer := &models.Employer{
		LastNameEncoded:  lastNameEncoded,
		FirstNameEncoded: firstNameEncoded,
	}
	err := d.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Employer{}).Error; err != nil {
			return err
		}
		return tx.Create(employer).Error
	})
	if err != nil {
		return nil, err
	}
	return employer, nil
}

// GetEmployer returns the employer record, or nil when none is set.
func (d *EmployeeDAO) GetEmployer() (*models.Employer, error) {
	var employer models.Employer
	if err := d.db.First(&employer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &employer, nil
}
