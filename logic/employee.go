package logic

import (
	"fmt"
	"strconv"

	"github.com/ezeflt/horizon-ai/dao"
	"github.com/ezeflt/horizon-ai/pkg"
)

// Employee is the decoded, caller-facing view of an employee record.
type Employee struct {
	LastName  string `json:"last_name"`
	FirstName string `json:"first_name"`
	Age       int    `json:"age"`
}

// Employer is the decoded employer record.
type Employer struct {
	LastName  string `json:"last_name"`
	FirstName string `json:"first_name"`
}

// EmployeeLogic handles employee and employer business logic.
type EmployeeLogic struct {
	employeeDAO *dao.EmployeeDAO
}

func NewEmployeeLogic(employeeDAO *dao.EmployeeDAO) *EmployeeLogic {
	return &EmployeeLogic{employeeDAO: employeeDAO}
}

// CreateEmployee stores one employee with obfuscated fields.
func (l *EmployeeLogic) CreateEmployee(lastName, firstName string, age int) (*Employee, error) {
	_, err := l.employeeDAO.CreateEmployee(
		pkg.Encode(lastName),
		pkg.Encode(firstName),
		pkg.Encode(strconv.Itoa(age)),
	)
	if err != nil {
		return nil, err
	}
	return &Employee{LastName: lastName, FirstName: firstName, Age: age}, nil
}

// ListEmployees returns all employees, decoded.
func (l *EmployeeLogic) ListEmployees() ([]Employee, error) {
	recs, err := l.employeeDAO.ListEmployees()
	if err != nil {
		return nil, err
	}

	out := make([]Employee, 0, len(recs))
	for _, rec := range recs {
		lastName, err := pkg.Decode(rec.LastNameEncoded)
		if err != nil {
			return nil, err
		}
		firstName, err := pkg.Decode(rec.FirstNameEncoded)
		if err != nil {
			return nil, err
		}
		rawAge, err := pkg.Decode(rec.AgeEncoded)
		if err != nil {
			return nil, err
		}
		age, err := strconv.Atoi(rawAge)
		if err != nil {
			return nil, fmt.Errorf("stored employee age is not numeric: %v", err)
		}
		out = append(out, Employee{LastName: lastName, FirstName: firstName, Age: age})
	}
	return out, nil
}

// SetEmployer replaces the employer record.
func (l *EmployeeLogic) SetEmployer(lastName, firstName string) (*Employer, error) {
	_, err := l.employeeDAO.ReplaceEmployer(pkg.Encode(lastName), pkg.Encode(firstName))
	if err != nil {
		return nil, err
	}
	return &Employer{LastName: lastName, FirstName: firstName}, nil
}

// GetEmployer returns the decoded employer, or nil when none is set.
func (l *EmployeeLogic) GetEmployer() (*Employer, error) {
	rec, err := l.employeeDAO.GetEmployer()
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}

	lastName, err := pkg.Decode(rec.LastNameEncoded)
	if err != nil {
		return nil, err
	}
	firstName, err := pkg.Decode(rec.FirstNameEncoded)
	if err != nil {
		return nil, err
	}
	return &Employer{LastName: lastName, FirstName: firstName}, nil
}
