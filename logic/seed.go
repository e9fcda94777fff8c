package logic

// SeedResult reports what the demo dataset insert produced.
type SeedResult struct {
	Revenue   int  `json:"revenue"`
	Employees int  `json:"employees"`
	Employer  bool `json:"employer"`
}

// SeedDemoData inserts the demo dataset: the employer, four employees
// and the Sep/Oct/Nov revenue figures.
func SeedDemoData(revenue *RevenueLogic, employees *EmployeeLogic) (*SeedResult, error) {
	result := &SeedResult{}

	if _, err := employees.SetEmployer("Dupont", "Jean"); err != nil {
		return nil, err
	}
	result.Employer = true

	demoEmployees := []Employee{
		{LastName: "Martin", FirstName: "Pierre", Age: 32},
		{LastName: "Bernard", FirstName: "Marie", Age: 28},
		{LastName: "Dubois", FirstName: "Thomas", Age: 35},
		{LastName: "Laurent", FirstName: "Sophie", Age: 30},
	}
	for _, emp := range demoEmployees {
		if _, err := employees.CreateEmployee(emp.LastName, emp.FirstName, emp.Age); err != nil {
			return nil, err
		}
		result.Employees++
	}

	demoRevenue := []struct {
		month  int
		amount float64
	}{
		{9, 100000},
		{10, 10000},
		{11, 300000},
	}
	for _, rev := range demoRevenue {
		if _, err := revenue.CreateOrUpdate(2024, rev.month, rev.amount); err != nil {
			return nil, err
		}
		result.Revenue++
	}

	return result, nil
}
