package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ezeflt/horizon-ai/logic"
)

// EmployeeController handles employee and employer HTTP requests.
type EmployeeController struct {
	employeeLogic *logic.EmployeeLogic
}

func NewEmployeeController(employeeLogic *logic.EmployeeLogic) *EmployeeController {
	return &EmployeeController{employeeLogic: employeeLogic}
}

// GetEmployees handles GET /api/employees
func (c *EmployeeController) GetEmployees(ctx *gin.Context) {
	emps, err := c.employeeLogic.ListEmployees()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, emps)
}

// CreateEmployee handles POST /api/employees
func (c *EmployeeController) CreateEmployee(ctx *gin.Context) {
	type Request struct {
		LastName  string `json:"last_name" binding:"required"`
		FirstName string `json:"first_name" binding:"required"`
		Age       int    `json:"age" binding:"required,gt=0"`
	}
	var req Request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	emp, err := c.employeeLogic.CreateEmployee(req.LastName, req.FirstName, req.Age)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, emp)
}

// GetEmployer handles GET /api/employees/employer
func (c *EmployeeController) GetEmployer(ctx *gin.Context) {
	employer, err := c.employeeLogic.GetEmployer()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if employer == nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "no employer is set"})
		return
	}
	ctx.JSON(http.StatusOK, employer)
}

// SetEmployer handles POST /api/employees/employer
func (c *EmployeeController) SetEmployer(ctx *gin.Context) {
	type Request struct {
		LastName  string `json:"last_name" binding:"required"`
		FirstName string `json:"first_name" binding:"required"`
	}
	var req Request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	employer, err := c.employeeLogic.SetEmployer(req.LastName, req.FirstName)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, employer)
}
