package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ezeflt/horizon-ai/logic"
)

// RevenueController handles monthly revenue HTTP requests.
type RevenueController struct {
	revenueLogic  *logic.RevenueLogic
	employeeLogic *logic.EmployeeLogic
}

func NewRevenueController(revenueLogic *logic.RevenueLogic, employeeLogic *logic.EmployeeLogic) *RevenueController {
	return &RevenueController{
		revenueLogic:  revenueLogic,
		employeeLogic: employeeLogic,
	}
}

// GetByYear handles GET /api/revenue?year=2024
func (c *RevenueController) GetByYear(ctx *gin.Context) {
	year, err := strconv.Atoi(ctx.Query("year"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "a numeric year query parameter is required"})
		return
	}

	revs, err := c.revenueLogic.ListByYear(year)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	total, err := c.revenueLogic.TotalByYear(year)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"year": year, "revenue": revs, "total": total})
}

// GetAll handles GET /api/revenue/all
func (c *RevenueController) GetAll(ctx *gin.Context) {
	revs, err := c.revenueLogic.ListAll()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, revs)
}

// CreateOrUpdate handles POST /api/revenue
func (c *RevenueController) CreateOrUpdate(ctx *gin.Context) {
	type Request struct {
		Year   int     `json:"year" binding:"required"`
		Month  int     `json:"month" binding:"required"`
		Amount float64 `json:"amount" binding:"required"`
	}
	var req Request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rev, err := c.revenueLogic.CreateOrUpdate(req.Year, req.Month, req.Amount)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, rev)
}

// SeedDemoData handles POST /api/revenue/seed
func (c *RevenueController) SeedDemoData(ctx *gin.Context) {
	result, err := logic.SeedDemoData(c.revenueLogic, c.employeeLogic)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"message": "demo data inserted", "results": result})
}
