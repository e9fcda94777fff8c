package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ezeflt/horizon-ai/logic"
)

// TransactionController handles transaction HTTP requests.
type TransactionController struct {
	txLogic *logic.TransactionLogic
}

func NewTransactionController(txLogic *logic.TransactionLogic) *TransactionController {
	return &TransactionController{txLogic: txLogic}
}

// GetTransactions handles GET /api/transactions
func (c *TransactionController) GetTransactions(ctx *gin.Context) {
	txs, err := c.txLogic.ListAll()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, txs)
}

// GetByMonth handles GET /api/transactions/by-month?year=2024&month=9
func (c *TransactionController) GetByMonth(ctx *gin.Context) {
	year, err := strconv.Atoi(ctx.Query("year"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "a numeric year query parameter is required"})
		return
	}
	month, err := strconv.Atoi(ctx.Query("month"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "a numeric month query parameter is required"})
		return
	}

	txs, err := c.txLogic.ListByMonth(year, month)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, txs)
}

// GetRevenue handles GET /api/transactions/revenue?year=2024
func (c *TransactionController) GetRevenue(ctx *gin.Context) {
	year, err := strconv.Atoi(ctx.Query("year"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "a numeric year query parameter is required"})
		return
	}

	reports, err := c.txLogic.RevenueByMonth(year)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	total, err := c.txLogic.TotalRevenue(year)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"year": year, "months": reports, "total": total})
}

// CreateTransaction handles POST /api/transactions
func (c *TransactionController) CreateTransaction(ctx *gin.Context) {
	type Request struct {
		Client string  `json:"client" binding:"required"`
		Amount float64 `json:"amount" binding:"required"`
		Date   string  `json:"date" binding:"required"`
	}
	var req Request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "date must be an RFC 3339 timestamp"})
		return
	}

	tx, err := c.txLogic.CreateTransaction(req.Client, req.Amount, date)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, tx)
}
