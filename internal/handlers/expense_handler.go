package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "github.com/rekib0023/expense-sharing-backend/internal/errors"
	"github.com/rekib0023/expense-sharing-backend/internal/models"
	"github.com/rekib0023/expense-sharing-backend/internal/services"
)

// ExpenseHandler handles expense CRUD, filtering, and grouping requests.
type ExpenseHandler struct {
	expenseService services.ExpenseServicer
	auditService   services.AuditServicer
}

// NewExpenseHandler creates a new ExpenseHandler
func NewExpenseHandler(expenseService services.ExpenseServicer, auditService services.AuditServicer) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService, auditService: auditService}
}

// ExpenseRequest represents the writable fields of an expense. is_spend
// defaults to true when omitted.
type ExpenseRequest struct {
	Name         string    `json:"name" binding:"required,max=255"`
	PaidBy       string    `json:"paid_by" binding:"omitempty,paid_by"`
	Amount       float64   `json:"amount" binding:"gte=0"`
	IsSpend      *bool     `json:"is_spend"`
	CategoryID   uint      `json:"category_id" binding:"required"`
	PaymentDate  time.Time `json:"payment_date"`
	OtherDetails string    `json:"other_details"`
}

func (r *ExpenseRequest) toInput() services.ExpenseInput {
	isSpend := true
	if r.IsSpend != nil {
		isSpend = *r.IsSpend
	}
	return services.ExpenseInput{
		Name:         r.Name,
		PaidBy:       models.PaidBy(r.PaidBy),
		Amount:       r.Amount,
		IsSpend:      isSpend,
		CategoryID:   r.CategoryID,
		PaymentDate:  r.PaymentDate,
		OtherDetails: r.OtherDetails,
	}
}

// expenseListQuery holds the optional filters of the expense list endpoint.
type expenseListQuery struct {
	Type     string   `form:"type" binding:"omitempty,expense_discriminator"`
	Value    string   `form:"value"`
	AmountGT *float64 `form:"amount_gt"`
	AmountLT *float64 `form:"amount_lt"`
}

// CreateExpense creates a new expense
// @Summary     Create a new expense
// @Tags        expense
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body ExpenseRequest true "Expense details"
// @Success     201 {object} map[string]interface{} "Expense created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Router      /expense [post]
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	expense, err := h.expenseService.CreateExpense(c.Request.Context(), userID, req.toInput())
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(c.Request.Context(), userID, "create", "expense", expense.ID, c.ClientIP())
	c.JSON(http.StatusCreated, gin.H{"expense": expense})
}

// GetExpenses lists the caller's expenses with optional filters
// @Summary     Get all expenses
// @Description List expenses, newest payment first, with optional filters
// @Tags        expense
// @Produce     json
// @Security    BearerAuth
// @Param       type query string false "Discriminator filter (category or paid_by)"
// @Param       value query string false "Discriminator value"
// @Param       amount_gt query number false "Inclusive lower amount bound"
// @Param       amount_lt query number false "Inclusive upper amount bound"
// @Success     200 {object} map[string]interface{} "Expenses"
// @Failure     400 {object} ErrorResponse "Invalid filter type"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "No category found for the given filter"
// @Router      /expense [get]
func (h *ExpenseHandler) GetExpenses(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var query expenseListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.ErrInvalidFilter)
		return
	}

	expenses, err := h.expenseService.GetExpenses(c.Request.Context(), userID, services.ExpenseFilter{
		Type:     query.Type,
		Value:    query.Value,
		AmountGT: query.AmountGT,
		AmountLT: query.AmountLT,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"expenses": expenses})
}

// GroupExpenses partitions the caller's expenses by a discriminator
// @Summary     Get expenses in groups
// @Description Partition all expenses by category name or payment type
// @Tags        expense
// @Produce     json
// @Security    BearerAuth
// @Param       by query string true "Discriminator (category or paid_by)"
// @Success     200 {object} map[string]interface{} "Grouped expenses"
// @Failure     400 {object} ErrorResponse "Invalid grouping"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /expense/group [get]
func (h *ExpenseHandler) GroupExpenses(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	groups, err := h.expenseService.GroupExpenses(c.Request.Context(), userID, c.Query("by"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, groups)
}

// GetExpenseByID retrieves one of the caller's expenses
// @Summary     Get an expense by ID
// @Tags        expense
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Expense ID"
// @Success     200 {object} map[string]interface{} "Expense"
// @Failure     400 {object} ErrorResponse "Invalid expense ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Router      /expense/{id} [get]
func (h *ExpenseHandler) GetExpenseByID(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expenseID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	expense, err := h.expenseService.GetExpenseByID(c.Request.Context(), userID, expenseID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"expense": expense})
}

// UpdateExpense replaces an expense's writable fields
// @Summary     Update an expense
// @Tags        expense
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Expense ID"
// @Param       request body ExpenseRequest true "Updated expense details"
// @Success     200 {object} map[string]interface{} "Updated expense"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Router      /expense/{id} [put]
func (h *ExpenseHandler) UpdateExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expenseID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	expense, err := h.expenseService.UpdateExpense(c.Request.Context(), userID, expenseID, req.toInput())
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(c.Request.Context(), userID, "update", "expense", expense.ID, c.ClientIP())
	c.JSON(http.StatusOK, gin.H{"expense": expense})
}

// DeleteExpense removes one of the caller's expenses
// @Summary     Delete an expense
// @Tags        expense
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Expense ID"
// @Success     200 {object} map[string]interface{} "Deleted"
// @Failure     400 {object} ErrorResponse "Invalid expense ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Router      /expense/{id} [delete]
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expenseID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.expenseService.DeleteExpense(c.Request.Context(), userID, expenseID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(c.Request.Context(), userID, "delete", "expense", expenseID, c.ClientIP())
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}
