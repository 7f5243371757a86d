package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rekib0023/expense-sharing-backend/internal/services"
)

// ChartHandler serves pre-shaped chart data.
type ChartHandler struct {
	chartService services.ChartServicer
}

// NewChartHandler creates a new ChartHandler
func NewChartHandler(chartService services.ChartServicer) *ChartHandler {
	return &ChartHandler{chartService: chartService}
}

// CategoryExpense returns per-category expense totals as chart rows
// @Summary     Get expense totals per category
// @Description Rows shaped for charting: a header row, then [name, total] per category
// @Tags        charts
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} []interface{} "Chart rows"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /charts/category_expense [get]
func (h *ChartHandler) CategoryExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	rows, err := h.chartService.CategoryExpenseRows(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, rows)
}
