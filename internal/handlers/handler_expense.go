package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/printshop_pos/internal/core/ports/services"
	"github.com/SscSPs/printshop_pos/internal/dto"
	"github.com/SscSPs/printshop_pos/internal/middleware"
	"github.com/gin-gonic/gin"
)

// expenseHandler handles HTTP requests related to expenses.
type expenseHandler struct {
	expenseService portssvc.ExpenseSvcFacade
}

func newExpenseHandler(es portssvc.ExpenseSvcFacade) *expenseHandler {
	return &expenseHandler{expenseService: es}
}

// registerExpenseRoutes registers routes related to expenses.
func registerExpenseRoutes(rg *gin.RouterGroup, expenseService portssvc.ExpenseSvcFacade) {
	h := newExpenseHandler(expenseService)

	expenses := rg.Group("/expenses")
	{
		expenses.POST("", h.createExpense)
		expenses.GET("", h.listExpenses)
		expenses.GET("/categories", h.listCategories)
	}
}

// createExpense godoc
// @Summary Record an expense
// @Tags expenses
// @Accept  json
// @Produce  json
// @Param   expense body dto.CreateExpenseRequest true "Expense details"
// @Success 201 {object} dto.ExpenseResponse
// @Failure 400 {object} ErrorResponse "Invalid input format or validation error"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to record expense"
// @Security BearerAuth
// @Router /expenses [post]
func (h *expenseHandler) createExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, "CreateExpense", err)
		return
	}
	actor, ok := requireActor(c, logger)
	if !ok {
		return
	}

	logger.Info("Received request to record expense", slog.String("category", req.Category))

	expense, err := h.expenseService.CreateExpense(c.Request.Context(), req, actor)
	if err != nil {
		respondError(c, logger, err, "Failed to record expense")
		return
	}

	logger.Info("Expense recorded", slog.String("expense_id", expense.ID))
	c.JSON(http.StatusCreated, dto.ToExpenseResponse(expense))
}

// listExpenses godoc
// @Summary List expenses
// @Description Lists the caller's expenses (every expense for admins), most recent first
// @Tags expenses
// @Produce  json
// @Success 200 {object} dto.ListExpensesResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /expenses [get]
func (h *expenseHandler) listExpenses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	actor, ok := requireActor(c, logger)
	if !ok {
		return
	}

	expenses, err := h.expenseService.ListExpenses(c.Request.Context(), actor)
	if err != nil {
		respondError(c, logger, err, "Failed to list expenses")
		return
	}
	c.JSON(http.StatusOK, dto.ToListExpensesResponse(expenses))
}

// listCategories godoc
// @Summary Suggested expense categories
// @Tags expenses
// @Produce  json
// @Success 200 {object} dto.ExpenseCategoriesResponse
// @Security BearerAuth
// @Router /expenses/categories [get]
func (h *expenseHandler) listCategories(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ExpenseCategoriesResponse{Categories: h.expenseService.Categories()})
}
