package controllers

import (
	"budgy/internal/models/request_models"
	"budgy/internal/services"
	"budgy/pkg/utils"

	"github.com/gin-gonic/gin"
)

type ExpenseController struct {
	expenseService services.ExpenseServiceInterface
	queries        services.LedgerQueryServiceInterface
}

func NewExpenseController(expenseService services.ExpenseServiceInterface, queries services.LedgerQueryServiceInterface) *ExpenseController {
	return &ExpenseController{expenseService: expenseService, queries: queries}
}

// Create godoc
// @Summary Record an expense
// @Tags Expenses
// @Accept json
// @Produce json
// @Param request body request_models.ExpenseRequest true "Expense payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /expenses [post]
func (e *ExpenseController) Create(c *gin.Context) {
	var req request_models.ExpenseRequest
	if !bindBody(c, &req) {
		return
	}

	expense, err := e.expenseService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, expense, "Expense created successfully")
}

// Update godoc
// @Summary Update an expense
// @Tags Expenses
// @Accept json
// @Produce json
// @Param id path string true "Expense ID"
// @Param request body request_models.ExpenseRequest true "Expense payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /expenses/{id} [put]
func (e *ExpenseController) Update(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req request_models.ExpenseRequest
	if !bindBody(c, &req) {
		return
	}

	expense, err := e.expenseService.Update(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, expense, "Expense updated successfully")
}

// Delete godoc
// @Summary Delete an expense
// @Tags Expenses
// @Produce json
// @Param id path string true "Expense ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /expenses/{id} [delete]
func (e *ExpenseController) Delete(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	deleted, err := e.expenseService.Delete(c.Request.Context(), id)
	respondDeleted(c, deleted, err, "Expense")
}

// List godoc
// @Summary List all expenses
// @Tags Expenses
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /expenses [get]
func (e *ExpenseController) List(c *gin.Context) {
	expenses, err := e.expenseService.ListAll(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, expenses, "Fetched expenses successfully")
}

// ListByUser godoc
// @Summary List a user's expenses
// @Tags Expenses
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /expenses/user/{userId} [get]
func (e *ExpenseController) ListByUser(c *gin.Context) {
	userID, ok := uuidParam(c, "userId")
	if !ok {
		return
	}

	expenses, err := e.expenseService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, expenses, "Fetched expenses successfully")
}

// TotalByUser godoc
// @Summary Total of a user's expenses
// @Tags Expenses
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /expenses/user/{userId}/total [get]
func (e *ExpenseController) TotalByUser(c *gin.Context) {
	userID, ok := uuidParam(c, "userId")
	if !ok {
		return
	}

	total, err := e.queries.TotalExpensesByUser(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"user_id": userID, "total": total}, "Fetched expense total successfully")
}

// ListByCategory godoc
// @Summary List expenses in a category
// @Tags Expenses
// @Produce json
// @Param categoryId path string true "Category ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /expenses/category/{categoryId} [get]
func (e *ExpenseController) ListByCategory(c *gin.Context) {
	categoryID, ok := uuidParam(c, "categoryId")
	if !ok {
		return
	}

	expenses, err := e.expenseService.ListByCategory(c.Request.Context(), categoryID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, expenses, "Fetched expenses successfully")
}

// ListByUserAndCategory godoc
// @Summary List a user's expenses in a category
// @Tags Expenses
// @Produce json
// @Param userId path string true "User ID"
// @Param categoryId path string true "Category ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /expenses/user/{userId}/category/{categoryId} [get]
func (e *ExpenseController) ListByUserAndCategory(c *gin.Context) {
	userID, ok := uuidParam(c, "userId")
	if !ok {
		return
	}
	categoryID, ok := uuidParam(c, "categoryId")
	if !ok {
		return
	}

	expenses, err := e.queries.ExpensesByUserAndCategory(c.Request.Context(), userID, categoryID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, expenses, "Fetched expenses successfully")
}
