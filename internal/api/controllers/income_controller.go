package controllers

import (
	"budgy/internal/models/db_models"
	"budgy/internal/models/request_models"
	"budgy/internal/services"
	"budgy/pkg/utils"

	"github.com/gin-gonic/gin"
)

type IncomeController struct {
	incomeService services.IncomeServiceInterface
	queries       services.LedgerQueryServiceInterface
}

func NewIncomeController(incomeService services.IncomeServiceInterface, queries services.LedgerQueryServiceInterface) *IncomeController {
	return &IncomeController{incomeService: incomeService, queries: queries}
}

// Create godoc
// @Summary Record an income
// @Tags Incomes
// @Accept json
// @Produce json
// @Param request body request_models.IncomeRequest true "Income payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /incomes [post]
func (i *IncomeController) Create(c *gin.Context) {
	var req request_models.IncomeRequest
	if !bindBody(c, &req) {
		return
	}

	income, err := i.incomeService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, income, "Income created successfully")
}

// Update godoc
// @Summary Update an income
// @Tags Incomes
// @Accept json
// @Produce json
// @Param id path string true "Income ID"
// @Param request body request_models.IncomeRequest true "Income payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /incomes/{id} [put]
func (i *IncomeController) Update(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req request_models.IncomeRequest
	if !bindBody(c, &req) {
		return
	}

	income, err := i.incomeService.Update(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, income, "Income updated successfully")
}

// Delete godoc
// @Summary Delete an income
// @Tags Incomes
// @Produce json
// @Param id path string true "Income ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /incomes/{id} [delete]
func (i *IncomeController) Delete(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	deleted, err := i.incomeService.Delete(c.Request.Context(), id)
	respondDeleted(c, deleted, err, "Income")
}

// List godoc
// @Summary List all incomes
// @Tags Incomes
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /incomes [get]
func (i *IncomeController) List(c *gin.Context) {
	incomes, err := i.incomeService.ListAll(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, incomes, "Fetched incomes successfully")
}

// ListByUser godoc
// @Summary List a user's incomes
// @Tags Incomes
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /incomes/user/{userId} [get]
func (i *IncomeController) ListByUser(c *gin.Context) {
	userID, ok := uuidParam(c, "userId")
	if !ok {
		return
	}

	incomes, err := i.incomeService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, incomes, "Fetched incomes successfully")
}

// ListByUserAndType godoc
// @Summary List a user's incomes of one type
// @Tags Incomes
// @Produce json
// @Param userId path string true "User ID"
// @Param type path string true "Income type" Enums(SALARY, BUSINESS, INVESTMENT, FREELANCE, GIFT, OTHER)
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /incomes/user/{userId}/type/{type} [get]
func (i *IncomeController) ListByUserAndType(c *gin.Context) {
	userID, ok := uuidParam(c, "userId")
	if !ok {
		return
	}

	incomes, err := i.queries.IncomeByUserAndType(c.Request.Context(), userID, db_models.IncomeType(c.Param("type")))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, incomes, "Fetched incomes successfully")
}

// TotalByUser godoc
// @Summary Total of a user's incomes
// @Description Exact decimal sum; zero when the user has no income
// @Tags Incomes
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /incomes/user/{userId}/total [get]
func (i *IncomeController) TotalByUser(c *gin.Context) {
	userID, ok := uuidParam(c, "userId")
	if !ok {
		return
	}

	total, err := i.queries.TotalIncomeByUser(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"user_id": userID, "total": total}, "Fetched income total successfully")
}

// ListByUserWithinPeriod godoc
// @Summary List a user's incomes created within a period
// @Description Both bounds are inclusive
// @Tags Incomes
// @Produce json
// @Param userId path string true "User ID"
// @Param start query string true "Start (RFC3339 or 2006-01-02 15:04:05)"
// @Param end query string true "End (RFC3339 or 2006-01-02 15:04:05)"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /incomes/user/{userId}/period [get]
func (i *IncomeController) ListByUserWithinPeriod(c *gin.Context) {
	userID, ok := uuidParam(c, "userId")
	if !ok {
		return
	}
	start, end, ok := periodQuery(c, utils.ParseDateTime)
	if !ok {
		return
	}

	incomes, err := i.queries.IncomeByUserWithinPeriod(c.Request.Context(), userID, start, end)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, incomes, "Fetched incomes successfully")
}
