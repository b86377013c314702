package controllers

import (
	"budgy/internal/models/db_models"
	"budgy/internal/models/request_models"
	"budgy/internal/services"
	"budgy/pkg/utils"

	"github.com/gin-gonic/gin"
)

type SavingsController struct {
	savingsService services.SavingsServiceInterface
	queries        services.LedgerQueryServiceInterface
}

func NewSavingsController(savingsService services.SavingsServiceInterface, queries services.LedgerQueryServiceInterface) *SavingsController {
	return &SavingsController{savingsService: savingsService, queries: queries}
}

// savingsView adds the derived progress fields to a stored goal.
type savingsView struct {
	db_models.Savings
	Progress string `json:"progress"`
	Reached  bool   `json:"reached"`
}

func viewSavings(s db_models.Savings) savingsView {
	return savingsView{Savings: s, Progress: s.Progress().String(), Reached: s.Reached()}
}

func viewSavingsList(goals []db_models.Savings) []savingsView {
	out := make([]savingsView, 0, len(goals))
	for _, g := range goals {
		out = append(out, viewSavings(g))
	}
	return out
}

// Create godoc
// @Summary Create a savings goal
// @Tags Savings
// @Accept json
// @Produce json
// @Param request body request_models.SavingsRequest true "Savings payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /savings [post]
func (s *SavingsController) Create(c *gin.Context) {
	var req request_models.SavingsRequest
	if !bindBody(c, &req) {
		return
	}

	goal, err := s.savingsService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, viewSavings(*goal), "Savings goal created successfully")
}

// Update godoc
// @Summary Update a savings goal
// @Tags Savings
// @Accept json
// @Produce json
// @Param id path string true "Savings ID"
// @Param request body request_models.SavingsRequest true "Savings payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /savings/{id} [put]
func (s *SavingsController) Update(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req request_models.SavingsRequest
	if !bindBody(c, &req) {
		return
	}

	goal, err := s.savingsService.Update(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, viewSavings(*goal), "Savings goal updated successfully")
}

// Delete godoc
// @Summary Delete a savings goal
// @Tags Savings
// @Produce json
// @Param id path string true "Savings ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /savings/{id} [delete]
func (s *SavingsController) Delete(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	deleted, err := s.savingsService.Delete(c.Request.Context(), id)
	respondDeleted(c, deleted, err, "Savings goal")
}

// List godoc
// @Summary List all savings goals
// @Tags Savings
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /savings [get]
func (s *SavingsController) List(c *gin.Context) {
	goals, err := s.savingsService.ListAll(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, viewSavingsList(goals), "Fetched savings goals successfully")
}

// ListByUser godoc
// @Summary List a user's savings goals
// @Tags Savings
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /savings/user/{userId} [get]
func (s *SavingsController) ListByUser(c *gin.Context) {
	userID, ok := uuidParam(c, "userId")
	if !ok {
		return
	}

	goals, err := s.savingsService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, viewSavingsList(goals), "Fetched savings goals successfully")
}

// ListByPriority godoc
// @Summary List savings goals of one priority
// @Tags Savings
// @Produce json
// @Param priority path string true "Priority" Enums(LOW, MEDIUM, HIGH)
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /savings/priority/{priority} [get]
func (s *SavingsController) ListByPriority(c *gin.Context) {
	goals, err := s.queries.SavingsByPriority(c.Request.Context(), db_models.SavingsPriority(c.Param("priority")))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, viewSavingsList(goals), "Fetched savings goals successfully")
}

// ListByUserAndPriority godoc
// @Summary List a user's savings goals of one priority
// @Tags Savings
// @Produce json
// @Param userId path string true "User ID"
// @Param priority path string true "Priority" Enums(LOW, MEDIUM, HIGH)
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /savings/user/{userId}/priority/{priority} [get]
func (s *SavingsController) ListByUserAndPriority(c *gin.Context) {
	userID, ok := uuidParam(c, "userId")
	if !ok {
		return
	}

	goals, err := s.savingsService.ListByUserAndPriority(c.Request.Context(), userID, db_models.SavingsPriority(c.Param("priority")))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, viewSavingsList(goals), "Fetched savings goals successfully")
}

// ListByUserWithinPeriod godoc
// @Summary List a user's savings goals whose target date falls within a period
// @Description Both bounds are inclusive calendar dates
// @Tags Savings
// @Produce json
// @Param userId path string true "User ID"
// @Param start query string true "Start date (2006-01-02)"
// @Param end query string true "End date (2006-01-02)"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /savings/user/{userId}/period [get]
func (s *SavingsController) ListByUserWithinPeriod(c *gin.Context) {
	userID, ok := uuidParam(c, "userId")
	if !ok {
		return
	}
	start, end, ok := periodQuery(c, utils.ParseDate)
	if !ok {
		return
	}

	goals, err := s.queries.SavingsByUserWithinPeriod(c.Request.Context(), userID, start, end)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, viewSavingsList(goals), "Fetched savings goals successfully")
}
