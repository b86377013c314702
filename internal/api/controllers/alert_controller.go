package controllers

import (
	"net/http"

	"budgy/internal/models/request_models"
	"budgy/internal/services"
	"budgy/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AlertController struct {
	alertService services.AlertServiceInterface
}

func NewAlertController(alertService services.AlertServiceInterface) *AlertController {
	return &AlertController{alertService: alertService}
}

// Create godoc
// @Summary Create an alert
// @Tags Alerts
// @Accept json
// @Produce json
// @Param request body request_models.AlertRequest true "Alert payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /alerts [post]
func (a *AlertController) Create(c *gin.Context) {
	var req request_models.AlertRequest
	if !bindBody(c, &req) {
		return
	}

	alert, err := a.alertService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, alert, "Alert created successfully")
}

// Update godoc
// @Summary Update an alert
// @Tags Alerts
// @Accept json
// @Produce json
// @Param id path string true "Alert ID"
// @Param request body request_models.AlertRequest true "Alert payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /alerts/{id} [put]
func (a *AlertController) Update(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req request_models.AlertRequest
	if !bindBody(c, &req) {
		return
	}

	alert, err := a.alertService.Update(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	if alert == nil {
		utils.RespondError(c, http.StatusNotFound, "Alert not found")
		return
	}

	utils.RespondSuccess(c, alert, "Alert updated successfully")
}

// MarkRead godoc
// @Summary Mark an alert as read
// @Tags Alerts
// @Produce json
// @Param id path string true "Alert ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /alerts/{id}/read [patch]
func (a *AlertController) MarkRead(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	alert, err := a.alertService.MarkRead(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	if alert == nil {
		utils.RespondError(c, http.StatusNotFound, "Alert not found")
		return
	}

	utils.RespondSuccess(c, alert, "Alert marked as read")
}

// Delete godoc
// @Summary Delete an alert
// @Tags Alerts
// @Produce json
// @Param id path string true "Alert ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /alerts/{id} [delete]
func (a *AlertController) Delete(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	deleted, err := a.alertService.Delete(c.Request.Context(), id)
	respondDeleted(c, deleted, err, "Alert")
}

// List godoc
// @Summary List all alerts
// @Tags Alerts
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /alerts [get]
func (a *AlertController) List(c *gin.Context) {
	alerts, err := a.alertService.ListAll(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, alerts, "Fetched alerts successfully")
}

// ListByUser godoc
// @Summary List a user's alerts
// @Tags Alerts
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /alerts/user/{userId} [get]
func (a *AlertController) ListByUser(c *gin.Context) {
	userID, ok := uuidParam(c, "userId")
	if !ok {
		return
	}

	alerts, err := a.alertService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, alerts, "Fetched alerts successfully")
}

// ListUnreadByUser godoc
// @Summary List a user's unread alerts
// @Tags Alerts
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /alerts/user/{userId}/unread [get]
func (a *AlertController) ListUnreadByUser(c *gin.Context) {
	userID, ok := uuidParam(c, "userId")
	if !ok {
		return
	}

	alerts, err := a.alertService.ListUnreadByUser(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, alerts, "Fetched unread alerts successfully")
}
