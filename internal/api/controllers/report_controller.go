package controllers

import (
	"fmt"
	"net/http"
	"time"

	"budgy/internal/services"
	"budgy/pkg/utils"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReportController struct {
	summaryService services.SummaryServiceInterface
	exportService  services.ExportServiceInterface
}

func NewReportController(summaryService services.SummaryServiceInterface, exportService services.ExportServiceInterface) *ReportController {
	return &ReportController{
		summaryService: summaryService,
		exportService:  exportService,
	}
}

// GetSummary godoc
// @Summary Get a user's ledger summary
// @Description Income and expense totals, net balance, savings progress, unread alerts and a twelve month series
// @Tags Reports
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /users/{id}/summary [get]
func (r *ReportController) GetSummary(c *gin.Context) {
	userID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	summary, err := r.summaryService.BuildSummary(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, summary, "Fetched summary successfully")
}

// Export godoc
// @Summary Export a user's ledger as xlsx
// @Tags Reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path string true "User ID"
// @Success 200 {file} file
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /users/{id}/export [get]
func (r *ReportController) Export(c *gin.Context) {
	userID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	data, err := r.exportService.ExportUserLedger(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	filename := fmt.Sprintf("ledger_%s_%s.xlsx", userID, time.Now().UTC().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}
