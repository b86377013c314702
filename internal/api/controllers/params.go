package controllers

import (
	"fmt"
	"net/http"
	"time"

	"budgy/internal/models/request_models"
	"budgy/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// uuidParam reads a path parameter as a UUID and answers 400 when it is not one.
func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		utils.HandleServiceError(c, fmt.Errorf("%w: %s", utils.ErrInvalidID, name))
		return uuid.Nil, false
	}
	return id, true
}

// periodQuery reads the start/end query pair with parse.
func periodQuery(c *gin.Context, parse func(string) (time.Time, error)) (time.Time, time.Time, bool) {
	var q request_models.PeriodQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "start and end query parameters are required")
		return time.Time{}, time.Time{}, false
	}
	start, err := parse(q.Start)
	if err != nil {
		utils.HandleServiceError(c, err)
		return time.Time{}, time.Time{}, false
	}
	end, err := parse(q.End)
	if err != nil {
		utils.HandleServiceError(c, err)
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

func bindBody(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return false
	}
	return true
}

// respondDeleted answers 404 when nothing was removed.
func respondDeleted(c *gin.Context, deleted bool, err error, what string) {
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	if !deleted {
		utils.RespondError(c, http.StatusNotFound, what+" not found")
		return
	}
	utils.RespondSuccess(c, nil, what+" deleted successfully")
}
