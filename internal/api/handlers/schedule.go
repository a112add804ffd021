package handlers

import (
	"net/http"

	"nuclear-lcoe/internal/api/models"
	"nuclear-lcoe/internal/schedule"

	"github.com/gin-gonic/gin"
)

// ScheduleHandler exposes the construction scheduler.
type ScheduleHandler struct{}

func NewScheduleHandler() *ScheduleHandler {
	return &ScheduleHandler{}
}

// Schedule handles POST /api/v1/schedule.
func (h *ScheduleHandler) Schedule(c *gin.Context) {
	var req models.ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "INVALID_REQUEST", Message: err.Error()},
		})
		return
	}

	lcoeHandler := LCOEHandler{}
	project, _, ok := lcoeHandler.resolveParams(c, req.Scenario)
	if !ok {
		return
	}

	entries := schedule.ForProject(project)
	out := make([]models.ScheduleEntry, len(entries))
	for i, e := range entries {
		out[i] = models.ScheduleEntry{
			Reactor:           e.Reactor,
			ConstructionStart: e.ConstructionStart,
			ConstructionEnd:   e.ConstructionEnd,
			OperationEnd:      e.OperationEnd,
		}
	}
	c.JSON(http.StatusOK, models.ScheduleResponse{Entries: out})
}
