package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	reqdto "bookwise/internal/handler/dto/request"
	resdto "bookwise/internal/handler/dto/response"
	"bookwise/internal/handler/httperr"
	"bookwise/internal/usecase/commands"
)

type ScheduleHandler struct {
	cmds commands.ScheduleCommands
}

func NewScheduleHandler(cmds commands.ScheduleCommands) *ScheduleHandler {
	return &ScheduleHandler{cmds: cmds}
}

// @Summary Create schedule
// @Description Create an availability schedule of weekly rules and date overrides
// @Tags schedules
// @Accept json
// @Produce json
// @Param host_id query string true "Host ID"
// @Param request body reqdto.ScheduleRequest true "Schedule definition"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /schedules [post]
func (h *ScheduleHandler) Create(c *gin.Context) {
	hostID, err := uuid.Parse(c.Query("host_id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid host ID", nil)
		return
	}
	var req reqdto.ScheduleRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	input, err := req.ToInput()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid schedule definition", nil)
		return
	}
	id, err := h.cmds.Create(c.Request.Context(), hostID, input)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary Update schedule
// @Description Replace the schedule's rules and overrides
// @Tags schedules
// @Accept json
// @Produce json
// @Param id path string true "Schedule ID"
// @Param request body reqdto.ScheduleRequest true "Schedule definition"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /schedules/{id} [put]
func (h *ScheduleHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid schedule ID", nil)
		return
	}
	var req reqdto.ScheduleRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	input, err := req.ToInput()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid schedule definition", nil)
		return
	}
	if err := h.cmds.Update(c.Request.Context(), id, input); err != nil {
		respondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
