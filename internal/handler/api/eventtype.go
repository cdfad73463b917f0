package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	reqdto "bookwise/internal/handler/dto/request"
	resdto "bookwise/internal/handler/dto/response"
	"bookwise/internal/handler/httperr"
	"bookwise/internal/usecase/commands"
	"bookwise/internal/usecase/queries"
)

type EventTypeHandler struct {
	cmds commands.EventTypeCommands
	q    queries.EventTypeQueries
}

func NewEventTypeHandler(cmds commands.EventTypeCommands, q queries.EventTypeQueries) *EventTypeHandler {
	return &EventTypeHandler{cmds: cmds, q: q}
}

// @Summary Create event type
// @Description Create a bookable event type for a host
// @Tags event-types
// @Accept json
// @Produce json
// @Param request body reqdto.CreateEventTypeRequest true "Event type definition"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /event-types [post]
func (h *EventTypeHandler) Create(c *gin.Context) {
	var req reqdto.CreateEventTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	id, err := h.cmds.Create(c.Request.Context(), commands.CreateEventTypeInput{
		HostID:          req.HostID,
		Name:            req.Name,
		DurationMinutes: req.DurationMinutes,
		Description:     req.Description,
		BufferBeforeMin: req.BufferBeforeMin,
		BufferAfterMin:  req.BufferAfterMin,
		Limits:          req.Limits,
		Location:        req.Location,
		Questions:       req.Questions,
		Confirmations:   req.Confirmations,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary Get event type
// @Description Get event type by ID
// @Tags event-types
// @Produce json
// @Param id path string true "Event type ID"
// @Success 200 {object} resdto.EventTypeResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /event-types/{id} [get]
func (h *EventTypeHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid event type ID", nil)
		return
	}
	view, err := h.q.GetEventType(c.Request.Context(), id)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromEventTypeView(view))
}

// @Summary List event types
// @Description List a host's event types
// @Tags event-types
// @Produce json
// @Param host_id query string true "Host ID"
// @Success 200 {object} resdto.EventTypeListResponse
// @Failure 400 {object} map[string]string
// @Router /event-types [get]
func (h *EventTypeHandler) List(c *gin.Context) {
	hostID, err := uuid.Parse(c.Query("host_id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid host ID", nil)
		return
	}
	items, err := h.q.ListEventTypes(c.Request.Context(), hostID)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromEventTypeListItems(items))
}

// @Summary Update event type
// @Description Partially update an event type; omitted fields keep their value
// @Tags event-types
// @Accept json
// @Produce json
// @Param id path string true "Event type ID"
// @Param request body reqdto.UpdateEventTypeRequest true "Fields to update"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /event-types/{id} [patch]
func (h *EventTypeHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid event type ID", nil)
		return
	}
	var req reqdto.UpdateEventTypeRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	err = h.cmds.Update(c.Request.Context(), id, commands.UpdateEventTypeInput{
		Name:            req.Name,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		BufferBeforeMin: req.BufferBeforeMin,
		BufferAfterMin:  req.BufferAfterMin,
		Limits:          req.Limits,
		Location:        req.Location,
		Questions:       req.Questions,
		Confirmations:   req.Confirmations,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Attach schedule
// @Description Attach an availability schedule to the event type
// @Tags event-types
// @Accept json
// @Produce json
// @Param id path string true "Event type ID"
// @Param request body reqdto.AttachScheduleRequest true "Schedule to attach"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /event-types/{id}/schedule [put]
func (h *EventTypeHandler) AttachSchedule(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid event type ID", nil)
		return
	}
	var req reqdto.AttachScheduleRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	if err := h.cmds.AttachSchedule(c.Request.Context(), id, req.ScheduleID); err != nil {
		respondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Deactivate event type
// @Description Stop accepting bookings for this event type
// @Tags event-types
// @Produce json
// @Param id path string true "Event type ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /event-types/{id} [delete]
func (h *EventTypeHandler) Deactivate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid event type ID", nil)
		return
	}
	if err := h.cmds.Deactivate(c.Request.Context(), id); err != nil {
		respondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
