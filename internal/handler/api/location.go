package api

import (
	"net/http"

	"salon-queue/internal/domain/hours"
	reqdto "salon-queue/internal/handler/dto/request"
	resdto "salon-queue/internal/handler/dto/response"
	"salon-queue/internal/handler/httperr"
	"salon-queue/internal/handler/middleware"
	"salon-queue/internal/usecase/commands"
	"salon-queue/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type LocationHandler struct {
	cmds  commands.LocationCommands
	q     queries.LocationQueries
	queue queries.QueueQueries
}

func NewLocationHandler(cmds commands.LocationCommands, q queries.LocationQueries, queue queries.QueueQueries) *LocationHandler {
	return &LocationHandler{cmds: cmds, q: q, queue: queue}
}

func locationID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid location ID format", nil)
		return uuid.Nil, false
	}
	return id, true
}

// @Summary Queue state
// @Description Providers, waiting and booked entries. poll_after_ms hints the next poll.
// @Tags locations
// @Produce json
// @Param id path string true "Location ID"
// @Success 200 {object} resdto.QueueStateResponse
// @Failure 404 {object} httperr.Response
// @Router /locations/{id}/queue [get]
func (h *LocationHandler) Queue(c *gin.Context) {
	id, ok := locationID(c)
	if !ok {
		return
	}
	view, err := h.queue.QueueState(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromQueueState(view))
}

// @Summary Location status
// @Tags locations
// @Produce json
// @Param id path string true "Location ID"
// @Success 200 {object} queries.LocationStatusView
// @Failure 404 {object} httperr.Response
// @Router /locations/{id}/status [get]
func (h *LocationHandler) Status(c *gin.Context) {
	id, ok := locationID(c)
	if !ok {
		return
	}
	view, err := h.q.Status(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Bookable slots
// @Tags locations
// @Produce json
// @Param id path string true "Location ID"
// @Param date query string true "YYYY-MM-DD"
// @Param serviceId query string true "Service ID"
// @Param providerId query string false "Provider ID"
// @Success 200 {object} resdto.SlotsResponse
// @Failure 400 {object} httperr.Response
// @Router /locations/{id}/slots [get]
func (h *LocationHandler) Slots(c *gin.Context) {
	id, ok := locationID(c)
	if !ok {
		return
	}
	var query reqdto.SlotsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	date, err := hours.ParseDate(query.Date)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date", nil)
		return
	}
	params := queries.SlotsParams{
		LocationID: id,
		ServiceID:  uuid.MustParse(query.ServiceID),
		Date:       date,
	}
	if query.ProviderID != "" {
		pid := uuid.MustParse(query.ProviderID)
		params.ProviderID = &pid
	}

	slots, err := h.q.Slots(c.Request.Context(), params)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.SlotsResponse{Date: date.String(), Slots: slots})
}

// @Summary Eligible providers
// @Tags locations
// @Produce json
// @Param id path string true "Location ID"
// @Param serviceId query string true "Service ID"
// @Success 200 {array} resdto.EligibleProviderResponse
// @Failure 400 {object} httperr.Response
// @Router /locations/{id}/providers/eligible [get]
func (h *LocationHandler) EligibleProviders(c *gin.Context) {
	id, ok := locationID(c)
	if !ok {
		return
	}
	var query reqdto.EligibleQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}

	views, err := h.q.EligibleProviders(c.Request.Context(), id, uuid.MustParse(query.ServiceID))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	out, err := resdto.FromEligibleProviders(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, out)
}

// @Summary Pause location
// @Tags locations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Location ID"
// @Param request body reqdto.PauseRequest true "Pause"
// @Success 200 {object} queries.LocationStatusView
// @Failure 403 {object} httperr.Response
// @Router /locations/{id}/pause [put]
func (h *LocationHandler) Pause(c *gin.Context) {
	id, ok := locationID(c)
	if !ok {
		return
	}
	var req reqdto.PauseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	st, err := h.cmds.Pause(c.Request.Context(), middleware.GetActor(c), id, req.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, queries.ToStatusView(id, *st))
}

// @Summary Resume location
// @Tags locations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Location ID"
// @Success 200 {object} queries.LocationStatusView
// @Failure 403 {object} httperr.Response
// @Router /locations/{id}/pause [delete]
func (h *LocationHandler) Resume(c *gin.Context) {
	id, ok := locationID(c)
	if !ok {
		return
	}
	st, err := h.cmds.Resume(c.Request.Context(), middleware.GetActor(c), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, queries.ToStatusView(id, *st))
}
