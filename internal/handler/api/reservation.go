package api

import (
	"net/http"

	resdto "salon-queue/internal/handler/dto/response"
	"salon-queue/internal/handler/httperr"
	"salon-queue/internal/handler/middleware"
	"salon-queue/internal/usecase/commands"
	"salon-queue/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	bookings commands.BookingCommands
	queue    commands.QueueCommands
	q        queries.ReservationQueries
}

func NewReservationHandler(bookings commands.BookingCommands, queue commands.QueueCommands, q queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{bookings: bookings, queue: queue, q: q}
}

func reservationID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation ID format", nil)
		return uuid.Nil, false
	}
	return id, true
}

// @Summary Get reservation
// @Tags reservations
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	id, ok := reservationID(c)
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), middleware.GetActor(c), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Check in
// @Description RED to ORANGE. Promotes immediately when a matching provider is idle.
// @Tags reservations
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.TransitionResponse
// @Failure 409 {object} httperr.Response
// @Failure 410 {object} httperr.Response
// @Router /reservations/{id}/checkin [post]
func (h *ReservationHandler) CheckIn(c *gin.Context) {
	id, ok := reservationID(c)
	if !ok {
		return
	}
	result, err := h.queue.CheckIn(c.Request.Context(), middleware.GetActor(c), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTransition(result))
}

// @Summary Complete service
// @Description GREEN to COMPLETED, then promotes the provider's next entry.
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.TransitionResponse
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations/{id}/complete [post]
func (h *ReservationHandler) Complete(c *gin.Context) {
	id, ok := reservationID(c)
	if !ok {
		return
	}
	result, err := h.queue.Complete(c.Request.Context(), middleware.GetActor(c), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTransition(result))
}

// @Summary Cancel reservation
// @Description Idempotent; cancelling a terminal booking succeeds without change.
// @Tags reservations
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.TransitionResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id}/cancel [post]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	id, ok := reservationID(c)
	if !ok {
		return
	}
	result, err := h.bookings.Cancel(c.Request.Context(), middleware.GetActor(c), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCancel(result))
}
