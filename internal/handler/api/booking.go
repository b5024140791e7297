package api

import (
	"net/http"

	reqdto "salon-queue/internal/handler/dto/request"
	resdto "salon-queue/internal/handler/dto/response"
	"salon-queue/internal/handler/httperr"
	"salon-queue/internal/handler/middleware"
	"salon-queue/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	cmds commands.BookingCommands
}

func NewBookingHandler(cmds commands.BookingCommands) *BookingHandler {
	return &BookingHandler{cmds: cmds}
}

// @Summary Create scheduled booking
// @Description Book a future slot. Same-day demand must use the walk-in queue.
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateScheduledRequest true "Scheduled booking"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /bookings/scheduled [post]
func (h *BookingHandler) CreateScheduled(c *gin.Context) {
	var req reqdto.CreateScheduledRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	result, err := h.cmds.CreateScheduled(c.Request.Context(), middleware.GetActor(c), in)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Header("Location", "/api/reservations/"+result.ReservationID.String())
	c.JSON(http.StatusCreated, resdto.FromBookingResult(result))
}

// @Summary Join walk-in queue
// @Description Creates a RED entry that must check in within the grace period.
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateWalkinRequest true "Walk-in booking"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 423 {object} httperr.Response
// @Router /bookings/walkin [post]
func (h *BookingHandler) CreateWalkin(c *gin.Context) {
	var req reqdto.CreateWalkinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.CreateWalkin(c.Request.Context(), middleware.GetActor(c), req.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Header("Location", "/api/reservations/"+result.ReservationID.String())
	c.JSON(http.StatusCreated, resdto.FromBookingResult(result))
}
