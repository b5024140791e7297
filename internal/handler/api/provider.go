package api

import (
	"net/http"

	reqdto "salon-queue/internal/handler/dto/request"
	resdto "salon-queue/internal/handler/dto/response"
	"salon-queue/internal/handler/httperr"
	"salon-queue/internal/handler/middleware"
	"salon-queue/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProviderHandler struct {
	providers commands.ProviderCommands
	queue     commands.QueueCommands
}

func NewProviderHandler(providers commands.ProviderCommands, queue commands.QueueCommands) *ProviderHandler {
	return &ProviderHandler{providers: providers, queue: queue}
}

// @Summary Set provider availability
// @Description Re-enabling promotes the provider's next waiting entry.
// @Tags providers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Provider ID"
// @Param request body reqdto.SetAvailabilityRequest true "Availability"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /providers/{id}/availability [put]
func (h *ProviderHandler) SetAvailability(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid provider ID format", nil)
		return
	}
	var req reqdto.SetAvailabilityRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	result, err := h.providers.SetAvailability(c.Request.Context(), middleware.GetActor(c), id, *req.Available)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailability(result))
}

// @Summary Promote next
// @Description ORANGE to GREEN for the provider's earliest eligible entry.
// @Tags providers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Provider ID"
// @Success 200 {object} resdto.PromotionResponse
// @Failure 403 {object} httperr.Response
// @Failure 423 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /providers/{id}/promote [post]
func (h *ProviderHandler) PromoteNext(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid provider ID format", nil)
		return
	}
	result, err := h.queue.PromoteNext(c.Request.Context(), middleware.GetActor(c), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPromotion(result))
}
