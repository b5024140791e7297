package response

import (
	"salon-queue/internal/usecase/commands"
	"salon-queue/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type QueueStateResponse struct {
	*queries.QueueStateView
	PollAfterMs int64 `json:"poll_after_ms"`
}

func FromQueueState(v *queries.QueueStateView) *QueueStateResponse {
	return &QueueStateResponse{QueueStateView: v, PollAfterMs: v.PollAfter.Milliseconds()}
}

type SlotsResponse struct {
	Date  string             `json:"date"`
	Slots []queries.SlotView `json:"slots"`
}

type EligibleProviderResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	ActiveEntries int       `json:"active_entries"`
}

func FromEligibleProviders(views []queries.EligibleProviderView) ([]EligibleProviderResponse, error) {
	out := make([]EligibleProviderResponse, 0, len(views))
	if err := copier.Copy(&out, &views); err != nil {
		return nil, err
	}
	return out, nil
}

type AvailabilityResponse struct {
	ProviderID uuid.UUID  `json:"provider_id"`
	Available  bool       `json:"available"`
	Changed    bool       `json:"changed"`
	Promoted   *uuid.UUID `json:"promoted_reservation_id,omitempty"`
}

func FromAvailability(r *commands.AvailabilityResult) *AvailabilityResponse {
	var out AvailabilityResponse
	_ = copier.Copy(&out, r)
	return &out
}

type PromotionResponse struct {
	ProviderID uuid.UUID  `json:"provider_id"`
	Promoted   *uuid.UUID `json:"promoted_reservation_id"`
}

func FromPromotion(r *commands.PromotionResult) *PromotionResponse {
	return &PromotionResponse{ProviderID: r.ProviderID, Promoted: r.Promoted}
}
