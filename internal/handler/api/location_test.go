//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"salon-queue/internal/domain/actor"
	"salon-queue/internal/domain/hours"
	"salon-queue/internal/domain/location"
	"salon-queue/internal/handler/api"
	resdto "salon-queue/internal/handler/dto/response"
	"salon-queue/internal/pkg/errs"
	"salon-queue/internal/usecase/commands"
	"salon-queue/internal/usecase/queries"
	"salon-queue/tests/common/builder"
	"salon-queue/tests/common/httptest"
	commandsmock "salon-queue/tests/mock/commands"
	queriesmock "salon-queue/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type LocationHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockCmds    *commandsmock.MockLocationCommands
	mockQueries *queriesmock.MockLocationQueries
	mockQueue   *queriesmock.MockQueueQueries
	owner       actor.Actor
	locationID  uuid.UUID
}

func (s *LocationHandlerTestSuite) SetupTest() {
	s.router = newTestRouter()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCmds = commandsmock.NewMockLocationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockLocationQueries(s.mockCtrl)
	s.mockQueue = queriesmock.NewMockQueueQueries(s.mockCtrl)
	s.locationID = uuid.New()
	s.owner = actor.Actor{ID: uuid.New(), Role: actor.RoleOwner, LocationID: s.locationID}

	h := api.NewLocationHandler(s.mockCmds, s.mockQueries, s.mockQueue)
	s.router.GET("/locations/:id/queue", h.Queue)
	s.router.GET("/locations/:id/status", h.Status)
	s.router.GET("/locations/:id/slots", h.Slots)
	s.router.GET("/locations/:id/providers/eligible", h.EligibleProviders)
	s.router.PUT("/locations/:id/pause", fakeAuth(s.owner), h.Pause)
	s.router.DELETE("/locations/:id/pause", fakeAuth(s.owner), h.Resume)
}

func (s *LocationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestLocationHandlerSuite(t *testing.T) {
	suite.Run(t, new(LocationHandlerTestSuite))
}

func (s *LocationHandlerTestSuite) url(suffix string) string {
	return "/locations/" + s.locationID.String() + suffix
}

// ================================================================================
// TestQueue
// ================================================================================

func (s *LocationHandlerTestSuite) TestQueue() {
	s.Run("success: includes poll hint in milliseconds", func() {
		view := &queries.QueueStateView{
			LocationID:  s.locationID,
			GeneratedAt: builder.BaseTime,
			Location:    queries.LocationStatusView{LocationID: s.locationID, State: "OPEN"},
			Providers:   []queries.ProviderStatusView{{ID: uuid.New(), Name: "Alex", Status: "AVAILABLE"}},
			Waiting:     []queries.WaitingEntryView{},
			Booked:      []queries.BookedEntryView{},
			PollAfter:   3 * time.Second,
		}
		s.mockQueue.EXPECT().QueueState(gomock.Any(), s.locationID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.url("/queue"), nil, "")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.EqualValues(3000, body["poll_after_ms"])
		s.Equal(s.locationID.String(), body["location_id"])
		s.Len(body["providers"], 1)
		s.NotContains(body, "PollAfter")
	})

	s.Run("error: 404 unknown location", func() {
		s.mockQueue.EXPECT().QueueState(gomock.Any(), s.locationID).Return(nil, errs.ErrLocationNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.url("/queue"), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "location not found")
	})

	s.Run("error: 400 malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/locations/xyz/queue", nil, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

// ================================================================================
// TestStatus
// ================================================================================

func (s *LocationHandlerTestSuite) TestStatus() {
	closes := builder.BaseTime.Add(10 * time.Minute)
	view := &queries.LocationStatusView{
		LocationID:       s.locationID,
		State:            "CLOSING",
		ClosesAt:         &closes,
		RemainingSeconds: 600,
	}
	s.mockQueries.EXPECT().Status(gomock.Any(), s.locationID).Return(view, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.url("/status"), nil, "")

	var body queries.LocationStatusView
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Equal("CLOSING", body.State)
	s.Equal(600, body.RemainingSeconds)
	s.False(body.CountdownVisible)
}

// ================================================================================
// TestSlots
// ================================================================================

func (s *LocationHandlerTestSuite) TestSlots() {
	serviceID := uuid.New()
	providerID := uuid.New()

	s.Run("success: parses the query and returns slots", func() {
		slots := []queries.SlotView{
			{Time: "09:00", StartsAt: time.Date(2026, 3, 5, 9, 0, 0, 0, time.UTC), Available: true},
			{Time: "09:30", StartsAt: time.Date(2026, 3, 5, 9, 30, 0, 0, time.UTC), Available: false},
		}
		s.mockQueries.EXPECT().Slots(gomock.Any(), queries.SlotsParams{
			LocationID: s.locationID,
			ServiceID:  serviceID,
			ProviderID: &providerID,
			Date:       hours.Date{Year: 2026, Month: time.March, Day: 5},
		}).Return(slots, nil).Times(1)

		url := s.url("/slots?date=2026-03-05&serviceId=" + serviceID.String() + "&providerId=" + providerID.String())
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var body resdto.SlotsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("2026-03-05", body.Date)
		s.Require().Len(body.Slots, 2)
		s.True(body.Slots[0].Available)
		s.False(body.Slots[1].Available)
	})

	cases := []struct {
		name  string
		query string
	}{
		{name: "missing date", query: "?serviceId=" + serviceID.String()},
		{name: "bad date", query: "?date=2026-13-01&serviceId=" + serviceID.String()},
		{name: "missing service", query: "?date=2026-03-05"},
		{name: "bad provider", query: "?date=2026-03-05&serviceId=" + serviceID.String() + "&providerId=abc"},
	}
	for _, tc := range cases {
		s.Run("error: 400 "+tc.name, func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.url("/slots"+tc.query), nil, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query")
		})
	}
}

// ================================================================================
// TestEligibleProviders
// ================================================================================

func (s *LocationHandlerTestSuite) TestEligibleProviders() {
	serviceID := uuid.New()
	views := []queries.EligibleProviderView{
		{ID: uuid.New(), Name: "Alex", ActiveEntries: 0},
		{ID: uuid.New(), Name: "Sam", ActiveEntries: 2},
	}
	s.mockQueries.EXPECT().EligibleProviders(gomock.Any(), s.locationID, serviceID).Return(views, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.url("/providers/eligible?serviceId="+serviceID.String()), nil, "")

	var body []resdto.EligibleProviderResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Require().Len(body, 2)
	s.Equal(views[0].ID, body[0].ID)
	s.Equal("Sam", body[1].Name)
	s.Equal(2, body[1].ActiveEntries)
}

// ================================================================================
// TestPauseResume
// ================================================================================

func (s *LocationHandlerTestSuite) TestPauseResume() {
	resumeAt := builder.BaseTime.Add(30 * time.Minute)

	s.Run("success: pause returns PAUSED status", func() {
		s.mockCmds.EXPECT().Pause(gomock.Any(), s.owner, s.locationID, gomock.Any()).
			DoAndReturn(func(_ any, _ actor.Actor, _ uuid.UUID, in commands.PauseInput) (*location.Status, error) {
				s.Equal("lunch", in.Reason)
				s.Require().NotNil(in.ResumeAt)
				s.True(resumeAt.Equal(*in.ResumeAt))
				return &location.Status{State: location.StatePaused, Reason: "lunch", ResumeAt: &resumeAt}, nil
			}).Times(1)

		body := map[string]any{"reason": "  lunch ", "resume_at": resumeAt.Format(time.RFC3339)}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, s.url("/pause"), body, "bearer-token")

		var out queries.LocationStatusView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &out)
		s.Equal("PAUSED", out.State)
		s.Equal("lunch", out.Reason)
		s.Require().NotNil(out.ResumeAt)
		s.True(resumeAt.Equal(*out.ResumeAt))
	})

	s.Run("error: 403 for non-owner", func() {
		s.mockCmds.EXPECT().Pause(gomock.Any(), gomock.Any(), s.locationID, gomock.Any()).
			Return(nil, errs.ErrForbidden).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, s.url("/pause"), map[string]any{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "not permitted")
	})

	s.Run("error: 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, s.url("/pause"), map[string]any{}, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("success: resume returns OPEN status", func() {
		s.mockCmds.EXPECT().Resume(gomock.Any(), s.owner, s.locationID).
			Return(&location.Status{State: location.StateOpen}, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, s.url("/pause"), nil, "bearer-token")

		var out queries.LocationStatusView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &out)
		s.Equal("OPEN", out.State)
	})
}
