//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"salon-queue/internal/domain/actor"
	"salon-queue/internal/domain/reservation"
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

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockBookings *commandsmock.MockBookingCommands
	mockQueue    *commandsmock.MockQueueCommands
	mockQueries  *queriesmock.MockReservationQueries
	staff        actor.Actor
	locationID   uuid.UUID
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	s.router = newTestRouter()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockBookings = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueue = commandsmock.NewMockQueueCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.locationID = uuid.New()
	s.staff = actor.Actor{ID: uuid.New(), Role: actor.RoleStaff, LocationID: s.locationID}

	h := api.NewReservationHandler(s.mockBookings, s.mockQueue, s.mockQueries)
	s.router.GET("/reservations/:id", optionalFakeAuth(s.staff), h.Get)
	s.router.POST("/reservations/:id/checkin", optionalFakeAuth(s.staff), h.CheckIn)
	s.router.POST("/reservations/:id/complete", fakeAuth(s.staff), h.Complete)
	s.router.POST("/reservations/:id/cancel", optionalFakeAuth(s.staff), h.Cancel)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

// ================================================================================
// TestGet
// ================================================================================

func (s *ReservationHandlerTestSuite) TestGet() {
	view := builder.NewReservationBuilder(s.locationID).BuildView()
	url := "/reservations/" + view.ID.String()

	s.Run("success: returns the reservation view", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), actor.Anonymous(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var body queries.ReservationView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID, body.ID)
		s.Equal("RED", body.Status)
		s.Equal("UNASSIGNED", body.AssignmentStatus)
		s.Equal("Jamie Doe", body.CustomerName)
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/nope", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid reservation ID format")
	})

	s.Run("error: 404 when missing", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), view.ID).
			Return(nil, errs.ErrReservationNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "reservation not found")
	})
}

// ================================================================================
// TestCheckIn
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCheckIn() {
	id := uuid.New()
	url := "/reservations/" + id.String() + "/checkin"

	s.Run("success: promoted immediately", func() {
		s.mockQueue.EXPECT().CheckIn(gomock.Any(), gomock.Any(), id).
			Return(&commands.TransitionResult{ReservationID: id, Status: reservation.StatusGreen, Promoted: &id}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		var body resdto.TransitionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("GREEN", body.Status)
		s.Require().NotNil(body.Promoted)
		s.Equal(id, *body.Promoted)
		s.Nil(body.Changed)
	})

	s.Run("success: waits as ORANGE", func() {
		s.mockQueue.EXPECT().CheckIn(gomock.Any(), gomock.Any(), id).
			Return(&commands.TransitionResult{ReservationID: id, Status: reservation.StatusOrange}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		var body resdto.TransitionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("ORANGE", body.Status)
		s.Nil(body.Promoted)
	})

	cases := []struct {
		name       string
		err        error
		expectCode int
	}{
		{name: "expired", err: errs.ErrExpiredBooking, expectCode: http.StatusGone},
		{name: "already checked in", err: errs.ErrAlreadyCheckedIn, expectCode: http.StatusConflict},
		{name: "too early", err: errs.ErrCheckInTooEarly, expectCode: http.StatusConflict},
		{name: "someone else's booking", err: errs.ErrForbidden, expectCode: http.StatusForbidden},
	}
	for _, tc := range cases {
		s.Run("error: "+tc.name, func() {
			s.mockQueue.EXPECT().CheckIn(gomock.Any(), gomock.Any(), id).Return(nil, tc.err).Times(1)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
		})
	}
}

// ================================================================================
// TestComplete
// ================================================================================

func (s *ReservationHandlerTestSuite) TestComplete() {
	id := uuid.New()
	next := uuid.New()
	url := "/reservations/" + id.String() + "/complete"

	s.Run("success: completes and reports the next booking", func() {
		s.mockQueue.EXPECT().Complete(gomock.Any(), s.staff, id).
			Return(&commands.TransitionResult{ReservationID: id, Status: reservation.StatusCompleted, Promoted: &next}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var body resdto.TransitionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("COMPLETED", body.Status)
		s.Require().NotNil(body.Promoted)
		s.Equal(next, *body.Promoted)
	})

	s.Run("error: 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 409 when not serving", func() {
		s.mockQueue.EXPECT().Complete(gomock.Any(), gomock.Any(), id).Return(nil, errs.ErrNotServing).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "not being served")
	})

	s.Run("error: 500 on invariant violation", func() {
		s.mockQueue.EXPECT().Complete(gomock.Any(), gomock.Any(), id).
			Return(nil, errs.Wrap(errs.ErrProviderOccupied, "second GREEN")).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "already serving")
	})
}

// ================================================================================
// TestCancel
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCancel() {
	id := uuid.New()
	url := "/reservations/" + id.String() + "/cancel"

	s.Run("success: cancels an active booking", func() {
		s.mockBookings.EXPECT().Cancel(gomock.Any(), gomock.Any(), id).
			Return(&commands.CancelResult{ReservationID: id, Status: reservation.StatusCancelled, Changed: true}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		var body resdto.TransitionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("CANCELLED", body.Status)
		s.Require().NotNil(body.Changed)
		s.True(*body.Changed)
	})

	s.Run("success: terminal booking is left unchanged", func() {
		s.mockBookings.EXPECT().Cancel(gomock.Any(), gomock.Any(), id).
			Return(&commands.CancelResult{ReservationID: id, Status: reservation.StatusCompleted, Changed: false}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		var body resdto.TransitionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("COMPLETED", body.Status)
		s.Require().NotNil(body.Changed)
		s.False(*body.Changed)
	})

	s.Run("error: 404 when missing", func() {
		s.mockBookings.EXPECT().Cancel(gomock.Any(), gomock.Any(), id).Return(nil, errs.ErrReservationNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}
