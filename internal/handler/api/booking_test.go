//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"salon-queue/internal/domain/actor"
	"salon-queue/internal/domain/hours"
	"salon-queue/internal/domain/reservation"
	"salon-queue/internal/handler/api"
	resdto "salon-queue/internal/handler/dto/response"
	"salon-queue/internal/pkg/errs"
	"salon-queue/internal/usecase/commands"
	"salon-queue/tests/common/builder"
	"salon-queue/tests/common/httptest"
	"salon-queue/tests/common/testutil"
	commandsmock "salon-queue/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	customer     actor.Actor
	locationID   uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	s.router = newTestRouter()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.customer = actor.Actor{ID: uuid.New(), Role: actor.RoleCustomer}
	s.locationID = uuid.New()

	h := api.NewBookingHandler(s.mockCommands)
	s.router.POST("/bookings/scheduled", optionalFakeAuth(s.customer), h.CreateScheduled)
	s.router.POST("/bookings/walkin", optionalFakeAuth(s.customer), h.CreateWalkin)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

type testCaseBooking struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

func withCustomer(name, phone any) func(m map[string]any) {
	return func(m map[string]any) {
		c := map[string]any{}
		if name != nil {
			c["name"] = name
		}
		if phone != nil {
			c["phone"] = phone
		}
		m["customer"] = c
	}
}

// ================================================================================
// TestCreateWalkin
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreateWalkin() {
	url := "/bookings/walkin"
	rb := builder.NewReservationBuilder(s.locationID)
	reqBody := rb.BuildWalkinRequestDTO()
	exp := builder.BaseTime.Add(5 * time.Minute)
	result := &commands.BookingResult{
		ReservationID: rb.ID,
		Kind:          reservation.KindWalkin,
		Status:        reservation.StatusRed,
		ExpiresAt:     &exp,
	}

	s.Run("success: returns 201 with RED entry and Location header", func() {
		s.mockCommands.EXPECT().CreateWalkin(gomock.Any(), actor.Anonymous(), gomock.Any()).
			DoAndReturn(func(_ any, _ actor.Actor, in commands.CreateWalkinInput) (*commands.BookingResult, error) {
				s.Equal(s.locationID, in.LocationID)
				s.Equal(rb.Service.ServiceID, in.ServiceID)
				s.Nil(in.ProviderID)
				s.Equal("Jamie Doe", in.Customer.Name)
				return result, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(rb.ID, body.ID)
		s.Equal("RED", body.Status)
		s.Equal("WALKIN", body.Kind)
		s.Require().NotNil(body.ExpiresAt)
		s.True(exp.Equal(*body.ExpiresAt))
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/reservations/" + rb.ID.String()})
	})

	s.Run("success: authenticated customer is passed through", func() {
		s.mockCommands.EXPECT().CreateWalkin(gomock.Any(), s.customer, gomock.Any()).
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []testCaseBooking{
			{name: "missing field: location_id", mutate: testutil.Field("location_id", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: service_id", mutate: testutil.Field("service_id", nil), expectCode: http.StatusBadRequest},
			{name: "malformed service_id", mutate: testutil.Field("service_id", "not-a-uuid"), expectCode: http.StatusBadRequest},
			{name: "missing customer name", mutate: withCustomer(nil, "+15550100"), expectCode: http.StatusBadRequest},
			{name: "missing customer phone", mutate: withCustomer("Jamie", nil), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
			})
		}
	})

	s.Run("error: usecase failures map to their status", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
			expectMsg  string
		}{
			{name: "location closed", err: errs.Wrap(errs.ErrLocationClosed, "location is closed"), expectCode: http.StatusLocked, expectMsg: "not accepting walk-ins"},
			{name: "no eligible provider", err: errs.ErrNoEligibleProvider, expectCode: http.StatusLocked, expectMsg: "no provider"},
			{name: "unknown service", err: errs.ErrServiceNotFound, expectCode: http.StatusNotFound, expectMsg: "service not found"},
			{name: "bad phone", err: errs.Wrap(errs.ErrInvalidCustomer, "phone"), expectCode: http.StatusUnprocessableEntity, expectMsg: "customer"},
			{name: "unclassified failure", err: errs.New("boom"), expectCode: http.StatusInternalServerError, expectMsg: "Internal server error"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateWalkin(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, tc.err).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
			})
		}
	})
}

// ================================================================================
// TestCreateScheduled
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreateScheduled() {
	url := "/bookings/scheduled"
	providerID := uuid.New()
	rb := builder.NewReservationBuilder(s.locationID).AssignedTo(providerID)
	reqBody := rb.BuildScheduledRequestDTO()
	slotAt := time.Date(2026, 3, 5, 10, 0, 0, 0, time.UTC)
	result := &commands.BookingResult{
		ReservationID: rb.ID,
		Kind:          reservation.KindScheduled,
		Status:        reservation.StatusNone,
		ProviderID:    &providerID,
		SlotAt:        &slotAt,
	}

	s.Run("success: returns 201 with SCHEDULED status", func() {
		s.mockCommands.EXPECT().CreateScheduled(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, _ actor.Actor, in commands.CreateScheduledInput) (*commands.BookingResult, error) {
				s.Equal(hours.Date{Year: 2026, Month: time.March, Day: 5}, in.Date)
				s.Equal(hours.TimeOfDay(600), in.Slot)
				s.Require().NotNil(in.ProviderID)
				s.Equal(providerID, *in.ProviderID)
				return result, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("SCHEDULED", body.Status)
		s.Equal("SCHEDULED", body.Kind)
		s.Require().NotNil(body.SlotAt)
		s.True(slotAt.Equal(*body.SlotAt))
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/reservations/" + rb.ID.String()})
	})

	s.Run("error: 400 Bad Request on missing date or slot", func() {
		cases := []testCaseBooking{
			{name: "missing date", mutate: testutil.Field("date", nil), expectCode: http.StatusBadRequest},
			{name: "missing slot", mutate: testutil.Field("slot", nil), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
			})
		}
	})

	s.Run("error: 422 Unprocessable Entity on invalid date or slot values", func() {
		cases := []struct {
			name       string
			field      string
			value      string
			expectCode string
		}{
			{name: "slot without leading zero", field: "slot", value: "9:00", expectCode: errs.ErrInvalidTimeOfDay.Code()},
			{name: "slot out of range", field: "slot", value: "25:00", expectCode: errs.ErrInvalidTimeOfDay.Code()},
			{name: "date wrong layout", field: "date", value: "05/03/2026", expectCode: errs.ErrValidation.Code()},
			{name: "date out of range", field: "date", value: "2026-02-30", expectCode: errs.ErrValidation.Code()},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field(tc.field, tc.value))
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "")

				var body struct {
					Error struct {
						Code string `json:"code"`
					} `json:"error"`
				}
				s.Require().NoError(httptest.DecodeResponseBody(s.T(), rec.Body, &body))
				s.Equal(tc.expectCode, body.Error.Code)
			})
		}
	})

	s.Run("error: usecase failures map to their status", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
		}{
			{name: "slot taken", err: errs.Wrap(errs.ErrSlotTaken, "2026-03-05 10:00"), expectCode: http.StatusConflict},
			{name: "same day", err: errs.ErrSameDayScheduling, expectCode: http.StatusUnprocessableEntity},
			{name: "past date", err: errs.ErrPastDate, expectCode: http.StatusUnprocessableEntity},
			{name: "not a slot", err: errs.ErrInvalidSlot, expectCode: http.StatusUnprocessableEntity},
			{name: "provider paused", err: errs.ErrProviderPaused, expectCode: http.StatusLocked},
			{name: "location missing", err: errs.ErrLocationNotFound, expectCode: http.StatusNotFound},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateScheduled(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, tc.err).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")

				var body struct {
					Error struct {
						Code string `json:"code"`
					} `json:"error"`
				}
				s.Require().NoError(httptest.DecodeResponseBody(s.T(), rec.Body, &body))
				d, ok := errs.Classify(tc.err)
				s.Require().True(ok)
				s.Equal(d.Code(), body.Error.Code)
			})
		}
	})
}
