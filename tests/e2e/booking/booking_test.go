//go:build e2e

package booking_test

import (
	"encoding/json"
	"net/http"
	"sync"
	"testing"
	"time"

	"salon-queue/internal/handler/dto/request"
	"salon-queue/internal/handler/dto/response"
	"salon-queue/tests/common/dbtest"
	"salon-queue/tests/common/httptest"
	"salon-queue/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	scheduledURL = "/api/bookings/scheduled"
	walkinURL    = "/api/bookings/walkin"
)

type BookingSuite struct {
	e2e.SharedSuite
}

func (s *BookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

type salon struct {
	locationID uuid.UUID
	serviceID  uuid.UUID
	providers  []uuid.UUID
}

func (s *BookingSuite) seedSalon(providers int) salon {
	t := s.T()
	out := salon{locationID: dbtest.CreateTestLocation(t, s.DB, "Main Street")}
	out.serviceID = dbtest.CreateTestService(t, s.DB, out.locationID, "Haircut", 30*time.Minute)
	for range providers {
		out.providers = append(out.providers, dbtest.CreateTestProvider(t, s.DB, out.locationID, "Alex", out.serviceID))
	}
	return out
}

func tomorrow() string {
	return e2e.Now.AddDate(0, 0, 1).Format(time.DateOnly)
}

func scheduledRequest(sl salon, slot string, providerID *uuid.UUID) request.CreateScheduledRequest {
	return request.CreateScheduledRequest{
		LocationID: sl.locationID,
		ServiceID:  sl.serviceID,
		ProviderID: providerID,
		Date:       tomorrow(),
		Slot:       slot,
		Customer:   request.CustomerRequest{Name: "Jamie Doe", Phone: "+15550100"},
	}
}

func errorCode(t *testing.T, body []byte) string {
	t.Helper()
	var resp struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(body, &resp), string(body))
	return resp.Error.Code
}

// =============================================================================
// Scheduled bookings
// =============================================================================

func (s *BookingSuite) TestCreateScheduled() {
	s.Run("Normal case: booking is stored unpromoted for tomorrow", func() {
		t := s.T()
		sl := s.seedSalon(1)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, scheduledURL, scheduledRequest(sl, "10:00", nil), "")

		var got response.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &got)
		slotAt := time.Date(2030, 6, 6, 10, 0, 0, 0, time.UTC)
		want := response.BookingResponse{Kind: "SCHEDULED", Status: "SCHEDULED", SlotAt: &slotAt}
		if diff := cmp.Diff(want, got,
			cmpopts.IgnoreFields(response.BookingResponse{}, "ID"),
			cmpopts.EquateApproxTime(0),
		); diff != "" {
			t.Errorf("booking response mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, "", dbtest.ReservationStatus(t, s.DB, got.ID))
	})

	s.Run("Error case: same-day scheduling goes through walk-ins", func() {
		t := s.T()
		sl := s.seedSalon(1)
		req := scheduledRequest(sl, "15:00", nil)
		req.Date = e2e.Now.Format(time.DateOnly)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, scheduledURL, req, "")

		require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
		assert.Equal(t, "SAME_DAY_SCHEDULING", errorCode(t, w.Body.Bytes()))
	})

	s.Run("Error case: slot off the grid", func() {
		t := s.T()
		sl := s.seedSalon(1)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, scheduledURL, scheduledRequest(sl, "10:15", nil), "")

		require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
		assert.Equal(t, "INVALID_SLOT", errorCode(t, w.Body.Bytes()))
	})

	s.Run("Slots listing reflects the booking", func() {
		t := s.T()
		sl := s.seedSalon(1)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, scheduledURL, scheduledRequest(sl, "11:00", nil), "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet,
			"/api/locations/"+sl.locationID.String()+"/slots?date="+tomorrow()+"&serviceId="+sl.serviceID.String(), nil, "")

		var got response.SlotsResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		require.Len(t, got.Slots, 18)
		for _, slot := range got.Slots {
			assert.Equal(t, slot.Time != "11:00", slot.Available, slot.Time)
		}
	})
}

// =============================================================================
// Concurrent bookings on one slot
// =============================================================================

func (s *BookingSuite) TestConcurrentScheduled() {
	s.Run("Requested provider: exactly one of many concurrent requests wins", func() {
		t := s.T()
		sl := s.seedSalon(1)
		pid := sl.providers[0]

		codes := s.fire(12, func() request.CreateScheduledRequest { return scheduledRequest(sl, "14:00", &pid) })

		assert.Equal(t, 1, codes[http.StatusCreated])
		assert.Equal(t, 11, codes[http.StatusConflict])
	})

	s.Run("Unassigned demand never exceeds the free providers", func() {
		t := s.T()
		sl := s.seedSalon(2)

		codes := s.fire(10, func() request.CreateScheduledRequest { return scheduledRequest(sl, "14:00", nil) })

		assert.Equal(t, 2, codes[http.StatusCreated])
		assert.Equal(t, 8, codes[http.StatusConflict])

		var stored int
		err := s.DB.QueryRow(t.Context(),
			"SELECT count(*) FROM reservations WHERE location_id = $1 AND kind = 'SCHEDULED'", sl.locationID).Scan(&stored)
		require.NoError(t, err)
		assert.Equal(t, 2, stored)
	})
}

func (s *BookingSuite) fire(n int, build func() request.CreateScheduledRequest) map[int]int {
	t := s.T()
	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		codes = make(map[int]int)
	)
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, scheduledURL, build(), "")
			mu.Lock()
			codes[w.Code]++
			mu.Unlock()
		}()
	}
	wg.Wait()
	return codes
}

// =============================================================================
// Walk-ins
// =============================================================================

func (s *BookingSuite) TestCreateWalkin() {
	s.Run("Normal case: walk-in is RED with a five minute grace", func() {
		t := s.T()
		sl := s.seedSalon(1)
		req := request.CreateWalkinRequest{
			LocationID: sl.locationID,
			ServiceID:  sl.serviceID,
			Customer:   request.CustomerRequest{Name: "Jamie Doe", Phone: "+15550100"},
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, walkinURL, req, "")

		var got response.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &got)
		assert.Equal(t, "WALKIN", got.Kind)
		assert.Equal(t, "RED", got.Status)
		require.NotNil(t, got.ExpiresAt)
		assert.True(t, e2e.Now.Add(5*time.Minute).Equal(*got.ExpiresAt))
		assert.Equal(t, "RED", dbtest.ReservationStatus(t, s.DB, got.ID))
	})

	s.Run("Error case: closed location rejects walk-ins", func() {
		t := s.T()
		sl := s.seedSalon(1)
		s.Clock.Set(time.Date(2030, 6, 5, 19, 0, 0, 0, time.UTC))
		req := request.CreateWalkinRequest{
			LocationID: sl.locationID,
			ServiceID:  sl.serviceID,
			Customer:   request.CustomerRequest{Name: "Jamie Doe", Phone: "+15550100"},
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, walkinURL, req, "")

		require.Equal(t, http.StatusLocked, w.Code, w.Body.String())
		assert.Equal(t, "LOCATION_CLOSED", errorCode(t, w.Body.Bytes()))
	})

	s.Run("Error case: no eligible provider", func() {
		t := s.T()
		sl := s.seedSalon(0)
		req := request.CreateWalkinRequest{
			LocationID: sl.locationID,
			ServiceID:  sl.serviceID,
			Customer:   request.CustomerRequest{Name: "Jamie Doe", Phone: "+15550100"},
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, walkinURL, req, "")

		require.Equal(t, http.StatusLocked, w.Code, w.Body.String())
		assert.Equal(t, "NO_ELIGIBLE_PROVIDER", errorCode(t, w.Body.Bytes()))
	})
}
