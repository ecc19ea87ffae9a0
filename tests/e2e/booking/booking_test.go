//go:build e2e

package booking_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	stdhttptest "net/http/httptest"
	"sync"
	"testing"
	"time"

	"renobooking/internal/domain/user"
	"renobooking/internal/handler/dto/response"
	"renobooking/tests/common/authtest"
	"renobooking/tests/common/builder"
	"renobooking/tests/common/dbtest"
	"renobooking/tests/common/httptest"
	"renobooking/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	bookingsURL        = "/api/bookings"
	availabilityDayURL = "/api/availability/%s"
	adminBookingsURL   = "/api/admin/bookings"
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

// nextBookableDate returns the first date after today the seeded template
// keeps open (Sunday is inactive in the seed).
func nextBookableDate(loc *time.Location) string {
	d := time.Now().In(loc).AddDate(0, 0, 1)
	for d.Weekday() == time.Sunday {
		d = d.AddDate(0, 0, 1)
	}
	return d.Format("2006-01-02")
}

func (s *BookingSuite) scheduleLocation() *time.Location {
	loc, err := time.LoadLocation(s.Config.Schedule.TimeZone)
	require.NoError(s.T(), err)
	return loc
}

// =============================================================================
// TestBookingFlow - Public booking API tests
// =============================================================================

func (s *BookingSuite) TestBookingFlow() {
	s.Run("Normal case: booked slot disappears from availability", func() {
		t := s.T()
		date := nextBookableDate(s.scheduleLocation())

		reqBody := builder.NewBookingBuilder().
			With(func(b *builder.BookingBuilder) {
				b.Date = date
				b.Time = "10:00"
			}).
			BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.BookingResponse
		err := httptest.DecodeResponseBody(t, w.Body, &created)
		require.NoError(t, err)
		require.NotEmpty(t, created.ID)
		require.Equal(t, date, created.Date)
		require.Equal(t, "10:00", created.Time)
		require.Equal(t, "Jan Peeters", created.Name)

		dw := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(availabilityDayURL, date), nil, "")
		require.Equal(t, http.StatusOK, dw.Code, dw.Body.String())

		var day response.DayAvailabilityResponse
		err = httptest.DecodeResponseBody(t, dw.Body, &day)
		require.NoError(t, err)
		require.Equal(t, "open", day.Status)
		require.Contains(t, day.BookedTimes, "10:00")
		require.NotContains(t, day.AvailableTimes, "10:00")
		require.Contains(t, day.AvailableTimes, "11:00")
	})

	s.Run("Normal case: booking without a note is accepted", func() {
		t := s.T()
		date := nextBookableDate(s.scheduleLocation())

		reqBody := builder.NewBookingBuilder().
			With(func(b *builder.BookingBuilder) {
				b.Date = date
				b.Time = "11:00"
			}).
			BuildCreateRequestDTO()
		reqBody.Note = nil

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		require.Empty(t, created.Note)

		var count int
		require.NoError(t, s.DB.QueryRow(t.Context(),
			"SELECT COUNT(*) FROM bookings WHERE booking_date = $1 AND booking_time = '11:00' AND note IS NULL",
			date).Scan(&count))
		require.Equal(t, 1, count)
	})

	s.Run("Error case: booking the same slot twice returns conflict", func() {
		t := s.T()
		date := nextBookableDate(s.scheduleLocation())

		reqBody := builder.NewBookingBuilder().
			With(func(b *builder.BookingBuilder) {
				b.Date = date
				b.Time = "14:00"
			}).
			BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		// Different contact, same slot
		reqBody.Name = "An Willems"
		reqBody.Email = "an.willems@example.com"
		dup := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, "")
		require.Equal(t, http.StatusConflict, dup.Code, dup.Body.String())
	})

	s.Run("Error case: booking a day closed by override is rejected", func() {
		t := s.T()
		date := nextBookableDate(s.scheduleLocation())

		dbtest.CreateClosedOverride(t, s.DB, date, "Team building")

		dw := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(availabilityDayURL, date), nil, "")
		require.Equal(t, http.StatusOK, dw.Code)
		var day response.DayAvailabilityResponse
		require.NoError(t, httptest.DecodeResponseBody(t, dw.Body, &day))
		require.Equal(t, "closed", day.Status)
		require.Empty(t, day.AvailableTimes)

		reqBody := builder.NewBookingBuilder().
			With(func(b *builder.BookingBuilder) { b.Date = date }).
			BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, "")
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})

	s.Run("Error case: past date is rejected with 422", func() {
		t := s.T()

		reqBody := builder.NewBookingBuilder().
			With(func(b *builder.BookingBuilder) { b.Date = "2020-01-06" }).
			BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, "")
		require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
	})
}

// =============================================================================
// TestAdminBookingAccess - Admin booking listing tests
// =============================================================================

func (s *BookingSuite) TestAdminBookingAccess() {
	s.Run("Normal case: admin sees the booking in range listing and detail", func() {
		t := s.T()
		date := nextBookableDate(s.scheduleLocation())

		reqBody := builder.NewBookingBuilder().
			With(func(b *builder.BookingBuilder) {
				b.Date = date
				b.Time = "09:00"
			}).
			BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var created response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		token := authtest.CreateAndLogin(t, s.DB, s.Router, "staff@example.com", string(user.RoleStaff))

		listURL := fmt.Sprintf("%s?from=%s&to=%s", adminBookingsURL, date, date)
		lw := httptest.PerformRequest(t, s.Router, http.MethodGet, listURL, nil, token)
		require.Equal(t, http.StatusOK, lw.Code, lw.Body.String())

		var listed []response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, lw.Body, &listed))
		require.Len(t, listed, 1)
		require.Equal(t, created.ID, listed[0].ID)
		require.Equal(t, "09:00", listed[0].Time)

		gw := httptest.PerformRequest(t, s.Router, http.MethodGet, adminBookingsURL+"/"+created.ID.String(), nil, token)
		require.Equal(t, http.StatusOK, gw.Code, gw.Body.String())
	})

	s.Run("Error case: listing requires authentication", func() {
		t := s.T()
		date := nextBookableDate(s.scheduleLocation())

		listURL := fmt.Sprintf("%s?from=%s&to=%s", adminBookingsURL, date, date)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, listURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})
}

// =============================================================================
// TestConcurrentBooking - Double booking race test
// =============================================================================

func (s *BookingSuite) TestConcurrentBooking() {
	s.Run("Normal case: one slot yields exactly one booking under contention", func() {
		t := s.T()
		date := nextBookableDate(s.scheduleLocation())

		const workers = 8
		codes := make(chan int, workers)

		var start sync.WaitGroup
		start.Add(1)
		var done sync.WaitGroup
		done.Add(workers)

		for i := range workers {
			go func(n int) {
				defer done.Done()

				reqBody := builder.NewBookingBuilder().
					With(func(b *builder.BookingBuilder) {
						b.Date = date
						b.Time = "15:00"
						b.Email = fmt.Sprintf("caller%d@example.com", n)
					}).
					BuildCreateRequestDTO()
				payload, err := json.Marshal(reqBody)
				if err != nil {
					codes <- -1
					return
				}

				start.Wait()

				req := stdhttptest.NewRequest(http.MethodPost, bookingsURL, bytes.NewReader(payload))
				req.Header.Set("Content-Type", "application/json")
				rec := stdhttptest.NewRecorder()
				s.Router.ServeHTTP(rec, req)
				codes <- rec.Code
			}(i)
		}

		start.Done()
		done.Wait()
		close(codes)

		var createdCount, conflictCount int
		for code := range codes {
			switch code {
			case http.StatusCreated:
				createdCount++
			case http.StatusConflict:
				conflictCount++
			default:
				t.Errorf("unexpected status code %d", code)
			}
		}
		require.Equal(t, 1, createdCount, "exactly one request may win the slot")
		require.Equal(t, workers-1, conflictCount)

		var stored int
		err := s.DB.QueryRow(t.Context(),
			"SELECT COUNT(*) FROM bookings WHERE booking_date = $1 AND booking_time = '15:00'", date).Scan(&stored)
		require.NoError(t, err)
		require.Equal(t, 1, stored)
	})
}
