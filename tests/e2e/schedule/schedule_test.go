//go:build e2e

package schedule_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"renobooking/internal/handler/dto/request"
	"renobooking/internal/handler/dto/response"
	"renobooking/tests/common/authtest"
	"renobooking/tests/common/builder"
	"renobooking/tests/common/httptest"
	"renobooking/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	templateURL        = "/api/admin/schedule/template"
	overridesURL       = "/api/admin/schedule/overrides"
	availabilityDayURL = "/api/availability/%s"
)

type ScheduleAdminSuite struct {
	e2e.SharedSuite
}

func (s *ScheduleAdminSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestScheduleAdminSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ScheduleAdminSuite))
}

func (s *ScheduleAdminSuite) login() string {
	return authtest.LoginUser(s.T(), s.Router, "admin@example.com", "password123")
}

func (s *ScheduleAdminSuite) scheduleLocation() *time.Location {
	loc, err := time.LoadLocation(s.Config.Schedule.TimeZone)
	require.NoError(s.T(), err)
	return loc
}

// nextDateOfWeekday returns the first date after today falling on wd.
func (s *ScheduleAdminSuite) nextDateOfWeekday(wd time.Weekday) string {
	d := time.Now().In(s.scheduleLocation()).AddDate(0, 0, 1)
	for d.Weekday() != wd {
		d = d.AddDate(0, 0, 1)
	}
	return d.Format("2006-01-02")
}

func fullWeekEntries() []request.TemplateEntryRequest {
	entries := make([]request.TemplateEntryRequest, 0, 7)
	for wd := 0; wd < 7; wd++ {
		entries = append(entries, request.TemplateEntryRequest{
			Weekday:  wd,
			IsActive: wd != 0,
			Slots:    builder.DefaultSlotTimes,
		})
	}
	entries[0].Slots = nil
	return entries
}

// =============================================================================
// TestTemplateAdmin - Weekly template API tests
// =============================================================================

func (s *ScheduleAdminSuite) TestTemplateAdmin() {
	s.Run("Normal case: closing a weekday propagates to availability", func() {
		t := s.T()
		token := s.login()

		entries := fullWeekEntries()
		entries[6].IsActive = false
		entries[6].Slots = nil

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, templateURL,
			request.ReplaceTemplateRequest{Entries: entries}, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var tpl response.TemplateResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &tpl))
		require.Len(t, tpl.Entries, 7)
		for _, e := range tpl.Entries {
			if e.Weekday == 6 {
				require.False(t, e.IsActive)
				require.Empty(t, e.Slots)
			}
		}

		saturday := s.nextDateOfWeekday(time.Saturday)
		dw := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(availabilityDayURL, saturday), nil, "")
		require.Equal(t, http.StatusOK, dw.Code)
		var day response.DayAvailabilityResponse
		require.NoError(t, httptest.DecodeResponseBody(t, dw.Body, &day))
		require.Equal(t, "closed", day.Status)
		require.Empty(t, day.AvailableTimes)
	})

	s.Run("Normal case: admin reads the seeded template", func() {
		t := s.T()
		token := s.login()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, templateURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var tpl response.TemplateResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &tpl))
		require.Len(t, tpl.Entries, 7)
	})

	s.Run("Error case: template missing a weekday is rejected", func() {
		t := s.T()
		token := s.login()

		entries := fullWeekEntries()[:6]

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, templateURL,
			request.ReplaceTemplateRequest{Entries: entries}, token)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
	})

	s.Run("Error case: template update requires authentication", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, templateURL,
			request.ReplaceTemplateRequest{Entries: fullWeekEntries()}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})
}

// =============================================================================
// TestOverrideAdmin - Date override API tests
// =============================================================================

func (s *ScheduleAdminSuite) TestOverrideAdmin() {
	s.Run("Normal case: blocked times disappear from availability", func() {
		t := s.T()
		token := s.login()
		date := s.nextDateOfWeekday(time.Wednesday)

		reason := "Crew on another site in the morning"
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, overridesURL,
			request.UpsertOverrideRequest{
				Date:         date,
				IsOpen:       true,
				BlockedTimes: []string{"09:00", "10:00"},
				Reason:       &reason,
			}, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		dw := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(availabilityDayURL, date), nil, "")
		require.Equal(t, http.StatusOK, dw.Code)
		var day response.DayAvailabilityResponse
		require.NoError(t, httptest.DecodeResponseBody(t, dw.Body, &day))
		require.Equal(t, "open", day.Status)
		require.NotContains(t, day.AvailableTimes, "09:00")
		require.NotContains(t, day.AvailableTimes, "10:00")
		require.Contains(t, day.AvailableTimes, "11:00")

		lw := httptest.PerformRequest(t, s.Router, http.MethodGet, overridesURL, nil, token)
		require.Equal(t, http.StatusOK, lw.Code, lw.Body.String())
		var listed []response.OverrideResponse
		require.NoError(t, httptest.DecodeResponseBody(t, lw.Body, &listed))
		require.Len(t, listed, 1)
		require.Equal(t, date, listed[0].Date)
		require.Equal(t, reason, listed[0].Reason)
	})

	s.Run("Normal case: removing an override restores the template day", func() {
		t := s.T()
		token := s.login()
		date := s.nextDateOfWeekday(time.Thursday)

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, overridesURL,
			request.UpsertOverrideRequest{Date: date, IsOpen: false}, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		dw := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(availabilityDayURL, date), nil, "")
		require.Equal(t, http.StatusOK, dw.Code)
		var day response.DayAvailabilityResponse
		require.NoError(t, httptest.DecodeResponseBody(t, dw.Body, &day))
		require.Equal(t, "closed", day.Status)

		del := httptest.PerformRequest(t, s.Router, http.MethodDelete, overridesURL+"/"+date, nil, token)
		require.Equal(t, http.StatusNoContent, del.Code, del.Body.String())

		dw = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(availabilityDayURL, date), nil, "")
		require.Equal(t, http.StatusOK, dw.Code)
		require.NoError(t, httptest.DecodeResponseBody(t, dw.Body, &day))
		require.Equal(t, "open", day.Status)
		require.Contains(t, day.AvailableTimes, "09:00")
	})

	s.Run("Normal case: removing a missing override is a no-op", func() {
		t := s.T()
		token := s.login()
		date := s.nextDateOfWeekday(time.Friday)

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, overridesURL+"/"+date, nil, token)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
	})

	s.Run("Error case: override for a past date is rejected", func() {
		t := s.T()
		token := s.login()

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, overridesURL,
			request.UpsertOverrideRequest{Date: "2020-01-06", IsOpen: false}, token)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
	})
}
