//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"renobooking/internal/domain/schedule"
	"renobooking/internal/handler/api"
	resdto "renobooking/internal/handler/dto/response"
	"renobooking/internal/usecase"
	"renobooking/tests/common/builder"
	"renobooking/tests/common/httptest"
	usecasemock "renobooking/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AvailabilityHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	mockUC   *usecasemock.MockAvailabilityUseCase
	handler  *api.AvailabilityHandler
}

func (s *AvailabilityHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUC = usecasemock.NewMockAvailabilityUseCase(s.mockCtrl)
	s.handler = api.NewAvailabilityHandler(s.mockUC)

	s.router.GET("/availability", s.handler.GetMonth)
	s.router.GET("/availability/:date", s.handler.GetDay)
}

func (s *AvailabilityHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAvailabilityHandlerSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityHandlerTestSuite))
}

func (s *AvailabilityHandlerTestSuite) TestGetMonth() {
	s.Run("success", func() {
		month := &usecase.MonthAvailability{
			Year:  2026,
			Month: time.September,
			Days: map[string]schedule.DayAvailability{
				"2026-09-15": {
					Date:      builder.MustDate("2026-09-15"),
					Status:    schedule.StatusOpen,
					Available: builder.MustTimes("09:00", "10:00"),
				},
			},
		}

		s.mockUC.EXPECT().ResolveMonth(gomock.Any(), 2026, time.September).Return(month, nil).Times(1)
		s.mockUC.EXPECT().HorizonMonths().Return(3).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability?year=2026&month=9", nil, "")
		s.Equal(http.StatusOK, rec.Code)

		var resp resdto.MonthAvailabilityResponse
		s.Require().NoError(httptest.DecodeResponseBody(s.T(), rec.Body, &resp))
		s.Equal(2026, resp.Year)
		s.Equal(9, resp.Month)
		s.Equal(3, resp.HorizonMonths)
		s.Equal("open", resp.Days["2026-09-15"].Status)
		s.True(resp.Days["2026-09-15"].IsOpen)
		s.Equal([]string{"09:00", "10:00"}, resp.Days["2026-09-15"].AvailableTimes)
	})

	s.Run("horizon violation: returns 422", func() {
		s.mockUC.EXPECT().ResolveMonth(gomock.Any(), 2030, time.January).
			Return(nil, usecase.ErrMonthOutOfRange).Times(1)
		s.mockUC.EXPECT().HorizonMonths().Return(3).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability?year=2030&month=1", nil, "")
		s.Equal(http.StatusUnprocessableEntity, rec.Code)
	})

	s.Run("malformed query: returns 400", func() {
		for _, q := range []string{"", "?year=abc&month=9", "?year=2026&month=13", "?year=2026"} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability"+q, nil, "")
			s.Equal(http.StatusBadRequest, rec.Code, "query %q", q)
		}
	})

	s.Run("configuration error: returns 500", func() {
		s.mockUC.EXPECT().ResolveMonth(gomock.Any(), 2026, time.September).
			Return(nil, usecase.ErrScheduleNotConfigured).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability?year=2026&month=9", nil, "")
		s.Equal(http.StatusInternalServerError, rec.Code)
	})
}

func (s *AvailabilityHandlerTestSuite) TestGetDay() {
	s.Run("success", func() {
		date := builder.MustDate("2026-09-15")
		s.mockUC.EXPECT().ResolveDay(gomock.Any(), date).Return(schedule.DayAvailability{
			Date:      date,
			Status:    schedule.StatusFull,
			Booked:    builder.MustTimes("09:00"),
			Available: nil,
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability/2026-09-15", nil, "")
		s.Equal(http.StatusOK, rec.Code)

		var resp resdto.DayAvailabilityResponse
		s.Require().NoError(httptest.DecodeResponseBody(s.T(), rec.Body, &resp))
		s.Equal("full", resp.Status)
		s.True(resp.IsOpen)
		s.Empty(resp.AvailableTimes)
	})

	s.Run("closed day is reported as not open", func() {
		date := builder.MustDate("2026-09-20")
		s.mockUC.EXPECT().ResolveDay(gomock.Any(), date).Return(schedule.DayAvailability{
			Date:   date,
			Status: schedule.StatusClosed,
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability/2026-09-20", nil, "")
		s.Equal(http.StatusOK, rec.Code)

		var resp resdto.DayAvailabilityResponse
		s.Require().NoError(httptest.DecodeResponseBody(s.T(), rec.Body, &resp))
		s.Equal("closed", resp.Status)
		s.False(resp.IsOpen)
	})

	s.Run("malformed date: returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability/september-15", nil, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}
