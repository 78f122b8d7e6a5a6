package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/voicedesk/booking-api/internal/domain"
	"github.com/voicedesk/booking-api/internal/mocks"
	"github.com/voicedesk/booking-api/internal/repository"
)

type CalendarServiceTestSuite struct {
	suite.Suite
	mockRepo  *mocks.Repository
	mockHours *mocks.BusinessHoursRepository
	service   *CalendarService
}

func (s *CalendarServiceTestSuite) SetupTest() {
	s.mockRepo = new(mocks.Repository)
	s.mockHours = new(mocks.BusinessHoursRepository)
	s.mockRepo.On("BusinessHours").Return(s.mockHours)
	s.service = NewCalendarService(s.mockRepo)
}

func TestCalendarService(t *testing.T) {
	suite.Run(t, new(CalendarServiceTestSuite))
}

func (s *CalendarServiceTestSuite) TestHoursForDate_OpenDay() {
	// Arrange
	ctx := context.Background()
	// 2026-03-02 is a Monday.
	s.mockHours.On("GetForDay", ctx, "tenant1", 1).Return(&domain.BusinessHours{
		TenantID:  "tenant1",
		DayOfWeek: 1,
		IsOpen:    true,
		OpenTime:  "09:00:00",
		CloseTime: "17:30:00",
	}, nil)

	// Act
	hours, err := s.service.HoursForDate(ctx, "tenant1", "2026-03-02")

	// Assert
	s.NoError(err)
	s.True(hours.IsOpen)
	s.Equal(540, hours.OpenMinutes)
	s.Equal(1050, hours.CloseMinutes)
	s.Equal("Monday", hours.DayName)
}

func (s *CalendarServiceTestSuite) TestHoursForDate_MissingRowMeansClosed() {
	// Arrange
	ctx := context.Background()
	s.mockHours.On("GetForDay", ctx, "tenant1", 6).Return(nil, repository.ErrNotFound)

	// Act: 2026-03-07 is a Saturday.
	hours, err := s.service.HoursForDate(ctx, "tenant1", "2026-03-07")

	// Assert
	s.NoError(err)
	s.False(hours.IsOpen)
	s.Equal("Saturday", hours.DayName)
}

func (s *CalendarServiceTestSuite) TestHoursForDate_ClosedFlag() {
	// Arrange
	ctx := context.Background()
	s.mockHours.On("GetForDay", ctx, "tenant1", 0).Return(&domain.BusinessHours{
		TenantID:  "tenant1",
		DayOfWeek: 0,
		IsOpen:    false,
	}, nil)

	// Act
	hours, err := s.service.HoursForDate(ctx, "tenant1", "2026-03-01")

	// Assert
	s.NoError(err)
	s.False(hours.IsOpen)
	s.Equal("Sunday", hours.DayName)
}

func (s *CalendarServiceTestSuite) TestHoursForDate_BadDate() {
	// Act
	hours, err := s.service.HoursForDate(context.Background(), "tenant1", "March 2nd")

	// Assert
	s.ErrorIs(err, ErrInvalidDate)
	s.Nil(hours)
}

func (s *CalendarServiceTestSuite) TestHoursForDate_StoreError() {
	// Arrange
	ctx := context.Background()
	s.mockHours.On("GetForDay", ctx, "tenant1", 1).Return(nil, errors.New("connection refused"))

	// Act
	hours, err := s.service.HoursForDate(ctx, "tenant1", "2026-03-02")

	// Assert
	s.Error(err)
	s.Nil(hours)
}
