package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/voicedesk/booking-api/internal/api/dto"
	"github.com/voicedesk/booking-api/internal/config"
	"github.com/voicedesk/booking-api/internal/domain"
	"github.com/voicedesk/booking-api/internal/mocks"
	"github.com/voicedesk/booking-api/internal/repository"
	"github.com/voicedesk/booking-api/pkg/logger"
)

type AvailabilityServiceTestSuite struct {
	suite.Suite
	mockRepo        *mocks.Repository
	mockTenant      *mocks.TenantRepository
	mockHours       *mocks.BusinessHoursRepository
	mockAppointment *mocks.AppointmentRepository
	service         *AvailabilityService
}

func (s *AvailabilityServiceTestSuite) SetupTest() {
	s.mockRepo = new(mocks.Repository)
	s.mockTenant = new(mocks.TenantRepository)
	s.mockHours = new(mocks.BusinessHoursRepository)
	s.mockAppointment = new(mocks.AppointmentRepository)

	s.mockRepo.On("Tenant").Return(s.mockTenant)
	s.mockRepo.On("BusinessHours").Return(s.mockHours)
	s.mockRepo.On("Appointment").Return(s.mockAppointment)

	cfg := &config.Config{AvailabilityWindowMins: 120, SlotStepMins: 30}
	tenants := NewTenantService(s.mockRepo)
	calendar := NewCalendarService(s.mockRepo)
	s.service = NewAvailabilityService(s.mockRepo, tenants, calendar, cfg, logger.NewNop())
}

func TestAvailabilityService(t *testing.T) {
	suite.Run(t, new(AvailabilityServiceTestSuite))
}

func (s *AvailabilityServiceTestSuite) tenant() *domain.Tenant {
	return &domain.Tenant{
		ID:                  "a4f0c8e2-1111-4222-8333-944455556666",
		CompanyName:         "Springfield Plumbing",
		AgentID:             "agent_7f3c2a",
		AppointmentDuration: 120,
	}
}

// Monday, open 09:00-17:00.
func (s *AvailabilityServiceTestSuite) mondayHours() *domain.BusinessHours {
	return &domain.BusinessHours{
		TenantID:  s.tenant().ID,
		DayOfWeek: 1,
		IsOpen:    true,
		OpenTime:  "09:00:00",
		CloseTime: "17:00:00",
	}
}

func (s *AvailabilityServiceTestSuite) TestCheck_UnknownAgent() {
	// Arrange
	ctx := context.Background()
	s.mockTenant.On("GetByAgentID", ctx, "agent_missing").Return(nil, repository.ErrNotFound)

	// Act
	resp, err := s.service.Check(ctx, dto.CheckAvailabilityRequest{
		AgentID: "agent_missing",
		Date:    "2026-03-02",
		Time:    "10:00 AM",
	})

	// Assert
	s.ErrorIs(err, ErrUnknownAgent)
	s.Nil(resp)
	s.mockTenant.AssertExpectations(s.T())
}

func (s *AvailabilityServiceTestSuite) TestCheck_UnparseableTime() {
	// Arrange
	ctx := context.Background()
	s.mockTenant.On("GetByAgentID", ctx, "agent_7f3c2a").Return(s.tenant(), nil)

	// Act
	resp, err := s.service.Check(ctx, dto.CheckAvailabilityRequest{
		AgentID: "agent_7f3c2a",
		Date:    "2026-03-02",
		Time:    "sometime in the morning",
	})

	// Assert
	s.ErrorIs(err, ErrUnparseableTime)
	s.Nil(resp)
}

func (s *AvailabilityServiceTestSuite) TestCheck_ClosedDay() {
	// Arrange
	ctx := context.Background()
	s.mockTenant.On("GetByAgentID", ctx, "agent_7f3c2a").Return(s.tenant(), nil)
	// 2026-03-01 is a Sunday; no hours row means closed.
	s.mockHours.On("GetForDay", ctx, s.tenant().ID, 0).Return(nil, repository.ErrNotFound)

	// Act
	resp, err := s.service.Check(ctx, dto.CheckAvailabilityRequest{
		AgentID: "agent_7f3c2a",
		Date:    "2026-03-01",
		Time:    "10:00 AM",
	})

	// Assert
	s.NoError(err)
	s.False(resp.Available)
	s.Equal("closed", resp.Reason)
	s.Equal("We're not available on Sundays. Would you like to try a different day?", resp.Message)
	s.mockHours.AssertExpectations(s.T())
}

func (s *AvailabilityServiceTestSuite) TestCheck_OutsideHours() {
	// Arrange
	ctx := context.Background()
	s.mockTenant.On("GetByAgentID", ctx, "agent_7f3c2a").Return(s.tenant(), nil)
	s.mockHours.On("GetForDay", ctx, s.tenant().ID, 1).Return(s.mondayHours(), nil)

	// Act
	resp, err := s.service.Check(ctx, dto.CheckAvailabilityRequest{
		AgentID: "agent_7f3c2a",
		Date:    "2026-03-02",
		Time:    "8:00 AM",
	})

	// Assert
	s.NoError(err)
	s.False(resp.Available)
	s.Equal("outside_hours", resp.Reason)
	s.Contains(resp.Message, "9:00 AM")
	s.Contains(resp.Message, "5:00 PM")
}

func (s *AvailabilityServiceTestSuite) TestCheck_Available() {
	// Arrange
	ctx := context.Background()
	s.mockTenant.On("GetByAgentID", ctx, "agent_7f3c2a").Return(s.tenant(), nil)
	s.mockHours.On("GetForDay", ctx, s.tenant().ID, 1).Return(s.mondayHours(), nil)
	// Booked 09:00 is 300 minutes away from the proposed 2 PM, outside the window.
	s.mockAppointment.On("ListConfirmedForDate", ctx, s.tenant().ID, "2026-03-02").Return([]domain.Appointment{
		{StartTime: "09:00:00", EndTime: "11:00:00"},
	}, nil)

	// Act
	resp, err := s.service.Check(ctx, dto.CheckAvailabilityRequest{
		AgentID: "agent_7f3c2a",
		Date:    "2026-03-02",
		Time:    "2 PM",
	})

	// Assert
	s.NoError(err)
	s.True(resp.Available)
	s.Equal("2:00 PM", resp.ProposedTime)
	s.Equal([]string{"9:00 AM"}, resp.BookedTimes)
	s.Nil(resp.NextOpen)
	s.mockAppointment.AssertExpectations(s.T())
}

func (s *AvailabilityServiceTestSuite) TestCheck_ConflictSuggestsNextOpen() {
	// Arrange
	ctx := context.Background()
	s.mockTenant.On("GetByAgentID", ctx, "agent_7f3c2a").Return(s.tenant(), nil)
	s.mockHours.On("GetForDay", ctx, s.tenant().ID, 1).Return(s.mondayHours(), nil)
	s.mockAppointment.On("ListConfirmedForDate", ctx, s.tenant().ID, "2026-03-02").Return([]domain.Appointment{
		{StartTime: "10:00:00", EndTime: "12:00:00"},
	}, nil)

	// Act
	resp, err := s.service.Check(ctx, dto.CheckAvailabilityRequest{
		AgentID: "agent_7f3c2a",
		Date:    "2026-03-02",
		Time:    "11:00 AM",
	})

	// Assert
	s.NoError(err)
	s.False(resp.Available)
	s.Equal([]string{"10:00 AM"}, resp.BookedTimes)
	// 10:00 conflict plus the 120-minute window puts the next slot at noon.
	s.NotNil(resp.NextOpen)
	s.Equal("12:00 PM", *resp.NextOpen)
}

func (s *AvailabilityServiceTestSuite) TestCheck_ConflictNoSlotLeft() {
	// Arrange
	ctx := context.Background()
	s.mockTenant.On("GetByAgentID", ctx, "agent_7f3c2a").Return(s.tenant(), nil)
	s.mockHours.On("GetForDay", ctx, s.tenant().ID, 1).Return(s.mondayHours(), nil)
	// Booked 16:00; the scan would resume at 18:00, past close, so no suggestion.
	s.mockAppointment.On("ListConfirmedForDate", ctx, s.tenant().ID, "2026-03-02").Return([]domain.Appointment{
		{StartTime: "16:00:00", EndTime: "18:00:00"},
	}, nil)

	// Act
	resp, err := s.service.Check(ctx, dto.CheckAvailabilityRequest{
		AgentID: "agent_7f3c2a",
		Date:    "2026-03-02",
		Time:    "4:30 PM",
	})

	// Assert
	s.NoError(err)
	s.False(resp.Available)
	s.Nil(resp.NextOpen)
}

func (s *AvailabilityServiceTestSuite) TestCheck_StoreError() {
	// Arrange
	ctx := context.Background()
	s.mockTenant.On("GetByAgentID", ctx, "agent_7f3c2a").Return(s.tenant(), nil)
	s.mockHours.On("GetForDay", ctx, s.tenant().ID, 1).Return(s.mondayHours(), nil)
	s.mockAppointment.On("ListConfirmedForDate", ctx, s.tenant().ID, "2026-03-02").Return(nil, errors.New("connection refused"))

	// Act
	resp, err := s.service.Check(ctx, dto.CheckAvailabilityRequest{
		AgentID: "agent_7f3c2a",
		Date:    "2026-03-02",
		Time:    "10:00 AM",
	})

	// Assert
	s.Error(err)
	s.Nil(resp)
}
