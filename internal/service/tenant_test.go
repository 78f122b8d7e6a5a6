package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/voicedesk/booking-api/internal/api/dto"
	"github.com/voicedesk/booking-api/internal/domain"
	"github.com/voicedesk/booking-api/internal/mocks"
	"github.com/voicedesk/booking-api/internal/repository"
)

type TenantServiceTestSuite struct {
	suite.Suite
	mockRepo   *mocks.Repository
	mockTenant *mocks.TenantRepository
	mockHours  *mocks.BusinessHoursRepository
	service    *TenantService
}

func (s *TenantServiceTestSuite) SetupTest() {
	s.mockRepo = new(mocks.Repository)
	s.mockTenant = new(mocks.TenantRepository)
	s.mockHours = new(mocks.BusinessHoursRepository)

	s.mockRepo.On("Tenant").Return(s.mockTenant)
	s.mockRepo.On("BusinessHours").Return(s.mockHours)

	s.service = NewTenantService(s.mockRepo)
}

func TestTenantService(t *testing.T) {
	suite.Run(t, new(TenantServiceTestSuite))
}

func (s *TenantServiceTestSuite) TestCreate_Success() {
	// Arrange
	ctx := context.Background()
	req := dto.CreateTenantRequest{
		CompanyName:         "Springfield Plumbing",
		AgentID:             "agent_7f3c2a",
		AppointmentDuration: 90,
	}

	s.mockTenant.On("Create", ctx, mock.AnythingOfType("*domain.Tenant")).
		Return(func(_ context.Context, t *domain.Tenant) *domain.Tenant {
			created := *t
			created.ID = "a4f0c8e2-1111-4222-8333-944455556666"
			return &created
		}, nil)

	// Act
	resp, err := s.service.Create(ctx, req)

	// Assert
	s.NoError(err)
	s.Equal("Springfield Plumbing", resp.CompanyName)
	s.Equal("agent_7f3c2a", resp.AgentID)
	s.Equal(90, resp.AppointmentDuration)
	s.mockTenant.AssertExpectations(s.T())
}

func (s *TenantServiceTestSuite) TestCreate_DefaultsDuration() {
	// Arrange
	ctx := context.Background()
	var stored *domain.Tenant
	s.mockTenant.On("Create", ctx, mock.AnythingOfType("*domain.Tenant")).
		Run(func(args mock.Arguments) {
			stored = args.Get(1).(*domain.Tenant)
		}).
		Return(func(_ context.Context, t *domain.Tenant) *domain.Tenant { return t }, nil)

	// Act
	_, err := s.service.Create(ctx, dto.CreateTenantRequest{
		CompanyName: "Springfield Plumbing",
		AgentID:     "agent_7f3c2a",
	})

	// Assert
	s.NoError(err)
	s.Require().NotNil(stored)
	s.Equal(domain.DefaultAppointmentDuration, stored.AppointmentDuration)
}

func (s *TenantServiceTestSuite) TestGetByID_NotFound() {
	// Arrange
	ctx := context.Background()
	s.mockTenant.On("GetByID", ctx, "missing").Return(nil, repository.ErrNotFound)

	// Act
	tenant, err := s.service.GetByID(ctx, "missing")

	// Assert
	s.ErrorIs(err, ErrTenantNotFound)
	s.Nil(tenant)
}

func (s *TenantServiceTestSuite) TestResolveAgent_Unknown() {
	// Arrange
	ctx := context.Background()
	s.mockTenant.On("GetByAgentID", ctx, "agent_missing").Return(nil, repository.ErrNotFound)

	// Act
	tenant, err := s.service.ResolveAgent(ctx, "agent_missing")

	// Assert
	s.ErrorIs(err, ErrUnknownAgent)
	s.Nil(tenant)
}

func (s *TenantServiceTestSuite) TestUpdate_PatchesOnlyProvidedFields() {
	// Arrange
	ctx := context.Background()
	existing := &domain.Tenant{
		ID:                  "tenant1",
		CompanyName:         "Springfield Plumbing",
		AgentID:             "agent_7f3c2a",
		AppointmentDuration: 120,
		BufferTime:          0,
	}
	s.mockTenant.On("GetByID", ctx, "tenant1").Return(existing, nil)
	s.mockTenant.On("Update", ctx, mock.AnythingOfType("*domain.Tenant")).Return(nil)

	buffer := 30

	// Act
	resp, err := s.service.Update(ctx, "tenant1", dto.UpdateTenantRequest{BufferTime: &buffer})

	// Assert
	s.NoError(err)
	s.Equal(30, resp.BufferTime)
	s.Equal("Springfield Plumbing", resp.CompanyName)
	s.Equal(120, resp.AppointmentDuration)
	s.mockTenant.AssertExpectations(s.T())
}

func (s *TenantServiceTestSuite) TestSetHours_Success() {
	// Arrange
	ctx := context.Background()
	s.mockTenant.On("GetByID", ctx, "tenant1").Return(&domain.Tenant{ID: "tenant1"}, nil)
	s.mockHours.On("Upsert", ctx, mock.AnythingOfType("*domain.BusinessHours")).Return(nil).Times(2)

	req := dto.SetBusinessHoursRequest{Days: []dto.BusinessHoursDay{
		{DayOfWeek: 1, IsOpen: true, OpenTime: "09:00", CloseTime: "17:00"},
		{DayOfWeek: 0, IsOpen: false},
	}}

	// Act
	err := s.service.SetHours(ctx, "tenant1", req)

	// Assert
	s.NoError(err)
	s.mockHours.AssertExpectations(s.T())
}

func (s *TenantServiceTestSuite) TestSetHours_RejectsInvertedHours() {
	// Arrange
	ctx := context.Background()
	s.mockTenant.On("GetByID", ctx, "tenant1").Return(&domain.Tenant{ID: "tenant1"}, nil)

	req := dto.SetBusinessHoursRequest{Days: []dto.BusinessHoursDay{
		{DayOfWeek: 1, IsOpen: true, OpenTime: "17:00", CloseTime: "09:00"},
	}}

	// Act
	err := s.service.SetHours(ctx, "tenant1", req)

	// Assert
	s.ErrorIs(err, ErrInvalidHours)
	s.mockHours.AssertNotCalled(s.T(), "Upsert", mock.Anything, mock.Anything)
}

func (s *TenantServiceTestSuite) TestSetHours_RejectsBadWeekday() {
	// Arrange
	ctx := context.Background()
	s.mockTenant.On("GetByID", ctx, "tenant1").Return(&domain.Tenant{ID: "tenant1"}, nil)

	req := dto.SetBusinessHoursRequest{Days: []dto.BusinessHoursDay{
		{DayOfWeek: 7, IsOpen: true, OpenTime: "09:00", CloseTime: "17:00"},
	}}

	// Act
	err := s.service.SetHours(ctx, "tenant1", req)

	// Assert
	s.ErrorIs(err, ErrInvalidDayOfWeek)
}
