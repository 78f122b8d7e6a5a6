package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/voicedesk/booking-api/internal/api/dto"
	"github.com/voicedesk/booking-api/internal/domain"
	"github.com/voicedesk/booking-api/internal/service"
)

type TenantHandlerTestSuite struct {
	suite.Suite
	mockService *MockTenantService
	handler     *TenantHandler
}

type MockTenantService struct {
	mock.Mock
}

func (m *MockTenantService) Create(ctx context.Context, req dto.CreateTenantRequest) (dto.TenantResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(dto.TenantResponse), args.Error(1)
}

func (m *MockTenantService) GetByID(ctx context.Context, id string) (*domain.Tenant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}

func (m *MockTenantService) Update(ctx context.Context, id string, req dto.UpdateTenantRequest) (dto.TenantResponse, error) {
	args := m.Called(ctx, id, req)
	return args.Get(0).(dto.TenantResponse), args.Error(1)
}

func (m *MockTenantService) List(ctx context.Context) ([]dto.TenantResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.TenantResponse), args.Error(1)
}

func (m *MockTenantService) SetHours(ctx context.Context, tenantID string, req dto.SetBusinessHoursRequest) error {
	args := m.Called(ctx, tenantID, req)
	return args.Error(0)
}

func (m *MockTenantService) GetHours(ctx context.Context, tenantID string) ([]dto.BusinessHoursResponse, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.BusinessHoursResponse), args.Error(1)
}

func (s *TenantHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockService = new(MockTenantService)
	s.handler = NewTenantHandler(s.mockService)
}

func TestTenantHandler(t *testing.T) {
	suite.Run(t, new(TenantHandlerTestSuite))
}

func (s *TenantHandlerTestSuite) TestCreateTenant_Success() {
	// Arrange
	req := dto.CreateTenantRequest{
		CompanyName: "Springfield Plumbing",
		AgentID:     "agent_7f3c2a",
	}
	expected := dto.TenantResponse{
		ID:          "tenant1",
		CompanyName: req.CompanyName,
		AgentID:     req.AgentID,
	}
	s.mockService.On("Create", mock.Anything, req).Return(expected, nil)

	body, _ := json.Marshal(req)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/tenants", bytes.NewBuffer(body))
	c.Request.Header.Set("Content-Type", "application/json")

	// Act
	s.handler.CreateTenant(c)

	// Assert
	s.Equal(http.StatusCreated, w.Code)
	var resp dto.TenantResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal(expected.ID, resp.ID)
	s.Equal(expected.AgentID, resp.AgentID)
	s.mockService.AssertExpectations(s.T())
}

func (s *TenantHandlerTestSuite) TestCreateTenant_MissingFields() {
	// Arrange: company_name and agent_id are required by binding.
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/tenants", bytes.NewBufferString(`{"timezone":"America/Chicago"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	// Act
	s.handler.CreateTenant(c)

	// Assert
	s.Equal(http.StatusBadRequest, w.Code)
	s.mockService.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *TenantHandlerTestSuite) TestGetTenant_NotFound() {
	// Arrange
	s.mockService.On("GetByID", mock.Anything, "missing").Return(nil, service.ErrTenantNotFound)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/tenants/missing", nil)
	c.Params = gin.Params{{Key: "id", Value: "missing"}}

	// Act
	s.handler.GetTenant(c)

	// Assert
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *TenantHandlerTestSuite) TestSetBusinessHours_InvertedHours() {
	// Arrange
	req := dto.SetBusinessHoursRequest{Days: []dto.BusinessHoursDay{
		{DayOfWeek: 1, IsOpen: true, OpenTime: "17:00", CloseTime: "09:00"},
	}}
	s.mockService.On("SetHours", mock.Anything, "tenant1", req).Return(service.ErrInvalidHours)

	body, _ := json.Marshal(req)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPut, "/tenants/tenant1/hours", bytes.NewBuffer(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: "tenant1"}}

	// Act
	s.handler.SetBusinessHours(c)

	// Assert
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *TenantHandlerTestSuite) TestSetBusinessHours_Success() {
	// Arrange
	req := dto.SetBusinessHoursRequest{Days: []dto.BusinessHoursDay{
		{DayOfWeek: 1, IsOpen: true, OpenTime: "09:00", CloseTime: "17:00"},
	}}
	s.mockService.On("SetHours", mock.Anything, "tenant1", req).Return(nil)

	body, _ := json.Marshal(req)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPut, "/tenants/tenant1/hours", bytes.NewBuffer(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: "tenant1"}}

	// Act
	s.handler.SetBusinessHours(c)
	c.Writer.WriteHeaderNow()

	// Assert
	s.Equal(http.StatusNoContent, w.Code)
	s.mockService.AssertExpectations(s.T())
}
