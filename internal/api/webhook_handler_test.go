package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/voicedesk/booking-api/internal/api/dto"
	"github.com/voicedesk/booking-api/pkg/logger"
)

type WebhookHandlerTestSuite struct {
	suite.Suite
	mockCalls *MockCallIngestService
	handler   *WebhookHandler
}

type MockCallIngestService struct {
	mock.Mock
}

func (m *MockCallIngestService) Ingest(ctx context.Context, payload dto.CallWebhookPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

func (s *WebhookHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockCalls = new(MockCallIngestService)
	s.handler = NewWebhookHandler(s.mockCalls, logger.NewNop())
}

func TestWebhookHandler(t *testing.T) {
	suite.Run(t, new(WebhookHandlerTestSuite))
}

func (s *WebhookHandlerTestSuite) post(body []byte) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/call-ended", bytes.NewBuffer(body))
	c.Request.Header.Set("Content-Type", "application/json")
	s.handler.CallEnded(c)
	return w
}

func (s *WebhookHandlerTestSuite) TestCallEnded_Success() {
	// Arrange
	payload := dto.CallWebhookPayload{Call: &dto.WebhookCall{CallID: "call_91b6d0", AgentID: "agent_7f3c2a"}}
	s.mockCalls.On("Ingest", mock.Anything, payload).Return(nil)
	body, _ := json.Marshal(payload)

	// Act
	w := s.post(body)

	// Assert
	s.Equal(http.StatusOK, w.Code)
	s.Equal("OK", w.Body.String())
	s.mockCalls.AssertExpectations(s.T())
}

func (s *WebhookHandlerTestSuite) TestCallEnded_IngestErrorStill200() {
	// Arrange: the vendor retries on non-2xx, so failures are swallowed.
	payload := dto.CallWebhookPayload{Call: &dto.WebhookCall{CallID: "call_91b6d0"}}
	s.mockCalls.On("Ingest", mock.Anything, payload).Return(errors.New("db down"))
	body, _ := json.Marshal(payload)

	// Act
	w := s.post(body)

	// Assert
	s.Equal(http.StatusOK, w.Code)
	s.Equal("OK", w.Body.String())
}

func (s *WebhookHandlerTestSuite) TestCallEnded_MalformedBodyStill200() {
	// Act
	w := s.post([]byte("{not json"))

	// Assert
	s.Equal(http.StatusOK, w.Code)
	s.mockCalls.AssertNotCalled(s.T(), "Ingest", mock.Anything, mock.Anything)
}
