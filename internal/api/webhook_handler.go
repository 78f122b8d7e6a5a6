package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/voicedesk/booking-api/internal/api/dto"
	"github.com/voicedesk/booking-api/pkg/logger"
)

//go:generate mockery --name CallIngestService --output ../mocks
type CallIngestService interface {
	Ingest(ctx context.Context, payload dto.CallWebhookPayload) error
}

// WebhookHandler receives the vendor's call-ended webhook. The vendor
// retries on non-2xx and does nothing useful with error bodies, so every
// outcome short of a transport fault answers 200.
type WebhookHandler struct {
	*BaseHandler
	calls  CallIngestService
	logger *logger.Logger
}

func NewWebhookHandler(calls CallIngestService, logger *logger.Logger) *WebhookHandler {
	return &WebhookHandler{
		calls:  calls,
		logger: logger,
	}
}

// CallEnded godoc
// @Summary Ingest a completed call
// @Description Records the call log and auto-creates an appointment when the call analysis collected one.
// @Tags webhooks
// @Accept json
// @Produce plain
// @Param body body dto.CallWebhookPayload true "Vendor webhook payload"
// @Success 200 {string} string "OK"
// @Router /webhooks/call-ended [post]
func (h *WebhookHandler) CallEnded(c *gin.Context) {
	var payload dto.CallWebhookPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.logger.Warn("unreadable call webhook payload")
		c.String(http.StatusOK, "OK")
		return
	}

	if err := h.calls.Ingest(h.RequestCtx(c), payload); err != nil {
		h.logger.Error("call ingestion failed", err)
	}

	c.String(http.StatusOK, "OK")
}
