package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/voicedesk/booking-api/internal/api/dto"
	"github.com/voicedesk/booking-api/internal/domain"
	"github.com/voicedesk/booking-api/internal/service"
	"github.com/voicedesk/booking-api/pkg/logger"
)

//go:generate mockery --name AvailabilityService --output ../mocks
type AvailabilityService interface {
	Check(ctx context.Context, req dto.CheckAvailabilityRequest) (*dto.AvailabilityResponse, error)
}

//go:generate mockery --name BookingService --output ../mocks
type BookingService interface {
	Book(ctx context.Context, req dto.BookAppointmentRequest) (*dto.BookingResponse, error)
}

// AgentHandler is the voice-agent tool surface: the availability probe,
// the booking tool, and the current-date helper. These endpoints carry no
// auth; the vendor calls them directly with the agent id as credential.
type AgentHandler struct {
	*BaseHandler
	availability AvailabilityService
	booking      BookingService
	logger       *logger.Logger
}

func NewAgentHandler(availability AvailabilityService, booking BookingService, logger *logger.Logger) *AgentHandler {
	return &AgentHandler{
		availability: availability,
		booking:      booking,
		logger:       logger,
	}
}

// CheckAvailability godoc
// @Summary Check whether an appointment slot is free
// @Description Advisory availability probe for the voice agent. Accepts free-form times.
// @Tags agent
// @Accept json
// @Produce json
// @Param agent_id query string false "Agent ID (alternative to body field)"
// @Param body body dto.CheckAvailabilityRequest true "Probe parameters"
// @Success 200 {object} dto.AvailabilityResponse
// @Failure 400 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Router /agent/check-availability [post]
func (h *AgentHandler) CheckAvailability(c *gin.Context) {
	var req dto.CheckAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: "date and time are required"})
		return
	}

	// The agent id may be hardcoded in the tool URL instead of being a
	// tool parameter.
	if req.AgentID == "" {
		req.AgentID = c.Query("agent_id")
	}
	if req.AgentID == "" {
		c.JSON(http.StatusBadRequest, dto.Error{Error: "agent_id is required (pass in body or as ?agent_id= query param)"})
		return
	}

	result, err := h.availability.Check(h.RequestCtx(c), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownAgent):
			c.JSON(http.StatusNotFound, dto.Error{Error: "unknown agent_id"})
		case errors.Is(err, service.ErrUnparseableTime), errors.Is(err, service.ErrInvalidDate):
			c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		default:
			h.logger.Error("availability check failed", err)
			c.JSON(http.StatusInternalServerError, dto.Error{Error: "internal error"})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// BookAppointment godoc
// @Summary Book a confirmed appointment
// @Description Commit path for the voice agent. Business-rule rejections return 200 with success=false and a spoken message.
// @Tags agent
// @Accept json
// @Produce json
// @Param body body dto.BookAppointmentEnvelope true "Booking tool call"
// @Success 200 {object} dto.BookingResponse
// @Failure 500 {object} dto.BookingResponse
// @Router /agent/book-appointment [post]
func (h *AgentHandler) BookAppointment(c *gin.Context) {
	var envelope dto.BookAppointmentEnvelope
	if err := c.ShouldBindJSON(&envelope); err != nil {
		// Even a malformed body gets a speakable answer; the consumer is
		// a live conversation, not a programmer.
		c.JSON(http.StatusOK, dto.BookingResponse{
			Success: false,
			Message: "I'm sorry, I didn't receive the booking details correctly. Could you try again?",
		})
		return
	}

	req := envelope.Flatten()
	if req.AgentID == "" {
		req.AgentID = c.Query("agent_id")
	}

	result, err := h.booking.Book(h.RequestCtx(c), req)
	if err != nil {
		h.logger.Error("booking failed unexpectedly", err)
		c.JSON(http.StatusInternalServerError, dto.BookingResponse{
			Success: false,
			Message: "I'm sorry, something went wrong while booking the appointment. Please try again.",
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

// CurrentDate godoc
// @Summary Current date for agent grounding
// @Description Returns today's date in machine and speakable forms so the agent can resolve relative dates.
// @Tags agent
// @Produce json
// @Success 200 {object} dto.CurrentDateResponse
// @Router /agent/current-date [get]
func (h *AgentHandler) CurrentDate(c *gin.Context) {
	now := time.Now().UTC()

	dayName := domain.DayNames[int(now.Weekday())]
	monthName := now.Month().String()

	c.JSON(http.StatusOK, dto.CurrentDateResponse{
		Date:      now.Format("2006-01-02"),
		Readable:  fmt.Sprintf("%s, %s %d, %d", dayName, monthName, now.Day(), now.Year()),
		DayOfWeek: dayName,
		Month:     monthName,
		Day:       now.Day(),
		Year:      now.Year(),
	})
}
