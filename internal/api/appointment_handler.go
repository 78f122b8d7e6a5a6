package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/voicedesk/booking-api/internal/api/dto"
	"github.com/voicedesk/booking-api/internal/utils"
)

//go:generate mockery --name AppointmentListService --output ../mocks
type AppointmentListService interface {
	ListForRange(ctx context.Context, tenantID, fromDate, toDate string) ([]dto.AppointmentResponse, error)
}

//go:generate mockery --name CallListService --output ../mocks
type CallListService interface {
	ListRecent(ctx context.Context, tenantID string, limit int) ([]dto.CallResponse, error)
}

type AppointmentHandler struct {
	*BaseHandler
	appointments AppointmentListService
	calls        CallListService
}

func NewAppointmentHandler(appointments AppointmentListService, calls CallListService) *AppointmentHandler {
	return &AppointmentHandler{appointments: appointments, calls: calls}
}

// ListAppointments godoc
// @Summary List the authenticated tenant's appointments
// @Tags appointments
// @Produce json
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {array} dto.AppointmentResponse
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Security BearerAuth
// @Router /appointments [get]
func (h *AppointmentHandler) ListAppointments(c *gin.Context) {
	ctx := h.RequestCtx(c)

	tenantID, err := utils.GetTenantIDFromContext(ctx)
	if err != nil {
		c.JSON(http.StatusUnauthorized, dto.Error{Error: err.Error()})
		return
	}

	appointments, err := h.appointments.ListForRange(ctx, tenantID, c.Query("from"), c.Query("to"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, appointments)
}

// ListCalls godoc
// @Summary List the authenticated tenant's recent calls
// @Tags calls
// @Produce json
// @Param limit query int false "Max records (default 50, cap 200)"
// @Success 200 {array} dto.CallResponse
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Security BearerAuth
// @Router /calls [get]
func (h *AppointmentHandler) ListCalls(c *gin.Context) {
	ctx := h.RequestCtx(c)

	tenantID, err := utils.GetTenantIDFromContext(ctx)
	if err != nil {
		c.JSON(http.StatusUnauthorized, dto.Error{Error: err.Error()})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	calls, err := h.calls.ListRecent(ctx, tenantID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, calls)
}
