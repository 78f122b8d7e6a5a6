package api

import (
	"github.com/gin-gonic/gin"

	"github.com/voicedesk/booking-api/internal/middleware"
	"github.com/voicedesk/booking-api/internal/service"
	"github.com/voicedesk/booking-api/internal/service/pubsub"
	"github.com/voicedesk/booking-api/pkg/logger"
)

type Server struct {
	agent       *AgentHandler
	webhook     *WebhookHandler
	tenant      *TenantHandler
	appointment *AppointmentHandler
	websocket   *WebSocketHandler
	auth        *middleware.AuthMiddleware
	rateLimit   *middleware.RateLimitMiddleware
	validation  *middleware.ValidationMiddleware
	globalLimit int
}

func NewServer(
	tenantService *service.TenantService,
	availabilityService *service.AvailabilityService,
	bookingService *service.BookingService,
	callService *service.CallService,
	auth *middleware.AuthMiddleware,
	rateLimit *middleware.RateLimitMiddleware,
	validation *middleware.ValidationMiddleware,
	logger *logger.Logger,
	pubsub *pubsub.RedisPubSub,
	globalLimit int,
) *Server {
	return &Server{
		agent:       NewAgentHandler(availabilityService, bookingService, logger),
		webhook:     NewWebhookHandler(callService, logger),
		tenant:      NewTenantHandler(tenantService),
		appointment: NewAppointmentHandler(bookingService, callService),
		websocket:   NewWebSocketHandler(logger, pubsub),
		auth:        auth,
		rateLimit:   rateLimit,
		validation:  validation,
		globalLimit: globalLimit,
	}
}

func (s *Server) SetupRoutes(api *gin.RouterGroup) {
	api.Use(s.validation.ValidateRequestSize(1 * 1024 * 1024)) // 1MB max
	api.Use(s.rateLimit.GlobalRateLimit(s.globalLimit))

	{
		// Voice agent surface. The platform calls these with tool payloads,
		// so they stay unauthenticated and validation is speakable.
		agent := api.Group("/agent", s.validation.ValidateContentType("application/json"))
		{
			agent.POST("/check-availability", s.agent.CheckAvailability)
			agent.POST("/book-appointment", s.agent.BookAppointment)
			// The vendor's tool runner POSTs; GET kept for manual checks.
			agent.GET("/current-date", s.agent.CurrentDate)
			agent.POST("/current-date", s.agent.CurrentDate)
		}

		webhooks := api.Group("/webhooks")
		{
			webhooks.POST("/call-ended", s.webhook.CallEnded)
		}

		tenants := api.Group("/tenants", s.auth.JWTAuth(), s.rateLimit.TenantRateLimit(), s.auth.RequireRole("admin"))
		{
			tenants.POST("", s.tenant.CreateTenant)
			tenants.GET("", s.tenant.ListTenants)
			tenants.GET("/:id", s.tenant.GetTenant)
			tenants.PUT("/:id", s.tenant.UpdateTenant)
			tenants.PUT("/:id/hours", s.tenant.SetBusinessHours)
			tenants.GET("/:id/hours", s.tenant.GetBusinessHours)
		}

		dashboard := api.Group("", s.auth.JWTAuth(), s.rateLimit.TenantRateLimit())
		{
			dashboard.GET("/appointments", s.appointment.ListAppointments)
			dashboard.GET("/appointments/stream", s.websocket.HandleWebSocket)
			dashboard.GET("/calls", s.appointment.ListCalls)
		}
	}
}

// StartWebSocketHub starts the hub that pushes new appointments to dashboards
func (s *Server) StartWebSocketHub() {
	go s.websocket.Start()
}

func (s *Server) GetWebSocketHandler() *WebSocketHandler {
	return s.websocket
}
