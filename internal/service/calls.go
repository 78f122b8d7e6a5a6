package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/voicedesk/booking-api/internal/api/dto"
	"github.com/voicedesk/booking-api/internal/domain"
	"github.com/voicedesk/booking-api/internal/repository"
	"github.com/voicedesk/booking-api/pkg/logger"
	"github.com/voicedesk/booking-api/pkg/timeutil"
)

// CallService ingests the vendor's call-ended webhook: every completed
// call becomes a CallRecord, and calls whose post-call analysis collected
// an appointment date and time also produce a confirmed appointment.
type CallService struct {
	repo      repository.Repository
	tenants   *TenantService
	publisher AppointmentPublisher
	logger    *logger.Logger
}

func NewCallService(repo repository.Repository, tenants *TenantService, log *logger.Logger) *CallService {
	return &CallService{
		repo:    repo,
		tenants: tenants,
		logger:  log,
	}
}

// SetPublisher wires the live-stream publisher. Optional.
func (s *CallService) SetPublisher(publisher AppointmentPublisher) {
	s.publisher = publisher
}

// Ingest processes one webhook delivery. Partial failures are logged and
// swallowed where the original data is still captured; the vendor only
// needs a 200 and will not act on our errors.
func (s *CallService) Ingest(ctx context.Context, payload dto.CallWebhookPayload) error {
	call := payload.Call
	if call == nil {
		return errors.New("payload has no call object")
	}

	var analysis dto.WebhookCallAnalysis
	if call.CallAnalysis != nil {
		analysis = *call.CallAnalysis
	}
	custom := analysis.CustomAnalysisData

	callerNumber := custom.CallerPhoneNumber
	if callerNumber == "" {
		callerNumber = call.FromNumber
	}

	// The webhook is the one entry point without a pre-resolved tenant;
	// an unprovisioned agent still gets its call recorded for triage.
	var tenantID string
	tenant, err := s.tenants.ResolveAgent(ctx, call.AgentID)
	if err != nil {
		s.logger.Warn("call webhook for unknown agent", zap.String("agent_id", call.AgentID), zap.Error(err))
	} else {
		tenantID = tenant.ID
	}

	callID := call.CallID
	if callID == "" {
		callID = uuid.NewString()
	}

	hasAppointment := custom.AppointmentDate != "" && custom.AppointmentTime != ""

	record := &domain.CallRecord{
		TenantID:          tenantID,
		CallID:            callID,
		AgentID:           call.AgentID,
		CallerName:        custom.CallerName,
		CallerNumber:      callerNumber,
		Summary:           analysis.CallSummary,
		Transcript:        call.Transcript,
		RecordingURL:      call.RecordingURL,
		DurationSeconds:   call.CallDuration,
		AppointmentBooked: hasAppointment,
	}

	if _, err := s.repo.Call().Create(ctx, record); err != nil {
		if errors.Is(err, repository.ErrDuplicateCall) {
			// Vendor webhook retry. Already processed, nothing to do.
			s.logger.Infof("call %s already recorded, skipping replay", callID)
			return nil
		}
		return err
	}

	if !hasAppointment || tenant == nil {
		return nil
	}

	startTime, ok := timeutil.Normalize(custom.AppointmentTime)
	if !ok {
		s.logger.Warn("call collected an unparseable appointment time",
			zap.String("call_id", callID), zap.String("time", custom.AppointmentTime))
		return nil
	}

	appointment := &domain.Appointment{
		TenantID:     tenant.ID,
		CallerName:   custom.CallerName,
		CallerNumber: callerNumber,
		Date:         custom.AppointmentDate,
		StartTime:    startTime,
		ServiceType:  GuessServiceType(custom.ServiceType, custom.Issue, analysis.CallSummary),
		Address:      custom.AppointmentAddress,
		City:         custom.AppointmentCity,
		State:        custom.AppointmentState,
		Zip:          custom.AppointmentZip,
		Notes:        analysis.CallSummary,
		Source:       domain.AppointmentSourceCall,
		CallID:       callID,
		Status:       domain.AppointmentStatusConfirmed,
	}

	created, err := s.repo.Appointment().Create(ctx, appointment)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateSlot) {
			// The agent already booked this slot through the booking tool
			// during the call. The call record stands on its own.
			s.logger.Infof("call %s appointment already booked via tool", callID)
			return nil
		}
		s.logger.Error("failed to store appointment from call", err, zap.String("call_id", callID))
		return nil
	}

	if s.publisher != nil {
		if err := s.publisher.PublishAppointment(ctx, tenant.ID, dto.FromAppointment(created)); err != nil {
			s.logger.Warn("failed to publish appointment event", zap.Error(err))
		}
	}

	return nil
}

// ListRecent returns the dashboard call log for one tenant.
func (s *CallService) ListRecent(ctx context.Context, tenantID string, limit int) ([]dto.CallResponse, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	calls, err := s.repo.Call().ListRecent(ctx, tenantID, limit)
	if err != nil {
		return nil, err
	}
	return dto.FromCalls(calls), nil
}
