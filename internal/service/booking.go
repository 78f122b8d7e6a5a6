package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/voicedesk/booking-api/internal/api/dto"
	"github.com/voicedesk/booking-api/internal/domain"
	"github.com/voicedesk/booking-api/internal/repository"
	"github.com/voicedesk/booking-api/pkg/logger"
	"github.com/voicedesk/booking-api/pkg/timeutil"
)

// AppointmentPublisher fans a newly stored appointment out to live
// dashboard listeners. Publishing is best effort and never fails a booking.
type AppointmentPublisher interface {
	PublishAppointment(ctx context.Context, tenantID string, appointment *dto.AppointmentResponse) error
}

// BookingService is the commit path. It re-derives availability from
// current store state on every attempt and relies on the slot uniqueness
// constraint to close the read-then-insert race; a lost race surfaces as
// a spoken "already booked", never as a retry.
//
// Every business rejection is a normal response with Success=false and a
// message the agent can read aloud. Book only returns a non-nil error for
// faults the caller should treat as a 500.
type BookingService struct {
	repo      repository.Repository
	tenants   *TenantService
	calendar  Calendar
	clock     Clock
	publisher AppointmentPublisher
	logger    *logger.Logger
}

func NewBookingService(repo repository.Repository, tenants *TenantService, calendar Calendar, clock Clock, log *logger.Logger) *BookingService {
	return &BookingService{
		repo:     repo,
		tenants:  tenants,
		calendar: calendar,
		clock:    clock,
		logger:   log,
	}
}

// SetPublisher wires the live-stream publisher. Optional.
func (s *BookingService) SetPublisher(publisher AppointmentPublisher) {
	s.publisher = publisher
}

func reject(message string) *dto.BookingResponse {
	return &dto.BookingResponse{Success: false, Message: message}
}

func (s *BookingService) Book(ctx context.Context, req dto.BookAppointmentRequest) (*dto.BookingResponse, error) {
	// Missing required fields are enumerated by name so the agent can ask
	// for exactly what is still needed.
	var missing []string
	if req.CallerName == "" {
		missing = append(missing, "the caller's name")
	}
	if req.Date == "" {
		missing = append(missing, "the appointment date")
	}
	if req.StartTime == "" {
		missing = append(missing, "the appointment time")
	}
	if len(missing) > 0 {
		return reject(fmt.Sprintf("I still need %s to book the appointment. Could you provide that?",
			strings.Join(missing, " and "))), nil
	}

	tenant, err := s.tenants.ResolveAgent(ctx, req.AgentID)
	if err != nil {
		// Internal detail stays in the logs; the caller hears a generic
		// system-unavailable line whatever went wrong with the lookup.
		s.logger.Error("tenant lookup failed during booking", err, zap.String("agent_id", req.AgentID))
		return reject("I'm sorry, I'm having trouble accessing the booking system right now. Please try again later."), nil
	}

	normalized, ok := timeutil.Normalize(req.StartTime)
	if !ok {
		return reject(fmt.Sprintf("I couldn't make out %q as an appointment time. Could you say it again?", req.StartTime)), nil
	}
	startMins, err := timeutil.ToMinutes(normalized)
	if err != nil {
		return reject(fmt.Sprintf("I couldn't make out %q as an appointment time. Could you say it again?", req.StartTime)), nil
	}

	endMins := startMins + tenant.EffectiveDuration()
	if endMins >= timeutil.MinutesPerDay {
		// Cross-midnight appointments are rejected outright rather than
		// folding the end time onto the next day.
		return reject("That appointment would run past midnight. Could you pick an earlier time?"), nil
	}
	endTime, err := timeutil.FromMinutes(endMins)
	if err != nil {
		return nil, fmt.Errorf("computed end time out of range: %w", err)
	}

	day, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return reject(fmt.Sprintf("I didn't catch %q as a date. Could you give me the date again?", req.Date)), nil
	}

	// Day-level comparison only: booking earlier today is allowed.
	now := s.clock.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if day.Before(today) {
		return reject("That date has already passed. Could you pick a future date?"), nil
	}

	hours, err := s.calendar.HoursForDate(ctx, tenant.ID, req.Date)
	if err != nil {
		s.logger.Error("business hours lookup failed", err, zap.String("tenant_id", tenant.ID), zap.String("date", req.Date))
		return reject("I'm having trouble checking the schedule. Please try again."), nil
	}
	if !hours.IsOpen {
		return reject(fmt.Sprintf("We're not available on %ss. Would you like to try a different day?", hours.DayName)), nil
	}

	// The whole interval must sit inside business hours, end included.
	if startMins < hours.OpenMinutes || endMins > hours.CloseMinutes {
		return reject(fmt.Sprintf("That time is outside our business hours. We're available from %s to %s. Would you like to pick a different time?",
			displayMinutes(hours.OpenMinutes), displayMinutes(hours.CloseMinutes))), nil
	}

	existing, err := s.repo.Appointment().ListConfirmedForDate(ctx, tenant.ID, req.Date)
	if err != nil {
		s.logger.Error("appointment conflict check failed", err, zap.String("tenant_id", tenant.ID), zap.String("date", req.Date))
		return reject("I'm having trouble checking the schedule. Please try again."), nil
	}

	if s.hasOverlap(existing, startMins, endMins, tenant.EffectiveDuration(), tenant.EffectiveBuffer()) {
		return reject("That time slot is already booked. Would you like me to check for other available times on that day?"), nil
	}

	appointment := &domain.Appointment{
		TenantID:     tenant.ID,
		CallerName:   req.CallerName,
		CallerNumber: req.CallerNumber,
		Date:         req.Date,
		StartTime:    normalized,
		EndTime:      endTime,
		ServiceType:  req.ServiceType,
		Address:      req.Address,
		City:         req.City,
		State:        req.State,
		Zip:          req.Zip,
		Notes:        req.Notes,
		Source:       domain.AppointmentSourceAI,
		CallID:       req.CallID,
		Status:       domain.AppointmentStatusConfirmed,
	}

	created, err := s.repo.Appointment().Create(ctx, appointment)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateSlot) {
			// Lost the race between the conflict read and the insert.
			// Business outcome, not an internal error.
			s.logger.Warn("duplicate slot insert", zap.String("tenant_id", tenant.ID),
				zap.String("date", req.Date), zap.String("start_time", normalized))
			return reject("It looks like this appointment has already been booked. Is there anything else I can help with?"), nil
		}
		s.logger.Error("appointment insert failed", err, zap.String("tenant_id", tenant.ID))
		return reject("I'm sorry, I wasn't able to book the appointment. Please try again."), nil
	}

	resp := dto.FromAppointment(created)
	if s.publisher != nil {
		if err := s.publisher.PublishAppointment(ctx, tenant.ID, resp); err != nil {
			s.logger.Warn("failed to publish appointment event", zap.Error(err))
		}
	}

	s.logger.Infof("[%s] booked %s %s-%s for %s", req.AgentID, req.Date, normalized, endTime, req.CallerName)

	formattedDate := fmt.Sprintf("%d/%d/%d", int(day.Month()), day.Day(), day.Year())
	return &dto.BookingResponse{
		Success: true,
		Message: fmt.Sprintf("Your appointment has been booked for %s from %s to %s. Is there anything else I can help you with?",
			formattedDate, timeutil.ToDisplay(normalized), timeutil.ToDisplay(endTime)),
		Appointment: resp,
	}, nil
}

// ListForRange is the dashboard read: a tenant's appointments between two
// dates inclusive. Defaults to the single day fromDate when toDate is empty.
func (s *BookingService) ListForRange(ctx context.Context, tenantID, fromDate, toDate string) ([]dto.AppointmentResponse, error) {
	if toDate == "" {
		toDate = fromDate
	}
	appointments, err := s.repo.Appointment().ListForRange(ctx, tenantID, fromDate, toDate)
	if err != nil {
		return nil, err
	}
	return dto.FromAppointments(appointments), nil
}

// hasOverlap applies the commit-path conflict rule: half-open interval
// overlap against [existingStart, existingEnd+buffer). This is stricter
// than the probe's start-distance window on purpose; the probe is
// advisory, this is the gate.
func (s *BookingService) hasOverlap(existing []domain.Appointment, startMins, endMins, duration, buffer int) bool {
	for _, apt := range existing {
		existingStart, err := timeutil.ToMinutes(apt.StartTime)
		if err != nil {
			continue
		}
		existingEnd, err := timeutil.ToMinutes(apt.EndTime)
		if err != nil {
			// Rows ingested from call webhooks carry no end time; assume
			// the tenant's standard duration.
			existingEnd = existingStart + duration
		}
		existingEnd += buffer

		if startMins < existingEnd && endMins > existingStart {
			return true
		}
	}
	return false
}
