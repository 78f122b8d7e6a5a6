package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/voicedesk/booking-api/internal/api/dto"
	"github.com/voicedesk/booking-api/internal/config"
	"github.com/voicedesk/booking-api/internal/repository"
	"github.com/voicedesk/booking-api/pkg/logger"
	"github.com/voicedesk/booking-api/pkg/timeutil"
)

// AvailabilityService is the advisory probe: it tells a live caller
// whether a slot looks free and, on conflict, proposes the next open one.
// It is deliberately cheaper than the commit path. Two appointments
// conflict here when their start times are closer than the configured
// window, regardless of actual service duration; the committer applies
// the stricter interval rule.
type AvailabilityService struct {
	repo     repository.Repository
	tenants  *TenantService
	calendar Calendar
	cfg      *config.Config
	logger   *logger.Logger
}

func NewAvailabilityService(repo repository.Repository, tenants *TenantService, calendar Calendar, cfg *config.Config, log *logger.Logger) *AvailabilityService {
	return &AvailabilityService{
		repo:     repo,
		tenants:  tenants,
		calendar: calendar,
		cfg:      cfg,
		logger:   log,
	}
}

// Check runs the availability probe. Input errors come back as wrapped
// sentinels (ErrUnknownAgent, ErrUnparseableTime, ErrInvalidDate) for the
// handler to map onto status codes; business outcomes (closed, outside
// hours, conflict) are normal responses with a spoken message.
func (s *AvailabilityService) Check(ctx context.Context, req dto.CheckAvailabilityRequest) (*dto.AvailabilityResponse, error) {
	tenant, err := s.tenants.ResolveAgent(ctx, req.AgentID)
	if err != nil {
		return nil, err
	}

	normalized, ok := timeutil.Normalize(req.Time)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnparseableTime, req.Time)
	}
	proposedDisplay := timeutil.ToDisplay(normalized)

	hours, err := s.calendar.HoursForDate(ctx, tenant.ID, req.Date)
	if err != nil {
		return nil, err
	}

	if !hours.IsOpen {
		return &dto.AvailabilityResponse{
			Available:    false,
			ProposedTime: proposedDisplay,
			Date:         req.Date,
			Reason:       "closed",
			Message:      fmt.Sprintf("We're not available on %ss. Would you like to try a different day?", hours.DayName),
			BookedTimes:  []string{},
		}, nil
	}

	proposedMins, err := timeutil.ToMinutes(normalized)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnparseableTime, req.Time)
	}

	if proposedMins < hours.OpenMinutes || proposedMins >= hours.CloseMinutes {
		return &dto.AvailabilityResponse{
			Available:    false,
			ProposedTime: proposedDisplay,
			Date:         req.Date,
			Reason:       "outside_hours",
			Message:      fmt.Sprintf("That time is outside our business hours. We're available from %s to %s.", displayMinutes(hours.OpenMinutes), displayMinutes(hours.CloseMinutes)),
			BookedTimes:  []string{},
		}, nil
	}

	appointments, err := s.repo.Appointment().ListConfirmedForDate(ctx, tenant.ID, req.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to load appointments: %w", err)
	}

	// Repository order is start_time ascending, so bookedMins is sorted.
	bookedMins := make([]int, 0, len(appointments))
	for _, a := range appointments {
		mins, err := timeutil.ToMinutes(a.StartTime)
		if err != nil {
			s.logger.Warn("skipping appointment with malformed start_time",
				zap.String("appointment_id", a.ID), zap.String("start_time", a.StartTime))
			continue
		}
		bookedMins = append(bookedMins, mins)
	}

	window := s.cfg.AvailabilityWindowMins
	isConflict := func(t int) bool {
		for _, b := range bookedMins {
			if abs(t-b) < window {
				return true
			}
		}
		return false
	}

	bookedDisplay := make([]string, len(bookedMins))
	for i, m := range bookedMins {
		bookedDisplay[i] = displayMinutes(m)
	}

	if !isConflict(proposedMins) {
		s.logger.Infof("[%s] %s %s -> available", req.AgentID, req.Date, normalized)
		return &dto.AvailabilityResponse{
			Available:    true,
			ProposedTime: proposedDisplay,
			Date:         req.Date,
			BookedTimes:  bookedDisplay,
		}, nil
	}

	// Scan forward from the end of the latest conflicting window. The
	// candidate must still start inside business hours; crossing close
	// (or midnight) yields no suggestion rather than wrapping.
	latestConflict := -1
	for _, b := range bookedMins {
		if abs(proposedMins-b) < window && b > latestConflict {
			latestConflict = b
		}
	}

	var nextOpen *string
	searchStart := latestConflict + window
	if searchStart < hours.OpenMinutes {
		searchStart = hours.OpenMinutes
	}
	for t := searchStart; t < hours.CloseMinutes; t += s.cfg.SlotStepMins {
		if !isConflict(t) {
			display := displayMinutes(t)
			nextOpen = &display
			break
		}
	}

	s.logger.Infof("[%s] %s %s -> conflict, next open %v", req.AgentID, req.Date, normalized, nextOpen)

	return &dto.AvailabilityResponse{
		Available:    false,
		ProposedTime: proposedDisplay,
		Date:         req.Date,
		NextOpen:     nextOpen,
		BookedTimes:  bookedDisplay,
	}, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// displayMinutes formats minutes-of-day as spoken 12-hour time. Values
// here are always in range: they come from validated stores or bounded
// scans.
func displayMinutes(mins int) string {
	hhmm, err := timeutil.FromMinutes(mins)
	if err != nil {
		return ""
	}
	return timeutil.ToDisplay(hhmm)
}
