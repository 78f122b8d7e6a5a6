package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/voicedesk/booking-api/internal/domain"
	"github.com/voicedesk/booking-api/internal/repository"
	"github.com/voicedesk/booking-api/pkg/timeutil"
)

// Calendar answers "is this tenant open on this date, and when". Both
// scheduling paths consult it before touching the appointment store.
type Calendar interface {
	HoursForDate(ctx context.Context, tenantID, date string) (*domain.DayHours, error)
}

type CalendarService struct {
	repo repository.Repository
}

func NewCalendarService(repo repository.Repository) *CalendarService {
	return &CalendarService{repo: repo}
}

// HoursForDate resolves the tenant's hours for one calendar date. The
// weekday comes straight from the date (0=Sunday); there is no timezone
// math here, dates are tenant-local by contract. A missing row or
// is_open=false both mean closed.
func (s *CalendarService) HoursForDate(ctx context.Context, tenantID, date string) (*domain.DayHours, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}

	dayOfWeek := int(day.Weekday())
	dayName := domain.DayNames[dayOfWeek]

	hours, err := s.repo.BusinessHours().GetForDay(ctx, tenantID, dayOfWeek)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &domain.DayHours{IsOpen: false, DayName: dayName}, nil
		}
		return nil, err
	}

	if !hours.IsOpen {
		return &domain.DayHours{IsOpen: false, DayName: dayName}, nil
	}

	openMinutes, err := timeutil.ToMinutes(hours.OpenTime)
	if err != nil {
		return nil, fmt.Errorf("stored open_time for tenant %s day %d is malformed: %w", tenantID, dayOfWeek, err)
	}
	closeMinutes, err := timeutil.ToMinutes(hours.CloseTime)
	if err != nil {
		return nil, fmt.Errorf("stored close_time for tenant %s day %d is malformed: %w", tenantID, dayOfWeek, err)
	}

	return &domain.DayHours{
		IsOpen:       true,
		OpenMinutes:  openMinutes,
		CloseMinutes: closeMinutes,
		DayName:      dayName,
	}, nil
}
