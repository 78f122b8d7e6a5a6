package repository

import (
	"context"
	"errors"

	"github.com/voicedesk/booking-api/internal/domain"
)

var (
	// ErrNotFound is returned for lookups that matched no row.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateSlot is returned when an appointment insert hits the
	// (tenant_id, date, start_time) uniqueness constraint. It closes the
	// race between the pre-insert conflict read and the insert itself.
	ErrDuplicateSlot = errors.New("slot already booked")

	// ErrDuplicateCall is returned when a webhook replay re-delivers a
	// call_id that is already recorded.
	ErrDuplicateCall = errors.New("call already recorded")
)

//go:generate mockery --name TenantRepository --output ../mocks
type TenantRepository interface {
	Create(ctx context.Context, tenant *domain.Tenant) (*domain.Tenant, error)
	GetByID(ctx context.Context, id string) (*domain.Tenant, error)
	GetByAgentID(ctx context.Context, agentID string) (*domain.Tenant, error)
	Update(ctx context.Context, tenant *domain.Tenant) error
	List(ctx context.Context) ([]domain.Tenant, error)
}

//go:generate mockery --name BusinessHoursRepository --output ../mocks
type BusinessHoursRepository interface {
	Upsert(ctx context.Context, hours *domain.BusinessHours) error
	GetForDay(ctx context.Context, tenantID string, dayOfWeek int) (*domain.BusinessHours, error)
	ListForTenant(ctx context.Context, tenantID string) ([]domain.BusinessHours, error)
}

//go:generate mockery --name AppointmentRepository --output ../mocks
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error)
	ListConfirmedForDate(ctx context.Context, tenantID, date string) ([]domain.Appointment, error)
	ListForRange(ctx context.Context, tenantID, fromDate, toDate string) ([]domain.Appointment, error)
}

//go:generate mockery --name CallRepository --output ../mocks
type CallRepository interface {
	Create(ctx context.Context, call *domain.CallRecord) (*domain.CallRecord, error)
	ListRecent(ctx context.Context, tenantID string, limit int) ([]domain.CallRecord, error)
}

//go:generate mockery --name Repository --output ../mocks
type Repository interface {
	Tenant() TenantRepository
	BusinessHours() BusinessHoursRepository
	Appointment() AppointmentRepository
	Call() CallRepository
}
