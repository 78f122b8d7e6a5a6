package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/voicedesk/booking-api/internal/domain"
	"github.com/voicedesk/booking-api/internal/repository"
)

type AppointmentRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewAppointmentRepository(writerDB, readerDB *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

// Create inserts a booking. A unique-constraint failure on the slot index
// comes back as repository.ErrDuplicateSlot so the booking service can
// answer "already booked" instead of reporting an internal error.
func (r *AppointmentRepository) Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	if err := r.writerDB.WithContext(ctx).Create(appointment).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, repository.ErrDuplicateSlot
		}
		return nil, err
	}
	return appointment, nil
}

// ListConfirmedForDate returns confirmed appointments for one tenant and
// calendar day, ordered by start time. Both availability paths re-read
// through here on every request; nothing is cached between requests.
func (r *AppointmentRepository) ListConfirmedForDate(ctx context.Context, tenantID, date string) ([]domain.Appointment, error) {
	var appointments []domain.Appointment
	err := r.readerDB.WithContext(ctx).
		Where("tenant_id = ? AND date = ? AND status = ?", tenantID, date, domain.AppointmentStatusConfirmed).
		Order("start_time").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

// ListForRange is the dashboard read: all appointments for a tenant
// between two dates inclusive, cancelled rows included.
func (r *AppointmentRepository) ListForRange(ctx context.Context, tenantID, fromDate, toDate string) ([]domain.Appointment, error) {
	var appointments []domain.Appointment
	err := r.readerDB.WithContext(ctx).
		Where("tenant_id = ? AND date >= ? AND date <= ?", tenantID, fromDate, toDate).
		Order("date, start_time").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}
