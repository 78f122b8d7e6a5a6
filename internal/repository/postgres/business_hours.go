package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/voicedesk/booking-api/internal/domain"
	"github.com/voicedesk/booking-api/internal/repository"
)

type BusinessHoursRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewBusinessHoursRepository(writerDB, readerDB *gorm.DB) *BusinessHoursRepository {
	return &BusinessHoursRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

// Upsert writes one weekday row, replacing any existing row for the same
// (tenant, day). At most one row per pair is an invariant the unique
// index enforces.
func (r *BusinessHoursRepository) Upsert(ctx context.Context, hours *domain.BusinessHours) error {
	return r.writerDB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "tenant_id"}, {Name: "day_of_week"}},
		DoUpdates: clause.AssignmentColumns([]string{"is_open", "open_time", "close_time"}),
	}).Create(hours).Error
}

func (r *BusinessHoursRepository) GetForDay(ctx context.Context, tenantID string, dayOfWeek int) (*domain.BusinessHours, error) {
	var hours domain.BusinessHours
	err := r.readerDB.WithContext(ctx).
		First(&hours, "tenant_id = ? AND day_of_week = ?", tenantID, dayOfWeek).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &hours, nil
}

func (r *BusinessHoursRepository) ListForTenant(ctx context.Context, tenantID string) ([]domain.BusinessHours, error) {
	var hours []domain.BusinessHours
	err := r.readerDB.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("day_of_week").
		Find(&hours).Error
	if err != nil {
		return nil, err
	}
	return hours, nil
}
