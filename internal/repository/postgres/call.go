package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/voicedesk/booking-api/internal/domain"
	"github.com/voicedesk/booking-api/internal/repository"
)

type CallRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewCallRepository(writerDB, readerDB *gorm.DB) *CallRepository {
	return &CallRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

// Create inserts a call record. The vendor retries webhook delivery, so a
// replayed call_id is treated as already recorded rather than an error.
func (r *CallRepository) Create(ctx context.Context, call *domain.CallRecord) (*domain.CallRecord, error) {
	if err := r.writerDB.WithContext(ctx).Create(call).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, repository.ErrDuplicateCall
		}
		return nil, err
	}
	return call, nil
}

func (r *CallRepository) ListRecent(ctx context.Context, tenantID string, limit int) ([]domain.CallRecord, error) {
	var calls []domain.CallRecord
	err := r.readerDB.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("created_at DESC").
		Limit(limit).
		Find(&calls).Error
	if err != nil {
		return nil, err
	}
	return calls, nil
}
