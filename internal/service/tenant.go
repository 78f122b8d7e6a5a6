package service

import (
	"context"
	"errors"
	"time"

	"github.com/voicedesk/booking-api/internal/api/dto"
	"github.com/voicedesk/booking-api/internal/domain"
	"github.com/voicedesk/booking-api/internal/repository"
	"github.com/voicedesk/booking-api/pkg/timeutil"
)

type TenantService struct {
	repo repository.Repository
}

func NewTenantService(repo repository.Repository) *TenantService {
	return &TenantService{repo: repo}
}

func (s *TenantService) Create(ctx context.Context, req dto.CreateTenantRequest) (dto.TenantResponse, error) {
	duration := req.AppointmentDuration
	if duration <= 0 {
		duration = domain.DefaultAppointmentDuration
	}

	tenant := &domain.Tenant{
		CompanyName:         req.CompanyName,
		AgentID:             req.AgentID,
		AppointmentDuration: duration,
		BufferTime:          req.BufferTime,
		Timezone:            req.Timezone,
	}

	created, err := s.repo.Tenant().Create(ctx, tenant)
	if err != nil {
		return dto.TenantResponse{}, err
	}

	return dto.FromTenant(created), nil
}

func (s *TenantService) GetByID(ctx context.Context, id string) (*domain.Tenant, error) {
	tenant, err := s.repo.Tenant().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTenantNotFound
		}
		return nil, err
	}
	return tenant, nil
}

// ResolveAgent maps an external voice-agent identifier to the owning
// tenant. Both the availability probe and the booking committer start
// here; an unknown agent id is non-retryable for the caller.
func (s *TenantService) ResolveAgent(ctx context.Context, agentID string) (*domain.Tenant, error) {
	tenant, err := s.repo.Tenant().GetByAgentID(ctx, agentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUnknownAgent
		}
		return nil, err
	}
	return tenant, nil
}

func (s *TenantService) Update(ctx context.Context, id string, req dto.UpdateTenantRequest) (dto.TenantResponse, error) {
	tenant, err := s.repo.Tenant().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return dto.TenantResponse{}, ErrTenantNotFound
		}
		return dto.TenantResponse{}, err
	}

	if req.CompanyName != nil {
		tenant.CompanyName = *req.CompanyName
	}
	if req.AppointmentDuration != nil {
		tenant.AppointmentDuration = *req.AppointmentDuration
	}
	if req.BufferTime != nil {
		tenant.BufferTime = *req.BufferTime
	}
	if req.Timezone != nil {
		tenant.Timezone = *req.Timezone
	}
	tenant.UpdatedAt = time.Now()

	if err := s.repo.Tenant().Update(ctx, tenant); err != nil {
		return dto.TenantResponse{}, err
	}
	return dto.FromTenant(tenant), nil
}

func (s *TenantService) List(ctx context.Context) ([]dto.TenantResponse, error) {
	tenants, err := s.repo.Tenant().List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.FromTenants(tenants), nil
}

// SetHours replaces the submitted weekdays' business hours. Each day is
// validated before any write so a bad row rejects the whole request.
func (s *TenantService) SetHours(ctx context.Context, tenantID string, req dto.SetBusinessHoursRequest) error {
	if _, err := s.GetByID(ctx, tenantID); err != nil {
		return err
	}

	for _, day := range req.Days {
		if day.DayOfWeek < 0 || day.DayOfWeek > 6 {
			return ErrInvalidDayOfWeek
		}
		if !day.IsOpen {
			continue
		}
		open, err := timeutil.ToMinutes(day.OpenTime)
		if err != nil {
			return err
		}
		closeMins, err := timeutil.ToMinutes(day.CloseTime)
		if err != nil {
			return err
		}
		if open >= closeMins {
			return ErrInvalidHours
		}
	}

	for _, day := range req.Days {
		hours := &domain.BusinessHours{
			TenantID:  tenantID,
			DayOfWeek: day.DayOfWeek,
			IsOpen:    day.IsOpen,
			OpenTime:  day.OpenTime,
			CloseTime: day.CloseTime,
		}
		if err := s.repo.BusinessHours().Upsert(ctx, hours); err != nil {
			return err
		}
	}
	return nil
}

func (s *TenantService) GetHours(ctx context.Context, tenantID string) ([]dto.BusinessHoursResponse, error) {
	hours, err := s.repo.BusinessHours().ListForTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	return dto.FromBusinessHours(hours), nil
}
