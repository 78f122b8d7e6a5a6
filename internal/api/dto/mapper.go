package dto

import (
	"github.com/voicedesk/booking-api/internal/domain"
)

func FromTenant(t *domain.Tenant) TenantResponse {
	return TenantResponse{
		ID:                  t.ID,
		CompanyName:         t.CompanyName,
		AgentID:             t.AgentID,
		AppointmentDuration: t.AppointmentDuration,
		BufferTime:          t.BufferTime,
		Timezone:            t.Timezone,
		CreatedAt:           t.CreatedAt,
		UpdatedAt:           t.UpdatedAt,
	}
}

func FromTenants(tenants []domain.Tenant) []TenantResponse {
	out := make([]TenantResponse, len(tenants))
	for i := range tenants {
		out[i] = FromTenant(&tenants[i])
	}
	return out
}

func FromAppointment(a *domain.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:           a.ID,
		TenantID:     a.TenantID,
		Date:         a.Date,
		StartTime:    a.StartTime,
		EndTime:      a.EndTime,
		CallerName:   a.CallerName,
		CallerNumber: a.CallerNumber,
		ServiceType:  a.ServiceType,
		Address:      a.Address,
		City:         a.City,
		State:        a.State,
		Zip:          a.Zip,
		Notes:        a.Notes,
		Source:       a.Source,
		Status:       a.Status,
		CreatedAt:    a.CreatedAt,
	}
}

func FromAppointments(appointments []domain.Appointment) []AppointmentResponse {
	out := make([]AppointmentResponse, len(appointments))
	for i := range appointments {
		out[i] = *FromAppointment(&appointments[i])
	}
	return out
}

func FromBusinessHours(hours []domain.BusinessHours) []BusinessHoursResponse {
	out := make([]BusinessHoursResponse, len(hours))
	for i, h := range hours {
		out[i] = BusinessHoursResponse{
			DayOfWeek: h.DayOfWeek,
			DayName:   domain.DayNames[h.DayOfWeek%7],
			IsOpen:    h.IsOpen,
			OpenTime:  h.OpenTime,
			CloseTime: h.CloseTime,
		}
	}
	return out
}

func FromCall(c *domain.CallRecord) CallResponse {
	return CallResponse{
		ID:                c.ID,
		CallID:            c.CallID,
		CallerName:        c.CallerName,
		CallerNumber:      c.CallerNumber,
		Summary:           c.Summary,
		RecordingURL:      c.RecordingURL,
		DurationSeconds:   c.DurationSeconds,
		AppointmentBooked: c.AppointmentBooked,
		CreatedAt:         c.CreatedAt,
	}
}

func FromCalls(calls []domain.CallRecord) []CallResponse {
	out := make([]CallResponse, len(calls))
	for i := range calls {
		out[i] = FromCall(&calls[i])
	}
	return out
}
