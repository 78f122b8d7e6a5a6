package dto

import (
	"time"
)

// AvailabilityResponse is the advisory probe's answer. BookedTimes is
// always present (display form, sorted) so the agent can offer
// alternatives without a second round trip. NextOpen is null when the
// scan found nothing before close.
type AvailabilityResponse struct {
	Available    bool     `json:"available"`
	ProposedTime string   `json:"proposed_time" example:"10:00 AM"`
	Date         string   `json:"date" example:"2026-03-02"`
	Reason       string   `json:"reason,omitempty" example:"outside_hours"`
	Message      string   `json:"message,omitempty"`
	NextOpen     *string  `json:"next_open" example:"12:00 PM"`
	BookedTimes  []string `json:"booked_times"`
}

// BookingResponse is always a 200-style body: the consumer is a live
// voice conversation, so every rejection carries a spoken Message.
type BookingResponse struct {
	Success     bool                 `json:"success"`
	Message     string               `json:"message"`
	Appointment *AppointmentResponse `json:"appointment,omitempty"`
}

// AppointmentResponse is the structured echo of a stored appointment.
type AppointmentResponse struct {
	ID           string    `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	TenantID     string    `json:"tenant_id,omitempty"`
	Date         string    `json:"date" example:"2026-03-02"`
	StartTime    string    `json:"start_time" example:"14:00"`
	EndTime      string    `json:"end_time" example:"16:00"`
	CallerName   string    `json:"caller_name" example:"Jane Smith"`
	CallerNumber string    `json:"caller_number,omitempty"`
	ServiceType  string    `json:"service_type,omitempty" example:"Consultation"`
	Address      string    `json:"address,omitempty"`
	City         string    `json:"city,omitempty"`
	State        string    `json:"state,omitempty"`
	Zip          string    `json:"zip,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	Source       string    `json:"source,omitempty" example:"ai"`
	Status       string    `json:"status,omitempty" example:"confirmed"`
	CreatedAt    time.Time `json:"created_at,omitempty"`
}

// TenantResponse mirrors a tenant row for the admin API.
type TenantResponse struct {
	ID                  string    `json:"id"`
	CompanyName         string    `json:"company_name"`
	AgentID             string    `json:"agent_id"`
	AppointmentDuration int       `json:"appointment_duration"`
	BufferTime          int       `json:"buffer_time"`
	Timezone            string    `json:"timezone"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// BusinessHoursResponse is one weekday row for the admin API.
type BusinessHoursResponse struct {
	DayOfWeek int    `json:"day_of_week"`
	DayName   string `json:"day_name"`
	IsOpen    bool   `json:"is_open"`
	OpenTime  string `json:"open_time,omitempty"`
	CloseTime string `json:"close_time,omitempty"`
}

// CallResponse is one call-log entry for the dashboard.
type CallResponse struct {
	ID                string    `json:"id"`
	CallID            string    `json:"call_id"`
	CallerName        string    `json:"caller_name"`
	CallerNumber      string    `json:"caller_number"`
	Summary           string    `json:"summary"`
	RecordingURL      string    `json:"recording_url,omitempty"`
	DurationSeconds   int       `json:"duration_seconds"`
	AppointmentBooked bool      `json:"appointment_booked"`
	CreatedAt         time.Time `json:"created_at"`
}

// CurrentDateResponse grounds the agent's relative-date reasoning.
// Readable is meant to be spoken; Date feeds tool parameters.
type CurrentDateResponse struct {
	Date      string `json:"date" example:"2026-08-31"`
	Readable  string `json:"readable" example:"Monday, August 31, 2026"`
	DayOfWeek string `json:"day_of_week" example:"Monday"`
	Month     string `json:"month" example:"August"`
	Day       int    `json:"day" example:"31"`
	Year      int    `json:"year" example:"2026"`
}
