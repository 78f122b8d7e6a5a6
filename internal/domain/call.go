package domain

import (
	"time"
)

// CallRecord is one completed voice call as reported by the vendor's
// call-ended webhook. Stored for the dashboard call log; a call that
// collected appointment data also produces an Appointment row.
type CallRecord struct {
	ID                string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	TenantID          string    `gorm:"type:uuid" json:"tenant_id"`
	CallID            string    `gorm:"type:text;not null;uniqueIndex" json:"call_id"`
	AgentID           string    `gorm:"type:text" json:"agent_id"`
	CallerName        string    `gorm:"type:text" json:"caller_name"`
	CallerNumber      string    `gorm:"type:text" json:"caller_number"`
	Summary           string    `gorm:"type:text" json:"summary"`
	Transcript        string    `gorm:"type:text" json:"transcript"`
	RecordingURL      string    `gorm:"type:text" json:"recording_url"`
	DurationSeconds   int       `json:"duration_seconds"`
	AppointmentBooked bool      `gorm:"not null;default:false" json:"appointment_booked"`
	CreatedAt         time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (CallRecord) TableName() string {
	return "calls"
}
