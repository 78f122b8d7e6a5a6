package domain

import (
	"time"
)

const (
	// DefaultAppointmentDuration is applied when a tenant row has no
	// explicit duration. Two-hour service windows are the product default.
	DefaultAppointmentDuration = 120
	DefaultBufferTime          = 0
)

// Tenant is one client business. AgentID is the external voice-agent
// identifier the vendor sends with every tool call and webhook; it is
// the only handle the agent surface has on a tenant.
type Tenant struct {
	ID                  string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	CompanyName         string    `gorm:"type:text;not null" json:"company_name"`
	AgentID             string    `gorm:"type:text;not null;uniqueIndex" json:"agent_id"`
	AppointmentDuration int       `gorm:"not null;default:120" json:"appointment_duration"`
	BufferTime          int       `gorm:"not null;default:0" json:"buffer_time"`
	Timezone            string    `gorm:"type:text;default:'America/New_York'" json:"timezone"`
	CreatedAt           time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt           time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Tenant) TableName() string {
	return "tenants"
}

// EffectiveDuration returns the appointment duration in minutes, falling
// back to the product default for rows created by external admin tooling
// with a zero value.
func (t *Tenant) EffectiveDuration() int {
	if t.AppointmentDuration <= 0 {
		return DefaultAppointmentDuration
	}
	return t.AppointmentDuration
}

// EffectiveBuffer returns the buffer padding in minutes, never negative.
func (t *Tenant) EffectiveBuffer() int {
	if t.BufferTime < 0 {
		return DefaultBufferTime
	}
	return t.BufferTime
}
