package domain

import (
	"time"
)

const (
	AppointmentStatusConfirmed = "confirmed"
	AppointmentStatusCancelled = "cancelled"

	AppointmentSourceAI     = "ai"
	AppointmentSourceManual = "manual"
	AppointmentSourceCall   = "call"
)

// Appointment is one booking. Date is a plain calendar day and the times
// are tenant-local wall clock; the system never converts across zones.
// The unique index on (tenant_id, date, start_time) is the last line of
// defense against two agents committing the same slot concurrently.
type Appointment struct {
	ID           string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	TenantID     string    `gorm:"type:uuid;not null;uniqueIndex:idx_appointments_tenant_slot" json:"tenant_id"`
	CallerName   string    `gorm:"type:text;not null" json:"caller_name"`
	CallerNumber string    `gorm:"type:text" json:"caller_number"`
	Date         string    `gorm:"type:date;not null;uniqueIndex:idx_appointments_tenant_slot" json:"date"`
	StartTime    string    `gorm:"type:time;not null;uniqueIndex:idx_appointments_tenant_slot" json:"start_time"`
	EndTime      string    `gorm:"type:time" json:"end_time"`
	ServiceType  string    `gorm:"type:text" json:"service_type"`
	Address      string    `gorm:"type:text" json:"address"`
	City         string    `gorm:"type:text" json:"city"`
	State        string    `gorm:"type:text" json:"state"`
	Zip          string    `gorm:"type:text" json:"zip"`
	Notes        string    `gorm:"type:text" json:"notes"`
	Source       string    `gorm:"type:text;not null;default:'manual'" json:"source"`
	CallID       string    `gorm:"type:text" json:"call_id"`
	Status       string    `gorm:"type:text;not null;default:'confirmed'" json:"status"`
	CreatedAt    time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Appointment) TableName() string {
	return "appointments"
}
