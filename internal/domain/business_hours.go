package domain

// BusinessHours is one row per (tenant, weekday). Weekday uses 0=Sunday,
// matching both time.Weekday and the stored schema. A missing row means
// the tenant is closed that day.
type BusinessHours struct {
	ID        string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	TenantID  string `gorm:"type:uuid;not null;uniqueIndex:idx_business_hours_tenant_day" json:"tenant_id"`
	DayOfWeek int    `gorm:"not null;uniqueIndex:idx_business_hours_tenant_day" json:"day_of_week"`
	IsOpen    bool   `gorm:"not null;default:false" json:"is_open"`
	OpenTime  string `gorm:"type:time" json:"open_time"`
	CloseTime string `gorm:"type:time" json:"close_time"`
}

func (BusinessHours) TableName() string {
	return "business_hours"
}

// DayHours is the resolved calendar answer for one tenant and date:
// either closed, or open between two minute-of-day bounds. DayName is
// carried for spoken messages ("We're not available on Saturdays").
type DayHours struct {
	IsOpen       bool
	OpenMinutes  int
	CloseMinutes int
	DayName      string
}

// DayNames maps weekday index (0=Sunday) to the name used in spoken
// closed-day messages.
var DayNames = []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
