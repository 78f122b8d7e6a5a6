package service

import "errors"

var (
	// Tenant errors
	ErrTenantNotFound = errors.New("tenant not found")
	ErrAgentExists    = errors.New("agent_id already registered")

	// Agent surface errors. ErrUnknownAgent is non-retryable for the
	// caller: the agent id is simply not provisioned.
	ErrUnknownAgent     = errors.New("unknown agent_id")
	ErrUnparseableTime  = errors.New("cannot parse time")
	ErrInvalidDate      = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidDayOfWeek = errors.New("day_of_week must be between 0 and 6")
	ErrInvalidHours     = errors.New("open_time must be before close_time")
)
