package dto

// CheckAvailabilityRequest is the voice-agent availability probe. Time is
// free form: the agent forwards whatever the caller said ("2 PM", "noon").
// AgentID may instead arrive as a query parameter so it can be hardcoded
// in the vendor tool URL.
type CheckAvailabilityRequest struct {
	Date    string `json:"date" binding:"required" example:"2026-03-02"`
	Time    string `json:"time" binding:"required" example:"10:00 AM"`
	AgentID string `json:"agent_id" example:"agent_7f3c2a"`
}

// BookAppointmentRequest is the flattened booking request the committer
// consumes. CallerName, Date and StartTime are required; everything else
// is optional detail the agent may have collected.
type BookAppointmentRequest struct {
	CallerName   string `json:"caller_name" example:"Jane Smith"`
	CallerNumber string `json:"caller_number" example:"+15550100"`
	Date         string `json:"date" example:"2026-03-02"`
	StartTime    string `json:"start_time" example:"14:00"`
	ServiceType  string `json:"service_type" example:"Consultation"`
	Address      string `json:"address" example:"12 Oak St"`
	City         string `json:"city" example:"Springfield"`
	State        string `json:"state" example:"IL"`
	Zip          string `json:"zip" example:"62704"`
	Notes        string `json:"notes"`
	AgentID      string `json:"agent_id" example:"agent_7f3c2a"`
	CallID       string `json:"call_id" example:"call_91b6d0"`
}

// ToolCallInfo is the call object the vendor attaches to tool invocations.
type ToolCallInfo struct {
	AgentID    string `json:"agent_id"`
	CallID     string `json:"call_id"`
	FromNumber string `json:"from_number"`
}

// BookAppointmentEnvelope is the wire shape of the vendor's booking tool
// call: the collected arguments plus call metadata.
type BookAppointmentEnvelope struct {
	Args BookAppointmentRequest `json:"args"`
	Call *ToolCallInfo          `json:"call"`
}

// Flatten merges call metadata into the argument set. Explicit arguments
// win; the call object only fills gaps.
func (e *BookAppointmentEnvelope) Flatten() BookAppointmentRequest {
	req := e.Args
	if e.Call != nil {
		if req.AgentID == "" {
			req.AgentID = e.Call.AgentID
		}
		if req.CallID == "" {
			req.CallID = e.Call.CallID
		}
		if req.CallerNumber == "" {
			req.CallerNumber = e.Call.FromNumber
		}
	}
	return req
}

// CreateTenantRequest registers a client business and its voice agent.
type CreateTenantRequest struct {
	CompanyName         string `json:"company_name" binding:"required" example:"Springfield Plumbing"`
	AgentID             string `json:"agent_id" binding:"required" example:"agent_7f3c2a"`
	AppointmentDuration int    `json:"appointment_duration" example:"120"`
	BufferTime          int    `json:"buffer_time" example:"0"`
	Timezone            string `json:"timezone" example:"America/Chicago"`
}

// UpdateTenantRequest mutates the schedulable settings of a tenant.
type UpdateTenantRequest struct {
	CompanyName         *string `json:"company_name"`
	AppointmentDuration *int    `json:"appointment_duration"`
	BufferTime          *int    `json:"buffer_time"`
	Timezone            *string `json:"timezone"`
}

// BusinessHoursDay is one weekday's hours in a SetBusinessHoursRequest.
type BusinessHoursDay struct {
	DayOfWeek int    `json:"day_of_week" binding:"min=0,max=6" example:"1"`
	IsOpen    bool   `json:"is_open" example:"true"`
	OpenTime  string `json:"open_time" example:"09:00"`
	CloseTime string `json:"close_time" example:"17:00"`
}

// SetBusinessHoursRequest replaces the listed weekdays' hours for a tenant.
type SetBusinessHoursRequest struct {
	Days []BusinessHoursDay `json:"days" binding:"required,dive"`
}

// CallWebhookPayload is the vendor's call-ended webhook body, reduced to
// the fields this system consumes.
type CallWebhookPayload struct {
	Call *WebhookCall `json:"call"`
}

type WebhookCall struct {
	CallID       string               `json:"call_id"`
	AgentID      string               `json:"agent_id"`
	FromNumber   string               `json:"from_number"`
	Transcript   string               `json:"transcript"`
	RecordingURL string               `json:"recording_url"`
	CallDuration int                  `json:"call_duration"`
	CallAnalysis *WebhookCallAnalysis `json:"call_analysis"`
}

type WebhookCallAnalysis struct {
	CallSummary        string             `json:"call_summary"`
	CallSuccessful     bool               `json:"call_successful"`
	CustomAnalysisData CustomAnalysisData `json:"custom_analysis_data"`
}

// CustomAnalysisData is the structured slot the vendor's post-call
// analysis fills in when the caller agreed to an appointment.
type CustomAnalysisData struct {
	CallerName         string `json:"caller_name"`
	CallerPhoneNumber  string `json:"caller_phone_number"`
	AppointmentDate    string `json:"appointment_date"`
	AppointmentTime    string `json:"appointment_time"`
	AppointmentAddress string `json:"appointment_address"`
	AppointmentCity    string `json:"appointment_city"`
	AppointmentState   string `json:"appointment_state"`
	AppointmentZip     string `json:"appointment_zip"`
	ServiceType        string `json:"service_type"`
	Issue              string `json:"issue"`
}
