package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGuessServiceType(t *testing.T) {
	tests := []struct {
		name     string
		explicit string
		issue    string
		summary  string
		expected string
	}{
		{
			name:     "explicit service type wins",
			explicit: "Drain Cleaning",
			issue:    "leaky faucet",
			summary:  "Caller asked about a consultation",
			expected: "Drain Cleaning",
		},
		{
			name:     "issue used when no explicit type",
			issue:    "leaky faucet",
			summary:  "Caller asked about a consultation",
			expected: "leaky faucet",
		},
		{
			name:     "consultation keyword in summary",
			summary:  "Caller scheduled a consultation for next week",
			expected: "Consultation",
		},
		{
			name:     "follow-up keyword in summary",
			summary:  "Booked a follow-up after last month's visit",
			expected: "Follow-up",
		},
		{
			name:     "initial keyword in summary",
			summary:  "Initial assessment of the property",
			expected: "Initial Visit",
		},
		{
			name:     "review keyword in summary",
			summary:  "Annual review of the service contract",
			expected: "Review",
		},
		{
			name:     "no signal falls back to general",
			summary:  "Caller asked about pricing",
			expected: "General",
		},
		{
			name:     "everything empty",
			expected: "General",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GuessServiceType(tt.explicit, tt.issue, tt.summary))
		})
	}
}
