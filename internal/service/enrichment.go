package service

import "strings"

// GuessServiceType derives a display label for an appointment when the
// call analysis did not provide one outright. Best effort only: it feeds
// a dashboard column and must never block or fail a booking.
func GuessServiceType(explicit, issue, summary string) string {
	if explicit != "" {
		return explicit
	}
	if issue != "" {
		return issue
	}

	lower := strings.ToLower(summary)
	switch {
	case strings.Contains(lower, "consultation"):
		return "Consultation"
	case strings.Contains(lower, "follow-up"):
		return "Follow-up"
	case strings.Contains(lower, "initial"):
		return "Initial Visit"
	case strings.Contains(lower, "review"):
		return "Review"
	}
	return "General"
}
