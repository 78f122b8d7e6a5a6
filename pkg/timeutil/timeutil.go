package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// All scheduling math in this codebase runs on minutes since midnight
// (0-1439). Wall-clock strings only exist at the edges: Postgres TIME
// columns ("HH:MM:SS"), agent tool payloads ("HH:MM" or free-form), and
// spoken responses ("2:00 PM").

const MinutesPerDay = 24 * 60

var (
	reNoMinutes = regexp.MustCompile(`^(\d{1,2})\s*(AM|PM)$`)
	re12Hour    = regexp.MustCompile(`^(\d{1,2}):(\d{2})\s*(AM|PM)$`)
	re24Hour    = regexp.MustCompile(`^(\d{1,2}):(\d{2})`)
)

// ToMinutes parses "HH:MM" or "HH:MM:SS" into minutes since midnight.
// Seconds are ignored because Postgres TIME columns come back as HH:MM:SS.
func ToMinutes(timeStr string) (int, error) {
	parts := strings.Split(timeStr, ":")
	if len(parts) < 2 {
		return 0, fmt.Errorf("invalid time format, expected HH:MM, got %q", timeStr)
	}

	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid hour in %q: %w", timeStr, err)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid minute in %q: %w", timeStr, err)
	}

	if h < 0 || h > 23 {
		return 0, fmt.Errorf("hour out of range in %q", timeStr)
	}
	if m < 0 || m > 59 {
		return 0, fmt.Errorf("minute out of range in %q", timeStr)
	}

	return h*60 + m, nil
}

// FromMinutes formats minutes since midnight as zero-padded 24-hour "HH:MM".
func FromMinutes(mins int) (string, error) {
	if mins < 0 || mins >= MinutesPerDay {
		return "", fmt.Errorf("minutes out of range: %d", mins)
	}
	return fmt.Sprintf("%02d:%02d", mins/60, mins%60), nil
}

// Normalize accepts the time formats a voice agent actually produces and
// returns canonical 24-hour "HH:MM". Accepted: "10:00 AM", "2 PM",
// "2:00 PM", "14:00", "14:00:00", "noon", "midnight". The second return
// is false when the input cannot be parsed.
func Normalize(timeStr string) (string, bool) {
	cleaned := strings.TrimSpace(timeStr)
	upper := strings.ToUpper(cleaned)

	switch upper {
	case "NOON":
		return "12:00", true
	case "MIDNIGHT":
		return "00:00", true
	}

	// "2 PM", "10 AM" - no colon, no minutes. Common in agent output.
	if m := reNoMinutes.FindStringSubmatch(upper); m != nil {
		h, _ := strconv.Atoi(m[1])
		if h < 1 || h > 12 {
			return "", false
		}
		if m[2] == "AM" && h == 12 {
			h = 0
		}
		if m[2] == "PM" && h != 12 {
			h += 12
		}
		return fmt.Sprintf("%02d:00", h), true
	}

	// "2:00 PM", "10:30 AM"
	if m := re12Hour.FindStringSubmatch(upper); m != nil {
		h, _ := strconv.Atoi(m[1])
		mm, _ := strconv.Atoi(m[2])
		if h < 1 || h > 12 || mm > 59 {
			return "", false
		}
		if m[3] == "AM" && h == 12 {
			h = 0
		}
		if m[3] == "PM" && h != 12 {
			h += 12
		}
		return fmt.Sprintf("%02d:%s", h, m[2]), true
	}

	// "14:00", "14:00:00"
	if m := re24Hour.FindStringSubmatch(cleaned); m != nil {
		h, _ := strconv.Atoi(m[1])
		mm, _ := strconv.Atoi(m[2])
		if h > 23 || mm > 59 {
			return "", false
		}
		return fmt.Sprintf("%02d:%02d", h, mm), true
	}

	return "", false
}

// ToDisplay converts 24-hour "HH:MM" into the spoken "H:MM AM/PM" form
// used in agent-facing responses. Input is assumed canonical; malformed
// input is returned unchanged so a display bug never breaks a booking.
func ToDisplay(hhmm string) string {
	parts := strings.Split(hhmm, ":")
	if len(parts) < 2 {
		return hhmm
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return hhmm
	}

	period := "AM"
	if h >= 12 {
		period = "PM"
	}
	if h == 0 {
		h = 12
	} else if h > 12 {
		h -= 12
	}
	return fmt.Sprintf("%d:%s %s", h, parts[1], period)
}
