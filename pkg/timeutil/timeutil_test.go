package timeutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToMinutes(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{name: "midnight", input: "00:00", want: 0},
		{name: "morning", input: "09:30", want: 570},
		{name: "with seconds from postgres", input: "14:00:00", want: 840},
		{name: "end of day", input: "23:59", want: 1439},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "minute out of range", input: "10:60", wantErr: true},
		{name: "not a time", input: "abc", wantErr: true},
		{name: "non numeric hour", input: "aa:30", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToMinutes(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFromMinutes(t *testing.T) {
	got, err := FromMinutes(570)
	assert.NoError(t, err)
	assert.Equal(t, "09:30", got)

	got, err = FromMinutes(0)
	assert.NoError(t, err)
	assert.Equal(t, "00:00", got)

	_, err = FromMinutes(-1)
	assert.Error(t, err)

	_, err = FromMinutes(1440)
	assert.Error(t, err)
}

func TestFromMinutesRoundTrip(t *testing.T) {
	// FromMinutes(ToMinutes(s)) must reproduce every canonical HH:MM.
	for mins := 0; mins < MinutesPerDay; mins += 7 {
		s, err := FromMinutes(mins)
		assert.NoError(t, err)

		back, err := ToMinutes(s)
		assert.NoError(t, err)
		assert.Equal(t, mins, back)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
		ok    bool
	}{
		{input: "2 PM", want: "14:00", ok: true},
		{input: "2:00 PM", want: "14:00", ok: true},
		{input: "10:30 am", want: "10:30", ok: true},
		{input: "12 AM", want: "00:00", ok: true},
		{input: "12 PM", want: "12:00", ok: true},
		{input: "12:15 AM", want: "00:15", ok: true},
		{input: "14:00", want: "14:00", ok: true},
		{input: "14:00:00", want: "14:00", ok: true},
		{input: "9:05", want: "09:05", ok: true},
		{input: "noon", want: "12:00", ok: true},
		{input: "Midnight", want: "00:00", ok: true},
		{input: "  2 pm  ", want: "14:00", ok: true},
		{input: "25:00", want: "", ok: false},
		{input: "10:75", want: "", ok: false},
		{input: "2:75 PM", want: "", ok: false},
		{input: "sometime tomorrow", want: "", ok: false},
		{input: "", want: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := Normalize(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToDisplay(t *testing.T) {
	assert.Equal(t, "2:00 PM", ToDisplay("14:00"))
	assert.Equal(t, "12:00 AM", ToDisplay("00:00"))
	assert.Equal(t, "12:30 PM", ToDisplay("12:30"))
	assert.Equal(t, "9:05 AM", ToDisplay("09:05"))
	assert.Equal(t, "11:59 PM", ToDisplay("23:59"))
}

func TestNormalizeDisplayRoundTrip(t *testing.T) {
	normalized, ok := Normalize("2:00 PM")
	assert.True(t, ok)
	assert.Equal(t, "2:00 PM", ToDisplay(normalized))
}
