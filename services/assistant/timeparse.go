package assistant

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ClockTime is a clock reading extracted from free text: a zero-padded
// 24-hour string plus a 12-hour display label.
type ClockTime struct {
	Time24 string // "15:00"
	Label  string // "3:00 PM"
}

var clockPattern = regexp.MustCompile(`(\d{1,2})(?::(\d{2}))?\s*(am|pm)?`)

// ParseClockTime extracts an hour/minute from free text. It recognizes "3",
// "3pm", "10:30 am", "22:15" and similar fragments. Without an am/pm suffix
// the hour is taken literally, so 24-hour input works. Returns false when no
// digit is present or the hour/minute is out of range.
func ParseClockTime(text string) (ClockTime, bool) {
	m := clockPattern.FindStringSubmatch(strings.ToLower(text))
	if m == nil || m[1] == "" {
		return ClockTime{}, false
	}

	hour, _ := strconv.Atoi(m[1])
	minute := 0
	if m[2] != "" {
		minute, _ = strconv.Atoi(m[2])
	}

	switch m[3] {
	case "pm":
		if hour < 12 {
			hour += 12
		}
	case "am":
		if hour == 12 {
			hour = 0
		}
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return ClockTime{}, false
	}

	return ClockTime{
		Time24: fmt.Sprintf("%02d:%02d", hour, minute),
		Label:  formatLabel(hour, minute),
	}, true
}

func formatLabel(hour, minute int) string {
	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	h12 := ((hour + 11) % 12) + 1
	return fmt.Sprintf("%d:%02d %s", h12, minute, suffix)
}
