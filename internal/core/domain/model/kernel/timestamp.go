package kernel

import (
	"strconv"
	"strings"
	"time"
)

// instantLayouts are the primary timestamp layouts tried in order before the
// legacy locale-formatted fallback. Records written by the current intake
// path always carry RFC 3339 timestamps.
var instantLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// NormalizeInstant parses a heterogeneous timestamp representation into a
// comparable instant. It is a total function: it never fails.
//
// Parsing is attempted in two stages. First the standard layouts (RFC 3339
// and friends); then a legacy locale-formatted shape, "DD/MM/YYYY" with an
// optional ", HH:MM:SS" time component, which historical records carry.
// If both stages fail - or the input is empty - the given now is returned.
//
// The second return value reports whether the input was actually parsed.
// A false value means the fallback fired and the caller is seeing a lossy
// approximation: a record with a corrupted date will be treated as current.
// Callers may surface a warning, but must not change the returned instant.
func NormalizeInstant(raw string, now time.Time) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return now, false
	}

	for _, layout := range instantLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}

	if t, ok := parseLegacyInstant(raw); ok {
		return t, true
	}

	return now, false
}

// parseLegacyInstant parses the "DD/MM/YYYY, HH:MM:SS" shape produced by the
// locale formatting of earlier releases. The time component is optional.
func parseLegacyInstant(raw string) (time.Time, bool) {
	datePart := raw
	timePart := ""
	if i := strings.Index(raw, ","); i >= 0 {
		datePart = strings.TrimSpace(raw[:i])
		timePart = strings.TrimSpace(raw[i+1:])
	}

	fields := strings.Split(datePart, "/")
	if len(fields) < 3 {
		return time.Time{}, false
	}

	day, dayErr := strconv.Atoi(strings.TrimSpace(fields[0]))
	month, monthErr := strconv.Atoi(strings.TrimSpace(fields[1]))
	year, yearErr := strconv.Atoi(strings.TrimSpace(fields[2]))
	if dayErr != nil || monthErr != nil || yearErr != nil {
		return time.Time{}, false
	}

	if day < 1 || day > 31 || month < 1 || month > 12 || year < 1 {
		return time.Time{}, false
	}

	var hours, minutes, seconds int
	if timePart != "" {
		clock := strings.Split(timePart, ":")
		if len(clock) < 2 {
			return time.Time{}, false
		}

		var err error
		if hours, err = strconv.Atoi(strings.TrimSpace(clock[0])); err != nil {
			return time.Time{}, false
		}
		if minutes, err = strconv.Atoi(strings.TrimSpace(clock[1])); err != nil {
			return time.Time{}, false
		}
		if len(clock) >= 3 {
			if seconds, err = strconv.Atoi(strings.TrimSpace(clock[2])); err != nil {
				return time.Time{}, false
			}
		}
	}

	return time.Date(year, time.Month(month), day, hours, minutes, seconds, 0, time.Local), true
}
