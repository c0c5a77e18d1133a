package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
)

// DateTimeLayout is the wall-clock layout accepted on the command line.
const DateTimeLayout = "2006-01-02 15:04"

// ParseDateTime parses "YYYY-MM-DD HH:MM" in loc, or an RFC 3339 timestamp.
func ParseDateTime(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.ParseInLocation(DateTimeLayout, s, loc); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q, use YYYY-MM-DD HH:MM or RFC 3339", s)
	}
	return t, nil
}

// ParseID parses a task or sprint ID argument.
func ParseID(kind, s string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s ID %q: %w", kind, s, err)
	}
	return id, nil
}

// FormatPriority renders a rank with thousands separators.
func FormatPriority(p *int64) string {
	if p == nil {
		return "unranked"
	}
	return humanize.Comma(*p)
}

// FormatHours renders an hour count without trailing zeros.
func FormatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64) + "h"
}
