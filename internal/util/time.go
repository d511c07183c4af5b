package util

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// ParseTimestamp interprets timeStr with format auto-detection. Values carrying
// no zone information are placed in loc; a nil loc means UTC.
func ParseTimestamp(timeStr string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	s := strings.TrimSpace(timeStr)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty time value")
	}

	t, err := dateparse.ParseIn(s, loc)
	if err == nil {
		return t, nil
	}
	// Epoch milliseconds that dateparse's length heuristics reject.
	if ms, convErr := strconv.ParseInt(s, 10, 64); convErr == nil {
		return time.UnixMilli(ms).In(loc), nil
	}
	return time.Time{}, fmt.Errorf("invalid time format %q: %w", timeStr, err)
}

// ParseTimeFlexible parses API query parameters: ISO 8601, epoch milliseconds,
// or anything ParseTimestamp understands. The result is in UTC.
func ParseTimeFlexible(timeStr string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, timeStr)
	if err == nil {
		return t.UTC(), nil
	}
	ms, err := strconv.ParseInt(timeStr, 10, 64)
	if err == nil {
		return time.UnixMilli(ms).UTC(), nil
	}
	t, err = ParseTimestamp(timeStr, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
