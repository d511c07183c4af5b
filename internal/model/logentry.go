package model

import (
	"strings"
	"time"
)

// LogRecord is one (timestamp, message) pair parsed from a single log line.
type LogRecord struct {
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"log"`
}

// LogTable holds records in file line order.
type LogTable []LogRecord

// Filter returns the records whose message contains substring, preserving order.
// Matching is a literal, case-sensitive containment test.
func (t LogTable) Filter(substring string) LogTable {
	out := make(LogTable, 0, len(t))
	for _, rec := range t {
		if strings.Contains(rec.Message, substring) {
			out = append(out, rec)
		}
	}
	return out
}

// Between returns the records with start <= timestamp <= end. A zero bound is open.
func (t LogTable) Between(start, end time.Time) LogTable {
	out := make(LogTable, 0, len(t))
	for _, rec := range t {
		if !start.IsZero() && rec.Timestamp.Before(start) {
			continue
		}
		if !end.IsZero() && rec.Timestamp.After(end) {
			continue
		}
		out = append(out, rec)
	}
	return out
}
