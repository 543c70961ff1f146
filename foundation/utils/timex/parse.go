// File: parse.go
// Title: Timestamp Parsing
// Description: Parses ISO-8601 timestamps with or without a colon in the UTC
//              offset into Instants with a normalized location.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package timex

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// Layouts accepted by ParseTimestamp. Fractional seconds are accepted after
// the seconds field of any layout.
const (
	ISO8601          = "2006-01-02T15:04:05Z07:00"
	ISO8601Space     = "2006-01-02 15:04:05Z07:00"
	ISO8601Minutes   = "2006-01-02T15:04Z07:00"
	ISO8601DateTime  = "2006-01-02T15:04:05"
	BusinessDateTime = "2006-01-02 15:04:05"
	ISO8601Minute    = "2006-01-02T15:04"
	BusinessMinute   = "2006-01-02 15:04"
	ISO8601Hour      = "2006-01-02T15"
	ISO8601Date      = "2006-01-02"
)

var (
	offsetLayouts = []string{ISO8601, ISO8601Space, ISO8601Minutes}
	naiveLayouts  = []string{
		ISO8601DateTime,
		BusinessDateTime,
		ISO8601Minute,
		BusinessMinute,
		ISO8601Hour,
		ISO8601Date,
	}
)

var (
	locationCache = make(map[string]*time.Location)
	locationMu    sync.RWMutex
)

// Instant is a parsed timestamp. HasOffset is false for naive input, whose
// offset and zone directives render empty.
type Instant struct {
	Time      time.Time
	HasOffset bool
}

// ParseError reports a timestamp that matched no accepted layout
type ParseError struct {
	Input string
}

func (e *ParseError) Error() string {
	return "could not parse timestamp: " + e.Input
}

// ParseTimestamp parses ts, reading naive timestamps as UTC
func ParseTimestamp(ts string) (Instant, error) {
	return ParseTimestampIn(ts, time.UTC)
}

// ParseTimestampIn parses ts, reading naive timestamps in loc.
// An offset written as ±hhmm is retried as ±hh:mm.
func ParseTimestampIn(ts string, loc *time.Location) (Instant, error) {
	if loc == nil {
		loc = time.UTC
	}

	value := strings.TrimSpace(ts)
	if value == "" {
		return Instant{}, &ParseError{Input: ts}
	}

	if inst, ok := parseLayouts(value, loc); ok {
		return inst, nil
	}

	if withColon, ok := insertOffsetColon(value); ok {
		if inst, ok := parseLayouts(withColon, loc); ok {
			return inst, nil
		}
	}

	return Instant{}, &ParseError{Input: ts}
}

func parseLayouts(value string, loc *time.Location) (Instant, bool) {
	for _, layout := range offsetLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return Instant{Time: normalizeZone(t), HasOffset: true}, true
		}
	}

	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return Instant{Time: t}, true
		}
	}

	return Instant{}, false
}

// insertOffsetColon turns a trailing ±hhmm into ±hh:mm
func insertOffsetColon(value string) (string, bool) {
	n := len(value)
	if n < 5 {
		return "", false
	}

	sign := value[n-5]
	if sign != '+' && sign != '-' {
		return "", false
	}
	for i := n - 4; i < n; i++ {
		if value[i] < '0' || value[i] > '9' {
			return "", false
		}
	}

	return value[:n-2] + ":" + value[n-2:], true
}

// normalizeZone moves t into UTC or a fixed zone named after its offset so
// zone names never depend on the machine's local time zone.
func normalizeZone(t time.Time) time.Time {
	_, offset := t.Zone()
	if offset == 0 {
		return t.In(time.UTC)
	}
	return t.In(time.FixedZone(offsetName(offset), offset))
}

// offsetName renders an offset in seconds as UTC±hh:mm
func offsetName(offset int) string {
	sign := '+'
	if offset < 0 {
		sign = '-'
		offset = -offset
	}
	return fmt.Sprintf("UTC%c%02d:%02d", sign, offset/3600, offset%3600/60)
}

// LoadLocation returns the named location, caching successful lookups.
// "Local" and "" resolve to time.Local and time.UTC respectively.
func LoadLocation(name string) (*time.Location, error) {
	switch name {
	case "", "UTC":
		return time.UTC, nil
	case "Local":
		return time.Local, nil
	}

	locationMu.RLock()
	if loc, exists := locationCache[name]; exists {
		locationMu.RUnlock()
		return loc, nil
	}
	locationMu.RUnlock()

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, err
	}

	locationMu.Lock()
	locationCache[name] = loc
	locationMu.Unlock()

	return loc, nil
}
