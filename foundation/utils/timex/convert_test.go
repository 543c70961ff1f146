// File: convert_test.go
// Title: Timestamp Conversion Tests
// Description: Tests for ConvertTimestampFormat, named formats, presets, epoch
//              truncation and error wrapping.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial test implementation

package timex

import (
	"errors"
	"reflect"
	"sync"
	"testing"
	"time"

	hferror "github.com/msto63/humanfmt/foundation/core/error"
)

func TestConvertTimestampFormat(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		format   string
		expected string
	}{
		{"ISO with offset", "2025-11-01T00:00:00-08:00", "YYYY-MM-DDTHH:MI:SSoffset", "2025-11-01T00:00:00-0800"},
		{"ISO with offset second input", "2025-11-07T10:49:44-08:00", "YYYY-MM-DDTHH:MI:SSoffset", "2025-11-07T10:49:44-0800"},
		{"Date only", "2025-11-01T00:00:00-08:00", "YYYY-MM-DD", "2025-11-01"},
		{"Time only", "2025-11-07T10:49:44-08:00", "HH:MI:SS", "10:49:44"},
		{"ISO without zone", "2025-11-01T00:00:00-08:00", "YYYY-MM-DDTHH:MI:SS", "2025-11-01T00:00:00"},
		{"Epoch millis", "2025-11-01T00:00:00-08:00", "epoch_ms", "1761984000000"},
		{"Epoch seconds", "2025-11-01T00:00:00-08:00", "epoch_sec", "1761984000"},
		{"Epoch seconds second input", "2025-11-07T10:49:44-08:00", "epoch_sec", "1762541384"},
		{"Epoch millis keeps milliseconds", "2025-11-01T08:00:00.123999Z", "epoch_ms", "1761984000123"},
		{"Nanos with UTC", "2025-11-01T00:00:00-08:00", "YYYY-MM-DDTHH:MI:SS.nnnnnnnnnZ", "2025-11-01T08:00:00.000000000Z"},
		{"Nanos from micros", "2025-11-07T21:09:16.015204Z", "YYYY-MM-DDTHH:MI:SS.nnnnnnnnnZ", "2025-11-07T21:09:16.015204000Z"},
		{"Nanos keep offset", "2025-11-07T10:49:44.5-08:00", "HH:MI:SS.nnnnnnnnnoffset", "10:49:44.500000000-0800"},
		{"UTC without nanos", "2025-11-01T00:00:00-08:00", "YYYY-MM-DDTHH:MI:SSZ", "2025-11-01T08:00:00Z"},
		{"UTC across date line", "2025-11-01T20:00:00-08:00", "YYYY-MM-DDZ", "2025-11-02Z"},
		{"Zone abbreviation", "2025-11-01T00:00:00-08:00", "HH:MI TZ", "00:00 UTC-08:00"},
		{"Zone abbreviation UTC", "2025-11-01T00:00:00Z", "HH:MI TZ", "00:00 UTC"},
		{"Unknown text passes through", "2025-11-01T00:00:00-08:00", "Q4 report YYYY", "Q4 report 2025"},
		{"Unknown named format is a template", "2025-11-01T00:00:00-08:00", "epoch_us", "epoch_us"},
		{"Naive offset renders empty", "2025-11-01T10:00:00", "HH:MIoffset", "10:00"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ConvertTimestampFormat(tc.input, tc.format)
			if err != nil {
				t.Fatalf("ConvertTimestampFormat(%q, %q) unexpected error: %v", tc.input, tc.format, err)
			}
			if got != tc.expected {
				t.Errorf("ConvertTimestampFormat(%q, %q) = %q, want %q", tc.input, tc.format, got, tc.expected)
			}
		})
	}
}

func TestConvertColonlessOffsetMatchesColonForm(t *testing.T) {
	formats := []string{"YYYY-MM-DD", "YYYY-MM-DDTHH:MI:SSoffset", "epoch_ms", "HH:MI:SS.nnnnnnnnnZ", "TZ"}

	for _, format := range formats {
		t.Run(format, func(t *testing.T) {
			withColon, err := ConvertTimestampFormat("2025-11-01T00:00:00-08:00", format)
			if err != nil {
				t.Fatalf("colon form error: %v", err)
			}
			withoutColon, err := ConvertTimestampFormat("2025-11-01T00:00:00-0800", format)
			if err != nil {
				t.Fatalf("colonless form error: %v", err)
			}
			if withColon != withoutColon {
				t.Errorf("colon form %q != colonless form %q", withColon, withoutColon)
			}
		})
	}
}

func TestConvertRoundTrip(t *testing.T) {
	inputs := []string{
		"2025-11-01T00:00:00-08:00",
		"2025-11-07T10:49:44-08:00",
		"2024-02-29T23:59:59+05:30",
		"1999-12-31T23:59:59Z",
		"1969-07-20T20:17:40-0400",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			original, err := ParseTimestamp(input)
			if err != nil {
				t.Fatalf("ParseTimestamp(%q) unexpected error: %v", input, err)
			}

			formatted, err := ConvertTimestampFormat(input, "YYYY-MM-DDTHH:MI:SSoffset")
			if err != nil {
				t.Fatalf("ConvertTimestampFormat(%q) unexpected error: %v", input, err)
			}

			reparsed, err := ParseTimestamp(formatted)
			if err != nil {
				t.Fatalf("ParseTimestamp(%q) unexpected error: %v", formatted, err)
			}
			if !reparsed.Time.Equal(original.Time) {
				t.Errorf("round trip %q -> %q -> %v, want %v", input, formatted, reparsed.Time, original.Time)
			}
		})
	}
}

func TestConvertParseError(t *testing.T) {
	_, err := ConvertTimestampFormat("garbage", "YYYY-MM-DD")
	if err == nil {
		t.Fatal("ConvertTimestampFormat(garbage) expected error")
	}

	if got, want := err.Error(), "error converting timestamp: could not parse timestamp: garbage"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	var parseErr *ParseError
	if !errors.As(err, &parseErr) || parseErr.Input != "garbage" {
		t.Errorf("errors.As(*ParseError) failed or echoed wrong input: %v", parseErr)
	}

	if !hferror.HasCode(err, hferror.CodeTimestampParse) {
		t.Errorf("error code = %v, want %v", hferror.GetCode(err), hferror.CodeTimestampParse)
	}
	if hferror.GetSeverity(err) != hferror.SeverityLow {
		t.Errorf("severity = %v, want low", hferror.GetSeverity(err))
	}

	var hfErr *hferror.Error
	if !errors.As(err, &hfErr) {
		t.Fatal("error is not a foundation error")
	}
	details := hfErr.Details()
	if details["timestamp"] != "garbage" || details["format"] != "YYYY-MM-DD" {
		t.Errorf("Details() = %v", details)
	}
}

func TestEpochTruncatesTowardZero(t *testing.T) {
	testCases := []struct {
		input  string
		millis int64
		secs   int64
	}{
		{"1970-01-01T00:00:00Z", 0, 0},
		{"1970-01-01T00:00:01.9999Z", 1999, 1},
		{"1969-12-31T23:59:59.5Z", -500, 0},
		{"1969-12-31T23:59:59.9995Z", 0, 0},
		{"1969-12-31T23:59:58Z", -2000, -2},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			inst, err := ParseTimestamp(tc.input)
			if err != nil {
				t.Fatalf("ParseTimestamp(%q) unexpected error: %v", tc.input, err)
			}
			if got := EpochMillis(inst.Time); got != tc.millis {
				t.Errorf("EpochMillis() = %d, want %d", got, tc.millis)
			}
			if got := EpochSeconds(inst.Time); got != tc.secs {
				t.Errorf("EpochSeconds() = %d, want %d", got, tc.secs)
			}
		})
	}
}

func TestConverterOptions(t *testing.T) {
	cet := time.FixedZone("CET", 3600)
	conv := NewConverter(
		WithLocation(cet),
		WithPreset("date", "YYYY-MM-DD"),
		WithPresets(map[string]string{"iso_utc": "YYYY-MM-DDTHH:MI:SSZ"}),
		WithNamedFormat("rfc1123", func(inst Instant) string {
			return inst.Time.Format(time.RFC1123Z)
		}),
		WithNamedFormat("", nil),
	)

	testCases := []struct {
		name     string
		input    string
		format   string
		expected string
	}{
		{"Preset", "2025-11-01T00:00:00-08:00", "date", "2025-11-01"},
		{"Preset from map", "2025-11-01T00:00:00-08:00", "iso_utc", "2025-11-01T08:00:00Z"},
		{"Named format", "2025-11-01T00:00:00-08:00", "rfc1123", "Sat, 01 Nov 2025 00:00:00 -0800"},
		{"Naive read in location", "2025-11-01T09:00:00", "epoch_sec", "1761984000"},
		{"Naive converted to UTC", "2025-11-01T09:00:00", "HH:MIZ", "08:00Z"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := conv.Convert(tc.input, tc.format)
			if err != nil {
				t.Fatalf("Convert(%q, %q) unexpected error: %v", tc.input, tc.format, err)
			}
			if got != tc.expected {
				t.Errorf("Convert(%q, %q) = %q, want %q", tc.input, tc.format, got, tc.expected)
			}
		})
	}

	if got, want := conv.Names(), []string{"epoch_ms", "epoch_sec", "rfc1123"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
	if got := conv.Presets(); got["date"] != "YYYY-MM-DD" || got["iso_utc"] != "YYYY-MM-DDTHH:MI:SSZ" {
		t.Errorf("Presets() = %v", got)
	}
	if !conv.IsNamed("epoch_ms") || conv.IsNamed("date") {
		t.Error("IsNamed() should only report named formats")
	}
	if conv.Location() != cet {
		t.Errorf("Location() = %v, want CET", conv.Location())
	}
	if plan := conv.Plan("date"); plan.Pattern != "%Y-%m-%d" {
		t.Errorf("Plan(date).Pattern = %q", plan.Pattern)
	}
}

func TestNamedFormatsWinOverPresets(t *testing.T) {
	conv := NewConverter(WithPreset("epoch_ms", "YYYY"))

	got, err := conv.Convert("2025-11-01T00:00:00-08:00", "epoch_ms")
	if err != nil {
		t.Fatalf("Convert() unexpected error: %v", err)
	}
	if got != "1761984000000" {
		t.Errorf("Convert() = %q, want epoch millis", got)
	}
}

func TestConverterConcurrentUse(t *testing.T) {
	conv := NewConverter(WithPreset("date", "YYYY-MM-DD"))

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := conv.Convert("2025-11-01T00:00:00-08:00", "date")
			if err != nil {
				errs <- err
				return
			}
			if got != "2025-11-01" {
				errs <- errors.New("unexpected result " + got)
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}

type countingCache struct {
	mu    sync.Mutex
	plans map[string]Plan
	gets  int
	sets  int
}

func (c *countingCache) Get(template string) (Plan, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	plan, ok := c.plans[template]
	return plan, ok
}

func (c *countingCache) Set(template string, plan Plan) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sets++
	c.plans[template] = plan
}

func TestConverterPlanCache(t *testing.T) {
	cache := &countingCache{plans: make(map[string]Plan)}
	conv := NewConverter(WithPlanCache(cache), WithPreset("date", "YYYY-MM-DD"))

	for i := 0; i < 3; i++ {
		got, err := conv.Convert("2024-01-15T10:30:45Z", "DD.MM.YYYY")
		if err != nil || got != "15.01.2024" {
			t.Fatalf("Convert() = %q, %v", got, err)
		}
	}
	if cache.sets != 1 || cache.gets != 3 {
		t.Errorf("cache gets/sets = %d/%d, want 3/1", cache.gets, cache.sets)
	}

	// presets and named formats bypass the cache
	_, _ = conv.Convert("2024-01-15T10:30:45Z", "date")
	_, _ = conv.Convert("2024-01-15T10:30:45Z", FormatEpochMillis)
	if cache.gets != 3 {
		t.Errorf("cache gets = %d, want 3", cache.gets)
	}
}

func TestRelativeFormat(t *testing.T) {
	now := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	conv := NewConverter(WithNamedFormat(FormatRelative, RelativeFormat(func() time.Time { return now })))

	testCases := []struct {
		ts       string
		expected string
	}{
		{"2024-01-12T12:00:00Z", "3 days ago"},
		{"2024-01-15T14:00:00+00:00", "2 hours from now"},
		{"2024-01-15T04:00:00-08:00", "now"},
	}

	for _, tc := range testCases {
		t.Run(tc.ts, func(t *testing.T) {
			got, err := conv.Convert(tc.ts, FormatRelative)
			if err != nil {
				t.Fatalf("Convert() error = %v", err)
			}
			if got != tc.expected {
				t.Errorf("Convert(%q, relative) = %q, want %q", tc.ts, got, tc.expected)
			}
		})
	}

	if NewConverter().IsNamed(FormatRelative) {
		t.Error("relative should not be registered by default")
	}
}

func BenchmarkConvertTimestampFormat(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = ConvertTimestampFormat("2025-11-07T10:49:44-0800", "YYYY-MM-DDTHH:MI:SS.nnnnnnnnnZ")
	}
}
