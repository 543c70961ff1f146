// File: convert.go
// Title: Timestamp Conversion
// Description: Converter dispatching between named formats (epoch_ms, epoch_sec
//              and registered ones), presets and plain templates.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package timex

import (
	"strconv"
	"time"

	"github.com/dustin/go-humanize"

	hferror "github.com/msto63/humanfmt/foundation/core/error"
	"github.com/msto63/humanfmt/foundation/utils/mapx"
)

// Built-in named formats
const (
	FormatEpochMillis  = "epoch_ms"
	FormatEpochSeconds = "epoch_sec"
)

// FormatRelative is the conventional name for RelativeFormat. It is not
// registered by NewConverter.
const FormatRelative = "relative"

// NamedFormat renders an instant without going through the template language
type NamedFormat func(Instant) string

// Converter converts timestamps to target formats. It is immutable after
// construction and safe for concurrent use.
type Converter struct {
	location *time.Location
	named    map[string]NamedFormat
	presets  map[string]Plan
	plans    PlanCache
}

// PlanCache stores translated templates by their source text. It must be
// safe for concurrent use.
type PlanCache interface {
	Get(template string) (Plan, bool)
	Set(template string, plan Plan)
}

// Option configures a Converter
type Option func(*Converter)

// WithLocation sets the location naive timestamps are read in
func WithLocation(loc *time.Location) Option {
	return func(c *Converter) {
		if loc != nil {
			c.location = loc
		}
	}
}

// WithNamedFormat registers a named format. Named formats are checked before
// presets and templates; registering epoch_ms or epoch_sec replaces the built-in.
func WithNamedFormat(name string, fn NamedFormat) Option {
	return func(c *Converter) {
		if name != "" && fn != nil {
			c.named[name] = fn
		}
	}
}

// WithPreset registers name as an alias for template
func WithPreset(name, template string) Option {
	return func(c *Converter) {
		if name != "" {
			c.presets[name] = Translate(template)
		}
	}
}

// WithPresets registers every name/template pair of presets
func WithPresets(presets map[string]string) Option {
	return func(c *Converter) {
		for name, template := range presets {
			WithPreset(name, template)(c)
		}
	}
}

// WithPlanCache makes the converter reuse translated templates from cache
func WithPlanCache(cache PlanCache) Option {
	return func(c *Converter) {
		c.plans = cache
	}
}

// NewConverter creates a Converter with the built-in named formats
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		location: time.UTC,
		named: map[string]NamedFormat{
			FormatEpochMillis:  formatEpochMillis,
			FormatEpochSeconds: formatEpochSeconds,
		},
		presets: make(map[string]Plan),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

var defaultConverter = NewConverter()

// ConvertTimestampFormat converts ts to target using the default converter.
// target is epoch_ms, epoch_sec or a template.
func ConvertTimestampFormat(ts, target string) (string, error) {
	return defaultConverter.Convert(ts, target)
}

// Convert parses ts and renders it in target
func (c *Converter) Convert(ts, target string) (string, error) {
	inst, err := c.Parse(ts)
	if err != nil {
		return "", hferror.Wrap(err, "error converting timestamp").
			WithCode(hferror.CodeTimestampParse).
			WithOperation("timex.Convert").
			WithDetail("timestamp", ts).
			WithDetail("format", target)
	}

	return c.Format(inst, target), nil
}

// Parse parses ts, reading naive timestamps in the converter's location
func (c *Converter) Parse(ts string) (Instant, error) {
	return ParseTimestampIn(ts, c.location)
}

// Format renders inst in target: a named format, a preset or a template
func (c *Converter) Format(inst Instant, target string) string {
	if fn, ok := c.named[target]; ok {
		return fn(inst)
	}
	return c.Plan(target).Format(inst)
}

// Plan returns the plan for target, resolving presets
func (c *Converter) Plan(target string) Plan {
	if plan, ok := c.presets[target]; ok {
		return plan
	}
	if c.plans == nil {
		return Translate(target)
	}

	if plan, ok := c.plans.Get(target); ok {
		return plan
	}
	plan := Translate(target)
	c.plans.Set(target, plan)
	return plan
}

// IsNamed reports whether target is a registered named format
func (c *Converter) IsNamed(target string) bool {
	_, ok := c.named[target]
	return ok
}

// Names returns the registered named formats in sorted order
func (c *Converter) Names() []string {
	return mapx.SortedKeys(c.named)
}

// Presets returns a copy of the registered presets as name -> template
func (c *Converter) Presets() map[string]string {
	return mapx.Transform(c.presets, func(plan Plan) string { return plan.Template })
}

// Location returns the location naive timestamps are read in
func (c *Converter) Location() *time.Location {
	return c.location
}

// EpochSeconds returns whole seconds since the Unix epoch, truncated toward zero
func EpochSeconds(t time.Time) int64 {
	sec := t.Unix()
	if sec < 0 && t.Nanosecond() != 0 {
		sec++
	}
	return sec
}

// EpochMillis returns whole milliseconds since the Unix epoch, truncated toward zero
func EpochMillis(t time.Time) int64 {
	ms := t.UnixMilli()
	if ms < 0 && t.Nanosecond()%int(time.Millisecond) != 0 {
		ms++
	}
	return ms
}

func formatEpochMillis(inst Instant) string {
	return strconv.FormatInt(EpochMillis(inst.Time), 10)
}

func formatEpochSeconds(inst Instant) string {
	return strconv.FormatInt(EpochSeconds(inst.Time), 10)
}

// RelativeFormat returns a named format rendering an instant relative to
// now(), such as "3 days ago" or "2 hours from now"
func RelativeFormat(now func() time.Time) NamedFormat {
	return func(inst Instant) string {
		return humanize.RelTime(inst.Time, now(), "ago", "from now")
	}
}
