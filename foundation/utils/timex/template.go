// File: template.go
// Title: Template Translation
// Description: Translates human-readable templates into strftime-style plans
//              and renders plans against parsed instants.
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
	"time"

	"github.com/lestrrat-go/strftime"
)

const (
	// NanoPlaceholder is replaced by the zero-padded fractional second
	NanoPlaceholder = "nnnnnnnnn"

	// UTCMarker requests UTC output with a trailing literal Z
	UTCMarker = "Z"

	// nanoDirective stands in for NanoPlaceholder in Plan.Pattern
	nanoDirective = "%N"

	zoneToken = "TZ"
)

// substitutions is applied in order; the order keeps earlier tokens from
// consuming characters of later ones.
var substitutions = []struct {
	token     string
	directive string
}{
	{"YYYY", "%Y"},
	{"MM", "%m"},
	{"DD", "%d"},
	{"HH", "%H"},
	{"MI", "%M"},
	{"SS", "%S"},
	{"offset", "%z"},
	{"TZ", "%Z"},
}

// supportedDirectives are the strftime verbs a plan hands to the formatter.
// Any other % sequence is escaped so it renders literally.
const supportedDirectives = "YmdHMSzZN%"

// nanoAppender renders the fractional second as nine digits
var nanoAppender = strftime.AppendFunc(func(b []byte, t time.Time) []byte {
	micros := t.Nanosecond() / 1000
	return fmt.Appendf(b, "%09d", micros*1000)
})

// Mode identifies which rendering branch a plan takes
type Mode int

const (
	// ModePlain formats the instant in its own offset
	ModePlain Mode = iota

	// ModeNanos splices nanoseconds into the output
	ModeNanos

	// ModeUTC converts to UTC and appends Z
	ModeUTC

	// ModeNanosUTC combines ModeNanos and ModeUTC
	ModeNanosUTC
)

// String returns the string representation of the mode
func (m Mode) String() string {
	switch m {
	case ModePlain:
		return "plain"
	case ModeNanos:
		return "nanos"
	case ModeUTC:
		return "utc"
	case ModeNanosUTC:
		return "nanos+utc"
	default:
		return "unknown"
	}
}

// Plan is the translated form of a template
type Plan struct {
	Template           string
	Pattern            string
	HasNanoPlaceholder bool
	HasUTCMarker       bool

	// aware renders instants with an offset, naive leaves %z and %Z empty
	aware *strftime.Strftime
	naive *strftime.Strftime
}

// Translate converts a template into a Plan. It never fails: text that is not
// a recognized token is kept as a literal.
func Translate(template string) Plan {
	plan := Plan{
		Template:     template,
		HasUTCMarker: hasUTCMarker(template),
	}

	body := template
	if plan.HasUTCMarker {
		body = stripUTCMarker(body)
	}

	chunks := strings.Split(body, NanoPlaceholder)
	plan.HasNanoPlaceholder = len(chunks) > 1

	patterns := make([]string, len(chunks))
	escaped := make([]string, len(chunks))
	for i, chunk := range chunks {
		patterns[i] = substitute(chunk)
		escaped[i] = escapePattern(patterns[i])
	}
	plan.Pattern = strings.Join(patterns, nanoDirective)

	layout := strings.Join(escaped, nanoDirective)
	plan.aware = mustCompile(layout,
		strftime.WithSpecification('N', nanoAppender),
	)
	plan.naive = mustCompile(layout,
		strftime.WithSpecification('N', nanoAppender),
		strftime.WithSpecification('z', strftime.Verbatim("")),
		strftime.WithSpecification('Z', strftime.Verbatim("")),
	)

	return plan
}

// Mode reports the rendering branch of the plan
func (p Plan) Mode() Mode {
	switch {
	case p.HasNanoPlaceholder && p.HasUTCMarker:
		return ModeNanosUTC
	case p.HasNanoPlaceholder:
		return ModeNanos
	case p.HasUTCMarker:
		return ModeUTC
	default:
		return ModePlain
	}
}

// Format renders the plan for inst
func (p Plan) Format(inst Instant) string {
	if p.HasUTCMarker {
		inst = Instant{Time: inst.Time.UTC()}
	}

	formatter := p.naive
	if inst.HasOffset {
		formatter = p.aware
	}
	if formatter == nil {
		// zero Plan
		return ""
	}

	out := formatter.FormatString(inst.Time)
	if p.HasUTCMarker {
		out += UTCMarker
	}
	return out
}

// String returns a short description of the plan
func (p Plan) String() string {
	return fmt.Sprintf("%q -> %q (%s)", p.Template, p.Pattern, p.Mode())
}

// hasUTCMarker reports whether template holds a Z outside of a TZ token
func hasUTCMarker(template string) bool {
	return strings.Contains(strings.ReplaceAll(template, zoneToken, ""), UTCMarker)
}

func stripUTCMarker(template string) string {
	parts := strings.Split(template, zoneToken)
	for i, part := range parts {
		parts[i] = strings.ReplaceAll(part, UTCMarker, "")
	}
	return strings.Join(parts, zoneToken)
}

func substitute(text string) string {
	for _, sub := range substitutions {
		text = strings.ReplaceAll(text, sub.token, sub.directive)
	}
	return text
}

// escapePattern doubles every % that does not start a supported directive,
// so %% stays a percent sign while unknown directives and a trailing %
// are printed as written.
func escapePattern(pattern string) string {
	var b strings.Builder
	b.Grow(len(pattern))

	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		if c != '%' {
			b.WriteByte(c)
			continue
		}
		if i+1 < len(pattern) && strings.IndexByte(supportedDirectives, pattern[i+1]) >= 0 {
			b.WriteByte('%')
			b.WriteByte(pattern[i+1])
			i++
			continue
		}
		b.WriteString("%%")
	}
	return b.String()
}

// mustCompile builds a formatter for an escaped layout. escapePattern only
// lets supported directives through, so compilation cannot fail.
func mustCompile(layout string, opts ...strftime.Option) *strftime.Strftime {
	f, err := strftime.New(layout, opts...)
	if err != nil {
		panic(fmt.Sprintf("timex: compiling %q: %v", layout, err))
	}
	return f
}
