package chartsdk

import (
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"time"
)

// SpecialFormatData detects placeholder and missing values before any date
// math. ok=false means the value is an ordinary input.
func SpecialFormatData(value any, opts *FormattingOptions) (string, bool) {
	labels := opts.labels()

	if s, isString := value.(string); isString {
		if matchesLabel(s, labels.NullValuePlaceholderLabel) ||
			matchesLabel(s, labels.EmptyValuePlaceholderLabel) ||
			matchesLabel(s, labels.OtherValuePlaceholderLabel) {
			return s, true
		}
	}

	if isNil(value) {
		return labels.NullValuePlaceholderLabel, true
	}

	s, isString := value.(string)
	if !isString {
		return "", false
	}
	if matchesLabel(s, opts.constants().SpecialValueUnavailable) {
		return labels.UnavailableColumnSampleValue, true
	}
	if s == "" {
		return labels.EmptyValuePlaceholderLabel, true
	}
	return "", false
}

// matchesLabel compares against a configured label, unset labels never match.
func matchesLabel(value, label string) bool {
	return label != "" && value == label
}

func isNil(value any) bool {
	if value == nil {
		return true
	}
	switch v := value.(type) {
	case *string:
		return v == nil
	case *int:
		return v == nil
	case *int64:
		return v == nil
	case *float64:
		return v == nil
	case *time.Time:
		return v == nil
	}
	return false
}

type sanitizedKind int

const (
	sanitizedSpecial sanitizedKind = iota
	sanitizedEpoch
	sanitizedInvalid
	sanitizedUnsupported
)

// sanitizedDate is the normalized form of a formatDate input.
type sanitizedDate struct {
	kind    sanitizedKind
	epoch   float64 // seconds
	special string
}

// SanitizeDate normalizes an input to epoch seconds. ok=false means the value
// was a special value (returned as the string), or could not be parsed, in
// which case the string is InvalidDate.
func SanitizeDate(input any, format string, opts *FormattingOptions) (float64, string, bool) {
	res := sanitizeDate(input, format, opts)
	switch res.kind {
	case sanitizedEpoch:
		return res.epoch, "", true
	case sanitizedSpecial:
		return 0, res.special, false
	case sanitizedUnsupported:
		return 0, fmt.Sprint(input), false
	default:
		return 0, InvalidDate, false
	}
}

func sanitizeDate(input any, format string, opts *FormattingOptions) sanitizedDate {
	if special, ok := SpecialFormatData(input, opts); ok {
		return sanitizedDate{kind: sanitizedSpecial, special: special}
	}

	if p, ok := input.(*string); ok {
		input = *p
	}

	if s, ok := input.(string); ok {
		if isNumericString(s) {
			n, ok := parseLeadingInt(s)
			if !ok {
				// numeric but without leading digits, e.g. "Infinity"
				return sanitizedDate{kind: sanitizedEpoch, epoch: math.NaN()}
			}
			return sanitizedDate{kind: sanitizedEpoch, epoch: float64(n)}
		}
		pattern := format
		if p, ok := opts.datePattern(format); ok {
			pattern = p
		}
		t, err := parsePattern(strings.TrimSpace(s), pattern, bundleFor(opts.languageTag()), opts.location())
		if err != nil {
			return sanitizedDate{kind: sanitizedInvalid}
		}
		return sanitizedDate{kind: sanitizedEpoch, epoch: float64(t.UnixMilli()) / 1000}
	}

	if epoch, ok := toEpochSeconds(input); ok {
		return sanitizedDate{kind: sanitizedEpoch, epoch: epoch}
	}
	return sanitizedDate{kind: sanitizedUnsupported}
}

// isNumericString reports whether the whole string reads as a number.
func isNumericString(s string) bool {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return false
	}
	f, err := strconv.ParseFloat(trimmed, 64)
	return err == nil && !math.IsNaN(f)
}

// parseLeadingInt reads the leading base 10 integer, "12.9" and "1e3" give
// 12 and 1.
func parseLeadingInt(s string) (int64, bool) {
	trimmed := strings.TrimSpace(s)
	end := 0
	if end < len(trimmed) && (trimmed[end] == '-' || trimmed[end] == '+') {
		end++
	}
	digitsStart := end
	for end < len(trimmed) && trimmed[end] >= '0' && trimmed[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0, false
	}
	n, err := strconv.ParseInt(trimmed[:end], 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func toEpochSeconds(input any) (float64, bool) {
	switch v := input.(type) {
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	case *int:
		return float64(*v), true
	case *int64:
		return float64(*v), true
	case *float64:
		return *v, true
	case time.Time:
		return float64(v.UnixMilli()) / 1000, true
	case *time.Time:
		return float64(v.UnixMilli()) / 1000, true
	}
	return 0, false
}

// FormatDateTime renders an epoch given in seconds with a preset name or a
// literal pattern.
func FormatDateTime(epochSeconds float64, format string, useSystemCalendar bool, opts *FormattingOptions) string {
	return FormatDateTimeResult(epochSeconds, format, useSystemCalendar, opts).Value
}

// FormatDateTimeResult is FormatDateTime with the fallback details.
func FormatDateTimeResult(epochSeconds float64, format string, useSystemCalendar bool, opts *FormattingOptions) FormatResult {
	in, ok := newInstantFromMillis(epochSeconds*1000, opts.location())
	if !ok {
		return unresolved(InvalidDate, "invalid epoch", epochSeconds, slog.String("format", format))
	}

	bundle := bundleFor(opts.languageTag())
	pattern := resolveFormat(format, opts)
	calendar := in.withQuarterStart(calendarStartMonth(useSystemCalendar, opts))

	if pattern == format && isPresetName(format) {
		if _, native := nativePresets[format]; !native {
			// preset missing from the locale table
			value := renderPattern(calendar, bundle.nativePattern(nativeDateShort), bundle)
			return unresolved(value, "missing locale pattern for preset", epochSeconds, slog.String("format", format))
		}
	}

	if style, native := nativeStyleFor(pattern); native {
		// No FY marker here, the year is still the fiscal year of the instant.
		return resolved(renderPattern(calendar, bundle.nativePattern(style), bundle))
	}

	pattern = normalizePattern(pattern)
	if opts.quarterStartMonth() > 1 && !useSystemCalendar && !opts.customCalendarOverridesFiscalOffset() {
		pattern = insertFiscalMarker(pattern)
	}
	return resolved(renderPattern(calendar, pattern, bundle))
}

// resolveFormat maps a preset name to the locale pattern. The yearless
// variant is picked before the lookup; presets without a variant, or whose
// variant has no locale pattern, keep their own pattern.
func resolveFormat(format string, opts *FormattingOptions) string {
	if _, ok := opts.datePattern(format); !ok {
		return format
	}
	name := format
	if opts.omitYear() {
		if variant, ok := yearlessFormats[DateFormatPreset(name)]; ok {
			name = string(variant)
		}
	}
	if pattern, ok := opts.datePattern(name); ok {
		return pattern
	}
	pattern, _ := opts.datePattern(format)
	return pattern
}

func nativeStyleFor(pattern string) (nativeStyle, bool) {
	if pattern == "" {
		return nativeDateShort, true
	}
	style, ok := nativePresets[pattern]
	return style, ok
}

func calendarStartMonth(useSystemCalendar bool, opts *FormattingOptions) int {
	if useSystemCalendar {
		return defaultQuarterStartMonth
	}
	return opts.quarterStartMonth()
}

// normalizePattern rewrites the first qqq into 'Q'q and lower cases the first
// upper case year token.
func normalizePattern(pattern string) string {
	pattern = strings.Replace(pattern, "qqq", "'Q'q", 1)
	idx := strings.Index(pattern, "YY")
	if idx < 0 {
		return pattern
	}
	width := 2
	if strings.HasPrefix(pattern[idx:], "YYYY") {
		width = 4
	}
	return pattern[:idx] + strings.ToLower(pattern[idx:idx+width]) + pattern[idx+width:]
}

// insertFiscalMarker puts a quoted "FY " literal before the first year token
// that sits outside a quoted section.
func insertFiscalMarker(pattern string) string {
	quoted := false
	for i := 0; i < len(pattern); i++ {
		switch pattern[i] {
		case '\'':
			quoted = !quoted
		case 'y':
			if !quoted {
				return pattern[:i] + "'FY' " + pattern[i:]
			}
		}
	}
	return pattern
}

// FormatDate formats an epoch (seconds, number or numeric string) or a date
// string readable with the format. An empty format means DATE_SHORT.
func FormatDate(input any, format string, useSystemCalendar bool, opts *FormattingOptions) string {
	return FormatDateResult(input, format, useSystemCalendar, opts).Value
}

// FormatDateResult is FormatDate with the fallback details.
func FormatDateResult(input any, format string, useSystemCalendar bool, opts *FormattingOptions) FormatResult {
	if isNil(input) {
		return resolved(opts.nullLabel())
	}
	if format == "" {
		format = string(DateShort)
	}

	res := sanitizeDate(input, format, opts)
	switch res.kind {
	case sanitizedSpecial:
		return resolved(res.special)
	case sanitizedInvalid:
		return unresolved(InvalidDate, "unparseable date", input, slog.String("format", format))
	case sanitizedUnsupported:
		return unresolved(fmt.Sprint(input), "could not convert input date to a timestamp", input)
	}

	if math.IsNaN(res.epoch) {
		return resolved(opts.nullLabel())
	}
	return FormatDateTimeResult(res.epoch, format, useSystemCalendar, opts)
}
