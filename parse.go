package chartsdk

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

var errPatternMismatch = errors.New("chartsdk: value does not match pattern")

// parsedFields collects the units read from a value. Unset units are -1.
type parsedFields struct {
	year, month, day     int
	hour, minute, second int
	millisecond          int
	quarter, ordinal     int
	meridiem             int // 0 am, 1 pm, -1 unset
	offsetSeconds        int
	hasOffset            bool
	zone                 *time.Location
	unixMillis           int64
	hasUnix              bool
}

func newParsedFields() parsedFields {
	return parsedFields{
		year: -1, month: -1, day: -1,
		hour: -1, minute: -1, second: -1,
		millisecond: -1, quarter: -1, ordinal: -1,
		meridiem: -1,
	}
}

// parsePattern reads value with a host date pattern. Every character of the
// value must be consumed. Missing units default to the start of 1970 so the
// result never depends on the wall clock.
func parsePattern(value, pattern string, bundle localeBundle, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	p := &valueParser{input: value, bundle: bundle}
	fields := newParsedFields()

	for _, token := range expandMacros(compilePattern(pattern), bundle) {
		if err := p.consume(token, &fields); err != nil {
			return time.Time{}, err
		}
	}
	if p.pos != len(p.input) {
		return time.Time{}, fmt.Errorf("%w: trailing %q", errPatternMismatch, p.input[p.pos:])
	}
	return fields.build(loc)
}

// expandMacros replaces D, t, f style tokens with the locale's native pattern.
func expandMacros(tokens []patternToken, bundle localeBundle) []patternToken {
	var out []patternToken
	for _, token := range tokens {
		if style, ok := macroTokens[token.val]; ok && !token.literal {
			out = append(out, expandMacros(compilePattern(bundle.nativePattern(style)), bundle)...)
			continue
		}
		out = append(out, token)
	}
	return out
}

type valueParser struct {
	input  string
	pos    int
	bundle localeBundle
}

func (p *valueParser) consume(token patternToken, f *parsedFields) error {
	if token.literal {
		return p.literal(token.val)
	}

	var err error
	switch token.val {
	case "y", "yyyyyy":
		f.year, err = p.signedNumber(1, 6)
	case "yyyy":
		f.year, err = p.number(4, 4)
	case "yy":
		var year int
		year, err = p.number(2, 4)
		if err == nil {
			f.year = untruncateYear(year)
		}
	case "M", "L":
		f.month, err = p.number(1, 2)
	case "MM", "LL":
		f.month, err = p.number(2, 2)
	case "MMM", "LLL":
		f.month, err = p.name(p.bundle.monthsShort[:])
	case "MMMM", "LLLL":
		f.month, err = p.name(p.bundle.months[:])
	case "d":
		f.day, err = p.number(1, 2)
	case "dd":
		f.day, err = p.number(2, 2)
	case "o":
		f.ordinal, err = p.number(1, 3)
	case "ooo":
		f.ordinal, err = p.number(3, 3)
	case "E", "c":
		_, err = p.number(1, 1)
	case "EEE", "ccc":
		_, err = p.name(p.bundle.weekdaysShort[:])
	case "EEEE", "cccc":
		_, err = p.name(p.bundle.weekdays[:])
	case "h", "H":
		f.hour, err = p.number(1, 2)
	case "hh", "HH":
		f.hour, err = p.number(2, 2)
	case "m":
		f.minute, err = p.number(1, 2)
	case "mm":
		f.minute, err = p.number(2, 2)
	case "s":
		f.second, err = p.number(1, 2)
	case "ss":
		f.second, err = p.number(2, 2)
	case "S":
		f.millisecond, err = p.number(1, 3)
	case "SSS", "u":
		f.millisecond, err = p.number(3, 3)
	case "a":
		var idx int
		idx, err = p.name(p.bundle.meridiem[:])
		f.meridiem = idx - 1
	case "q":
		f.quarter, err = p.number(1, 1)
	case "qq":
		f.quarter, err = p.number(2, 2)
	case "Z", "ZZ", "ZZZ":
		f.offsetSeconds, err = p.offset()
		f.hasOffset = err == nil
	case "z":
		f.zone, err = p.zone()
	case "X":
		var secs int
		secs, err = p.signedNumber(1, 13)
		f.unixMillis, f.hasUnix = int64(secs)*1000, err == nil
	case "x":
		var ms int
		ms, err = p.signedNumber(1, 16)
		f.unixMillis, f.hasUnix = int64(ms), err == nil
	default:
		err = p.literal(token.val)
	}
	return err
}

func (p *valueParser) literal(expected string) error {
	end := p.pos + len(expected)
	if end > len(p.input) || !strings.EqualFold(p.input[p.pos:end], expected) {
		return fmt.Errorf("%w: expected %q at %d", errPatternMismatch, expected, p.pos)
	}
	p.pos = end
	return nil
}

func (p *valueParser) number(minDigits, maxDigits int) (int, error) {
	start := p.pos
	for p.pos < len(p.input) && p.pos-start < maxDigits {
		c := p.input[p.pos]
		if c < '0' || c > '9' {
			break
		}
		p.pos++
	}
	if p.pos-start < minDigits {
		p.pos = start
		return 0, fmt.Errorf("%w: expected %d digits at %d", errPatternMismatch, minDigits, start)
	}
	return strconv.Atoi(p.input[start:p.pos])
}

func (p *valueParser) signedNumber(minDigits, maxDigits int) (int, error) {
	negative := false
	if p.pos < len(p.input) && (p.input[p.pos] == '-' || p.input[p.pos] == '+') {
		negative = p.input[p.pos] == '-'
		p.pos++
	}
	n, err := p.number(minDigits, maxDigits)
	if negative {
		n = -n
	}
	return n, err
}

// name matches the longest candidate, case insensitively, and returns its
// 1-based index.
func (p *valueParser) name(candidates []string) (int, error) {
	best, bestLen := 0, 0
	rest := p.input[p.pos:]
	for i, candidate := range candidates {
		n := len(candidate)
		if n == 0 || n > len(rest) || n <= bestLen {
			continue
		}
		if strings.EqualFold(rest[:n], candidate) {
			best, bestLen = i+1, n
		}
	}
	if best == 0 {
		return 0, fmt.Errorf("%w: unknown name at %d", errPatternMismatch, p.pos)
	}
	p.pos += bestLen
	return best, nil
}

func (p *valueParser) offset() (int, error) {
	if p.pos >= len(p.input) {
		return 0, errPatternMismatch
	}
	sign := 1
	switch p.input[p.pos] {
	case '+':
	case '-':
		sign = -1
	default:
		return 0, fmt.Errorf("%w: expected offset sign at %d", errPatternMismatch, p.pos)
	}
	p.pos++
	hours, err := p.number(1, 2)
	if err != nil {
		return 0, err
	}
	minutes := 0
	if p.pos < len(p.input) && p.input[p.pos] == ':' {
		p.pos++
	}
	if p.pos < len(p.input) && p.input[p.pos] >= '0' && p.input[p.pos] <= '9' {
		if minutes, err = p.number(2, 2); err != nil {
			return 0, err
		}
	}
	return sign * (hours*3600 + minutes*60), nil
}

func (p *valueParser) zone() (*time.Location, error) {
	start := p.pos
	for p.pos < len(p.input) {
		r, size := utf8.DecodeRuneInString(p.input[p.pos:])
		if r == ' ' || r == ',' {
			break
		}
		p.pos += size
	}
	loc, err := time.LoadLocation(p.input[start:p.pos])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errPatternMismatch, err)
	}
	return loc, nil
}

// untruncateYear maps two digit years the way the host calendar does.
func untruncateYear(year int) int {
	if year > 99 {
		return year
	}
	if year > 60 {
		return 1900 + year
	}
	return 2000 + year
}

func (f parsedFields) build(loc *time.Location) (time.Time, error) {
	if f.hasUnix {
		return time.UnixMilli(f.unixMillis).In(loc), nil
	}
	if f.zone != nil {
		loc = f.zone
	}
	if f.hasOffset {
		loc = time.FixedZone("", f.offsetSeconds)
	}

	year := orDefault(f.year, 1970)
	month := f.month
	if month < 0 && f.quarter > 0 {
		month = (f.quarter-1)*3 + 1
	}
	month = orDefault(month, 1)
	day := orDefault(f.day, 1)

	hour := orDefault(f.hour, 0)
	if f.meridiem >= 0 {
		if hour < 1 || hour > 12 {
			return time.Time{}, fmt.Errorf("%w: hour %d with meridiem", errPatternMismatch, hour)
		}
		hour %= 12
		if f.meridiem == 1 {
			hour += 12
		}
	}
	minute := orDefault(f.minute, 0)
	second := orDefault(f.second, 0)
	millisecond := orDefault(f.millisecond, 0)

	if f.ordinal > 0 && f.month < 0 && f.day < 0 {
		start := time.Date(year, time.January, 1, hour, minute, second, millisecond*int(time.Millisecond), loc)
		t := start.AddDate(0, 0, f.ordinal-1)
		if t.Year() != year {
			return time.Time{}, fmt.Errorf("%w: ordinal %d", errPatternMismatch, f.ordinal)
		}
		return t, nil
	}

	if month < 1 || month > 12 || hour > 23 || minute > 59 || second > 59 || f.quarter > 4 {
		return time.Time{}, fmt.Errorf("%w: unit out of range", errPatternMismatch)
	}
	t := time.Date(year, time.Month(month), day, hour, minute, second, millisecond*int(time.Millisecond), loc)
	if t.Day() != day || int(t.Month()) != month {
		return time.Time{}, fmt.Errorf("%w: day %d out of range", errPatternMismatch, day)
	}
	return t, nil
}

func orDefault(value, fallback int) int {
	if value < 0 {
		return fallback
	}
	return value
}
