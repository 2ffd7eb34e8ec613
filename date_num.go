package chartsdk

import (
	"fmt"
	"log/slog"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// OrdinalSuffixedValue renders n with its English ordinal suffix: 1st, 2nd,
// 3rd, 11th, 21st.
func OrdinalSuffixedValue(n int64) string {
	return strconv.FormatInt(n, 10) + ordinalSuffix(n)
}

func ordinalSuffix(value int64) string {
	abs := value
	if abs < 0 {
		abs = -abs
	}
	mod100 := abs % 100
	if mod100 >= 11 && mod100 <= 13 {
		return "th"
	}
	switch abs % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}

var quarterPlaceholder = regexp.MustCompile(`\{.*?\}`)

// AssignQuarterValueToString replaces the first {placeholder} in the template
// with value.
func AssignQuarterValueToString(template, value string) string {
	loc := quarterPlaceholder.FindStringIndex(template)
	if loc == nil {
		return template
	}
	return template[:loc[0]] + value + template[loc[1]:]
}

// MonthOfYear maps a fiscal month number (1 is the first month of the fiscal
// year) to the localized calendar month name. ok=false when the mapping has
// no entry for the month.
func MonthOfYear(num int64, quarterStartMonth int, names map[string]string) (string, bool) {
	if quarterStartMonth < 1 || quarterStartMonth > 12 {
		quarterStartMonth = defaultQuarterStartMonth
	}
	month := wrapMonth(num + int64(quarterStartMonth) - 1)
	name, ok := names[months[month-1]]
	if !ok || name == "" {
		return months[month-1], false
	}
	return name, true
}

// DayOfWeek maps a day number (0 is Sunday) to the localized weekday name.
// ok=false when the mapping has no entry for the day.
func DayOfWeek(num int64, names map[string]string) (string, bool) {
	idx := ((num % 7) + 7) % 7
	name, ok := names[weekdays[idx]]
	if !ok || name == "" {
		return weekdays[idx], false
	}
	return name, true
}

func wrapMonth(month int64) int64 {
	return ((month-1)%12+12)%12 + 1
}

// dateNumValue is a date-number input coerced to an integer plus the text
// used when the value is rendered bare.
type dateNumValue struct {
	n    int64
	text string
}

type dateNumInput int

const (
	dateNumOK dateNumInput = iota
	dateNumMissing
	dateNumSpecial
)

func coerceDateNum(value any, opts *FormattingOptions) (dateNumValue, string, dateNumInput) {
	if p, ok := value.(*string); ok && p != nil {
		value = *p
	}

	// zero is a value, only nil, "" and NaN count as missing
	if isNil(value) {
		return dateNumValue{}, opts.nullLabel(), dateNumMissing
	}
	if s, ok := value.(string); ok && s == "" {
		return dateNumValue{}, opts.nullLabel(), dateNumMissing
	}
	if f, ok := value.(float64); ok && math.IsNaN(f) {
		return dateNumValue{}, opts.nullLabel(), dateNumMissing
	}

	if special, ok := SpecialFormatData(value, opts); ok {
		return dateNumValue{}, special, dateNumSpecial
	}

	switch v := value.(type) {
	case string:
		n, ok := parseLeadingInt(v)
		if !ok {
			return dateNumValue{}, opts.nullLabel(), dateNumMissing
		}
		return dateNumValue{n: n, text: strconv.FormatInt(n, 10)}, "", dateNumOK
	case int:
		return intDateNum(int64(v)), "", dateNumOK
	case int32:
		return intDateNum(int64(v)), "", dateNumOK
	case int64:
		return intDateNum(v), "", dateNumOK
	case *int:
		return intDateNum(int64(*v)), "", dateNumOK
	case *int64:
		return intDateNum(*v), "", dateNumOK
	case float32:
		return floatDateNum(float64(v)), "", dateNumOK
	case float64:
		return floatDateNum(v), "", dateNumOK
	case *float64:
		if math.IsNaN(*v) {
			return dateNumValue{}, opts.nullLabel(), dateNumMissing
		}
		return floatDateNum(*v), "", dateNumOK
	}
	return dateNumValue{text: fmt.Sprint(value)}, "", dateNumOK
}

func intDateNum(n int64) dateNumValue {
	return dateNumValue{n: n, text: strconv.FormatInt(n, 10)}
}

func floatDateNum(f float64) dateNumValue {
	return dateNumValue{n: int64(math.Trunc(f)), text: strconv.FormatFloat(f, 'f', -1, 64)}
}

// FormatDateNum renders a positional date value such as a day of week or a
// week of year.
func FormatDateNum(dateNumType DateNumType, value any, formatPattern string, opts *FormattingOptions) string {
	return FormatDateNumResult(dateNumType, value, formatPattern, opts).Value
}

// FormatDateNumResult is FormatDateNum with the fallback details.
func FormatDateNumResult(dateNumType DateNumType, value any, formatPattern string, opts *FormattingOptions) FormatResult {
	v, label, kind := coerceDateNum(value, opts)
	if kind != dateNumOK {
		return resolved(label)
	}

	constants := opts.constants()
	ordinal := func(canonical, unit string) FormatResult {
		if matchesLabel(formatPattern, canonical) {
			return resolved(v.text)
		}
		return resolved(OrdinalSuffixedValue(v.n) + " " + unit)
	}

	switch dateNumType {
	case DateNumAbsDay, DateNumAbsMonth, DateNumAbsQuarter, DateNumAbsYear:
		return resolved(v.text)
	case DateNumDayInMonth:
		return ordinal(constants.DayInMonthFormat, "day of month")
	case DateNumDayInQuarter:
		return ordinal(constants.DayInQuarterFormat, "day of quarter")
	case DateNumDayInYear:
		return ordinal(constants.DayInYearFormat, "day of year")
	case DateNumMonthInQuarter:
		return ordinal(constants.MonthInQuarterFormat, "month of quarter")
	case DateNumWeekInYear:
		return ordinal(constants.WeekInYearFormat, "week of year")
	case DateNumDayOfWeek:
		if !matchesLabel(formatPattern, constants.DayOfWeekFormat) {
			return resolved(v.text)
		}
		name, ok := DayOfWeek(v.n, opts.labels().WeekOfDay)
		if !ok {
			return unresolved(name, "missing weekday name", value, slog.String("type", string(dateNumType)))
		}
		return resolved(name)
	case DateNumMonthInYear:
		if !matchesLabel(formatPattern, constants.MonthInYearFormat) {
			return resolved(v.text)
		}
		name, ok := MonthOfYear(v.n, opts.quarterStartMonth(), opts.labels().MonthOfYear)
		if !ok {
			return unresolved(name, "missing month name", value, slog.String("type", string(dateNumType)))
		}
		return resolved(name)
	case DateNumQuarterInYear:
		template := opts.labels().QuarterOfYear
		if strings.TrimSpace(template) == "" {
			return unresolved(v.text, "missing quarter of year template", value)
		}
		return resolved(AssignQuarterValueToString(template, v.text))
	case DateNumWeekInQuarter, DateNumWeekInMonth, DateNumHourInDay:
		return resolved(v.text)
	}

	return unresolved(fmt.Sprint(value), "unknown date number type", value, slog.String("type", string(dateNumType)))
}
