package chartsdk

// DateFormatPreset names a locale specific date pattern. The concrete pattern
// is looked up in FormattingOptions.DateFormats at render time.
type DateFormatPreset string

const (
	DateShort                            DateFormatPreset = "DATE_SHORT"
	DateShortWithHour                    DateFormatPreset = "DATE_SHORT_WITH_HOUR"
	DateShortWithHourWithoutYear         DateFormatPreset = "DATE_SHORT_WITH_HOUR_WITHOUT_YEAR"
	DateTimeShort                        DateFormatPreset = "DATETIME_SHORT"
	DateTimeShortWithoutYear             DateFormatPreset = "DATETIME_SHORT_WITHOUT_YEAR"
	DateTimeShortWithSeconds             DateFormatPreset = "DATETIME_SHORT_WITH_SECONDS"
	DateTimeShortWithMillis              DateFormatPreset = "DATETIME_SHORT_WITH_MILLIS"
	MonthWithYear                        DateFormatPreset = "MONTH_WITH_YEAR"
	QuarterWithYear                      DateFormatPreset = "QUARTER_WITH_YEAR"
	QuarterWith2DigitYear                DateFormatPreset = "QUARTER_WITH_2_DIGIT_YEAR"
	DefaultTimeFormat                    DateFormatPreset = "DEFAULT_TIME_FORMAT"
	Time24WithSeconds                    DateFormatPreset = "TIME_24_WITH_SECONDS"
	DateShort2DigitYear                  DateFormatPreset = "DATE_SHORT_2_DIGIT_YEAR"
	DateTime24ShortWithoutYear           DateFormatPreset = "DATETIME_24_SHORT_WITHOUT_YEAR"
	DateTime24Short                      DateFormatPreset = "DATETIME_24_SHORT"
	DateTimeShortWithSecondsWithoutYear  DateFormatPreset = "DATETIME_SHORT_WITH_SECONDS_WITHOUT_YEAR"
	DateTimeShortWithMillisWithoutYear   DateFormatPreset = "DATETIME_SHORT_WITH_MILLIS_WITHOUT_YEAR"
	DateTime24ShortWithMillisWithoutYear DateFormatPreset = "DATETIME_24_SHORT_WITH_MILLIS_WITHOUT_YEAR"
	DateTime24ShortWithMillis            DateFormatPreset = "DATETIME_24_SHORT_WITH_MILLIS"
	MonthWithDayAndYear                  DateFormatPreset = "MONTH_WITH_DAY_AND_YEAR"
	MonthWith2DigitYear                  DateFormatPreset = "MONTH_WITH_2_DIGIT_YEAR"
	DayWithMonthNum                      DateFormatPreset = "DAY_WITH_MONTH_NUM"
	DateShortWithHour24WithoutYear       DateFormatPreset = "DATE_SHORT_WITH_HOUR_24_WITHOUT_YEAR"
	DateShortWithHour24                  DateFormatPreset = "DATE_SHORT_WITH_HOUR_24"
	Quarter                              DateFormatPreset = "QUARTER"
	MonthOnly                            DateFormatPreset = "MONTH_ONLY"
	DateTimeWithShortOffset              DateFormatPreset = "DATETIME_WITH_SHORT_OFFSET"

	// DayWithMonth is only reachable as the yearless variant of the short date presets.
	DayWithMonth DateFormatPreset = "DAY_WITH_MONTH"
)

var dateFormatPresets = []DateFormatPreset{
	DateShort,
	DateShortWithHour,
	DateShortWithHourWithoutYear,
	DateTimeShort,
	DateTimeShortWithoutYear,
	DateTimeShortWithSeconds,
	DateTimeShortWithMillis,
	MonthWithYear,
	QuarterWithYear,
	QuarterWith2DigitYear,
	DefaultTimeFormat,
	Time24WithSeconds,
	DateShort2DigitYear,
	DateTime24ShortWithoutYear,
	DateTime24Short,
	DateTimeShortWithSecondsWithoutYear,
	DateTimeShortWithMillisWithoutYear,
	DateTime24ShortWithMillisWithoutYear,
	DateTime24ShortWithMillis,
	MonthWithDayAndYear,
	MonthWith2DigitYear,
	DayWithMonthNum,
	DateShortWithHour24WithoutYear,
	DateShortWithHour24,
	Quarter,
	MonthOnly,
	DateTimeWithShortOffset,
}

var yearlessFormats = map[DateFormatPreset]DateFormatPreset{
	DateShort:                 DayWithMonth,
	DateShortWithHour:         DateShortWithHourWithoutYear,
	DateTimeShort:             DateTimeShortWithoutYear,
	DateTimeShortWithSeconds:  DateTimeShortWithSecondsWithoutYear,
	DateTimeShortWithMillis:   DateTimeShortWithMillisWithoutYear,
	MonthWithYear:             MonthOnly,
	QuarterWithYear:           Quarter,
	QuarterWith2DigitYear:     Quarter,
	DateShort2DigitYear:       DayWithMonth,
	DateTime24Short:           DateTime24ShortWithoutYear,
	DateTime24ShortWithMillis: DateTime24ShortWithMillisWithoutYear,
	MonthWithDayAndYear:       DayWithMonth,
	MonthWith2DigitYear:       DayWithMonth,
	DateShortWithHour24:       DateShortWithHour24WithoutYear,
}

// nativePresets are rendered by the locale renderer directly, they have no
// literal pattern equivalent.
var nativePresets = map[string]nativeStyle{
	string(Time24WithSeconds): nativeTime24WithSeconds,
}

var presetNames = func() map[string]struct{} {
	names := make(map[string]struct{}, len(dateFormatPresets)+1)
	for _, preset := range dateFormatPresets {
		names[string(preset)] = struct{}{}
	}
	names[string(DayWithMonth)] = struct{}{}
	return names
}()

func isPresetName(format string) bool {
	_, ok := presetNames[format]
	return ok
}

// DateFormatPresets returns every exported preset name.
func DateFormatPresets() []DateFormatPreset {
	return append([]DateFormatPreset(nil), dateFormatPresets...)
}

// YearlessVariant returns the preset to use when the year must be omitted.
func YearlessVariant(preset DateFormatPreset) (DateFormatPreset, bool) {
	variant, ok := yearlessFormats[preset]
	return variant, ok
}

// DateNumType identifies how a date-number value is rendered.
type DateNumType string

const (
	DateNumAbsDay         DateNumType = "DATE_NUM_ABS_DAY"
	DateNumAbsMonth       DateNumType = "DATE_NUM_ABS_MONTH"
	DateNumAbsQuarter     DateNumType = "DATE_NUM_ABS_QUARTER"
	DateNumAbsYear        DateNumType = "DATE_NUM_ABS_YEAR"
	DateNumDayInMonth     DateNumType = "DATE_NUM_DAY_IN_MONTH"
	DateNumDayInQuarter   DateNumType = "DATE_NUM_DAY_IN_QUARTER"
	DateNumDayInYear      DateNumType = "DATE_NUM_DAY_IN_YEAR"
	DateNumDayOfWeek      DateNumType = "DATE_NUM_DAY_OF_WEEK"
	DateNumMonthInQuarter DateNumType = "DATE_NUM_MONTH_IN_QUARTER"
	DateNumMonthInYear    DateNumType = "DATE_NUM_MONTH_IN_YEAR"
	DateNumQuarterInYear  DateNumType = "DATE_NUM_QUARTER_IN_YEAR"
	DateNumWeekInYear     DateNumType = "DATE_NUM_WEEK_IN_YEAR"
	DateNumWeekInQuarter  DateNumType = "DATE_NUM_WEEK_IN_QUARTER"
	DateNumWeekInMonth    DateNumType = "DATE_NUM_WEEK_IN_MONTH"
	DateNumHourInDay      DateNumType = "DATE_NUM_HOUR_IN_DAY"
)

var dateNumTypes = []DateNumType{
	DateNumAbsDay,
	DateNumAbsMonth,
	DateNumAbsQuarter,
	DateNumAbsYear,
	DateNumDayInMonth,
	DateNumDayInQuarter,
	DateNumDayInYear,
	DateNumDayOfWeek,
	DateNumMonthInQuarter,
	DateNumMonthInYear,
	DateNumQuarterInYear,
	DateNumWeekInYear,
	DateNumWeekInQuarter,
	DateNumWeekInMonth,
	DateNumHourInDay,
}

// DateNumTypes returns every known date-number type.
func DateNumTypes() []DateNumType {
	return append([]DateNumType(nil), dateNumTypes...)
}

// TimeBucket is the short code describing a column's temporal granularity.
type TimeBucket string

const (
	BucketNone           TimeBucket = "ms"
	BucketHourly         TimeBucket = "h"
	BucketDaily          TimeBucket = "d"
	BucketWeekly         TimeBucket = "w"
	BucketMonthly        TimeBucket = "M"
	BucketQuarterly      TimeBucket = "Q"
	BucketYearly         TimeBucket = "y"
	BucketDayOfWeek      TimeBucket = "dow"
	BucketDayOfMonth     TimeBucket = "dom"
	BucketDayOfQuarter   TimeBucket = "doq"
	BucketDayOfYear      TimeBucket = "doy"
	BucketWeekOfMonth    TimeBucket = "wom"
	BucketWeekOfQuarter  TimeBucket = "woq"
	BucketWeekOfYear     TimeBucket = "woy"
	BucketMonthOfQuarter TimeBucket = "moq"
	BucketMonthOfYear    TimeBucket = "moy"
	BucketQuarterOfYear  TimeBucket = "qoy"
)

var timeBuckets = map[string]TimeBucket{
	"NO_BUCKET":        BucketNone,
	"HOURLY":           BucketHourly,
	"DAILY":            BucketDaily,
	"WEEKLY":           BucketWeekly,
	"MONTHLY":          BucketMonthly,
	"QUARTERLY":        BucketQuarterly,
	"YEARLY":           BucketYearly,
	"DAY_OF_WEEK":      BucketDayOfWeek,
	"DAY_OF_MONTH":     BucketDayOfMonth,
	"DAY_OF_QUARTER":   BucketDayOfQuarter,
	"DAY_OF_YEAR":      BucketDayOfYear,
	"WEEK_OF_MONTH":    BucketWeekOfMonth,
	"WEEK_OF_QUARTER":  BucketWeekOfQuarter,
	"WEEK_OF_YEAR":     BucketWeekOfYear,
	"MONTH_OF_QUARTER": BucketMonthOfQuarter,
	"MONTH_OF_YEAR":    BucketMonthOfYear,
	"QUARTER_OF_YEAR":  BucketQuarterOfYear,
}

// TimeBuckets returns the bucket name to code table.
func TimeBuckets() map[string]TimeBucket {
	out := make(map[string]TimeBucket, len(timeBuckets))
	for k, v := range timeBuckets {
		out[k] = v
	}
	return out
}

// yearPattern is the literal pattern used for yearly buckets, there is no preset for it.
const yearPattern = "yyyy"

var bucketizationToDatePreset = map[TimeBucket]string{
	BucketHourly:    string(DateShortWithHour),
	BucketDaily:     string(DateShort),
	BucketWeekly:    string(DateShort),
	BucketMonthly:   string(MonthWithYear),
	BucketQuarterly: string(QuarterWithYear),
	BucketYearly:    yearPattern,
}

// BucketizationToDatePreset returns the default format for each bucket code.
// Values are preset names except for yearly buckets which map to a literal pattern.
func BucketizationToDatePreset() map[TimeBucket]string {
	out := make(map[TimeBucket]string, len(bucketizationToDatePreset))
	for k, v := range bucketizationToDatePreset {
		out[k] = v
	}
	return out
}

// PresetForBucket picks the default format for a time bucket.
func PresetForBucket(bucket TimeBucket) (string, bool) {
	format, ok := bucketizationToDatePreset[bucket]
	return format, ok
}

var weekdays = [7]string{
	"Sunday",
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
}

var months = [12]string{
	"January",
	"February",
	"March",
	"April",
	"May",
	"June",
	"July",
	"August",
	"September",
	"October",
	"November",
	"December",
}

const defaultQuarterStartMonth = 1
