package chartsdk

import "fmt"

var dateNumTimeBuckets = map[ColumnTimeBucket]DateNumType{
	ColumnTimeBucketHourOfDay:      DateNumHourInDay,
	ColumnTimeBucketDayOfWeek:      DateNumDayOfWeek,
	ColumnTimeBucketDayOfMonth:     DateNumDayInMonth,
	ColumnTimeBucketDayOfQuarter:   DateNumDayInQuarter,
	ColumnTimeBucketDayOfYear:      DateNumDayInYear,
	ColumnTimeBucketWeekOfMonth:    DateNumWeekInMonth,
	ColumnTimeBucketWeekOfQuarter:  DateNumWeekInQuarter,
	ColumnTimeBucketWeekOfYear:     DateNumWeekInYear,
	ColumnTimeBucketMonthOfQuarter: DateNumMonthInQuarter,
	ColumnTimeBucketMonthOfYear:    DateNumMonthInYear,
	ColumnTimeBucketQuarterOfYear:  DateNumQuarterInYear,
}

// IsDateColumn reports DATE and DATE_TIME columns.
func IsDateColumn(col ChartColumn) bool {
	return col.DataType == DataTypeDate || col.DataType == DataTypeDateTime
}

func IsDateTimeColumn(col ChartColumn) bool {
	return col.DataType == DataTypeDateTime
}

func IsTimeColumn(col ChartColumn) bool {
	return col.DataType == DataTypeTime
}

func IsAttribute(col ChartColumn) bool {
	return col.Type == ColumnTypeAttribute
}

// IsDateNumColumn reports attributes bucketed to a position inside a larger
// period, such as day of week or month of year.
func IsDateNumColumn(col ChartColumn) bool {
	_, ok := dateNumTimeBuckets[col.TimeBucket]
	return IsAttribute(col) && ok
}

func IsDateFamilyColumn(col ChartColumn) bool {
	return IsDateColumn(col) || IsDateNumColumn(col)
}

// CustomCalendarGuid returns the column's custom calendar id, empty when the
// column uses the system calendar.
func CustomCalendarGuid(col ChartColumn) string {
	return col.CalenderGuid
}

func HasCustomCalendar(col ChartColumn) bool {
	return IsDateFamilyColumn(col) && CustomCalendarGuid(col) != ""
}

// EffectiveDateNumDataType maps the column's time bucket to the date number
// type used to render its values.
func EffectiveDateNumDataType(col ChartColumn) (DateNumType, bool) {
	t, ok := dateNumTimeBuckets[col.TimeBucket]
	return t, ok
}

// CustomCalendarValueFromEpoch looks up the custom calendar value for an
// epoch in values. Columns without a custom calendar never match.
func CustomCalendarValueFromEpoch(col ChartColumn, epoch float64, values map[float64]CustomCalendarDate) (CustomCalendarDate, bool) {
	if !HasCustomCalendar(col) {
		return CustomCalendarDate{}, false
	}
	value, ok := values[epoch]
	return value, ok
}

// DefaultColumnFormat returns the bucket's default format for a date column,
// empty when the bucket has none.
func DefaultColumnFormat(col ChartColumn) string {
	code, ok := timeBuckets[string(col.TimeBucket)]
	if !ok {
		return ""
	}
	format, _ := PresetForBucket(code)
	return format
}

// FormatColumnValue renders a cell of col. Date-number columns go through
// FormatDateNum, date columns through FormatDate with the bucket's default
// format when format is empty. Other columns only get placeholder handling.
func FormatColumnValue(col ChartColumn, value any, format string, useSystemCalendar bool, opts *FormattingOptions) string {
	if IsDateNumColumn(col) {
		dateNumType, _ := EffectiveDateNumDataType(col)
		return FormatDateNum(dateNumType, value, format, opts)
	}
	if IsDateColumn(col) {
		if format == "" {
			format = DefaultColumnFormat(col)
		}
		return FormatDate(value, format, useSystemCalendar, opts)
	}
	if special, ok := SpecialFormatData(value, opts); ok {
		return special
	}
	return fmt.Sprint(value)
}
