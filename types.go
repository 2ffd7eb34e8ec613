package chartsdk

// ColumnType tells measures and attributes apart.
type ColumnType string

const (
	ColumnTypeUnknown   ColumnType = "UNKNOWN"
	ColumnTypeMeasure   ColumnType = "MEASURE"
	ColumnTypeAttribute ColumnType = "ATTRIBUTE"
)

// DataType is the column's value type as reported by the host.
type DataType string

const (
	DataTypeUnknown  DataType = "UNKNOWN"
	DataTypeBool     DataType = "BOOL"
	DataTypeChar     DataType = "CHAR"
	DataTypeInt32    DataType = "INT32"
	DataTypeInt64    DataType = "INT64"
	DataTypeFloat    DataType = "FLOAT"
	DataTypeDouble   DataType = "DOUBLE"
	DataTypeDate     DataType = "DATE"
	DataTypeDateTime DataType = "DATE_TIME"
	DataTypeTime     DataType = "TIME"
)

// ColumnTimeBucket is the bucketing applied to a date column.
type ColumnTimeBucket string

const (
	ColumnTimeBucketNoAggregation  ColumnTimeBucket = "NO_AGGREGATION"
	ColumnTimeBucketAuto           ColumnTimeBucket = "AUTO"
	ColumnTimeBucketHourly         ColumnTimeBucket = "HOURLY"
	ColumnTimeBucketDaily          ColumnTimeBucket = "DAILY"
	ColumnTimeBucketWeekly         ColumnTimeBucket = "WEEKLY"
	ColumnTimeBucketMonthly        ColumnTimeBucket = "MONTHLY"
	ColumnTimeBucketQuarterly      ColumnTimeBucket = "QUARTERLY"
	ColumnTimeBucketYearly         ColumnTimeBucket = "YEARLY"
	ColumnTimeBucketHourOfDay      ColumnTimeBucket = "HOUR_OF_DAY"
	ColumnTimeBucketDayOfWeek      ColumnTimeBucket = "DAY_OF_WEEK"
	ColumnTimeBucketDayOfMonth     ColumnTimeBucket = "DAY_OF_MONTH"
	ColumnTimeBucketDayOfQuarter   ColumnTimeBucket = "DAY_OF_QUARTER"
	ColumnTimeBucketDayOfYear      ColumnTimeBucket = "DAY_OF_YEAR"
	ColumnTimeBucketWeekOfMonth    ColumnTimeBucket = "WEEK_OF_MONTH"
	ColumnTimeBucketWeekOfQuarter  ColumnTimeBucket = "WEEK_OF_QUARTER"
	ColumnTimeBucketWeekOfYear     ColumnTimeBucket = "WEEK_OF_YEAR"
	ColumnTimeBucketMonthOfQuarter ColumnTimeBucket = "MONTH_OF_QUARTER"
	ColumnTimeBucketMonthOfYear    ColumnTimeBucket = "MONTH_OF_YEAR"
	ColumnTimeBucketQuarterOfYear  ColumnTimeBucket = "QUARTER_OF_YEAR"
)

// ChartColumn is the subset of column metadata the formatting helpers read.
type ChartColumn struct {
	ID           string           `json:"id" yaml:"id" toml:"id"`
	Name         string           `json:"name" yaml:"name" toml:"name"`
	Type         ColumnType       `json:"type" yaml:"type" toml:"type"`
	DataType     DataType         `json:"dataType" yaml:"dataType" toml:"dataType"`
	TimeBucket   ColumnTimeBucket `json:"timeBucket" yaml:"timeBucket" toml:"timeBucket"`
	CalenderGuid string           `json:"calenderGuid,omitempty" yaml:"calenderGuid,omitempty" toml:"calenderGuid,omitempty"`
}

// CalendarRange is the epoch span, in seconds, of a custom calendar value.
type CalendarRange struct {
	Start *float64 `json:"s,omitempty"`
	End   *float64 `json:"e,omitempty"`
}

// CustomCalendarDate is a value of a custom calendar: its span and the
// label shown for it.
type CustomCalendarDate struct {
	V *CalendarRange `json:"v,omitempty"`
	D *string        `json:"d,omitempty"`
}

// StartEpoch returns the start of the span when the value carries one.
func (d *CustomCalendarDate) StartEpoch() (float64, bool) {
	if d == nil || d.V == nil || d.V.Start == nil {
		return 0, false
	}
	return *d.V.Start, true
}

// DisplayString returns the label when the value carries one.
func (d *CustomCalendarDate) DisplayString() (string, bool) {
	if d == nil || d.D == nil {
		return "", false
	}
	return *d.D, true
}
