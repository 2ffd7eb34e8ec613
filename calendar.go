package chartsdk

import (
	"fmt"
	"math"
	"time"
)

// maxEpochMillis is the largest magnitude a host calendar instant can hold
// (100,000,000 days either side of the epoch).
const maxEpochMillis = 8.64e15

// instant is a calendar point in time plus the fiscal year start month used
// when rendering year and quarter tokens.
type instant struct {
	t                 time.Time
	quarterStartMonth int
}

// newInstantFromMillis builds an instant, ok=false for NaN, infinite or
// out of range values.
func newInstantFromMillis(millis float64, loc *time.Location) (instant, bool) {
	if math.IsNaN(millis) || math.IsInf(millis, 0) || math.Abs(millis) > maxEpochMillis {
		return instant{}, false
	}
	if loc == nil {
		loc = time.UTC
	}
	ms := int64(math.Trunc(millis))
	return instant{
		t:                 time.UnixMilli(ms).In(loc),
		quarterStartMonth: defaultQuarterStartMonth,
	}, true
}

// withQuarterStart returns a copy carrying the fiscal start month.
func (i instant) withQuarterStart(month int) instant {
	if month < 1 || month > 12 {
		month = defaultQuarterStartMonth
	}
	i.quarterStartMonth = month
	return i
}

// fiscalYear is named after the calendar year in which the fiscal year ends.
func (i instant) fiscalYear() int {
	year := i.t.Year()
	if i.quarterStartMonth > 1 && int(i.t.Month()) >= i.quarterStartMonth {
		return year + 1
	}
	return year
}

func (i instant) fiscalQuarter() int {
	offset := (int(i.t.Month()) - i.quarterStartMonth + 12) % 12
	return offset/3 + 1
}

func (i instant) millisecond() int {
	return i.t.Nanosecond() / int(time.Millisecond)
}

// weekday returns 1 (Monday) through 7 (Sunday).
func (i instant) weekday() int {
	wd := int(i.t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

type offsetFormat int

const (
	offsetNarrow offsetFormat = iota
	offsetShort
	offsetTechie
)

// formatOffset renders the zone offset as +5, +05:00 or +0500.
func formatOffset(t time.Time, format offsetFormat) string {
	_, seconds := t.Zone()
	sign := "+"
	if seconds < 0 {
		sign = "-"
		seconds = -seconds
	}
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60

	switch format {
	case offsetNarrow:
		if minutes > 0 {
			return fmt.Sprintf("%s%d:%s", sign, hours, pad(minutes, 2))
		}
		return fmt.Sprintf("%s%d", sign, hours)
	case offsetTechie:
		return sign + pad(hours, 2) + pad(minutes, 2)
	default:
		return sign + pad(hours, 2) + ":" + pad(minutes, 2)
	}
}
