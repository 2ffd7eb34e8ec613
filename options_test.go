package chartsdk

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFormattingOptions(t *testing.T) {
	opts, err := NewFormattingOptions(
		WithLocale("fr_FR"),
		WithDateFormats(map[string]string{string(DateShort): "dd/MM/yyyy"}),
		WithDateFormats(map[string]string{string(Quarter): "'T'q"}),
		WithQuarterStartMonth(10),
		WithOmitYear(true),
		WithLocation(time.UTC),
	)
	require.NoError(t, err)

	assert.Equal(t, "fr-FR", opts.Locale)
	assert.Equal(t, map[string]string{"DATE_SHORT": "dd/MM/yyyy", "QUARTER": "'T'q"}, opts.DateFormats)
	assert.Equal(t, 10, opts.QuarterStartMonth)
	assert.True(t, opts.OmitYear)
	assert.Equal(t, time.UTC, opts.Location)
}

func TestWithQuarterStartMonthRange(t *testing.T) {
	for _, month := range []int{0, 13, -1} {
		_, err := NewFormattingOptions(WithQuarterStartMonth(month))
		assert.ErrorIs(t, err, ErrInvalidOptions, "month %d", month)
	}
}

func TestValidate(t *testing.T) {
	assert.NoError(t, DefaultOptions().Validate())

	var nilOpts *FormattingOptions
	assert.NoError(t, nilOpts.Validate())

	bad := DefaultOptions()
	bad.QuarterStartMonth = 15
	assert.ErrorIs(t, bad.Validate(), ErrInvalidOptions)

	bad = DefaultOptions()
	bad.Locale = "not a locale!"
	assert.ErrorIs(t, bad.Validate(), ErrInvalidOptions)
}

func TestWithBaseOptionsComesFirst(t *testing.T) {
	base := DefaultOptions()
	opts, err := NewFormattingOptions(WithBaseOptions(base), WithQuarterStartMonth(4))
	require.NoError(t, err)

	assert.Equal(t, 4, opts.QuarterStartMonth)
	assert.Equal(t, 1, base.QuarterStartMonth)
	assert.Equal(t, base.DateFormats, opts.DateFormats)
}

func TestCloneIsDeep(t *testing.T) {
	opts := DefaultOptions()
	clone := opts.Clone()

	clone.DateFormats[string(DateShort)] = "yyyy"
	clone.StringsFormats.WeekOfDay["Sunday"] = "Domingo"

	assert.Equal(t, "MM/dd/yyyy", opts.DateFormats[string(DateShort)])
	assert.Equal(t, "Sunday", opts.StringsFormats.WeekOfDay["Sunday"])

	var nilOpts *FormattingOptions
	assert.NotNil(t, nilOpts.Clone())
}

func TestWithYearOmitted(t *testing.T) {
	opts := DefaultOptions()
	yearless := opts.WithYearOmitted(true)

	assert.True(t, yearless.OmitYear)
	assert.False(t, opts.OmitYear)
}

func TestNilOptionsAccessors(t *testing.T) {
	var opts *FormattingOptions

	assert.Equal(t, "", opts.nullLabel())
	assert.Equal(t, defaultQuarterStartMonth, opts.quarterStartMonth())
	assert.False(t, opts.omitYear())
	assert.False(t, opts.customCalendarOverridesFiscalOffset())
	assert.Equal(t, time.UTC, opts.location())

	_, ok := opts.datePattern(string(DateShort))
	assert.False(t, ok)
}

func TestDatePatternIgnoresEmptyEntries(t *testing.T) {
	opts, err := NewFormattingOptions(WithDateFormats(map[string]string{string(DateShort): ""}))
	require.NoError(t, err)

	_, ok := opts.datePattern(string(DateShort))
	assert.False(t, ok)
}
