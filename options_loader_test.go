package chartsdk

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	assert.Equal(t, "en-US", opts.Locale)
	assert.Equal(t, 1, opts.QuarterStartMonth)
	assert.Equal(t, "{Null}", opts.StringsFormats.NullValuePlaceholderLabel)
	assert.Equal(t, "{unavailable}", opts.DateConstants.SpecialValueUnavailable)
	assert.Len(t, opts.StringsFormats.WeekOfDay, 7)
	assert.Len(t, opts.StringsFormats.MonthOfYear, 12)

	for _, preset := range DateFormatPresets() {
		if preset == Time24WithSeconds {
			continue
		}
		_, ok := opts.datePattern(string(preset))
		assert.True(t, ok, "missing pattern for %s", preset)
	}

	opts.DateFormats[string(DateShort)] = "changed"
	assert.Equal(t, "MM/dd/yyyy", DefaultOptions().DateFormats[string(DateShort)])
}

func TestLoadOptionsFileYAML(t *testing.T) {
	opts, err := LoadOptionsFile(filepath.Join("testdata", "options.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "en-GB", opts.Locale)
	assert.Equal(t, 4, opts.QuarterStartMonth)
	assert.Equal(t, time.UTC, opts.Location)
	assert.Equal(t, "dd/MM/yyyy", opts.DateFormats[string(DateShort)])
	assert.Equal(t, "(blank)", opts.StringsFormats.NullValuePlaceholderLabel)
}

func TestLoadOptionsFileTOML(t *testing.T) {
	opts, err := LoadOptionsFile(filepath.Join("testdata", "options.toml"))
	require.NoError(t, err)

	assert.Equal(t, "de-DE", opts.Locale)
	assert.Equal(t, 7, opts.QuarterStartMonth)
	assert.True(t, opts.OmitYear)
	assert.Equal(t, "dd.MM.", opts.DateFormats[string(DayWithMonth)])
	assert.Equal(t, "Quartal {q}", opts.StringsFormats.QuarterOfYear)
	assert.Equal(t, "EEEE", opts.DateConstants.DayOfWeekFormat)
}

func TestLoadOptionsFileErrors(t *testing.T) {
	dir := t.TempDir()

	unsupported := filepath.Join(dir, "options.ini")
	require.NoError(t, os.WriteFile(unsupported, []byte("locale=en"), 0o600))
	_, err := LoadOptionsFile(unsupported)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	invalid := filepath.Join(dir, "options.json")
	require.NoError(t, os.WriteFile(invalid, []byte(`{"quarterStartMonth": 13}`), 0o600))
	_, err = LoadOptionsFile(invalid)
	assert.ErrorIs(t, err, ErrInvalidOptions)

	zone := filepath.Join(dir, "zone.yaml")
	require.NoError(t, os.WriteFile(zone, []byte("timezone: Not/AZone\n"), 0o600))
	_, err = LoadOptionsFile(zone)
	assert.ErrorIs(t, err, ErrInvalidOptions)

	_, err = LoadOptionsFile(filepath.Join(dir, "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestOptionsLoaderLayers(t *testing.T) {
	opts, err := NewOptionsLoader(filepath.Join("testdata", "options.yaml")).
		AddOverride(filepath.Join("testdata", "options_override.json")).
		Load()
	require.NoError(t, err)

	assert.Equal(t, "en-GB", opts.Locale)
	assert.Equal(t, 4, opts.QuarterStartMonth)
	assert.True(t, opts.CustomCalendarOverridesFiscalOffset)

	// layered values win, defaults survive underneath
	assert.Equal(t, "dd/MM/yyyy", opts.DateFormats[string(DateShort)])
	assert.Equal(t, "'Quarter' q", opts.DateFormats[string(Quarter)])
	assert.Equal(t, "MMM yyyy", opts.DateFormats[string(MonthWithYear)])
	assert.Equal(t, "(blank)", opts.StringsFormats.NullValuePlaceholderLabel)
	assert.Equal(t, "{Empty}", opts.StringsFormats.EmptyValuePlaceholderLabel)

	// the marker is suppressed but the year stays fiscal
	assert.Equal(t, "01/05/2025", FormatDateTime(mayFirstNoon, string(DateShort), false, opts))
	assert.Equal(t, "Quarter 1", FormatDateTime(mayFirstNoon, string(Quarter), false, opts))
}

func TestOptionsLoaderDefaultsOnly(t *testing.T) {
	opts, err := NewOptionsLoader("").Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultOptions(), opts)

	var loader *OptionsLoader
	opts, err = loader.Load()
	require.NoError(t, err)
	assert.Equal(t, "en-US", opts.Locale)
}

func TestOptionsLoaderMissingOverride(t *testing.T) {
	_, err := NewOptionsLoader("").AddOverride(filepath.Join(t.TempDir(), "nope.yaml")).Load()
	assert.Error(t, err)
}

func TestMergeOptions(t *testing.T) {
	dest := DefaultOptions()
	mergeOptions(dest, &FormattingOptions{
		StringsFormats: StringsFormats{WeekOfDay: map[string]string{"Monday": "Lundi"}},
		DateConstants:  DateConstants{WeekInYearFormat: "WW"},
	})

	assert.Equal(t, "Lundi", dest.StringsFormats.WeekOfDay["Monday"])
	assert.Equal(t, "Sunday", dest.StringsFormats.WeekOfDay["Sunday"])
	assert.Equal(t, "WW", dest.DateConstants.WeekInYearFormat)
	assert.Equal(t, "d", dest.DateConstants.DayInMonthFormat)
	assert.Equal(t, 1, dest.QuarterStartMonth)
}
