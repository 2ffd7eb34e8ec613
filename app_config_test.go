package chartsdk

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionsFromAppConfigJSON(t *testing.T) {
	cfg, err := LoadAppConfigFile(filepath.Join("testdata", "app_config.json"))
	require.NoError(t, err)

	assert.Equal(t, "en-AU", cfg.Locale())
	assert.True(t, cfg.DebugMode())
	assert.Equal(t, "https://charts.example.com", cfg.AppURL)

	opts, err := OptionsFromAppConfig(cfg)
	require.NoError(t, err)

	// en-AU has no table of its own and falls back to en
	assert.Equal(t, "dd/MM/yyyy", opts.DateFormats[string(DateShort)])
	assert.Equal(t, 4, opts.QuarterStartMonth)
	assert.Equal(t, "EEEE", opts.DateConstants.DayOfWeekFormat)

	assert.Equal(t, "01/05/FY 2025", FormatDateTime(mayFirstNoon, string(DateShort), false, opts))
	assert.Equal(t, "Q1 FY 2025", FormatDateTime(mayFirstNoon, string(QuarterWithYear), false, opts))
	assert.Equal(t, "Q1", FormatDateNum(DateNumQuarterInYear, 1, "", opts))
}

func TestOptionsFromAppConfigYAML(t *testing.T) {
	cfg, err := LoadAppConfigFile(filepath.Join("testdata", "app_config.yaml"))
	require.NoError(t, err)

	assert.False(t, cfg.DebugMode())

	opts, err := OptionsFromAppConfig(cfg, WithOmitYear(true))
	require.NoError(t, err)

	assert.Equal(t, "de-DE", opts.Locale)
	assert.True(t, opts.OmitYear)
	assert.Equal(t, "Mai 2024", FormatDateTime(mayFirstNoon, string(MonthWithYear), false, opts))
	assert.Equal(t, "(leer)", FormatDate("", string(DateShort), false, opts))
}

func TestOptionsFromAppConfigDefaults(t *testing.T) {
	var cfg *AppConfig
	assert.Equal(t, "en-US", cfg.Locale())
	assert.False(t, cfg.DebugMode())

	opts, err := OptionsFromAppConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, "en-US", opts.Locale)
	assert.Empty(t, opts.DateFormats)
}

func TestOptionsFromAppConfigFallsBackToEnglishTable(t *testing.T) {
	cfg := &AppConfig{
		DateFormatsConfig: &DateFormatsConfig{
			LocaleBasedDateFormats: map[string]map[string]string{
				"en-US": {string(DateShort): "MM/dd/yyyy"},
			},
		},
		LocaleOptions: &LocaleOptions{Locale: "ja-JP"},
	}

	opts, err := OptionsFromAppConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, "ja-JP", opts.Locale)
	assert.Equal(t, "MM/dd/yyyy", opts.DateFormats[string(DateShort)])
}

func TestOptionsFromAppConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		cfg  *AppConfig
		err  error
	}{
		{
			name: "no table for locale",
			cfg: &AppConfig{
				DateFormatsConfig: &DateFormatsConfig{
					LocaleBasedDateFormats: map[string]map[string]string{"de": {}},
				},
				LocaleOptions: &LocaleOptions{Locale: "fr-FR"},
			},
			err: ErrLocaleNotFound,
		},
		{
			name: "quarter start month not a number",
			cfg:  &AppConfig{LocaleOptions: &LocaleOptions{QuarterStartMonth: "April"}},
			err:  ErrInvalidOptions,
		},
		{
			name: "quarter start month out of range",
			cfg:  &AppConfig{LocaleOptions: &LocaleOptions{QuarterStartMonth: "13"}},
			err:  ErrInvalidOptions,
		},
		{
			name: "unknown timezone",
			cfg:  &AppConfig{LocaleOptions: &LocaleOptions{SessionTimezone: "Mars/Olympus"}},
			err:  ErrInvalidOptions,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := OptionsFromAppConfig(tt.cfg)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}
