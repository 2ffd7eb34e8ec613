package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	t.Setenv("CHARTFMT_LOCALE", "de-DE")
	t.Setenv("CHARTFMT_DEBUG", "true")

	cfg, err := parseFlags([]string{"-format", "QUARTER_WITH_YEAR", "-quarter-start", "4", "1714564800", "1705276800"})
	require.NoError(t, err)

	assert.Equal(t, "de-DE", cfg.locale)
	assert.True(t, cfg.debug)
	assert.Equal(t, "QUARTER_WITH_YEAR", cfg.format)
	assert.Equal(t, 4, cfg.quarterStartMonth)
	assert.Equal(t, []string{"1714564800", "1705276800"}, cfg.values)
}

func TestParseFlagsRequiresValues(t *testing.T) {
	_, err := parseFlags([]string{"-format", "DATE_SHORT"})
	assert.Error(t, err)

	_, err = parseFlags([]string{"-no-such-flag"})
	assert.Error(t, err)
}

func TestRunFormatsDates(t *testing.T) {
	var out bytes.Buffer
	err := run(cliConfig{
		format:            "QUARTER_WITH_YEAR",
		quarterStartMonth: 4,
		values:            []string{"1714564800", "1705276800", "{Null}"},
	}, &out)
	require.NoError(t, err)

	assert.Equal(t, "Q1 FY 2025\nQ4 FY 2024\n{Null}\n", out.String())
}

func TestRunFormatsDateNumbers(t *testing.T) {
	var out bytes.Buffer
	err := run(cliConfig{
		dateNumType: "DATE_NUM_DAY_OF_WEEK",
		format:      "EEEE",
		values:      []string{"0", "6"},
	}, &out)
	require.NoError(t, err)

	assert.Equal(t, "Sunday\nSaturday\n", out.String())
}

func TestRunWithOptionsFile(t *testing.T) {
	var out bytes.Buffer
	err := run(cliConfig{
		optionsPath:       filepath.Join("..", "..", "testdata", "options.yaml"),
		format:            "DATE_SHORT",
		useSystemCalendar: true,
		values:            []string{"1714564800"},
	}, &out)
	require.NoError(t, err)

	assert.Equal(t, "01/05/2024\n", out.String())
}

func TestRunWithAppConfig(t *testing.T) {
	var out bytes.Buffer
	err := run(cliConfig{
		appConfigPath: filepath.Join("..", "..", "testdata", "app_config.yaml"),
		format:        "MONTH_WITH_YEAR",
		values:        []string{"1714564800"},
	}, &out)
	require.NoError(t, err)

	assert.Equal(t, "Mai 2024\n", out.String())
}

func TestRunBadOptions(t *testing.T) {
	err := run(cliConfig{quarterStartMonth: 14, values: []string{"0"}}, &bytes.Buffer{})
	assert.Error(t, err)
}
