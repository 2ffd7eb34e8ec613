package chartsdk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fiscalRegistry(t *testing.T) *FormatterRegistry {
	t.Helper()
	return NewFormatterRegistry(
		WithFormatterRegistryLocales("en-US"),
		WithFormatterRegistryOptions("en-US", DefaultOptions()),
		WithFormatterRegistryOptions("en_GB", testOptions(t, WithLocale("en-GB"), WithQuarterStartMonth(4))),
	)
}

func TestNewFormatterRegistryDefaults(t *testing.T) {
	registry := NewFormatterRegistry()
	assert.Equal(t, []string{"en-US"}, registry.Locales())

	opts, err := registry.Options("")
	require.NoError(t, err)
	assert.Equal(t, "en-US", opts.Locale)

	opts, err = registry.Options("pt-BR")
	require.NoError(t, err)
	assert.Equal(t, "en-US", opts.Locale)
}

func TestFormatterRegistryOptionsFallback(t *testing.T) {
	registry := fiscalRegistry(t)
	assert.Equal(t, []string{"en-US", "en-GB"}, registry.Locales())

	opts, err := registry.Options("en_GB")
	require.NoError(t, err)
	assert.Equal(t, 4, opts.QuarterStartMonth)

	// the returned bag is a copy
	opts.QuarterStartMonth = 9
	again, err := registry.Options("en-GB")
	require.NoError(t, err)
	assert.Equal(t, 4, again.QuarterStartMonth)

	resolver := NewStaticFallbackResolver()
	resolver.Set("en-IE", "en-GB")
	pinned := NewFormatterRegistry(
		WithFormatterRegistryResolver(resolver),
		WithFormatterRegistryOptions("en-US", DefaultOptions()),
		WithFormatterRegistryOptions("en-GB", testOptions(t, WithQuarterStartMonth(4))),
	)
	opts, err = pinned.Options("en-IE")
	require.NoError(t, err)
	assert.Equal(t, 4, opts.QuarterStartMonth)
}

func TestFormatterRegistryLocaleNotFound(t *testing.T) {
	registry := NewFormatterRegistry(
		WithFormatterRegistryLocales("fr"),
		WithFormatterRegistryOptions("de", DefaultOptions()),
	)

	_, err := registry.Options("ja")
	assert.ErrorIs(t, err, ErrLocaleNotFound)

	opts, err := registry.Options("de-AT")
	require.NoError(t, err)
	assert.NotNil(t, opts)
}

func TestFormatterRegistryRegisterOptions(t *testing.T) {
	registry := NewFormatterRegistry()
	format := registry.FuncMap("de")["format_date"].(func(any, string) string)
	assert.Equal(t, "05/01/2024", format(mayFirstNoon, string(DateShort)))

	registry.RegisterOptions("de", testOptions(t, WithLocale("de"), WithDateFormats(map[string]string{
		string(DateShort): "dd.MM.yyyy",
	})))
	assert.Contains(t, registry.Locales(), "de")

	format = registry.FuncMap("de")["format_date"].(func(any, string) string)
	assert.Equal(t, "01.05.2024", format(mayFirstNoon, string(DateShort)))
}

func TestFormatterRegistryBoundHelpers(t *testing.T) {
	registry := fiscalRegistry(t)
	funcs := registry.FuncMap("en-GB")

	formatDate := funcs["format_date"].(func(any, string) string)
	assert.Equal(t, "Q1 FY 2025", formatDate(mayFirstNoon, string(QuarterWithYear)))
	assert.Equal(t, "{Null}", formatDate(nil, string(QuarterWithYear)))

	formatDateTime := funcs["format_datetime"].(func(any, string) string)
	assert.Equal(t, "05/01/FY 2025", formatDateTime(int64(mayFirstNoon), string(DateShort)))
	assert.Equal(t, InvalidDate, formatDateTime("soon", string(DateShort)))

	formatDateNum := funcs["format_date_num"].(func(string, any, string) string)
	assert.Equal(t, "April", formatDateNum(string(DateNumMonthInYear), 1, "MMMM"))

	ordinal := funcs["ordinal"].(func(any) string)
	assert.Equal(t, "21st", ordinal(21))
	assert.Equal(t, "{Null}", ordinal(nil))

	bucketFormat := funcs["bucket_format"].(func(string) string)
	assert.Equal(t, string(MonthWithYear), bucketFormat("M"))
	assert.Equal(t, "", bucketFormat("dow"))
}

func TestFormatterRegistryOverrides(t *testing.T) {
	registry := fiscalRegistry(t)

	registry.RegisterLocale("en", "ordinal", func(any) string { return "english" })
	registry.RegisterLocale("en-GB", "ordinal", func(any) string { return "british" })

	ordinal, ok := registry.Formatter("ordinal", "en-GB")
	require.True(t, ok)
	assert.Equal(t, "british", ordinal.(func(any) string)(1))

	ordinal, ok = registry.Formatter("ordinal", "en-US")
	require.True(t, ok)
	assert.Equal(t, "english", ordinal.(func(any) string)(1))

	ordinal, ok = registry.Formatter("ordinal", "de")
	require.True(t, ok)
	assert.Equal(t, "1st", ordinal.(func(any) string)(1))

	registry.Register("ordinal", func(any) string { return "global" })
	ordinal, ok = registry.Formatter("ordinal", "en-GB")
	require.True(t, ok)
	assert.Equal(t, "global", ordinal.(func(any) string)(1))

	_, ok = registry.Formatter("", "en-GB")
	assert.False(t, ok)
	_, ok = registry.Formatter("unknown", "en-GB")
	assert.False(t, ok)
}

func TestFormatterRegistryFuncMapIsCopy(t *testing.T) {
	registry := NewFormatterRegistry()
	funcs := registry.FuncMap("en-US")
	delete(funcs, "format_date")

	_, ok := registry.Formatter("format_date", "en-US")
	assert.True(t, ok)
}
