package chartsdk

import (
	"bytes"
	"testing"
	"text/template"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pageData struct {
	Lang   string
	Epoch  int64
	Column ChartColumn
}

func renderTemplate(t *testing.T, helpers map[string]any, text string, data any) string {
	t.Helper()
	tmpl, err := template.New("test").Funcs(helpers).Parse(text)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, tmpl.Execute(&buf, data))
	return buf.String()
}

func TestTemplateHelpersMapData(t *testing.T) {
	helpers := TemplateHelpers(fiscalRegistry(t), HelperConfig{})

	data := map[string]any{"Locale": "en_GB", "Epoch": mayFirstNoon}
	out := renderTemplate(t, helpers, `{{ current_locale . }}: {{ format_date . .Epoch "QUARTER_WITH_YEAR" }}`, data)
	assert.Equal(t, "en-GB: Q1 FY 2025", out)

	data["Locale"] = "en-US"
	out = renderTemplate(t, helpers, `{{ format_datetime . .Epoch "DATE_SHORT" }}`, data)
	assert.Equal(t, "05/01/2024", out)
}

func TestTemplateHelpersStructData(t *testing.T) {
	helpers := TemplateHelpers(fiscalRegistry(t), HelperConfig{LocaleKey: "Lang"})

	data := &pageData{
		Lang:   "en-GB",
		Epoch:  mayFirstNoon,
		Column: ChartColumn{Type: ColumnTypeAttribute, DataType: DataTypeInt64, TimeBucket: ColumnTimeBucketMonthOfYear},
	}

	out := renderTemplate(t, helpers, `{{ format_date_num . "DATE_NUM_MONTH_IN_YEAR" 1 "MMMM" }}`, data)
	assert.Equal(t, "April", out)

	out = renderTemplate(t, helpers, `{{ format_column_value . .Column 12 "MMMM" }}`, data)
	assert.Equal(t, "March", out)
}

func TestTemplateHelpersSystemCalendar(t *testing.T) {
	helpers := TemplateHelpers(fiscalRegistry(t), HelperConfig{UseSystemCalendar: true})

	out := renderTemplate(t, helpers, `{{ format_date "en-GB" .Epoch "QUARTER_WITH_YEAR" }}`, map[string]any{"Epoch": mayFirstNoon})
	assert.Equal(t, "Q2 2024", out)
}

func TestTemplateHelpersNilRegistry(t *testing.T) {
	helpers := TemplateHelpers(nil, HelperConfig{})

	out := renderTemplate(t, helpers, `{{ format_datetime . .Epoch "bogus" }}`, map[string]any{"Epoch": "later"})
	assert.Equal(t, InvalidDate, out)

	out = renderTemplate(t, helpers, `{{ format_date . .Epoch "" }}`, map[string]any{"Epoch": mayFirstNoon})
	assert.Equal(t, "05/01/2024", out)
}

func TestTemplateHelpersMissingLocaleOptions(t *testing.T) {
	registry := NewFormatterRegistry(
		WithFormatterRegistryLocales("fr"),
		WithFormatterRegistryOptions("de", DefaultOptions()),
	)
	helpers := TemplateHelpers(registry, HelperConfig{})

	// no options resolve for ja, the helpers format with an empty bag
	out := renderTemplate(t, helpers, `{{ format_date . .Epoch "yyyy" }}`, map[string]any{"Locale": "ja", "Epoch": mayFirstNoon})
	assert.Equal(t, "2024", out)
}

func TestExtractLocale(t *testing.T) {
	var nilPage *pageData

	tests := []struct {
		name string
		data any
		key  string
		want string
	}{
		{"nil", nil, "", "en-US"},
		{"string", "fr_FR", "", "fr-FR"},
		{"map any", map[string]any{"Locale": "de"}, "", "de"},
		{"map any wrong type", map[string]any{"Locale": 12}, "", "en-US"},
		{"map string", map[string]string{"lang": "es"}, "lang", "es"},
		{"struct", pageData{Lang: "en-GB"}, "Lang", "en-GB"},
		{"struct pointer", &pageData{Lang: "en-GB"}, "Lang", "en-GB"},
		{"nil struct pointer", nilPage, "Lang", "en-US"},
		{"struct without field", pageData{Lang: "en-GB"}, "", "en-US"},
		{"unsupported", 42, "", "en-US"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractLocale(tt.data, tt.key))
		})
	}
}
