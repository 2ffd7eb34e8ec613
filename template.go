package chartsdk

import (
	"reflect"
)

// HelperConfig configures template helper exports
type HelperConfig struct {
	// LocaleKey names the map key or struct field holding the locale in
	// template data. Defaults to "Locale".
	LocaleKey string
	// UseSystemCalendar renders dates without the fiscal calendar.
	UseSystemCalendar bool
}

// TemplateHelpers exposes the formatting helpers for go templates. Each
// helper takes the template data (or a locale string) first and formats
// with the registry options for that locale.
func TemplateHelpers(registry *FormatterRegistry, cfg HelperConfig) map[string]any {
	if registry == nil {
		registry = NewFormatterRegistry()
	}

	optionsFor := func(data any) *FormattingOptions {
		opts, err := registry.Options(extractLocale(data, cfg.LocaleKey))
		if err != nil {
			logger().Debug("template helper locale", "error", err)
			return nil
		}
		return opts
	}

	return map[string]any{
		"current_locale": func(data any) string {
			return extractLocale(data, cfg.LocaleKey)
		},
		"format_date": func(data any, input any, format string) string {
			return FormatDate(input, format, cfg.UseSystemCalendar, optionsFor(data))
		},
		"format_datetime": func(data any, epoch any, format string) string {
			seconds, ok := toEpochSeconds(epoch)
			if !ok {
				return InvalidDate
			}
			return FormatDateTime(seconds, format, cfg.UseSystemCalendar, optionsFor(data))
		},
		"format_date_num": func(data any, dateNumType string, value any, pattern string) string {
			return FormatDateNum(DateNumType(dateNumType), value, pattern, optionsFor(data))
		},
		"format_column_value": func(data any, col ChartColumn, value any, format string) string {
			return FormatColumnValue(col, value, format, cfg.UseSystemCalendar, optionsFor(data))
		},
	}
}

// extractLocale extracts the locale from template data using the configured key
// This function handles both map[string]any and struct types (like PageData)
func extractLocale(data any, localeKey string) string {
	if data == nil {
		return defaultAppLocale
	}

	if localeKey == "" {
		localeKey = "Locale"
	}

	if str, ok := data.(string); ok {
		return normalizeLocale(str)
	}

	switch d := data.(type) {
	case map[string]any:
		if v, ok := d[localeKey]; ok {
			if str, ok := v.(string); ok {
				return normalizeLocale(str)
			}
		}
	case map[string]string:
		if v, ok := d[localeKey]; ok {
			return normalizeLocale(v)
		}
	}

	value := reflect.ValueOf(data)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return defaultAppLocale
		}
		value = value.Elem()
	}

	if value.Kind() == reflect.Struct {
		field := value.FieldByName(localeKey)
		if field.IsValid() && field.Kind() == reflect.String {
			return normalizeLocale(field.String())
		}
	}

	return defaultAppLocale
}
