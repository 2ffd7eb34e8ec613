package chartsdk

import (
	"fmt"
	"maps"
	"strconv"
	"strings"
	"time"
)

// DateFormatsConfig is the date section of the host app config. Date formats
// are keyed by locale, the strings and constants apply to the session locale.
type DateFormatsConfig struct {
	LocaleBasedDateFormats    map[string]map[string]string `json:"tsLocaleBasedDateFormats,omitempty" yaml:"tsLocaleBasedDateFormats,omitempty" toml:"tsLocaleBasedDateFormats,omitempty"`
	LocaleBasedStringsFormats StringsFormats               `json:"tsLocaleBasedStringsFormats" yaml:"tsLocaleBasedStringsFormats" toml:"tsLocaleBasedStringsFormats"`
	DateConstants             DateConstants                `json:"tsDateConstants" yaml:"tsDateConstants" toml:"tsDateConstants"`
	DefaultDataSourceID       string                       `json:"defaultDataSourceId,omitempty" yaml:"defaultDataSourceId,omitempty" toml:"defaultDataSourceId,omitempty"`
}

// LocaleOptions carries the session locale settings. QuarterStartMonth is a
// string on the wire.
type LocaleOptions struct {
	Locale            string `json:"locale" yaml:"locale" toml:"locale"`
	QuarterStartMonth string `json:"quarterStartMonth" yaml:"quarterStartMonth" toml:"quarterStartMonth"`
	SessionTimezone   string `json:"sessionTimezone" yaml:"sessionTimezone" toml:"sessionTimezone"`
}

type AppOptions struct {
	IsMobile           bool `json:"isMobile" yaml:"isMobile" toml:"isMobile"`
	IsPrintMode        bool `json:"isPrintMode" yaml:"isPrintMode" toml:"isPrintMode"`
	IsLiveboardContext bool `json:"isLiveboardContext" yaml:"isLiveboardContext" toml:"isLiveboardContext"`
	IsDebugMode        bool `json:"isDebugMode" yaml:"isDebugMode" toml:"isDebugMode"`
}

// AppConfig is the part of the host application config the formatter reads.
type AppConfig struct {
	DateFormatsConfig *DateFormatsConfig `json:"dateFormatsConfig,omitempty" yaml:"dateFormatsConfig,omitempty" toml:"dateFormatsConfig,omitempty"`
	AppOptions        *AppOptions        `json:"appOptions,omitempty" yaml:"appOptions,omitempty" toml:"appOptions,omitempty"`
	LocaleOptions     *LocaleOptions     `json:"localeOptions,omitempty" yaml:"localeOptions,omitempty" toml:"localeOptions,omitempty"`
	AppURL            string             `json:"appUrl,omitempty" yaml:"appUrl,omitempty" toml:"appUrl,omitempty"`
}

const defaultAppLocale = "en-US"

// Locale returns the session locale, en-US when unset.
func (c *AppConfig) Locale() string {
	if c == nil || c.LocaleOptions == nil {
		return defaultAppLocale
	}
	if locale := normalizeLocale(c.LocaleOptions.Locale); locale != "" {
		return locale
	}
	return defaultAppLocale
}

// DebugMode reports whether the host asked for verbose diagnostics.
func (c *AppConfig) DebugMode() bool {
	return c != nil && c.AppOptions != nil && c.AppOptions.IsDebugMode
}

// OptionsFromAppConfig builds the formatting options for the session locale.
// The date format table is picked by walking the locale parent chain, so
// "en-AU" uses an "en" table when no exact entry exists. Extra options are
// applied last.
func OptionsFromAppConfig(cfg *AppConfig, opts ...Option) (*FormattingOptions, error) {
	locale := cfg.Locale()
	base := []Option{WithLocale(locale)}

	if cfg != nil && cfg.DateFormatsConfig != nil {
		dfc := cfg.DateFormatsConfig
		if len(dfc.LocaleBasedDateFormats) > 0 {
			formats, ok := lookupLocaleFormats(dfc.LocaleBasedDateFormats, locale)
			if !ok {
				return nil, fmt.Errorf("%w: no date formats for %q", ErrLocaleNotFound, locale)
			}
			base = append(base, WithDateFormats(formats))
		}
		base = append(base,
			WithStringsFormats(dfc.LocaleBasedStringsFormats),
			WithDateConstants(dfc.DateConstants),
		)
	}

	if cfg != nil && cfg.LocaleOptions != nil {
		if raw := strings.TrimSpace(cfg.LocaleOptions.QuarterStartMonth); raw != "" {
			month, err := strconv.Atoi(raw)
			if err != nil {
				return nil, fmt.Errorf("%w: quarter start month %q", ErrInvalidOptions, raw)
			}
			base = append(base, WithQuarterStartMonth(month))
		}
		if tz := strings.TrimSpace(cfg.LocaleOptions.SessionTimezone); tz != "" {
			loc, err := time.LoadLocation(tz)
			if err != nil {
				return nil, fmt.Errorf("%w: session timezone %q: %v", ErrInvalidOptions, tz, err)
			}
			base = append(base, WithLocation(loc))
		}
	}

	return NewFormattingOptions(append(base, opts...)...)
}

func lookupLocaleFormats(tables map[string]map[string]string, locale string) (map[string]string, bool) {
	normalized := make(map[string]map[string]string, len(tables))
	for key, table := range tables {
		normalized[strings.ToLower(normalizeLocale(key))] = table
	}

	for _, candidate := range localeLookupChain(locale) {
		if table, ok := normalized[strings.ToLower(candidate)]; ok {
			return maps.Clone(table), true
		}
	}
	if table, ok := normalized[strings.ToLower(defaultAppLocale)]; ok {
		return maps.Clone(table), true
	}
	return nil, false
}
