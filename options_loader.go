package chartsdk

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

//go:embed testdata/default_date_formats.json
var defaultDateFormatsJSON []byte

// optionsDocument is the on-disk shape of FormattingOptions. Timezone is an
// IANA name resolved into Location.
type optionsDocument struct {
	FormattingOptions `yaml:",inline"`
	Timezone          string `json:"timezone" yaml:"timezone" toml:"timezone"`
}

func (d optionsDocument) options() (*FormattingOptions, error) {
	out := d.FormattingOptions
	if tz := strings.TrimSpace(d.Timezone); tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			return nil, fmt.Errorf("%w: timezone %q: %v", ErrInvalidOptions, tz, err)
		}
		out.Location = loc
	}
	out.Locale = normalizeLocale(out.Locale)
	return &out, nil
}

var defaultOptions = sync.OnceValues(func() (*FormattingOptions, error) {
	var doc optionsDocument
	if err := json.Unmarshal(defaultDateFormatsJSON, &doc); err != nil {
		return nil, fmt.Errorf("parse default date formats: %w", err)
	}
	return doc.options()
})

// DefaultOptions returns a copy of the embedded en-US options bag.
func DefaultOptions() *FormattingOptions {
	opts, err := defaultOptions()
	if err != nil {
		// the embedded file is part of the build
		panic(err)
	}
	return opts.Clone()
}

// LoadOptionsFile reads a single options file. The decoder is picked from
// the extension: .json, .yaml, .yml or .toml.
func LoadOptionsFile(path string) (*FormattingOptions, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load options: %w", err)
	}

	var doc optionsDocument
	if err := decodeFile(path, data, &doc); err != nil {
		return nil, fmt.Errorf("parse options %s: %w", path, err)
	}

	opts, err := doc.options()
	if err != nil {
		return nil, err
	}
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return opts, nil
}

// LoadAppConfigFile reads the host application config from a json, yaml or
// toml file.
func LoadAppConfigFile(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load app config: %w", err)
	}

	var cfg AppConfig
	if err := decodeFile(path, data, &cfg); err != nil {
		return nil, fmt.Errorf("parse app config %s: %w", path, err)
	}
	return &cfg, nil
}

func decodeFile(path string, data []byte, out any) error {
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".json":
		return json.Unmarshal(data, out)
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, out); err != nil {
			return fmt.Errorf("yaml parse error: %w", err)
		}
		return nil
	case ".toml":
		if err := toml.Unmarshal(data, out); err != nil {
			return fmt.Errorf("toml parse error: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: extension %q", ErrUnsupportedFormat, ext)
	}
}

// OptionsLoader layers option files over the embedded defaults
type OptionsLoader struct {
	path      string
	overrides []string
}

// NewOptionsLoader creates a loader. An empty path loads only the defaults.
func NewOptionsLoader(path string) *OptionsLoader {
	return &OptionsLoader{path: path}
}

// AddOverride adds a file merged after the main one
func (l *OptionsLoader) AddOverride(path string) *OptionsLoader {
	if l == nil || path == "" {
		return l
	}
	l.overrides = append(l.overrides, path)
	return l
}

// Load merges the defaults, the main file and every override in order.
func (l *OptionsLoader) Load() (*FormattingOptions, error) {
	base, err := defaultOptions()
	if err != nil {
		return nil, err
	}
	out := base.Clone()
	if l == nil {
		return out, nil
	}

	paths := make([]string, 0, len(l.overrides)+1)
	if l.path != "" {
		paths = append(paths, l.path)
	}
	paths = append(paths, l.overrides...)

	for _, path := range paths {
		layer, err := LoadOptionsFile(path)
		if err != nil {
			return nil, err
		}
		mergeOptions(out, layer)
	}

	if err := out.Validate(); err != nil {
		return nil, err
	}
	return out, nil
}

// mergeOptions copies the set fields of source into dest (source takes
// precedence). Booleans can only be switched on by a layer.
func mergeOptions(dest, source *FormattingOptions) {
	if dest == nil || source == nil {
		return
	}

	if source.Locale != "" {
		dest.Locale = source.Locale
	}
	if source.DateFormats != nil {
		if dest.DateFormats == nil {
			dest.DateFormats = make(map[string]string, len(source.DateFormats))
		}
		maps.Copy(dest.DateFormats, source.DateFormats)
	}

	mergeStringsFormats(&dest.StringsFormats, source.StringsFormats)
	mergeDateConstants(&dest.DateConstants, source.DateConstants)

	if source.QuarterStartMonth != 0 {
		dest.QuarterStartMonth = source.QuarterStartMonth
	}
	if source.OmitYear {
		dest.OmitYear = true
	}
	if source.CustomCalendarOverridesFiscalOffset {
		dest.CustomCalendarOverridesFiscalOffset = true
	}
	if source.Location != nil {
		dest.Location = source.Location
	}
}

func mergeStringsFormats(dest *StringsFormats, source StringsFormats) {
	setIfPresent(&dest.NullValuePlaceholderLabel, source.NullValuePlaceholderLabel)
	setIfPresent(&dest.EmptyValuePlaceholderLabel, source.EmptyValuePlaceholderLabel)
	setIfPresent(&dest.OtherValuePlaceholderLabel, source.OtherValuePlaceholderLabel)
	setIfPresent(&dest.UnavailableColumnSampleValue, source.UnavailableColumnSampleValue)
	setIfPresent(&dest.QuarterOfYear, source.QuarterOfYear)

	if source.WeekOfDay != nil {
		if dest.WeekOfDay == nil {
			dest.WeekOfDay = make(map[string]string, len(source.WeekOfDay))
		}
		maps.Copy(dest.WeekOfDay, source.WeekOfDay)
	}
	if source.MonthOfYear != nil {
		if dest.MonthOfYear == nil {
			dest.MonthOfYear = make(map[string]string, len(source.MonthOfYear))
		}
		maps.Copy(dest.MonthOfYear, source.MonthOfYear)
	}
}

func mergeDateConstants(dest *DateConstants, source DateConstants) {
	setIfPresent(&dest.SpecialValueUnavailable, source.SpecialValueUnavailable)
	setIfPresent(&dest.DayInMonthFormat, source.DayInMonthFormat)
	setIfPresent(&dest.DayInQuarterFormat, source.DayInQuarterFormat)
	setIfPresent(&dest.DayInYearFormat, source.DayInYearFormat)
	setIfPresent(&dest.DayOfWeekFormat, source.DayOfWeekFormat)
	setIfPresent(&dest.MonthInQuarterFormat, source.MonthInQuarterFormat)
	setIfPresent(&dest.MonthInYearFormat, source.MonthInYearFormat)
	setIfPresent(&dest.WeekInYearFormat, source.WeekInYearFormat)
}

func setIfPresent(dest *string, value string) {
	if value != "" {
		*dest = value
	}
}
