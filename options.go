package chartsdk

import (
	"fmt"
	"maps"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/language"
)

// StringsFormats carries the localized labels the host uses for special values
// and positional date-number names. Field tags follow the host payload keys.
type StringsFormats struct {
	NullValuePlaceholderLabel    string            `json:"null_value_placeholder_label" yaml:"null_value_placeholder_label" toml:"null_value_placeholder_label"`
	EmptyValuePlaceholderLabel   string            `json:"empty_value_placeholder_label" yaml:"empty_value_placeholder_label" toml:"empty_value_placeholder_label"`
	OtherValuePlaceholderLabel   string            `json:"other_value_placeholder_label" yaml:"other_value_placeholder_label" toml:"other_value_placeholder_label"`
	UnavailableColumnSampleValue string            `json:"unavailabe_column_sample_value" yaml:"unavailabe_column_sample_value" toml:"unavailabe_column_sample_value"`
	QuarterOfYear                string            `json:"quarter_of_year" yaml:"quarter_of_year" toml:"quarter_of_year"`
	WeekOfDay                    map[string]string `json:"weekOfDay" yaml:"weekOfDay" toml:"weekOfDay"`
	MonthOfYear                  map[string]string `json:"monthOfYear" yaml:"monthOfYear" toml:"monthOfYear"`
}

// DateConstants holds the canonical date-number patterns. A caller pattern equal
// to one of these selects the bare (or name lookup) rendering for that type.
type DateConstants struct {
	SpecialValueUnavailable string `json:"special_value_unavailable" yaml:"special_value_unavailable" toml:"special_value_unavailable"`
	DayInMonthFormat        string `json:"day_in_month_format" yaml:"day_in_month_format" toml:"day_in_month_format"`
	DayInQuarterFormat      string `json:"day_in_quarter_format" yaml:"day_in_quarter_format" toml:"day_in_quarter_format"`
	DayInYearFormat         string `json:"day_in_year_format" yaml:"day_in_year_format" toml:"day_in_year_format"`
	DayOfWeekFormat         string `json:"day_of_week_format" yaml:"day_of_week_format" toml:"day_of_week_format"`
	MonthInQuarterFormat    string `json:"month_in_quarter_format" yaml:"month_in_quarter_format" toml:"month_in_quarter_format"`
	MonthInYearFormat       string `json:"month_in_year_format" yaml:"month_in_year_format" toml:"month_in_year_format"`
	WeekInYearFormat        string `json:"week_in_year_format" yaml:"week_in_year_format" toml:"week_in_year_format"`
}

// FormattingOptions is the read only configuration bag passed to every
// formatting call. A nil *FormattingOptions behaves like an empty bag.
type FormattingOptions struct {
	Locale                              string            `json:"locale" yaml:"locale" toml:"locale" validate:"omitempty,bcp47_language_tag"`
	DateFormats                         map[string]string `json:"tsLocaleBasedDateFormats" yaml:"tsLocaleBasedDateFormats" toml:"tsLocaleBasedDateFormats"`
	StringsFormats                      StringsFormats    `json:"tsLocaleBasedStringsFormats" yaml:"tsLocaleBasedStringsFormats" toml:"tsLocaleBasedStringsFormats"`
	DateConstants                       DateConstants     `json:"tsDateConstants" yaml:"tsDateConstants" toml:"tsDateConstants"`
	QuarterStartMonth                   int               `json:"quarterStartMonth" yaml:"quarterStartMonth" toml:"quarterStartMonth" validate:"omitempty,min=1,max=12"`
	OmitYear                            bool              `json:"omitYear" yaml:"omitYear" toml:"omitYear"`
	CustomCalendarOverridesFiscalOffset bool              `json:"customCalendarOverridesFiscalOffset" yaml:"customCalendarOverridesFiscalOffset" toml:"customCalendarOverridesFiscalOffset"`

	// Location is the reference frame epochs are rendered in. Defaults to UTC.
	Location *time.Location `json:"-" yaml:"-" toml:"-" validate:"-"`
}

// Option mutates FormattingOptions during construction
type Option func(*FormattingOptions) error

// NewFormattingOptions builds options from the supplied functional options
func NewFormattingOptions(opts ...Option) (*FormattingOptions, error) {
	out := &FormattingOptions{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(out); err != nil {
			return nil, err
		}
	}

	if err := out.Validate(); err != nil {
		return nil, err
	}
	return out, nil
}

func WithLocale(locale string) Option {
	return func(o *FormattingOptions) error {
		o.Locale = normalizeLocale(locale)
		return nil
	}
}

// WithDateFormats merges preset to pattern entries into the options
func WithDateFormats(formats map[string]string) Option {
	return func(o *FormattingOptions) error {
		if len(formats) == 0 {
			return nil
		}
		if o.DateFormats == nil {
			o.DateFormats = make(map[string]string, len(formats))
		}
		maps.Copy(o.DateFormats, formats)
		return nil
	}
}

func WithStringsFormats(formats StringsFormats) Option {
	return func(o *FormattingOptions) error {
		o.StringsFormats = formats.clone()
		return nil
	}
}

func WithDateConstants(constants DateConstants) Option {
	return func(o *FormattingOptions) error {
		o.DateConstants = constants
		return nil
	}
}

// WithQuarterStartMonth sets the first month of the fiscal year (1-12)
func WithQuarterStartMonth(month int) Option {
	return func(o *FormattingOptions) error {
		if month < 1 || month > 12 {
			return fmt.Errorf("%w: quarter start month %d", ErrInvalidOptions, month)
		}
		o.QuarterStartMonth = month
		return nil
	}
}

func WithOmitYear(omit bool) Option {
	return func(o *FormattingOptions) error {
		o.OmitYear = omit
		return nil
	}
}

func WithCustomCalendarOverridesFiscalOffset(override bool) Option {
	return func(o *FormattingOptions) error {
		o.CustomCalendarOverridesFiscalOffset = override
		return nil
	}
}

func WithLocation(loc *time.Location) Option {
	return func(o *FormattingOptions) error {
		o.Location = loc
		return nil
	}
}

// WithBaseOptions seeds the options from an existing bag, later options win
func WithBaseOptions(base *FormattingOptions) Option {
	return func(o *FormattingOptions) error {
		if base == nil {
			return nil
		}
		*o = *base.Clone()
		return nil
	}
}

var optionsValidator = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field ranges. Formatting never calls it, a bag that fails
// validation still formats with best effort fallbacks.
func (o *FormattingOptions) Validate() error {
	if o == nil {
		return nil
	}
	if err := optionsValidator.Struct(o); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidOptions, err)
	}
	return nil
}

// Clone returns a deep copy
func (o *FormattingOptions) Clone() *FormattingOptions {
	if o == nil {
		return &FormattingOptions{}
	}
	out := *o
	if o.DateFormats != nil {
		out.DateFormats = maps.Clone(o.DateFormats)
	}
	out.StringsFormats = o.StringsFormats.clone()
	return &out
}

// WithYearOmitted returns a copy with OmitYear set
func (o *FormattingOptions) WithYearOmitted(omit bool) *FormattingOptions {
	out := o.Clone()
	out.OmitYear = omit
	return out
}

func (s StringsFormats) clone() StringsFormats {
	out := s
	if s.WeekOfDay != nil {
		out.WeekOfDay = maps.Clone(s.WeekOfDay)
	}
	if s.MonthOfYear != nil {
		out.MonthOfYear = maps.Clone(s.MonthOfYear)
	}
	return out
}

func (o *FormattingOptions) labels() StringsFormats {
	if o == nil {
		return StringsFormats{}
	}
	return o.StringsFormats
}

func (o *FormattingOptions) constants() DateConstants {
	if o == nil {
		return DateConstants{}
	}
	return o.DateConstants
}

func (o *FormattingOptions) nullLabel() string {
	return o.labels().NullValuePlaceholderLabel
}

// datePattern resolves a preset name through the locale table
func (o *FormattingOptions) datePattern(name string) (string, bool) {
	if o == nil || o.DateFormats == nil || name == "" {
		return "", false
	}
	pattern, ok := o.DateFormats[name]
	if !ok || pattern == "" {
		return "", false
	}
	return pattern, true
}

func (o *FormattingOptions) quarterStartMonth() int {
	if o == nil || o.QuarterStartMonth < 1 || o.QuarterStartMonth > 12 {
		return defaultQuarterStartMonth
	}
	return o.QuarterStartMonth
}

func (o *FormattingOptions) omitYear() bool {
	return o != nil && o.OmitYear
}

func (o *FormattingOptions) customCalendarOverridesFiscalOffset() bool {
	return o != nil && o.CustomCalendarOverridesFiscalOffset
}

func (o *FormattingOptions) location() *time.Location {
	if o == nil || o.Location == nil {
		return time.UTC
	}
	return o.Location
}

func (o *FormattingOptions) languageTag() language.Tag {
	if o == nil || strings.TrimSpace(o.Locale) == "" {
		return language.AmericanEnglish
	}
	tag, err := language.Parse(normalizeLocale(o.Locale))
	if err != nil {
		return language.AmericanEnglish
	}
	return tag
}
