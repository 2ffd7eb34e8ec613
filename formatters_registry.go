package chartsdk

import (
	"fmt"
	"maps"
	"sync"
)

// FormatterRegistry holds formatting options per locale and exposes
// template helpers bound to them.
type FormatterRegistry struct {
	mu        sync.RWMutex
	options   map[string]*FormattingOptions
	overrides map[string]map[string]any
	globals   map[string]any
	funcCache map[string]map[string]any
	resolver  FallbackResolver
	locales   []string
}

type formatterRegistryConfig struct {
	resolver FallbackResolver
	locales  []string
	options  map[string]*FormattingOptions
}

type FormatterRegistryOption func(*formatterRegistryConfig)

func WithFormatterRegistryResolver(resolver FallbackResolver) FormatterRegistryOption {
	return func(frc *formatterRegistryConfig) {
		frc.resolver = resolver
	}
}

// WithFormatterRegistryLocales lists the locales served. The first one is the
// default used for unknown locales.
func WithFormatterRegistryLocales(locales ...string) FormatterRegistryOption {
	return func(frc *formatterRegistryConfig) {
		frc.locales = append(frc.locales, locales...)
	}
}

func WithFormatterRegistryOptions(locale string, opts *FormattingOptions) FormatterRegistryOption {
	return func(frc *formatterRegistryConfig) {
		locale = normalizeLocale(locale)
		if locale == "" || opts == nil {
			return
		}
		if frc.options == nil {
			frc.options = make(map[string]*FormattingOptions)
		}
		frc.options[locale] = opts
	}
}

// NewFormatterRegistry builds a registry. Without configured options the
// embedded en-US bag is registered.
func NewFormatterRegistry(opts ...FormatterRegistryOption) *FormatterRegistry {
	cfg := formatterRegistryConfig{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if len(cfg.options) == 0 {
		cfg.options = map[string]*FormattingOptions{defaultAppLocale: DefaultOptions()}
	}

	locales := cfg.locales
	for locale := range cfg.options {
		locales = append(locales, locale)
	}

	registry := &FormatterRegistry{
		options:   make(map[string]*FormattingOptions, len(cfg.options)),
		overrides: make(map[string]map[string]any),
		resolver:  cfg.resolver,
		locales:   orderedLocales(cfg.locales, locales),
	}
	if registry.resolver == nil {
		registry.resolver = NewStaticFallbackResolver()
	}

	for locale, bag := range cfg.options {
		registry.options[locale] = bag.Clone()
	}

	return registry
}

// orderedLocales keeps the explicitly listed locales first, then the rest
// sorted.
func orderedLocales(explicit, all []string) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, locale := range explicit {
		locale = normalizeLocale(locale)
		if _, ok := seen[locale]; ok || locale == "" {
			continue
		}
		seen[locale] = struct{}{}
		out = append(out, locale)
	}
	for _, locale := range normalizeLocales(all) {
		if _, ok := seen[locale]; ok {
			continue
		}
		seen[locale] = struct{}{}
		out = append(out, locale)
	}
	return out
}

// RegisterOptions sets or replaces the options bag for a locale
func (r *FormatterRegistry) RegisterOptions(locale string, opts *FormattingOptions) {
	locale = normalizeLocale(locale)
	if locale == "" || opts == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.options == nil {
		r.options = make(map[string]*FormattingOptions)
	}
	r.options[locale] = opts.Clone()
	if !containsLocale(r.locales, locale) {
		r.locales = append(r.locales, locale)
	}
	r.invalidateFuncCacheLocked()
}

// Options returns the bag registered for locale or its closest fallback. An
// empty locale means the default locale.
func (r *FormatterRegistry) Options(locale string) (*FormattingOptions, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	opts, ok := r.optionsLocked(locale)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrLocaleNotFound, locale)
	}
	return opts.Clone(), nil
}

func (r *FormatterRegistry) optionsLocked(locale string) (*FormattingOptions, bool) {
	locale = normalizeLocale(locale)
	if locale == "" {
		locale = r.defaultLocale()
	}

	for _, candidate := range r.candidateLocales(locale) {
		if opts, ok := r.options[candidate]; ok {
			return opts, true
		}
	}
	opts, ok := r.options[r.defaultLocale()]
	return opts, ok
}

// Locales lists the locales with registered options
func (r *FormatterRegistry) Locales() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.locales...)
}

// Register sets or replaces a helper for every locale
func (r *FormatterRegistry) Register(name string, fn any) {
	if name == "" || fn == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.globals == nil {
		r.globals = make(map[string]any)
	}
	r.globals[name] = fn
	r.invalidateFuncCacheLocked()
}

// RegisterLocale registers a locale specific override for the <name> helper
func (r *FormatterRegistry) RegisterLocale(locale, name string, fn any) {
	locale = normalizeLocale(locale)
	if locale == "" || name == "" || fn == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.overrides == nil {
		r.overrides = make(map[string]map[string]any)
	}

	helpers := r.overrides[locale]
	if helpers == nil {
		helpers = make(map[string]any)
		r.overrides[locale] = helpers
	}
	helpers[name] = fn
	r.invalidateFuncCacheLocked()
}

// Formatter returns the helper implementation for the given name and locale
func (r *FormatterRegistry) Formatter(name, locale string) (any, bool) {
	if name == "" {
		return nil, false
	}
	fn, ok := r.funcMapForLocale(locale)[name]
	return fn, ok && fn != nil
}

// FuncMap returns all helper functions applicable to the locale
func (r *FormatterRegistry) FuncMap(locale string) map[string]any {
	return maps.Clone(r.funcMapForLocale(locale))
}

func (r *FormatterRegistry) funcMapForLocale(locale string) map[string]any {
	key := normalizeLocale(locale)

	r.mu.RLock()
	if cached, ok := r.funcCache[key]; ok {
		r.mu.RUnlock()
		return cached
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.funcCache == nil {
		r.funcCache = make(map[string]map[string]any)
	} else if cached, ok := r.funcCache[key]; ok {
		return cached
	}

	opts, _ := r.optionsLocked(key)
	result := boundHelpers(opts)

	effective := key
	if effective == "" {
		effective = r.defaultLocale()
	}
	if effective != "" {
		candidates := r.candidateLocales(effective)
		// least specific first so the target locale wins
		for i := len(candidates) - 1; i >= 0; i-- {
			if helpers, ok := r.overrides[candidates[i]]; ok {
				maps.Copy(result, helpers)
			}
		}
	}

	maps.Copy(result, r.globals)

	r.funcCache[key] = result
	return result
}

// boundHelpers returns the formatting helpers closed over opts
func boundHelpers(opts *FormattingOptions) map[string]any {
	return map[string]any{
		"format_date": func(input any, format string) string {
			return FormatDate(input, format, false, opts)
		},
		"format_datetime": func(epoch any, format string) string {
			seconds, ok := toEpochSeconds(epoch)
			if !ok {
				return InvalidDate
			}
			return FormatDateTime(seconds, format, false, opts)
		},
		"format_date_num": func(dateNumType string, value any, pattern string) string {
			return FormatDateNum(DateNumType(dateNumType), value, pattern, opts)
		},
		"ordinal": func(value any) string {
			v, label, kind := coerceDateNum(value, opts)
			if kind != dateNumOK {
				return label
			}
			return OrdinalSuffixedValue(v.n)
		},
		"bucket_format": func(bucket string) string {
			format, _ := PresetForBucket(TimeBucket(bucket))
			return format
		},
	}
}

func (r *FormatterRegistry) invalidateFuncCacheLocked() {
	r.funcCache = nil
}

func (r *FormatterRegistry) candidateLocales(locale string) []string {
	if locale == "" {
		return nil
	}

	chain := []string{locale}
	if r.resolver != nil {
		for _, parent := range r.resolver.Resolve(locale) {
			if parent == "" || containsLocale(chain, parent) {
				continue
			}
			chain = append(chain, parent)
		}
	}

	return chain
}

func containsLocale(locales []string, target string) bool {
	for _, locale := range locales {
		if locale == target {
			return true
		}
	}
	return false
}

func (r *FormatterRegistry) defaultLocale() string {
	if r == nil || len(r.locales) == 0 {
		return defaultAppLocale
	}
	return r.locales[0]
}
