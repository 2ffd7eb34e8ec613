package chartsdk

import (
	"sync"
)

// FallbackResolver resolves fallback locale chains
type FallbackResolver interface {
	Resolve(locale string) []string
}

// StaticFallbackResolver returns explicitly configured chains and derives the
// locale parent chain for everything else.
type StaticFallbackResolver struct {
	mu     sync.RWMutex
	chains map[string][]string
}

func NewStaticFallbackResolver() *StaticFallbackResolver {
	return &StaticFallbackResolver{chains: make(map[string][]string)}
}

// Set pins the fallback chain for a locale, replacing the derived one.
func (s *StaticFallbackResolver) Set(locale string, fallbacks ...string) {
	if s == nil {
		return
	}
	locale = normalizeLocale(locale)
	if locale == "" {
		return
	}

	chain := make([]string, 0, len(fallbacks))
	for _, fallback := range fallbacks {
		if normalized := normalizeLocale(fallback); normalized != "" && normalized != locale {
			chain = append(chain, normalized)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.chains == nil {
		s.chains = make(map[string][]string)
	}
	s.chains[locale] = chain
}

func (s *StaticFallbackResolver) Resolve(locale string) []string {
	locale = normalizeLocale(locale)
	if locale == "" {
		return nil
	}
	if s != nil {
		s.mu.RLock()
		chain, ok := s.chains[locale]
		s.mu.RUnlock()
		if ok {
			return append([]string(nil), chain...)
		}
	}
	return localeParentChain(locale)
}
