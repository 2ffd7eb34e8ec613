package chartsdk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStaticFallbackResolver(t *testing.T) {
	resolver := NewStaticFallbackResolver()
	resolver.Set("es_MX", "es-419", "es_MX", "es", "")

	assert.Equal(t, []string{"es-419", "es"}, resolver.Resolve("es-MX"))
	assert.Equal(t, []string{"pt"}, resolver.Resolve("pt-BR"))
	assert.Nil(t, resolver.Resolve(""))

	// callers can't mutate the pinned chain
	chain := resolver.Resolve("es-MX")
	chain[0] = "xx"
	assert.Equal(t, []string{"es-419", "es"}, resolver.Resolve("es-MX"))
}

func TestStaticFallbackResolverNil(t *testing.T) {
	var resolver *StaticFallbackResolver
	resolver.Set("de-AT", "de")
	assert.Equal(t, []string{"de"}, resolver.Resolve("de-AT"))
}
