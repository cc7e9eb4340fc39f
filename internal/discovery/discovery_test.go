package discovery_test

import (
	"testing"

	"github.com/mdouchement/topbrands/internal/discovery"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestStaticResolve(t *testing.T) {
	registry := discovery.Static{
		discovery.CatalogService: "http://localhost:8080",
		"empty":                  "",
	}

	endpoint, err := registry.Resolve("item-catalog-service")
	assert.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", endpoint)

	_, err = registry.Resolve("ghost")
	assert.Equal(t, discovery.ErrUnknownService, errors.Cause(err))
	assert.EqualError(t, err, "ghost: unknown service")

	_, err = registry.Resolve("empty")
	assert.Error(t, err)
}

func TestStaticNames(t *testing.T) {
	registry := discovery.Static{"b": "http://b", "a": "http://a"}
	assert.Equal(t, []string{"a", "b"}, registry.Names())
}
