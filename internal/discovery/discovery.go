// Package discovery resolves service names to base URLs.
package discovery

import (
	"sort"

	"github.com/pkg/errors"
)

// CatalogService is the name under which the item catalog is registered.
const CatalogService = "item-catalog-service"

// ErrUnknownService is returned when a name is not registered.
var ErrUnknownService = errors.New("unknown service")

type (
	// A Resolver resolves a service name to its base URL.
	Resolver interface {
		Resolve(name string) (string, error)
	}

	// Static is a Resolver backed by a fixed registry.
	Static map[string]string
)

// Resolve implements Resolver.
func (s Static) Resolve(name string) (string, error) {
	endpoint, ok := s[name]
	if !ok || endpoint == "" {
		return "", errors.Wrap(ErrUnknownService, name)
	}
	return endpoint, nil
}

// Names returns the registered service names, sorted.
func (s Static) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
