package resources

import (
	"fmt"
	"io"
	"net/url"
	"reflect"
)

// Loader finds resources by name.
type Loader interface {
	// Resource returns the locator of the named resource.
	Resource(name string) (*url.URL, error)

	// Open opens the named resource for reading. The caller closes it.
	Open(name string) (io.ReadCloser, error)
}

// TypeLoader resolves type names to Go types.
type TypeLoader interface {
	Type(name string) (reflect.Type, error)
}

// LoaderOption configures a loader.
type LoaderOption func(*loaderConfig)

type loaderConfig struct {
	scheme string
	types  TypeLoader
}

func newLoaderConfig(scheme string, opts []LoaderOption) loaderConfig {
	cfg := loaderConfig{scheme: scheme}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithScheme sets the URL scheme of locators returned by the loader.
func WithScheme(scheme string) LoaderOption {
	return func(c *loaderConfig) {
		c.scheme = scheme
	}
}

// WithTypes lets the loader resolve type names through types.
func WithTypes(types TypeLoader) LoaderOption {
	return func(c *loaderConfig) {
		c.types = types
	}
}

// loaderName identifies a loader in log records.
func loaderName(l Loader) string {
	if s, ok := l.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", l)
}

// sameLoader reports whether a and b are the same loader value.
// Loaders whose dynamic type is not comparable are never considered equal.
func sameLoader(a, b Loader) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}
