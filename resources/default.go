package resources

import (
	"io"
	"net/url"
	"reflect"
	"sync"

	"github.com/magiconair/properties"
	"golang.org/x/text/encoding"
)

var (
	registry = NewTypeRegistry()

	defaultOnce     sync.Once
	defaultResolver *Resolver
)

// Default returns the process-wide Resolver used by the package-level
// functions. It is created on first use with the system loader.
func Default() *Resolver {
	defaultOnce.Do(func() {
		defaultResolver = New()
	})
	return defaultResolver
}

// Registry returns the type registry used by the default system loader.
func Registry() *TypeRegistry {
	return registry
}

// RegisterType records the dynamic type of v under name in the package
// registry, making it visible to TypeForName.
func RegisterType(name string, v interface{}) {
	registry.Register(name, v)
}

// ResourceURL calls Default().ResourceURL with no explicit loader.
func ResourceURL(name string) (*url.URL, error) {
	return Default().ResourceURL(nil, name)
}

// Open calls Default().Open with no explicit loader.
func Open(name string) (io.ReadCloser, error) {
	return Default().Open(nil, name)
}

// Reader calls Default().Reader with no explicit loader.
func Reader(name string) (io.ReadCloser, error) {
	return Default().Reader(nil, name)
}

// Properties calls Default().Properties with no explicit loader.
func Properties(name string) (*properties.Properties, error) {
	return Default().Properties(nil, name)
}

// File calls Default().File with no explicit loader.
func File(name string) (string, error) {
	return Default().File(nil, name)
}

// TypeForName calls Default().TypeForName.
func TypeForName(name string) (reflect.Type, error) {
	return Default().TypeForName(name)
}

// DefaultLoader returns the default loader of Default().
func DefaultLoader() Loader {
	return Default().DefaultLoader()
}

// SetDefaultLoader sets the default loader of Default().
func SetDefaultLoader(l Loader) {
	Default().SetDefaultLoader(l)
}

// Charset returns the charset of Default().
func Charset() encoding.Encoding {
	return Default().Charset()
}

// SetCharset sets the charset of Default().
func SetCharset(enc encoding.Encoding) {
	Default().SetCharset(enc)
}
