package resources

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path/filepath"
	"reflect"
	"sync/atomic"

	"github.com/magiconair/properties"
	"golang.org/x/text/encoding"

	"github.com/jmgilman/go/persist/errors"
)

// Resolver locates resources through an ordered list of loaders.
// A Resolver is safe for concurrent use.
type Resolver struct {
	system  Loader
	types   TypeLoader
	logger  *slog.Logger
	client  *http.Client
	loader  atomic.Pointer[loaderBox]
	charset atomic.Pointer[charsetBox]
}

// The boxes let interface values live behind an atomic pointer.
type loaderBox struct{ l Loader }

type charsetBox struct{ enc encoding.Encoding }

// Option configures a Resolver.
type Option func(*options)

type options struct {
	loader  Loader
	system  Loader
	charset encoding.Encoding
	logger  *slog.Logger
	client  *http.Client
}

// WithLoader sets the initial default loader.
func WithLoader(l Loader) Option {
	return func(o *options) {
		o.loader = l
	}
}

// WithSystemLoader replaces the last-resort loader. By default it serves
// files from the working directory and resolves types registered with
// RegisterType.
func WithSystemLoader(l Loader) Option {
	return func(o *options) {
		o.system = l
	}
}

// WithCharset sets the initial charset used by Reader and Properties.
func WithCharset(enc encoding.Encoding) Option {
	return func(o *options) {
		o.charset = enc
	}
}

// WithLogger sets the logger used for lookup diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithHTTPClient sets the client used by OpenURL for http and https URLs.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		o.client = client
	}
}

// New creates a Resolver.
func New(opts ...Option) *Resolver {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	if o.system == nil {
		o.system = NewDirLoader(".", WithTypes(registry))
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if o.client == nil {
		o.client = http.DefaultClient
	}

	r := &Resolver{
		system: o.system,
		logger: o.logger,
		client: o.client,
	}
	r.SetDefaultLoader(o.loader)
	r.SetCharset(o.charset)
	return r
}

// DefaultLoader returns the active default loader, or the system loader
// when none is set.
func (r *Resolver) DefaultLoader() Loader {
	if b := r.loader.Load(); b != nil && b.l != nil {
		return b.l
	}
	return r.system
}

// SetDefaultLoader replaces the active default loader. Passing nil restores
// the system loader.
func (r *Resolver) SetDefaultLoader(l Loader) {
	r.loader.Store(&loaderBox{l: l})
}

// Charset returns the active charset, or nil when bytes are passed through
// undecoded.
func (r *Resolver) Charset() encoding.Encoding {
	if b := r.charset.Load(); b != nil {
		return b.enc
	}
	return nil
}

// SetCharset replaces the active charset. Passing nil restores the default,
// which treats resources as UTF-8.
func (r *Resolver) SetCharset(enc encoding.Encoding) {
	r.charset.Store(&charsetBox{enc: enc})
}

// ResourceURL returns the locator of the named resource.
// loader is searched first and may be nil.
func (r *Resolver) ResourceURL(loader Loader, name string) (*url.URL, error) {
	var u *url.URL
	err := r.search(loader, name, func(l Loader, p string) error {
		found, err := l.Resource(p)
		if err != nil {
			return err
		}
		u = found
		return nil
	})
	if err != nil {
		return nil, err
	}
	return u, nil
}

// Open opens the named resource. The caller closes the stream.
func (r *Resolver) Open(loader Loader, name string) (io.ReadCloser, error) {
	var rc io.ReadCloser
	err := r.search(loader, name, func(l Loader, p string) error {
		opened, err := l.Open(p)
		if err != nil {
			return err
		}
		rc = opened
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rc, nil
}

// Reader opens the named resource and decodes it with the active charset.
func (r *Resolver) Reader(loader Loader, name string) (io.ReadCloser, error) {
	rc, err := r.Open(loader, name)
	if err != nil {
		return nil, err
	}
	return decode(rc, r.Charset()), nil
}

// Properties loads the named resource as a properties file. Later
// duplicates of a key replace earlier ones and ${...} references are kept
// literally.
func (r *Resolver) Properties(loader Loader, name string) (*properties.Properties, error) {
	rc, err := r.Reader(loader, name)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return readProperties(rc, name)
}

// File returns the local path of the named resource. Resources that do not
// live on the local disk are reported as RESOURCE_NOT_FOUND.
func (r *Resolver) File(loader Loader, name string) (string, error) {
	u, err := r.ResourceURL(loader, name)
	if err != nil {
		return "", err
	}
	if u.Scheme != "file" {
		return "", errors.WithContextMap(
			errors.Newf(errors.KindResourceNotFound, "resource %s is not a local file", name),
			map[string]interface{}{"resource": name, "url": u.String()},
		)
	}
	return filepath.FromSlash(u.Path), nil
}

// TypeForName resolves a fully qualified type name through the default
// loader and then the system loader.
func (r *Resolver) TypeForName(name string) (reflect.Type, error) {
	var last error
	for _, l := range r.candidates(nil) {
		tl, ok := l.(TypeLoader)
		if !ok {
			continue
		}

		t, err := tl.Type(name)
		if err == nil {
			return t, nil
		}
		r.logger.Debug("type lookup failed", "loader", loaderName(l), "type", name, "error", err)
		last = err
	}
	return nil, wrapTypeNotFound(last, name)
}

// candidates returns the loaders to search, in order, without nils or
// repeats.
func (r *Resolver) candidates(loader Loader) []Loader {
	var active Loader
	if b := r.loader.Load(); b != nil {
		active = b.l
	}

	out := make([]Loader, 0, 3)
	for _, l := range []Loader{loader, active, r.system} {
		if l == nil || isNilLoader(l) {
			continue
		}
		dup := false
		for _, seen := range out {
			if sameLoader(seen, l) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, l)
		}
	}
	return out
}

// search runs try against every candidate loader with name and then "/"+name,
// stopping at the first success.
func (r *Resolver) search(loader Loader, name string, try func(Loader, string) error) error {
	var last error
	for _, l := range r.candidates(loader) {
		for _, p := range []string{name, "/" + name} {
			err := try(l, p)
			if err == nil {
				r.logger.Debug("resource found", "loader", loaderName(l), "path", p)
				return nil
			}
			r.logger.Debug("resource lookup failed", "loader", loaderName(l), "path", p, "error", err)
			last = err
		}
	}

	r.logger.Debug("resource not found", "resource", name)
	return wrapNotFound(last, name)
}

// isNilLoader catches typed nil pointers stored in a Loader.
func isNilLoader(l Loader) bool {
	v := reflect.ValueOf(l)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

func readProperties(rd io.Reader, name string) (*properties.Properties, error) {
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(rd); err != nil {
		return nil, wrapNotFound(err, name)
	}

	p := properties.NewProperties()
	p.DisableExpansion = true
	if err := p.Load(buf.Bytes(), properties.UTF8); err != nil {
		return nil, wrapParseError(err, name)
	}
	return p, nil
}
