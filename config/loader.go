package config

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"reflect"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"

	"github.com/jmgilman/go/persist/errctx"
	"github.com/jmgilman/go/persist/errors"
	"github.com/jmgilman/go/persist/resources"
)

// Loader reads configuration resources through a Resolver and decodes them.
// It is safe for concurrent use.
type Loader struct {
	resolver    *resources.Resolver
	logger      *slog.Logger
	knownFields bool

	cueMu  sync.Mutex
	cueCtx *cue.Context
}

// Option configures a Loader.
type Option func(*Loader)

// WithLogger sets the logger used for load diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) {
		l.logger = logger
	}
}

// WithKnownFields makes YAML and JSON decoding fail on fields the target
// does not declare.
func WithKnownFields() Option {
	return func(l *Loader) {
		l.knownFields = true
	}
}

// NewLoader creates a Loader over r. A nil r uses resources.Default().
func NewLoader(r *resources.Resolver, opts ...Option) *Loader {
	if r == nil {
		r = resources.Default()
	}

	l := &Loader{
		resolver: r,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		cueCtx:   cuecontext.New(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load decodes the named resource into out, which must be a non-nil pointer.
//
// Returns RESOURCE_NOT_FOUND if the resource cannot be opened, PARSING if it
// cannot be decoded and BUILDER if its format is unknown.
func (l *Loader) Load(ctx context.Context, name string, out interface{}) error {
	return l.LoadFrom(ctx, nil, name, out)
}

// LoadFrom is like Load but searches loader before the resolver defaults.
func (l *Loader) LoadFrom(ctx context.Context, loader resources.Loader, name string, out interface{}) error {
	ctx, rec, done := errctx.Begin(ctx)
	defer done()
	rec.Resource(name).Activity("loading configuration")

	if err := ctx.Err(); err != nil {
		return errors.WrapException(ctx, "configuration load canceled", err)
	}
	if err := checkTarget(out); err != nil {
		return err
	}

	format, err := DetectFormat(name)
	if err != nil {
		return err
	}
	l.logger.Debug("loading configuration", "resource", name, "format", format)

	if format == FormatProperties {
		return l.loadProperties(ctx, rec, loader, name, out)
	}

	data, err := l.read(loader, name)
	if err != nil {
		return errors.WithContext(err, "format", string(format))
	}

	rec.Activity("decoding " + string(format))
	if err := l.decode(format, name, data, out); err != nil {
		l.logger.Debug("configuration decode failed", "resource", name, "format", format, "error", err)
		return errors.WrapKind(ctx, errors.KindParsing, "could not decode "+name, err)
	}
	return nil
}

func (l *Loader) read(loader resources.Loader, name string) ([]byte, error) {
	rc, err := l.resolver.Reader(loader, name)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, errors.WrapWithContext(err, errors.KindResourceNotFound, "could not read "+name,
			map[string]interface{}{"resource": name})
	}
	return data, nil
}

func (l *Loader) loadProperties(
	ctx context.Context,
	rec *errctx.Record,
	loader resources.Loader,
	name string,
	out interface{},
) error {
	p, err := l.resolver.Properties(loader, name)
	if err != nil {
		return errors.WithContext(err, "format", string(FormatProperties))
	}

	rec.Activity("decoding properties")
	if err := p.Decode(out); err != nil {
		return errors.WrapKind(ctx, errors.KindParsing, "could not decode "+name, err)
	}
	return nil
}

func (l *Loader) decode(format Format, name string, data []byte, out interface{}) error {
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(l.knownFields)
		if err := dec.Decode(out); err != nil && err != io.EOF {
			return err
		}
		return nil
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		if l.knownFields {
			dec.DisallowUnknownFields()
		}
		return dec.Decode(out)
	case FormatCUE:
		return l.decodeCUE(name, data, out)
	default:
		return fmt.Errorf("no decoder for format %s", format)
	}
}

// decodeCUE compiles and validates data before decoding it. Values must be
// concrete.
func (l *Loader) decodeCUE(name string, data []byte, out interface{}) error {
	l.cueMu.Lock()
	defer l.cueMu.Unlock()

	val := l.cueCtx.CompileBytes(data, cue.Filename(name))
	if err := val.Err(); err != nil {
		return err
	}
	if err := val.Validate(cue.Concrete(true)); err != nil {
		return err
	}
	return val.Decode(out)
}

func checkTarget(out interface{}) error {
	v := reflect.ValueOf(out)
	if out == nil || v.Kind() != reflect.Ptr || v.IsNil() {
		return errors.Newf(errors.KindBuilder, "decode target must be a non-nil pointer, got %T", out)
	}
	return nil
}
