package resources

import (
	"io"
	"io/fs"
	"net/url"
	"reflect"
)

// IOFSLoader serves resources from an io/fs.FS such as embed.FS or
// os.DirFS. Names follow fs.ValidPath, so rooted names like "/a" are
// rejected rather than cleaned.
type IOFSLoader struct {
	fsys   fs.FS
	scheme string
	types  TypeLoader
}

// NewIOFSLoader creates a loader over fsys. Locators use the "fs" scheme
// unless WithScheme says otherwise.
func NewIOFSLoader(fsys fs.FS, opts ...LoaderOption) *IOFSLoader {
	cfg := newLoaderConfig("fs", opts)
	return &IOFSLoader{
		fsys:   fsys,
		scheme: cfg.scheme,
		types:  cfg.types,
	}
}

// Resource returns the locator of the named file.
func (l *IOFSLoader) Resource(name string) (*url.URL, error) {
	if err := l.check("resource", name); err != nil {
		return nil, err
	}
	return &url.URL{Scheme: l.scheme, Path: "/" + name}, nil
}

// Open opens the named file for reading.
func (l *IOFSLoader) Open(name string) (io.ReadCloser, error) {
	if err := l.check("open", name); err != nil {
		return nil, err
	}
	return l.fsys.Open(name)
}

// Type resolves name through the type loader given with WithTypes.
func (l *IOFSLoader) Type(name string) (reflect.Type, error) {
	if l.types == nil {
		return nil, typeNotRegistered(name)
	}
	return l.types.Type(name)
}

func (l *IOFSLoader) check(op, name string) error {
	if !fs.ValidPath(name) {
		return &fs.PathError{Op: op, Path: name, Err: fs.ErrInvalid}
	}
	info, err := fs.Stat(l.fsys, name)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return &fs.PathError{Op: op, Path: name, Err: fs.ErrNotExist}
	}
	return nil
}
