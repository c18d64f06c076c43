package resources

import (
	"io"
	"io/fs"
	"net/url"
	"path"
	"path/filepath"
	"reflect"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
)

// FSLoader serves resources from a go-billy filesystem.
// Names are slash-separated and relative to the filesystem root; a leading
// "/" is accepted and ignored.
type FSLoader struct {
	bfs    billy.Filesystem
	scheme string
	types  TypeLoader
}

// NewFSLoader creates a loader over bfs. Locators use the "file" scheme
// unless WithScheme says otherwise.
func NewFSLoader(bfs billy.Filesystem, opts ...LoaderOption) *FSLoader {
	cfg := newLoaderConfig("file", opts)
	return &FSLoader{
		bfs:    bfs,
		scheme: cfg.scheme,
		types:  cfg.types,
	}
}

// NewDirLoader creates a loader rooted at dir on the local disk.
// Relative directories are made absolute so locators are usable as file URLs.
func NewDirLoader(dir string, opts ...LoaderOption) *FSLoader {
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	return NewFSLoader(osfs.New(dir), opts...)
}

// NewMemoryLoader creates a loader over an empty in-memory filesystem.
// Populate it through Filesystem.
func NewMemoryLoader(opts ...LoaderOption) *FSLoader {
	return NewFSLoader(memfs.New(), append([]LoaderOption{WithScheme("mem")}, opts...)...)
}

// Filesystem returns the underlying billy.Filesystem.
func (l *FSLoader) Filesystem() billy.Filesystem {
	return l.bfs
}

// Resource returns the locator of the named file.
func (l *FSLoader) Resource(name string) (*url.URL, error) {
	p := normalize(name)
	if _, err := l.stat("resource", name, p); err != nil {
		return nil, err
	}

	return &url.URL{
		Scheme: l.scheme,
		Path:   path.Join(filepath.ToSlash(l.bfs.Root()), p),
	}, nil
}

// Open opens the named file for reading.
func (l *FSLoader) Open(name string) (io.ReadCloser, error) {
	p := normalize(name)
	if _, err := l.stat("open", name, p); err != nil {
		return nil, err
	}

	f, err := l.bfs.Open(p)
	if err != nil {
		return nil, &fs.PathError{Op: "open", Path: name, Err: err}
	}
	return f, nil
}

// Type resolves name through the type loader given with WithTypes.
func (l *FSLoader) Type(name string) (reflect.Type, error) {
	if l.types == nil {
		return nil, typeNotRegistered(name)
	}
	return l.types.Type(name)
}

func (l *FSLoader) String() string {
	return l.scheme + "://" + filepath.ToSlash(l.bfs.Root())
}

// stat rejects missing files and directories.
func (l *FSLoader) stat(op, name, p string) (fs.FileInfo, error) {
	info, err := l.bfs.Stat(p)
	if err != nil {
		return nil, &fs.PathError{Op: op, Path: name, Err: err}
	}
	if info.IsDir() {
		return nil, &fs.PathError{Op: op, Path: name, Err: fs.ErrNotExist}
	}
	return info, nil
}

// normalize converts a resource name to a clean, root-relative slash path.
func normalize(name string) string {
	p := path.Clean("/" + filepath.ToSlash(name))
	if p == "/" {
		return "."
	}
	return p[1:]
}
