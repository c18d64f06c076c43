package minio

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"net/url"
	"path"
	"reflect"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/jmgilman/go/persist/errors"
	"github.com/jmgilman/go/persist/resources"
)

// Loader implements resources.Loader over a bucket.
//
// Resource names are used verbatim as object keys below the prefix: "a" and
// "/a" name different objects. Buckets populated by tools that write rooted
// keys are still reachable through the Resolver, which retries every name
// with a leading "/".
type Loader struct {
	client *minio.Client
	bucket string
	prefix string
	types  resources.TypeLoader
}

// New creates a bucket-backed loader.
// Returns a BUILDER error if the configuration is invalid or the client
// cannot be created.
func New(cfg Config) (*Loader, error) {
	if err := cfg.validate(); err != nil {
		return nil, errors.Wrap(err, errors.KindBuilder, "invalid minio loader config")
	}

	client := cfg.Client
	if client == nil {
		var err error
		client, err = minio.New(cfg.Endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
			Secure: cfg.UseSSL,
		})
		if err != nil {
			return nil, errors.WrapWithContext(err, errors.KindBuilder, "failed to create minio client",
				map[string]interface{}{"endpoint": cfg.Endpoint})
		}
	}

	return &Loader{
		client: client,
		bucket: cfg.Bucket,
		prefix: normalizePrefix(cfg.Prefix),
		types:  cfg.Types,
	}, nil
}

// Resource returns an s3:// locator for the named object.
func (l *Loader) Resource(name string) (*url.URL, error) {
	key, err := l.key("resource", name)
	if err != nil {
		return nil, err
	}

	if _, err := l.client.StatObject(context.Background(), l.bucket, key, minio.StatObjectOptions{}); err != nil {
		return nil, &fs.PathError{Op: "resource", Path: name, Err: translate(err)}
	}

	return &url.URL{Scheme: "s3", Host: l.bucket, Path: "/" + key}, nil
}

// Open streams the named object. Missing objects fail here rather than on
// the first read.
func (l *Loader) Open(name string) (io.ReadCloser, error) {
	key, err := l.key("open", name)
	if err != nil {
		return nil, err
	}

	ctx := context.Background()
	if _, err := l.client.StatObject(ctx, l.bucket, key, minio.StatObjectOptions{}); err != nil {
		return nil, &fs.PathError{Op: "open", Path: name, Err: translate(err)}
	}

	obj, err := l.client.GetObject(ctx, l.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, &fs.PathError{Op: "open", Path: name, Err: translate(err)}
	}
	return obj, nil
}

// Type resolves name through Config.Types.
func (l *Loader) Type(name string) (reflect.Type, error) {
	if l.types == nil {
		return nil, fmt.Errorf("%w: %s", resources.ErrTypeNotRegistered, name)
	}
	return l.types.Type(name)
}

func (l *Loader) String() string {
	return "s3://" + path.Join(l.bucket, l.prefix)
}

// key maps a resource name to its object key.
func (l *Loader) key(op, name string) (string, error) {
	if name == "" || strings.HasSuffix(name, "/") {
		return "", &fs.PathError{Op: op, Path: name, Err: fs.ErrInvalid}
	}
	if l.prefix == "" {
		return name, nil
	}
	return l.prefix + "/" + name, nil
}

// normalizePrefix converts backslashes, resolves dot segments and trims
// surrounding slashes. "." and "" mean no prefix.
func normalizePrefix(prefix string) string {
	prefix = strings.ReplaceAll(prefix, "\\", "/")
	if prefix == "" {
		return ""
	}
	prefix = strings.Trim(path.Clean(prefix), "/")
	if prefix == "." {
		return ""
	}
	return prefix
}

// translate converts MinIO error responses to io/fs errors.
func translate(err error) error {
	if err == nil {
		return nil
	}

	switch minio.ToErrorResponse(err).Code {
	case "NoSuchKey", "NoSuchBucket":
		return fs.ErrNotExist
	case "AccessDenied":
		return fs.ErrPermission
	}
	return fmt.Errorf("minio: %w", err)
}
