package resources

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"

	"github.com/magiconair/properties"

	"github.com/jmgilman/go/persist/errors"
)

// OpenURL opens the resource at raw, which must be a file, http or https
// URL. Every failure, including a non-200 response, is reported as
// RESOURCE_NOT_FOUND. The caller closes the stream.
func (r *Resolver) OpenURL(ctx context.Context, raw string) (io.ReadCloser, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, wrapURLError(err, raw)
	}

	switch u.Scheme {
	case "file":
		f, err := os.Open(filepath.FromSlash(u.Path))
		if err != nil {
			return nil, wrapURLError(err, raw)
		}
		return f, nil
	case "http", "https":
		return r.get(ctx, u, raw)
	default:
		return nil, wrapURLError(fmt.Errorf("unsupported scheme %q", u.Scheme), raw)
	}
}

// URLReader opens the resource at raw and decodes it with the active charset.
func (r *Resolver) URLReader(ctx context.Context, raw string) (io.ReadCloser, error) {
	rc, err := r.OpenURL(ctx, raw)
	if err != nil {
		return nil, err
	}
	return decode(rc, r.Charset()), nil
}

// URLProperties loads the resource at raw as a properties file.
func (r *Resolver) URLProperties(ctx context.Context, raw string) (*properties.Properties, error) {
	rc, err := r.URLReader(ctx, raw)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return readProperties(rc, raw)
}

func (r *Resolver) get(ctx context.Context, u *url.URL, raw string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, wrapURLError(err, raw)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, wrapURLError(err, raw)
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, errors.WithContext(
			wrapURLError(fmt.Errorf("unexpected status %s", resp.Status), raw),
			"status", resp.StatusCode,
		)
	}

	r.logger.Debug("opened url", "url", raw, "status", resp.StatusCode)
	return resp.Body, nil
}
