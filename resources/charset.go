package resources

import (
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"

	"github.com/jmgilman/go/persist/errors"
)

// LookupCharset returns the encoding registered under an IANA name such as
// "ISO-8859-1" or "windows-1252".
func LookupCharset(name string) (encoding.Encoding, error) {
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, errors.WrapWithContext(err, errors.KindPersistence, "unknown charset "+name,
			map[string]interface{}{"charset": name})
	}
	if enc == nil {
		return nil, errors.WithContext(
			errors.Newf(errors.KindPersistence, "unsupported charset %s", name),
			"charset", name,
		)
	}
	return enc, nil
}

type decodedReader struct {
	io.Reader
	io.Closer
}

// decode wraps rc so reads yield UTF-8 decoded from enc. Closing the result
// closes rc. A nil enc returns rc unchanged.
func decode(rc io.ReadCloser, enc encoding.Encoding) io.ReadCloser {
	if enc == nil {
		return rc
	}
	return decodedReader{
		Reader: enc.NewDecoder().Reader(rc),
		Closer: rc,
	}
}
