package resources

import (
	"github.com/jmgilman/go/persist/errors"
)

// wrapNotFound wraps the last lookup failure for name as RESOURCE_NOT_FOUND.
func wrapNotFound(err error, name string) errors.PersistenceError {
	if err == nil {
		return errors.WithContext(
			errors.Newf(errors.KindResourceNotFound, "could not find resource %s", name),
			"resource", name,
		)
	}
	return errors.WrapWithContext(err, errors.KindResourceNotFound, "could not find resource "+name,
		map[string]interface{}{"resource": name})
}

// wrapURLError wraps a failure to read the resource at raw.
func wrapURLError(err error, raw string) errors.PersistenceError {
	return errors.WrapWithContext(err, errors.KindResourceNotFound, "could not read resource at "+raw,
		map[string]interface{}{"url": raw})
}

// wrapTypeNotFound wraps the last type lookup failure for name as TYPE_NOT_FOUND.
func wrapTypeNotFound(err error, name string) errors.PersistenceError {
	if err == nil {
		err = typeNotRegistered(name)
	}
	return errors.WrapWithContext(err, errors.KindTypeNotFound, "could not find type "+name,
		map[string]interface{}{"type": name})
}

// wrapParseError wraps a properties parse failure for name.
func wrapParseError(err error, name string) errors.PersistenceError {
	return errors.WrapWithContext(err, errors.KindParsing, "could not parse properties "+name,
		map[string]interface{}{"resource": name})
}
