package errors

// Kind identifies a member of the persistence error taxonomy.
// Kinds are string-based so they read well in logs and JSON.
type Kind string

const (
	// KindPersistence is the generic kind produced by WrapException when no
	// more specific kind applies.
	KindPersistence Kind = "PERSISTENCE"

	// Mapping and configuration.

	// KindBinding indicates a mismatch between a logical identifier, such as a
	// mapper method, and a runtime object.
	KindBinding Kind = "BINDING"

	// KindBuilder indicates a configuration or mapping could not be built.
	KindBuilder Kind = "BUILDER"

	// KindParsing indicates malformed mapping or property content.
	KindParsing Kind = "PARSING"

	// KindScripting indicates a dynamic statement script failed to evaluate.
	KindScripting Kind = "SCRIPTING"

	// KindPlugin indicates an interceptor plugin failed.
	KindPlugin Kind = "PLUGIN"

	// Runtime.

	// KindCache indicates a cache operation failed.
	KindCache Kind = "CACHE"

	// KindDataSource indicates a connection provider could not be obtained or configured.
	KindDataSource Kind = "DATA_SOURCE"

	// KindExecutor indicates a statement failed during execution.
	KindExecutor Kind = "EXECUTOR"

	// KindSession indicates a session was misused, e.g. after it was closed.
	KindSession Kind = "SESSION"

	// KindTransaction indicates a commit, rollback or connection-state inconsistency.
	KindTransaction Kind = "TRANSACTION"

	// KindTooManyResults indicates a single-row query returned several rows.
	KindTooManyResults Kind = "TOO_MANY_RESULTS"

	// Types and reflection.

	// KindType indicates a value could not be converted to or from its storage representation.
	KindType Kind = "TYPE"

	// KindReflection indicates introspection or invocation on a target object failed.
	KindReflection Kind = "REFLECTION"

	// KindLog indicates the logging adapter could not be initialised.
	KindLog Kind = "LOG"

	// Resolution.

	// KindResourceNotFound indicates a resource lookup exhausted every loader and path variant.
	KindResourceNotFound Kind = "RESOURCE_NOT_FOUND"

	// KindTypeNotFound indicates a type name could not be resolved by any loader.
	KindTypeNotFound Kind = "TYPE_NOT_FOUND"
)

var kinds = []Kind{
	KindPersistence,
	KindBinding,
	KindBuilder,
	KindParsing,
	KindScripting,
	KindPlugin,
	KindCache,
	KindDataSource,
	KindExecutor,
	KindSession,
	KindTransaction,
	KindTooManyResults,
	KindType,
	KindReflection,
	KindLog,
	KindResourceNotFound,
	KindTypeNotFound,
}

var defaultMessages = map[Kind]string{
	KindPersistence:      "persistence error",
	KindBinding:          "binding error",
	KindBuilder:          "builder error",
	KindParsing:          "parsing error",
	KindScripting:        "scripting error",
	KindPlugin:           "plugin error",
	KindCache:            "cache error",
	KindDataSource:       "data source error",
	KindExecutor:         "executor error",
	KindSession:          "session error",
	KindTransaction:      "transaction error",
	KindTooManyResults:   "too many results",
	KindType:             "type error",
	KindReflection:       "reflection error",
	KindLog:              "log error",
	KindResourceNotFound: "resource not found",
	KindTypeNotFound:     "type not found",
}

// Kinds returns every kind in the taxonomy.
func Kinds() []Kind {
	out := make([]Kind, len(kinds))
	copy(out, kinds)
	return out
}

// Valid reports whether k is a member of the taxonomy.
func (k Kind) Valid() bool {
	_, ok := defaultMessages[k]
	return ok
}

// DefaultMessage returns the message used when an error of this kind is
// created without one.
func (k Kind) DefaultMessage() string {
	if msg, ok := defaultMessages[k]; ok {
		return msg
	}
	return defaultMessages[KindPersistence]
}

// String returns the kind's name.
func (k Kind) String() string {
	return string(k)
}
