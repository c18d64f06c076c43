package errctx

import "strings"

// Record accumulates what an operation was doing when it failed.
// Setters mutate the record in place and return it so calls can be chained:
//
//	rec.Resource("mappers/user.yaml").Activity("executing a query").Object("user.findByID")
//
// A Record belongs to the operation that created it and is not safe for
// concurrent use.
type Record struct {
	stored *Record

	resource string
	activity string
	object   string
	message  string
	sql      string
	cause    error
}

// Resource sets the configuration resource being processed.
func (r *Record) Resource(resource string) *Record {
	r.resource = resource
	return r
}

// Activity sets the high-level operation in progress, e.g. "executing a query".
func (r *Record) Activity(activity string) *Record {
	r.activity = activity
	return r
}

// Object sets the identifier of the object involved, e.g. a statement id.
func (r *Record) Object(object string) *Record {
	r.object = object
	return r
}

// Message sets a free-form description.
func (r *Record) Message(message string) *Record {
	r.message = message
	return r
}

// SQL sets the statement text.
func (r *Record) SQL(sql string) *Record {
	r.sql = sql
	return r
}

// Cause sets the lower-level error that triggered the failure.
// The record only references the error for rendering.
func (r *Record) Cause(cause error) *Record {
	r.cause = cause
	return r
}

// CauseErr returns the cause currently set on the record.
func (r *Record) CauseErr() error {
	if r == nil {
		return nil
	}
	return r.cause
}

// Empty reports whether no field is set.
func (r *Record) Empty() bool {
	return r == nil || (r.resource == "" && r.activity == "" && r.object == "" &&
		r.message == "" && r.sql == "" && r.cause == nil)
}

// String renders every non-empty field on its own "### " line in the order
// resource, activity, object, message, sql, cause. It does not modify the record.
func (r *Record) String() string {
	if r == nil {
		return ""
	}

	lines := make([]string, 0, 6)
	if r.resource != "" {
		lines = append(lines, "### The error may exist in "+r.resource)
	}
	if r.activity != "" {
		lines = append(lines, "### The error occurred while "+r.activity)
	}
	if r.object != "" {
		lines = append(lines, "### The error may involve "+r.object)
	}
	if r.message != "" {
		lines = append(lines, "### "+r.message)
	}
	if r.sql != "" {
		lines = append(lines, "### SQL: "+flattenSQL(r.sql))
	}
	if r.cause != nil {
		lines = append(lines, "### Cause: "+r.cause.Error())
	}
	return strings.Join(lines, "\n")
}

// Fields returns the non-empty fields keyed by name, or nil if the record is empty.
// The cause is reported by its message.
func (r *Record) Fields() map[string]interface{} {
	if r.Empty() {
		return nil
	}

	fields := make(map[string]interface{}, 6)
	if r.resource != "" {
		fields["resource"] = r.resource
	}
	if r.activity != "" {
		fields["activity"] = r.activity
	}
	if r.object != "" {
		fields["object"] = r.object
	}
	if r.message != "" {
		fields["message"] = r.message
	}
	if r.sql != "" {
		fields["sql"] = flattenSQL(r.sql)
	}
	if r.cause != nil {
		fields["cause"] = r.cause.Error()
	}
	return fields
}

var sqlWhitespace = strings.NewReplacer("\n", " ", "\r", " ", "\t", " ")

func flattenSQL(sql string) string {
	return strings.TrimSpace(sqlWhitespace.Replace(sql))
}
