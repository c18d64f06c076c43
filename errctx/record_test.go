package errctx

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecord_FluentSetters(t *testing.T) {
	r := &Record{}
	cause := stderrors.New("boom")

	got := r.Resource("mappers/user.yaml").
		Activity("executing a query").
		Object("user.findByID").
		Message("while loading users").
		SQL("SELECT 1").
		Cause(cause)

	require.Same(t, r, got)
	require.Equal(t, "mappers/user.yaml", r.resource)
	require.Equal(t, "executing a query", r.activity)
	require.Equal(t, "user.findByID", r.object)
	require.Equal(t, "while loading users", r.message)
	require.Equal(t, "SELECT 1", r.sql)
	require.True(t, r.CauseErr() == cause)
}

func TestRecord_String(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*Record)
		want  string
	}{
		{
			name:  "empty",
			setup: func(*Record) {},
			want:  "",
		},
		{
			name:  "activity only",
			setup: func(r *Record) { r.Activity("committing") },
			want:  "### The error occurred while committing",
		},
		{
			name: "field order is fixed",
			setup: func(r *Record) {
				r.Cause(stderrors.New("connection refused")).
					SQL("SELECT 1").
					Message("extra detail").
					Object("user.findByID").
					Activity("executing a query").
					Resource("mappers/user.yaml")
			},
			want: "### The error may exist in mappers/user.yaml\n" +
				"### The error occurred while executing a query\n" +
				"### The error may involve user.findByID\n" +
				"### extra detail\n" +
				"### SQL: SELECT 1\n" +
				"### Cause: connection refused",
		},
		{
			name:  "sql whitespace is flattened",
			setup: func(r *Record) { r.SQL("\n  SELECT id\n\tFROM users\r\n") },
			want:  "### SQL: SELECT id  FROM users",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Record{}
			tt.setup(r)
			require.Equal(t, tt.want, r.String())
		})
	}
}

func TestRecord_StringIdempotent(t *testing.T) {
	r := (&Record{}).Activity("executing an update").Object("user.insert").SQL("INSERT INTO users")

	first := r.String()
	second := r.String()

	require.Equal(t, first, second)
	require.Equal(t, "executing an update", r.activity)
}

func TestRecord_ClearField(t *testing.T) {
	r := (&Record{}).Activity("executing a query").Cause(stderrors.New("x"))

	r.Activity("").Cause(nil)

	require.True(t, r.Empty())
	require.Equal(t, "", r.String())
}

func TestRecord_NilSafe(t *testing.T) {
	var r *Record

	require.Equal(t, "", r.String())
	require.True(t, r.Empty())
	require.Nil(t, r.Fields())
	require.Nil(t, r.CauseErr())
}

func TestRecord_Fields(t *testing.T) {
	r := (&Record{}).Resource("a.yaml").SQL("SELECT\n1").Cause(stderrors.New("bad"))

	require.Equal(t, map[string]interface{}{
		"resource": "a.yaml",
		"sql":      "SELECT 1",
		"cause":    "bad",
	}, r.Fields())

	require.Nil(t, (&Record{}).Fields())
}
