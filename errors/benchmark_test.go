package errors_test

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"testing"

	"github.com/jmgilman/go/persist/errctx"
	"github.com/jmgilman/go/persist/errors"
)

func BenchmarkNew(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = errors.New(errors.KindExecutor, "statement failed")
	}
}

func BenchmarkWrap(b *testing.B) {
	baseErr := stderrors.New("base error")

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = errors.Wrap(baseErr, errors.KindDataSource, "data source error")
	}
}

func BenchmarkWrapException_NoTracker(b *testing.B) {
	baseErr := stderrors.New("base error")
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = errors.WrapException(ctx, "Error querying database.", baseErr)
	}
}

func BenchmarkWrapException_Tracked(b *testing.B) {
	baseErr := stderrors.New("base error")
	ctx, rec, done := errctx.Begin(context.Background())
	defer done()
	rec.Resource("mappers/user.yaml").Activity("executing a query").Object("user.findByID").SQL("SELECT 1")

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = errors.WrapException(ctx, "Error querying database.", baseErr)
	}
}

func BenchmarkRootCause_DeepChain(b *testing.B) {
	err := stderrors.New("root")
	for i := 0; i < 10; i++ {
		err = errors.Wrap(err, errors.KindExecutor, "wrapped")
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = errors.RootCause(err)
	}
}

func BenchmarkMarshalJSON(b *testing.B) {
	err := errors.WithContext(errors.New(errors.KindCache, "full"), "cache", "users")

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = json.Marshal(err)
	}
}
