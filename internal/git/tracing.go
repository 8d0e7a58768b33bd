package git

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// tracerName identifies spans emitted by this package.
const tracerName = "github.com/dev-shetty/easydiff/internal/git"

// Compile-time check that TracedExecutor implements Executor.
var _ Executor = (*TracedExecutor)(nil)

// TracedExecutor wraps an Executor and emits one span per git
// invocation. Spans carry the subcommand name and target path so a
// slow interactive session can be attributed to a specific git call.
type TracedExecutor struct {
	inner  Executor
	tracer trace.Tracer
}

// NewTracedExecutor wraps inner with tracing using the global provider.
func NewTracedExecutor(inner Executor) *TracedExecutor {
	return &TracedExecutor{
		inner:  inner,
		tracer: otel.Tracer(tracerName),
	}
}

// span runs fn inside a span named after the git subcommand.
func (t *TracedExecutor) span(ctx context.Context, name string, attrs []attribute.KeyValue, fn func(context.Context) error) error {
	ctx, sp := t.tracer.Start(ctx, name, trace.WithAttributes(attrs...))
	defer sp.End()

	if err := fn(ctx); err != nil {
		sp.RecordError(err)
		sp.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

func pathAttr(path string) []attribute.KeyValue {
	return []attribute.KeyValue{attribute.String("git.path", path)}
}

func (t *TracedExecutor) RepoRoot(ctx context.Context) (string, error) {
	var out string
	err := t.span(ctx, "git.rev-parse", nil, func(ctx context.Context) error {
		var err error
		out, err = t.inner.RepoRoot(ctx)
		return err
	})
	return out, err
}

func (t *TracedExecutor) Status(ctx context.Context) (string, error) {
	var out string
	err := t.span(ctx, "git.status", nil, func(ctx context.Context) error {
		var err error
		out, err = t.inner.Status(ctx)
		return err
	})
	return out, err
}

func (t *TracedExecutor) Diff(ctx context.Context, path string) (string, error) {
	var out string
	err := t.span(ctx, "git.diff", pathAttr(path), func(ctx context.Context) error {
		var err error
		out, err = t.inner.Diff(ctx, path)
		return err
	})
	return out, err
}

func (t *TracedExecutor) DiffCached(ctx context.Context, path string) (string, error) {
	var out string
	err := t.span(ctx, "git.diff-cached", pathAttr(path), func(ctx context.Context) error {
		var err error
		out, err = t.inner.DiffCached(ctx, path)
		return err
	})
	return out, err
}

func (t *TracedExecutor) ShowHead(ctx context.Context, path string) (string, error) {
	var out string
	err := t.span(ctx, "git.show-head", pathAttr(path), func(ctx context.Context) error {
		var err error
		out, err = t.inner.ShowHead(ctx, path)
		return err
	})
	return out, err
}

func (t *TracedExecutor) ShowIndex(ctx context.Context, path string) (string, error) {
	var out string
	err := t.span(ctx, "git.show-index", pathAttr(path), func(ctx context.Context) error {
		var err error
		out, err = t.inner.ShowIndex(ctx, path)
		return err
	})
	return out, err
}

func (t *TracedExecutor) Add(ctx context.Context, path string) error {
	return t.span(ctx, "git.add", pathAttr(path), func(ctx context.Context) error {
		return t.inner.Add(ctx, path)
	})
}

func (t *TracedExecutor) RestoreStaged(ctx context.Context, path string) error {
	return t.span(ctx, "git.restore-staged", pathAttr(path), func(ctx context.Context) error {
		return t.inner.RestoreStaged(ctx, path)
	})
}

func (t *TracedExecutor) ApplyCached(ctx context.Context, patchFile string, reverse bool) error {
	attrs := []attribute.KeyValue{attribute.Bool("git.reverse", reverse)}
	return t.span(ctx, "git.apply-cached", attrs, func(ctx context.Context) error {
		return t.inner.ApplyCached(ctx, patchFile, reverse)
	})
}
