package logs

import (
	"context"
	"errors"
	"fmt"
)

// Span identifies one unit of work in logs and errors.
type Span string

type spanKey struct{}

var SpanKey spanKey

func SpanFrom(ctx context.Context) (Span, bool) {
	span, ok := ctx.Value(SpanKey).(Span)
	return span, ok
}

// SpanError records the span an error happened in.
type SpanError struct {
	Err  error
	Span Span
}

func (s SpanError) Error() string {
	return fmt.Sprintf("%v (span: %s)", s.Err, s.Span)
}

func (s SpanError) Unwrap() error {
	return s.Err
}

// WrapSpan attaches the span of ctx to err, keeping the innermost span.
func WrapSpan(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	span, ok := SpanFrom(ctx)
	if !ok {
		return err
	}
	var spanErr SpanError
	if errors.As(err, &spanErr) {
		return err
	}
	return SpanError{
		Err:  err,
		Span: span,
	}
}
