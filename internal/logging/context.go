package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// FromContext returns the logger carried by ctx, or a disabled one.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext attaches logger to ctx.
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

func withStr(ctx context.Context, key, value string) context.Context {
	return WithContext(ctx, FromContext(ctx).With().Str(key, value).Logger())
}

// WithComponent tags every entry logged through ctx with the component name.
func WithComponent(ctx context.Context, component string) context.Context {
	return withStr(ctx, "component", component)
}

// WithLayoutFile tags entries with the working layout file.
func WithLayoutFile(ctx context.Context, path string) context.Context {
	return withStr(ctx, "layout_file", path)
}

// WithOperation tags entries with the layout operation being applied.
func WithOperation(ctx context.Context, op string) context.Context {
	return withStr(ctx, "op", op)
}
