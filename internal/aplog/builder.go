package aplog

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/rmorlok/syncstore/internal/apctx"
)

type Builder interface {
	WithService(serviceId string) Builder
	WithComponent(componentId string) Builder
	WithCtx(ctx context.Context) Builder
	WithWorkspaceId(workspaceId uuid.UUID) Builder
	WithConnectionId(connectionId uuid.UUID) Builder
	With(args ...any) Builder
	Build() *slog.Logger
}

type builder struct {
	l *slog.Logger
}

func (b *builder) With(args ...any) Builder {
	return &builder{l: b.l.With(args...)}
}

func (b *builder) WithService(serviceId string) Builder {
	return &builder{l: b.l.With("service", serviceId)}
}

func (b *builder) WithComponent(componentId string) Builder {
	return &builder{l: b.l.With("component", componentId)}
}

// WithCtx attaches the correlation id from the context, if one is present.
func (b *builder) WithCtx(ctx context.Context) Builder {
	if id := apctx.CorrelationID(ctx); id != "" {
		return &builder{l: b.l.With("correlation_id", id)}
	}

	return b
}

func (b *builder) WithWorkspaceId(workspaceId uuid.UUID) Builder {
	return &builder{l: b.l.With("workspace_id", workspaceId.String())}
}

func (b *builder) WithConnectionId(connectionId uuid.UUID) Builder {
	return &builder{l: b.l.With("connection_id", connectionId.String())}
}

func (b *builder) Build() *slog.Logger {
	return b.l
}

func NewBuilder(l *slog.Logger) Builder {
	if l == nil {
		panic("cannot create log builder with nil log")
	}

	return &builder{l: l}
}

var _ Builder = &builder{}
