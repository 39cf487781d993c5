package logging

import (
	"context"
	"log/slog"
	"time"

	"github.com/aider-tools/aider-automation/pkg/domain/types"
	"github.com/google/uuid"
)

type ctxWorkflowIDKey struct{}

// CtxWorkflowID returns the workflow run ID from context. If not set, a new
// ID is issued and a context carrying it is returned.
func CtxWorkflowID(ctx context.Context) (types.WorkflowID, context.Context) {
	if id, ok := ctx.Value(ctxWorkflowIDKey{}).(types.WorkflowID); ok {
		return id, ctx
	}

	newID := types.WorkflowID(uuid.NewString())
	return newID, context.WithValue(ctx, ctxWorkflowIDKey{}, newID)
}

type ctxLoggerKey struct{}

// With returns a new context with logger
func With(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxLoggerKey{}, logger)
}

// From returns logger from context. If logger is not set, return default logger
func From(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(ctxLoggerKey{}).(*slog.Logger); ok {
		return l
	}
	return defaultLogger
}

type ctxTimeKey struct{}
type TimeFunc func() time.Time

// CtxTime returns time from context. If time is not set, return current time.
// Branch name timestamps come from here so tests can pin the clock.
func CtxTime(ctx context.Context) time.Time {
	if t, ok := ctx.Value(ctxTimeKey{}).(TimeFunc); ok {
		return t()
	}
	return time.Now()
}

// CtxWithTime returns a new context with time function
func CtxWithTime(ctx context.Context, timeFunc TimeFunc) context.Context {
	return context.WithValue(ctx, ctxTimeKey{}, timeFunc)
}
