package logger

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
)

var defaultLogger *slog.Logger

// Init initializes the global logger with the specified level and format
func Init(level, format string) {
	var logLevel slog.Level
	switch strings.ToUpper(level) {
	case "DEBUG":
		logLevel = slog.LevelDebug
	case "INFO":
		logLevel = slog.LevelInfo
	case "WARN":
		logLevel = slog.LevelWarn
	case "ERROR":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: logLevel,
	}

	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	defaultLogger = slog.New(handler)
	slog.SetDefault(defaultLogger)
}

// Get returns the default logger instance
func Get() *slog.Logger {
	if defaultLogger == nil {
		Init("INFO", "json")
	}
	return defaultLogger
}

type ctxKey string

const (
	requestIDKey  ctxKey = "request_id"
	memberCodeKey ctxKey = "member_code"
)

// ContextWithRequestID stores the request id for WithContext to pick up.
func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// ContextWithMemberCode tags the context with the acting member's code.
func ContextWithMemberCode(ctx context.Context, code string) context.Context {
	return context.WithValue(ctx, memberCodeKey, code)
}

// WithContext returns a logger with context-specific fields
func WithContext(ctx context.Context) *slog.Logger {
	logger := Get()

	if reqID := ctx.Value(requestIDKey); reqID != nil {
		logger = logger.With("request_id", reqID)
	}

	if member := ctx.Value(memberCodeKey); member != nil {
		logger = logger.With("member_code", member)
	}

	return logger
}

// NewRequestID generates a new UUID for request tracking
func NewRequestID() string {
	return uuid.New().String()
}

// Fatal logs an error message and exits the application
// This is a helper function since slog doesn't have Fatal level
func Fatal(msg string, args ...any) {
	Get().Error(msg, args...)
	os.Exit(1)
}
