package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel/log/global"
	"go.opentelemetry.io/otel/trace"

	"fluxera.app/api/core/config"
)

// Setup installs the process-wide slog default for cfg.
func Setup(cfg config.Config) {
	slog.SetDefault(slog.New(NewHandler(cfg, os.Stdout)))
}

// NewHandler picks the handler for the environment: the OTel bridge in
// production with an exporter, JSON in production otherwise, text elsewhere.
// The non-bridge handlers are wrapped in TraceHandler.
func NewHandler(cfg config.Config, w io.Writer) slog.Handler {
	if cfg.IsProduction() && cfg.OTel.Enabled() {
		return otelslog.NewHandler(
			cfg.OTel.ServiceName,
			otelslog.WithLoggerProvider(global.GetLoggerProvider()),
		)
	}

	opts := &slog.HandlerOptions{Level: Level(cfg)}
	if cfg.IsProduction() {
		return NewTraceHandler(slog.NewJSONHandler(w, opts))
	}
	return NewTraceHandler(slog.NewTextHandler(w, opts))
}

// Level resolves LOG_LEVEL, defaulting to debug in development and info
// everywhere else. Unknown names fall back to the default.
func Level(cfg config.Config) slog.Level {
	fallback := slog.LevelInfo
	if cfg.IsDevelopment() {
		fallback = slog.LevelDebug
	}
	if cfg.LogLevel == "" {
		return fallback
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(cfg.LogLevel))); err != nil {
		return fallback
	}
	return level
}

// TraceHandler adds trace/span ids and the context's LogFields to every record.
type TraceHandler struct {
	slog.Handler
}

func NewTraceHandler(h slog.Handler) *TraceHandler {
	return &TraceHandler{Handler: h}
}

func (h *TraceHandler) Handle(ctx context.Context, r slog.Record) error {
	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		r.AddAttrs(
			slog.String("trace_id", sc.TraceID().String()),
			slog.String("span_id", sc.SpanID().String()),
		)
	}
	r.AddAttrs(GetLogFields(ctx).attrs()...)
	return h.Handler.Handle(ctx, r)
}

func (h *TraceHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &TraceHandler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h *TraceHandler) WithGroup(name string) slog.Handler {
	return &TraceHandler{Handler: h.Handler.WithGroup(name)}
}

func (f LogFields) attrs() []slog.Attr {
	var attrs []slog.Attr
	if f.UserID != nil {
		attrs = append(attrs, slog.Int64("user_id", *f.UserID))
	}
	if f.WorkspaceID != nil {
		attrs = append(attrs, slog.Int64("workspace_id", *f.WorkspaceID))
	}
	if f.ArtifactID != nil {
		attrs = append(attrs, slog.Int64("artifact_id", *f.ArtifactID))
	}
	if f.Component != "" {
		attrs = append(attrs, slog.String("component", f.Component))
	}
	return attrs
}
