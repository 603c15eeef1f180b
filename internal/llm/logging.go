package llm

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

type contextKey string

const purposeKey contextKey = "llm_purpose"

// WithPurpose tags the context with what the request is for, so log
// lines can be told apart when more call sites appear.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom reads the purpose tag, defaulting to "unknown".
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok {
		return v
	}
	return "unknown"
}

// LoggingProvider is a decorator that records every LLM request on a
// structured logger.
type LoggingProvider struct {
	inner  Provider
	logger *log.Logger
}

// WithLogging wraps a Provider with request logging. A nil logger
// disables logging without changing behavior.
func WithLogging(p Provider, logger *log.Logger) Provider {
	if logger == nil {
		logger = log.New(nil)
		logger.SetLevel(log.FatalLevel + 1)
	}
	return &LoggingProvider{inner: p, logger: logger}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	resp, err := l.inner.Generate(ctx, req)

	fields := []any{
		"model", l.inner.ModelID(),
		"purpose", purpose,
		"latency", time.Since(start).Round(time.Millisecond),
	}
	if resp != nil {
		fields = append(fields,
			"input_tokens", resp.Usage.InputTokens,
			"output_tokens", resp.Usage.OutputTokens,
		)
	}

	if err != nil {
		l.logger.Error("llm request failed", append(fields, "err", err)...)
	} else {
		l.logger.Debug("llm request", fields...)
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
