package llm

import (
	"context"
	"time"
)

// LoggingProvider is a decorator that reports every LLM request through a
// logf callback: purpose, latency, token usage, and estimated cost.
type LoggingProvider struct {
	inner Provider
	logf  func(format string, args ...any)
}

// WithLogging wraps a Provider with request logging. A nil logf disables
// logging and returns the provider unchanged.
func WithLogging(p Provider, logf func(format string, args ...any)) Provider {
	if logf == nil {
		return p
	}
	return &LoggingProvider{inner: p, logf: logf}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	resp, err := l.inner.Generate(ctx, req)
	latency := time.Since(start)

	if err != nil {
		l.logf("llm %s purpose=%s latency=%s error=%v", l.inner.ModelID(), purpose, latency.Round(time.Millisecond), err)
		return resp, err
	}

	model := resp.Model
	if model == "" {
		model = l.inner.ModelID()
	}
	if cost := LookupCost(model); cost != nil {
		l.logf("llm %s purpose=%s latency=%s tokens=%d/%d cost=$%.5f",
			model, purpose, latency.Round(time.Millisecond),
			resp.Usage.InputTokens, resp.Usage.OutputTokens,
			cost.Cost(resp.Usage.InputTokens, resp.Usage.OutputTokens))
	} else {
		l.logf("llm %s purpose=%s latency=%s tokens=%d/%d",
			model, purpose, latency.Round(time.Millisecond),
			resp.Usage.InputTokens, resp.Usage.OutputTokens)
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
