package time

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/date-engine/internal/domain/port/core"
)

// FixedTimeProvider serves a constant instant so date computations can be
// pinned in tests. Sleep returns immediately instead of blocking.
type FixedTimeProvider struct {
	now time.Time
}

// NewFixedTimeProvider creates a provider frozen at t
func NewFixedTimeProvider(t time.Time) *FixedTimeProvider {
	return &FixedTimeProvider{now: t}
}

// Now returns the frozen instant
func (p *FixedTimeProvider) Now() time.Time {
	return p.now
}

// Since returns the distance from t to the frozen instant
func (p *FixedTimeProvider) Since(t time.Time) core.Duration {
	return core.Duration(p.now.Sub(t))
}

// Sleep is a no-op
func (p *FixedTimeProvider) Sleep(d core.Duration) {}

// WithTimeout returns a context that will be canceled after the specified timeout
func (p *FixedTimeProvider) WithTimeout(ctx context.Context, timeout core.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout.Std())
}

// Advance moves the frozen instant forward by d
func (p *FixedTimeProvider) Advance(d time.Duration) {
	p.now = p.now.Add(d)
}

// Set replaces the frozen instant
func (p *FixedTimeProvider) Set(t time.Time) {
	p.now = t
}
