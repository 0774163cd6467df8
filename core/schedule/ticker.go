package schedule

import (
	"sync"
	"time"
)

// Ticker is a scoped once-per-interval timer used to re-evaluate a displayed
// countdown. Stop is idempotent and safe to defer on every exit path;
// the underlying timer is always released.
type Ticker struct {
	C <-chan time.Time

	ticker   *time.Ticker
	stopOnce sync.Once
}

// NewTicker starts a ticker firing every interval.
// Callers must Stop it once the countdown is no longer displayed.
func NewTicker(interval time.Duration) *Ticker {
	t := time.NewTicker(interval)
	return &Ticker{C: t.C, ticker: t}
}

func (t *Ticker) Stop() {
	t.stopOnce.Do(t.ticker.Stop)
}
