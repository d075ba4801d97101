package client

import (
	"context"
	"log"
	"time"
)

// DefaultRefreshInterval is the feed's refresh cadence.
const DefaultRefreshInterval = 30 * time.Second

// Poller re-fetches the aggregation snapshot on a fixed interval and
// reconciles the cache with it. Fetches are strictly sequential: a tick that
// fires while a fetch is still in flight is dropped, so two refreshes never
// overlap. Cancel the context to stop.
type Poller struct {
	Client   *Client
	Cache    *Cache
	Interval time.Duration
}

func NewPoller(client *Client, cache *Cache, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}
	return &Poller{
		Client:   client,
		Cache:    cache,
		Interval: interval,
	}
}

// Run fetches once immediately, then on every tick until ctx is cancelled.
func (p *Poller) Run(ctx context.Context) {
	p.refresh(ctx)

	ticker := time.NewTicker(p.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.refresh(ctx)
		}
	}
}

func (p *Poller) refresh(ctx context.Context) {
	views, err := p.Client.GetReports(ctx)
	if err != nil {
		// Keep the last good snapshot; the next tick retries.
		log.Printf("refresh failed: %v", err)
		return
	}
	p.Cache.ReplaceAll(views)
}
