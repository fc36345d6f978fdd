package checker

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/CWELOWNIA12344/proxy-checker/internal/domain"
)

// CheckBatch fans the proxies out to concurrent checks, bounded by the
// configured concurrency limit, and joins them all before returning. The
// returned slice is indexed by input position, so result order always matches
// input order regardless of completion order.
func (c *Checker) CheckBatch(ctx context.Context, proxies []string, timeout time.Duration) []domain.CheckResult {
	results := make([]domain.CheckResult, len(proxies))
	if len(proxies) == 0 {
		return results
	}

	start := time.Now()

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(c.concurrency)

	for i, proxy := range proxies {
		i, proxy := i, proxy
		group.Go(func() error {
			results[i] = c.Check(groupCtx, proxy, timeout)
			return nil
		})
	}

	// Check never returns an error; Wait only joins the goroutines.
	_ = group.Wait()

	working := 0
	for _, result := range results {
		if result.IsWorking() {
			working++
		}
	}
	log.Info("Proxy batch finished",
		"total", len(proxies),
		"working", working,
		"failed", len(proxies)-working,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)

	return results
}
