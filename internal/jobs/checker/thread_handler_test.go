package checker

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/CWELOWNIA12344/proxy-checker/internal/domain"
)

func TestCheckBatch_EmptyInput(t *testing.T) {
	c := New(testJudgeURL, time.Second)

	results := c.CheckBatch(context.Background(), nil, 0)
	if len(results) != 0 {
		t.Fatalf("expected no results, got %d", len(results))
	}
}

func TestCheckBatch_ResultOrderMatchesInputOrder(t *testing.T) {
	good := newFakeProxy(t, judgeBody(`{"origin": "198.51.100.23"}`))
	slow := newFakeProxy(t, func(w http.ResponseWriter, r *http.Request) {
		// Finishes last despite being first in the input.
		time.Sleep(150 * time.Millisecond)
		judgeBody(`{"origin": "198.51.100.24"}`)(w, r)
	})

	proxies := []string{
		slow.Listener.Addr().String(),
		good.Listener.Addr().String(),
		"127.0.0.1:1",
	}

	c := New(testJudgeURL, 2*time.Second, WithConcurrency(3))
	results := c.CheckBatch(context.Background(), proxies, 0)

	if len(results) != len(proxies) {
		t.Fatalf("expected %d results, got %d", len(proxies), len(results))
	}
	for i, proxy := range proxies {
		if results[i].Proxy != proxy {
			t.Fatalf("result %d belongs to %s, want %s", i, results[i].Proxy, proxy)
		}
		assertInvariant(t, results[i])
	}
	if results[0].Status != domain.StatusWorking {
		t.Fatalf("slow proxy should still succeed, got %s (%s)", results[0].Status, results[0].Error)
	}
	if results[1].Status != domain.StatusWorking {
		t.Fatalf("good proxy should succeed, got %s (%s)", results[1].Status, results[1].Error)
	}
	if results[2].Status != domain.StatusFailed {
		t.Fatalf("unreachable proxy should fail, got %s", results[2].Status)
	}
}

func TestCheckBatch_ConcurrencyLimitIsRespected(t *testing.T) {
	var mu sync.Mutex
	var inFlight, peak int

	proxy := newFakeProxy(t, func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		inFlight++
		if inFlight > peak {
			peak = inFlight
		}
		mu.Unlock()

		time.Sleep(30 * time.Millisecond)

		mu.Lock()
		inFlight--
		mu.Unlock()

		judgeBody(`{"origin": "198.51.100.23"}`)(w, r)
	})

	addr := proxy.Listener.Addr().String()
	proxies := []string{addr, addr, addr, addr, addr, addr}

	c := New(testJudgeURL, 2*time.Second, WithConcurrency(2))
	results := c.CheckBatch(context.Background(), proxies, 0)

	for i, result := range results {
		if result.Status != domain.StatusWorking {
			t.Fatalf("result %d failed unexpectedly: %s", i, result.Error)
		}
	}

	mu.Lock()
	observedPeak := peak
	mu.Unlock()
	if observedPeak > 2 {
		t.Fatalf("concurrency limit exceeded: %d checks ran at once", observedPeak)
	}
}
