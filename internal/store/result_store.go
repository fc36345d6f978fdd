// Package store holds the in-memory ledger of completed proxy checks. The
// ledger is append-only for the lifetime of the process; only Clear replaces
// it, wholesale, with an empty sequence.
package store

import (
	"sync"

	"github.com/CWELOWNIA12344/proxy-checker/internal/domain"
)

type ResultStore struct {
	mu      sync.RWMutex
	results []domain.CheckResult
}

func NewResultStore() *ResultStore {
	return &ResultStore{
		results: make([]domain.CheckResult, 0),
	}
}

// Append adds a single result to the end of the ledger.
func (s *ResultStore) Append(result domain.CheckResult) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.results = append(s.results, result)
}

// AppendBatch adds every result in order under one lock acquisition, so a
// concurrent reader sees either none or all of the batch.
func (s *ResultStore) AppendBatch(results []domain.CheckResult) {
	if len(results) == 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.results = append(s.results, results...)
}

// All returns a snapshot of every entry, oldest first.
func (s *ResultStore) All() []domain.CheckResult {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make([]domain.CheckResult, len(s.results))
	copy(snapshot, s.results)
	return snapshot
}

// Working returns the entries with a working status, preserving order.
func (s *ResultStore) Working() []domain.CheckResult {
	return s.Filter(domain.CheckResult.IsWorking)
}

// Filter returns the entries satisfying the predicate, preserving order.
func (s *ResultStore) Filter(predicate func(domain.CheckResult) bool) []domain.CheckResult {
	s.mu.RLock()
	defer s.mu.RUnlock()

	filtered := make([]domain.CheckResult, 0)
	for _, result := range s.results {
		if predicate(result) {
			filtered = append(filtered, result)
		}
	}
	return filtered
}

// Clear atomically replaces the ledger with an empty sequence.
func (s *ResultStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.results = make([]domain.CheckResult, 0)
}

func (s *ResultStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.results)
}
