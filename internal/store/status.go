// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "sync"

// Status is the observable outcome of the operations on one store.
type Status struct {
	// Loading is true while at least one refresh is in flight.
	Loading bool
	// Error is the human-readable message of the most recent failure, or ""
	// when no failure is recorded.
	Error string
}

// status tracks in-flight refreshes and the last error message. loading is
// derived from a counter so overlapping refreshes keep it set until the last
// one finishes.
type status struct {
	mu       sync.Mutex
	inflight int
	loading  bool
	err      string
}

func (s *status) get() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Status{Loading: s.loading, Error: s.err}
}

// begin marks a refresh in flight and clears the error. It returns the kinds
// of change it caused.
func (s *status) begin() []EventKind {
	s.mu.Lock()
	defer s.mu.Unlock()

	var kinds []EventKind
	s.inflight++
	if !s.loading {
		s.loading = true
		kinds = append(kinds, EventLoading)
	}
	if s.err != "" {
		s.err = ""
		kinds = append(kinds, EventError)
	}
	return kinds
}

// end releases one in-flight refresh.
func (s *status) end() []EventKind {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.inflight > 0 {
		s.inflight--
	}
	if s.inflight == 0 && s.loading {
		s.loading = false
		return []EventKind{EventLoading}
	}
	return nil
}

func (s *status) clearError() []EventKind {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.err == "" {
		return nil
	}
	s.err = ""
	return []EventKind{EventError}
}

func (s *status) fail(msg string) []EventKind {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.err = msg
	return []EventKind{EventError}
}
