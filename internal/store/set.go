// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "sync"

// memberSet is the local mirror of one collection. The lock makes each read
// and write atomic; it does not order whole operations.
type memberSet[ID comparable] struct {
	mu    sync.RWMutex
	items map[ID]struct{}
}

func newMemberSet[ID comparable]() *memberSet[ID] {
	return &memberSet[ID]{items: make(map[ID]struct{})}
}

func (s *memberSet[ID]) has(id ID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.items[id]
	return ok
}

// insert reports whether id was absent.
func (s *memberSet[ID]) insert(id ID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; ok {
		return false
	}
	s.items[id] = struct{}{}
	return true
}

// erase reports whether id was present.
func (s *memberSet[ID]) erase(id ID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return false
	}
	delete(s.items, id)
	return true
}

// replace clears the set and inserts ids in one step.
func (s *memberSet[ID]) replace(ids []ID) {
	items := make(map[ID]struct{}, len(ids))
	for _, id := range ids {
		items[id] = struct{}{}
	}

	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
}

func (s *memberSet[ID]) snapshot() []ID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]ID, 0, len(s.items))
	for id := range s.items {
		out = append(out, id)
	}
	return out
}

func (s *memberSet[ID]) len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
