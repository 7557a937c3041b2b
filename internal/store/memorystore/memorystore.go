// Package memorystore keeps the task collection in process memory. Used in
// tests and selectable as a backend for throwaway deployments.
package memorystore

import (
	"context"
	"sync"

	"tasklite/internal/model"
)

type MemoryStore struct {
	mu    sync.RWMutex
	tasks []model.Task
}

func New() *MemoryStore {
	return &MemoryStore{tasks: []model.Task{}}
}

func (s *MemoryStore) Load(ctx context.Context) ([]model.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Task, len(s.tasks))
	copy(out, s.tasks)
	return out, nil
}

func (s *MemoryStore) Save(ctx context.Context, tasks []model.Task) error {
	cp := make([]model.Task, len(tasks))
	copy(cp, tasks)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = cp
	return nil
}
