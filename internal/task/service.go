package task

import (
	"context"
	"sync"

	"tasklite/internal/model"
)

// Store is the persistence boundary. Backends load and save the collection
// as a whole; between requests the backing store is the sole source of
// truth, no cache is kept here.
type Store interface {
	// Load returns the full collection in insertion order. A missing or
	// unreadable backing store yields an empty collection, not an error.
	Load(ctx context.Context) ([]model.Task, error)
	// Save replaces the persisted collection with tasks.
	Save(ctx context.Context, tasks []model.Task) error
}

// Service runs each operation as an independent load-validate-mutate-save
// cycle. The mutex serializes mutating cycles per instance so concurrent
// writes cannot lose updates.
type Service struct {
	mu    sync.Mutex
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// List never fails on a missing or corrupt store; it degrades to empty.
func (s *Service) List(ctx context.Context) ([]model.Task, error) {
	return s.store.Load(ctx)
}

func (s *Service) Get(ctx context.Context, id int) (model.Task, error) {
	tasks, err := s.store.Load(ctx)
	if err != nil {
		return model.Task{}, err
	}
	for _, t := range tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return model.Task{}, &NotFoundError{ID: id}
}

func (s *Service) Create(ctx context.Context, in CreateInput) (model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks, err := s.store.Load(ctx)
	if err != nil {
		return model.Task{}, err
	}

	t := model.Task{
		ID:          model.NextID(tasks),
		Title:       in.Title,
		Description: in.Description,
		Completed:   false,
		CreatedAt:   model.Now(),
	}

	if err := s.store.Save(ctx, append(tasks, t)); err != nil {
		return model.Task{}, err
	}
	return t, nil
}

func (s *Service) Update(ctx context.Context, id int, in UpdateInput) (model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks, err := s.store.Load(ctx)
	if err != nil {
		return model.Task{}, err
	}

	for i := range tasks {
		if tasks[i].ID != id {
			continue
		}

		if in.Title != nil {
			tasks[i].Title = *in.Title
		}
		if in.Description != nil {
			tasks[i].Description = *in.Description
		}
		if in.Completed != nil {
			tasks[i].Completed = *in.Completed
		}
		tasks[i].UpdatedAt = model.Now()

		if err := s.store.Save(ctx, tasks); err != nil {
			return model.Task{}, err
		}
		return tasks[i], nil
	}
	return model.Task{}, &NotFoundError{ID: id}
}

func (s *Service) Delete(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks, err := s.store.Load(ctx)
	if err != nil {
		return err
	}

	for i := range tasks {
		if tasks[i].ID != id {
			continue
		}
		remaining := append(tasks[:i:i], tasks[i+1:]...)
		return s.store.Save(ctx, remaining)
	}
	return &NotFoundError{ID: id}
}
