// Package filestore persists the task collection as a pretty-printed JSON
// array in a single file.
package filestore

import (
	"context"
	"encoding/json"
	"os"
	"strings"

	"github.com/gofrs/flock"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"tasklite/internal/model"
)

type FileStore struct {
	path string
	flk  *flock.Flock
	log  zerolog.Logger
}

func New(path string, log zerolog.Logger) *FileStore {
	return &FileStore{
		path: path,
		flk:  flock.New(path + ".lock"),
		log:  log.With().Str("component", "filestore").Str("path", path).Logger(),
	}
}

// Load reads the whole file. An absent, whitespace-only, or malformed file
// degrades to an empty collection; corruption is logged but never surfaced
// to the caller.
func (s *FileStore) Load(ctx context.Context) ([]model.Task, error) {
	if err := s.flk.Lock(); err != nil {
		return nil, errors.Wrap(err, "lock store file")
	}
	defer s.flk.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn().Err(err).Msg("store file unreadable, treating as empty")
		}
		return []model.Task{}, nil
	}

	if strings.TrimSpace(string(data)) == "" {
		return []model.Task{}, nil
	}

	var tasks []model.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		s.log.Warn().Err(err).Msg("store file malformed, treating as empty")
		return []model.Task{}, nil
	}
	if tasks == nil {
		tasks = []model.Task{}
	}
	return tasks, nil
}

// Save rewrites the whole file. No temp-file swap: a single failed write
// fails the request and is never retried.
func (s *FileStore) Save(ctx context.Context, tasks []model.Task) error {
	if tasks == nil {
		tasks = []model.Task{}
	}

	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshal tasks")
	}
	data = append(data, '\n')

	if err := s.flk.Lock(); err != nil {
		return errors.Wrap(err, "lock store file")
	}
	defer s.flk.Unlock()

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return errors.Wrapf(err, "write %s", s.path)
	}
	return nil
}
