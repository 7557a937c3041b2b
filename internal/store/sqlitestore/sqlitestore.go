// Package sqlitestore persists the task collection in a SQLite database.
// It keeps the same whole-collection load/save contract as the file
// backend: Save replaces the table contents in one transaction and a
// position column preserves insertion order.
package sqlitestore

import (
	"context"
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"

	"tasklite/internal/model"
)

const schema = `
CREATE TABLE IF NOT EXISTS tasks (
	position    INTEGER PRIMARY KEY,
	id          INTEGER NOT NULL,
	title       TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	completed   INTEGER NOT NULL DEFAULT 0,
	created_at  TEXT NOT NULL,
	updated_at  TEXT NOT NULL DEFAULT ''
)`

type SQLiteStore struct {
	db *sql.DB
}

func Open(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, errors.Wrap(err, "open sqlite")
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "create tasks table")
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Load(ctx context.Context) ([]model.Task, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, description, completed, created_at, updated_at
		FROM tasks ORDER BY position`)
	if err != nil {
		return nil, errors.Wrap(err, "query tasks")
	}
	defer rows.Close()

	tasks := []model.Task{}
	for rows.Next() {
		var t model.Task
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.Completed, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, errors.Wrap(err, "scan task")
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (s *SQLiteStore) Save(ctx context.Context, tasks []model.Task) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin tx")
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM tasks`); err != nil {
		return errors.Wrap(err, "clear tasks")
	}
	for i, t := range tasks {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO tasks (position, id, title, description, completed, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			i, t.ID, t.Title, t.Description, t.Completed, t.CreatedAt, t.UpdatedAt)
		if err != nil {
			return errors.Wrapf(err, "insert task %d", t.ID)
		}
	}
	return errors.Wrap(tx.Commit(), "commit")
}
