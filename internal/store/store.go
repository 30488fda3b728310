// Package store handles SQLite persistence of label lookup tables.
package store

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"

	"github.com/verte-zerg/svstats/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access for label data.
type Store struct {
	db *sql.DB
}

// SetInfo summarizes one stored label set.
type SetInfo struct {
	Set   model.LabelSet
	Count int
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS labels (
			label_set TEXT NOT NULL,
			code INTEGER NOT NULL,
			name TEXT NOT NULL,
			PRIMARY KEY (label_set, code)
		);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// ReplaceLabels stores names for a label set, replacing any previous rows.
// The position of each name is its code.
func (s *Store) ReplaceLabels(ctx context.Context, set model.LabelSet, names []string) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM labels WHERE label_set = ?`, string(set)); err != nil {
		return err
	}
	if len(names) > 0 {
		stmt, perr := tx.PrepareContext(ctx, `INSERT INTO labels (label_set, code, name) VALUES (?, ?, ?)`)
		if perr != nil {
			err = perr
			return err
		}
		defer func() {
			if cerr := stmt.Close(); cerr != nil {
				// Best-effort statement close.
				_ = cerr
			}
		}()
		for code, name := range names {
			if _, err = stmt.ExecContext(ctx, string(set), code, name); err != nil {
				return err
			}
		}
	}
	err = tx.Commit()
	return err
}

// Labels returns the labels of a set ordered by code.
func (s *Store) Labels(ctx context.Context, set model.LabelSet) ([]model.Label, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT code, name FROM labels WHERE label_set = ? ORDER BY code ASC`, string(set))
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var result []model.Label
	for rows.Next() {
		var l model.Label
		if err := rows.Scan(&l.Code, &l.Name); err != nil {
			return nil, err
		}
		result = append(result, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// LabelSets lists stored label sets with their row counts.
func (s *Store) LabelSets(ctx context.Context) ([]SetInfo, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT label_set, COUNT(*) FROM labels GROUP BY label_set ORDER BY label_set ASC`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var result []SetInfo
	for rows.Next() {
		var info SetInfo
		var set string
		if err := rows.Scan(&set, &info.Count); err != nil {
			return nil, err
		}
		info.Set = model.LabelSet(set)
		result = append(result, info)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
