package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/coronas"
	"github.com/katalvlaran/coronas/compact"
	"github.com/katalvlaran/coronas/corona"
	"github.com/katalvlaran/coronas/enumerate"
	"github.com/katalvlaran/coronas/persist"
)

// Run is a stored enumeration run. Coronas is only filled by Get and Latest.
type Run struct {
	ID          string
	Center      int
	Count       int
	Candidates  int
	Valid       int
	GeneratedAt time.Time
	Coronas     []StoredCorona
}

// StoredCorona is one unique corona of a run.
type StoredCorona struct {
	Position int
	Compact  string
	Key      corona.Key
}

// Document converts the run to its JSON document form.
func (r Run) Document() persist.Run {
	forms := make([]string, len(r.Coronas))
	for i, c := range r.Coronas {
		forms[i] = c.Compact
	}

	return persist.Run{Center: r.Center, Count: r.Count, Generated: r.GeneratedAt, Coronas: forms}
}

// RunRepo persists runs.
type RunRepo struct {
	db *sql.DB
}

// NewRunRepo returns a RunRepo over db. db must be migrated (see Migrate).
func NewRunRepo(db *sql.DB) *RunRepo { return &RunRepo{db: db} }

// Insert stores res under a fresh UUID and returns the stored run.
func (r *RunRepo) Insert(ctx context.Context, res *enumerate.Result, generatedAt time.Time) (Run, error) {
	run := Run{
		ID:          uuid.NewString(),
		Center:      res.Center,
		Count:       len(res.Coronas),
		Candidates:  res.Candidates,
		Valid:       res.Valid,
		GeneratedAt: generatedAt.UTC().Truncate(time.Second),
		Coronas:     make([]StoredCorona, len(res.Coronas)),
	}
	for i, c := range res.Coronas {
		key := c.CanonicalKey()
		if i < len(res.Keys) {
			key = res.Keys[i]
		}
		run.Coronas[i] = StoredCorona{Position: i, Compact: compact.Format(c), Key: key}
	}

	err := WithTx(r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `
		INSERT INTO runs(id, center, count, candidates, valid, generated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
			run.ID, run.Center, run.Count, run.Candidates, run.Valid, run.GeneratedAt); err != nil {
			return err
		}
		stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO run_coronas(run_id, position, compact, canonical_key) VALUES (?, ?, ?, ?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()
		for _, c := range run.Coronas {
			if _, err := stmt.ExecContext(ctx, run.ID, c.Position, c.Compact, string(c.Key)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return Run{}, fmt.Errorf("store: insert run: %w", err)
	}
	coronas.Logger().Info("store: run saved", "id", run.ID, "center", run.Center, "count", run.Count)

	return run, nil
}

// Get loads a run and its coronas. Unknown ids yield ErrRunNotFound.
func (r *RunRepo) Get(ctx context.Context, id string) (Run, error) {
	row := r.db.QueryRowContext(ctx, `
	SELECT id, center, count, candidates, valid, generated_at FROM runs WHERE id = ?`, id)
	run, err := scanRun(row)
	if err != nil {
		return Run{}, err
	}
	if run.Coronas, err = r.coronas(ctx, run.ID); err != nil {
		return Run{}, err
	}

	return run, nil
}

// Latest loads the most recent run for center.
func (r *RunRepo) Latest(ctx context.Context, center int) (Run, error) {
	row := r.db.QueryRowContext(ctx, `
	SELECT id, center, count, candidates, valid, generated_at FROM runs
	WHERE center = ? ORDER BY generated_at DESC, rowid DESC LIMIT 1`, center)
	run, err := scanRun(row)
	if err != nil {
		return Run{}, err
	}
	if run.Coronas, err = r.coronas(ctx, run.ID); err != nil {
		return Run{}, err
	}

	return run, nil
}

// List returns run headers, newest first. limit <= 0 means no limit.
func (r *RunRepo) List(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, center, count, candidates, valid, generated_at FROM runs
	ORDER BY generated_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("store: list runs: %w", err)
	}
	defer rows.Close()
	var out []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, run)
	}

	return out, rows.Err()
}

// Delete removes a run and, by cascade, its coronas.
func (r *RunRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM runs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("store: delete run: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("store: delete run: %w", err)
	}
	if n == 0 {
		return ErrRunNotFound
	}

	return nil
}

func (r *RunRepo) coronas(ctx context.Context, runID string) ([]StoredCorona, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT position, compact, canonical_key FROM run_coronas WHERE run_id = ? ORDER BY position`, runID)
	if err != nil {
		return nil, fmt.Errorf("store: load coronas: %w", err)
	}
	defer rows.Close()
	var out []StoredCorona
	for rows.Next() {
		var c StoredCorona
		var key string
		if err := rows.Scan(&c.Position, &c.Compact, &key); err != nil {
			return nil, fmt.Errorf("store: load coronas: %w", err)
		}
		c.Key = corona.Key(key)
		out = append(out, c)
	}

	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(s rowScanner) (Run, error) {
	var run Run
	err := s.Scan(&run.ID, &run.Center, &run.Count, &run.Candidates, &run.Valid, &run.GeneratedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, ErrRunNotFound
	}
	if err != nil {
		return Run{}, fmt.Errorf("store: scan run: %w", err)
	}
	run.GeneratedAt = run.GeneratedAt.UTC()

	return run, nil
}
