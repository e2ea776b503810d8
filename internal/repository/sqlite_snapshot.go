package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mariekevos/gmatrix/internal/db"
	"github.com/mariekevos/gmatrix/internal/domain"
)

// SQLiteSnapshotRepo implements SnapshotRepo on a single-row SQLite table.
type SQLiteSnapshotRepo struct {
	db db.DBTX
}

// NewSQLiteSnapshotRepo creates a new SQLiteSnapshotRepo.
func NewSQLiteSnapshotRepo(db db.DBTX) *SQLiteSnapshotRepo {
	return &SQLiteSnapshotRepo{db: db}
}

func (r *SQLiteSnapshotRepo) Get(ctx context.Context) (*domain.Assessment, error) {
	var blob string
	err := r.db.QueryRowContext(ctx, `SELECT snapshot FROM in_progress WHERE id = 1`).Scan(&blob)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading in-progress snapshot: %w", err)
	}

	var a domain.Assessment
	if err := json.Unmarshal([]byte(blob), &a); err != nil {
		// A corrupt snapshot is treated as no snapshot.
		return nil, nil
	}
	return &a, nil
}

func (r *SQLiteSnapshotRepo) Put(ctx context.Context, a *domain.Assessment) error {
	blob, err := marshalJSON(a)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `INSERT INTO in_progress (id, snapshot, updated_at) VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET snapshot = excluded.snapshot, updated_at = excluded.updated_at`,
		blob, formatTime(time.Now()))
	if err != nil {
		return fmt.Errorf("saving in-progress snapshot: %w", err)
	}
	return nil
}

func (r *SQLiteSnapshotRepo) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM in_progress WHERE id = 1`); err != nil {
		return fmt.Errorf("clearing in-progress snapshot: %w", err)
	}
	return nil
}
