package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mariekevos/gmatrix/internal/db"
	"github.com/mariekevos/gmatrix/internal/domain"
)

// SQLiteEvidenceRepo implements EvidenceRepo using a SQLite database.
type SQLiteEvidenceRepo struct {
	db db.DBTX
}

// NewSQLiteEvidenceRepo creates a new SQLiteEvidenceRepo.
func NewSQLiteEvidenceRepo(db db.DBTX) *SQLiteEvidenceRepo {
	return &SQLiteEvidenceRepo{db: db}
}

const evidenceColumns = `id, profile_id, level_id, dimension_id, statement_index, date, text`

func (r *SQLiteEvidenceRepo) Create(ctx context.Context, e *domain.EvidenceEntry) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO evidence (`+evidenceColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.ProfileID, e.LevelID, e.DimensionID, e.StatementIndex,
		formatTime(e.Date), e.Text,
	)
	if err != nil {
		return fmt.Errorf("inserting evidence entry: %w", err)
	}
	return nil
}

func (r *SQLiteEvidenceRepo) GetByID(ctx context.Context, id string) (*domain.EvidenceEntry, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+evidenceColumns+` FROM evidence WHERE id = ?`, id)
	e, err := scanEvidence(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("evidence entry: %w", ErrNotFound)
	}
	return e, err
}

// Update rewrites the text and date of an existing entry.
func (r *SQLiteEvidenceRepo) Update(ctx context.Context, e *domain.EvidenceEntry) error {
	res, err := r.db.ExecContext(ctx, `UPDATE evidence SET date = ?, text = ? WHERE id = ?`,
		formatTime(e.Date), e.Text, e.ID)
	if err != nil {
		return fmt.Errorf("updating evidence entry: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("evidence entry: %w", ErrNotFound)
	}
	return nil
}

func (r *SQLiteEvidenceRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM evidence WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting evidence entry: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("evidence entry: %w", ErrNotFound)
	}
	return nil
}

func (r *SQLiteEvidenceRepo) ListByStatement(ctx context.Context, profileID, levelID, dimensionID string, statementIndex int) ([]*domain.EvidenceEntry, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+evidenceColumns+` FROM evidence
		WHERE profile_id = ? AND level_id = ? AND dimension_id = ? AND statement_index = ?
		ORDER BY date`,
		profileID, levelID, dimensionID, statementIndex)
	if err != nil {
		return nil, fmt.Errorf("listing evidence by statement: %w", err)
	}
	defer rows.Close()

	var entries []*domain.EvidenceEntry
	for rows.Next() {
		e, err := scanEvidence(rows.Scan)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating evidence entries: %w", err)
	}
	return entries, nil
}

func (r *SQLiteEvidenceRepo) CountByDimension(ctx context.Context, profileID, levelID, dimensionID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM evidence
		WHERE profile_id = ? AND level_id = ? AND dimension_id = ?`,
		profileID, levelID, dimensionID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting evidence by dimension: %w", err)
	}
	return count, nil
}

func scanEvidence(scan func(dest ...any) error) (*domain.EvidenceEntry, error) {
	var e domain.EvidenceEntry
	var dateStr string

	err := scan(&e.ID, &e.ProfileID, &e.LevelID, &e.DimensionID, &e.StatementIndex, &dateStr, &e.Text)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("scanning evidence entry: %w", err)
	}

	if e.Date, err = parseTime(dateStr); err != nil {
		return nil, err
	}
	return &e, nil
}
