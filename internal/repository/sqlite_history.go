package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mariekevos/gmatrix/internal/db"
	"github.com/mariekevos/gmatrix/internal/domain"
)

// SQLiteHistoryRepo implements HistoryRepo using a SQLite database.
type SQLiteHistoryRepo struct {
	db db.DBTX
}

// NewSQLiteHistoryRepo creates a new SQLiteHistoryRepo.
func NewSQLiteHistoryRepo(db db.DBTX) *SQLiteHistoryRepo {
	return &SQLiteHistoryRepo{db: db}
}

const recordColumns = `id, type, profile_id, level_id, scheme, date, total_score,
	dimensions, scores, statement_counts, ratings, comments`

func (r *SQLiteHistoryRepo) Create(ctx context.Context, rec *domain.Record) error {
	dimensions, err := marshalJSON(rec.Dimensions)
	if err != nil {
		return err
	}
	scores, err := marshalJSON(rec.Scores)
	if err != nil {
		return err
	}
	counts, err := marshalJSON(rec.StatementCounts)
	if err != nil {
		return err
	}
	ratings, err := marshalJSON(rec.Ratings)
	if err != nil {
		return err
	}
	comments, err := marshalJSON(rec.Comments)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `INSERT INTO assessments
		(`+recordColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, string(rec.Type), rec.ProfileID, rec.LevelID, string(rec.Scheme),
		formatTime(rec.Date), nullableFloatToValue(rec.TotalScore),
		dimensions, scores, counts, ratings, comments,
	)
	if err != nil {
		return fmt.Errorf("inserting assessment record: %w", err)
	}
	return nil
}

func (r *SQLiteHistoryRepo) GetByID(ctx context.Context, id string) (*domain.Record, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+recordColumns+` FROM assessments WHERE id = ?`, id)
	rec, err := scanRecord(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("assessment record: %w", ErrNotFound)
	}
	return rec, err
}

// List returns all records in insertion order.
func (r *SQLiteHistoryRepo) List(ctx context.Context) ([]*domain.Record, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+recordColumns+` FROM assessments ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("listing assessment records: %w", err)
	}
	defer rows.Close()

	var records []*domain.Record
	for rows.Next() {
		rec, err := scanRecord(rows.Scan)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating assessment records: %w", err)
	}
	return records, nil
}

func (r *SQLiteHistoryRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM assessments WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting assessment record: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("assessment record: %w", ErrNotFound)
	}
	return nil
}

// scanRecord scans one record from a row scan function shared by GetByID and
// List.
func scanRecord(scan func(dest ...any) error) (*domain.Record, error) {
	var rec domain.Record
	var typ, scheme, dateStr string
	var total sql.NullFloat64
	var dimensions, scores, counts, ratings, comments string

	err := scan(&rec.ID, &typ, &rec.ProfileID, &rec.LevelID, &scheme, &dateStr, &total,
		&dimensions, &scores, &counts, &ratings, &comments)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("scanning assessment record: %w", err)
	}

	rec.Type = domain.AssessmentType(typ)
	rec.Scheme = domain.RatingScheme(scheme)
	if rec.Date, err = parseTime(dateStr); err != nil {
		return nil, err
	}
	if total.Valid {
		rec.TotalScore = &total.Float64
	}
	if err := unmarshalJSON(dimensions, &rec.Dimensions); err != nil {
		return nil, err
	}
	if err := unmarshalJSON(scores, &rec.Scores); err != nil {
		return nil, err
	}
	if err := unmarshalJSON(counts, &rec.StatementCounts); err != nil {
		return nil, err
	}
	if err := unmarshalJSON(ratings, &rec.Ratings); err != nil {
		return nil, err
	}
	if err := unmarshalJSON(comments, &rec.Comments); err != nil {
		return nil, err
	}
	return &rec, nil
}
