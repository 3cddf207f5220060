package universities

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mathalama/review-universities/internal/client/models"
	"github.com/mathalama/review-universities/internal/common"
	"github.com/mathalama/review-universities/internal/dbx"
)

const upsertQuery = `
	INSERT INTO universities (id, name, payload, synced_at)
	VALUES (?, ?, ?, CURRENT_TIMESTAMP)
	ON CONFLICT(id) DO UPDATE SET
		name = excluded.name,
		payload = excluded.payload,
		synced_at = excluded.synced_at
`

// SQLiteRepository implements Repository. ReplaceAll needs a *sql.DB to open
// its own transaction; the other methods work on any dbx.DBTX.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) ReplaceAll(ctx context.Context, list []models.University) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM universities`); err != nil {
			return fmt.Errorf("failed to clear universities: %w", err)
		}
		for _, u := range list {
			if err := upsert(ctx, tx, u); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *SQLiteRepository) Upsert(ctx context.Context, u models.University) error {
	return upsert(ctx, r.db, u)
}

func upsert(ctx context.Context, db dbx.DBTX, u models.University) error {
	payload, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("failed to encode university %d: %w", u.ID, err)
	}
	if _, err := db.ExecContext(ctx, upsertQuery, u.ID, u.Name, payload); err != nil {
		return fmt.Errorf("failed to upsert university %d: %w", u.ID, err)
	}
	return nil
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.University, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT payload FROM universities ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to select universities: %w", err)
	}
	defer rows.Close()

	result := []models.University{}
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		var u models.University
		if err := json.Unmarshal(payload, &u); err != nil {
			return nil, fmt.Errorf("failed to decode cached university: %w", err)
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id int64) (models.University, error) {
	var payload []byte
	err := r.db.QueryRowContext(ctx, `SELECT payload FROM universities WHERE id = ?`, id).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return models.University{}, fmt.Errorf("university %d: %w", id, common.ErrorNotFound)
	}
	if err != nil {
		return models.University{}, fmt.Errorf("query row scan failed: %w", err)
	}

	var u models.University
	if err := json.Unmarshal(payload, &u); err != nil {
		return models.University{}, fmt.Errorf("failed to decode cached university %d: %w", id, err)
	}
	return u, nil
}

func (r *SQLiteRepository) DeleteByID(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM universities WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete university %d: %w", id, err)
	}
	return nil
}
