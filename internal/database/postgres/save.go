package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/craftboard/internal/domain"
	"github.com/osse101/craftboard/internal/repository"
)

// SaveRepository implements repository.Save for PostgreSQL
type SaveRepository struct {
	pool *pgxpool.Pool
}

// NewSaveRepository creates a new SaveRepository
func NewSaveRepository(pool *pgxpool.Pool) *SaveRepository {
	return &SaveRepository{pool: pool}
}

// Load retrieves the payload stored under saveID
func (r *SaveRepository) Load(ctx context.Context, saveID string) ([]byte, error) {
	var data []byte
	err := r.pool.QueryRow(ctx, sqlLoadSave, saveID).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrSaveNotFound, saveID)
		}
		return nil, fmt.Errorf(ErrMsgFailedToLoadSave+": %w", saveID, err)
	}
	return data, nil
}

// Save inserts or replaces the payload stored under saveID
func (r *SaveRepository) Save(ctx context.Context, saveID string, data []byte) error {
	if _, err := r.pool.Exec(ctx, sqlUpsertSave, saveID, data); err != nil {
		return fmt.Errorf(ErrMsgFailedToUpsertSave+": %w", saveID, err)
	}
	return nil
}

// Delete removes the payload stored under saveID. Deleting a missing save is not an error.
func (r *SaveRepository) Delete(ctx context.Context, saveID string) error {
	if _, err := r.pool.Exec(ctx, sqlDeleteSave, saveID); err != nil {
		return fmt.Errorf(ErrMsgFailedToDeleteSave+": %w", saveID, err)
	}
	return nil
}

// List returns every stored save ordered by id
func (r *SaveRepository) List(ctx context.Context) ([]repository.SaveInfo, error) {
	rows, err := r.pool.Query(ctx, sqlListSaves)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListSaves, err)
	}
	defer rows.Close()

	var saves []repository.SaveInfo
	for rows.Next() {
		var info repository.SaveInfo
		if err := rows.Scan(&info.SaveID, &info.Size, &info.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanSave, err)
		}
		saves = append(saves, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListSaves, err)
	}
	return saves, nil
}
