package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/aitbenali/go-office-board/internal/logger"
	"github.com/aitbenali/go-office-board/models"
	"github.com/jackc/pgerrcode"
)

// bureauRepository is the PostgreSQL-backed implementation of
// [BureauRepository] over the "bureau" table.
type bureauRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewBureauRepository constructs a [BureauRepository] backed by the provided
// database connection and logger.
func NewBureauRepository(db *DB, logger *logger.Logger) BureauRepository {
	logger.Debug().Msg("creating bureau repository")
	return &bureauRepository{
		db:     db,
		logger: logger,
	}
}

// GetAllBureaux returns every room ordered by floor then number. The stable
// ordering lets callers bucket rooms per floor in a single pass.
func (r *bureauRepository) GetAllBureaux(ctx context.Context) ([]models.Bureau, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getAllBureaux)
	if err != nil {
		log.Err(err).Str("func", "*bureauRepository.GetAllBureaux").Msg("error querying bureaux")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var bureaux []models.Bureau
	for rows.Next() {
		var bureau models.Bureau
		if err := rows.Scan(&bureau.Numero, &bureau.Niveau, &bureau.Superficie); err != nil {
			log.Err(err).Str("func", "*bureauRepository.GetAllBureaux").Msg("error scanning bureau row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		bureaux = append(bureaux, bureau)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return bureaux, nil
}

// FindBureauByNumero retrieves a single room record.
// Returns [ErrBureauNotFound] when no row matches.
func (r *bureauRepository) FindBureauByNumero(ctx context.Context, numero int) (models.Bureau, error) {
	log := logger.FromContext(ctx)

	var bureau models.Bureau
	row := r.db.QueryRowContext(ctx, findBureauByNumero, numero)

	if err := row.Scan(&bureau.Numero, &bureau.Niveau, &bureau.Superficie); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Bureau{}, ErrBureauNotFound
		}

		log.Err(err).Str("func", "*bureauRepository.FindBureauByNumero").Msg("error finding bureau")
		return models.Bureau{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return bureau, nil
}

// CreateBureau persists a new room record.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrBureauAlreadyExists].
func (r *bureauRepository) CreateBureau(ctx context.Context, bureau models.Bureau) error {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, createBureau, bureau.Numero, bureau.Niveau, bureau.Superficie)
	if err != nil {
		log.Err(err).Str("func", "*bureauRepository.CreateBureau").Msg("error creating bureau")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return ErrBureauAlreadyExists
		default:
			return fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return nil
}

// UpdateBureau rewrites the mutable columns of the room identified by its
// number. Returns [ErrBureauNotFound] when no row matches.
func (r *bureauRepository) UpdateBureau(ctx context.Context, bureau models.Bureau) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, updateBureau, bureau.Numero, bureau.Niveau, bureau.Superficie)
	if err != nil {
		log.Err(err).Str("func", "*bureauRepository.UpdateBureau").Msg("error updating bureau")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrBureauNotFound
	}

	return nil
}

// DeleteBureau removes the room row, cascading to its assignments.
// Returns [ErrBureauNotFound] when the number does not exist.
func (r *bureauRepository) DeleteBureau(ctx context.Context, numero int) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteBureau, numero)
	if err != nil {
		log.Err(err).Str("func", "*bureauRepository.DeleteBureau").Msg("error deleting bureau")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrBureauNotFound
	}

	return nil
}
