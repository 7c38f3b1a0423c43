package store

import (
	"context"
	"fmt"

	"github.com/aitbenali/go-office-board/internal/logger"
	"github.com/aitbenali/go-office-board/models"
	"github.com/jackc/pgerrcode"
)

// assignmentRepository is the PostgreSQL-backed implementation of
// [AssignmentRepository] over the "affectation" table.
type assignmentRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAssignmentRepository constructs an [AssignmentRepository] backed by the
// provided database connection and logger.
func NewAssignmentRepository(db *DB, logger *logger.Logger) AssignmentRepository {
	logger.Debug().Msg("creating assignment repository")
	return &assignmentRepository{
		db:     db,
		logger: logger,
	}
}

// GetAllAssignments returns every assignment, most recent first.
func (r *assignmentRepository) GetAllAssignments(ctx context.Context) ([]models.Assignment, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getAllAssignments)
	if err != nil {
		log.Err(err).Str("func", "*assignmentRepository.GetAllAssignments").Msg("error querying assignments")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var assignments []models.Assignment
	for rows.Next() {
		var assignment models.Assignment
		if err := rows.Scan(&assignment.Matricule, &assignment.Numero, &assignment.DateAffectation, &assignment.Decision); err != nil {
			log.Err(err).Str("func", "*assignmentRepository.GetAllAssignments").Msg("error scanning assignment row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		assignments = append(assignments, assignment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return assignments, nil
}

// CreateAssignment persists a new (matricule, numero) link.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrAssignmentAlreadyExists].
//   - PostgreSQL foreign_key_violation (23503) → [ErrAssignmentReferences].
func (r *assignmentRepository) CreateAssignment(ctx context.Context, assignment models.Assignment) error {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, createAssignment, assignment.Matricule, assignment.Numero, assignment.DateAffectation, assignment.Decision)
	if err != nil {
		log.Err(err).Str("func", "*assignmentRepository.CreateAssignment").Msg("error creating assignment")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return ErrAssignmentAlreadyExists
		case pgerrcode.ForeignKeyViolation:
			return ErrAssignmentReferences
		default:
			return fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return nil
}

// UpdateAssignment rewrites the assignment row addressed by the original
// (matricule, numero) pair. The replacement may move the assignment to a
// different employee or room.
//
// Error handling:
//   - no matching row → [ErrAssignmentNotFound].
//   - unique_violation on the new pair → [ErrAssignmentAlreadyExists].
//   - foreign_key_violation on the new pair → [ErrAssignmentReferences].
func (r *assignmentRepository) UpdateAssignment(ctx context.Context, matricule string, numero int, assignment models.Assignment) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, updateAssignment, matricule, numero, assignment.Matricule, assignment.Numero, assignment.DateAffectation, assignment.Decision)
	if err != nil {
		log.Err(err).Str("func", "*assignmentRepository.UpdateAssignment").Msg("error updating assignment")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return ErrAssignmentAlreadyExists
		case pgerrcode.ForeignKeyViolation:
			return ErrAssignmentReferences
		default:
			return fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrAssignmentNotFound
	}

	return nil
}

// DeleteAssignment removes the assignment row addressed by the (matricule,
// numero) pair. Returns [ErrAssignmentNotFound] when the pair does not exist.
func (r *assignmentRepository) DeleteAssignment(ctx context.Context, matricule string, numero int) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteAssignment, matricule, numero)
	if err != nil {
		log.Err(err).Str("func", "*assignmentRepository.DeleteAssignment").Msg("error deleting assignment")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrAssignmentNotFound
	}

	return nil
}
