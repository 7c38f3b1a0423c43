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

// employeeRepository is the PostgreSQL-backed implementation of
// [EmployeeRepository] over the "employe" table.
type employeeRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewEmployeeRepository constructs an [EmployeeRepository] backed by the
// provided database connection and logger.
func NewEmployeeRepository(db *DB, logger *logger.Logger) EmployeeRepository {
	logger.Debug().Msg("creating employee repository")
	return &employeeRepository{
		db:     db,
		logger: logger,
	}
}

// GetAllEmployees returns every employee ordered by matricule.
func (r *employeeRepository) GetAllEmployees(ctx context.Context) ([]models.Employee, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getAllEmployees)
	if err != nil {
		log.Err(err).Str("func", "*employeeRepository.GetAllEmployees").Msg("error querying employees")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var employees []models.Employee
	for rows.Next() {
		var employee models.Employee
		if err := rows.Scan(&employee.Matricule, &employee.Nom, &employee.Affectation, &employee.Emploi, &employee.Fonction); err != nil {
			log.Err(err).Str("func", "*employeeRepository.GetAllEmployees").Msg("error scanning employee row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		employees = append(employees, employee)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return employees, nil
}

// FindEmployeeByMatricule retrieves a single employee record.
// Returns [ErrEmployeeNotFound] when no row matches.
func (r *employeeRepository) FindEmployeeByMatricule(ctx context.Context, matricule string) (models.Employee, error) {
	log := logger.FromContext(ctx)

	var employee models.Employee
	row := r.db.QueryRowContext(ctx, findEmployeeByMatricule, matricule)

	if err := row.Scan(&employee.Matricule, &employee.Nom, &employee.Affectation, &employee.Emploi, &employee.Fonction); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Employee{}, ErrEmployeeNotFound
		}

		log.Err(err).Str("func", "*employeeRepository.FindEmployeeByMatricule").Msg("error finding employee")
		return models.Employee{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return employee, nil
}

// CreateEmployee persists a new employee record.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmployeeAlreadyExists].
func (r *employeeRepository) CreateEmployee(ctx context.Context, employee models.Employee) error {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, createEmployee, employee.Matricule, employee.Nom, employee.Affectation, employee.Emploi, employee.Fonction)
	if err != nil {
		log.Err(err).Str("func", "*employeeRepository.CreateEmployee").Msg("error creating employee")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return ErrEmployeeAlreadyExists
		default:
			return fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return nil
}

// UpdateEmployee rewrites all mutable columns of the employee row identified
// by its matricule. Returns [ErrEmployeeNotFound] when no row matches.
func (r *employeeRepository) UpdateEmployee(ctx context.Context, employee models.Employee) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, updateEmployee, employee.Matricule, employee.Nom, employee.Affectation, employee.Emploi, employee.Fonction)
	if err != nil {
		log.Err(err).Str("func", "*employeeRepository.UpdateEmployee").Msg("error updating employee")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrEmployeeNotFound
	}

	return nil
}

// DeleteEmployee removes the employee row, cascading to its assignments.
// Returns [ErrEmployeeNotFound] when the matricule does not exist.
func (r *employeeRepository) DeleteEmployee(ctx context.Context, matricule string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteEmployee, matricule)
	if err != nil {
		log.Err(err).Str("func", "*employeeRepository.DeleteEmployee").Msg("error deleting employee")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrEmployeeNotFound
	}

	return nil
}
