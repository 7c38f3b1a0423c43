package store

import (
	"context"
	"time"

	"github.com/aitbenali/go-office-board/models"
)

// UserRepository persists account records and the transient two-factor
// challenge state attached to them.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByID(ctx context.Context, id int64) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByUsernameAndEmail(ctx context.Context, username string, email string) (models.User, error)
	GetAllUsers(ctx context.Context) ([]models.User, error)

	// SetTwoFACode overwrites any pending code: the most recent login
	// attempt always wins.
	SetTwoFACode(ctx context.Context, userID int64, code string, expiresAt time.Time) error

	// ClearTwoFACode consumes the pending code only if it still matches,
	// returning ErrTwoFACodeMismatch when a concurrent verification or a
	// newer login got there first.
	ClearTwoFACode(ctx context.Context, userID int64, code string) error

	UpdateUser(ctx context.Context, id int64, update models.UserUpdate) (models.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

// EmployeeRepository persists employee records keyed by matricule.
type EmployeeRepository interface {
	GetAllEmployees(ctx context.Context) ([]models.Employee, error)
	FindEmployeeByMatricule(ctx context.Context, matricule string) (models.Employee, error)
	CreateEmployee(ctx context.Context, employee models.Employee) error
	UpdateEmployee(ctx context.Context, employee models.Employee) error
	DeleteEmployee(ctx context.Context, matricule string) error
}

// BureauRepository persists office rooms keyed by room number.
type BureauRepository interface {
	GetAllBureaux(ctx context.Context) ([]models.Bureau, error)
	FindBureauByNumero(ctx context.Context, numero int) (models.Bureau, error)
	CreateBureau(ctx context.Context, bureau models.Bureau) error
	UpdateBureau(ctx context.Context, bureau models.Bureau) error
	DeleteBureau(ctx context.Context, numero int) error
}

// AssignmentRepository persists employee-to-bureau assignments keyed by the
// (matricule, numero) pair.
type AssignmentRepository interface {
	GetAllAssignments(ctx context.Context) ([]models.Assignment, error)
	CreateAssignment(ctx context.Context, assignment models.Assignment) error
	UpdateAssignment(ctx context.Context, matricule string, numero int, assignment models.Assignment) error
	DeleteAssignment(ctx context.Context, matricule string, numero int) error
}
