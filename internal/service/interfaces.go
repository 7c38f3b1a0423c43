package service

import (
	"context"

	"github.com/aitbenali/go-office-board/models"
)

// Credentials carries the identity triple every authentication phase
// requires. Login and two-factor verification both re-check the full triple
// so a stolen code alone never opens a session.
type Credentials struct {
	Username string
	Email    string
	Password string
}

// ProfileUpdate is the caller-facing shape of a profile change. Password is
// plaintext here; the service hashes it before it ever reaches the store.
// Nil fields are left untouched.
type ProfileUpdate struct {
	Username *string
	Email    *string
	Password *string
	IsAdmin  *bool
}

type AuthService interface {
	Register(ctx context.Context, creds Credentials, isAdmin bool) (models.User, error)

	// Login performs the first authentication phase: it verifies the
	// credential triple, generates a fresh verification code, stores it
	// with its expiry and emails it to the account address.
	Login(ctx context.Context, creds Credentials) (models.User, error)

	// VerifyTwoFA performs the second phase: credentials are re-verified,
	// the submitted code is compared against the pending one, consumed
	// atomically, and a token pair is minted.
	VerifyTwoFA(ctx context.Context, creds Credentials, code string) (models.User, models.TokenPair, error)

	ParseAccessToken(ctx context.Context, tokenString string) (models.Token, error)
	GetUserByID(ctx context.Context, id int64) (models.User, error)
	GetAllUsers(ctx context.Context, actor models.User) ([]models.User, error)
	UpdateProfile(ctx context.Context, actor models.User, targetID int64, update ProfileUpdate) (models.User, error)
	DeleteUser(ctx context.Context, actor models.User, targetID int64) error
}

type EmployeeService interface {
	GetAllEmployees(ctx context.Context) ([]models.Employee, error)
	GetEmployee(ctx context.Context, matricule string) (models.Employee, error)
	CreateEmployee(ctx context.Context, employee models.Employee) error
	UpdateEmployee(ctx context.Context, employee models.Employee) error
	DeleteEmployee(ctx context.Context, matricule string) error
}

type BureauService interface {
	GetAllBureaux(ctx context.Context) ([]models.Bureau, error)

	// GetBureauxGroupedByNiveau buckets all rooms per floor in the
	// chart-ready shape the dashboard treemap consumes.
	GetBureauxGroupedByNiveau(ctx context.Context) ([]models.BureauGroup, error)

	GetBureau(ctx context.Context, numero int) (models.Bureau, error)
	CreateBureau(ctx context.Context, bureau models.Bureau) error
	UpdateBureau(ctx context.Context, bureau models.Bureau) error
	DeleteBureau(ctx context.Context, numero int) error
}

type AssignmentService interface {
	GetAllAssignments(ctx context.Context) ([]models.Assignment, error)
	CreateAssignment(ctx context.Context, assignment models.Assignment) error
	UpdateAssignment(ctx context.Context, matricule string, numero int, assignment models.Assignment) error
	DeleteAssignment(ctx context.Context, matricule string, numero int) error
}
