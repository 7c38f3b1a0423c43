package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aitbenali/go-office-board/internal/logger"
	"github.com/aitbenali/go-office-board/models"
	"github.com/jackc/pgerrcode"
)

func newTestAssignmentRepo(t *testing.T) (*assignmentRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &assignmentRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestGetAllAssignments_Success(t *testing.T) {
	repo, mock, db := newTestAssignmentRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.
		NewRows([]string{"matricule", "numero", "date_affectation", "decision"}).
		AddRow("E001", 101, now, "N-2024-17").
		AddRow("E002", 201, now, "N-2024-18")

	mock.ExpectQuery("SELECT matricule").WillReturnRows(rows)

	assignments, err := repo.GetAllAssignments(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(assignments) != 2 {
		t.Fatalf("expected 2 assignments, got %d", len(assignments))
	}
	if assignments[0].Numero != 101 {
		t.Errorf("expected numero 101, got %d", assignments[0].Numero)
	}
}

func TestCreateAssignment_DuplicatePair(t *testing.T) {
	repo, mock, db := newTestAssignmentRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO affectation").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	err := repo.CreateAssignment(context.Background(), models.Assignment{Matricule: "E001", Numero: 101})
	if !errors.Is(err, ErrAssignmentAlreadyExists) {
		t.Fatalf("expected ErrAssignmentAlreadyExists, got %v", err)
	}
}

func TestCreateAssignment_UnknownEmployee(t *testing.T) {
	repo, mock, db := newTestAssignmentRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO affectation").
		WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

	err := repo.CreateAssignment(context.Background(), models.Assignment{Matricule: "E404", Numero: 101})
	if !errors.Is(err, ErrAssignmentReferences) {
		t.Fatalf("expected ErrAssignmentReferences, got %v", err)
	}
}

func TestUpdateAssignment_NotFound(t *testing.T) {
	repo, mock, db := newTestAssignmentRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE affectation").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateAssignment(context.Background(), "E404", 101, models.Assignment{Matricule: "E404", Numero: 102})
	if !errors.Is(err, ErrAssignmentNotFound) {
		t.Fatalf("expected ErrAssignmentNotFound, got %v", err)
	}
}

func TestDeleteAssignment_Success(t *testing.T) {
	repo, mock, db := newTestAssignmentRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM affectation").
		WithArgs("E001", 101).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteAssignment(context.Background(), "E001", 101); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
