package service

import (
	"context"
	"fmt"

	"github.com/aitbenali/go-office-board/internal/logger"
	"github.com/aitbenali/go-office-board/internal/store"
	"github.com/aitbenali/go-office-board/models"
)

// assignmentService is the concrete implementation of AssignmentService. It
// validates the assignment key and payload before delegating persistence.
type assignmentService struct {
	assignmentRepository store.AssignmentRepository
	logger               *logger.Logger
}

// NewAssignmentService constructs an AssignmentService wired to the given
// repository.
func NewAssignmentService(assignmentRepository store.AssignmentRepository, logger *logger.Logger) AssignmentService {
	return &assignmentService{
		assignmentRepository: assignmentRepository,
		logger:               logger,
	}
}

func (s *assignmentService) GetAllAssignments(ctx context.Context) ([]models.Assignment, error) {
	assignments, err := s.assignmentRepository.GetAllAssignments(ctx)
	if err != nil {
		return nil, fmt.Errorf("assignment listing failed: %w", err)
	}

	return assignments, nil
}

func (s *assignmentService) CreateAssignment(ctx context.Context, assignment models.Assignment) error {
	log := logger.FromContext(ctx)

	if assignment.Matricule == "" || assignment.Numero <= 0 || assignment.DateAffectation.IsZero() {
		log.Error().Any("assignment", assignment).Msg("invalid assignment data provided")
		return ErrInvalidDataProvided
	}

	return s.assignmentRepository.CreateAssignment(ctx, assignment)
}

func (s *assignmentService) UpdateAssignment(ctx context.Context, matricule string, numero int, assignment models.Assignment) error {
	log := logger.FromContext(ctx)

	if matricule == "" || numero <= 0 {
		return ErrInvalidDataProvided
	}
	if assignment.Matricule == "" || assignment.Numero <= 0 || assignment.DateAffectation.IsZero() {
		log.Error().Any("assignment", assignment).Msg("invalid assignment data provided")
		return ErrInvalidDataProvided
	}

	return s.assignmentRepository.UpdateAssignment(ctx, matricule, numero, assignment)
}

func (s *assignmentService) DeleteAssignment(ctx context.Context, matricule string, numero int) error {
	if matricule == "" || numero <= 0 {
		return ErrInvalidDataProvided
	}

	return s.assignmentRepository.DeleteAssignment(ctx, matricule, numero)
}
