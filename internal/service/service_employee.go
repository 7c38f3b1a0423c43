package service

import (
	"context"
	"fmt"

	"github.com/aitbenali/go-office-board/internal/logger"
	"github.com/aitbenali/go-office-board/internal/store"
	"github.com/aitbenali/go-office-board/models"
)

// employeeService is the concrete implementation of EmployeeService. It
// validates employee records before delegating persistence to the repository.
type employeeService struct {
	employeeRepository store.EmployeeRepository
	logger             *logger.Logger
}

// NewEmployeeService constructs an EmployeeService wired to the given
// repository.
func NewEmployeeService(employeeRepository store.EmployeeRepository, logger *logger.Logger) EmployeeService {
	return &employeeService{
		employeeRepository: employeeRepository,
		logger:             logger,
	}
}

func (s *employeeService) GetAllEmployees(ctx context.Context) ([]models.Employee, error) {
	employees, err := s.employeeRepository.GetAllEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("employee listing failed: %w", err)
	}

	return employees, nil
}

func (s *employeeService) GetEmployee(ctx context.Context, matricule string) (models.Employee, error) {
	if matricule == "" {
		return models.Employee{}, ErrInvalidDataProvided
	}

	employee, err := s.employeeRepository.FindEmployeeByMatricule(ctx, matricule)
	if err != nil {
		return models.Employee{}, err
	}

	return employee, nil
}

func (s *employeeService) CreateEmployee(ctx context.Context, employee models.Employee) error {
	log := logger.FromContext(ctx)

	if employee.Matricule == "" || employee.Nom == "" {
		log.Error().Any("employee", employee).Msg("invalid employee data provided")
		return ErrInvalidDataProvided
	}

	return s.employeeRepository.CreateEmployee(ctx, employee)
}

func (s *employeeService) UpdateEmployee(ctx context.Context, employee models.Employee) error {
	log := logger.FromContext(ctx)

	if employee.Matricule == "" || employee.Nom == "" {
		log.Error().Any("employee", employee).Msg("invalid employee data provided")
		return ErrInvalidDataProvided
	}

	return s.employeeRepository.UpdateEmployee(ctx, employee)
}

func (s *employeeService) DeleteEmployee(ctx context.Context, matricule string) error {
	if matricule == "" {
		return ErrInvalidDataProvided
	}

	return s.employeeRepository.DeleteEmployee(ctx, matricule)
}
