package store

import "github.com/aitbenali/go-office-board/internal/logger"

// Storages groups every repository behind a single constructor so the service
// layer receives one wired bundle.
type Storages struct {
	UserRepository       UserRepository
	EmployeeRepository   EmployeeRepository
	BureauRepository     BureauRepository
	AssignmentRepository AssignmentRepository
}

func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:       NewUserRepository(db, log),
		EmployeeRepository:   NewEmployeeRepository(db, log),
		BureauRepository:     NewBureauRepository(db, log),
		AssignmentRepository: NewAssignmentRepository(db, log),
	}
}
