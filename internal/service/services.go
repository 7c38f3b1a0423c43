package service

import (
	"github.com/aitbenali/go-office-board/internal/config"
	"github.com/aitbenali/go-office-board/internal/crypto"
	"github.com/aitbenali/go-office-board/internal/logger"
	"github.com/aitbenali/go-office-board/internal/mailer"
	"github.com/aitbenali/go-office-board/internal/store"
)

type Services struct {
	AuthService       AuthService
	EmployeeService   EmployeeService
	BureauService     BureauService
	AssignmentService AssignmentService
}

func NewServices(storages *store.Storages, sender mailer.Sender, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	hasher := crypto.NewPasswordHasher()

	return &Services{
		AuthService:       NewAuthService(storages.UserRepository, hasher, sender, cfg.Auth, logger),
		EmployeeService:   NewEmployeeService(storages.EmployeeRepository, logger),
		BureauService:     NewBureauService(storages.BureauRepository, logger),
		AssignmentService: NewAssignmentService(storages.AssignmentRepository, logger),
	}
}
