package service

import (
	"context"
	"fmt"

	"github.com/aitbenali/go-office-board/internal/logger"
	"github.com/aitbenali/go-office-board/internal/store"
	"github.com/aitbenali/go-office-board/models"
)

// bureauService is the concrete implementation of BureauService. Beyond plain
// CRUD it derives the per-floor grouping consumed by the dashboard treemap.
type bureauService struct {
	bureauRepository store.BureauRepository
	logger           *logger.Logger
}

// NewBureauService constructs a BureauService wired to the given repository.
func NewBureauService(bureauRepository store.BureauRepository, logger *logger.Logger) BureauService {
	return &bureauService{
		bureauRepository: bureauRepository,
		logger:           logger,
	}
}

func (s *bureauService) GetAllBureaux(ctx context.Context) ([]models.Bureau, error) {
	bureaux, err := s.bureauRepository.GetAllBureaux(ctx)
	if err != nil {
		return nil, fmt.Errorf("bureau listing failed: %w", err)
	}

	return bureaux, nil
}

// GetBureauxGroupedByNiveau buckets all rooms per floor. The repository
// returns rooms ordered by (niveau, numero), so a single pass suffices: a
// new group starts whenever the floor changes.
func (s *bureauService) GetBureauxGroupedByNiveau(ctx context.Context) ([]models.BureauGroup, error) {
	bureaux, err := s.bureauRepository.GetAllBureaux(ctx)
	if err != nil {
		return nil, fmt.Errorf("bureau listing failed: %w", err)
	}

	groups := make([]models.BureauGroup, 0)
	for _, bureau := range bureaux {
		name := fmt.Sprintf("niv %d", bureau.Niveau)
		if len(groups) == 0 || groups[len(groups)-1].Name != name {
			groups = append(groups, models.BureauGroup{Name: name})
		}

		last := &groups[len(groups)-1]
		last.Children = append(last.Children, models.BureauNode{
			Name: fmt.Sprintf("B%d", bureau.Numero),
			Size: bureau.Superficie,
		})
	}

	return groups, nil
}

func (s *bureauService) GetBureau(ctx context.Context, numero int) (models.Bureau, error) {
	if numero <= 0 {
		return models.Bureau{}, ErrInvalidDataProvided
	}

	bureau, err := s.bureauRepository.FindBureauByNumero(ctx, numero)
	if err != nil {
		return models.Bureau{}, err
	}

	return bureau, nil
}

func (s *bureauService) CreateBureau(ctx context.Context, bureau models.Bureau) error {
	log := logger.FromContext(ctx)

	if bureau.Numero <= 0 || bureau.Superficie <= 0 {
		log.Error().Any("bureau", bureau).Msg("invalid bureau data provided")
		return ErrInvalidDataProvided
	}

	return s.bureauRepository.CreateBureau(ctx, bureau)
}

func (s *bureauService) UpdateBureau(ctx context.Context, bureau models.Bureau) error {
	log := logger.FromContext(ctx)

	if bureau.Numero <= 0 || bureau.Superficie <= 0 {
		log.Error().Any("bureau", bureau).Msg("invalid bureau data provided")
		return ErrInvalidDataProvided
	}

	return s.bureauRepository.UpdateBureau(ctx, bureau)
}

func (s *bureauService) DeleteBureau(ctx context.Context, numero int) error {
	if numero <= 0 {
		return ErrInvalidDataProvided
	}

	return s.bureauRepository.DeleteBureau(ctx, numero)
}
