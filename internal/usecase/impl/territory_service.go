package impl

import (
	"context"
	"log/slog"
	"time"

	"atlas/config"
	"atlas/internal/domain/entity"
	domainerrors "atlas/internal/domain/errors"
	"atlas/internal/domain/repository"
	"atlas/internal/infra/geo"
	"atlas/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// defaultOverlapDisplayCap bounds the global overlap report when neither the
// caller nor the configuration asks for a different cap.
const defaultOverlapDisplayCap = 30

type territoryService struct {
	txManager repository.TransactionManager
	config    *config.Config
	logger    *slog.Logger
}

// NewTerritoryService is the constructor for territoryService.
func NewTerritoryService(
	txManager repository.TransactionManager,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.TerritoryUsecase {
	return &territoryService{
		txManager: txManager,
		config:    cfg,
		logger:    logger,
	}
}

// CreateTerritory validates the submitted geometry and persists a new
// territory for an active partner.
func (srv *territoryService) CreateTerritory(ctx context.Context, input *usecase.CreateTerritoryInput) (*usecase.TerritoryOutput, error) {
	srv.logger.Info("Creating territory", "name", input.Name, "partnerID", input.PartnerID)

	if input.Priority < 0 {
		return nil, errors.Wrap(domainerrors.ErrInvalidPriority, "create territory")
	}

	geometry, dropped, err := geo.DecodeGeoJSON(input.Geometry)
	if err != nil {
		return nil, domainerrors.ErrInvalidGeometry.WrapMessage(err.Error())
	}
	if len(geometry) == 0 {
		return nil, errors.Wrap(domainerrors.ErrInvalidGeometry, "no valid rings left after filtering")
	}
	if dropped > 0 {
		srv.logger.Warn("dropped degenerate rings from submitted geometry",
			"dropped", dropped, "name", input.Name)
	}

	territory := &entity.Territory{
		ID:        uuid.New(),
		PartnerID: input.PartnerID,
		Name:      input.Name,
		Priority:  input.Priority,
		Geometry:  geometry,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	var partnerName string

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		partner, err := srv.requireActivePartner(ctx, repoFactory.NewPartnerRepository(), input.PartnerID)
		if err != nil {
			return err
		}
		partnerName = partner.Name

		if err := repoFactory.NewTerritoryRepository().CreateTerritory(ctx, territory); err != nil {
			return errors.Wrap(err, "failed to create territory")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return territoryOutput(territory, partnerName, dropped)
}

// GetTerritory retrieves a single territory with its geometry.
func (srv *territoryService) GetTerritory(ctx context.Context, id uuid.UUID) (*usecase.TerritoryOutput, error) {
	var (
		territory   *entity.Territory
		partnerName string
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewTerritoryRepository().FindTerritoryByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrTerritoryNotFound) {
				return errors.Wrap(domainerrors.ErrTerritoryNotFound, "get territory")
			}

			return errors.Wrap(err, "failed to find territory")
		}
		territory = found

		partner, err := repoFactory.NewPartnerRepository().FindPartnerByID(ctx, found.PartnerID)
		if err == nil {
			partnerName = partner.Name
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return territoryOutput(territory, partnerName, 0)
}

// ListTerritories retrieves every territory with geometry, highest priority
// first, each annotated with its partner's name.
func (srv *territoryService) ListTerritories(ctx context.Context) ([]*usecase.TerritoryOutput, error) {
	var (
		territories []*entity.Territory
		partners    []*entity.Partner
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		territories, err = repoFactory.NewTerritoryRepository().ListTerritories(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list territories")
		}

		partners, err = repoFactory.NewPartnerRepository().ListPartners(ctx, false)
		if err != nil {
			return errors.Wrap(err, "failed to list partners")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return territoryOutputList(territories, partnerNames(partners))
}

// ListTerritoriesByPartner retrieves all territories owned by one partner.
func (srv *territoryService) ListTerritoriesByPartner(ctx context.Context, partnerID uuid.UUID) ([]*usecase.TerritoryOutput, error) {
	var (
		territories []*entity.Territory
		partnerName string
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		partner, err := repoFactory.NewPartnerRepository().FindPartnerByID(ctx, partnerID)
		if err != nil {
			if errors.Is(err, repository.ErrPartnerNotFound) {
				return errors.Wrap(domainerrors.ErrPartnerNotFound, "list territories by partner")
			}

			return errors.Wrap(err, "failed to find partner")
		}
		partnerName = partner.Name

		territories, err = repoFactory.NewTerritoryRepository().ListTerritoriesByPartner(ctx, partnerID)
		if err != nil {
			return errors.Wrap(err, "failed to list territories")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	names := map[uuid.UUID]string{partnerID: partnerName}

	return territoryOutputList(territories, names)
}

// UpdateTerritory updates an existing territory. Geometry replacement goes
// through the same validation as creation.
func (srv *territoryService) UpdateTerritory(ctx context.Context, id uuid.UUID, input *usecase.UpdateTerritoryInput) (*usecase.TerritoryOutput, error) {
	srv.logger.Info("Updating territory", "territoryID", id)

	if input.Priority != nil && *input.Priority < 0 {
		return nil, errors.Wrap(domainerrors.ErrInvalidPriority, "update territory")
	}

	var (
		geometry orb.MultiPolygon
		dropped  int
	)
	if len(input.Geometry) > 0 {
		var err error
		geometry, dropped, err = geo.DecodeGeoJSON(input.Geometry)
		if err != nil {
			return nil, domainerrors.ErrInvalidGeometry.WrapMessage(err.Error())
		}
		if len(geometry) == 0 {
			return nil, errors.Wrap(domainerrors.ErrInvalidGeometry, "no valid rings left after filtering")
		}
		if dropped > 0 {
			srv.logger.Warn("dropped degenerate rings from submitted geometry",
				"dropped", dropped, "territoryID", id)
		}
	}

	var (
		territory   *entity.Territory
		partnerName string
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		territoryRepo := repoFactory.NewTerritoryRepository()

		found, err := territoryRepo.FindTerritoryByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrTerritoryNotFound) {
				return errors.Wrap(domainerrors.ErrTerritoryNotFound, "update territory")
			}

			return errors.Wrap(err, "failed to find territory")
		}
		territory = found

		// Reassigning a territory counts as a new assignment, so the new
		// owner has to be active. Updates that keep the owner do not
		// re-check the flag; inactive partners may still own territories.
		if input.PartnerID != nil && *input.PartnerID != territory.PartnerID {
			partner, err := srv.requireActivePartner(ctx, repoFactory.NewPartnerRepository(), *input.PartnerID)
			if err != nil {
				return err
			}
			territory.PartnerID = partner.ID
			partnerName = partner.Name
		}

		if input.Name != nil {
			territory.Name = *input.Name
		}
		if input.Priority != nil {
			territory.Priority = *input.Priority
		}
		if geometry != nil {
			territory.Geometry = geometry
		}
		territory.UpdatedAt = time.Now()

		if err := territoryRepo.UpdateTerritory(ctx, territory); err != nil {
			return errors.Wrap(err, "failed to update territory")
		}

		if partnerName == "" {
			partner, err := repoFactory.NewPartnerRepository().FindPartnerByID(ctx, territory.PartnerID)
			if err == nil {
				partnerName = partner.Name
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return territoryOutput(territory, partnerName, dropped)
}

// DeleteTerritory removes a territory.
func (srv *territoryService) DeleteTerritory(ctx context.Context, id uuid.UUID) error {
	srv.logger.Info("Deleting territory", "territoryID", id)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewTerritoryRepository().DeleteTerritory(ctx, id); err != nil {
			if errors.Is(err, repository.ErrTerritoryNotFound) {
				return errors.Wrap(domainerrors.ErrTerritoryNotFound, "delete territory")
			}

			return errors.Wrap(err, "failed to delete territory")
		}

		return nil
	})

	return err
}

// OverlapsFor lists every territory overlapping the given one, the focal
// territory first in each pair.
func (srv *territoryService) OverlapsFor(ctx context.Context, territoryID uuid.UUID) ([]entity.OverlapPair, error) {
	var pairs []entity.OverlapPair

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.NewTerritoryRepository().FindTerritoryByID(ctx, territoryID); err != nil {
			if errors.Is(err, repository.ErrTerritoryNotFound) {
				return errors.Wrap(domainerrors.ErrTerritoryNotFound, "overlaps for territory")
			}

			return errors.Wrap(err, "failed to find territory")
		}

		territories, err := repoFactory.NewTerritoryRepository().ListTerritories(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list territories")
		}

		partners, err := repoFactory.NewPartnerRepository().ListPartners(ctx, false)
		if err != nil {
			return errors.Wrap(err, "failed to list partners")
		}

		pairs = geo.OverlapsFor(territoryID, territories)
		decorateOverlapPairs(pairs, partnerNames(partners))

		return nil
	})
	if err != nil {
		return nil, err
	}

	return pairs, nil
}

// AllOverlaps computes the global overlap audit. The underlying pair set is
// always complete; only the returned slice is capped for display.
func (srv *territoryService) AllOverlaps(ctx context.Context, limit int) (*usecase.OverlapAuditOutput, error) {
	displayCap := limit
	if displayCap < 0 {
		displayCap = srv.overlapDisplayCap()
	}

	var pairs []entity.OverlapPair

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		territories, err := repoFactory.NewTerritoryRepository().ListTerritories(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list territories")
		}

		partners, err := repoFactory.NewPartnerRepository().ListPartners(ctx, false)
		if err != nil {
			return errors.Wrap(err, "failed to list partners")
		}

		pairs = geo.AllOverlaps(territories)
		decorateOverlapPairs(pairs, partnerNames(partners))

		return nil
	})
	if err != nil {
		return nil, err
	}

	output := &usecase.OverlapAuditOutput{Total: len(pairs), Pairs: pairs}
	if displayCap > 0 && len(output.Pairs) > displayCap {
		output.Pairs = output.Pairs[:displayCap]
	}

	return output, nil
}

// ResolveOverlap raises the territory's priority to one above the highest
// priority among the territories it currently overlaps. Re-invoking with an
// unchanged overlap set is a no-op. This is a point-in-time fix; callers
// must re-query territories and overlaps afterwards.
func (srv *territoryService) ResolveOverlap(ctx context.Context, territoryID uuid.UUID) (*usecase.ResolveOverlapOutput, error) {
	srv.logger.Info("Resolving overlap by raising priority", "territoryID", territoryID)

	var output *usecase.ResolveOverlapOutput

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		territoryRepo := repoFactory.NewTerritoryRepository()

		territory, err := territoryRepo.FindTerritoryByID(ctx, territoryID)
		if err != nil {
			if errors.Is(err, repository.ErrTerritoryNotFound) {
				return errors.Wrap(domainerrors.ErrTerritoryNotFound, "resolve overlap")
			}

			return errors.Wrap(err, "failed to find territory")
		}

		territories, err := territoryRepo.ListTerritories(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list territories")
		}

		pairs := geo.OverlapsFor(territoryID, territories)
		if len(pairs) == 0 {
			return errors.Wrap(domainerrors.ErrNoOverlapToResolve, "resolve overlap")
		}

		maxPriority := pairs[0].Second.Priority
		for _, pair := range pairs[1:] {
			if pair.Second.Priority > maxPriority {
				maxPriority = pair.Second.Priority
			}
		}

		newPriority := maxPriority + 1
		if newPriority != territory.Priority {
			if err := territoryRepo.UpdateTerritoryPriority(ctx, territoryID, newPriority); err != nil {
				return errors.Wrap(err, "failed to update territory priority")
			}
		}

		output = &usecase.ResolveOverlapOutput{
			TerritoryID: territoryID,
			OldPriority: territory.Priority,
			NewPriority: newPriority,
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.logger.Info("Overlap resolved",
		"territoryID", territoryID, "oldPriority", output.OldPriority, "newPriority", output.NewPriority)

	return output, nil
}

// requireActivePartner loads a partner and rejects assignment to missing or
// deactivated ones.
func (srv *territoryService) requireActivePartner(ctx context.Context, partnerRepo repository.PartnerRepository, partnerID uuid.UUID) (*entity.Partner, error) {
	partner, err := partnerRepo.FindPartnerByID(ctx, partnerID)
	if err != nil {
		if errors.Is(err, repository.ErrPartnerNotFound) {
			return nil, errors.Wrap(domainerrors.ErrPartnerNotFound, "territory owner")
		}

		return nil, errors.Wrap(err, "failed to find partner")
	}
	if !partner.Active {
		return nil, errors.Wrap(domainerrors.ErrPartnerInactive, "inactive partners cannot receive new territories")
	}

	return partner, nil
}

func (srv *territoryService) overlapDisplayCap() int {
	if srv.config != nil && srv.config.Audit != nil && srv.config.Audit.OverlapDisplayCap > 0 {
		return srv.config.Audit.OverlapDisplayCap
	}

	return defaultOverlapDisplayCap
}

// partnerNames indexes partner display names by ID.
func partnerNames(partners []*entity.Partner) map[uuid.UUID]string {
	names := make(map[uuid.UUID]string, len(partners))
	for _, partner := range partners {
		names[partner.ID] = partner.Name
	}

	return names
}

// decorateOverlapPairs fills in the partner display names on both sides of
// each pair.
func decorateOverlapPairs(pairs []entity.OverlapPair, names map[uuid.UUID]string) {
	for i := range pairs {
		pairs[i].First.PartnerName = names[pairs[i].First.PartnerID]
		pairs[i].Second.PartnerName = names[pairs[i].Second.PartnerID]
	}
}

// territoryOutput renders a territory with its geometry encoded as GeoJSON.
func territoryOutput(territory *entity.Territory, partnerName string, dropped int) (*usecase.TerritoryOutput, error) {
	raw, err := geo.EncodeGeoJSON(territory.Geometry)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode territory geometry")
	}

	return &usecase.TerritoryOutput{
		ID:           territory.ID,
		PartnerID:    territory.PartnerID,
		PartnerName:  partnerName,
		Name:         territory.Name,
		Priority:     territory.Priority,
		Geometry:     raw,
		DroppedRings: dropped,
		CreatedAt:    territory.CreatedAt,
		UpdatedAt:    territory.UpdatedAt,
	}, nil
}

func territoryOutputList(territories []*entity.Territory, names map[uuid.UUID]string) ([]*usecase.TerritoryOutput, error) {
	outputs := make([]*usecase.TerritoryOutput, 0, len(territories))
	for _, territory := range territories {
		output, err := territoryOutput(territory, names[territory.PartnerID], 0)
		if err != nil {
			return nil, err
		}
		outputs = append(outputs, output)
	}

	return outputs, nil
}
