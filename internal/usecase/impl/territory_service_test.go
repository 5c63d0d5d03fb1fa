package impl

import (
	"context"
	"encoding/json"
	"testing"

	"atlas/internal/domain/entity"
	domainerrors "atlas/internal/domain/errors"
	"atlas/internal/domain/repository"
	mockRepo "atlas/internal/mocks/repository"
	"atlas/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// territoryServiceFixtures holds the shared dependencies for territory service tests.
type territoryServiceFixtures struct {
	service   usecase.TerritoryUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestTerritoryService(t *testing.T) territoryServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewTerritoryService(txManager, newTestConfig(0), newDiscardLogger())

	return territoryServiceFixtures{
		service:   service,
		txManager: txManager,
	}
}

func TestTerritoryService_CreateTerritory_Success(t *testing.T) {
	fx := createTestTerritoryService(t)

	ctx := context.Background()
	partner := newTestPartner("atlas-movers", true)
	input := &usecase.CreateTerritoryInput{
		PartnerID: partner.ID,
		Name:      "Montreal Island",
		Priority:  2,
		Geometry:  mustGeoJSON(t, square(-73.60, 45.48, -73.54, 45.52)),
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockPartnerRepo := mockRepo.NewMockPartnerRepository(t)
			mockTerritoryRepo := mockRepo.NewMockTerritoryRepository(t)

			mockFactory.EXPECT().NewPartnerRepository().Return(mockPartnerRepo)
			mockFactory.EXPECT().NewTerritoryRepository().Return(mockTerritoryRepo)

			mockPartnerRepo.EXPECT().FindPartnerByID(ctx, partner.ID).Return(partner, nil)
			mockTerritoryRepo.EXPECT().CreateTerritory(ctx, mock.AnythingOfType("*entity.Territory")).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.CreateTerritory(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, partner.ID, output.PartnerID)
	assert.Equal(t, partner.Name, output.PartnerName)
	assert.Equal(t, "Montreal Island", output.Name)
	assert.Equal(t, 2, output.Priority)
	assert.Equal(t, 0, output.DroppedRings)
	assert.NotEmpty(t, output.Geometry)
}

func TestTerritoryService_CreateTerritory_NegativePriority(t *testing.T) {
	fx := createTestTerritoryService(t)

	ctx := context.Background()
	input := &usecase.CreateTerritoryInput{
		PartnerID: newTestPartner("p", true).ID,
		Name:      "Bad Priority",
		Priority:  -1,
		Geometry:  mustGeoJSON(t, square(0, 0, 1, 1)),
	}

	output, err := fx.service.CreateTerritory(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidPriority))
}

func TestTerritoryService_CreateTerritory_MalformedGeometry(t *testing.T) {
	fx := createTestTerritoryService(t)

	ctx := context.Background()
	input := &usecase.CreateTerritoryInput{
		PartnerID: newTestPartner("p", true).ID,
		Name:      "Not A Polygon",
		Priority:  1,
		Geometry:  json.RawMessage(`{"type":"Point","coordinates":[-73.57,45.50]}`),
	}

	output, err := fx.service.CreateTerritory(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidGeometry))
}

func TestTerritoryService_CreateTerritory_InactivePartner(t *testing.T) {
	fx := createTestTerritoryService(t)

	ctx := context.Background()
	partner := newTestPartner("closed-shop", false)
	input := &usecase.CreateTerritoryInput{
		PartnerID: partner.ID,
		Name:      "Orphan Zone",
		Priority:  0,
		Geometry:  mustGeoJSON(t, square(0, 0, 1, 1)),
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockPartnerRepo := mockRepo.NewMockPartnerRepository(t)

			mockFactory.EXPECT().NewPartnerRepository().Return(mockPartnerRepo)
			mockPartnerRepo.EXPECT().FindPartnerByID(ctx, partner.ID).Return(partner, nil)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrPartnerInactive, "inactive partners cannot receive new territories"))

	output, err := fx.service.CreateTerritory(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrPartnerInactive))
}

func TestTerritoryService_GetTerritory_Success(t *testing.T) {
	fx := createTestTerritoryService(t)

	ctx := context.Background()
	partner := newTestPartner("atlas-movers", true)
	territory := newTestTerritory(partner.ID, "Plateau", 3, square(-73.60, 45.51, -73.56, 45.54))

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockPartnerRepo := mockRepo.NewMockPartnerRepository(t)
			mockTerritoryRepo := mockRepo.NewMockTerritoryRepository(t)

			mockFactory.EXPECT().NewTerritoryRepository().Return(mockTerritoryRepo)
			mockFactory.EXPECT().NewPartnerRepository().Return(mockPartnerRepo)

			mockTerritoryRepo.EXPECT().FindTerritoryByID(ctx, territory.ID).Return(territory, nil)
			mockPartnerRepo.EXPECT().FindPartnerByID(ctx, partner.ID).Return(partner, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.GetTerritory(ctx, territory.ID)

	require.NoError(t, err)
	assert.Equal(t, territory.ID, output.ID)
	assert.Equal(t, partner.Name, output.PartnerName)
	assert.Equal(t, 3, output.Priority)
	assert.NotEmpty(t, output.Geometry)
}

func TestTerritoryService_GetTerritory_NotFound(t *testing.T) {
	fx := createTestTerritoryService(t)

	ctx := context.Background()
	territory := newTestTerritory(newTestPartner("p", true).ID, "Ghost", 0, square(0, 0, 1, 1))

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockTerritoryRepo := mockRepo.NewMockTerritoryRepository(t)

			mockFactory.EXPECT().NewTerritoryRepository().Return(mockTerritoryRepo)
			mockTerritoryRepo.EXPECT().FindTerritoryByID(ctx, territory.ID).Return(nil, repository.ErrTerritoryNotFound)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrTerritoryNotFound, "get territory"))

	output, err := fx.service.GetTerritory(ctx, territory.ID)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrTerritoryNotFound))
}

func TestTerritoryService_ListTerritoriesByPartner_PartnerNotFound(t *testing.T) {
	fx := createTestTerritoryService(t)

	ctx := context.Background()
	partner := newTestPartner("gone", true)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockPartnerRepo := mockRepo.NewMockPartnerRepository(t)

			mockFactory.EXPECT().NewPartnerRepository().Return(mockPartnerRepo)
			mockPartnerRepo.EXPECT().FindPartnerByID(ctx, partner.ID).Return(nil, repository.ErrPartnerNotFound)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrPartnerNotFound, "list territories by partner"))

	outputs, err := fx.service.ListTerritoriesByPartner(ctx, partner.ID)

	assert.Error(t, err)
	assert.Nil(t, outputs)
	assert.True(t, errors.Is(err, domainerrors.ErrPartnerNotFound))
}

func TestTerritoryService_UpdateTerritory_KeepingOwnerSkipsActiveCheck(t *testing.T) {
	fx := createTestTerritoryService(t)

	ctx := context.Background()
	partner := newTestPartner("retired-but-owner", false)
	territory := newTestTerritory(partner.ID, "Old Name", 1, square(0, 0, 1, 1))
	newName := "New Name"
	input := &usecase.UpdateTerritoryInput{Name: &newName}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockPartnerRepo := mockRepo.NewMockPartnerRepository(t)
			mockTerritoryRepo := mockRepo.NewMockTerritoryRepository(t)

			mockFactory.EXPECT().NewTerritoryRepository().Return(mockTerritoryRepo)
			mockFactory.EXPECT().NewPartnerRepository().Return(mockPartnerRepo)

			mockTerritoryRepo.EXPECT().FindTerritoryByID(ctx, territory.ID).Return(territory, nil)
			mockTerritoryRepo.EXPECT().UpdateTerritory(ctx, mock.AnythingOfType("*entity.Territory")).Return(nil)
			mockPartnerRepo.EXPECT().FindPartnerByID(ctx, partner.ID).Return(partner, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.UpdateTerritory(ctx, territory.ID, input)

	require.NoError(t, err)
	assert.Equal(t, newName, output.Name)
	assert.Equal(t, partner.ID, output.PartnerID)
}

func TestTerritoryService_UpdateTerritory_ReassignToInactivePartner(t *testing.T) {
	fx := createTestTerritoryService(t)

	ctx := context.Background()
	owner := newTestPartner("current-owner", true)
	target := newTestPartner("closed-shop", false)
	territory := newTestTerritory(owner.ID, "Zone", 1, square(0, 0, 1, 1))
	input := &usecase.UpdateTerritoryInput{PartnerID: &target.ID}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockPartnerRepo := mockRepo.NewMockPartnerRepository(t)
			mockTerritoryRepo := mockRepo.NewMockTerritoryRepository(t)

			mockFactory.EXPECT().NewTerritoryRepository().Return(mockTerritoryRepo)
			mockFactory.EXPECT().NewPartnerRepository().Return(mockPartnerRepo)

			mockTerritoryRepo.EXPECT().FindTerritoryByID(ctx, territory.ID).Return(territory, nil)
			mockPartnerRepo.EXPECT().FindPartnerByID(ctx, target.ID).Return(target, nil)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrPartnerInactive, "inactive partners cannot receive new territories"))

	output, err := fx.service.UpdateTerritory(ctx, territory.ID, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrPartnerInactive))
}

func TestTerritoryService_DeleteTerritory_NotFound(t *testing.T) {
	fx := createTestTerritoryService(t)

	ctx := context.Background()
	territory := newTestTerritory(newTestPartner("p", true).ID, "Ghost", 0, square(0, 0, 1, 1))

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockTerritoryRepo := mockRepo.NewMockTerritoryRepository(t)

			mockFactory.EXPECT().NewTerritoryRepository().Return(mockTerritoryRepo)
			mockTerritoryRepo.EXPECT().DeleteTerritory(ctx, territory.ID).Return(repository.ErrTerritoryNotFound)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrTerritoryNotFound, "delete territory"))

	err := fx.service.DeleteTerritory(ctx, territory.ID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTerritoryNotFound))
}

func TestTerritoryService_ResolveOverlap_RaisesAboveOverlapMax(t *testing.T) {
	fx := createTestTerritoryService(t)

	ctx := context.Background()
	partner := newTestPartner("atlas-movers", true)
	focal := newTestTerritory(partner.ID, "Focal", 2, square(0, 0, 10, 10))
	higher := newTestTerritory(partner.ID, "Higher", 5, square(5, 5, 15, 15))
	lower := newTestTerritory(partner.ID, "Lower", 3, square(-2, -2, 3, 3))
	// Disjoint from the focal territory; its priority must not matter.
	distant := newTestTerritory(partner.ID, "Distant", 9, square(50, 50, 60, 60))
	territories := []*entity.Territory{focal, higher, lower, distant}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockTerritoryRepo := mockRepo.NewMockTerritoryRepository(t)

			mockFactory.EXPECT().NewTerritoryRepository().Return(mockTerritoryRepo)

			mockTerritoryRepo.EXPECT().FindTerritoryByID(ctx, focal.ID).Return(focal, nil)
			mockTerritoryRepo.EXPECT().ListTerritories(ctx).Return(territories, nil)
			mockTerritoryRepo.EXPECT().UpdateTerritoryPriority(ctx, focal.ID, 6).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.ResolveOverlap(ctx, focal.ID)

	require.NoError(t, err)
	assert.Equal(t, focal.ID, output.TerritoryID)
	assert.Equal(t, 2, output.OldPriority)
	assert.Equal(t, 6, output.NewPriority)
}

func TestTerritoryService_ResolveOverlap_AlreadyWinningIsNoOp(t *testing.T) {
	fx := createTestTerritoryService(t)

	ctx := context.Background()
	partner := newTestPartner("atlas-movers", true)
	focal := newTestTerritory(partner.ID, "Focal", 6, square(0, 0, 10, 10))
	other := newTestTerritory(partner.ID, "Other", 5, square(5, 5, 15, 15))
	territories := []*entity.Territory{focal, other}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockTerritoryRepo := mockRepo.NewMockTerritoryRepository(t)

			mockFactory.EXPECT().NewTerritoryRepository().Return(mockTerritoryRepo)

			// No UpdateTerritoryPriority expectation: the priority is
			// already one above the overlap maximum, so nothing is written.
			mockTerritoryRepo.EXPECT().FindTerritoryByID(ctx, focal.ID).Return(focal, nil)
			mockTerritoryRepo.EXPECT().ListTerritories(ctx).Return(territories, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.ResolveOverlap(ctx, focal.ID)

	require.NoError(t, err)
	assert.Equal(t, 6, output.OldPriority)
	assert.Equal(t, 6, output.NewPriority)
}

func TestTerritoryService_ResolveOverlap_NoOverlap(t *testing.T) {
	fx := createTestTerritoryService(t)

	ctx := context.Background()
	partner := newTestPartner("atlas-movers", true)
	focal := newTestTerritory(partner.ID, "Alone", 1, square(0, 0, 1, 1))
	distant := newTestTerritory(partner.ID, "Distant", 2, square(5, 5, 6, 6))
	// Shares an edge with the focal square; touching does not overlap.
	touching := newTestTerritory(partner.ID, "Touching", 3, square(1, 0, 2, 1))
	territories := []*entity.Territory{focal, distant, touching}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockTerritoryRepo := mockRepo.NewMockTerritoryRepository(t)

			mockFactory.EXPECT().NewTerritoryRepository().Return(mockTerritoryRepo)

			mockTerritoryRepo.EXPECT().FindTerritoryByID(ctx, focal.ID).Return(focal, nil)
			mockTerritoryRepo.EXPECT().ListTerritories(ctx).Return(territories, nil)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrNoOverlapToResolve, "resolve overlap"))

	output, err := fx.service.ResolveOverlap(ctx, focal.ID)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrNoOverlapToResolve))
}

func TestTerritoryService_AllOverlaps_CapsDisplayNotTotal(t *testing.T) {
	fx := createTestTerritoryService(t)

	ctx := context.Background()
	partner := newTestPartner("atlas-movers", true)
	a := newTestTerritory(partner.ID, "A", 1, square(0, 0, 10, 10))
	b := newTestTerritory(partner.ID, "B", 1, square(5, 5, 15, 15))
	c := newTestTerritory(partner.ID, "C", 2, square(8, 8, 18, 18))
	territories := []*entity.Territory{a, b, c}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockPartnerRepo := mockRepo.NewMockPartnerRepository(t)
			mockTerritoryRepo := mockRepo.NewMockTerritoryRepository(t)

			mockFactory.EXPECT().NewTerritoryRepository().Return(mockTerritoryRepo)
			mockFactory.EXPECT().NewPartnerRepository().Return(mockPartnerRepo)

			mockTerritoryRepo.EXPECT().ListTerritories(ctx).Return(territories, nil)
			mockPartnerRepo.EXPECT().ListPartners(ctx, false).Return([]*entity.Partner{partner}, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.AllOverlaps(ctx, 2)

	require.NoError(t, err)
	assert.Equal(t, 3, output.Total)
	require.Len(t, output.Pairs, 2)
	// Largest shared area first: B and C share a 7x7 block.
	assert.InDelta(t, 49.0, output.Pairs[0].OverlapArea, 1e-9)
	assert.ElementsMatch(t,
		[]uuid.UUID{b.ID, c.ID},
		[]uuid.UUID{output.Pairs[0].First.TerritoryID, output.Pairs[0].Second.TerritoryID})
	assert.Equal(t, partner.Name, output.Pairs[0].First.PartnerName)
}

func TestTerritoryService_AllOverlaps_ZeroLimitDisablesCap(t *testing.T) {
	fx := createTestTerritoryService(t)

	ctx := context.Background()
	partner := newTestPartner("atlas-movers", true)
	a := newTestTerritory(partner.ID, "A", 1, square(0, 0, 10, 10))
	b := newTestTerritory(partner.ID, "B", 1, square(5, 5, 15, 15))
	c := newTestTerritory(partner.ID, "C", 2, square(8, 8, 18, 18))
	territories := []*entity.Territory{a, b, c}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockPartnerRepo := mockRepo.NewMockPartnerRepository(t)
			mockTerritoryRepo := mockRepo.NewMockTerritoryRepository(t)

			mockFactory.EXPECT().NewTerritoryRepository().Return(mockTerritoryRepo)
			mockFactory.EXPECT().NewPartnerRepository().Return(mockPartnerRepo)

			mockTerritoryRepo.EXPECT().ListTerritories(ctx).Return(territories, nil)
			mockPartnerRepo.EXPECT().ListPartners(ctx, false).Return([]*entity.Partner{partner}, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.AllOverlaps(ctx, 0)

	require.NoError(t, err)
	assert.Equal(t, 3, output.Total)
	require.Len(t, output.Pairs, 3)

	// Identify pairs by their distinct areas: A-B is 25, B-C is 49, A-C is 4.
	for _, pair := range output.Pairs {
		switch {
		case pair.OverlapArea > 40:
			assert.False(t, pair.SamePriority)
		case pair.OverlapArea > 20:
			assert.True(t, pair.SamePriority)
		}
	}
}

func TestTerritoryService_AllOverlaps_NegativeLimitUsesConfiguredCap(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewTerritoryService(txManager, newTestConfig(1), newDiscardLogger())

	ctx := context.Background()
	partner := newTestPartner("atlas-movers", true)
	a := newTestTerritory(partner.ID, "A", 1, square(0, 0, 10, 10))
	b := newTestTerritory(partner.ID, "B", 1, square(5, 5, 15, 15))
	c := newTestTerritory(partner.ID, "C", 2, square(8, 8, 18, 18))
	territories := []*entity.Territory{a, b, c}

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockPartnerRepo := mockRepo.NewMockPartnerRepository(t)
			mockTerritoryRepo := mockRepo.NewMockTerritoryRepository(t)

			mockFactory.EXPECT().NewTerritoryRepository().Return(mockTerritoryRepo)
			mockFactory.EXPECT().NewPartnerRepository().Return(mockPartnerRepo)

			mockTerritoryRepo.EXPECT().ListTerritories(ctx).Return(territories, nil)
			mockPartnerRepo.EXPECT().ListPartners(ctx, false).Return([]*entity.Partner{partner}, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := service.AllOverlaps(ctx, -1)

	require.NoError(t, err)
	assert.Equal(t, 3, output.Total)
	assert.Len(t, output.Pairs, 1)
}

func TestTerritoryService_OverlapsFor_FocalAlwaysFirst(t *testing.T) {
	fx := createTestTerritoryService(t)

	ctx := context.Background()
	partner := newTestPartner("atlas-movers", true)
	a := newTestTerritory(partner.ID, "A", 1, square(0, 0, 10, 10))
	b := newTestTerritory(partner.ID, "B", 1, square(5, 5, 15, 15))
	c := newTestTerritory(partner.ID, "C", 2, square(8, 8, 18, 18))
	territories := []*entity.Territory{a, b, c}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockPartnerRepo := mockRepo.NewMockPartnerRepository(t)
			mockTerritoryRepo := mockRepo.NewMockTerritoryRepository(t)

			mockFactory.EXPECT().NewTerritoryRepository().Return(mockTerritoryRepo)
			mockFactory.EXPECT().NewPartnerRepository().Return(mockPartnerRepo)

			mockTerritoryRepo.EXPECT().FindTerritoryByID(ctx, b.ID).Return(b, nil)
			mockTerritoryRepo.EXPECT().ListTerritories(ctx).Return(territories, nil)
			mockPartnerRepo.EXPECT().ListPartners(ctx, false).Return([]*entity.Partner{partner}, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	pairs, err := fx.service.OverlapsFor(ctx, b.ID)

	require.NoError(t, err)
	require.Len(t, pairs, 2)
	for _, pair := range pairs {
		assert.Equal(t, b.ID, pair.First.TerritoryID)
		assert.Equal(t, partner.Name, pair.Second.PartnerName)
	}
	// B shares a 7x7 block with C and a 5x5 block with A.
	assert.Equal(t, c.ID, pairs[0].Second.TerritoryID)
	assert.Equal(t, a.ID, pairs[1].Second.TerritoryID)
}

func TestTerritoryService_OverlapsFor_TerritoryNotFound(t *testing.T) {
	fx := createTestTerritoryService(t)

	ctx := context.Background()
	territory := newTestTerritory(newTestPartner("p", true).ID, "Ghost", 0, square(0, 0, 1, 1))

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockTerritoryRepo := mockRepo.NewMockTerritoryRepository(t)

			mockFactory.EXPECT().NewTerritoryRepository().Return(mockTerritoryRepo)
			mockTerritoryRepo.EXPECT().FindTerritoryByID(ctx, territory.ID).Return(nil, repository.ErrTerritoryNotFound)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrTerritoryNotFound, "overlaps for territory"))

	pairs, err := fx.service.OverlapsFor(ctx, territory.ID)

	assert.Error(t, err)
	assert.Nil(t, pairs)
	assert.True(t, errors.Is(err, domainerrors.ErrTerritoryNotFound))
}
