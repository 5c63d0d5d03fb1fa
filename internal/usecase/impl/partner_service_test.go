package impl

import (
	"context"
	"testing"

	"atlas/internal/domain/entity"
	domainerrors "atlas/internal/domain/errors"
	"atlas/internal/domain/repository"
	mockRepo "atlas/internal/mocks/repository"
	"atlas/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPartnerService_CreatePartner_Success(t *testing.T) {
	mockPartnerRepo := mockRepo.NewMockPartnerRepository(t)
	service := NewPartnerService(mockPartnerRepo, newDiscardLogger())

	ctx := context.Background()
	input := &usecase.CreatePartnerInput{
		Name:         "Demenagement Rapide",
		Category:     "moving",
		Languages:    []string{"fr", "en"},
		ContactEmail: "dispatch@rapide.example.com",
		Active:       true,
	}

	mockPartnerRepo.EXPECT().
		CreatePartner(ctx, mock.AnythingOfType("*entity.Partner")).
		Return(nil)

	partner, err := service.CreatePartner(ctx, input)
	require.NoError(t, err)
	assert.NotNil(t, partner)
	assert.Equal(t, input.Name, partner.Name)
	assert.Equal(t, input.Category, partner.Category)
	assert.Equal(t, input.Languages, partner.Languages)
	assert.Equal(t, input.ContactEmail, partner.ContactEmail)
	assert.True(t, partner.Active)
	assert.False(t, partner.CreatedAt.IsZero())
}

func TestPartnerService_CreatePartner_RepoError(t *testing.T) {
	mockPartnerRepo := mockRepo.NewMockPartnerRepository(t)
	service := NewPartnerService(mockPartnerRepo, newDiscardLogger())

	ctx := context.Background()
	input := &usecase.CreatePartnerInput{Name: "Broken"}

	mockPartnerRepo.EXPECT().
		CreatePartner(ctx, mock.AnythingOfType("*entity.Partner")).
		Return(errors.New("db error"))

	partner, err := service.CreatePartner(ctx, input)
	assert.Error(t, err)
	assert.Nil(t, partner)
}

func TestPartnerService_GetPartner_Success(t *testing.T) {
	mockPartnerRepo := mockRepo.NewMockPartnerRepository(t)
	service := NewPartnerService(mockPartnerRepo, newDiscardLogger())

	ctx := context.Background()
	expected := newTestPartner("atlas-movers", true)

	mockPartnerRepo.EXPECT().
		FindPartnerByID(ctx, expected.ID).
		Return(expected, nil)

	partner, err := service.GetPartner(ctx, expected.ID)
	require.NoError(t, err)
	assert.Equal(t, expected, partner)
}

func TestPartnerService_GetPartner_NotFound(t *testing.T) {
	mockPartnerRepo := mockRepo.NewMockPartnerRepository(t)
	service := NewPartnerService(mockPartnerRepo, newDiscardLogger())

	ctx := context.Background()
	missing := newTestPartner("gone", true)

	mockPartnerRepo.EXPECT().
		FindPartnerByID(ctx, missing.ID).
		Return(nil, repository.ErrPartnerNotFound)

	partner, err := service.GetPartner(ctx, missing.ID)
	assert.Error(t, err)
	assert.Nil(t, partner)
	assert.True(t, errors.Is(err, domainerrors.ErrPartnerNotFound))
}

func TestPartnerService_ListPartners_ActiveOnly(t *testing.T) {
	mockPartnerRepo := mockRepo.NewMockPartnerRepository(t)
	service := NewPartnerService(mockPartnerRepo, newDiscardLogger())

	ctx := context.Background()
	active := newTestPartner("still-open", true)

	mockPartnerRepo.EXPECT().
		ListPartners(ctx, true).
		Return([]*entity.Partner{active}, nil)

	partners, err := service.ListPartners(ctx, true)
	require.NoError(t, err)
	assert.Len(t, partners, 1)
	assert.Equal(t, active.ID, partners[0].ID)
}

func TestPartnerService_UpdatePartner_Success(t *testing.T) {
	mockPartnerRepo := mockRepo.NewMockPartnerRepository(t)
	service := NewPartnerService(mockPartnerRepo, newDiscardLogger())

	ctx := context.Background()
	existing := newTestPartner("old-name", true)
	newName := "new-name"
	deactivate := false
	input := &usecase.UpdatePartnerInput{
		Name:   &newName,
		Active: &deactivate,
	}

	mockPartnerRepo.EXPECT().
		FindPartnerByID(ctx, existing.ID).
		Return(existing, nil)

	mockPartnerRepo.EXPECT().
		UpdatePartner(ctx, mock.AnythingOfType("*entity.Partner")).
		Return(nil)

	partner, err := service.UpdatePartner(ctx, existing.ID, input)
	require.NoError(t, err)
	assert.Equal(t, newName, partner.Name)
	assert.False(t, partner.Active)
	assert.Equal(t, "moving", partner.Category)
}

func TestPartnerService_UpdatePartner_NotFound(t *testing.T) {
	mockPartnerRepo := mockRepo.NewMockPartnerRepository(t)
	service := NewPartnerService(mockPartnerRepo, newDiscardLogger())

	ctx := context.Background()
	missing := newTestPartner("gone", true)
	newName := "whatever"

	mockPartnerRepo.EXPECT().
		FindPartnerByID(ctx, missing.ID).
		Return(nil, repository.ErrPartnerNotFound)

	partner, err := service.UpdatePartner(ctx, missing.ID, &usecase.UpdatePartnerInput{Name: &newName})
	assert.Error(t, err)
	assert.Nil(t, partner)
	assert.True(t, errors.Is(err, domainerrors.ErrPartnerNotFound))
}

func TestPartnerService_DeletePartner_Success(t *testing.T) {
	mockPartnerRepo := mockRepo.NewMockPartnerRepository(t)
	service := NewPartnerService(mockPartnerRepo, newDiscardLogger())

	ctx := context.Background()
	partner := newTestPartner("going-away", false)

	mockPartnerRepo.EXPECT().
		DeletePartner(ctx, partner.ID).
		Return(nil)

	err := service.DeletePartner(ctx, partner.ID)
	require.NoError(t, err)
}

func TestPartnerService_DeletePartner_StillOwnsTerritories(t *testing.T) {
	mockPartnerRepo := mockRepo.NewMockPartnerRepository(t)
	service := NewPartnerService(mockPartnerRepo, newDiscardLogger())

	ctx := context.Background()
	partner := newTestPartner("landlord", true)

	mockPartnerRepo.EXPECT().
		DeletePartner(ctx, partner.ID).
		Return(domainerrors.ErrPartnerHasTerritories.WrapMessage("territories still reference this partner"))

	err := service.DeletePartner(ctx, partner.ID)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPartnerHasTerritories))
}
