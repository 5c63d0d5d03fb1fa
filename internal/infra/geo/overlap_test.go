package geo

import (
	"testing"

	"atlas/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverlaps_SharedInteriorArea(t *testing.T) {
	a := square(0, 0, 4, 4)
	b := square(2, 2, 6, 6)

	area, ok := Overlaps(a, b)
	assert.True(t, ok)
	assert.InDelta(t, 4.0, area, 1e-9)
}

func TestOverlaps_TouchingEdgeIsNotOverlap(t *testing.T) {
	a := square(0, 0, 2, 2)
	b := square(2, 0, 4, 2)

	_, ok := Overlaps(a, b)
	assert.False(t, ok)
}

func TestOverlaps_TouchingCornerIsNotOverlap(t *testing.T) {
	a := square(0, 0, 2, 2)
	b := square(2, 2, 4, 4)

	_, ok := Overlaps(a, b)
	assert.False(t, ok)
}

func TestOverlaps_Disjoint(t *testing.T) {
	a := square(0, 0, 2, 2)
	b := square(10, 10, 12, 12)

	area, ok := Overlaps(a, b)
	assert.False(t, ok)
	assert.Zero(t, area)
}

func TestIntersectionArea_EmptyGeometry(t *testing.T) {
	assert.Zero(t, IntersectionArea(nil, square(0, 0, 2, 2)))
	assert.Zero(t, IntersectionArea(square(0, 0, 2, 2), nil))
}

func TestAllOverlaps_FindsOnlyRealPairs(t *testing.T) {
	partnerID := uuid.New()
	t1 := testTerritory("11111111-1111-1111-1111-111111111111", partnerID, 0, square(0, 0, 4, 4))
	t2 := testTerritory("22222222-2222-2222-2222-222222222222", partnerID, 1, square(2, 2, 6, 6))
	t3 := testTerritory("33333333-3333-3333-3333-333333333333", partnerID, 0, square(100, 0, 104, 4))

	pairs := AllOverlaps([]*entity.Territory{t3, t2, t1})
	require.Len(t, pairs, 1)
	assert.Equal(t, t1.ID, pairs[0].First.TerritoryID)
	assert.Equal(t, t2.ID, pairs[0].Second.TerritoryID)
	assert.False(t, pairs[0].SamePriority)
	assert.InDelta(t, 4.0, pairs[0].OverlapArea, 1e-9)
}

func TestAllOverlaps_SortedByAreaDescending(t *testing.T) {
	partnerID := uuid.New()
	base := testTerritory("11111111-1111-1111-1111-111111111111", partnerID, 0, square(0, 0, 10, 10))
	big := testTerritory("22222222-2222-2222-2222-222222222222", partnerID, 0, square(5, 0, 15, 10))
	small := testTerritory("33333333-3333-3333-3333-333333333333", partnerID, 2, square(9, 9, 12, 12))

	pairs := AllOverlaps([]*entity.Territory{base, big, small})
	require.Len(t, pairs, 3)
	for i := 1; i < len(pairs); i++ {
		assert.GreaterOrEqual(t, pairs[i-1].OverlapArea, pairs[i].OverlapArea)
	}
	// base/big share a 5x10 strip, the largest pair.
	assert.Equal(t, base.ID, pairs[0].First.TerritoryID)
	assert.Equal(t, big.ID, pairs[0].Second.TerritoryID)
	assert.InDelta(t, 50.0, pairs[0].OverlapArea, 1e-9)
}

func TestAllOverlaps_FlagsEqualPriorities(t *testing.T) {
	partnerID := uuid.New()
	a := testTerritory("11111111-1111-1111-1111-111111111111", partnerID, 3, square(0, 0, 4, 4))
	b := testTerritory("22222222-2222-2222-2222-222222222222", partnerID, 3, square(2, 2, 6, 6))

	pairs := AllOverlaps([]*entity.Territory{a, b})
	require.Len(t, pairs, 1)
	assert.True(t, pairs[0].SamePriority)
}

func TestOverlapsFor_FocalTerritoryFirst(t *testing.T) {
	partnerID := uuid.New()
	focus := testTerritory("22222222-2222-2222-2222-222222222222", partnerID, 1, square(2, 2, 6, 6))
	other := testTerritory("11111111-1111-1111-1111-111111111111", partnerID, 0, square(0, 0, 4, 4))
	disjoint := testTerritory("33333333-3333-3333-3333-333333333333", partnerID, 0, square(50, 50, 54, 54))

	pairs := OverlapsFor(focus.ID, []*entity.Territory{other, focus, disjoint})
	require.Len(t, pairs, 1)
	assert.Equal(t, focus.ID, pairs[0].First.TerritoryID)
	assert.Equal(t, other.ID, pairs[0].Second.TerritoryID)
}

func TestOverlapsFor_Symmetric(t *testing.T) {
	partnerID := uuid.New()
	a := testTerritory("11111111-1111-1111-1111-111111111111", partnerID, 0, square(0, 0, 4, 4))
	b := testTerritory("22222222-2222-2222-2222-222222222222", partnerID, 1, square(2, 2, 6, 6))
	c := testTerritory("33333333-3333-3333-3333-333333333333", partnerID, 0, square(3, 3, 8, 8))
	snapshot := []*entity.Territory{a, b, c}

	appears := func(pairs []entity.OverlapPair, id uuid.UUID) bool {
		for _, pair := range pairs {
			if pair.Second.TerritoryID == id {
				return true
			}
		}

		return false
	}

	for _, first := range snapshot {
		for _, second := range snapshot {
			if first.ID == second.ID {
				continue
			}
			assert.Equal(t,
				appears(OverlapsFor(first.ID, snapshot), second.ID),
				appears(OverlapsFor(second.ID, snapshot), first.ID),
				"overlap relation must be symmetric",
			)
		}
	}
}

func TestOverlapsFor_UnknownFocus(t *testing.T) {
	partnerID := uuid.New()
	a := testTerritory("11111111-1111-1111-1111-111111111111", partnerID, 0, square(0, 0, 4, 4))

	pairs := OverlapsFor(uuid.New(), []*entity.Territory{a})
	assert.Nil(t, pairs)
}
