package geo

import (
	"testing"

	"atlas/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(minLng, minLat, maxLng, maxLat float64) orb.MultiPolygon {
	return orb.MultiPolygon{{orb.Ring{
		{minLng, minLat}, {maxLng, minLat}, {maxLng, maxLat}, {minLng, maxLat}, {minLng, minLat},
	}}}
}

func testTerritory(id string, partnerID uuid.UUID, priority int, geometry orb.MultiPolygon) *entity.Territory {
	return &entity.Territory{
		ID:        uuid.MustParse(id),
		PartnerID: partnerID,
		Name:      "territory-" + id[:8],
		Priority:  priority,
		Geometry:  geometry,
	}
}

func TestContains_BoundaryInclusive(t *testing.T) {
	mp := square(0, 0, 4, 4)

	assert.True(t, Contains(mp, orb.Point{2, 2}), "interior point")
	assert.True(t, Contains(mp, orb.Point{4, 2}), "point on edge")
	assert.True(t, Contains(mp, orb.Point{4, 4}), "point on vertex")
	assert.False(t, Contains(mp, orb.Point{5, 5}), "outside point")
	assert.False(t, Contains(nil, orb.Point{0, 0}), "empty geometry")
}

func TestContains_HoleCarvesOut(t *testing.T) {
	mp := orb.MultiPolygon{{
		orb.Ring{{0, 0}, {4, 0}, {4, 4}, {0, 4}, {0, 0}},
		orb.Ring{{1, 1}, {3, 1}, {3, 3}, {1, 3}, {1, 1}},
	}}

	assert.False(t, Contains(mp, orb.Point{2, 2}), "point inside hole")
	assert.True(t, Contains(mp, orb.Point{0.5, 0.5}), "point between outer ring and hole")
}

func TestMatch_SingleContainingTerritoryWins(t *testing.T) {
	partnerID := uuid.New()
	active := map[uuid.UUID]bool{partnerID: true}

	inside := testTerritory("11111111-1111-1111-1111-111111111111", partnerID, 0, square(0, 0, 4, 4))
	elsewhere := testTerritory("22222222-2222-2222-2222-222222222222", partnerID, 99, square(100, 10, 104, 14))

	outcome := Match(orb.Point{2, 2}, []*entity.Territory{elsewhere, inside}, active)
	require.NotNil(t, outcome.Winner)
	assert.Equal(t, inside.ID, outcome.Winner.ID)
	assert.Equal(t, 1, outcome.Candidates)
	assert.False(t, outcome.InactiveOnly)
}

func TestMatch_HighestPriorityWins(t *testing.T) {
	partnerID := uuid.New()
	active := map[uuid.UUID]bool{partnerID: true}

	low := testTerritory("11111111-1111-1111-1111-111111111111", partnerID, 0, square(0, 0, 4, 4))
	high := testTerritory("22222222-2222-2222-2222-222222222222", partnerID, 5, square(1, 1, 5, 5))
	mid := testTerritory("33333333-3333-3333-3333-333333333333", partnerID, 3, square(1, 1, 6, 6))

	outcome := Match(orb.Point{2, 2}, []*entity.Territory{low, high, mid}, active)
	require.NotNil(t, outcome.Winner)
	assert.Equal(t, high.ID, outcome.Winner.ID)
	assert.Equal(t, 3, outcome.Candidates)
}

func TestMatch_TieBreakIsDeterministic(t *testing.T) {
	partnerID := uuid.New()
	active := map[uuid.UUID]bool{partnerID: true}

	a := testTerritory("aaaaaaaa-0000-0000-0000-000000000000", partnerID, 2, square(0, 0, 4, 4))
	b := testTerritory("bbbbbbbb-0000-0000-0000-000000000000", partnerID, 2, square(1, 1, 5, 5))

	// The smaller ID string wins no matter the snapshot order.
	first := Match(orb.Point{2, 2}, []*entity.Territory{a, b}, active)
	second := Match(orb.Point{2, 2}, []*entity.Territory{b, a}, active)

	require.NotNil(t, first.Winner)
	require.NotNil(t, second.Winner)
	assert.Equal(t, a.ID, first.Winner.ID)
	assert.Equal(t, a.ID, second.Winner.ID)
}

func TestMatch_NoContainment(t *testing.T) {
	partnerID := uuid.New()
	active := map[uuid.UUID]bool{partnerID: true}
	territory := testTerritory("11111111-1111-1111-1111-111111111111", partnerID, 0, square(0, 0, 4, 4))

	outcome := Match(orb.Point{50, 50}, []*entity.Territory{territory}, active)
	assert.Nil(t, outcome.Winner)
	assert.Zero(t, outcome.Candidates)
	assert.False(t, outcome.InactiveOnly)
}

func TestMatch_InactivePartnerOnly(t *testing.T) {
	partnerID := uuid.New()
	territory := testTerritory("11111111-1111-1111-1111-111111111111", partnerID, 4, square(0, 0, 4, 4))

	outcome := Match(orb.Point{2, 2}, []*entity.Territory{territory}, map[uuid.UUID]bool{})
	assert.Nil(t, outcome.Winner)
	assert.Zero(t, outcome.Candidates)
	assert.True(t, outcome.InactiveOnly)
}

func TestMatch_InactiveExcludedFromCompetition(t *testing.T) {
	activeID := uuid.New()
	inactiveID := uuid.New()
	active := map[uuid.UUID]bool{activeID: true}

	weak := testTerritory("11111111-1111-1111-1111-111111111111", activeID, 0, square(0, 0, 4, 4))
	strong := testTerritory("22222222-2222-2222-2222-222222222222", inactiveID, 9, square(0, 0, 4, 4))

	outcome := Match(orb.Point{2, 2}, []*entity.Territory{weak, strong}, active)
	require.NotNil(t, outcome.Winner)
	assert.Equal(t, weak.ID, outcome.Winner.ID)
	assert.Equal(t, 1, outcome.Candidates)
	assert.False(t, outcome.InactiveOnly)
}

func TestMatch_MontrealScenario(t *testing.T) {
	partnerID := uuid.New()
	active := map[uuid.UUID]bool{partnerID: true}
	point := orb.Point{-73.57, 45.50}

	t1 := testTerritory("11111111-1111-1111-1111-111111111111", partnerID, 0, square(-73.60, 45.48, -73.54, 45.52))
	t2 := testTerritory("22222222-2222-2222-2222-222222222222", partnerID, 1, square(-73.60, 45.49, -73.55, 45.51))
	t3 := testTerritory("33333333-3333-3333-3333-333333333333", partnerID, 0, square(-73.40, 45.60, -73.35, 45.65))
	snapshot := []*entity.Territory{t1, t2, t3}

	// Inside both t1 and t2, the higher priority wins.
	downtown := Match(point, snapshot, active)
	require.NotNil(t, downtown.Winner)
	assert.Equal(t, t2.ID, downtown.Winner.ID)
	assert.Equal(t, 2, downtown.Candidates)

	// Only t3 contains this point.
	east := Match(orb.Point{-73.37, 45.62}, snapshot, active)
	require.NotNil(t, east.Winner)
	assert.Equal(t, t3.ID, east.Winner.ID)

	// Null island is inside nothing.
	nowhere := Match(orb.Point{0, 0}, snapshot, active)
	assert.Nil(t, nowhere.Winner)
	assert.False(t, nowhere.InactiveOnly)
}
