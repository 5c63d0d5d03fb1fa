package geo

import (
	"atlas/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// MatchOutcome is the result of matching one point against a territory snapshot.
type MatchOutcome struct {
	// Winner is the chosen territory, nil when no eligible territory
	// contains the point.
	Winner *entity.Territory

	// Candidates counts the eligible territories containing the point.
	Candidates int

	// InactiveOnly is true when at least one territory contains the point
	// but every one of them belongs to an inactive partner.
	InactiveOnly bool
}

// Contains reports whether the point lies inside the multipolygon.
// Points exactly on an outer ring's edge or vertex count as inside, points
// on a hole's boundary count as carved out. That is the containment rule
// used everywhere in this package.
func Contains(mp orb.MultiPolygon, point orb.Point) bool {
	if len(mp) == 0 {
		return false
	}
	// Cheap reject before the ray casting.
	if !mp.Bound().Contains(point) {
		return false
	}

	return planar.MultiPolygonContains(mp, point)
}

// Match finds the territory that claims the point. Only territories whose
// partner appears with true in activePartners are eligible. Among eligible
// containing territories the highest priority wins; equal priorities are
// broken by the smallest territory ID string, so repeated calls with the
// same snapshot always pick the same winner.
func Match(point orb.Point, territories []*entity.Territory, activePartners map[uuid.UUID]bool) MatchOutcome {
	var outcome MatchOutcome
	containedAny := false

	for _, territory := range territories {
		if territory == nil || !Contains(territory.Geometry, point) {
			continue
		}
		containedAny = true

		if !activePartners[territory.PartnerID] {
			continue
		}
		outcome.Candidates++

		if outcome.Winner == nil || beats(territory, outcome.Winner) {
			outcome.Winner = territory
		}
	}

	outcome.InactiveOnly = containedAny && outcome.Winner == nil

	return outcome
}

// beats reports whether challenger outranks current: strictly higher
// priority first, smaller ID string on ties.
func beats(challenger, current *entity.Territory) bool {
	if challenger.Priority != current.Priority {
		return challenger.Priority > current.Priority
	}

	return challenger.ID.String() < current.ID.String()
}
