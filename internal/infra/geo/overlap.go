package geo

import (
	"math"
	"sort"

	"atlas/internal/domain/entity"

	"github.com/engelsjk/polygol"
	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// OverlapAreaEpsilon is the smallest intersection area, in squared degrees,
// that counts as an overlap. Geometries that merely touch along an edge or
// at a vertex produce areas below this threshold and are treated as disjoint.
const OverlapAreaEpsilon = 1e-12

// IntersectionArea computes the shared area of two multipolygons in squared
// degrees. Returns 0 when the geometries are disjoint or when the boolean
// intersection cannot be computed.
func IntersectionArea(a, b orb.MultiPolygon) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	// Bounding-box prefilter keeps the expensive clipping off disjoint pairs.
	if !a.Bound().Intersects(b.Bound()) {
		return 0
	}

	clipped, err := polygol.Intersection(toPolygolGeom(a), toPolygolGeom(b))
	if err != nil {
		return 0
	}

	return math.Abs(planar.Area(fromPolygolGeom(clipped)))
}

// Overlaps reports whether two multipolygons share interior area and how much.
func Overlaps(a, b orb.MultiPolygon) (float64, bool) {
	area := IntersectionArea(a, b)

	return area, area > OverlapAreaEpsilon
}

// AllOverlaps computes every pairwise overlap in the territory snapshot,
// sorted by shared area descending. Pair sides are ordered by territory ID
// string. PartnerName on each side is left empty; callers that need it
// decorate the pairs from their partner snapshot.
func AllOverlaps(territories []*entity.Territory) []entity.OverlapPair {
	var pairs []entity.OverlapPair

	for i := 0; i < len(territories); i++ {
		for j := i + 1; j < len(territories); j++ {
			a, b := territories[i], territories[j]
			if a == nil || b == nil {
				continue
			}

			area, ok := Overlaps(a.Geometry, b.Geometry)
			if !ok {
				continue
			}

			first, second := a, b
			if second.ID.String() < first.ID.String() {
				first, second = second, first
			}
			pairs = append(pairs, newOverlapPair(first, second, area))
		}
	}

	sortPairsByArea(pairs)

	return pairs
}

// OverlapsFor computes the overlaps involving one focal territory. First is
// always the focal territory, Second the other one. Returns nil when the
// focal territory is not part of the snapshot.
func OverlapsFor(focusID uuid.UUID, territories []*entity.Territory) []entity.OverlapPair {
	var focus *entity.Territory
	for _, territory := range territories {
		if territory != nil && territory.ID == focusID {
			focus = territory

			break
		}
	}
	if focus == nil {
		return nil
	}

	var pairs []entity.OverlapPair
	for _, other := range territories {
		if other == nil || other.ID == focus.ID {
			continue
		}

		area, ok := Overlaps(focus.Geometry, other.Geometry)
		if !ok {
			continue
		}
		pairs = append(pairs, newOverlapPair(focus, other, area))
	}

	sortPairsByArea(pairs)

	return pairs
}

func newOverlapPair(first, second *entity.Territory, area float64) entity.OverlapPair {
	return entity.OverlapPair{
		First:        overlapSide(first),
		Second:       overlapSide(second),
		SamePriority: first.Priority == second.Priority,
		OverlapArea:  area,
	}
}

func overlapSide(t *entity.Territory) entity.OverlapSide {
	return entity.OverlapSide{
		TerritoryID:   t.ID,
		TerritoryName: t.Name,
		PartnerID:     t.PartnerID,
		Priority:      t.Priority,
	}
}

// sortPairsByArea orders pairs by area descending with the ID strings as a
// deterministic tie-breaker.
func sortPairsByArea(pairs []entity.OverlapPair) {
	sort.SliceStable(pairs, func(i, j int) bool {
		if pairs[i].OverlapArea != pairs[j].OverlapArea {
			return pairs[i].OverlapArea > pairs[j].OverlapArea
		}
		if pairs[i].First.TerritoryID != pairs[j].First.TerritoryID {
			return pairs[i].First.TerritoryID.String() < pairs[j].First.TerritoryID.String()
		}

		return pairs[i].Second.TerritoryID.String() < pairs[j].Second.TerritoryID.String()
	})
}

func toPolygolGeom(mp orb.MultiPolygon) [][][][]float64 {
	geom := make([][][][]float64, 0, len(mp))
	for _, polygon := range mp {
		rings := make([][][]float64, 0, len(polygon))
		for _, ring := range polygon {
			points := make([][]float64, 0, len(ring))
			for _, pt := range ring {
				points = append(points, []float64{pt[0], pt[1]})
			}
			rings = append(rings, points)
		}
		geom = append(geom, rings)
	}

	return geom
}

func fromPolygolGeom(geom [][][][]float64) orb.MultiPolygon {
	mp := make(orb.MultiPolygon, 0, len(geom))
	for _, rings := range geom {
		polygon := make(orb.Polygon, 0, len(rings))
		for _, points := range rings {
			ring := make(orb.Ring, 0, len(points))
			for _, pt := range points {
				if len(pt) < 2 {
					continue
				}
				ring = append(ring, orb.Point{pt[0], pt[1]})
			}
			polygon = append(polygon, ring)
		}
		mp = append(mp, polygon)
	}

	return mp
}
