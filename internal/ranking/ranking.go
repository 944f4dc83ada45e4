// Package ranking orders discoverable entities by promotion tier and
// distance to a reference coordinate.
package ranking

import (
	"cmp"
	"slices"

	"storefront/internal/domain/entity"
	"storefront/internal/geo"
)

// DefaultRadiusKm is the cutoff of the "nearby" listing.
const DefaultRadiusKm = 10.0

// Options configures Rank.
type Options struct {
	// Reference is the coordinate distances are measured from. When nil no
	// distance is computed and only the boosted-first order applies.
	Reference *entity.Coordinate

	// RadiusKm excludes entities farther than this many kilometers, together
	// with entities whose position is unknown. Zero or negative disables it.
	RadiusKm float64
}

// Rank computes distances and returns the entities in a deterministic total
// order:
//
//  1. boosted before non-boosted;
//  2. within a tier, known distances ascending;
//  3. unknown distances after known ones, in their original relative order.
//
// Without a reference, boosted entities come first and ties are broken by
// newest creation time. The input slice is not modified.
func Rank[T entity.Discoverable](items []T, opts Options) []entity.Ranked[T] {
	ranked := make([]entity.Ranked[T], 0, len(items))

	for _, item := range items {
		r := entity.Ranked[T]{Item: item}

		if opts.Reference != nil {
			if position, ok := item.Position(); ok {
				distance := geo.DistanceKm(*opts.Reference, position)
				r.DistanceKm = &distance
			}

			if opts.RadiusKm > 0 && !withinRadius(r.DistanceKm, opts.RadiusKm) {
				continue
			}
		}

		ranked = append(ranked, r)
	}

	if opts.Reference == nil {
		slices.SortStableFunc(ranked, compareWithoutDistance[T])
	} else {
		slices.SortStableFunc(ranked, compareWithDistance[T])
	}

	return ranked
}

func withinRadius(distanceKm *float64, radiusKm float64) bool {
	return distanceKm != nil && *distanceKm <= radiusKm
}

func compareBoosted(a, b bool) int {
	switch {
	case a == b:
		return 0
	case a:
		return -1
	default:
		return 1
	}
}

func compareWithoutDistance[T entity.Discoverable](a, b entity.Ranked[T]) int {
	if c := compareBoosted(a.Item.IsBoosted(), b.Item.IsBoosted()); c != 0 {
		return c
	}

	// Newest first.
	return b.Item.CreatedTime().Compare(a.Item.CreatedTime())
}

func compareWithDistance[T entity.Discoverable](a, b entity.Ranked[T]) int {
	if c := compareBoosted(a.Item.IsBoosted(), b.Item.IsBoosted()); c != 0 {
		return c
	}

	switch {
	case a.DistanceKm == nil && b.DistanceKm == nil:
		return 0
	case a.DistanceKm == nil:
		return 1
	case b.DistanceKm == nil:
		return -1
	default:
		return cmp.Compare(*a.DistanceKm, *b.DistanceKm)
	}
}

// Items strips the distances from a ranked slice.
func Items[T any](ranked []entity.Ranked[T]) []T {
	out := make([]T, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, r.Item)
	}

	return out
}
