package geo

import (
	"math"
	"slices"

	"storefront/internal/domain/entity"

	"github.com/dhconnelly/rtreego"
)

// DefaultClusterThresholdMeters groups markers that practically share an address.
const DefaultClusterThresholdMeters = 20.0

const (
	rtreeDimensions  = 2
	rtreeMinChildren = 25
	rtreeMaxChildren = 50
	// Side half-length of the degenerate rectangle stored per marker.
	markerTolerance = 1e-9
	// Widens the search window past the threshold; Haversine does the exact cut.
	windowPadding = 1.05
)

// ClusterByProximity groups items for map display with a greedy single pass:
// take the next unprocessed item as seed, gather every other unprocessed item
// within thresholdMeters of the seed, mark them processed and emit one
// cluster. Clusters are emitted in seed input order and members keep input
// order. Clusters are never re-merged across seeds, so the grouping is an
// approximation; it costs O(n²) and is meant for listings under a few hundred
// markers (see ClusterIndexed for larger inputs).
//
// Items without a position are skipped.
func ClusterByProximity[T entity.Discoverable](items []T, thresholdMeters float64) []entity.Cluster[T] {
	positioned, coords := positionedItems(items)
	processed := make([]bool, len(positioned))

	var clusters []entity.Cluster[T]
	for i := range positioned {
		if processed[i] {
			continue
		}
		processed[i] = true

		cluster := newCluster(positioned[i], coords[i])
		for j := i + 1; j < len(positioned); j++ {
			if processed[j] || Haversine(coords[i], coords[j]) > thresholdMeters {
				continue
			}
			processed[j] = true
			cluster.Items = append(cluster.Items, positioned[j])
			cluster.IsBoosted = cluster.IsBoosted || positioned[j].IsBoosted()
		}

		clusters = append(clusters, cluster)
	}

	return clusters
}

// ClusterIndexed produces the same clusters as ClusterByProximity but finds
// each seed's neighbours through an R-tree window query instead of scanning
// the whole list.
func ClusterIndexed[T entity.Discoverable](items []T, thresholdMeters float64) []entity.Cluster[T] {
	positioned, coords := positionedItems(items)
	if len(positioned) == 0 {
		return nil
	}

	tree := rtreego.NewTree(rtreeDimensions, rtreeMinChildren, rtreeMaxChildren)
	for i, c := range coords {
		tree.Insert(&marker{index: i, rect: rtreego.Point{c.Lon(), c.Lat()}.ToRect(markerTolerance)})
	}

	processed := make([]bool, len(positioned))

	var clusters []entity.Cluster[T]
	for i := range positioned {
		if processed[i] {
			continue
		}
		processed[i] = true

		cluster := newCluster(positioned[i], coords[i])
		for _, j := range neighbours(tree, coords[i], thresholdMeters, len(coords)) {
			if processed[j] || Haversine(coords[i], coords[j]) > thresholdMeters {
				continue
			}
			processed[j] = true
			cluster.Items = append(cluster.Items, positioned[j])
			cluster.IsBoosted = cluster.IsBoosted || positioned[j].IsBoosted()
		}

		clusters = append(clusters, cluster)
	}

	return clusters
}

// Cluster picks the scan or the indexed implementation based on input size.
func Cluster[T entity.Discoverable](items []T, thresholdMeters float64, indexAbove int) []entity.Cluster[T] {
	if indexAbove > 0 && len(items) > indexAbove {
		return ClusterIndexed(items, thresholdMeters)
	}

	return ClusterByProximity(items, thresholdMeters)
}

type marker struct {
	index int
	rect  *rtreego.Rect
}

func (m *marker) Bounds() *rtreego.Rect {
	return m.rect
}

// neighbours returns candidate indices inside the threshold window around
// center, sorted so members are appended in input order. A window that
// crosses the antimeridian or a pole falls back to every marker.
func neighbours(tree *rtreego.Rtree, center entity.Coordinate, thresholdMeters float64, total int) []int {
	latDelta := thresholdMeters / EarthRadiusMeters * 180 / math.Pi * windowPadding
	lngDelta := 180.0
	poleward := math.Min(math.Abs(center.Lat())+latDelta, 90)
	if cosLat := math.Cos(toRadians(poleward)); cosLat > 1e-6 {
		lngDelta = latDelta / cosLat
	}

	if center.Lon()-lngDelta < -180 || center.Lon()+lngDelta > 180 ||
		center.Lat()-latDelta < -90 || center.Lat()+latDelta > 90 {
		return allIndices(total)
	}

	window, err := rtreego.NewRect(
		rtreego.Point{center.Lon() - lngDelta, center.Lat() - latDelta},
		[]float64{2 * lngDelta, 2 * latDelta},
	)
	if err != nil {
		// Zero-sized window (threshold <= 0).
		return allIndices(total)
	}

	hits := tree.SearchIntersect(window)
	indices := make([]int, 0, len(hits))
	for _, hit := range hits {
		if m, ok := hit.(*marker); ok {
			indices = append(indices, m.index)
		}
	}
	slices.Sort(indices)

	return indices
}

func allIndices(n int) []int {
	all := make([]int, n)
	for i := range all {
		all[i] = i
	}

	return all
}

func positionedItems[T entity.Discoverable](items []T) ([]T, []entity.Coordinate) {
	positioned := make([]T, 0, len(items))
	coords := make([]entity.Coordinate, 0, len(items))

	for _, item := range items {
		c, ok := item.Position()
		if !ok {
			continue
		}
		positioned = append(positioned, item)
		coords = append(coords, c)
	}

	return positioned, coords
}

func newCluster[T entity.Discoverable](seed T, center entity.Coordinate) entity.Cluster[T] {
	return entity.Cluster[T]{
		Center:    center,
		Items:     []T{seed},
		IsBoosted: seed.IsBoosted(),
	}
}
