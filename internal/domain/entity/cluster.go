package entity

// Cluster groups map markers whose positions lie within the clustering
// threshold of the seed marker. It is derived and never persisted.
type Cluster[T any] struct {
	Center    Coordinate `json:"center"`
	Items     []T        `json:"items"`
	IsBoosted bool       `json:"is_boosted"`
}
