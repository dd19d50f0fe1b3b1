package domain

// BoundingBox is a lat/lon rectangle.
type BoundingBox struct {
	MinLat float64 `json:"min_lat"`
	MinLon float64 `json:"min_lon"`
	MaxLat float64 `json:"max_lat"`
	MaxLon float64 `json:"max_lon"`
}

// IsraelBounds approximates Israel's bounding box. Coordinates outside it
// are treated as extraction errors and rejected.
var IsraelBounds = BoundingBox{
	MinLat: 29.0,
	MinLon: 34.0,
	MaxLat: 34.0,
	MaxLon: 36.5,
}

// Contains reports whether the point lies inside the box (inclusive).
func (b BoundingBox) Contains(lat, lon float64) bool {
	return lat >= b.MinLat && lat <= b.MaxLat &&
		lon >= b.MinLon && lon <= b.MaxLon
}
