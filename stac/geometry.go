package stac

// Geometry is a GeoJSON geometry. Coordinates keep their dynamic JSON shape
// so every geometry type round-trips without a type per variant.
type Geometry struct {
	Type        string `json:"type"`
	Coordinates any    `json:"coordinates"`
}

// NewPoint creates a Point geometry at x, y.
func NewPoint(x, y float64) *Geometry {
	return &Geometry{
		Type:        "Point",
		Coordinates: []float64{x, y},
	}
}

// NewPolygon creates a Polygon geometry from linear rings. Each ring is a
// sequence of [x, y] positions with the first and last equal.
func NewPolygon(rings ...[][]float64) *Geometry {
	return &Geometry{
		Type:        "Polygon",
		Coordinates: rings,
	}
}
