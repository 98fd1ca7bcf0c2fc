package stac

// Extent describes the spatial and temporal coverage of a collection.
type Extent struct {
	Spatial  SpatialExtent  `json:"spatial"`
	Temporal TemporalExtent `json:"temporal"`
}

// SpatialExtent is a set of covering bounding boxes.
type SpatialExtent struct {
	Bbox [][]float64 `json:"bbox"`
}

// TemporalExtent is a set of covering intervals; a nil bound is open.
type TemporalExtent struct {
	Interval [][]*string `json:"interval"`
}

// Collection is a STAC collection document.
type Collection struct {
	Type        string   `json:"type"`
	StacVersion string   `json:"stac_version"`
	ID          string   `json:"id"`
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords,omitempty"`
	License     string   `json:"license"`
	Extent      Extent   `json:"extent"`
	Links       []Link   `json:"links"`
}

// NewCollection creates a collection with the given id and description and
// an unconstrained extent.
func NewCollection(id, description string) *Collection {
	return &Collection{
		Type:        "Collection",
		StacVersion: Version,
		ID:          id,
		Description: description,
		License:     "proprietary",
		Extent: Extent{
			Spatial:  SpatialExtent{Bbox: [][]float64{{-180, -90, 180, 90}}},
			Temporal: TemporalExtent{Interval: [][]*string{{nil, nil}}},
		},
		Links: []Link{},
	}
}
