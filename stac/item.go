package stac

import (
	"encoding/json"
	"time"
)

// Item is a STAC item document: a GeoJSON feature with STAC metadata.
type Item struct {
	Type        string           `json:"type"`
	StacVersion string           `json:"stac_version"`
	ID          string           `json:"id"`
	Geometry    *Geometry        `json:"geometry"`
	Bbox        []float64        `json:"bbox,omitempty"`
	Properties  Properties       `json:"properties"`
	Links       []Link           `json:"links"`
	Assets      map[string]Asset `json:"assets"`
	Collection  string           `json:"collection,omitempty"`
}

// NewItem creates an item with the given id and its datetime set to now.
// pgstac rejects items without a datetime and without a collection; the
// caller still has to set Collection before inserting.
func NewItem(id string) *Item {
	return &Item{
		Type:        "Feature",
		StacVersion: Version,
		ID:          id,
		Properties:  Properties{Datetime: time.Now().UTC().Format(time.RFC3339)},
		Links:       []Link{},
		Assets:      map[string]Asset{},
	}
}

// Properties holds an item's properties. Datetime is the only property the
// client depends on; everything else rides in Extra and is flattened into
// the same JSON object on encoding.
type Properties struct {
	// Datetime is the item's nominal RFC 3339 instant
	Datetime string

	// Extra carries all other properties, including extension fields
	Extra map[string]any
}

// MarshalJSON flattens Extra and datetime into one object.
func (p Properties) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(p.Extra)+1)
	for k, v := range p.Extra {
		m[k] = v
	}
	if p.Datetime != "" {
		m["datetime"] = p.Datetime
	}
	return json.Marshal(m)
}

// UnmarshalJSON splits the datetime off into its field and keeps the rest
// in Extra.
func (p *Properties) UnmarshalJSON(data []byte) error {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	if dt, ok := m["datetime"].(string); ok {
		p.Datetime = dt
	}
	delete(m, "datetime")
	if len(m) == 0 {
		m = nil
	}
	p.Extra = m
	return nil
}

// Set records an extra property on the item.
func (p *Properties) Set(key string, value any) {
	if p.Extra == nil {
		p.Extra = map[string]any{}
	}
	p.Extra[key] = value
}

// Get reads an extra property from the item.
func (p *Properties) Get(key string) (any, bool) {
	v, ok := p.Extra[key]
	return v, ok
}
