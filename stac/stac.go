// Package stac holds the minimal STAC domain types the pgstac client
// round-trips: collections and items with their GeoJSON plumbing. Fields
// the client itself never looks at are carried as dynamic JSON so that
// arbitrary extensions survive a round trip.
package stac

// Version is the STAC version stamped on records created by this package.
const Version = "1.0.0"

// Link relates a STAC object to another resource.
type Link struct {
	Href  string `json:"href"`
	Rel   string `json:"rel"`
	Type  string `json:"type,omitempty"`
	Title string `json:"title,omitempty"`
}

// Asset is a file or service associated with an item.
type Asset struct {
	Href        string   `json:"href"`
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	Type        string   `json:"type,omitempty"`
	Roles       []string `json:"roles,omitempty"`
}
