package pgstac

import (
	"time"

	"github.com/lk2023060901/pgstac-go/stac"
)

// Search describes an item search request.
//
// Every field is optional. Empty fields are omitted from the encoded
// request, never sent as null, so that the server applies its own defaults;
// pgstac treats an explicit null and an absent key differently for some of
// them.
type Search struct {
	// IDs restricts results to exactly these item ids.
	IDs []string `json:"ids,omitempty"`

	// Collections restricts results to items belonging to one of these
	// collections.
	Collections []string `json:"collections,omitempty"`

	// Bbox is the requested bounding box, four or six numbers in
	// [min, max] corner order.
	Bbox []float64 `json:"bbox,omitempty"`

	// Datetime is a single RFC 3339 instant, or a start/end range separated
	// by '/'. Either side of a range may be ".." for an open bound. See
	// Instant and Interval.
	Datetime string `json:"datetime,omitempty"`

	// Intersects restricts results to items whose geometry intersects the
	// given GeoJSON geometry.
	Intersects *stac.Geometry `json:"intersects,omitempty"`

	// Limit is the requested page size. Nil means the server default.
	Limit *int `json:"limit,omitempty"`

	// Token is an opaque pagination cursor obtained from Page.NextToken or
	// Page.PrevToken. The client never parses it.
	Token string `json:"token,omitempty"`

	// Fields controls which item properties appear in results.
	Fields *Fields `json:"fields,omitempty"`

	// SortBy orders results; the first entry is the primary sort key.
	SortBy []SortBy `json:"sortby,omitempty"`

	// Filter is a cql2-json expression tree evaluated server-side.
	Filter map[string]any `json:"filter,omitempty"`
}

// Instant formats a single instant for Search.Datetime.
func Instant(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// Interval formats a start/end range for Search.Datetime. A zero time on
// either side becomes the ".." open bound.
func Interval(start, end time.Time) string {
	s, e := "..", ".."
	if !start.IsZero() {
		s = Instant(start)
	}
	if !end.IsZero() {
		e = Instant(end)
	}
	return s + "/" + e
}
