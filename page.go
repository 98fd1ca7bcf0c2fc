package pgstac

import (
	"encoding/json"

	"github.com/tidwall/gjson"

	"github.com/lk2023060901/pgstac-go/stac"
)

// Pagination token tags. The tag tells the server which direction a resumed
// search walks; the cursor after the tag stays opaque to the client.
const (
	nextTokenPrefix = "next:"
	prevTokenPrefix = "prev:"
)

// Page is one page of search results. It is read-only once decoded; its
// only derived operations are the pagination token accessors.
type Page struct {
	// Type should always be "FeatureCollection"
	Type string `json:"type"`

	// Features are the returned features, nominally items, but not
	// necessarily valid items when fields were excluded
	Features []map[string]any `json:"features"`

	// Next is the server-issued cursor fragment for the following page
	Next *string `json:"next"`

	// Prev is the server-issued cursor fragment for the preceding page
	Prev *string `json:"prev"`

	// Context echoes the effective page size and the returned count
	Context Context `json:"context"`
}

// Context is the search context of a page.
type Context struct {
	// Limit is the effective page size
	Limit int `json:"limit"`

	// Returned is the number of features in this page
	Returned int `json:"returned"`

	// Matched is the total match count, when the server reports one
	Matched *int `json:"matched,omitempty"`
}

// NextToken returns the opaque token that fetches the page after this one.
// Assign it to Search.Token unmodified. The second result is false when no
// further page exists.
func (p *Page) NextToken() (string, bool) {
	if p.Next == nil {
		return "", false
	}
	return nextTokenPrefix + *p.Next, true
}

// PrevToken returns the opaque token that fetches the page before this one.
// The second result is false when no preceding page exists.
func (p *Page) PrevToken() (string, bool) {
	if p.Prev == nil {
		return "", false
	}
	return prevTokenPrefix + *p.Prev, true
}

// Items decodes the page's features as STAC items. This can fail when the
// search excluded fields items require; use Features or FeatureValue for
// projected results.
func (p *Page) Items() ([]*stac.Item, error) {
	items := make([]*stac.Item, 0, len(p.Features))
	for _, feature := range p.Features {
		encoded, err := json.Marshal(feature)
		if err != nil {
			return nil, err
		}
		var item stac.Item
		if err := json.Unmarshal(encoded, &item); err != nil {
			return nil, err
		}
		items = append(items, &item)
	}
	return items, nil
}

// FeatureValue extracts a value from feature i by gjson path, e.g.
// "properties.datetime". It returns an empty result when the index is out
// of range or the path does not exist; check Result.Exists.
func (p *Page) FeatureValue(i int, path string) gjson.Result {
	if i < 0 || i >= len(p.Features) {
		return gjson.Result{}
	}
	encoded, err := json.Marshal(p.Features[i])
	if err != nil {
		return gjson.Result{}
	}
	return gjson.GetBytes(encoded, path)
}
