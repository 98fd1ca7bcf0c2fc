package pgstac

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodePage(t *testing.T, raw string) *Page {
	t.Helper()
	var page Page
	require.NoError(t, json.Unmarshal([]byte(raw), &page))
	return &page
}

func TestPage_Decode(t *testing.T) {
	page := decodePage(t, `{
		"type": "FeatureCollection",
		"features": [
			{"id": "later", "properties": {"datetime": "2023-02-01T00:00:00Z"}},
			{"id": "earlier", "properties": {"datetime": "2023-01-01T00:00:00Z"}}
		],
		"next": "abc123",
		"prev": null,
		"context": {"limit": 2, "returned": 2, "matched": 10}
	}`)

	assert.Equal(t, "FeatureCollection", page.Type)
	require.Len(t, page.Features, 2)
	assert.Equal(t, "later", page.Features[0]["id"])
	assert.Equal(t, 2, page.Context.Limit)
	assert.Equal(t, 2, page.Context.Returned)
	require.NotNil(t, page.Context.Matched)
	assert.Equal(t, 10, *page.Context.Matched)
}

func TestPage_Tokens(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		wantNext string
		hasNext  bool
		wantPrev string
		hasPrev  bool
	}{
		{
			"both cursors",
			`{"type":"FeatureCollection","features":[],"next":"n1","prev":"p1","context":{"limit":1,"returned":0}}`,
			"next:n1", true, "prev:p1", true,
		},
		{
			"no cursors",
			`{"type":"FeatureCollection","features":[],"next":null,"prev":null,"context":{"limit":1,"returned":0}}`,
			"", false, "", false,
		},
		{
			"absent cursors",
			`{"type":"FeatureCollection","features":[],"context":{"limit":1,"returned":0}}`,
			"", false, "", false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := decodePage(t, tt.raw)

			next, ok := page.NextToken()
			assert.Equal(t, tt.hasNext, ok)
			assert.Equal(t, tt.wantNext, next)

			prev, ok := page.PrevToken()
			assert.Equal(t, tt.hasPrev, ok)
			assert.Equal(t, tt.wantPrev, prev)
		})
	}
}

func TestPage_TokenRoundTripIntoSearch(t *testing.T) {
	page := decodePage(t, `{"type":"FeatureCollection","features":[],"next":"cursor","context":{"limit":1,"returned":1}}`)

	token, ok := page.NextToken()
	require.True(t, ok)

	encoded, err := json.Marshal(Search{Token: token})
	require.NoError(t, err)
	assert.JSONEq(t, `{"token":"next:cursor"}`, string(encoded))
}

func TestPage_Items(t *testing.T) {
	page := decodePage(t, `{
		"type": "FeatureCollection",
		"features": [{
			"type": "Feature",
			"id": "an-id",
			"collection": "collection-id",
			"geometry": {"type": "Point", "coordinates": [-105.1019, 40.1672]},
			"properties": {"datetime": "2023-01-01T00:00:00Z", "foo": "bar"},
			"links": [],
			"assets": {}
		}],
		"context": {"limit": 10, "returned": 1}
	}`)

	items, err := page.Items()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "an-id", items[0].ID)
	assert.Equal(t, "collection-id", items[0].Collection)
	assert.Equal(t, "2023-01-01T00:00:00Z", items[0].Properties.Datetime)
	foo, ok := items[0].Properties.Get("foo")
	assert.True(t, ok)
	assert.Equal(t, "bar", foo)
}

func TestPage_FeatureValue(t *testing.T) {
	page := decodePage(t, `{
		"type": "FeatureCollection",
		"features": [{"id": "an-id", "properties": {"datetime": "2023-01-01T00:00:00Z", "eo:cloud_cover": 12.5}}],
		"context": {"limit": 10, "returned": 1}
	}`)

	assert.Equal(t, "an-id", page.FeatureValue(0, "id").String())
	assert.Equal(t, 12.5, page.FeatureValue(0, `properties.eo:cloud_cover`).Float())
	assert.False(t, page.FeatureValue(0, "properties.missing").Exists())
	assert.False(t, page.FeatureValue(3, "id").Exists())
}
