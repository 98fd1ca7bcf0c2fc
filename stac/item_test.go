package stac

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	item := NewItem("an-id")

	assert.Equal(t, "Feature", item.Type)
	assert.Equal(t, Version, item.StacVersion)
	assert.Equal(t, "an-id", item.ID)
	assert.NotEmpty(t, item.Properties.Datetime)
	assert.NotNil(t, item.Links)
	assert.NotNil(t, item.Assets)
}

func TestProperties_MarshalFlattens(t *testing.T) {
	props := Properties{Datetime: "2023-01-01T00:00:00Z"}
	props.Set("foo", "bar")
	props.Set("eo:cloud_cover", 12.5)

	encoded, err := json.Marshal(props)
	require.NoError(t, err)
	assert.JSONEq(t, `{"datetime":"2023-01-01T00:00:00Z","foo":"bar","eo:cloud_cover":12.5}`, string(encoded))
}

func TestProperties_UnmarshalSplitsDatetime(t *testing.T) {
	var props Properties
	require.NoError(t, json.Unmarshal([]byte(`{"datetime":"2023-01-01T00:00:00Z","foo":"bar"}`), &props))

	assert.Equal(t, "2023-01-01T00:00:00Z", props.Datetime)
	foo, ok := props.Get("foo")
	assert.True(t, ok)
	assert.Equal(t, "bar", foo)
	_, ok = props.Get("datetime")
	assert.False(t, ok, "datetime should not be duplicated into Extra")
}

func TestItem_JSONRoundTrip(t *testing.T) {
	item := NewItem("an-id")
	item.Collection = "collection-id"
	item.Geometry = NewPoint(-105.1019, 40.1672)
	item.Properties.Set("foo", "bar")

	encoded, err := json.Marshal(item)
	require.NoError(t, err)

	var decoded Item
	require.NoError(t, json.Unmarshal(encoded, &decoded))

	assert.Equal(t, item.ID, decoded.ID)
	assert.Equal(t, item.Collection, decoded.Collection)
	assert.Equal(t, item.Properties.Datetime, decoded.Properties.Datetime)
	foo, ok := decoded.Properties.Get("foo")
	assert.True(t, ok)
	assert.Equal(t, "bar", foo)
	require.NotNil(t, decoded.Geometry)
	assert.Equal(t, "Point", decoded.Geometry.Type)
}

func TestItem_EmptyPropertiesEncodeAsObject(t *testing.T) {
	encoded, err := json.Marshal(Properties{})
	require.NoError(t, err)
	assert.Equal(t, "{}", string(encoded))
}

func TestNewCollection(t *testing.T) {
	collection := NewCollection("an-id", "a description")

	assert.Equal(t, "Collection", collection.Type)
	assert.Equal(t, Version, collection.StacVersion)
	assert.Equal(t, "an-id", collection.ID)
	assert.Equal(t, "a description", collection.Description)
	assert.Equal(t, "proprietary", collection.License)
	require.Len(t, collection.Extent.Spatial.Bbox, 1)
	require.Len(t, collection.Extent.Temporal.Interval, 1)
	assert.Nil(t, collection.Extent.Temporal.Interval[0][0])
}

func TestNewPolygon(t *testing.T) {
	ring := [][]float64{{-106, 39}, {-105, 39}, {-105, 41}, {-106, 41}, {-106, 39}}
	geom := NewPolygon(ring)

	encoded, err := json.Marshal(geom)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"Polygon","coordinates":[[[-106,39],[-105,39],[-105,41],[-106,41],[-106,39]]]}`, string(encoded))
}
