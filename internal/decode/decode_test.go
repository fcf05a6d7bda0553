package decode

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/passbi/transitcat/internal/catalogue"
)

const sampleDocument = `{
	"base_requests": [
		{"type": "Bus", "name": "1", "stops": ["A", "B"], "is_roundtrip": false},
		{"type": "Stop", "name": "A", "latitude": 55.0, "longitude": 37.0, "road_distances": {"B": 600}},
		{"type": "Stop", "name": "B", "latitude": 55.1, "longitude": 37.1}
	],
	"render_settings": {
		"width": 600, "height": 400, "padding": 50,
		"stop_radius": 5, "line_width": 14,
		"bus_label_font_size": 20, "bus_label_offset": {"x": 7, "y": 15},
		"stop_label_font_size": 18, "stop_label_offset": {"x": 7, "y": -3},
		"underlayer_color": "white", "underlayer_width": 3,
		"color_palette": ["green", [255, 160, 0]]
	},
	"routing_settings": {"bus_wait_time": 6, "bus_velocity": 40},
	"stat_requests": [
		{"id": 1, "type": "Bus", "name": "1"},
		{"id": 2, "type": "Route", "from": "A", "to": "B"}
	]
}`

func TestDecode_OrdersStopsBeforeBuses(t *testing.T) {
	b := catalogue.NewBuilder()
	doc, err := Decode(strings.NewReader(sampleDocument), b, zap.NewNop())
	require.NoError(t, err)

	cat := b.Freeze()
	bus, ok := cat.GetBus("1")
	require.True(t, ok)
	assert.Equal(t, []string{"A", "B"}, bus.Route)
	assert.Equal(t, 600.0, cat.Distance("A", "B"))

	require.Len(t, doc.Queries, 2)
	assert.Equal(t, QueryBus, doc.Queries[0].Type)
	assert.Equal(t, QueryRoute, doc.Queries[1].Type)
	assert.Len(t, doc.RenderSettings.ColorPalette, 2)
}

func TestDecode_MalformedTopLevelIsFatal(t *testing.T) {
	b := catalogue.NewBuilder()
	_, err := Decode(strings.NewReader("not json"), b, zap.NewNop())
	assert.Error(t, err)
}

func TestDecode_InvalidRoutingSettingsIsFatal(t *testing.T) {
	b := catalogue.NewBuilder()
	_, err := Decode(strings.NewReader(`{"routing_settings": {"bus_wait_time": -1, "bus_velocity": 0}}`), b, zap.NewNop())
	assert.Error(t, err)
}

func TestDecode_InvalidStopEntryIsDroppedNotFatal(t *testing.T) {
	b := catalogue.NewBuilder()
	doc := `{
		"base_requests": [
			{"type": "Stop", "name": "bad", "latitude": 999, "longitude": 0},
			{"type": "Stop", "name": "ok", "latitude": 1, "longitude": 1}
		],
		"routing_settings": {"bus_wait_time": 1, "bus_velocity": 10},
		"stat_requests": []
	}`
	_, err := Decode(strings.NewReader(doc), b, zap.NewNop())
	require.NoError(t, err)

	cat := b.Freeze()
	_, ok := cat.GetStop("bad")
	assert.False(t, ok)
	_, ok = cat.GetStop("ok")
	assert.True(t, ok)
}

func TestDecode_InvalidStatRequestIsDroppedNotFatal(t *testing.T) {
	b := catalogue.NewBuilder()
	doc := `{
		"routing_settings": {"bus_wait_time": 1, "bus_velocity": 10},
		"stat_requests": [
			{"id": 1, "type": "Bogus"},
			{"id": 2, "type": "Stop", "name": "A"}
		]
	}`
	result, err := Decode(strings.NewReader(doc), b, zap.NewNop())
	require.NoError(t, err)
	require.Len(t, result.Queries, 1)
	assert.Equal(t, 2, result.Queries[0].ID)
}
