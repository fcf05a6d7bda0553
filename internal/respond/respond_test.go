package respond

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/passbi/transitcat/internal/catalogue"
	"github.com/passbi/transitcat/internal/decode"
	"github.com/passbi/transitcat/internal/models"
	"github.com/passbi/transitcat/internal/render"
	"github.com/passbi/transitcat/internal/routing"
)

func buildFixture() (*catalogue.Catalogue, *routing.Graph) {
	b := catalogue.NewBuilder()
	b.AddStop("X", models.Coordinate{Lat: 1, Lng: 1})
	b.AddStop("Y", models.Coordinate{Lat: 1, Lng: 1})
	b.AddStop("Z", models.Coordinate{Lat: 2, Lng: 2})
	b.SetDistance("X", "Y", 100)
	b.SetDistance("Y", "Z", 200)
	b.SetDistance("Z", "Y", 250)
	b.SetDistance("Y", "X", 150)
	b.AddBus("2", []string{"X", "Y", "Z"}, models.Linear)
	b.SetRouting(6, 40)
	cat := b.Freeze()
	return cat, routing.Build(cat)
}

func TestAnswerBus_Found(t *testing.T) {
	cat, graph := buildFixture()
	resp := Answer(cat, graph, render.Settings{}, decode.Query{ID: 1, Type: decode.QueryBus, Name: "2"}, 0)
	bus, ok := resp.(busResponse)
	require.True(t, ok)
	assert.Equal(t, 1, bus.RequestID)
	assert.Equal(t, 5, bus.StopCount)
	assert.Equal(t, 3, bus.UniqueStopCount)
	assert.Equal(t, 700.0, bus.RouteLength)
}

func TestAnswerBus_CurvatureOmittedWhenDegenerate(t *testing.T) {
	b := catalogue.NewBuilder()
	b.AddStop("A", models.Coordinate{Lat: 1, Lng: 1})
	b.AddStop("B", models.Coordinate{Lat: 1, Lng: 1})
	b.SetDistance("A", "B", 50)
	b.AddBus("flat", []string{"A", "B"}, models.Ring)
	cat := b.Freeze()

	resp := Answer(cat, routing.Build(cat), render.Settings{}, decode.Query{ID: 1, Type: decode.QueryBus, Name: "flat"}, 0)
	bus, ok := resp.(busResponse)
	require.True(t, ok)
	assert.Nil(t, bus.Curvature)
}

func TestAnswerBus_NotFound(t *testing.T) {
	cat, graph := buildFixture()
	resp := Answer(cat, graph, render.Settings{}, decode.Query{ID: 9, Type: decode.QueryBus, Name: "nope"}, 0)
	nf, ok := resp.(notFoundResponse)
	require.True(t, ok)
	assert.Equal(t, "not found", nf.ErrorMessage)
}

func TestAnswerStop_Found(t *testing.T) {
	cat, graph := buildFixture()
	resp := Answer(cat, graph, render.Settings{}, decode.Query{ID: 2, Type: decode.QueryStop, Name: "Z"}, 0)
	stop, ok := resp.(stopResponse)
	require.True(t, ok)
	assert.Equal(t, []string{"2"}, stop.Buses)
}

func TestAnswerRoute_FoundShapesItems(t *testing.T) {
	cat, graph := buildFixture()
	resp := Answer(cat, graph, render.Settings{}, decode.Query{ID: 3, Type: decode.QueryRoute, From: "X", To: "Y"}, 0)
	route, ok := resp.(routeResponse)
	require.True(t, ok)
	require.Len(t, route.Items, 2)
	assert.Equal(t, "Wait", route.Items[0].Type)
	assert.Equal(t, "Bus", route.Items[1].Type)
	assert.Equal(t, "2", route.Items[1].Bus)
}

func TestAnswerRoute_ClampsToRouteMaxItems(t *testing.T) {
	cat, graph := buildFixture()
	resp := Answer(cat, graph, render.Settings{}, decode.Query{ID: 4, Type: decode.QueryRoute, From: "X", To: "Y"}, 1)
	route, ok := resp.(routeResponse)
	require.True(t, ok)
	require.Len(t, route.Items, 1)
	assert.Equal(t, "Wait", route.Items[0].Type)
}

func TestWriteAll_ProducesJSONArray(t *testing.T) {
	var buf bytes.Buffer
	err := WriteAll(&buf, []interface{}{notFoundResponse{RequestID: 1, ErrorMessage: "not found"}})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"request_id":1`)
	assert.Contains(t, buf.String(), `"error_message":"not found"`)
}
