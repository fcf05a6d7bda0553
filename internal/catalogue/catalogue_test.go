package catalogue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/passbi/transitcat/internal/models"
)

func buildSimple() *Catalogue {
	b := NewBuilder()
	b.AddStop("A", models.Coordinate{Lat: 55.0, Lng: 37.0})
	b.AddStop("B", models.Coordinate{Lat: 55.1, Lng: 37.1})
	b.SetDistance("A", "B", 600)
	b.AddBus("1", []string{"A", "B"}, models.Linear)
	b.SetRouting(6, 40)
	return b.Freeze()
}

func TestBuilder_DistanceBeforeEndpoints(t *testing.T) {
	b := NewBuilder()
	b.SetDistance("X", "Y", 100) // neither stop exists yet
	b.AddStop("X", models.Coordinate{})
	b.AddStop("Y", models.Coordinate{})
	c := b.Freeze()

	assert.Equal(t, 100.0, c.Distance("X", "Y"))
	assert.Equal(t, 100.0, c.Distance("Y", "X")) // symmetric fallback
}

func TestBuilder_AsymmetricDistance(t *testing.T) {
	b := NewBuilder()
	b.AddStop("X", models.Coordinate{})
	b.AddStop("Y", models.Coordinate{})
	b.SetDistance("X", "Y", 100)
	b.SetDistance("Y", "X", 150)
	c := b.Freeze()

	assert.Equal(t, 100.0, c.Distance("X", "Y"))
	assert.Equal(t, 150.0, c.Distance("Y", "X"))
}

func TestBuilder_UnknownPairIsZero(t *testing.T) {
	c := NewBuilder().Freeze()
	assert.Equal(t, 0.0, c.Distance("nope", "also-nope"))
}

func TestBuilder_BusReferencingUnknownStopIsDropped(t *testing.T) {
	b := NewBuilder()
	b.AddStop("A", models.Coordinate{})
	b.AddBus("broken", []string{"A", "ghost"}, models.Linear)
	c := b.Freeze()

	_, ok := c.GetBus("broken")
	assert.False(t, ok)
	require.Len(t, b.Warnings(), 1)
}

func TestBuilder_DuplicateStopLastWriteWins(t *testing.T) {
	b := NewBuilder()
	b.AddStop("A", models.Coordinate{Lat: 1})
	b.AddStop("A", models.Coordinate{Lat: 2})
	c := b.Freeze()

	s, ok := c.GetStop("A")
	require.True(t, ok)
	assert.Equal(t, 2.0, s.Coord.Lat)
	assert.Len(t, b.Warnings(), 1)
}

func TestGetStopBuses(t *testing.T) {
	b := NewBuilder()
	b.AddStop("P", models.Coordinate{})
	b.AddStop("Q", models.Coordinate{})
	b.AddBus("a", []string{"P", "Q"}, models.Linear)
	b.AddBus("b", []string{"Q", "P", "Q"}, models.Ring)
	c := b.Freeze()

	status, buses := c.GetStopBuses("P")
	assert.Equal(t, StopHasBuses, status)
	assert.Equal(t, []string{"a", "b"}, buses)

	status, buses = c.GetStopBuses("Q")
	assert.Equal(t, StopHasBuses, status)
	assert.Equal(t, []string{"a", "b"}, buses)

	status, _ = c.GetStopBuses("missing")
	assert.Equal(t, StopNotFound, status)

	b2 := NewBuilder()
	b2.AddStop("lonely", models.Coordinate{})
	c2 := b2.Freeze()
	status, _ = c2.GetStopBuses("lonely")
	assert.Equal(t, StopNoBuses, status)
}

func TestGetBusStats_Linear(t *testing.T) {
	b := NewBuilder()
	b.AddStop("X", models.Coordinate{})
	b.AddStop("Y", models.Coordinate{})
	b.AddStop("Z", models.Coordinate{})
	b.SetDistance("X", "Y", 100)
	b.SetDistance("Y", "Z", 200)
	b.SetDistance("Z", "Y", 250)
	b.SetDistance("Y", "X", 150)
	b.AddBus("2", []string{"X", "Y", "Z"}, models.Linear)
	c := b.Freeze()

	stats, ok := c.GetBusStats("2")
	require.True(t, ok)
	assert.Equal(t, 5, stats.StopsOnRoute)
	assert.Equal(t, 3, stats.UniqueStops)
	assert.Equal(t, 700.0, stats.RoadLength)
}

func TestGetBusStats_NotFound(t *testing.T) {
	c := NewBuilder().Freeze()
	_, ok := c.GetBusStats("nope")
	assert.False(t, ok)
}

func TestGetBusStats_CurvatureOmittedWhenDegenerate(t *testing.T) {
	b := NewBuilder()
	b.AddStop("A", models.Coordinate{Lat: 1, Lng: 1})
	b.AddStop("B", models.Coordinate{Lat: 1, Lng: 1}) // identical coordinate
	b.SetDistance("A", "B", 50)
	b.AddBus("flat", []string{"A", "B"}, models.Ring)
	c := b.Freeze()

	stats, ok := c.GetBusStats("flat")
	require.True(t, ok)
	assert.False(t, stats.CurvatureValid)
}

func TestFreezePanicsOnFurtherMutation(t *testing.T) {
	b := NewBuilder()
	b.Freeze()
	assert.Panics(t, func() {
		b.AddStop("late", models.Coordinate{})
	})
}

func TestRingStopsOnRoute(t *testing.T) {
	b := NewBuilder()
	for _, name := range []string{"R1", "R2", "R3"} {
		b.AddStop(name, models.Coordinate{})
	}
	b.AddBus("ring", []string{"R1", "R2", "R3", "R1"}, models.Ring)
	c := b.Freeze()

	stats, ok := c.GetBusStats("ring")
	require.True(t, ok)
	assert.Equal(t, 4, stats.StopsOnRoute)
	assert.Equal(t, 3, stats.UniqueStops)
}

func TestRoutingParamsRoundTrip(t *testing.T) {
	c := buildSimple()
	rp := c.RoutingParams()
	assert.Equal(t, 6.0, rp.WaitTimeMinutes)
	assert.Equal(t, 40.0, rp.VelocityKMH)
}
