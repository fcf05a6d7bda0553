// Package decode parses the input document (§6) into catalogue mutations
// and a typed, ordered list of queries. It follows the teacher's gtfs
// parser idiom — decode one record at a time, validate it, and either
// apply it or record a warning and move on — generalized from CSV rows to
// a single JSON document's heterogeneous arrays.
package decode

import "github.com/passbi/transitcat/internal/render"

// StopRequestType and BusRequestType are the two base_requests entry
// kinds (§6).
const (
	StopRequestType = "Stop"
	BusRequestType  = "Bus"
)

// Query kinds for stat_requests (§6).
const (
	QueryBus  = "Bus"
	QueryStop = "Stop"
	QueryMap  = "Map"
	QueryRoute = "Route"
)

// Query is one decoded entry of stat_requests, carrying whichever of
// Name/From/To its Type uses.
type Query struct {
	ID   int
	Type string
	Name string
	From string
	To   string
}

// Document is the fully decoded input: the catalogue mutations have
// already been applied to Builder, leaving only the queries and render
// settings for the dispatcher to act on.
type Document struct {
	Queries        []Query
	RenderSettings render.Settings
}
