// Package respond serializes query results into the output document
// shapes §6 defines, mirroring the response-struct-then-json.Marshal
// idiom of the teacher's internal/api/handlers.go but without an HTTP
// framework in front of it: the process writes one JSON array to stdout.
package respond

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/passbi/transitcat/internal/catalogue"
	"github.com/passbi/transitcat/internal/decode"
	"github.com/passbi/transitcat/internal/models"
	"github.com/passbi/transitcat/internal/render"
	"github.com/passbi/transitcat/internal/routing"
)

type notFoundResponse struct {
	RequestID    int    `json:"request_id"`
	ErrorMessage string `json:"error_message"`
}

type busResponse struct {
	RequestID       int      `json:"request_id"`
	Curvature       *float64 `json:"curvature,omitempty"`
	RouteLength     float64  `json:"route_length"`
	StopCount       int      `json:"stop_count"`
	UniqueStopCount int      `json:"unique_stop_count"`
}

type stopResponse struct {
	RequestID int      `json:"request_id"`
	Buses     []string `json:"buses"`
}

type mapResponse struct {
	RequestID int    `json:"request_id"`
	Map       string `json:"map"`
}

type routeItemResponse struct {
	Type      string  `json:"type"`
	StopName  string  `json:"stop_name,omitempty"`
	Bus       string  `json:"bus,omitempty"`
	SpanCount int     `json:"span_count,omitempty"`
	Time      float64 `json:"time"`
}

type routeResponse struct {
	RequestID int                 `json:"request_id"`
	TotalTime float64             `json:"total_time"`
	Items     []routeItemResponse `json:"items"`
}

const notFoundMessage = "not found"

// Answer builds the response object for one query against the frozen
// catalogue and graph. The render settings are only consulted for Map
// queries, so a document that never queries the map never pays for
// rendering it. routeMaxItems caps the itinerary legs returned for a
// Route query (0 = unlimited), an operational sanity valve rather than
// anything the spec's query semantics require.
func Answer(cat *catalogue.Catalogue, graph *routing.Graph, settings render.Settings, q decode.Query, routeMaxItems int) interface{} {
	switch q.Type {
	case decode.QueryBus:
		return answerBus(cat, q)
	case decode.QueryStop:
		return answerStop(cat, q)
	case decode.QueryMap:
		return mapResponse{RequestID: q.ID, Map: render.Render(cat, settings)}
	case decode.QueryRoute:
		return answerRoute(graph, q, routeMaxItems)
	default:
		return notFoundResponse{RequestID: q.ID, ErrorMessage: notFoundMessage}
	}
}

func answerBus(cat *catalogue.Catalogue, q decode.Query) interface{} {
	stats, ok := cat.GetBusStats(q.Name)
	if !ok {
		return notFoundResponse{RequestID: q.ID, ErrorMessage: notFoundMessage}
	}
	resp := busResponse{
		RequestID:       q.ID,
		RouteLength:     stats.RoadLength,
		StopCount:       stats.StopsOnRoute,
		UniqueStopCount: stats.UniqueStops,
	}
	if stats.CurvatureValid {
		resp.Curvature = &stats.Curvature
	}
	return resp
}

func answerStop(cat *catalogue.Catalogue, q decode.Query) interface{} {
	status, buses := cat.GetStopBuses(q.Name)
	if status == catalogue.StopNotFound {
		return notFoundResponse{RequestID: q.ID, ErrorMessage: notFoundMessage}
	}
	if buses == nil {
		buses = []string{}
	}
	return stopResponse{RequestID: q.ID, Buses: buses}
}

func answerRoute(graph *routing.Graph, q decode.Query, maxItems int) interface{} {
	result := graph.FindRoute(q.From, q.To)
	if !result.Found {
		return notFoundResponse{RequestID: q.ID, ErrorMessage: notFoundMessage}
	}

	legs := result.Items
	if maxItems > 0 && len(legs) > maxItems {
		legs = legs[:maxItems]
	}

	items := make([]routeItemResponse, len(legs))
	for i, item := range legs {
		items[i] = routeItemFrom(item)
	}
	return routeResponse{RequestID: q.ID, TotalTime: result.TotalTime, Items: items}
}

func routeItemFrom(item models.RouteItem) routeItemResponse {
	if item.Kind == models.Wait {
		return routeItemResponse{Type: "Wait", StopName: item.StopName, Time: item.Time}
	}
	return routeItemResponse{Type: "Bus", Bus: item.BusName, SpanCount: item.SpanCount, Time: item.Time}
}

// WriteAll marshals every response in request order as a single JSON
// array and writes it to w.
func WriteAll(w io.Writer, responses []interface{}) error {
	enc := json.NewEncoder(w)
	if err := enc.Encode(responses); err != nil {
		return fmt.Errorf("respond: encoding output document: %w", err)
	}
	return nil
}
