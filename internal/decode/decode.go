package decode

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/passbi/transitcat/internal/catalogue"
	"github.com/passbi/transitcat/internal/models"
)

var validate = validator.New()

// Decode reads the full input document from r, applies every base_requests
// mutation to b in the fixed phase order §2/§5 require (stops and their
// distances, then buses, then routing parameters), and returns the decoded
// render settings and stat_requests queries. A malformed top-level
// document or routing_settings block is fatal and returned as an error;
// individual malformed base_requests or stat_requests entries are logged
// as warnings and dropped, the same tolerance the teacher's GTFS parser
// applies per CSV row.
func Decode(r io.Reader, b *catalogue.Builder, logger *zap.Logger) (Document, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return Document{}, fmt.Errorf("decode: reading input: %w", err)
	}

	var doc rawDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return Document{}, fmt.Errorf("decode: malformed input document: %w", err)
	}
	if err := validate.Struct(doc.RoutingSettings); err != nil {
		return Document{}, fmt.Errorf("decode: invalid routing_settings: %w", err)
	}

	decodeStops(doc.BaseRequests, b, logger)
	decodeBuses(doc.BaseRequests, b, logger)
	b.SetRouting(doc.RoutingSettings.BusWaitTime, doc.RoutingSettings.BusVelocity)

	queries := decodeQueries(doc.StatRequests, logger)
	for _, q := range queries {
		if q.Type == QueryMap && doc.RenderSettings.IsZero() {
			logger.Warn("Map query present but render_settings was never populated", zap.Int("id", q.ID))
		}
	}

	logger.Info("decoded input document",
		zap.Int("stop_count", b.StopCount()),
		zap.Int("bus_count", b.BusCount()),
		zap.Int("query_count", len(queries)),
	)

	return Document{Queries: queries, RenderSettings: doc.RenderSettings}, nil
}

func decodeStops(entries []json.RawMessage, b *catalogue.Builder, logger *zap.Logger) {
	for _, entry := range entries {
		var head rawBaseRequest
		if err := json.Unmarshal(entry, &head); err != nil || head.Type != StopRequestType {
			continue
		}

		var stop rawStop
		if err := json.Unmarshal(entry, &stop); err != nil {
			logger.Warn("dropping malformed stop entry", zap.Error(err))
			continue
		}
		if err := validate.Struct(stop); err != nil {
			logger.Warn("dropping invalid stop entry", zap.String("name", stop.Name), zap.Error(err))
			continue
		}

		b.AddStop(stop.Name, models.Coordinate{Lat: stop.Latitude, Lng: stop.Longitude})
		for to, meters := range stop.RoadDistances {
			b.SetDistance(stop.Name, to, meters)
		}
	}
}

func decodeBuses(entries []json.RawMessage, b *catalogue.Builder, logger *zap.Logger) {
	for _, entry := range entries {
		var head rawBaseRequest
		if err := json.Unmarshal(entry, &head); err != nil || head.Type != BusRequestType {
			continue
		}

		var bus rawBus
		if err := json.Unmarshal(entry, &bus); err != nil {
			logger.Warn("dropping malformed bus entry", zap.Error(err))
			continue
		}
		if err := validate.Struct(bus); err != nil {
			logger.Warn("dropping invalid bus entry", zap.String("name", bus.Name), zap.Error(err))
			continue
		}

		kind := models.Linear
		if bus.IsRoundtrip {
			kind = models.Ring
		}
		b.AddBus(bus.Name, bus.Stops, kind)
	}
}

func decodeQueries(entries []rawStatRequest, logger *zap.Logger) []Query {
	queries := make([]Query, 0, len(entries))
	for _, e := range entries {
		if err := validate.Struct(e); err != nil {
			logger.Warn("dropping invalid stat_request", zap.Int("id", e.ID), zap.Error(err))
			continue
		}
		queries = append(queries, Query{ID: e.ID, Type: e.Type, Name: e.Name, From: e.From, To: e.To})
	}
	return queries
}
