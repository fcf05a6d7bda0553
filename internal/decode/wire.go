package decode

import (
	"encoding/json"

	"github.com/passbi/transitcat/internal/render"
)

// rawDocument mirrors the top-level shape of §6's input document.
type rawDocument struct {
	BaseRequests    []json.RawMessage `json:"base_requests"`
	RenderSettings  render.Settings   `json:"render_settings"`
	RoutingSettings rawRouting        `json:"routing_settings" validate:"required"`
	StatRequests    []rawStatRequest  `json:"stat_requests"`
}

// rawBaseRequest is decoded first just to sniff the "type" discriminator;
// the full Stop or Bus shape is decoded from the same raw bytes once the
// type is known.
type rawBaseRequest struct {
	Type string `json:"type"`
}

type rawStop struct {
	Name          string             `json:"name" validate:"required"`
	Latitude      float64            `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude     float64            `json:"longitude" validate:"gte=-180,lte=180"`
	RoadDistances map[string]float64 `json:"road_distances"`
}

type rawBus struct {
	Name        string   `json:"name" validate:"required"`
	Stops       []string `json:"stops" validate:"required,min=1"`
	IsRoundtrip bool     `json:"is_roundtrip"`
}

type rawRouting struct {
	BusWaitTime float64 `json:"bus_wait_time" validate:"gte=0"`
	BusVelocity float64 `json:"bus_velocity" validate:"gt=0"`
}

type rawStatRequest struct {
	ID   int    `json:"id"`
	Type string `json:"type" validate:"required,oneof=Bus Stop Map Route"`
	Name string `json:"name,omitempty"`
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`
}
