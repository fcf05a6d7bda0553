// Package render draws the frozen catalogue as an SVG map: bus routes as
// palette-rotated polylines, stops as labeled circles. It supplements the
// distilled spec's interface-only §4.4 with the renderer the system this
// was distilled from actually ships (map_renderer.cpp), translated into
// idiomatic Go rather than carried over line for line.
package render

import (
	"sort"

	"github.com/passbi/transitcat/internal/catalogue"
	"github.com/passbi/transitcat/internal/models"
)

// Render draws every non-empty bus route and every stop it touches into an
// SVG document, per the policy in §4.4: non-empty buses only, palette
// rotated by lexicographic bus index, linear-route endpoint labels drawn
// at both ends when they differ.
func Render(cat *catalogue.Catalogue, settings Settings) string {
	buses := nonEmptyBuses(cat)
	stops := activeStops(cat, buses)

	coords := make([]models.Coordinate, len(stops))
	for i, s := range stops {
		coords[i] = s.Coord
	}
	proj := newProjector(coords, settings.Width, settings.Height, settings.Padding)

	doc := &document{}
	drawRoutes(doc, cat, buses, settings, proj)
	drawRouteLabels(doc, cat, buses, settings, proj)
	drawStopCircles(doc, stops, settings, proj)
	drawStopLabels(doc, stops, settings, proj)

	return doc.render(settings.Width, settings.Height)
}

func nonEmptyBuses(cat *catalogue.Catalogue) []models.Bus {
	all := cat.BusesSorted()
	out := make([]models.Bus, 0, len(all))
	for _, b := range all {
		if len(b.Route) > 0 {
			out = append(out, b)
		}
	}
	return out
}

func activeStops(cat *catalogue.Catalogue, buses []models.Bus) []models.Stop {
	seen := make(map[string]models.Stop)
	for _, bus := range buses {
		for _, name := range bus.Route {
			if _, ok := seen[name]; ok {
				continue
			}
			if s, ok := cat.GetStop(name); ok {
				seen[name] = s
			}
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)

	stops := make([]models.Stop, len(names))
	for i, name := range names {
		stops[i] = seen[name]
	}
	return stops
}

// routePoints returns the full polyline traversal for a bus, per §4.4:
// the route as given for a ring, forward then backward (excluding the
// repeated turnaround stop) for a linear bus.
func routePoints(cat *catalogue.Catalogue, bus models.Bus, proj projector) []point {
	pts := make([]point, 0, len(bus.Route)*2)
	for _, name := range bus.Route {
		if s, ok := cat.GetStop(name); ok {
			pts = append(pts, proj.project(s.Coord))
		}
	}
	if bus.Kind == models.Linear {
		for i := len(bus.Route) - 2; i >= 0; i-- {
			if s, ok := cat.GetStop(bus.Route[i]); ok {
				pts = append(pts, proj.project(s.Coord))
			}
		}
	}
	return pts
}

func drawRoutes(doc *document, cat *catalogue.Catalogue, buses []models.Bus, settings Settings, proj projector) {
	for i, bus := range buses {
		doc.polyline(routePoints(cat, bus, proj), settings.PaletteColor(i), settings.LineWidth)
	}
}

func drawRouteLabels(doc *document, cat *catalogue.Catalogue, buses []models.Bus, settings Settings, proj projector) {
	for i, bus := range buses {
		color := settings.PaletteColor(i)
		label := func(stopName string) {
			s, ok := cat.GetStop(stopName)
			if !ok {
				return
			}
			doc.text(proj.project(s.Coord), settings.BusLabelOffset, settings.BusLabelFontSize, true,
				bus.Name, color, settings.UnderlayerColor, settings.UnderlayerWidth)
		}

		first := bus.Route[0]
		last := bus.Route[len(bus.Route)-1]
		label(first)
		if bus.Kind == models.Linear && first != last {
			label(last)
		}
	}
}

func drawStopCircles(doc *document, stops []models.Stop, settings Settings, proj projector) {
	for _, s := range stops {
		doc.circle(proj.project(s.Coord), settings.StopRadius, NamedColor("white"))
	}
}

func drawStopLabels(doc *document, stops []models.Stop, settings Settings, proj projector) {
	for _, s := range stops {
		doc.text(proj.project(s.Coord), settings.StopLabelOffset, settings.StopLabelFontSize, false,
			s.Name, NamedColor("black"), settings.UnderlayerColor, settings.UnderlayerWidth)
	}
}
