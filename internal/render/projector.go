package render

import "github.com/passbi/transitcat/internal/models"

const projectorEpsilon = 1e-6

// point is a projected pixel coordinate.
type point struct {
	X, Y float64
}

// projector maps geographic coordinates onto the canvas, the same
// min/max-longitude-and-latitude linear projection the original renderer
// this package supplements uses: scale by whichever axis is tighter, flip
// latitude since SVG y grows downward.
type projector struct {
	minLon, maxLat float64
	zoom           float64
	padding        float64
}

func newProjector(coords []models.Coordinate, width, height, padding float64) projector {
	if len(coords) == 0 {
		return projector{padding: padding}
	}

	minLon, maxLon := coords[0].Lng, coords[0].Lng
	minLat, maxLat := coords[0].Lat, coords[0].Lat
	for _, c := range coords[1:] {
		if c.Lng < minLon {
			minLon = c.Lng
		}
		if c.Lng > maxLon {
			maxLon = c.Lng
		}
		if c.Lat < minLat {
			minLat = c.Lat
		}
		if c.Lat > maxLat {
			maxLat = c.Lat
		}
	}

	var widthZoom, heightZoom float64
	haveWidthZoom := maxLon-minLon > projectorEpsilon
	haveHeightZoom := maxLat-minLat > projectorEpsilon
	if haveWidthZoom {
		widthZoom = (width - 2*padding) / (maxLon - minLon)
	}
	if haveHeightZoom {
		heightZoom = (height - 2*padding) / (maxLat - minLat)
	}

	var zoom float64
	switch {
	case haveWidthZoom && haveHeightZoom:
		zoom = min(widthZoom, heightZoom)
	case haveWidthZoom:
		zoom = widthZoom
	case haveHeightZoom:
		zoom = heightZoom
	}

	return projector{minLon: minLon, maxLat: maxLat, zoom: zoom, padding: padding}
}

func (p projector) project(c models.Coordinate) point {
	return point{
		X: (c.Lng-p.minLon)*p.zoom + p.padding,
		Y: (p.maxLat-c.Lat)*p.zoom + p.padding,
	}
}
