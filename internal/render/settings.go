package render

// Offset is a label's pixel offset from the point it annotates.
type Offset struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Settings is the styling record the map renderer consumes, §4.4's
// "canvas size, padding, stop radius, line width, label font sizes and
// offsets, underlayer color/width, color palette".
type Settings struct {
	Width                float64 `json:"width" validate:"gt=0"`
	Height               float64 `json:"height" validate:"gt=0"`
	Padding              float64 `json:"padding" validate:"gte=0"`
	StopRadius           float64 `json:"stop_radius" validate:"gt=0"`
	LineWidth            float64 `json:"line_width" validate:"gt=0"`
	BusLabelFontSize     int     `json:"bus_label_font_size" validate:"gt=0"`
	BusLabelOffset       Offset  `json:"bus_label_offset"`
	StopLabelFontSize    int     `json:"stop_label_font_size" validate:"gt=0"`
	StopLabelOffset      Offset  `json:"stop_label_offset"`
	UnderlayerColor      Color   `json:"underlayer_color"`
	UnderlayerWidth      float64 `json:"underlayer_width" validate:"gte=0"`
	ColorPalette         []Color `json:"color_palette" validate:"required,min=1"`
}

// IsZero reports whether no render settings were ever populated, i.e. the
// document had no (or an empty) render_settings block.
func (s Settings) IsZero() bool {
	return len(s.ColorPalette) == 0 && s.Width == 0 && s.Height == 0
}

// PaletteColor returns the palette entry for the given bus index, rotating
// through the palette modulo its length per §4.4. An empty palette (an
// unconfigured Settings zero value, or a document that never populated
// render_settings because it never queried the map) falls back to black
// rather than dividing by zero.
func (s Settings) PaletteColor(index int) Color {
	if len(s.ColorPalette) == 0 {
		return NamedColor("black")
	}
	return s.ColorPalette[index%len(s.ColorPalette)]
}
