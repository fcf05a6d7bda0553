package render

import (
	"encoding/json"
	"fmt"
)

// Color is one entry of the render palette. Per §4.4/§6 a color may arrive
// over the wire as a bare string ("red"), an RGB triple, or an RGBA quad;
// String renders whichever form was decoded back to its SVG textual form.
type Color struct {
	named   string
	r, g, b uint8
	a       float64
	hasA    bool
	isRGB   bool
}

// NamedColor wraps a CSS color keyword ("black", "white", ...).
func NamedColor(name string) Color {
	return Color{named: name}
}

// RGBColor builds an opaque rgb(...) color.
func RGBColor(r, g, b uint8) Color {
	return Color{r: r, g: g, b: b, isRGB: true}
}

// RGBAColor builds a translucent rgba(...) color.
func RGBAColor(r, g, b uint8, a float64) Color {
	return Color{r: r, g: g, b: b, a: a, hasA: true, isRGB: true}
}

// String renders the SVG attribute value for this color.
func (c Color) String() string {
	if !c.isRGB {
		return c.named
	}
	if c.hasA {
		return fmt.Sprintf("rgba(%d,%d,%d,%s)", c.r, c.g, c.b, trimFloat(c.a))
	}
	return fmt.Sprintf("rgb(%d,%d,%d)", c.r, c.g, c.b)
}

func trimFloat(v float64) string {
	s := fmt.Sprintf("%g", v)
	return s
}

// UnmarshalJSON accepts the three wire forms a color may take (§6): a bare
// string, a 3-element RGB array, or a 4-element RGBA array.
func (c *Color) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		*c = NamedColor(name)
		return nil
	}

	var nums []float64
	if err := json.Unmarshal(data, &nums); err != nil {
		return fmt.Errorf("color: %w", err)
	}
	switch len(nums) {
	case 3:
		*c = RGBColor(uint8(nums[0]), uint8(nums[1]), uint8(nums[2]))
	case 4:
		*c = RGBAColor(uint8(nums[0]), uint8(nums[1]), uint8(nums[2]), nums[3])
	default:
		return fmt.Errorf("color: expected string, [r,g,b] or [r,g,b,a], got %d elements", len(nums))
	}
	return nil
}
