// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package charts

import (
	"fmt"
	"math"
	"strconv"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// RGBA is a CSS style colour; A is the opacity in [0, 1].
type RGBA struct {
	R, G, B uint8
	A       float64
}

func (c RGBA) String() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, strconv.FormatFloat(c.A, 'f', -1, 64))
}

// Drawing converts the colour for the chart renderer.
func (c RGBA) Drawing() drawing.Color {
	a := math.Round(math.Max(0, math.Min(1, c.A)) * 255)
	return drawing.Color{R: c.R, G: c.G, B: c.B, A: uint8(a)}
}

// PaletteKind says how a ColorSpec colours bars.
type PaletteKind int

const (
	// PaletteUnset leaves the choice to the defaults.
	PaletteUnset PaletteKind = iota
	PaletteSingle
	PaletteList
)

// ColorSpec is either one colour for every bar or a list of colours
// cycled across the bars.
type ColorSpec struct {
	Kind   PaletteKind
	Single RGBA
	List   []RGBA
}

func SingleColor(c RGBA) ColorSpec {
	return ColorSpec{Kind: PaletteSingle, Single: c}
}

func ColorList(colors ...RGBA) ColorSpec {
	return ColorSpec{Kind: PaletteList, List: colors}
}

// IsUnset reports whether s carries no usable colour.
func (s ColorSpec) IsUnset() bool {
	switch s.Kind {
	case PaletteSingle:
		return false
	case PaletteList:
		return len(s.List) == 0
	default:
		return true
	}
}

// At returns the colour of bar i. List palettes wrap around, so bar i gets
// List[i % len(List)].
func (s ColorSpec) At(i int) RGBA {
	if s.Kind == PaletteList && len(s.List) > 0 {
		if i < 0 {
			i = -i
		}
		return s.List[i%len(s.List)]
	}
	return s.Single
}

// ResolveColors returns overrides when they carry a colour, defaults otherwise.
func ResolveColors(defaults, overrides ColorSpec) ColorSpec {
	if overrides.IsUnset() {
		return defaults
	}
	return overrides
}

// DefaultColors is the bar colour used when a chart has no override.
var DefaultColors = SingleColor(RGBA{R: 54, G: 162, B: 235, A: 0.5})

// Fixed palettes of the ballot charts
var (
	BallotStatusPalette = ColorList(
		RGBA{75, 192, 192, 0.5},  // teal
		RGBA{255, 99, 132, 0.5},  // red
		RGBA{255, 206, 86, 0.5},  // yellow
		RGBA{153, 102, 255, 0.5}, // purple
	)
	VoteMethodPalette = ColorList(
		RGBA{54, 162, 235, 0.5}, // blue
		RGBA{255, 159, 64, 0.5}, // orange
		RGBA{75, 192, 192, 0.5}, // teal
		RGBA{255, 99, 132, 0.5}, // red
	)
	BallotTypePalette = ColorList(
		RGBA{153, 102, 255, 0.5}, // purple
		RGBA{255, 206, 86, 0.5},  // yellow
		RGBA{75, 192, 192, 0.5},  // teal
		RGBA{255, 99, 132, 0.5},  // red
	)
)
