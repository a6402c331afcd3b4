package wplot

import "image/color"

// Orientation selects the direction an axis runs in.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Horizontal {
		return "Horizontal"
	}
	return "Vertical"
}

// Pack selects which side of the plot area an axis is stacked against.
// PackStart is the left side for vertical axes and the bottom for horizontal
// ones, PackEnd the right side and the top.
type Pack int

const (
	PackStart Pack = iota
	PackEnd
)

func (p Pack) String() string {
	if p == PackStart {
		return "PackStart"
	}
	return "PackEnd"
}

// LineStyle is a named dash pattern for strokes.
type LineStyle int

const (
	LineNone LineStyle = iota
	LineSolid
	LineDots
	LineDash
	LineLongDash
	LineDotDash
	LineLongShortDash
	LineDotDotDash
)

var lineDashes = map[LineStyle][]float64{
	LineDots:          {1.0},
	LineDash:          {2.0, 3.0},
	LineLongDash:      {4.0, 3.0},
	LineDotDash:       {1.0, 1.0, 1.0, 1.0, 4.0},
	LineLongShortDash: {4.0, 3.0, 2.0, 3.0},
	LineDotDotDash:    {1.0, 3.0, 1.0, 3.0, 4.0},
}

// Dashes returns the dash pattern for the line style, or nil for a solid or
// absent line.
func (s LineStyle) Dashes() []float64 {
	return lineDashes[s]
}

func (s LineStyle) String() string {
	switch s {
	case LineNone:
		return "None"
	case LineSolid:
		return "Solid"
	case LineDots:
		return "Dots"
	case LineDash:
		return "Dash"
	case LineLongDash:
		return "LongDash"
	case LineDotDash:
		return "DotDash"
	case LineLongShortDash:
		return "LongShortDash"
	case LineDotDotDash:
		return "DotDotDash"
	}
	return "Invalid"
}

var (
	Black     = color.RGBA{0x00, 0x00, 0x00, 0xff}
	White     = color.RGBA{0xff, 0xff, 0xff, 0xff}
	Gray      = color.RGBA{0x80, 0x80, 0x80, 0xff}
	Lightgray = color.RGBA{0xd3, 0xd3, 0xd3, 0xff}
	Darkgray  = color.RGBA{0x40, 0x40, 0x40, 0xff}
	Red       = color.RGBA{0xff, 0x00, 0x00, 0xff}
	Green     = color.RGBA{0x00, 0x80, 0x00, 0xff}
	Blue      = color.RGBA{0x00, 0x00, 0xff, 0xff}
	Yellow    = color.RGBA{0xff, 0xff, 0x00, 0xff}
	Cyan      = color.RGBA{0x00, 0xff, 0xff, 0xff}
	Magenta   = color.RGBA{0xff, 0x00, 0xff, 0xff}
	Orange    = color.RGBA{0xff, 0xa5, 0x00, 0xff}

	// Transparent is the fully transparent color.
	Transparent = color.RGBA{0x00, 0x00, 0x00, 0x00}
)

// Theme carries the colors and spacing a plot and its axes draw with. The
// zero value is unusable, use DefaultTheme.
type Theme struct {
	Background color.RGBA // canvas background
	Frame      color.RGBA // outer frame stroke
	Foreground color.RGBA // axis lines, ticks and text
	Grid       color.RGBA // grid lines in the plot area
	Border     Insets     // space between the canvas edge and the frame
	Padding    Insets     // space between the frame and the plot content
}

// DefaultTheme returns a dark theme resembling an oscilloscope face.
func DefaultTheme() *Theme {
	return &Theme{
		Background: Black,
		Frame:      Darkgray,
		Foreground: White,
		Grid:       Gray,
		Border:     Uniform(1.0),
		Padding:    Uniform(2.0),
	}
}

// LightTheme returns a white-background theme for print output.
func LightTheme() *Theme {
	return &Theme{
		Background: White,
		Frame:      Gray,
		Foreground: Black,
		Grid:       Lightgray,
		Border:     Uniform(1.0),
		Padding:    Uniform(2.0),
	}
}
