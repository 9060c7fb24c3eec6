package highlight

import (
	"math"
	"slices"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
)

// Palette holds the "#rrggbb" colors a split layout is drawn with. The
// grays sit on the line from the theme background to its foreground.
type Palette struct {
	Bg      string
	Fg      string
	Divider string // idle divider
	Title   string // panel title row
	Dim     string // filler for empty panels
	Accent  string // selected or dragged divider
	Reject  string // flashed when a drag is refused
}

var fallbackPalette = Palette{
	Bg: "#000000", Fg: "#c8c8c8",
	Divider: "#3c3c3c", Title: "#787878", Dim: "#282828",
	Accent: "#00dfff", Reject: "#c33c3c",
}

// ThemePalette derives a palette from a Chroma theme name. The result only
// depends on the theme. Unknown themes get a neutral gray palette.
func ThemePalette(theme string) Palette {
	sty, ok := styles.Registry[theme]
	if !ok {
		return fallbackPalette
	}
	base := sty.Get(chroma.Background)
	bg := chroma.ParseColour(fallbackPalette.Bg)
	fg := chroma.ParseColour(fallbackPalette.Fg)
	if base.Background.IsSet() {
		bg = base.Background
	}
	if base.Colour.IsSet() {
		fg = base.Colour
	}

	alarm := fg
	if e := sty.Get(chroma.Error); e.Colour.IsSet() {
		alarm = e.Colour
	}
	return Palette{
		Bg:      bg.String(),
		Fg:      fg.String(),
		Divider: mix(bg, fg, 0.30),
		Title:   mix(bg, fg, 0.60),
		Dim:     mix(bg, fg, 0.20),
		Accent:  vividest(sty, fg).String(),
		Reject:  mix(bg, alarm, 0.70),
	}
}

// vividest returns the most saturated token color of sty. Ties go to the
// lowest token type.
func vividest(sty *chroma.Style, fallback chroma.Colour) chroma.Colour {
	types := sty.Types()
	slices.Sort(types)

	best, bestSat := fallback, 0.0
	for _, tt := range types {
		c := sty.Get(tt).Colour
		if !c.IsSet() {
			continue
		}
		if s := saturation(c); s > bestSat {
			best, bestSat = c, s
		}
	}
	return best
}

func saturation(c chroma.Colour) float64 {
	hi := max(c.Red(), c.Green(), c.Blue())
	lo := min(c.Red(), c.Green(), c.Blue())
	if hi == 0 {
		return 0
	}
	return float64(hi-lo) / float64(hi)
}

// mix moves fraction t of the way from a to b.
func mix(a, b chroma.Colour, t float64) string {
	ch := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t))
	}
	return chroma.NewColour(
		ch(a.Red(), b.Red()),
		ch(a.Green(), b.Green()),
		ch(a.Blue(), b.Blue()),
	).String()
}
