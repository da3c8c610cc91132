// Package palette supplies distinct cosmetic colours for regions, one hue
// band per layer (water, land).
//
// Colours are drawn deterministically: the hue walks the layer's band by the
// golden-ratio conjugate, with saturation and lightness modulated so that
// neighbouring draws stay visually distinct. Every colour handed out, or
// claimed by a caller, is never handed out again.
//
// Each layer has a finite reserve. Once a layer has issued reserve colours,
// Next returns ErrPaletteExhausted instead of silently recycling.
package palette

import (
	"errors"
	"fmt"
	"math"

	"github.com/gookit/color"
)

// ErrPaletteExhausted indicates the layer has no unused colours left.
var ErrPaletteExhausted = errors.New("palette: colour reserve exhausted")

// ErrUnknownLayer indicates a Layer value outside Water/Land.
var ErrUnknownLayer = errors.New("palette: unknown layer")

// Layer selects the hue band a colour is drawn from.
type Layer int

const (
	// Water draws cyan to blue hues.
	Water Layer = iota
	// Land draws orange to green hues.
	Land
)

// LayerOf maps a land flag to its Layer.
func LayerOf(isLand bool) Layer {
	if isLand {
		return Land
	}

	return Water
}

func (l Layer) String() string {
	switch l {
	case Water:
		return "water"
	case Land:
		return "land"
	default:
		return fmt.Sprintf("layer(%d)", int(l))
	}
}

const (
	// MinReserve is the smallest reserve ReserveFor ever returns.
	MinReserve = 50
	// goldenConjugate spreads successive hues evenly around a band.
	goldenConjugate = 0.6180339887498949
	// attemptsPerColour bounds retries when a candidate collides after
	// quantisation to 8-bit channels.
	attemptsPerColour = 16
)

// band is a closed hue interval in [0,1].
type band struct{ lo, hi float64 }

var bands = map[Layer]band{
	Water: {lo: 0.50, hi: 0.70},
	Land:  {lo: 0.08, hi: 0.40},
}

// ReserveFor returns the default per-layer reserve for a map of the given
// number of cells: max(MinReserve, cells/5).
func ReserveFor(cells int) int {
	if r := cells / 5; r > MinReserve {
		return r
	}

	return MinReserve
}

// Option configures a Palette.
type Option func(*Palette)

// WithSeed rotates the starting hue of every layer. Palettes with the same
// reserve and seed produce the same sequence.
func WithSeed(seed int64) Option {
	return func(p *Palette) {
		p.offset = math.Mod(float64(seed)*goldenConjugate, 1)
		if p.offset < 0 {
			p.offset++
		}
	}
}

// Palette hands out unused colours per layer.
type Palette struct {
	reserve int
	offset  float64
	issued  map[Layer]int
	cursor  map[Layer]int
	used    map[color.RGBColor]struct{}
}

// New creates a Palette with reserve colours per layer. A non-positive
// reserve falls back to MinReserve.
func New(reserve int, opts ...Option) *Palette {
	if reserve <= 0 {
		reserve = MinReserve
	}
	p := &Palette{
		reserve: reserve,
		issued:  make(map[Layer]int, len(bands)),
		cursor:  make(map[Layer]int, len(bands)),
		used:    make(map[color.RGBColor]struct{}),
	}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Claim marks c as used so Next never returns it. Claimed colours do not
// count against any reserve.
func (p *Palette) Claim(c color.RGBColor) {
	p.used[c] = struct{}{}
}

// Used reports whether c was issued or claimed.
func (p *Palette) Used(c color.RGBColor) bool {
	_, ok := p.used[c]
	return ok
}

// Remaining returns how many colours the layer can still issue.
func (p *Palette) Remaining(l Layer) int {
	return p.reserve - p.issued[l]
}

// Next returns the next unused colour of the layer.
// Returns ErrPaletteExhausted once the layer reserve is spent, or when no
// distinct colour could be found in the band.
func (p *Palette) Next(l Layer) (color.RGBColor, error) {
	b, ok := bands[l]
	if !ok {
		return color.RGBColor{}, fmt.Errorf("%w: %d", ErrUnknownLayer, int(l))
	}
	if p.issued[l] >= p.reserve {
		return color.RGBColor{}, fmt.Errorf("%w: %s layer issued %d", ErrPaletteExhausted, l, p.reserve)
	}
	for attempt := 0; attempt < attemptsPerColour; attempt++ {
		c := p.candidate(l, b, p.cursor[l])
		p.cursor[l]++
		if p.Used(c) {
			continue
		}
		p.used[c] = struct{}{}
		p.issued[l]++

		return c, nil
	}

	return color.RGBColor{}, fmt.Errorf("%w: %s band saturated after %d attempts", ErrPaletteExhausted, l, attemptsPerColour)
}

// candidate computes the i-th colour of band b.
func (p *Palette) candidate(l Layer, b band, i int) color.RGBColor {
	fi := float64(i)
	hue := b.lo + frac(p.offset+fi*goldenConjugate)*(b.hi-b.lo)
	sat := 0.45 + 0.45*frac(fi*0.3819660112501051+float64(l)*0.5)
	light := 0.30 + 0.40*frac(fi*0.7548776662466927+0.25)

	return color.HSL(hue, sat, light)
}

func frac(x float64) float64 { return x - math.Floor(x) }

// Hex formats c as #rrggbb.
func Hex(c color.RGBColor) string {
	return fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2])
}
