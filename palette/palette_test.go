package palette

import (
	"testing"

	"github.com/gookit/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReserveFor(t *testing.T) {
	assert.Equal(t, MinReserve, ReserveFor(0))
	assert.Equal(t, MinReserve, ReserveFor(250))
	assert.Equal(t, 200, ReserveFor(1000))
}

func TestNext_DistinctPerLayerAndAcrossLayers(t *testing.T) {
	p := New(40)
	seen := make(map[color.RGBColor]bool)
	for _, l := range []Layer{Water, Land} {
		for i := 0; i < 40; i++ {
			c, err := p.Next(l)
			require.NoError(t, err)
			require.False(t, seen[c], "colour %s issued twice", Hex(c))
			seen[c] = true
		}
	}
	assert.Len(t, seen, 80)
}

func TestNext_Exhaustion(t *testing.T) {
	p := New(2)
	_, err := p.Next(Water)
	require.NoError(t, err)
	_, err = p.Next(Water)
	require.NoError(t, err)
	assert.Equal(t, 0, p.Remaining(Water))

	_, err = p.Next(Water)
	assert.ErrorIs(t, err, ErrPaletteExhausted)

	// The land layer has its own reserve.
	assert.Equal(t, 2, p.Remaining(Land))
	_, err = p.Next(Land)
	assert.NoError(t, err)
}

func TestNext_SkipsClaimed(t *testing.T) {
	fresh := New(10)
	first, err := fresh.Next(Water)
	require.NoError(t, err)

	p := New(10)
	p.Claim(first)
	assert.True(t, p.Used(first))
	got, err := p.Next(Water)
	require.NoError(t, err)
	assert.NotEqual(t, first, got)
	assert.Equal(t, 9, p.Remaining(Water), "claimed colours do not count against the reserve")
}

func TestNext_DeterministicWithSeed(t *testing.T) {
	a := New(5, WithSeed(7))
	b := New(5, WithSeed(7))
	for i := 0; i < 5; i++ {
		ca, err := a.Next(Land)
		require.NoError(t, err)
		cb, err := b.Next(Land)
		require.NoError(t, err)
		assert.Equal(t, ca, cb)
	}
}

func TestNext_UnknownLayer(t *testing.T) {
	_, err := New(1).Next(Layer(9))
	assert.ErrorIs(t, err, ErrUnknownLayer)
}

func TestLayer(t *testing.T) {
	assert.Equal(t, Land, LayerOf(true))
	assert.Equal(t, Water, LayerOf(false))
	assert.Equal(t, "water", Water.String())
	assert.Equal(t, "land", Land.String())
	assert.Equal(t, "layer(5)", Layer(5).String())
}

func TestHex(t *testing.T) {
	assert.Equal(t, "#0a14ff", Hex(color.RGBColor{10, 20, 255, 0}))
	assert.Equal(t, "#000000", Hex(color.RGBColor{}))
}
