package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseHex(t *testing.T) {
	r, g, b, ok := ParseHex("#749cff")
	assert.True(t, ok)
	assert.Equal(t, [3]uint8{116, 156, 255}, [3]uint8{r, g, b})

	r, g, b, ok = ParseHex("#f00")
	assert.True(t, ok)
	assert.Equal(t, [3]uint8{255, 0, 0}, [3]uint8{r, g, b})

	for _, bad := range []string{"", "555555", "#55", "#zzzzzz", "#12345"} {
		_, _, _, ok := ParseHex(bad)
		assert.False(t, ok, bad)
	}
}

func TestFloat3(t *testing.T) {
	c, ok := Float3("#555555")
	assert.True(t, ok)
	assert.InDelta(t, 0.3333, c[0], 1e-3)
	assert.Equal(t, c[0], c[2])
}
