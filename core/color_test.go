package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlendEndpoints(t *testing.T) {
	dst := RGB{10, 20, 30}
	src := RGB{200, 100, 50}

	assert.Equal(t, dst, dst.Blend(src, 0))
	assert.Equal(t, dst, dst.Blend(src, -1))
	assert.Equal(t, src, dst.Blend(src, 1))
	assert.Equal(t, src, dst.Blend(src, 2))
	assert.Equal(t, RGB{105, 60, 40}, dst.Blend(src, 0.5))
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want RGB
	}{
		{"#2563eb", RGB{0x25, 0x63, 0xeb}},
		{"2563EB", RGB{0x25, 0x63, 0xeb}},
		{"#fff", RGB{255, 255, 255}},
	}
	for _, tt := range tests {
		got, err := ParseHex(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.Equal(t, tt.want, MustHex(tt.want.Hex()))
	}

	for _, bad := range []string{"", "#12", "#zzzzzz", "#1234567"} {
		_, err := ParseHex(bad)
		assert.Error(t, err, bad)
	}
}

func TestAreaContains(t *testing.T) {
	a := Area{X: 2, Y: 3, Width: 4, Height: 2}
	assert.True(t, a.Contains(Point{2, 3}))
	assert.True(t, a.Contains(Point{5, 4}))
	assert.False(t, a.Contains(Point{6, 4}))
	assert.False(t, a.Contains(Point{2, 5}))
	assert.False(t, a.Empty())
	assert.True(t, Area{Width: 0, Height: 3}.Empty())
}
