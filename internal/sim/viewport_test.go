package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ballworld/internal/physics"
)

func TestFitViewport(t *testing.T) {
	tests := []struct {
		name                  string
		aw, ah, sw, sh, scale float64
	}{
		{"wide surface", 100, 100, 800, 400, 4},
		{"tall surface", 100, 50, 300, 900, 3},
		{"degenerate arena", 0, 50, 300, 900, 1},
		{"degenerate surface", 100, 50, 0, 900, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.scale, FitViewport(tt.aw, tt.ah, tt.sw, tt.sh).Scale)
		})
	}
}

func TestViewportArenaAndSurface(t *testing.T) {
	v := FitViewport(100, 100, 800, 400)
	w, h := v.Arena(800, 400)
	assert.Equal(t, 200.0, w)
	assert.Equal(t, 100.0, h)

	x, y := v.ToSurface(physics.V(10, 25))
	assert.Equal(t, 40.0, x)
	assert.Equal(t, 100.0, y)
}
