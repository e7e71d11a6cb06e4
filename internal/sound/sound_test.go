package sound

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ballworld/internal/physics"
)

func TestPitch(t *testing.T) {
	assert.Equal(t, 660.0, Pitch(physics.WallLeft))
	assert.Equal(t, 660.0, Pitch(physics.WallRight))
	assert.Equal(t, 880.0, Pitch(physics.WallTop))
	assert.Equal(t, 880.0, Pitch(physics.WallBottom))
	assert.Zero(t, Pitch(physics.WallNone))
}

func TestDisabledPlayerIsSilent(t *testing.T) {
	p, err := New(false)
	require.NoError(t, err)
	assert.False(t, p.Enabled())

	p.Bounce(physics.CollisionEvent{Wall: physics.WallLeft})
	p.Close()
}
