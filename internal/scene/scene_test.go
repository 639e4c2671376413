package scene

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"donut/internal/linalg"
	"donut/internal/transform"
)

func TestDefaultViewport(t *testing.T) {
	v := DefaultViewport()
	require.NoError(t, v.Validate())
	assert.Equal(t, -120.0, v.EyeZ())
	assert.Equal(t, 50, v.Size().W)
	assert.Equal(t, 50, v.Size().H)
}

func TestValidateRejectsDegenerateViewport(t *testing.T) {
	cases := map[string]Viewport{
		"zero width":      {Width: 0, Height: 10, EyeDistance: 1},
		"negative height": {Width: 10, Height: -1, EyeDistance: 1},
		"zero eye":        {Width: 10, Height: 10, EyeDistance: 0},
		"negative eye":    {Width: 10, Height: 10, EyeDistance: -5},
	}
	for name, v := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := New(v, DefaultSpin())
			assert.ErrorIs(t, err, ErrInvalidViewport)
		})
	}
}

func TestAnglesArePureFunctionOfElapsed(t *testing.T) {
	s, err := New(DefaultViewport(), DefaultSpin())
	require.NoError(t, err)

	x, y, z := s.Angles(1500 * time.Millisecond)
	assert.InDelta(t, 4.5, x, 1e-12)
	assert.InDelta(t, 1.5, y, 1e-12)
	assert.InDelta(t, 3.0, z, 1e-12)

	// Asking for earlier times afterwards gives the same answer as before.
	x0, y0, z0 := s.Angles(0)
	assert.Zero(t, x0)
	assert.Zero(t, y0)
	assert.Zero(t, z0)
	x2, _, _ := s.Angles(1500 * time.Millisecond)
	assert.Equal(t, x, x2)
}

func TestRotationMatchesTransform(t *testing.T) {
	s, err := New(DefaultViewport(), Spin{X: 0.5, Y: -1, Z: 2})
	require.NoError(t, err)
	assert.Equal(t, linalg.Identity3(), s.Rotation(0))
	assert.Equal(t, transform.Rotation(1, -2, 4), s.Rotation(2*time.Second))
}

func TestDefaultLightIsUnit(t *testing.T) {
	assert.InDelta(t, 1, linalg.Norm(DefaultLight()), 1e-12)
}
