package triangle_test

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"github.com/go-theft-auto/triangle"
)

func TestPulse(t *testing.T) {
	assert.InDelta(t, 0.5, triangle.Pulse(0), 1e-6)
	assert.InDelta(t, 1.0, triangle.Pulse(math.Pi/2), 1e-6)
	assert.InDelta(t, 0.0, triangle.Pulse(3*math.Pi/2), 1e-6)

	for t0 := -1000.0; t0 <= 1000.0; t0 += 0.37 {
		p := triangle.Pulse(t0)
		if p < 0 || p > 1 {
			t.Fatalf("Pulse(%v) = %v, outside [0,1]", t0, p)
		}
		assert.InDelta(t, 0.5+0.5*math.Sin(t0), float64(p), 1e-6)
	}
}

func TestUniformColor(t *testing.T) {
	assert.Equal(t, mgl32.Vec4{0, 0.25, 0, 1}, triangle.UniformColor(0.25))
}
