package triangle

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// DefaultUniformName is the vec4 color uniform both demo shaders declare.
const DefaultUniformName = "ourColor"

// DefaultClearColor is the background the color buffer is cleared to.
var DefaultClearColor = mgl32.Vec4{0.1, 0.1, 0.2, 1.0}

// Pulse maps elapsed seconds onto a sine wave in [0, 1].
func Pulse(t float64) float32 {
	return float32(0.5 + 0.5*math.Sin(t))
}

// UniformColor returns the green color uploaded for a pulse value.
func UniformColor(pulse float32) mgl32.Vec4 {
	return mgl32.Vec4{0, pulse, 0, 1}
}
