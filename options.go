package triangle

import (
	"log/slog"
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// Clock returns elapsed seconds since some fixed origin.
type Clock func() float64

// Option configures an App.
type Option func(*config)

type config struct {
	layout       VertexLayout
	vertices     []float32
	vertexPath   string
	fragmentPath string
	clearColor   mgl32.Vec4
	uniform      string
	clock        Clock
	logger       *slog.Logger
}

func defaultConfig() config {
	start := time.Now()
	return config{
		layout:       PositionColorLayout,
		vertices:     TrianglePositionColors,
		vertexPath:   DefaultVertexShaderPath,
		fragmentPath: DefaultFragmentShaderPath,
		clearColor:   DefaultClearColor,
		uniform:      DefaultUniformName,
		clock:        func() float64 { return time.Since(start).Seconds() },
		logger:       slog.Default(),
	}
}

// WithLayout sets the vertex layout and the data uploaded with it.
func WithLayout(layout VertexLayout, vertices []float32) Option {
	return func(c *config) {
		c.layout = layout
		c.vertices = vertices
	}
}

// WithShaderPaths sets the vertex and fragment shader files.
func WithShaderPaths(vertex, fragment string) Option {
	return func(c *config) {
		c.vertexPath = vertex
		c.fragmentPath = fragment
	}
}

// WithClearColor sets the background color.
func WithClearColor(color mgl32.Vec4) Option {
	return func(c *config) { c.clearColor = color }
}

// WithUniform sets the name of the color uniform updated every frame.
// An empty name disables the uniform update.
func WithUniform(name string) Option {
	return func(c *config) { c.uniform = name }
}

// WithClock sets the time source driving the uniform.
func WithClock(clock Clock) Option {
	return func(c *config) { c.clock = clock }
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}
