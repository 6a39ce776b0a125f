package triangle

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// State is the render loop lifecycle state.
type State int

const (
	StateInitializing State = iota
	StateRunning
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StateRunning:
		return "running"
	case StateTerminated:
		return "terminated"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Viewport is the rectangle the last Viewport call applied.
type Viewport struct {
	X, Y          int32
	Width, Height int32
}

// App owns the single vertex buffer, vertex array and shader program and
// drives the per-frame loop over a window.
type App struct {
	window Window
	driver Driver
	cfg    config
	log    *slog.Logger

	state       State
	vbo, vao    uint32
	program     uint32
	vertexCount int32
	viewport    Viewport
	frames      uint64
}

// New uploads the vertex data, configures its attributes and builds the
// shader program. The returned App is ready to Run.
func New(window Window, driver Driver, opts ...Option) (*App, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}
	if cfg.clock == nil {
		return nil, errors.New("triangle: nil clock")
	}
	if err := cfg.layout.Validate(cfg.vertices); err != nil {
		return nil, err
	}

	a := &App{
		window: window,
		driver: driver,
		cfg:    cfg,
		log:    cfg.logger,
		state:  StateInitializing,
	}

	a.vbo = driver.CreateVertexBuffer(cfg.vertices)
	a.vao = driver.CreateVertexArray()
	stride := cfg.layout.Stride()
	for i, attr := range cfg.layout.Attributes {
		driver.VertexAttribPointer(attr.Location, attr.Components, stride, cfg.layout.Offset(i))
		driver.EnableVertexAttribArray(attr.Location)
	}
	a.vertexCount = cfg.layout.VertexCount(cfg.vertices)

	program, err := CompileAndLink(driver, cfg.vertexPath, cfg.fragmentPath)
	if err != nil {
		driver.DeleteVertexArray(a.vao)
		driver.DeleteBuffer(a.vbo)
		return nil, fmt.Errorf("build shader program: %w", err)
	}
	a.program = program
	a.log.Info("shader program linked",
		"program", program,
		"vertex", cfg.vertexPath,
		"fragment", cfg.fragmentPath,
		"layout", cfg.layout.Name)

	w, h := window.FramebufferSize()
	a.setViewport(w, h)

	return a, nil
}

// Run renders frames until the window's close flag is set or ctx is done.
func (a *App) Run(ctx context.Context) error {
	a.state = StateRunning
	defer func() { a.state = StateTerminated }()

	for !a.window.ShouldClose() {
		if err := ctx.Err(); err != nil {
			a.log.Info("render loop cancelled", "frames", a.frames)
			return err
		}
		a.Frame()
	}

	a.log.Info("render loop finished", "frames", a.frames)
	return nil
}

// Frame processes pending events and, unless they requested close,
// draws and presents one frame. It reports whether a frame was drawn.
func (a *App) Frame() bool {
	for _, e := range a.window.PollEvents() {
		a.handleEvent(e)
	}
	if a.window.ShouldClose() {
		return false
	}

	c := a.cfg.clearColor
	a.driver.ClearColor(c[0], c[1], c[2], c[3])
	a.driver.Clear()

	a.driver.UseProgram(a.program)
	if a.cfg.uniform != "" {
		color := UniformColor(Pulse(a.cfg.clock()))
		loc := a.driver.UniformLocation(a.program, a.cfg.uniform)
		a.driver.Uniform4f(loc, color[0], color[1], color[2], color[3])
	}
	a.driver.DrawTriangles(0, a.vertexCount)

	a.window.SwapBuffers()
	a.frames++
	return true
}

func (a *App) handleEvent(e Event) {
	switch e.Kind {
	case EventFramebufferSize:
		a.setViewport(e.Width, e.Height)
	case EventKey:
		if e.Key == KeyEscape && e.Action == Press {
			a.log.Info("close requested", "key", e.Key)
			a.window.SetShouldClose(true)
		}
	}
}

func (a *App) setViewport(width, height int) {
	a.viewport = Viewport{Width: int32(width), Height: int32(height)}
	a.driver.Viewport(0, 0, int32(width), int32(height))
	a.log.Debug("viewport", "width", width, "height", height)
}

// Close releases the program, vertex array and buffer.
func (a *App) Close() {
	if a.program != 0 {
		a.driver.DeleteProgram(a.program)
		a.program = 0
	}
	if a.vao != 0 {
		a.driver.DeleteVertexArray(a.vao)
		a.vao = 0
	}
	if a.vbo != 0 {
		a.driver.DeleteBuffer(a.vbo)
		a.vbo = 0
	}
}

// State returns the lifecycle state.
func (a *App) State() State { return a.state }

// Program returns the linked program handle.
func (a *App) Program() uint32 { return a.program }

// Viewport returns the most recently applied viewport.
func (a *App) Viewport() Viewport { return a.viewport }

// Frames returns the number of frames drawn.
func (a *App) Frames() uint64 { return a.frames }
