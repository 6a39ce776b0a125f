package triangle

// Stage identifies a shader pipeline stage.
type Stage int

const (
	StageVertex Stage = iota
	StageFragment
)

// String returns the lowercase stage name used in diagnostics.
func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	default:
		return "unknown"
	}
}

// Driver is the set of graphics calls the demo issues.
// Handles are the opaque object names returned by the driver; zero is never
// a valid object. All calls must happen on the thread that owns the context.
type Driver interface {
	// Shader objects
	CreateShader(stage Stage) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	ShaderCompiled(shader uint32) bool
	ShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	// Program objects
	CreateProgram() uint32
	AttachShader(program, shader uint32)
	LinkProgram(program uint32)
	ProgramLinked(program uint32) bool
	ProgramInfoLog(program uint32) string
	UseProgram(program uint32)
	DeleteProgram(program uint32)
	UniformLocation(program uint32, name string) int32
	Uniform4f(location int32, v0, v1, v2, v3 float32)

	// Vertex data
	CreateVertexBuffer(data []float32) uint32
	CreateVertexArray() uint32
	VertexAttribPointer(location uint32, size int32, stride int32, offset uintptr)
	EnableVertexAttribArray(location uint32)
	DeleteBuffer(buffer uint32)
	DeleteVertexArray(vao uint32)

	// Frame
	Viewport(x, y, width, height int32)
	ClearColor(r, g, b, a float32)
	Clear()
	DrawTriangles(first, count int32)
}

// Window is the platform window owning the context and its event queue.
type Window interface {
	// PollEvents processes pending platform events without blocking and
	// returns the events delivered since the previous call, in order.
	PollEvents() []Event
	ShouldClose() bool
	SetShouldClose(value bool)
	FramebufferSize() (width, height int)
	SwapBuffers()
}
