package triangle_test

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/triangle"
)

const (
	validVertexSource = `#version 330 core
layout (location = 0) in vec3 aPos;
void main() { gl_Position = vec4(aPos, 1.0); }
`
	validFragmentSource = `#version 330 core
out vec4 FragColor;
uniform vec4 ourColor;
void main() { FragColor = ourColor; }
`
	// brokenSource marks a source the fake driver refuses to compile.
	brokenSource = "#version 330 core\nvoid main() { syntax error }\n"
)

type attribCall struct {
	Location uint32
	Size     int32
	Stride   int32
	Offset   uintptr
}

type uniformCall struct {
	Location   int32
	V0, V1, V2 float32
	V3         float32
}

// fakeDriver records every call and compiles anything that does not
// contain "syntax error". Linking fails when failLink is set.
type fakeDriver struct {
	next     uint32
	calls    []string
	sources  map[uint32]string
	failLink bool

	deletedShaders  []uint32
	deletedPrograms []uint32
	deletedBuffers  []uint32
	deletedArrays   []uint32
	attached        map[uint32][]uint32

	buffer     []float32
	attribs    []attribCall
	enabled    []uint32
	viewports  []triangle.Viewport
	clearColor [4]float32
	clears     int
	used       []uint32
	lookups    []string
	uniforms   []uniformCall
	draws      []int32
}

func newFakeDriver() *fakeDriver {
	return &fakeDriver{
		sources:  make(map[uint32]string),
		attached: make(map[uint32][]uint32),
	}
}

func (d *fakeDriver) handle() uint32 {
	d.next++
	return d.next
}

func (d *fakeDriver) record(name string) { d.calls = append(d.calls, name) }

func (d *fakeDriver) count(name string) int {
	n := 0
	for _, c := range d.calls {
		if c == name {
			n++
		}
	}
	return n
}

func (d *fakeDriver) CreateShader(stage triangle.Stage) uint32 {
	d.record("CreateShader")
	return d.handle()
}

func (d *fakeDriver) ShaderSource(shader uint32, source string) {
	d.record("ShaderSource")
	d.sources[shader] = source
}

func (d *fakeDriver) CompileShader(shader uint32) { d.record("CompileShader") }

func (d *fakeDriver) ShaderCompiled(shader uint32) bool {
	return !strings.Contains(d.sources[shader], "syntax error")
}

func (d *fakeDriver) ShaderInfoLog(shader uint32) string {
	if d.ShaderCompiled(shader) {
		return ""
	}
	return "0:2(15): error: syntax error, unexpected IDENTIFIER"
}

func (d *fakeDriver) DeleteShader(shader uint32) {
	d.record("DeleteShader")
	d.deletedShaders = append(d.deletedShaders, shader)
}

func (d *fakeDriver) CreateProgram() uint32 {
	d.record("CreateProgram")
	return d.handle()
}

func (d *fakeDriver) AttachShader(program, shader uint32) {
	d.record("AttachShader")
	d.attached[program] = append(d.attached[program], shader)
}

func (d *fakeDriver) LinkProgram(program uint32) { d.record("LinkProgram") }

func (d *fakeDriver) ProgramLinked(program uint32) bool { return !d.failLink }

func (d *fakeDriver) ProgramInfoLog(program uint32) string {
	if d.failLink {
		return "error: vertexColor not written by vertex shader"
	}
	return ""
}

func (d *fakeDriver) UseProgram(program uint32) { d.used = append(d.used, program) }

func (d *fakeDriver) DeleteProgram(program uint32) {
	d.record("DeleteProgram")
	d.deletedPrograms = append(d.deletedPrograms, program)
}

func (d *fakeDriver) UniformLocation(program uint32, name string) int32 {
	d.lookups = append(d.lookups, name)
	return 7
}

func (d *fakeDriver) Uniform4f(location int32, v0, v1, v2, v3 float32) {
	d.uniforms = append(d.uniforms, uniformCall{location, v0, v1, v2, v3})
}

func (d *fakeDriver) CreateVertexBuffer(data []float32) uint32 {
	d.record("CreateVertexBuffer")
	d.buffer = append([]float32(nil), data...)
	return d.handle()
}

func (d *fakeDriver) CreateVertexArray() uint32 {
	d.record("CreateVertexArray")
	return d.handle()
}

func (d *fakeDriver) VertexAttribPointer(location uint32, size int32, stride int32, offset uintptr) {
	d.attribs = append(d.attribs, attribCall{location, size, stride, offset})
}

func (d *fakeDriver) EnableVertexAttribArray(location uint32) {
	d.enabled = append(d.enabled, location)
}

func (d *fakeDriver) DeleteBuffer(buffer uint32) { d.deletedBuffers = append(d.deletedBuffers, buffer) }

func (d *fakeDriver) DeleteVertexArray(vao uint32) { d.deletedArrays = append(d.deletedArrays, vao) }

func (d *fakeDriver) Viewport(x, y, width, height int32) {
	d.viewports = append(d.viewports, triangle.Viewport{X: x, Y: y, Width: width, Height: height})
}

func (d *fakeDriver) ClearColor(r, g, b, a float32) { d.clearColor = [4]float32{r, g, b, a} }

func (d *fakeDriver) Clear() { d.clears++ }

func (d *fakeDriver) DrawTriangles(first, count int32) { d.draws = append(d.draws, count) }

// fakeWindow returns one scripted batch of events per poll.
type fakeWindow struct {
	batches     [][]triangle.Event
	polls       int
	shouldClose bool
	width       int
	height      int
	swaps       int
	onSwap      func()
}

func newFakeWindow(batches ...[]triangle.Event) *fakeWindow {
	return &fakeWindow{batches: batches, width: 800, height: 600}
}

func (w *fakeWindow) PollEvents() []triangle.Event {
	defer func() { w.polls++ }()
	if w.polls < len(w.batches) {
		return w.batches[w.polls]
	}
	return nil
}

func (w *fakeWindow) ShouldClose() bool { return w.shouldClose }

func (w *fakeWindow) SetShouldClose(value bool) { w.shouldClose = value }

func (w *fakeWindow) FramebufferSize() (int, int) { return w.width, w.height }

func (w *fakeWindow) SwapBuffers() {
	w.swaps++
	if w.onSwap != nil {
		w.onSwap()
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// writeShaders writes a vertex/fragment pair into a temp dir and returns
// their paths.
func writeShaders(t *testing.T, vertex, fragment string) (string, string) {
	t.Helper()
	dir := t.TempDir()
	vp := filepath.Join(dir, "shader.vert")
	fp := filepath.Join(dir, "shader.frag")
	require.NoError(t, os.WriteFile(vp, []byte(vertex), 0o644))
	require.NoError(t, os.WriteFile(fp, []byte(fragment), 0o644))
	return vp, fp
}
