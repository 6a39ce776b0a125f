// Package opengl provides the OpenGL 3.3 core backend for the triangle demo.
package opengl

import (
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/go-theft-auto/triangle"
)

// Driver implements triangle.Driver with go-gl.
// gl.Init must have succeeded on the current context before any call.
type Driver struct{}

// NewDriver returns a driver for the current context.
func NewDriver() *Driver {
	return &Driver{}
}

var _ triangle.Driver = (*Driver)(nil)

func glStage(stage triangle.Stage) uint32 {
	if stage == triangle.StageFragment {
		return gl.FRAGMENT_SHADER
	}
	return gl.VERTEX_SHADER
}

// CreateShader creates a shader object.
func (d *Driver) CreateShader(stage triangle.Stage) uint32 {
	return gl.CreateShader(glStage(stage))
}

// ShaderSource replaces the shader's source text.
func (d *Driver) ShaderSource(shader uint32, source string) {
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
}

func (d *Driver) CompileShader(shader uint32) {
	gl.CompileShader(shader)
}

// ShaderCompiled reports the shader's COMPILE_STATUS.
func (d *Driver) ShaderCompiled(shader uint32) bool {
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

// ShaderInfoLog returns the shader's full info log.
func (d *Driver) ShaderInfoLog(shader uint32) string {
	var logLength int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
	if logLength <= 0 {
		return ""
	}
	log := make([]byte, logLength+1)
	gl.GetShaderInfoLog(shader, logLength, nil, &log[0])
	return gl.GoStr(&log[0])
}

func (d *Driver) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (d *Driver) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (d *Driver) AttachShader(program, shader uint32) {
	gl.AttachShader(program, shader)
}

func (d *Driver) LinkProgram(program uint32) {
	gl.LinkProgram(program)
}

// ProgramLinked reports the program's LINK_STATUS.
func (d *Driver) ProgramLinked(program uint32) bool {
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

// ProgramInfoLog returns the program's full info log.
func (d *Driver) ProgramInfoLog(program uint32) string {
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
	if logLength <= 0 {
		return ""
	}
	log := make([]byte, logLength+1)
	gl.GetProgramInfoLog(program, logLength, nil, &log[0])
	return gl.GoStr(&log[0])
}

func (d *Driver) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (d *Driver) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

// UniformLocation looks up a uniform by name; -1 if the program has no
// active uniform with that name.
func (d *Driver) UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (d *Driver) Uniform4f(location int32, v0, v1, v2, v3 float32) {
	gl.Uniform4f(location, v0, v1, v2, v3)
}

// CreateVertexBuffer uploads data into a new STATIC_DRAW array buffer and
// leaves it bound to ARRAY_BUFFER.
func (d *Driver) CreateVertexBuffer(data []float32) uint32 {
	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*int(unsafe.Sizeof(float32(0))), gl.Ptr(data), gl.STATIC_DRAW)
	return vbo
}

// CreateVertexArray creates a vertex array object and binds it.
func (d *Driver) CreateVertexArray() uint32 {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)
	return vao
}

// VertexAttribPointer describes a float attribute of the bound buffer.
func (d *Driver) VertexAttribPointer(location uint32, size int32, stride int32, offset uintptr) {
	gl.VertexAttribPointerWithOffset(location, size, gl.FLOAT, false, stride, offset)
}

func (d *Driver) EnableVertexAttribArray(location uint32) {
	gl.EnableVertexAttribArray(location)
}

func (d *Driver) DeleteBuffer(buffer uint32) {
	gl.DeleteBuffers(1, &buffer)
}

func (d *Driver) DeleteVertexArray(vao uint32) {
	gl.DeleteVertexArrays(1, &vao)
}

func (d *Driver) Viewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}

func (d *Driver) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

// Clear clears the color buffer.
func (d *Driver) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// DrawTriangles draws count vertices of the bound vertex array as
// triangles.
func (d *Driver) DrawTriangles(first, count int32) {
	gl.DrawArrays(gl.TRIANGLES, first, count)
}
