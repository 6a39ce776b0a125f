package triangle

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Default shader locations, relative to the working directory.
const (
	DefaultVertexShaderPath   = "shaders/shader.vert"
	DefaultFragmentShaderPath = "shaders/shader.frag"
)

// ErrShaderNotFound is returned when a shader source file does not exist.
var ErrShaderNotFound = errors.New("shader source not found")

// CompileError reports a shader stage that failed to compile.
type CompileError struct {
	Stage  Stage
	Handle uint32
	Log    string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%s shader %d: compilation failed: %s", e.Stage, e.Handle, e.Log)
}

// LinkError reports a program that failed to link.
type LinkError struct {
	Program uint32
	Log     string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("program %d: linking failed: %s", e.Program, e.Log)
}

// LoadSource reads a shader source file.
func LoadSource(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("load shader %q: %w: %w", path, ErrShaderNotFound, err)
		}
		return "", fmt.Errorf("load shader %q: %w", path, err)
	}
	return string(b), nil
}

// CompileStage creates and compiles a shader object of the given stage.
// A shader that fails to compile is deleted before the error is returned.
func CompileStage(d Driver, source string, stage Stage) (uint32, error) {
	shader := d.CreateShader(stage)
	d.ShaderSource(shader, source)
	d.CompileShader(shader)

	if !d.ShaderCompiled(shader) {
		err := &CompileError{Stage: stage, Handle: shader, Log: d.ShaderInfoLog(shader)}
		d.DeleteShader(shader)
		return 0, err
	}
	return shader, nil
}

// LinkProgram links the two stages into a program.
// Both stage objects are deleted whether or not linking succeeds.
func LinkProgram(d Driver, vertex, fragment uint32) (uint32, error) {
	program := d.CreateProgram()
	d.AttachShader(program, vertex)
	d.AttachShader(program, fragment)
	d.LinkProgram(program)

	d.DeleteShader(vertex)
	d.DeleteShader(fragment)

	if !d.ProgramLinked(program) {
		err := &LinkError{Program: program, Log: d.ProgramInfoLog(program)}
		d.DeleteProgram(program)
		return 0, err
	}
	return program, nil
}

// CompileAndLink loads both sources, compiles them and links a program.
// Both files are read before anything is compiled.
func CompileAndLink(d Driver, vertexPath, fragmentPath string) (uint32, error) {
	vertexSrc, err := LoadSource(vertexPath)
	if err != nil {
		return 0, err
	}
	fragmentSrc, err := LoadSource(fragmentPath)
	if err != nil {
		return 0, err
	}

	vertex, err := CompileStage(d, vertexSrc, StageVertex)
	if err != nil {
		return 0, fmt.Errorf("compile %s: %w", vertexPath, err)
	}
	fragment, err := CompileStage(d, fragmentSrc, StageFragment)
	if err != nil {
		d.DeleteShader(vertex)
		return 0, fmt.Errorf("compile %s: %w", fragmentPath, err)
	}

	program, err := LinkProgram(d, vertex, fragment)
	if err != nil {
		return 0, fmt.Errorf("link %s + %s: %w", vertexPath, fragmentPath, err)
	}
	return program, nil
}
