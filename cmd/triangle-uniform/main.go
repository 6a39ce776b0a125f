// Triangle-uniform draws a position-only triangle colored entirely by the
// ourColor uniform, fading green in and out.
//
//	go run ./cmd/triangle-uniform
package main

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/go-theft-auto/triangle"
	"github.com/go-theft-auto/triangle/backend/opengl"
)

const (
	vertexShaderPath   = "shaders/uniform/shader.vert"
	fragmentShaderPath = "shaders/uniform/shader.frag"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	err := opengl.Launch(context.Background(), opengl.DefaultLaunchConfig("triangle (uniform)"),
		triangle.WithLayout(triangle.PositionLayout, triangle.TrianglePositions),
		triangle.WithShaderPaths(vertexShaderPath, fragmentShaderPath),
		triangle.WithUniform(triangle.DefaultUniformName),
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
