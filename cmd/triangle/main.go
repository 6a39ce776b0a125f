// Triangle draws an RGB triangle whose brightness pulses over time.
//
// Run it from the repository root so shaders/ resolves:
//
//	go run ./cmd/triangle
//
// Press Escape or close the window to exit.
package main

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/go-theft-auto/triangle"
	"github.com/go-theft-auto/triangle/backend/opengl"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	cfg := opengl.DefaultLaunchConfig("triangle")
	err := opengl.Launch(context.Background(), cfg,
		triangle.WithLayout(triangle.PositionColorLayout, triangle.TrianglePositionColors),
		triangle.WithShaderPaths(triangle.DefaultVertexShaderPath, triangle.DefaultFragmentShaderPath),
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
