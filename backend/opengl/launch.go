package opengl

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/triangle"
)

// LaunchConfig describes the window and context Launch creates.
type LaunchConfig struct {
	Title        string
	Width        int
	Height       int
	VersionMajor int
	VersionMinor int
	VSync        bool
}

// DefaultLaunchConfig returns an 800x600 window with an OpenGL 3.3 core
// context.
func DefaultLaunchConfig(title string) LaunchConfig {
	return LaunchConfig{
		Title:        title,
		Width:        800,
		Height:       600,
		VersionMajor: 3,
		VersionMinor: 3,
		VSync:        true,
	}
}

// Launch brings up GLFW and OpenGL, builds the App and runs it until the
// window closes. It must be called from the main OS thread; callers lock it
// with runtime.LockOSThread in an init function.
func Launch(ctx context.Context, cfg LaunchConfig, opts ...triangle.Option) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, cfg.VersionMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.VersionMinor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer window.Destroy()
	window.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	}

	// Resolve function pointers for the current context.
	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	slog.Info("opengl context",
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)))

	opts = append([]triangle.Option{triangle.WithClock(glfw.GetTime)}, opts...)
	app, err := triangle.New(NewGLFWWindow(window), NewDriver(), opts...)
	if err != nil {
		return err
	}
	defer app.Close()

	return app.Run(ctx)
}
