package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/triangle"
)

// GLFWWindow adapts a GLFW window to triangle.Window.
type GLFWWindow struct {
	window *glfw.Window
	events *triangle.EventQueue
}

var _ triangle.Window = (*GLFWWindow)(nil)

// NewGLFWWindow wraps window and subscribes to its key and framebuffer
// size events.
func NewGLFWWindow(window *glfw.Window) *GLFWWindow {
	w := &GLFWWindow{
		window: window,
		events: triangle.NewEventQueue(),
	}

	window.SetKeyCallback(w.keyCallback)
	window.SetFramebufferSizeCallback(w.framebufferSizeCallback)

	return w
}

// PollEvents processes pending GLFW events and returns those delivered
// through the callbacks.
func (w *GLFWWindow) PollEvents() []triangle.Event {
	glfw.PollEvents()
	return w.events.Drain()
}

func (w *GLFWWindow) ShouldClose() bool {
	return w.window.ShouldClose()
}

func (w *GLFWWindow) SetShouldClose(value bool) {
	w.window.SetShouldClose(value)
}

// FramebufferSize returns the size in pixels, which differs from the window
// size on scaled displays.
func (w *GLFWWindow) FramebufferSize() (width, height int) {
	return w.window.GetFramebufferSize()
}

func (w *GLFWWindow) SwapBuffers() {
	w.window.SwapBuffers()
}

func (w *GLFWWindow) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	k := glfwKeyToKey(key)
	if k == triangle.KeyNone {
		return
	}
	w.events.Push(triangle.KeyEvent(k, glfwActionToAction(action)))
}

func (w *GLFWWindow) framebufferSizeCallback(_ *glfw.Window, width, height int) {
	w.events.Push(triangle.ResizeEvent(width, height))
}

// glfwKeyToKey maps GLFW keys to demo keys.
func glfwKeyToKey(key glfw.Key) triangle.Key {
	switch key {
	case glfw.KeyEscape:
		return triangle.KeyEscape
	case glfw.KeyEnter:
		return triangle.KeyEnter
	case glfw.KeySpace:
		return triangle.KeySpace
	case glfw.KeyQ:
		return triangle.KeyQ
	default:
		return triangle.KeyNone
	}
}

func glfwActionToAction(action glfw.Action) triangle.Action {
	switch action {
	case glfw.Press:
		return triangle.Press
	case glfw.Repeat:
		return triangle.Repeat
	default:
		return triangle.Release
	}
}
