// Package triangle renders a single colored triangle with OpenGL.
//
// The package holds the backend-neutral half of the demo: loading, compiling
// and linking the shader pair, describing the vertex layout, and the render
// loop. GPU and window access go through the [Driver] and [Window]
// interfaces; package backend/opengl implements both over go-gl and GLFW.
//
// # Lifecycle
//
// An [App] moves through three states:
//
//	Initializing -> Running -> Terminated
//
// [New] performs initialization: it uploads the vertex data once, configures
// one attribute pointer per [Attribute] of the layout, and builds the shader
// program with [CompileAndLink]. Any failure is returned and the App is not
// created.
//
// [App.Run] then repeats [App.Frame] until the window's close flag is set:
//
//  1. drain pending events (a framebuffer resize updates the viewport,
//     Escape sets the close flag)
//  2. stop if the close flag was set, without drawing
//  3. clear to the background color
//  4. bind the program and upload the color uniform, 0.5+0.5*sin(t)
//  5. draw the triangle and swap buffers
//
// # Variants
//
// Two vertex layouts ship with the package:
//
//	PositionLayout       9 floats, color comes from the uniform only
//	PositionColorLayout  18 floats, per-vertex color plus the uniform
//
// Select one with [WithLayout] together with matching shaders
// ([WithShaderPaths]).
//
// # Threading
//
// Everything runs on one goroutine locked to the main OS thread; the GL
// context is never shared.
package triangle
