package triangle

import (
	"errors"
	"fmt"
	"unsafe"
)

// ErrInvalidLayout is returned when a vertex layout or its data is malformed.
var ErrInvalidLayout = errors.New("invalid vertex layout")

const floatSize = int32(unsafe.Sizeof(float32(0)))

// Attribute is one float vertex attribute, tightly packed after the
// attributes that precede it in the layout.
type Attribute struct {
	Location   uint32
	Components int32 // 1-4
}

// VertexLayout describes how interleaved float data maps to shader inputs.
type VertexLayout struct {
	Name       string
	Attributes []Attribute
}

var (
	// PositionLayout is a single vec3 position at location 0.
	PositionLayout = VertexLayout{
		Name:       "position",
		Attributes: []Attribute{{Location: 0, Components: 3}},
	}

	// PositionColorLayout interleaves a vec3 position (location 0) with a
	// vec3 color (location 1).
	PositionColorLayout = VertexLayout{
		Name: "position+color",
		Attributes: []Attribute{
			{Location: 0, Components: 3},
			{Location: 1, Components: 3},
		},
	}
)

// TrianglePositions is the position-only triangle.
var TrianglePositions = []float32{
	-0.5, -0.5, 0.0,
	0.5, -0.5, 0.0,
	0.0, 0.5, 0.0,
}

// TrianglePositionColors is the same triangle with red, green and blue
// corners.
var TrianglePositionColors = []float32{
	// position      // color
	-0.5, -0.5, 0.0, 1.0, 0.0, 0.0,
	0.5, -0.5, 0.0, 0.0, 1.0, 0.0,
	0.0, 0.5, 0.0, 0.0, 0.0, 1.0,
}

// FloatsPerVertex returns the number of floats one vertex occupies.
func (l VertexLayout) FloatsPerVertex() int {
	n := 0
	for _, a := range l.Attributes {
		n += int(a.Components)
	}
	return n
}

// Stride returns the byte distance between consecutive vertices.
func (l VertexLayout) Stride() int32 {
	return int32(l.FloatsPerVertex()) * floatSize
}

// Offset returns the byte offset of attribute i within a vertex.
func (l VertexLayout) Offset(i int) uintptr {
	var off int32
	for _, a := range l.Attributes[:i] {
		off += a.Components * floatSize
	}
	return uintptr(off)
}

// VertexCount returns how many whole vertices data holds.
func (l VertexLayout) VertexCount(data []float32) int32 {
	n := l.FloatsPerVertex()
	if n == 0 {
		return 0
	}
	return int32(len(data) / n)
}

// Validate checks the layout and that data holds at least one whole
// vertex and no trailing partial vertex.
func (l VertexLayout) Validate(data []float32) error {
	if len(l.Attributes) == 0 {
		return fmt.Errorf("%w: %q has no attributes", ErrInvalidLayout, l.Name)
	}
	seen := make(map[uint32]bool, len(l.Attributes))
	for _, a := range l.Attributes {
		if a.Components < 1 || a.Components > 4 {
			return fmt.Errorf("%w: %q location %d has %d components", ErrInvalidLayout, l.Name, a.Location, a.Components)
		}
		if seen[a.Location] {
			return fmt.Errorf("%w: %q location %d used twice", ErrInvalidLayout, l.Name, a.Location)
		}
		seen[a.Location] = true
	}

	n := l.FloatsPerVertex()
	if len(data) == 0 || len(data)%n != 0 {
		return fmt.Errorf("%w: %q expects a multiple of %d floats, got %d", ErrInvalidLayout, l.Name, n, len(data))
	}
	return nil
}
