package shape

import (
	"math/rand"

	"github.com/sketchwell/sketchwell/engine-go/internal/geometry"
	"github.com/sketchwell/sketchwell/engine-go/internal/typeid"
)

type Type string

const (
	TypeRectangle Type = "rectangle"
	TypeEllipse   Type = "ellipse"
	TypeLine      Type = "line"
	TypeArrow     Type = "arrow"
	TypeText      Type = "text"
	TypeDraw      Type = "draw"
	TypeImage     Type = "image"
	TypeGroup     Type = "group"
	TypeCustom    Type = "custom"
)

// Style holds the cosmetic stroke/fill properties shared by drawable types.
// The engine carries these through untouched; rendering decisions live in
// the frontend.
type Style struct {
	StrokeColor string  `json:"strokeColor"`
	FillColor   string  `json:"fillColor"`
	StrokeWidth float64 `json:"strokeWidth"`
}

// Shape is one document element. The Type tag discriminates which of the
// optional fields are meaningful: Points for line/arrow/draw, Children for
// group, Text/FontSize/FontFamily for text, AssetID for image, Custom for
// extension types. X/Y/Width/Height is the unrotated frame; Angle rotates it
// about the frame center.
type Shape struct {
	ID      string  `json:"id"`
	Type    Type    `json:"type"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	Angle   float64 `json:"angle"`
	Opacity float64 `json:"opacity"`
	Locked  bool    `json:"locked"`

	// ParentID points at the owning group or, for bound text, the container.
	ParentID string `json:"parentId,omitempty"`

	// Seed and Roughness parameterize the hand-drawn rendering style. They
	// are carried through the engine but never computed here.
	Seed      int64 `json:"seed"`
	Roughness int   `json:"roughness"`

	Style Style `json:"style"`

	// Points are relative to (X, Y). Line and arrow hold two or more points;
	// draw holds the full freehand polyline.
	Points []geometry.Point `json:"points,omitempty"`

	// Children lists member shape ids, for groups.
	Children []string `json:"children,omitempty"`

	// BoundTextID references the hidden text child of a container shape.
	BoundTextID string `json:"boundTextId,omitempty"`

	Text       string  `json:"text,omitempty"`
	FontSize   float64 `json:"fontSize,omitempty"`
	FontFamily string  `json:"fontFamily,omitempty"`

	AssetID string `json:"assetId,omitempty"`

	// Custom is the property bag for extension types.
	Custom map[string]any `json:"custom,omitempty"`
}

// New creates a shape of the given type with a fresh id, default opacity and
// a random render seed.
func New(t Type) *Shape {
	return &Shape{
		ID:      typeid.NewShapeID(),
		Type:    t,
		Opacity: 1,
		Seed:    rand.Int63(),
	}
}

// Clone returns a deep copy.
func (s *Shape) Clone() *Shape {
	c := *s
	if s.Points != nil {
		c.Points = make([]geometry.Point, len(s.Points))
		copy(c.Points, s.Points)
	}
	if s.Children != nil {
		c.Children = make([]string, len(s.Children))
		copy(c.Children, s.Children)
	}
	if s.Custom != nil {
		c.Custom = make(map[string]any, len(s.Custom))
		for k, v := range s.Custom {
			c.Custom[k] = v
		}
	}
	return &c
}

// CloneAll deep-copies a shape slice.
func CloneAll(shapes []*Shape) []*Shape {
	out := make([]*Shape, len(shapes))
	for i, s := range shapes {
		out[i] = s.Clone()
	}
	return out
}

// Bounds returns the unrotated axis-aligned frame. For point-based types the
// frame is derived from the point list.
func (s *Shape) Bounds() geometry.Rect {
	switch s.Type {
	case TypeLine, TypeArrow, TypeDraw:
		b := geometry.BoundsOfPoints(s.Points)
		b.X += s.X
		b.Y += s.Y
		return b
	default:
		return geometry.Rect{X: s.X, Y: s.Y, Width: s.Width, Height: s.Height}
	}
}

// Center returns the rotation center of the shape.
func (s *Shape) Center() geometry.Point {
	b := s.Bounds()
	cx, cy := b.Center()
	return geometry.Point{X: cx, Y: cy}
}

// IsContainer reports whether the shape type can own bound text.
func (s *Shape) IsContainer() bool {
	switch s.Type {
	case TypeRectangle, TypeEllipse, TypeImage:
		return true
	}
	return false
}
