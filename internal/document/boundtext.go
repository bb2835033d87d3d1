package document

import (
	"github.com/sketchwell/sketchwell/engine-go/internal/shape"
)

// BoundTextPadding is the inset between a container's frame and its bound
// text frame.
const BoundTextPadding = 5.0

const defaultLineHeight = 1.25

// CreateBoundText attaches a hidden text child to a container shape and
// returns it. The container type must be text-capable; an existing bound
// text is reused with its content replaced. The text shape enters the
// mapping but never the order list.
func (s *Store) CreateBoundText(containerID, text string, fontSize float64, fontFamily string, record bool) *shape.Shape {
	container, ok := s.shapes[containerID]
	if !ok || !container.IsContainer() {
		return nil
	}

	if container.BoundTextID != "" {
		if existing, ok := s.shapes[container.BoundTextID]; ok {
			s.UpdateShape(existing.ID, record, func(t *shape.Shape) {
				t.Text = text
			})
			s.SyncBoundText(containerID)
			return existing
		}
	}

	if fontSize <= 0 {
		fontSize = 16
	}
	t := shape.New(shape.TypeText)
	t.ParentID = containerID
	t.Text = text
	t.FontSize = fontSize
	t.FontFamily = fontFamily
	s.shapes[t.ID] = t
	container.BoundTextID = t.ID
	s.SyncBoundText(containerID)

	if record {
		s.history.Record(Command{
			Type:       CommandCreate,
			Shapes:     []*shape.Shape{t.Clone()},
			OrderIndex: []int{-1},
		})
	}
	return t
}

// SyncBoundText fits the bound text frame back inside the container's
// padded bounds. Called whenever the container moves or resizes; never
// recorded on its own.
func (s *Store) SyncBoundText(containerID string) {
	container, ok := s.shapes[containerID]
	if !ok || container.BoundTextID == "" {
		return
	}
	t, ok := s.shapes[container.BoundTextID]
	if !ok {
		return
	}

	maxWidth := max(container.Width-2*BoundTextPadding, 0)
	maxHeight := max(container.Height-2*BoundTextPadding, 0)

	t.Width = maxWidth
	t.Height = min(max(t.FontSize*defaultLineHeight, 0), maxHeight)
	t.X = container.X + BoundTextPadding
	t.Y = container.Y + (container.Height-t.Height)/2
	t.Angle = container.Angle
}

// RemoveBoundText deletes the container's bound text and clears the
// reference, recording one delete command.
func (s *Store) RemoveBoundText(containerID string, record bool) {
	container, ok := s.shapes[containerID]
	if !ok || container.BoundTextID == "" {
		return
	}
	textID := container.BoundTextID
	t, ok := s.shapes[textID]
	if !ok {
		container.BoundTextID = ""
		return
	}

	snapshot := t.Clone()
	delete(s.shapes, textID)
	container.BoundTextID = ""

	if record {
		s.history.Record(Command{
			Type:       CommandDelete,
			Shapes:     []*shape.Shape{snapshot},
			OrderIndex: []int{-1},
		})
	}
}

// BoundText returns the bound text shape for a container, if any.
func (s *Store) BoundText(containerID string) (*shape.Shape, bool) {
	container, ok := s.shapes[containerID]
	if !ok || container.BoundTextID == "" {
		return nil, false
	}
	t, ok := s.shapes[container.BoundTextID]
	return t, ok
}
