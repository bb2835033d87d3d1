package document

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/sketchwell/sketchwell/engine-go/internal/shape"
)

const (
	// FileVersion is the newest document format this engine writes and the
	// highest it accepts on import.
	FileVersion = 2

	// SourceTag marks documents produced by this engine.
	SourceTag = "sketchwell"
)

// File is the serialized document. Bound text shapes appear in Shapes but
// never in ShapeIDs.
type File struct {
	Version  int            `json:"version"`
	Source   string         `json:"source"`
	Viewport Viewport       `json:"viewport"`
	Shapes   []*shape.Shape `json:"shapes"`
	ShapeIDs []string       `json:"shapeIds"`
}

// ValidationError is a hard import failure. The engine never partially
// recovers a malformed document; the caller presents the error.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid document: %s: %s", e.Field, e.Reason)
}

// Export snapshots the store into a serializable File.
func (s *Store) Export() *File {
	f := &File{
		Version:  FileVersion,
		Source:   SourceTag,
		Viewport: s.viewport,
		ShapeIDs: s.ShapeIDs(),
	}
	// Order-list shapes first, then hidden shapes sorted by id, so the
	// layout is stable across exports.
	for _, id := range s.order {
		f.Shapes = append(f.Shapes, s.shapes[id].Clone())
	}
	hidden := make([]string, 0)
	for id := range s.shapes {
		if !s.inOrder(id) {
			hidden = append(hidden, id)
		}
	}
	slices.Sort(hidden)
	for _, id := range hidden {
		f.Shapes = append(f.Shapes, s.shapes[id].Clone())
	}
	return f
}

// ExportJSON marshals the store snapshot.
func (s *Store) ExportJSON() ([]byte, error) {
	data, err := json.Marshal(s.Export())
	if err != nil {
		return nil, fmt.Errorf("marshal document: %w", err)
	}
	return data, nil
}

// rawFile mirrors File with pointer fields so missing keys are detectable.
type rawFile struct {
	Version  *int             `json:"version"`
	Source   *string          `json:"source"`
	Viewport *rawViewport     `json:"viewport"`
	Shapes   []*shape.Shape   `json:"shapes"`
	ShapeIDs *json.RawMessage `json:"shapeIds"`
}

type rawViewport struct {
	X    *float64 `json:"x"`
	Y    *float64 `json:"y"`
	Zoom *float64 `json:"zoom"`
}

// ImportJSON validates and loads a serialized document, replacing the
// store's contents and resetting history and selection. On any validation
// failure the store is left untouched.
func (s *Store) ImportJSON(data []byte) error {
	var raw rawFile
	if err := json.Unmarshal(data, &raw); err != nil {
		return &ValidationError{Field: "document", Reason: "not a JSON object"}
	}
	if raw.Source == nil || *raw.Source != SourceTag {
		return &ValidationError{Field: "source", Reason: "unrecognized source tag"}
	}
	if raw.Version == nil || *raw.Version < 1 {
		return &ValidationError{Field: "version", Reason: "missing or invalid"}
	}
	if *raw.Version > FileVersion {
		return &ValidationError{Field: "version", Reason: fmt.Sprintf("version %d is newer than supported %d", *raw.Version, FileVersion)}
	}
	if raw.Viewport == nil || raw.Viewport.X == nil || raw.Viewport.Y == nil || raw.Viewport.Zoom == nil {
		return &ValidationError{Field: "viewport", Reason: "must have numeric x, y and zoom"}
	}
	if raw.Shapes == nil {
		return &ValidationError{Field: "shapes", Reason: "missing"}
	}
	if raw.ShapeIDs == nil {
		return &ValidationError{Field: "shapeIds", Reason: "missing"}
	}
	var shapeIDs []string
	if err := json.Unmarshal(*raw.ShapeIDs, &shapeIDs); err != nil {
		return &ValidationError{Field: "shapeIds", Reason: "must be a string array"}
	}

	shapes := make(map[string]*shape.Shape, len(raw.Shapes))
	for i, sh := range raw.Shapes {
		if sh == nil || sh.ID == "" {
			return &ValidationError{Field: "shapes", Reason: fmt.Sprintf("shape %d has no id", i)}
		}
		if !knownType(sh.Type) {
			return &ValidationError{Field: "shapes", Reason: fmt.Sprintf("shape %q has unknown type %q", sh.ID, sh.Type)}
		}
		shapes[sh.ID] = sh
	}
	for _, id := range shapeIDs {
		if _, ok := shapes[id]; !ok {
			return &ValidationError{Field: "shapeIds", Reason: fmt.Sprintf("id %q not present in shapes", id)}
		}
	}

	// Validation passed: swap everything in one step.
	s.shapes = shapes
	s.order = shapeIDs
	s.selection = make(map[string]struct{})
	s.viewport = Viewport{X: *raw.Viewport.X, Y: *raw.Viewport.Y, Zoom: *raw.Viewport.Zoom}
	s.history.Clear()
	return nil
}

func knownType(t shape.Type) bool {
	switch t {
	case shape.TypeRectangle, shape.TypeEllipse, shape.TypeLine, shape.TypeArrow,
		shape.TypeText, shape.TypeDraw, shape.TypeImage, shape.TypeGroup, shape.TypeCustom:
		return true
	}
	return false
}
