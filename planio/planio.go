// Package planio reads and writes lines plans in JSON: a named collection
// of frames, each an x station, an ordered (y,z) point list and an
// optional chine index list.
package planio

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/cpmech/gosl/io"
	"github.com/jrversteegh/linesplan/geom"
	"github.com/jrversteegh/linesplan/hull"
)

type frameDoc struct {
	X      float64      `json:"x"`
	Yz     [][2]float64 `json:"yz"`
	Chines []int        `json:"chines"`
}

type linesDoc struct {
	Name   string     `json:"name"`
	Frames []frameDoc `json:"frames"`
}

// Load reads a lines plan from path and validates it: frames non-empty,
// every frame with at least 2 points, chine indices in bounds.
func Load(path string) (*hull.Lines, error) {
	b, err := io.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %q: %v", hull.ErrIOError, path, err)
	}
	var doc linesDoc
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("%w: parsing %q: %v", hull.ErrBadInput, path, err)
	}
	lines := &hull.Lines{Name: doc.Name}
	for _, fd := range doc.Frames {
		yz := make(geom.Polyline2, len(fd.Yz))
		for i, p := range fd.Yz {
			yz[i] = geom.Point2{Y: p[0], Z: p[1]}
		}
		frame := hull.NewFrame(fd.X, yz)
		frame.Chines = append([]int(nil), fd.Chines...)
		lines.Frames = append(lines.Frames, frame)
	}
	if err := lines.Validate(); err != nil {
		return nil, err
	}
	return lines, nil
}

// Save writes lines to path as indented JSON, byte-identical to the input
// file when that file was produced by this same writer.
func Save(lines *hull.Lines, path string) error {
	doc := linesDoc{Name: lines.Name}
	for _, f := range lines.Frames {
		chines := f.Chines
		if chines == nil {
			chines = []int{}
		}
		fd := frameDoc{X: f.X, Chines: chines}
		fd.Yz = make([][2]float64, f.Len())
		for i, p := range f.Yz {
			fd.Yz[i] = [2]float64{p.Y, p.Z}
		}
		doc.Frames = append(doc.Frames, fd)
	}
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encoding lines plan %q: %v", hull.ErrIOError, lines.Name, err)
	}
	if err := os.WriteFile(path, b, 0644); err != nil {
		return fmt.Errorf("%w: writing %q: %v", hull.ErrIOError, path, err)
	}
	return nil
}
