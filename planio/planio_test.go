package planio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/jrversteegh/linesplan/geom"
	"github.com/jrversteegh/linesplan/hull"
)

func TestSaveLoadRoundTrip(tst *testing.T) {
	chk.PrintTitle("SaveLoadRoundTrip")

	lines := &hull.Lines{Name: "test-hull"}
	lines.Frames = append(lines.Frames,
		hull.NewFrame(0, geom.Polyline2{{Y: 0, Z: 0}, {Y: 1, Z: 1}, {Y: 0, Z: 2}}),
		hull.NewFrame(1, geom.Polyline2{{Y: 0, Z: 0}, {Y: 2, Z: 1}, {Y: 0, Z: 2}}),
	)
	lines.Frames[1].Chines = []int{1}

	dir := tst.TempDir()
	path := filepath.Join(dir, "hull.json")
	if err := Save(lines, path); err != nil {
		tst.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		tst.Fatal(err)
	}
	chk.IntAssert(len(loaded.Frames), 2)
	chk.Scalar(tst, "x1", 1e-15, loaded.Frames[1].X, 1)
	chk.IntAssert(loaded.Frames[1].Chines[0], 1)

	path2 := filepath.Join(dir, "hull2.json")
	if err := Save(loaded, path2); err != nil {
		tst.Fatal(err)
	}
	b1, _ := os.ReadFile(path)
	b2, _ := os.ReadFile(path2)
	if string(b1) != string(b2) {
		tst.Fatalf("round-trip not byte exact:\n%s\n---\n%s", b1, b2)
	}
}

func TestLoadRejectsMissingFile(tst *testing.T) {
	_, err := Load("/no/such/file.json")
	if err == nil {
		tst.Fatal("expected error for missing file")
	}
}

func TestLoadRejectsEmptyFrames(tst *testing.T) {
	dir := tst.TempDir()
	path := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(path, []byte(`{"name":"x","frames":[]}`), 0644); err != nil {
		tst.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		tst.Fatal("expected validation error for empty frames")
	}
}
