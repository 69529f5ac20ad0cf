package gghost

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/phanxgames/falling"
)

func newRecordedScene(t *testing.T, w, h int) *falling.Scene {
	t.Helper()
	host := New(w, h)
	opts := falling.DefaultOptions()
	opts.Frequency = 2
	opts.Type = falling.FlakeCircle
	cfg, err := opts.Config()
	if err != nil {
		t.Fatal(err)
	}
	scene, err := falling.NewScene(host, cfg)
	if err != nil {
		t.Fatal(err)
	}
	scene.SetSource(falling.NewSource(8))
	scene.Resize()
	return scene
}

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"snow", "snow"},
		{"after-spawn", "after-spawn"},
		{"frame.01", "frame.01"},
		{"has spaces", "has_spaces"},
		{"path/to/thing", "path_to_thing"},
		{"", "frame"},
		{"   ", "frame"},
	}
	for _, tt := range tests {
		if got := sanitizeLabel(tt.in); got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRecorderWritesFrames(t *testing.T) {
	scene := newRecordedScene(t, 32, 24)
	dir := filepath.Join(t.TempDir(), "out")
	rec := Recorder{Dir: dir, Prefix: "snow fall"}

	paths, err := rec.Record(scene, 3)
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	want := []string{
		filepath.Join(dir, "snow_fall_0001.png"),
		filepath.Join(dir, "snow_fall_0002.png"),
		filepath.Join(dir, "snow_fall_0003.png"),
	}
	if len(paths) != len(want) {
		t.Fatalf("paths = %v, want %v", paths, want)
	}
	for i, p := range paths {
		if p != want[i] {
			t.Errorf("path %d = %q, want %q", i, p, want[i])
		}
		f, err := os.Open(p)
		if err != nil {
			t.Fatalf("open %s: %v", p, err)
		}
		img, err := png.Decode(f)
		f.Close()
		if err != nil {
			t.Fatalf("decode %s: %v", p, err)
		}
		if b := img.Bounds(); b.Dx() != 32 || b.Dy() != 24 {
			t.Errorf("frame size = %v, want 32x24", b)
		}
	}
	if scene.Frame() != 3 {
		t.Errorf("Frame = %d, want 3", scene.Frame())
	}
}

func TestRecorderEvery(t *testing.T) {
	scene := newRecordedScene(t, 16, 16)
	rec := Recorder{Dir: t.TempDir(), Every: 3}
	paths, err := rec.Record(scene, 7)
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if len(paths) != 2 {
		t.Errorf("wrote %d frames, want 2 (frames 3 and 6)", len(paths))
	}
	if scene.Frame() != 7 {
		t.Errorf("Frame = %d, want 7", scene.Frame())
	}
}

func TestRecorderBackground(t *testing.T) {
	scene := newRecordedScene(t, 8, 8)
	rec := Recorder{Dir: t.TempDir(), Background: "#000"}
	paths, err := rec.Record(scene, 1)
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	f, err := os.Open(paths[0])
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a != 0xffff {
				t.Fatalf("pixel (%d,%d) not opaque with a background", x, y)
			}
		}
	}
}

func TestRecorderUnsizedScene(t *testing.T) {
	host := New(8, 8)
	scene, err := falling.NewScene(host, falling.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	rec := Recorder{Dir: t.TempDir()}
	if _, err := rec.Record(scene, 1); err == nil {
		t.Error("recording an unsized scene should fail")
	}
}
