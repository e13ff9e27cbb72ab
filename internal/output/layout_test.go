package output

import (
	"encoding/json"
	"image"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "terrain.json")
	regions := []Region{
		{Name: "stone", Rect: image.Rect(16, 0, 32, 16)},
		{Name: "bark", Rect: image.Rect(16, 16, 32, 32)},
	}

	if err := WriteLayout(path, "terrain.png", image.Pt(128, 128), regions); err != nil {
		t.Fatalf("WriteLayout: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var got jsonLayout
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if len(got.Frames) != 2 {
		t.Fatalf("frames = %d, want 2", len(got.Frames))
	}
	bark, ok := got.Frames["bark"]
	if !ok {
		t.Fatal("missing frame bark")
	}
	if bark.Frame != (jsonRect{X: 16, Y: 16, W: 16, H: 16}) {
		t.Errorf("bark frame = %+v", bark.Frame)
	}
	if bark.SourceSize != (jsonSize{W: 16, H: 16}) || bark.Rotated || bark.Trimmed {
		t.Errorf("bark = %+v", bark)
	}
	if got.Meta.Image != "terrain.png" || got.Meta.Size != (jsonSize{W: 128, H: 128}) {
		t.Errorf("meta = %+v", got.Meta)
	}
}

func TestWriteLayoutMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "terrain.json")
	if err := WriteLayout(path, "terrain.png", image.Pt(1, 1), nil); err == nil {
		t.Error("expected error for missing directory")
	}
}
