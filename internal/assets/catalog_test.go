package assets

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writePNG(t *testing.T, path string, w, h int, c color.Color) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

// fixture builds a complete asset tree with tiny images.
func fixture(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	for _, f := range requiredFiles {
		writePNG(t, filepath.Join(root, filepath.FromSlash(f.path)), 8, 8, color.RGBA{R: 200, A: 255})
	}
	writePNG(t, filepath.Join(root, VictoryDir, "a.png"), 16, 16, color.RGBA{G: 200, A: 255})
	writePNG(t, filepath.Join(root, VictoryDir, "b.png"), 1000, 1000, color.RGBA{B: 200, A: 255})
	if err := os.WriteFile(filepath.Join(root, VictoryDir, "notes.txt"), []byte("not an image"), 0o600); err != nil {
		t.Fatal(err)
	}
	return root
}

func TestLoadScalesToFixedSizes(t *testing.T) {
	c, err := Load(fixture(t))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	tests := []struct {
		key  string
		w, h int
	}{
		{KeyGameBackground, BackgroundW, BackgroundH},
		{KeyStartBackground, BackgroundW, BackgroundH},
		{KeyPlayer, PlayerSize, PlayerSize},
		{"object1", ObjectSize, ObjectSize},
		{"object7", ObjectSize, ObjectSize},
		{KeySpecial2, ObjectSize, ObjectSize},
	}
	for _, tc := range tests {
		img, ok := c.Sprite(tc.key)
		if !ok {
			t.Errorf("sprite %q missing", tc.key)
			continue
		}
		if b := img.Bounds(); b.Dx() != tc.w || b.Dy() != tc.h {
			t.Errorf("%s is %dx%d, expected %dx%d", tc.key, b.Dx(), b.Dy(), tc.w, tc.h)
		}
	}

	if c.VictoryCount() != 2 {
		t.Fatalf("VictoryCount() = %d, expected 2 (non-images skipped)", c.VictoryCount())
	}
	for roll := -3; roll < 5; roll++ {
		if b := c.Victory(roll).Bounds(); b.Dx() != VictorySize || b.Dy() != VictorySize {
			t.Errorf("victory image for roll %d is %v", roll, b)
		}
	}
	if len(c.Keys()) != len(requiredFiles) {
		t.Errorf("Keys() has %d entries, expected %d", len(c.Keys()), len(requiredFiles))
	}
}

func TestLoadKeepsColors(t *testing.T) {
	c, err := Load(fixture(t))
	if err != nil {
		t.Fatal(err)
	}
	img, _ := c.Sprite(KeyPlayer)
	r, g, b, a := img.At(100, 100).RGBA()
	if r>>8 != 200 || g != 0 || b != 0 || a>>8 != 255 {
		t.Errorf("scaled pixel = (%d, %d, %d, %d), expected opaque red", r>>8, g>>8, b>>8, a>>8)
	}
}

func TestLoadMissingFile(t *testing.T) {
	root := fixture(t)
	missing := filepath.Join(root, "objects", "default_object5.png")
	if err := os.Remove(missing); err != nil {
		t.Fatal(err)
	}

	_, err := Load(root)
	if err == nil {
		t.Fatal("expected error for missing sprite")
	}
	if !strings.Contains(err.Error(), "default_object5.png") {
		t.Errorf("error should name the missing file: %v", err)
	}
}

func TestLoadEmptyVictoryFolder(t *testing.T) {
	root := fixture(t)
	if err := os.RemoveAll(filepath.Join(root, VictoryDir)); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(root, VictoryDir), 0o755); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(root); err == nil || !strings.Contains(err.Error(), "no victory images") {
		t.Errorf("Load() = %v, expected empty victory folder error", err)
	}
}

func TestLoadCorruptImage(t *testing.T) {
	root := fixture(t)
	bad := filepath.Join(root, "player", "default_player.png")
	if err := os.WriteFile(bad, []byte("garbage"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(root); err == nil || !strings.Contains(err.Error(), "decode asset") {
		t.Errorf("Load() = %v, expected decode error", err)
	}
}
