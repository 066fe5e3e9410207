// Package assets loads the fixed image tree used by the window frontend and
// pre-scales every image to the size it is drawn at.
package assets

import (
	"fmt"
	"image"
	_ "image/jpeg" // JPEG victory art
	_ "image/png"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/image/draw"
)

// Drawn sizes in world pixels.
const (
	BackgroundW = 800
	BackgroundH = 600
	PlayerSize  = 200
	ObjectSize  = 64
	VictorySize = 400
)

// Sprite keys.
const (
	KeyGameBackground  = "game_background"
	KeyStartBackground = "start_menu_background"
	KeyPlayer          = "player"
	KeySpecial1        = "special_sprite_1"
	KeySpecial2        = "special_sprite_2"
)

// VictoryDir holds the interchangeable victory images.
const VictoryDir = "Feed_Glutt"

type spriteFile struct {
	key  string
	path string // relative to the asset root
	w, h int
}

// requiredFiles is the fixed layout. Falling object keys match the
// sprite IDs used by the game ("object1".."object7").
var requiredFiles = []spriteFile{
	{KeyGameBackground, "backgrounds/default_bg.png", BackgroundW, BackgroundH},
	{KeyStartBackground, "backgrounds/start_menu_bg.png", BackgroundW, BackgroundH},
	{KeyPlayer, "player/default_player.png", PlayerSize, PlayerSize},
	{"object1", "objects/default_object.png", ObjectSize, ObjectSize},
	{"object2", "objects/default_object2.png", ObjectSize, ObjectSize},
	{"object3", "objects/default_object3.png", ObjectSize, ObjectSize},
	{"object4", "objects/default_object4.png", ObjectSize, ObjectSize},
	{"object5", "objects/default_object5.png", ObjectSize, ObjectSize},
	{"object6", "objects/default_object6.png", ObjectSize, ObjectSize},
	{"object7", "objects/default_object7.png", ObjectSize, ObjectSize},
	// Loaded for completeness; no gameplay references them.
	{KeySpecial1, "objects/special_sprite_1.png", ObjectSize, ObjectSize},
	{KeySpecial2, "objects/special_sprite_2.png", ObjectSize, ObjectSize},
}

// Catalog holds the loaded, pre-scaled images.
type Catalog struct {
	root    string
	sprites map[string]image.Image
	victory []image.Image
}

// Load reads every required image under root. Any missing or undecodable
// file, or an empty victory folder, fails the whole load.
func Load(root string) (*Catalog, error) {
	c := &Catalog{
		root:    root,
		sprites: make(map[string]image.Image, len(requiredFiles)),
	}

	for _, f := range requiredFiles {
		img, err := loadScaled(filepath.Join(root, filepath.FromSlash(f.path)), f.w, f.h)
		if err != nil {
			return nil, err
		}
		c.sprites[f.key] = img
	}

	victoryPaths, err := listImages(filepath.Join(root, VictoryDir))
	if err != nil {
		return nil, err
	}
	for _, p := range victoryPaths {
		img, err := loadScaled(p, VictorySize, VictorySize)
		if err != nil {
			return nil, err
		}
		c.victory = append(c.victory, img)
	}

	return c, nil
}

// Root returns the directory the catalog was loaded from.
func (c *Catalog) Root() string {
	return c.root
}

// Sprite returns the image for a key.
func (c *Catalog) Sprite(key string) (image.Image, bool) {
	img, ok := c.sprites[key]
	return img, ok
}

// Keys returns all sprite keys, sorted.
func (c *Catalog) Keys() []string {
	keys := make([]string, 0, len(c.sprites))
	for k := range c.sprites {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// VictoryCount returns the number of victory images.
func (c *Catalog) VictoryCount() int {
	return len(c.victory)
}

// Victory picks a victory image from a roll; any int maps to a valid image.
func (c *Catalog) Victory(roll int) image.Image {
	if roll < 0 {
		roll = -roll
	}
	return c.victory[roll%len(c.victory)]
}

func listImages(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read victory images: %w", err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".png", ".jpg", ".jpeg":
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no victory images in %s", dir)
	}
	return paths, nil
}

func loadScaled(path string, w, h int) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load asset: %w", err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode asset %s: %w", path, err)
	}
	return scale(src, w, h), nil
}

// scale resizes into an RGBA image with origin (0, 0). Pixel art keeps
// hard edges when scaled up, so enlargements use nearest neighbour.
func scale(src image.Image, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	b := src.Bounds()

	var scaler draw.Scaler = draw.ApproxBiLinear
	if b.Dx() <= w && b.Dy() <= h {
		scaler = draw.NearestNeighbor
	}
	scaler.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}
