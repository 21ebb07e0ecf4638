package assets

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"log/slog"
	"os"
	"path/filepath"
)

const (
	PlayerOneFile = "player1.png"
	PlayerTwoFile = "player2.png"
	BallFile      = "ball.png"
)

// Sprite is a decoded image plus the few facts about it the displays need.
type Sprite struct {
	Name  string
	Image image.Image
	Mean  color.RGBA
}

func (s *Sprite) Width() float32 {
	return float32(s.Image.Bounds().Dx())
}

func (s *Sprite) Height() float32 {
	return float32(s.Image.Bounds().Dy())
}

type Sprites struct {
	PlayerOne *Sprite
	PlayerTwo *Sprite
	Ball      *Sprite
}

// Load reads the three game images from dir. The first file that cannot be
// opened or decoded aborts the load.
func Load(dir string) (Sprites, error) {
	var sprites Sprites
	targets := []struct {
		file string
		dst  **Sprite
	}{
		{PlayerOneFile, &sprites.PlayerOne},
		{PlayerTwoFile, &sprites.PlayerTwo},
		{BallFile, &sprites.Ball},
	}

	for _, t := range targets {
		s, err := LoadSprite(filepath.Join(dir, t.file))
		if err != nil {
			return Sprites{}, err
		}
		*t.dst = s
	}
	return sprites, nil
}

func LoadSprite(path string) (*Sprite, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sprite %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode sprite %s: %w", path, err)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("sprite %s has no pixels", path)
	}

	s := &Sprite{
		Name:  filepath.Base(path),
		Image: img,
		Mean:  meanColor(img),
	}
	slog.Debug("loaded sprite",
		slog.String("path", path),
		slog.Any("width", s.Width()),
		slog.Any("height", s.Height()))
	return s, nil
}

// meanColor averages the non transparent pixels of img. Fully transparent
// images come back as opaque white.
func meanColor(img image.Image) color.RGBA {
	var r, g, b, n uint64
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			if c.A == 0 {
				continue
			}
			r += uint64(c.R)
			g += uint64(c.G)
			b += uint64(c.B)
			n++
		}
	}
	if n == 0 {
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	return color.RGBA{R: uint8(r / n), G: uint8(g / n), B: uint8(b / n), A: 255}
}
