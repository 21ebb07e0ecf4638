package renderer

import (
	"fmt"
	"image/color"
	"math"
	"strings"
	"time"

	"pong/internal/ansii"
	"pong/internal/assets"
	"pong/internal/geom"
	"pong/internal/pong"
)

var (
	targetFps     float64 = 60.0
	frameDuration         = time.Duration(float64(time.Second) / targetFps)
)

var defaultInk = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// terminalCanvas scales the game window onto a cols x rows terminal and
// collects the escape codes for one frame.
type terminalCanvas struct {
	builder *strings.Builder
	cols    int
	rows    int
}

func (c *terminalCanvas) Clear(col color.Color) {
	c.builder.WriteString(string(ansii.Background(col)))
	c.builder.WriteString(string(ansii.Screen.CursorHome))
	c.builder.WriteString(string(ansii.Screen.ClearScreen))
}

func (c *terminalCanvas) DrawVisual(v pong.Visual, at geom.Vector) {
	ink := color.Color(defaultInk)
	if s, ok := v.(*assets.Sprite); ok {
		ink = s.Mean
	}

	col0, col1 := c.span(at.X, v.Width(), pong.WindowWidth, c.cols)
	row0, row1 := c.span(at.Y, v.Height(), pong.WindowHeight, c.rows)

	ansii.FillBox(c.builder, ansii.Cell{Col: col0, Row: row0}, row1-row0, col1-col0, c.cols, c.rows, ansii.Foreground(ink))
}

// span maps [pos, pos+size) in world units onto cells, never narrower than a
// single cell so small sprites stay visible.
func (c *terminalCanvas) span(pos, size, world float32, cells int) (int, int) {
	scale := float64(cells) / float64(world)
	start := int(math.Floor(float64(pos) * scale))
	end := int(math.Ceil(float64(pos+size) * scale))
	if end <= start {
		end = start + 1
	}
	return start, end
}

func drawFrameStats(builder *strings.Builder, cols, rows, frameNum int, frameTime time.Duration) {
	frameTimeMs := float64(frameTime.Microseconds()) / 1000.0
	spareTimeMs := float64(frameDuration.Microseconds())/1000.0 - frameTimeMs

	builder.WriteString(string(ansii.Styles.Reset))
	lines := []string{
		fmt.Sprintf("Frame #: %d", frameNum),
		fmt.Sprintf("Frame Time: %.4fms", frameTimeMs),
		fmt.Sprintf("Spare Time: %.4fms", spareTimeMs),
	}
	for i, line := range lines {
		at := ansii.Cell{Col: max(cols-len(line), 0), Row: rows - len(lines) + i}
		if at.Row < 0 {
			continue
		}
		builder.WriteString(string(ansii.Screen.PlaceCursor(at)))
		builder.WriteString(line)
	}
}

// Host owns the frame loop for one round and reports how it ended.
type Host interface {
	Run() (pong.Outcome, error)
}
