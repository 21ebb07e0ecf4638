package ansii

import (
	"fmt"
	"image/color"
	"os"
	"strings"

	"golang.org/x/term"
)

type ANSI string

const (
	reset       ANSI = "\033[0m"
	plain       ANSI = ""
	bold        ANSI = "\033[1m"
	underline   ANSI = "\033[4m"
	black       ANSI = "\033[30m"
	red         ANSI = "\033[31m"
	green       ANSI = "\033[32m"
	yellow      ANSI = "\033[33m"
	blue        ANSI = "\033[34m"
	purple      ANSI = "\033[35m"
	cyan        ANSI = "\033[36m"
	white       ANSI = "\033[37m"
	clearScreen ANSI = "\033[2J"
	cursorHome  ANSI = "\033[H"
	hideCursor  ANSI = "\033[?25l"
	showCursor  ANSI = "\033[?25h"
)

// Cell is a zero based terminal column and row.
type Cell struct {
	Col int
	Row int
}

type style struct {
	Reset     ANSI
	Plain     ANSI
	Bold      ANSI
	Underline ANSI
}

type palette struct {
	Black  ANSI
	Red    ANSI
	Green  ANSI
	Yellow ANSI
	Blue   ANSI
	Purple ANSI
	Cyan   ANSI
	White  ANSI
}

type screen struct {
	ClearScreen ANSI
	CursorHome  ANSI
	HideCursor  ANSI
	ShowCursor  ANSI
}

type ascii struct {
	Block string
}

var (
	Styles = style{Bold: bold, Underline: underline, Reset: reset, Plain: plain}
	Colors = palette{Black: black, Red: red, Green: green, Yellow: yellow, Blue: blue, Purple: purple, Cyan: cyan, White: white}
	Screen = screen{ClearScreen: clearScreen, CursorHome: cursorHome, HideCursor: hideCursor, ShowCursor: showCursor}
	Blocks = ascii{Block: "█"}
)

func GetTermSize() (width int, height int, err error) {
	var fd int = int(os.Stdout.Fd())
	return term.GetSize(fd)
}

func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// MakeTermRaw puts stdin into raw mode so single key presses arrive without
// waiting for a newline.
func MakeTermRaw() (*term.State, error) {
	var fd int = int(os.Stdin.Fd())
	return term.MakeRaw(fd)
}

func RestoreTerm(prev *term.State) error {
	var fd int = int(os.Stdin.Fd())
	return term.Restore(fd, prev)
}

// PlaceCursor moves to a zero based cell. Terminals count from one.
func (s screen) PlaceCursor(c Cell) ANSI {
	return ANSI(fmt.Sprintf("\033[%d;%dH", c.Row+1, c.Col+1))
}

// Foreground is a 24-bit foreground color.
func Foreground(c color.Color) ANSI {
	r, g, b := rgb(c)
	return ANSI(fmt.Sprintf("\033[38;2;%d;%d;%dm", r, g, b))
}

// Background is a 24-bit background color.
func Background(c color.Color) ANSI {
	r, g, b := rgb(c)
	return ANSI(fmt.Sprintf("\033[48;2;%d;%d;%dm", r, g, b))
}

func rgb(c color.Color) (uint8, uint8, uint8) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return n.R, n.G, n.B
}

// FillBox draws a solid box of `height` rows and `width` columns with its
// top left cell at `at`. Cells outside cols x rows are clipped.
func FillBox(builder *strings.Builder, at Cell, height, width, cols, rows int, style ANSI) {
	builder.WriteString(string(style))
	for hIdx := range height {
		row := at.Row + hIdx
		if row < 0 || row >= rows {
			continue
		}
		start := max(at.Col, 0)
		end := min(at.Col+width, cols)
		if start >= end {
			continue
		}
		builder.WriteString(string(Screen.PlaceCursor(Cell{Col: start, Row: row})))
		builder.WriteString(strings.Repeat(Blocks.Block, end-start))
	}
	builder.WriteString(string(Styles.Reset))
}
