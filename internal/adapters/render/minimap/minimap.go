// Package minimap draws a top-down character map of the garden around the player.
package minimap

import (
	"fmt"
	"math"
	"strings"

	"github.com/bnema/memory-garden/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const (
	DefaultWidth  = 36
	DefaultHeight = 18
	DefaultRange  = 80.0

	emptyGlyph  = '·'
	memoryGlyph = '*'
	lotusGlyph  = 'o'
)

type Player struct {
	X, Z float64
	Yaw  float64 // radians around Y, 0 faces -Z
}

type Options struct {
	Width  int
	Height int
	// Range is how many world units fit edge to edge.
	Range  float64
	Player Player
}

type Point struct {
	Position domain.Vec3
	Lotus    bool
}

var (
	frameStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240"))
	memoryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("115"))
	lotusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("117"))
	playerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("111"))
	gridStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("236"))
)

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
	if o.Range <= 0 {
		o.Range = DefaultRange
	}

	return o
}

// Project maps a world position onto the map grid. ok is false when the
// position falls outside the visible range.
func Project(p domain.Vec3, opts Options) (col, row int, ok bool) {
	opts = opts.withDefaults()

	sx := (p.X()-opts.Player.X)/opts.Range*float64(opts.Width) + float64(opts.Width)/2
	sz := (p.Z()-opts.Player.Z)/opts.Range*float64(opts.Height) + float64(opts.Height)/2

	col = int(math.Floor(sx))
	row = int(math.Floor(sz))
	if col < 0 || col >= opts.Width || row < 0 || row >= opts.Height {
		return 0, 0, false
	}

	return col, row, true
}

// Grid returns the raw glyph rows without styling.
func Grid(points []Point, opts Options) [][]rune {
	opts = opts.withDefaults()

	cells := make([][]rune, opts.Height)
	for row := range cells {
		cells[row] = []rune(strings.Repeat(string(emptyGlyph), opts.Width))
	}

	for _, point := range points {
		col, row, ok := Project(point.Position, opts)
		if !ok {
			continue
		}
		glyph := memoryGlyph
		if point.Lotus {
			glyph = lotusGlyph
		}
		if cells[row][col] != memoryGlyph {
			cells[row][col] = glyph
		}
	}

	cells[opts.Height/2][opts.Width/2] = playerGlyph(opts.Player.Yaw)
	return cells
}

func Render(points []Point, opts Options) string {
	opts = opts.withDefaults()
	cells := Grid(points, opts)

	lines := make([]string, 0, len(cells)+1)
	for _, row := range cells {
		var b strings.Builder
		for _, glyph := range row {
			b.WriteString(styleFor(glyph).Render(string(glyph)))
		}
		lines = append(lines, b.String())
	}

	caption := fmt.Sprintf("player (%.1f, %.1f)  range %.0f", opts.Player.X, opts.Player.Z, opts.Range)
	return lipgloss.JoinVertical(lipgloss.Left, frameStyle.Render(strings.Join(lines, "\n")), caption)
}

func styleFor(glyph rune) lipgloss.Style {
	switch glyph {
	case memoryGlyph:
		return memoryStyle
	case lotusGlyph:
		return lotusStyle
	case emptyGlyph:
		return gridStyle
	default:
		return playerStyle
	}
}

// playerGlyph quantizes yaw to one of four arrows.
func playerGlyph(yaw float64) rune {
	turns := math.Mod(yaw/(2*math.Pi), 1)
	if turns < 0 {
		turns++
	}

	switch int(math.Floor(turns*4+0.5)) % 4 {
	case 1:
		return '<'
	case 2:
		return 'v'
	case 3:
		return '>'
	default:
		return '^'
	}
}
