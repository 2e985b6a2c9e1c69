// Package render draws cubes for the terminal.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/cubesim"
)

// palette maps sticker colors to terminal colors (ANSI 256).
var palette = map[cubesim.Color]lipgloss.Color{
	cubesim.White:  lipgloss.Color("255"),
	cubesim.Yellow: lipgloss.Color("226"),
	cubesim.Green:  lipgloss.Color("34"),
	cubesim.Blue:   lipgloss.Color("27"),
	cubesim.Red:    lipgloss.Color("196"),
	cubesim.Orange: lipgloss.Color("208"),
}

var stickerStyles = func() map[cubesim.Color]lipgloss.Style {
	styles := make(map[cubesim.Color]lipgloss.Style, len(palette))
	for color, bg := range palette {
		styles[color] = lipgloss.NewStyle().
			Background(bg).
			Foreground(lipgloss.Color("16")).
			Bold(true)
	}
	return styles
}()

// Sticker renders one sticker as a three-cell block.
func Sticker(c cubesim.Color) string {
	return stickerStyles[c].Render(" " + c.String() + " ")
}

// faceRow renders one row of a face.
func faceRow(c cubesim.Cube, face cubesim.Face, row int) string {
	var b strings.Builder
	for col := 0; col < 3; col++ {
		b.WriteString(Sticker(c.Stickers[face][row*3+col]))
	}
	return b.String()
}

// Face renders a single face as three rows.
func Face(c cubesim.Cube, face cubesim.Face) string {
	rows := make([]string, 3)
	for row := range rows {
		rows[row] = faceRow(c, face, row)
	}
	return strings.Join(rows, "\n")
}

// Net renders the unfolded cube: U above F, then L F R B, then D.
func Net(c cubesim.Cube) string {
	indent := strings.Repeat(" ", 9)
	var lines []string

	for row := 0; row < 3; row++ {
		lines = append(lines, indent+faceRow(c, cubesim.U, row))
	}
	for row := 0; row < 3; row++ {
		var b strings.Builder
		for _, face := range []cubesim.Face{cubesim.L, cubesim.F, cubesim.R, cubesim.B} {
			b.WriteString(faceRow(c, face, row))
		}
		lines = append(lines, b.String())
	}
	for row := 0; row < 3; row++ {
		lines = append(lines, indent+faceRow(c, cubesim.D, row))
	}

	return strings.Join(lines, "\n")
}
