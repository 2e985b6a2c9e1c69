package cubesim

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Color represents a sticker color.
type Color byte

const (
	White  Color = 0 // Up face when solved
	Yellow Color = 1 // Down face when solved
	Green  Color = 2 // Front face when solved
	Blue   Color = 3 // Back face when solved
	Red    Color = 4 // Right face when solved
	Orange Color = 5 // Left face when solved
)

// Colors lists every sticker color in declaration order.
var Colors = []Color{White, Yellow, Green, Blue, Red, Orange}

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Green:
		return "G"
	case Blue:
		return "B"
	case Red:
		return "R"
	case Orange:
		return "O"
	default:
		return "?"
	}
}

// ParseColor parses a single color letter.
func ParseColor(s string) (Color, bool) {
	for _, c := range Colors {
		if strings.EqualFold(s, c.String()) {
			return c, true
		}
	}
	return 0, false
}

// Face identifies one of the six faces of the cube.
type Face int

const (
	U Face = 0 // Up (White)
	D Face = 1 // Down (Yellow)
	F Face = 2 // Front (Green)
	B Face = 3 // Back (Blue)
	R Face = 4 // Right (Red)
	L Face = 5 // Left (Orange)
)

// Faces lists every face.
var Faces = []Face{U, D, F, B, R, L}

func (f Face) String() string {
	switch f {
	case U:
		return "U"
	case D:
		return "D"
	case F:
		return "F"
	case B:
		return "B"
	case R:
		return "R"
	case L:
		return "L"
	default:
		return "?"
	}
}

// Valid reports whether f is one of the six faces.
func (f Face) Valid() bool {
	return f >= U && f <= L
}

// ParseFace parses a face letter (U, D, F, B, R, L).
func ParseFace(s string) (Face, bool) {
	for _, f := range Faces {
		if strings.EqualFold(s, f.String()) {
			return f, true
		}
	}
	return 0, false
}

// Position is one of the nine sticker slots of a face, numbered row-major
// with the face viewed from outside:
//
//	TL TM TR
//	ML MM MR
//	BL BM BR
type Position int

const (
	TopLeft Position = iota
	TopMiddle
	TopRight
	MiddleLeft
	Center
	MiddleRight
	BottomLeft
	BottomMiddle
	BottomRight
)

// Positions lists every position in row-major order.
var Positions = []Position{
	TopLeft, TopMiddle, TopRight,
	MiddleLeft, Center, MiddleRight,
	BottomLeft, BottomMiddle, BottomRight,
}

var positionLabels = [9]string{"TL", "TM", "TR", "ML", "MM", "MR", "BL", "BM", "BR"}

func (p Position) String() string {
	if p < TopLeft || p > BottomRight {
		return "??"
	}
	return positionLabels[p]
}

// ParsePosition parses a two-letter position label such as "TL" or "BM".
func ParsePosition(s string) (Position, bool) {
	for i, label := range positionLabels {
		if strings.EqualFold(s, label) {
			return Position(i), true
		}
	}
	return 0, false
}

// Cube is a 3x3 Rubik's cube as 54 sticker colors.
//
// Cube is a value: assigning or passing it copies every sticker, and all
// move functions return a new Cube rather than mutating their input.
type Cube struct {
	// Stickers[face][position] = color
	Stickers [6][9]Color
}

// NewCube returns a solved cube with White on top and Green in front.
func NewCube() Cube {
	var c Cube
	for _, face := range Faces {
		color := solvedColor(face)
		for i := range c.Stickers[face] {
			c.Stickers[face][i] = color
		}
	}
	return c
}

// solvedColor returns the color of a face when solved.
func solvedColor(f Face) Color {
	switch f {
	case U:
		return White
	case D:
		return Yellow
	case F:
		return Green
	case B:
		return Blue
	case R:
		return Red
	case L:
		return Orange
	default:
		return White
	}
}

// Get returns the color at a face position.
func (c Cube) Get(face Face, pos Position) Color {
	return c.Stickers[face][pos]
}

// Equal reports whether both cubes hold identical stickers.
func (c Cube) Equal(other Cube) bool {
	return c.Stickers == other.Stickers
}

// IsSolved returns true if the cube equals the solved cube in the
// standard orientation.
func (c Cube) IsSolved() bool {
	return c.Equal(NewCube())
}

// IsUniform returns true if every face is a single color. A solved cube
// stays uniform after whole-cube reorientations even though it no longer
// equals NewCube().
func (c Cube) IsUniform() bool {
	for _, face := range Faces {
		center := c.Stickers[face][Center]
		for _, color := range c.Stickers[face] {
			if color != center {
				return false
			}
		}
	}
	return true
}

// ColorCounts returns how many stickers carry each color.
func (c Cube) ColorCounts() map[Color]int {
	counts := make(map[Color]int, len(Colors))
	for _, face := range Faces {
		for _, color := range c.Stickers[face] {
			counts[color]++
		}
	}
	return counts
}

// Facelets returns every sticker keyed by face and position.
func (c Cube) Facelets() map[Face]map[Position]Color {
	out := make(map[Face]map[Position]Color, len(Faces))
	for _, face := range Faces {
		m := make(map[Position]Color, len(Positions))
		for _, pos := range Positions {
			m[pos] = c.Stickers[face][pos]
		}
		out[face] = m
	}
	return out
}

// stateOrder is the face order of the encoded state string.
var stateOrder = []Face{U, R, F, D, L, B}

// Encode returns the cube as a 54-letter string, nine letters per face in
// U R F D L B order, each face row-major.
func (c Cube) Encode() string {
	var b strings.Builder
	b.Grow(54)
	for _, face := range stateOrder {
		for _, color := range c.Stickers[face] {
			b.WriteString(color.String())
		}
	}
	return b.String()
}

// ParseState decodes a string produced by Encode. It rejects strings that
// do not hold exactly nine stickers of each color.
func ParseState(s string) (Cube, error) {
	s = strings.TrimSpace(s)
	if len(s) != 54 {
		return Cube{}, fmt.Errorf("%w: want 54 stickers, got %d", ErrInvalidState, len(s))
	}

	var c Cube
	for i, face := range stateOrder {
		for pos := 0; pos < 9; pos++ {
			ch := s[i*9+pos : i*9+pos+1]
			color, ok := ParseColor(ch)
			if !ok {
				return Cube{}, fmt.Errorf("%w: unknown color %q", ErrInvalidState, ch)
			}
			c.Stickers[face][pos] = color
		}
	}

	counts := c.ColorCounts()
	for _, color := range Colors {
		if n := counts[color]; n != 9 {
			return Cube{}, fmt.Errorf("%w: %d %s stickers", ErrInvalidState, n, color)
		}
	}
	return c, nil
}

// MarshalJSON encodes the cube as {"U":{"TL":"W",...},...}.
func (c Cube) MarshalJSON() ([]byte, error) {
	out := make(map[string]map[string]string, len(Faces))
	for _, face := range Faces {
		m := make(map[string]string, len(Positions))
		for _, pos := range Positions {
			m[pos.String()] = c.Stickers[face][pos].String()
		}
		out[face.String()] = m
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes the format written by MarshalJSON.
func (c *Cube) UnmarshalJSON(data []byte) error {
	var in map[string]map[string]string
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	var next Cube
	for _, face := range Faces {
		stickers, ok := in[face.String()]
		if !ok {
			return fmt.Errorf("%w: missing face %s", ErrInvalidState, face)
		}
		for _, pos := range Positions {
			color, ok := ParseColor(stickers[pos.String()])
			if !ok {
				return fmt.Errorf("%w: bad sticker %s %s", ErrInvalidState, face, pos)
			}
			next.Stickers[face][pos] = color
		}
	}
	*c = next
	return nil
}

// FaceString returns a single face as three rows of letters.
func (c Cube) FaceString(face Face) string {
	var b strings.Builder
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			if col > 0 {
				b.WriteString(" ")
			}
			b.WriteString(c.Stickers[face][row*3+col].String())
		}
		b.WriteString("\n")
	}
	return b.String()
}

// String returns the unfolded net of the cube.
func (c Cube) String() string {
	var b strings.Builder

	// U face (indented)
	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		for col := 0; col < 3; col++ {
			b.WriteString(c.Stickers[U][row*3+col].String() + " ")
		}
		b.WriteString("\n")
	}

	// L, F, R, B faces (side by side)
	for row := 0; row < 3; row++ {
		for _, face := range []Face{L, F, R, B} {
			for col := 0; col < 3; col++ {
				b.WriteString(c.Stickers[face][row*3+col].String() + " ")
			}
		}
		b.WriteString("\n")
	}

	// D face (indented)
	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		for col := 0; col < 3; col++ {
			b.WriteString(c.Stickers[D][row*3+col].String() + " ")
		}
		b.WriteString("\n")
	}

	return b.String()
}
