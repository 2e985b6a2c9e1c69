package cubesim

import (
	"fmt"
	"strings"
)

// Token identifies what a move turns: an outer face, an inner slice, or the
// whole cube.
type Token int

const (
	TokenU Token = iota // Up face
	TokenD              // Down face
	TokenF              // Front face
	TokenB              // Back face
	TokenR              // Right face
	TokenL              // Left face

	TokenM // Middle slice, between L and R
	TokenE // Equator slice, between U and D
	TokenS // Standing slice, between F and B

	TokenRCX // Whole cube about the L-R axis
	TokenRCY // Whole cube about the U-D axis
)

// FaceTokens lists the six primitive face-turn tokens.
var FaceTokens = []Token{TokenU, TokenD, TokenF, TokenB, TokenR, TokenL}

// Tokens lists the full move vocabulary.
var Tokens = []Token{
	TokenU, TokenD, TokenF, TokenB, TokenR, TokenL,
	TokenM, TokenE, TokenS,
	TokenRCX, TokenRCY,
}

func (t Token) String() string {
	switch t {
	case TokenU:
		return "U"
	case TokenD:
		return "D"
	case TokenF:
		return "F"
	case TokenB:
		return "B"
	case TokenR:
		return "R"
	case TokenL:
		return "L"
	case TokenM:
		return "M"
	case TokenE:
		return "E"
	case TokenS:
		return "S"
	case TokenRCX:
		return "x"
	case TokenRCY:
		return "y"
	default:
		return "?"
	}
}

// Valid reports whether t belongs to the move vocabulary.
func (t Token) Valid() bool {
	return t >= TokenU && t <= TokenRCY
}

// IsFace reports whether t turns a single outer face.
func (t Token) IsFace() bool {
	return t >= TokenU && t <= TokenL
}

// IsSlice reports whether t turns an inner slice.
func (t Token) IsSlice() bool {
	return t >= TokenM && t <= TokenS
}

// IsReorientation reports whether t turns the whole cube.
func (t Token) IsReorientation() bool {
	return t == TokenRCX || t == TokenRCY
}

// Face returns the face turned by a face token.
func (t Token) Face() (Face, bool) {
	if !t.IsFace() {
		return 0, false
	}
	return Face(t), true
}

// FaceToken returns the token that turns face f.
func FaceToken(f Face) Token {
	return Token(f)
}

// Direction is the sense of a quarter turn, seen from outside the face.
type Direction int

const (
	Clockwise        Direction = 1
	CounterClockwise Direction = -1
)

func (d Direction) String() string {
	switch d {
	case Clockwise:
		return "cw"
	case CounterClockwise:
		return "ccw"
	default:
		return "?"
	}
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	if d == CounterClockwise {
		return Clockwise
	}
	return CounterClockwise
}

// Move is a single quarter turn of a token in a direction.
type Move struct {
	Token     Token
	Direction Direction
}

// Notation returns the standard notation for this move.
// Examples: R, R', M, M', x, y'
func (m Move) Notation() string {
	if m.Direction == CounterClockwise {
		return m.Token.String() + "'"
	}
	return m.Token.String()
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// Inverse returns the move that undoes m.
// R becomes R', R' becomes R.
func (m Move) Inverse() Move {
	return Move{Token: m.Token, Direction: m.Direction.Reverse()}
}

// ParseMove parses a single notation token into moves. A "2" suffix yields
// two clockwise quarter turns.
// Examples: R, R', R2, M', x, y', RCX, RCY'
func ParseMove(s string) ([]Move, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return nil, ErrInvalidNotation
	}

	name, suffix := splitSuffix(s)
	token, ok := parseToken(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}

	switch suffix {
	case "":
		return []Move{{Token: token, Direction: Clockwise}}, nil
	case "'", "`":
		return []Move{{Token: token, Direction: CounterClockwise}}, nil
	case "2", "2'", "2`":
		cw := Move{Token: token, Direction: Clockwise}
		return []Move{cw, cw}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}
}

// splitSuffix separates the token name from a trailing prime or double.
func splitSuffix(s string) (string, string) {
	i := strings.IndexAny(s, "'`2")
	if i < 0 {
		return s, ""
	}
	return s[:i], s[i:]
}

func parseToken(name string) (Token, bool) {
	switch name {
	case "U", "u":
		return TokenU, true
	case "D", "d":
		return TokenD, true
	case "F", "f":
		return TokenF, true
	case "B", "b":
		return TokenB, true
	case "R", "r":
		return TokenR, true
	case "L", "l":
		return TokenL, true
	case "M":
		return TokenM, true
	case "E":
		return TokenE, true
	case "S":
		return TokenS, true
	case "x", "X", "RCX", "rcx":
		return TokenRCX, true
	case "y", "Y", "RCY", "rcy":
		return TokenRCY, true
	default:
		return 0, false
	}
}

// ParseMoves parses a space-separated sequence of moves.
// Example: "R U R' U' M2 x"
// The whole sequence is rejected if any token is invalid.
func ParseMoves(s string) ([]Move, error) {
	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))

	for i, part := range parts {
		parsed, err := ParseMove(part)
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i+1, err)
		}
		moves = append(moves, parsed...)
	}

	return moves, nil
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}

// InvertMoves returns the sequence that undoes moves.
func InvertMoves(moves []Move) []Move {
	out := make([]Move, len(moves))
	for i, m := range moves {
		out[len(moves)-1-i] = m.Inverse()
	}
	return out
}

// CompactMoves formats moves in the shortest notation by merging runs of
// the same token: "R R" becomes "R2", "R R R" becomes "R'", and turns that
// cancel out are dropped along with anything they expose.
// Examples: "R U U' R'" -> "", "x x' y" -> "y"
func CompactMoves(moves []Move) string {
	type run struct {
		token    Token
		quarters int
	}

	var stack []run
	for _, m := range moves {
		q := 1
		if m.Direction == CounterClockwise {
			q = 3
		}

		if n := len(stack); n > 0 && stack[n-1].token == m.Token {
			stack[n-1].quarters = (stack[n-1].quarters + q) % 4
			if stack[n-1].quarters == 0 {
				stack = stack[:n-1]
			}
			continue
		}
		stack = append(stack, run{token: m.Token, quarters: q})
	}

	parts := make([]string, len(stack))
	for i, r := range stack {
		switch r.quarters {
		case 1:
			parts[i] = r.token.String()
		case 2:
			parts[i] = r.token.String() + "2"
		default:
			parts[i] = r.token.String() + "'"
		}
	}

	return strings.Join(parts, " ")
}
