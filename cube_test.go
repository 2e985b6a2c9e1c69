package cubesim

import (
	"encoding/json"
	"errors"
	"math/rand"
	"testing"
)

func TestNewCubeIsSolved(t *testing.T) {
	c := NewCube()
	if !c.IsSolved() {
		t.Error("New cube should be solved")
	}
	if !c.IsUniform() {
		t.Error("New cube should be uniform")
	}
}

func TestSingleMoveBreaksSolved(t *testing.T) {
	c := Apply(NewCube(), MoveR)
	if c.IsSolved() {
		t.Error("Cube should not be solved after R move")
	}
}

func TestFourQuarterTurns_ReturnToStart_AllFaces(t *testing.T) {
	start, _ := Scramble(NewCube(), 30, rand.New(rand.NewSource(7)))
	for _, face := range Faces {
		c := start
		for i := 0; i < 4; i++ {
			c = RotateLayerClockwise(c, face)
		}
		if !c.Equal(start) {
			t.Errorf("%v x 4 should return to the starting state", face)
			t.Log(c.String())
		}
	}
}

func TestFaceRotatorOnlyTouchesOneFace(t *testing.T) {
	c := NewCube()
	// Paint U with a recognisable pattern.
	c.Stickers[U] = [9]Color{White, Yellow, Green, Blue, Red, Orange, White, Yellow, Green}

	next := RotateFaceClockwise(c, U)

	want := [9]Color{White, Blue, White, Yellow, Red, Yellow, Green, Orange, Green}
	if next.Stickers[U] != want {
		t.Errorf("U after face rotation = %v, want %v", next.Stickers[U], want)
	}
	for _, face := range []Face{D, F, B, R, L} {
		if next.Stickers[face] != c.Stickers[face] {
			t.Errorf("face %v changed by rotating U", face)
		}
	}
	if next.Get(U, Center) != c.Get(U, Center) {
		t.Error("center must not move")
	}
	if c.Stickers[U][TopMiddle] != Yellow {
		t.Error("input cube was modified")
	}
}

func TestFrontTurnMovesBorders(t *testing.T) {
	c := Apply(NewCube(), MoveF)

	for _, pos := range []Position{BottomLeft, BottomMiddle, BottomRight} {
		if got := c.Get(U, pos); got != Orange {
			t.Errorf("U %v = %v, want O", pos, got)
		}
	}
	for _, pos := range []Position{TopLeft, MiddleLeft, BottomLeft} {
		if got := c.Get(R, pos); got != White {
			t.Errorf("R %v = %v, want W", pos, got)
		}
	}
	for _, pos := range []Position{TopLeft, TopMiddle, TopRight} {
		if got := c.Get(D, pos); got != Red {
			t.Errorf("D %v = %v, want R", pos, got)
		}
	}
	for _, pos := range []Position{TopRight, MiddleRight, BottomRight} {
		if got := c.Get(L, pos); got != Yellow {
			t.Errorf("L %v = %v, want Y", pos, got)
		}
	}
	if c.Stickers[F] != NewCube().Stickers[F] {
		t.Error("F stickers of a solved cube stay green after F")
	}
}

func TestUpTurnCyclesTopRows(t *testing.T) {
	c := Apply(NewCube(), MoveU)

	// Looking down on U, a clockwise turn carries each side's top row one
	// face to the left: the front row now comes from the right face.
	want := map[Face]Color{F: Red, R: Blue, B: Orange, L: Green}
	for face, color := range want {
		for _, pos := range []Position{TopLeft, TopMiddle, TopRight} {
			if got := c.Get(face, pos); got != color {
				t.Errorf("%v %v = %v, want %v", face, pos, got, color)
			}
		}
		for _, pos := range []Position{MiddleLeft, BottomRight} {
			if got := c.Get(face, pos); got != solvedColor(face) {
				t.Errorf("%v %v changed to %v", face, pos, got)
			}
		}
	}
}

func TestUpTurnAdvancesUpStickers(t *testing.T) {
	// F puts orange along U's bottom row; U then carries that row to
	// U's left column.
	c := ApplyAll(NewCube(), []Move{MoveF, MoveU})

	want := [9]Color{Orange, White, White, Orange, White, White, Orange, White, White}
	if c.Stickers[U] != want {
		t.Errorf("U after F U = %v, want %v", c.Stickers[U], want)
		t.Log(c.String())
	}
}

func TestEncodeKnownState(t *testing.T) {
	c := Apply(NewCube(), MoveR)
	want := "WWGWWGWWGRRRRRRRRRGGYGGYGGYYYBYYBYYBOOOOOOOOOWBBWBBWBB"
	if got := c.Encode(); got != want {
		t.Errorf("Encode after R = %s, want %s", got, want)
	}
}

func TestParseStateRoundTrip(t *testing.T) {
	c := ApplyAll(NewCube(), TPerm)
	parsed, err := ParseState(c.Encode())
	if err != nil {
		t.Fatalf("ParseState: %v", err)
	}
	if !parsed.Equal(c) {
		t.Error("decoded cube differs from the encoded one")
	}
}

func TestParseStateRejectsBadInput(t *testing.T) {
	solved := NewCube().Encode()
	cases := map[string]string{
		"short":        solved[:53],
		"bad letter":   "X" + solved[1:],
		"bad multiset": "Y" + solved[1:],
	}
	for name, s := range cases {
		if _, err := ParseState(s); !errors.Is(err, ErrInvalidState) {
			t.Errorf("%s: err = %v, want ErrInvalidState", name, err)
		}
	}
}

func TestCubeJSON(t *testing.T) {
	c := ApplyAll(NewCube(), SexyMove)
	data, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var back Cube
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !back.Equal(c) {
		t.Error("JSON round trip changed the cube")
	}

	if err := json.Unmarshal([]byte(`{"U":{}}`), &back); !errors.Is(err, ErrInvalidState) {
		t.Errorf("partial cube err = %v, want ErrInvalidState", err)
	}
}

func TestFaceletsView(t *testing.T) {
	c := Apply(NewCube(), MoveF)
	view := c.Facelets()
	if len(view) != 6 {
		t.Fatalf("got %d faces, want 6", len(view))
	}
	for _, face := range Faces {
		for _, pos := range Positions {
			if view[face][pos] != c.Get(face, pos) {
				t.Errorf("view %v %v disagrees with Get", face, pos)
			}
		}
	}
}

func TestFaceString(t *testing.T) {
	c := Apply(NewCube(), MoveF)
	want := "W W W\nW W W\nO O O\n"
	if got := c.FaceString(U); got != want {
		t.Errorf("FaceString(U) = %q, want %q", got, want)
	}
}
