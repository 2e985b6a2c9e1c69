package cubesim

// sliceTurns holds the two clockwise-direction face turns each slice
// decomposes into. The slice's own direction applies on top: a
// counter-clockwise slice is three clockwise ones.
var sliceTurns = map[Token][2]Move{
	TokenM: {MoveL, MoveRPrime},
	TokenE: {MoveU, MoveDPrime},
	TokenS: {MoveFPrime, MoveB},
}

// Apply returns the cube after one move. Counter-clockwise moves are three
// clockwise ones. Tokens outside the vocabulary leave the cube unchanged.
func Apply(c Cube, m Move) Cube {
	if !m.Token.Valid() {
		return c
	}

	turns := 1
	if m.Direction == CounterClockwise {
		turns = 3
	}

	for i := 0; i < turns; i++ {
		c = applyClockwise(c, m.Token)
	}
	return c
}

// ApplyAll applies moves in order.
func ApplyAll(c Cube, moves []Move) Cube {
	for _, m := range moves {
		c = Apply(c, m)
	}
	return c
}

// applyClockwise applies one clockwise quarter turn of token.
func applyClockwise(c Cube, token Token) Cube {
	switch {
	case token.IsFace():
		return RotateLayerClockwise(c, Face(token))
	case token.IsSlice():
		turns := sliceTurns[token]
		return Apply(Apply(c, turns[0]), turns[1])
	case token.IsReorientation():
		return reorient(c, reorientations[token])
	default:
		return c
	}
}
