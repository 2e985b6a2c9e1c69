package cubesim

// relabel moves one face's stickers to another face slot, turning them
// clockwise by quarters on the way.
type relabel struct {
	to       Face
	from     Face
	quarters int
}

// reorientation is a whole-cube turn expressed as face relabelling plus
// face-only turns of the two faces on the rotation axis.
type reorientation struct {
	relabels []relabel
	cw       Face // axis face that turns clockwise
	ccw      Face // opposite axis face, turns counter-clockwise
}

var reorientations = map[Token]reorientation{
	// Same sense as R: the front comes up.
	TokenRCX: {
		relabels: []relabel{
			{to: U, from: F},
			{to: F, from: D},
			{to: D, from: B, quarters: 2},
			{to: B, from: U, quarters: 2},
		},
		cw:  R,
		ccw: L,
	},
	// Same sense as U: the right face comes to the front.
	TokenRCY: {
		relabels: []relabel{
			{to: F, from: R},
			{to: R, from: B},
			{to: B, from: L},
			{to: L, from: F},
		},
		cw:  U,
		ccw: D,
	},
}

// reorient applies one clockwise whole-cube turn.
func reorient(c Cube, r reorientation) Cube {
	next := c
	for _, rl := range r.relabels {
		moved := rotateFace(c, rl.from, rl.quarters)
		next.Stickers[rl.to] = moved.Stickers[rl.from]
	}
	next = rotateFace(next, r.cw, 1)
	next = rotateFace(next, r.ccw, 3)
	return next
}
