package cubesim

// faceCW maps each destination position to the position it takes its
// sticker from in a clockwise quarter turn.
// Corner rotation: TL<-BL<-BR<-TR<-TL
// Edge rotation: TM<-ML<-BM<-MR<-TM
var faceCW = [9]Position{
	TopLeft:      BottomLeft,
	TopMiddle:    MiddleLeft,
	TopRight:     TopLeft,
	MiddleLeft:   BottomMiddle,
	Center:       Center,
	MiddleRight:  TopMiddle,
	BottomLeft:   BottomRight,
	BottomMiddle: MiddleRight,
	BottomRight:  TopRight,
}

// RotateFaceClockwise turns the nine stickers of one face a quarter turn
// clockwise. No other face changes.
func RotateFaceClockwise(c Cube, face Face) Cube {
	next := c
	for dst, src := range faceCW {
		next.Stickers[face][dst] = c.Stickers[face][src]
	}
	return next
}

// rotateFace turns one face's stickers clockwise the given number of
// quarter turns.
func rotateFace(c Cube, face Face, quarters int) Cube {
	for i := 0; i < quarters%4; i++ {
		c = RotateFaceClockwise(c, face)
	}
	return c
}

// RotateLayerClockwise performs a clockwise quarter turn of the outer layer
// at face: the face itself plus the border strips of its four neighbours.
// Every sticker is read from c and written to the returned copy, so the
// four strips cycle as one step.
func RotateLayerClockwise(c Cube, face Face) Cube {
	next := RotateFaceClockwise(c, face)

	up := adjacency[face][EdgeUp]
	down := adjacency[face][EdgeDown]
	left := adjacency[face][EdgeLeft]
	right := adjacency[face][EdgeRight]

	for i := 0; i < 3; i++ {
		// left -> up and right -> down flip order; down -> left and
		// up -> right keep it.
		next.Stickers[up.Face][up.Positions[i]] = c.Stickers[left.Face][left.Positions[2-i]]
		next.Stickers[down.Face][down.Positions[i]] = c.Stickers[right.Face][right.Positions[2-i]]
		next.Stickers[left.Face][left.Positions[i]] = c.Stickers[down.Face][down.Positions[i]]
		next.Stickers[right.Face][right.Positions[i]] = c.Stickers[up.Face][up.Positions[i]]
	}

	return next
}
