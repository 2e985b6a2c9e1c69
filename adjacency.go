package cubesim

// Edge names one side of a face as seen when looking straight at it.
type Edge int

const (
	EdgeUp Edge = iota
	EdgeDown
	EdgeLeft
	EdgeRight
)

func (e Edge) String() string {
	switch e {
	case EdgeUp:
		return "up"
	case EdgeDown:
		return "down"
	case EdgeLeft:
		return "left"
	case EdgeRight:
		return "right"
	default:
		return "?"
	}
}

// Strip is the row or column of three stickers on a neighbouring face that
// borders one edge of a turning face.
type Strip struct {
	Face      Face
	Positions [3]Position
}

// Up and down strips run left to right, left and right strips run top to
// bottom, always in the frame of the turning face. The border cycle in
// RotateLayerClockwise relies on this ordering.
var adjacency = [6][4]Strip{
	U: {
		EdgeUp:    {B, [3]Position{TopRight, TopMiddle, TopLeft}},
		EdgeDown:  {F, [3]Position{TopLeft, TopMiddle, TopRight}},
		EdgeLeft:  {L, [3]Position{TopLeft, TopMiddle, TopRight}},
		EdgeRight: {R, [3]Position{TopRight, TopMiddle, TopLeft}},
	},
	D: {
		EdgeUp:    {F, [3]Position{BottomLeft, BottomMiddle, BottomRight}},
		EdgeDown:  {B, [3]Position{BottomRight, BottomMiddle, BottomLeft}},
		EdgeLeft:  {L, [3]Position{BottomRight, BottomMiddle, BottomLeft}},
		EdgeRight: {R, [3]Position{BottomLeft, BottomMiddle, BottomRight}},
	},
	F: {
		EdgeUp:    {U, [3]Position{BottomLeft, BottomMiddle, BottomRight}},
		EdgeDown:  {D, [3]Position{TopLeft, TopMiddle, TopRight}},
		EdgeLeft:  {L, [3]Position{TopRight, MiddleRight, BottomRight}},
		EdgeRight: {R, [3]Position{TopLeft, MiddleLeft, BottomLeft}},
	},
	B: {
		EdgeUp:    {U, [3]Position{TopRight, TopMiddle, TopLeft}},
		EdgeDown:  {D, [3]Position{BottomRight, BottomMiddle, BottomLeft}},
		EdgeLeft:  {R, [3]Position{TopRight, MiddleRight, BottomRight}},
		EdgeRight: {L, [3]Position{TopLeft, MiddleLeft, BottomLeft}},
	},
	R: {
		EdgeUp:    {U, [3]Position{BottomRight, MiddleRight, TopRight}},
		EdgeDown:  {D, [3]Position{TopRight, MiddleRight, BottomRight}},
		EdgeLeft:  {F, [3]Position{TopRight, MiddleRight, BottomRight}},
		EdgeRight: {B, [3]Position{TopLeft, MiddleLeft, BottomLeft}},
	},
	L: {
		EdgeUp:    {U, [3]Position{TopLeft, MiddleLeft, BottomLeft}},
		EdgeDown:  {D, [3]Position{BottomLeft, MiddleLeft, TopLeft}},
		EdgeLeft:  {B, [3]Position{TopRight, MiddleRight, BottomRight}},
		EdgeRight: {F, [3]Position{TopLeft, MiddleLeft, BottomLeft}},
	},
}

// Neighbour returns the strip bordering the given edge of face.
func Neighbour(face Face, edge Edge) Strip {
	return adjacency[face][edge]
}
