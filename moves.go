package cubesim

// Predefined moves for convenience.
// Use these instead of constructing Move structs manually.
//
// Example:
//
//	c = cubesim.ApplyAll(c, []cubesim.Move{cubesim.MoveR, cubesim.MoveU, cubesim.MoveRPrime})
var (
	// Right face moves
	MoveR      = Move{Token: TokenR, Direction: Clockwise}        // Right clockwise
	MoveRPrime = Move{Token: TokenR, Direction: CounterClockwise} // Right counter-clockwise

	// Left face moves
	MoveL      = Move{Token: TokenL, Direction: Clockwise}        // Left clockwise
	MoveLPrime = Move{Token: TokenL, Direction: CounterClockwise} // Left counter-clockwise

	// Up face moves
	MoveU      = Move{Token: TokenU, Direction: Clockwise}        // Up clockwise
	MoveUPrime = Move{Token: TokenU, Direction: CounterClockwise} // Up counter-clockwise

	// Down face moves
	MoveD      = Move{Token: TokenD, Direction: Clockwise}        // Down clockwise
	MoveDPrime = Move{Token: TokenD, Direction: CounterClockwise} // Down counter-clockwise

	// Front face moves
	MoveF      = Move{Token: TokenF, Direction: Clockwise}        // Front clockwise
	MoveFPrime = Move{Token: TokenF, Direction: CounterClockwise} // Front counter-clockwise

	// Back face moves
	MoveB      = Move{Token: TokenB, Direction: Clockwise}        // Back clockwise
	MoveBPrime = Move{Token: TokenB, Direction: CounterClockwise} // Back counter-clockwise

	// Slice moves
	MoveM      = Move{Token: TokenM, Direction: Clockwise}
	MoveMPrime = Move{Token: TokenM, Direction: CounterClockwise}
	MoveE      = Move{Token: TokenE, Direction: Clockwise}
	MoveEPrime = Move{Token: TokenE, Direction: CounterClockwise}
	MoveS      = Move{Token: TokenS, Direction: Clockwise}
	MoveSPrime = Move{Token: TokenS, Direction: CounterClockwise}

	// Whole-cube reorientations
	MoveX      = Move{Token: TokenRCX, Direction: Clockwise}
	MoveXPrime = Move{Token: TokenRCX, Direction: CounterClockwise}
	MoveY      = Move{Token: TokenRCY, Direction: Clockwise}
	MoveYPrime = Move{Token: TokenRCY, Direction: CounterClockwise}
)

// Sexy move: R U R' U' - one of the most common algorithms
var SexyMove = []Move{MoveR, MoveU, MoveRPrime, MoveUPrime}

// T-perm algorithm (R2 written as R R)
var TPerm = []Move{
	MoveR, MoveU, MoveRPrime, MoveUPrime, MoveRPrime, MoveF, MoveR, MoveR,
	MoveUPrime, MoveRPrime, MoveUPrime, MoveR, MoveU, MoveRPrime, MoveFPrime,
}
