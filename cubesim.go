// Package cubesim provides a 3x3 Rubik's cube facelet engine.
//
// # Features
//
//   - Sticker-level cube model with solved detection
//   - Face, slice (M, E, S) and whole-cube (x, y) quarter turns
//   - Undo history for "solve by undo"
//   - Reproducible random scrambles
//
// # Quick Start
//
//	c := cubesim.NewCube()
//	c = cubesim.Apply(c, cubesim.MoveR)
//	c = cubesim.ApplyAll(c, cubesim.SexyMove)
//	fmt.Println(c)
//
// # Sessions
//
// A Session owns the current cube for an interactive front end:
//
//	s := cubesim.NewSession(cubesim.WithScrambleLength(25))
//	s.OnChange(func(c cubesim.Cube) { redraw(c) })
//
//	s.Scramble()              // not recorded
//	s.ApplyNotation("R U R'") // recorded
//	s.UndoAll()               // undoes R U R' only
//	s.Reset()                 // solved, history cleared
//
// Counter-clockwise turns are always applied as three clockwise turns, and
// every turn builds the next Cube from an unmodified copy of the previous
// one.
package cubesim
