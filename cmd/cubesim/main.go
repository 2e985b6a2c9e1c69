// cubesim - terminal Rubik's cube simulator with scramble, undo-based solving
// and a session journal.
package main

import (
	"github.com/SeamusWaldron/cubesim/internal/cli"
)

func main() {
	cli.Execute()
}
