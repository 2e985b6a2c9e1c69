package cubesim

import "math/rand"

// DefaultScrambleLength is the number of random turns in a scramble.
const DefaultScrambleLength = 100

// Scramble applies n random clockwise face turns to c and returns the
// result and the turns used. Each face is drawn uniformly; consecutive
// turns may cancel. Nothing is recorded in any History. A non-positive n
// returns c unchanged.
func Scramble(c Cube, n int, rng *rand.Rand) (Cube, []Move) {
	if n <= 0 {
		return c, nil
	}

	moves := make([]Move, 0, n)
	for i := 0; i < n; i++ {
		token := FaceTokens[rng.Intn(len(FaceTokens))]
		m := Move{Token: token, Direction: Clockwise}
		c = Apply(c, m)
		moves = append(moves, m)
	}
	return c, moves
}

// Scrambler produces reproducible scrambles from a seeded source.
type Scrambler struct {
	rng  *rand.Rand
	seed int64
}

// NewScrambler returns a scrambler seeded with seed.
func NewScrambler(seed int64) *Scrambler {
	return &Scrambler{rng: rand.New(rand.NewSource(seed)), seed: seed}
}

// Seed returns the seed the scrambler was created with.
func (s *Scrambler) Seed() int64 {
	return s.seed
}

// Scramble applies n random clockwise face turns to c.
func (s *Scrambler) Scramble(c Cube, n int) (Cube, []Move) {
	return Scramble(c, n, s.rng)
}
