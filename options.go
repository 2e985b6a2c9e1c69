package cubesim

import (
	"io"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
)

// Option configures Session behavior.
type Option func(*config)

type config struct {
	scrambleLength       int
	recordReorientations bool
	seed                 int64
	rng                  *rand.Rand
	logger               logrus.FieldLogger
}

func defaultConfig() *config {
	return &config{
		scrambleLength:       DefaultScrambleLength,
		recordReorientations: true,
		seed:                 time.Now().UnixNano(),
	}
}

// WithScrambleLength sets how many random turns Scramble applies.
// Values below 1 are ignored.
func WithScrambleLength(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.scrambleLength = n
		}
	}
}

// WithRecordReorientations controls whether whole-cube turns (x, y) are
// recorded in the undo history. Enabled by default, so UndoAll restores the
// original orientation too.
func WithRecordReorientations(enabled bool) Option {
	return func(c *config) {
		c.recordReorientations = enabled
	}
}

// WithSeed seeds the scramble source for reproducible scrambles.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.seed = seed
		c.rng = nil
	}
}

// WithRand uses rng as the scramble source.
func WithRand(rng *rand.Rand) Option {
	return func(c *config) {
		c.rng = rng
	}
}

// WithLogger sets the logger used for debug output. By default nothing is
// logged.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// discardLogger returns a logger that drops everything.
func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
