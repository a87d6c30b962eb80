package bot

import (
	"math/rand/v2"
	"time"
)

const (
	// SearchDepth is the number of plies searched per engine move.
	SearchDepth = 6
	// SimulationSize is the number of random playouts run per leaf.
	SimulationSize = 100
)

// Engine picks moves with a depth-limited alpha-beta search whose leaves
// are scored by an Evaluator. It is not safe for concurrent use.
type Engine struct {
	depth       int
	simulations int
	rng         *rand.Rand
	evaluator   Evaluator
	nodes       int
}

type Option func(*Engine)

// WithSeed seeds the engine's random source.
func WithSeed(seed uint64) Option {
	return func(e *Engine) {
		e.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// WithRand makes the engine draw from rng. The caller must not use rng
// concurrently with the engine.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) {
		e.rng = rng
	}
}

func WithSearchDepth(depth int) Option {
	return func(e *Engine) {
		e.depth = depth
	}
}

func WithSimulations(n int) Option {
	return func(e *Engine) {
		e.simulations = n
	}
}

// WithEvaluator replaces the Monte Carlo evaluator. Scores returned by
// ev must stay within [-simulations, simulations].
func WithEvaluator(ev Evaluator) Option {
	return func(e *Engine) {
		e.evaluator = ev
	}
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		depth:       SearchDepth,
		simulations: SimulationSize,
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.depth < 1 {
		e.depth = 1
	}
	if e.simulations < 1 {
		e.simulations = 1
	}
	if e.rng == nil {
		seed := uint64(time.Now().UnixNano())
		e.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
	if e.evaluator == nil {
		e.evaluator = NewMonteCarlo(e.simulations, e.rng)
	}
	return e
}

func (e *Engine) Depth() int {
	return e.depth
}

func (e *Engine) Simulations() int {
	return e.simulations
}

// Rand returns the engine's random source.
func (e *Engine) Rand() *rand.Rand {
	return e.rng
}

// Nodes returns the number of moves applied by the last search.
func (e *Engine) Nodes() int {
	return e.nodes
}
