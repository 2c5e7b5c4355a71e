package searcher

import (
	"errors"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"shogi/game"
)

// Default MCTS hyperparameters.
const (
	DefaultSimulations      = 400
	DefaultCPuct            = 1.4
	DefaultDirichletAlpha   = 0.3
	DefaultDirichletEpsilon = 0.25
)

type Option func(*MCTS)

// MCTS is a policy/value-guided tree search. Each simulation descends by
// PUCT, expands one leaf through the evaluator, and backs the leaf value
// up the visited path with a sign flip per ply. The budget is a simulation
// count, a deadline, or both, checked between simulations only.
type MCTS struct {
	simulations int
	deadline    time.Duration
	goroutines  int
	cpuct       float64
	temperature float64
	noiseAlpha  float64
	noiseEps    float64
	seed        uint64
	evaluate    game.Evaluate
}

// WithSimulations sets the simulation budget.
func WithSimulations(simulations int) Option {
	return func(m *MCTS) {
		if simulations > 0 {
			m.simulations = simulations
		}
	}
}

// WithDeadline bounds a search by wall time instead of (or in addition
// to) a simulation count.
func WithDeadline(deadline time.Duration) Option {
	return func(m *MCTS) {
		if deadline > 0 {
			m.deadline = deadline
		}
	}
}

// WithGoroutines runs simulations concurrently; node statistics are
// serialized per node and in-flight paths carry a virtual loss.
func WithGoroutines(goroutines int) Option {
	return func(m *MCTS) {
		if goroutines > 0 {
			m.goroutines = goroutines
		}
	}
}

// WithCPuct sets the exploration constant.
func WithCPuct(cpuct float64) Option {
	return func(m *MCTS) {
		if cpuct > 0 {
			m.cpuct = cpuct
		}
	}
}

// WithTemperature controls move selection after the budget is spent:
// zero picks the most-visited move deterministically, larger values
// sample proportionally to visits^(1/t).
func WithTemperature(temperature float64) Option {
	return func(m *MCTS) {
		if temperature >= 0 {
			m.temperature = temperature
		}
	}
}

// WithDirichletNoise perturbs the root priors to diversify self-play:
// prior = (1-epsilon)*prior + epsilon*Dirichlet(alpha).
func WithDirichletNoise(alpha, epsilon float64) Option {
	return func(m *MCTS) {
		if alpha > 0 && epsilon > 0 {
			m.noiseAlpha = alpha
			m.noiseEps = epsilon
		}
	}
}

// WithEvaluationFn sets the evaluator; without one the uniform stub for
// the searched variant is used.
func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(m *MCTS) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

// WithSeed fixes the sampling seed for reproducible noise and
// temperature draws.
func WithSeed(seed uint64) Option {
	return func(m *MCTS) {
		m.seed = seed
	}
}

func NewMCTS(options ...Option) *MCTS {
	m := &MCTS{
		goroutines: 1,
		cpuct:      DefaultCPuct,
	}
	for _, option := range options {
		option(m)
	}
	if m.simulations <= 0 && m.deadline <= 0 {
		panic("must specify a simulation budget or a deadline")
	}
	return m
}

// Search runs the configured budget of simulations from p and returns the
// selected move. The tree is rebuilt per call; positions are shared with
// the caller but never mutated.
func (m *MCTS) Search(p *game.Position) (game.Move, Diagnostics, error) {
	if p.IsTerminal() {
		return nil, Diagnostics{}, errors.New("mcts: no legal moves in terminal position")
	}
	evaluate := m.evaluate
	if evaluate == nil {
		evaluate = game.EvaluateUniform(p.Variant())
	}
	rng := rand.New(rand.NewSource(m.seed))
	if m.seed == 0 {
		rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	metrics := newCollector()

	var deadline time.Time
	if m.deadline > 0 {
		deadline = time.Now().Add(m.deadline)
	}

	// The first simulation expands the root; noise applies to the
	// fresh root priors before any descent.
	root := &node{}
	if err := m.runSimulation(root, p, evaluate); err != nil {
		return nil, Diagnostics{}, err
	}
	metrics.addSimulation()
	if m.noiseEps > 0 {
		mixNoise(root, m.noiseAlpha, m.noiseEps, rng)
	}

	var err error
	if m.goroutines > 1 {
		err = m.runParallel(root, p, evaluate, deadline, metrics)
	} else {
		err = m.runSequential(root, p, evaluate, deadline, metrics)
	}
	if err != nil {
		return nil, Diagnostics{}, err
	}

	chosen := mostVisited(root.children)
	if m.temperature > 0 {
		chosen = sampleVisits(root.children, m.temperature, rng)
	}
	return chosen.move, metrics.complete(root, p.Variant()), nil
}

// runSimulation performs one selection/expansion/backup pass and records
// it on the root.
func (m *MCTS) runSimulation(root *node, p *game.Position, evaluate game.Evaluate) error {
	value, err := m.simulate(root, p, evaluate)
	if err != nil {
		return err
	}
	root.mu.Lock()
	root.visits++
	root.value += value
	root.mu.Unlock()
	return nil
}

func (m *MCTS) runSequential(root *node, p *game.Position, evaluate game.Evaluate, deadline time.Time, metrics *collector) error {
	for m.withinBudget(metrics, deadline) {
		if err := m.runSimulation(root, p, evaluate); err != nil {
			return err
		}
		metrics.addSimulation()
	}
	return nil
}

func (m *MCTS) runParallel(root *node, p *game.Position, evaluate game.Evaluate, deadline time.Time, metrics *collector) error {
	var wg sync.WaitGroup
	var stop atomic.Bool
	var once sync.Once
	var firstErr error

	for i := 0; i < m.goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for !stop.Load() {
				if !m.claimSimulation(metrics, deadline, &stop) {
					return
				}
				if err := m.runSimulation(root, p, evaluate); err != nil {
					once.Do(func() { firstErr = err })
					stop.Store(true)
					return
				}
			}
		}()
	}
	wg.Wait()
	return firstErr
}

// withinBudget reports whether another simulation may start.
func (m *MCTS) withinBudget(metrics *collector, deadline time.Time) bool {
	if m.simulations > 0 && metrics.simulations() >= m.simulations {
		return false
	}
	if !deadline.IsZero() && !time.Now().Before(deadline) {
		return false
	}
	return true
}

// claimSimulation reserves one simulation slot for a worker, so the
// simulation count is exact even under concurrency.
func (m *MCTS) claimSimulation(metrics *collector, deadline time.Time, stop *atomic.Bool) bool {
	if stop.Load() {
		return false
	}
	if !deadline.IsZero() && !time.Now().Before(deadline) {
		return false
	}
	if claimed := metrics.claim(); m.simulations > 0 && claimed > m.simulations {
		metrics.release()
		return false
	}
	return true
}

// simulate descends from n, whose position is p, and returns the backed-up
// value from the perspective of the player to move in p. Terminal
// positions return their exact value; unexpanded nodes are expanded
// through the evaluator and return its value estimate; otherwise the PUCT
// child is descended and its subtree value negated across the ply
// boundary.
func (m *MCTS) simulate(n *node, p *game.Position, evaluate game.Evaluate) (float64, error) {
	if p.IsTerminal() {
		return terminalValue(p), nil
	}

	n.mu.Lock()
	if !n.expanded {
		children, value, err := expand(p, evaluate)
		if err != nil {
			n.mu.Unlock()
			return 0, err
		}
		n.children = children
		n.expanded = true
		n.mu.Unlock()
		return value, nil
	}
	child := n.selectChild(m.cpuct)
	child.addLoss()
	n.mu.Unlock()

	next, err := p.Apply(child.move)
	if err != nil {
		child.dropLoss()
		panic("expanded move rejected: " + err.Error())
	}
	v, err := m.simulate(child, next, evaluate)
	if err != nil {
		child.dropLoss()
		return 0, err
	}
	value := -v
	child.record(value)
	return value, nil
}

// expand evaluates p, masks the prior to the legal moves, renormalizes
// the surviving mass and creates one child per move. A prior that puts no
// mass on any legal move degrades to uniform.
func expand(p *game.Position, evaluate game.Evaluate) ([]*node, float64, error) {
	prior, value, err := wellFormed(p, evaluate)
	if err != nil {
		return nil, 0, err
	}

	moves := p.LegalMoves()
	if len(moves) == 0 {
		panic("expanding a position with no legal moves")
	}
	variant := p.Variant()
	total := 0.0
	for _, move := range moves {
		total += prior[variant.EncodeMove(move)]
	}
	children := make([]*node, len(moves))
	for i, move := range moves {
		pr := 1.0 / float64(len(moves))
		if total > 0 {
			pr = prior[variant.EncodeMove(move)] / total
		}
		children[i] = &node{move: move, prior: pr}
	}
	return children, value, nil
}

// wellFormed validates the evaluator contract before any of its output is
// trusted. Violations fail the whole search; silently substituting a
// default move would corrupt play and training data downstream.
func wellFormed(p *game.Position, evaluate game.Evaluate) ([]float64, float64, error) {
	prior, value := evaluate(p)
	if len(prior) != p.Variant().ActionSpace() {
		err := &game.MalformedEvaluatorOutputError{
			Reason: "prior length does not match the action space",
		}
		log.Error().Int("len", len(prior)).Int("want", p.Variant().ActionSpace()).Msg(err.Error())
		return nil, 0, err
	}
	for _, pr := range prior {
		if math.IsNaN(pr) || math.IsInf(pr, 0) || pr < 0 {
			err := &game.MalformedEvaluatorOutputError{Reason: "prior holds a non-finite or negative probability"}
			log.Error().Msg(err.Error())
			return nil, 0, err
		}
	}
	if math.IsNaN(value) || value < -1 || value > 1 {
		err := &game.MalformedEvaluatorOutputError{Reason: "value outside [-1, 1]"}
		log.Error().Float64("value", value).Msg(err.Error())
		return nil, 0, err
	}
	return prior, value, nil
}
