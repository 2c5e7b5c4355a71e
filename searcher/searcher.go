package searcher

import (
	"fmt"
	"time"

	"shogi/game"
)

// Algorithm names a search strategy.
type Algorithm string

const (
	AlgorithmMinimax Algorithm = "minimax"
	AlgorithmMCTS    Algorithm = "mcts"
)

// Config declares a search without constructing it, so callers can load
// searches from configuration files. Zero fields fall back to the
// algorithm's defaults.
type Config struct {
	Algorithm Algorithm `yaml:"algorithm"`

	// minimax
	Depth int        `yaml:"depth"`
	Score game.Score `yaml:"-"`

	// mcts
	Simulations      int           `yaml:"simulations"`
	Deadline         time.Duration `yaml:"deadline"`
	Goroutines       int           `yaml:"goroutines"`
	CPuct            float64       `yaml:"cpuct"`
	Temperature      float64       `yaml:"temperature"`
	DirichletAlpha   float64       `yaml:"dirichletAlpha"`
	DirichletEpsilon float64       `yaml:"dirichletEpsilon"`
	Seed             uint64        `yaml:"seed"`
	Evaluate         game.Evaluate `yaml:"-"`
}

// ChooseMove runs one search on p as declared by cfg.
func ChooseMove(p *game.Position, cfg Config) (game.Move, Diagnostics, error) {
	switch cfg.Algorithm {
	case AlgorithmMinimax:
		return NewMinimax(
			WithDepth(cfg.Depth),
			WithScore(cfg.Score),
		).FindMove(p)
	case AlgorithmMCTS:
		if cfg.Simulations <= 0 && cfg.Deadline <= 0 {
			cfg.Simulations = DefaultSimulations
		}
		options := []Option{
			WithSimulations(cfg.Simulations),
			WithDeadline(cfg.Deadline),
			WithGoroutines(cfg.Goroutines),
			WithCPuct(cfg.CPuct),
			WithTemperature(cfg.Temperature),
			WithDirichletNoise(cfg.DirichletAlpha, cfg.DirichletEpsilon),
			WithEvaluationFn(cfg.Evaluate),
			WithSeed(cfg.Seed),
		}
		return NewMCTS(options...).Search(p)
	default:
		return nil, Diagnostics{}, fmt.Errorf("unknown search algorithm %q", cfg.Algorithm)
	}
}
