package engine

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"shogi/game"
	"shogi/searcher"
	"shogi/searcher/agent"
)

// AgentConfig declares one player: either a pure random mover or a
// configured search.
type AgentConfig struct {
	Kind   string          `yaml:"kind"` // "random", "minimax" or "mcts"
	Seed   uint64          `yaml:"seed"`
	Search searcher.Config `yaml:"search"`
}

// MatchConfig declares a full local match.
type MatchConfig struct {
	Variant string      `yaml:"variant"`
	Sente   AgentConfig `yaml:"sente"`
	Gote    AgentConfig `yaml:"gote"`
}

// LoadMatchConfig reads a MatchConfig from a YAML file.
func LoadMatchConfig(path string) (MatchConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return MatchConfig{}, fmt.Errorf("reading match config: %w", err)
	}
	var cfg MatchConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return MatchConfig{}, fmt.Errorf("parsing match config: %w", err)
	}
	return cfg, nil
}

// Build constructs the engine the config declares.
func (cfg MatchConfig) Build() (*Local, error) {
	variant, err := game.ParseVariant(cfg.Variant)
	if err != nil {
		return nil, err
	}
	sente, err := cfg.Sente.build()
	if err != nil {
		return nil, fmt.Errorf("sente: %w", err)
	}
	gote, err := cfg.Gote.build()
	if err != nil {
		return nil, fmt.Errorf("gote: %w", err)
	}
	return NewLocal(variant, sente, gote), nil
}

func (cfg AgentConfig) build() (agent.Agent, error) {
	switch cfg.Kind {
	case "random":
		return agent.NewRandom(cfg.Seed), nil
	case "minimax":
		search := cfg.Search
		search.Algorithm = searcher.AlgorithmMinimax
		return agent.NewSearch(search), nil
	case "mcts":
		search := cfg.Search
		search.Algorithm = searcher.AlgorithmMCTS
		if search.Seed == 0 {
			search.Seed = cfg.Seed
		}
		return agent.NewSearch(search), nil
	default:
		return nil, fmt.Errorf("unknown agent kind %q", cfg.Kind)
	}
}
