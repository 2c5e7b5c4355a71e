package engine

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"shogi/game"
	"shogi/searcher/agent"
)

// Local drives one match between two in-process agents.
type Local struct {
	variant game.Variant
	agents  [2]agent.Agent
}

// NewLocal pairs the sente and gote agents for matches of the given
// variant.
func NewLocal(variant game.Variant, sente, gote agent.Agent) *Local {
	if sente == nil || gote == nil {
		panic("both agents must be set")
	}
	return &Local{variant: variant, agents: [2]agent.Agent{sente, gote}}
}

// Run plays a full match from the initial position and returns its
// result. The engine trusts agents to return legal moves; an illegal one
// aborts the match with an error.
func (e *Local) Run() (Result, error) {
	matchID := uuid.NewString()
	start := time.Now()
	position := game.NewPosition(e.variant)
	log.Info().
		Str("match", matchID).
		Str("variant", e.variant.String()).
		Msg("match started")

	var records []MoveRecord
	for !position.IsTerminal() && position.Ply() < MaxMoves {
		player := position.Player()
		move, diagnostics, err := e.agents[player].FindMove(position)
		if err != nil {
			return Result{}, fmt.Errorf("agent %v: %w", player, err)
		}
		next, err := position.Apply(move)
		if err != nil {
			return Result{}, fmt.Errorf("agent %v returned an illegal move %v: %w", player, move, err)
		}
		records = append(records, MoveRecord{
			Ply:         position.Ply(),
			Player:      player,
			Move:        move,
			Diagnostics: diagnostics,
		})
		log.Debug().
			Str("match", matchID).
			Int("ply", position.Ply()).
			Str("player", player.String()).
			Str("move", fmt.Sprint(move)).
			Msg("move played")
		position = next
	}

	result := Result{
		MatchID:  matchID,
		Winner:   position.Winner(),
		Plies:    position.Ply(),
		Records:  records,
		Duration: time.Since(start),
	}
	log.Info().
		Str("match", matchID).
		Str("winner", result.Winner.String()).
		Int("plies", result.Plies).
		Dur("duration", result.Duration).
		Msg("match finished")
	return result, nil
}
