package game

// Player identifies a side. Sente moves first and advances toward row 0;
// Gote advances toward the last row.
type Player int8

const (
	Sente Player = 0
	Gote  Player = 1

	// NoPlayer is the winner of a drawn or unfinished game.
	NoPlayer Player = -1
)

// Opponent returns the other side.
func (p Player) Opponent() Player {
	return 1 - p
}

func (p Player) String() string {
	switch p {
	case Sente:
		return "sente"
	case Gote:
		return "gote"
	default:
		return "none"
	}
}
