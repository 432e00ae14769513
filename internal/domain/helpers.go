package domain

import "fmt"

// LabelPayload produces the values needed for match label advertisement.
type LabelPayload struct {
	Open  bool   `json:"open"`
	Game  string `json:"game"`
	Phase string `json:"phase"`
}

// ComputeLabel derives the advertised label from the current deal.
func ComputeLabel(humanSeated bool, g *Game) LabelPayload {
	phase := PhaseLobby
	if g != nil {
		phase = g.Phase
	}
	return LabelPayload{Open: !humanSeated, Game: "schnapsen", Phase: string(phase)}
}

// CheckTable verifies that hands, won piles, cards on the table and the
// stock together form exactly the full pack, and that hand sizes differ by
// at most one.
func CheckTable(t *Table) error {
	var all Cards
	all = append(all, t.Game.Cards...)
	for _, side := range []Side{SidePlayer, SideAI} {
		s := t.State(side)
		all = append(all, s.Cards...)
		all = append(all, s.Deck...)
		if s.MoveState == MoveOnTable {
			all = append(all, s.Card)
		}
	}
	if !SamePack(all, FullCards()) {
		return fmt.Errorf("%d cards tracked: %w", len(all), ErrCardCount)
	}
	diff := len(t.Player.Cards) - len(t.AI.Cards)
	if diff > 1 || diff < -1 {
		return fmt.Errorf("player %d, ai %d: %w", len(t.Player.Cards), len(t.AI.Cards), ErrHandSizes)
	}
	return nil
}
