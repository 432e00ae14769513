package domain

const (
	// PackSize is the number of cards in a Schnapsen pack.
	PackSize = 20
	// HandSize is the number of cards dealt to each side.
	HandSize = 5
	// FullPackStringLen is the byte length of a serialized full pack.
	FullPackStringLen = 101

	// WinningScore ends a deal for the side reaching it.
	WinningScore = 66
	// FirstThreshold is the score below which a loser concedes extra game points.
	FirstThreshold = 33
	// MinStockToClose is the smallest stock that may still be closed or exchanged from.
	MinStockToClose = 4
	// MatchScore is the game book total that wins a match (one "Bummerl").
	MatchScore = 7
)
