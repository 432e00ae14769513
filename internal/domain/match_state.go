package domain

// BookEntry is one line of the game book: game points won by each side.
type BookEntry struct {
	Player int `json:"player"`
	AI     int `json:"ai"`
}

// Winner returns the side credited by the entry.
func (e BookEntry) Winner() Side {
	if e.AI > e.Player {
		return SideAI
	}
	return SidePlayer
}

// Match spans consecutive deals until one side's book reaches MatchScore.
type Match struct {
	Book        []BookEntry
	FirstToMove Side
	GamesWon    [2]int // indexed by Side
	MatchesWon  [2]int
}

// NewMatch starts an empty match with the player leading the first deal.
func NewMatch() *Match {
	return &Match{FirstToMove: SidePlayer}
}

// NextLead returns the side leading the next deal and alternates it.
func (m *Match) NextLead() Side {
	lead := m.FirstToMove
	m.FirstToMove = lead.Other()
	return lead
}

// Totals sums the book.
func (m *Match) Totals() (player, ai int) {
	for _, e := range m.Book {
		player += e.Player
		ai += e.AI
	}
	return player, ai
}

// Record appends a finished deal. When a side reaches MatchScore the match
// is won, the book is cleared and ended is true.
func (m *Match) Record(e BookEntry) (winner Side, ended bool) {
	m.Book = append(m.Book, e)
	m.GamesWon[e.Winner()]++

	player, ai := m.Totals()
	switch {
	case player >= MatchScore:
		winner, ended = SidePlayer, true
	case ai >= MatchScore:
		winner, ended = SideAI, true
	default:
		return e.Winner(), false
	}
	m.MatchesWon[winner]++
	m.Book = nil
	return winner, true
}

// ScoreDeal computes the game points of a finished deal won by winner.
func ScoreDeal(t *Table, winner Side) BookEntry {
	points := func(loserScore int) int {
		switch {
		case loserScore == 0:
			return 3
		case loserScore < FirstThreshold:
			return 2
		default:
			return 1
		}
	}
	entry := func(side Side, pts int) BookEntry {
		if side == SidePlayer {
			return BookEntry{Player: pts}
		}
		return BookEntry{AI: pts}
	}

	var closer Side
	switch t.Game.Closed {
	case ClosedByPlayer:
		closer = SidePlayer
	case ClosedByAI:
		closer = SideAI
	default:
		return entry(winner, points(t.State(winner.Other()).Score))
	}

	if t.State(closer).Score >= WinningScore {
		return entry(closer, points(t.State(closer.Other()).Score))
	}
	// closer failed: opponent scores at least two
	if t.State(closer).Score == 0 {
		return entry(closer.Other(), 3)
	}
	return entry(closer.Other(), 2)
}

// CheckEnd decides whether the deal is over with move to act next. In an
// open or exhausted game the side to move wins on reaching WinningScore,
// or by taking the last trick. After a close only the closer can win on
// score; when the cards run out first the closer forfeits.
func CheckEnd(t *Table, move Side) (winner Side, reason MessageKind, ended bool) {
	var closer Side
	switch t.Game.Closed {
	case ClosedByPlayer:
		closer = SidePlayer
	case ClosedByAI:
		closer = SideAI
	default:
		if t.State(move).Score >= WinningScore || t.NoCardsInPlay() {
			return move, gameMessage(move), true
		}
		return 0, MsgNone, false
	}

	if move == closer && t.State(closer).Score >= WinningScore {
		return closer, gameMessage(closer), true
	}
	if t.NoCardsInPlay() {
		if closer == SidePlayer {
			return SideAI, MsgYouNotEnough, true
		}
		return SidePlayer, MsgAINotEnough, true
	}
	return 0, MsgNone, false
}

func gameMessage(side Side) MessageKind {
	if side == SidePlayer {
		return MsgYourGame
	}
	return MsgAIGame
}
