package app

import "schnapsen/internal/domain"

// Session is one human's seat at the table: the running match and its
// current deal.
type Session struct {
	Match *domain.Match
	Game  *domain.Game
}

// NewSession starts a fresh match without a deal.
func NewSession() *Session {
	return &Session{Match: domain.NewMatch()}
}

// TableView is what the human may see of the current deal.
type TableView struct {
	DealID        string
	Phase         domain.Phase
	Hand          domain.Cards
	AIHandSize    int
	TrumpCard     domain.Card
	Trump         domain.Suit
	StockSize     int
	Closed        domain.Closed
	Move          domain.Side
	PlayerCard    *domain.Card
	AICard        *domain.Card
	PlayerScore   int
	PlayerPending int
	AIScore       int
	PlayerTricks  int
	AITricks      int
	Book          []domain.BookEntry
	GamesWon      [2]int
	MatchesWon    [2]int
}

// View snapshots the session for display. The AI hand and the stock
// order stay hidden.
func (s *Session) View() TableView {
	v := TableView{
		Book:       append([]domain.BookEntry(nil), s.Match.Book...),
		GamesWon:   s.Match.GamesWon,
		MatchesWon: s.Match.MatchesWon,
		Phase:      domain.PhaseLobby,
	}
	if s.Game == nil {
		return v
	}
	t := &s.Game.Table
	v.DealID = s.Game.ID
	v.Phase = s.Game.Phase
	v.Hand = t.Player.Cards.Clone()
	v.AIHandSize = len(t.AI.Cards)
	v.TrumpCard, _ = t.Game.TrumpCard()
	v.Trump = t.Game.Trump
	v.StockSize = len(t.Game.Cards)
	v.Closed = t.Game.Closed
	v.Move = t.Game.Move
	if t.Player.MoveState == domain.MoveOnTable {
		c := t.Player.Card
		v.PlayerCard = &c
	}
	if t.AI.MoveState == domain.MoveOnTable {
		c := t.AI.Card
		v.AICard = &c
	}
	v.PlayerScore = t.Player.Score
	v.PlayerPending = t.Player.Pending
	v.AIScore = t.AI.Score
	v.PlayerTricks = len(t.Player.Deck) / 2
	v.AITricks = len(t.AI.Deck) / 2
	return v
}
