package app

import (
	"time"

	"schnapsen/internal/domain"
)

// EventKind identifies emitted domain events for Nakama dispatch.
type EventKind string

const (
	EventDealStarted EventKind = "deal_started"
	EventCardPlayed  EventKind = "card_played"
	EventTrickTaken  EventKind = "trick_taken"
	EventCardsDrawn  EventKind = "cards_drawn"
	EventMarriage    EventKind = "marriage"
	EventStockClosed EventKind = "stock_closed"
	EventJackChanged EventKind = "jack_changed"
	EventNotice      EventKind = "notice"
	EventGameEnded   EventKind = "game_ended"
	EventMatchEnded  EventKind = "match_ended"
)

// Event is a domain/app event with optional targeted recipients. Delay is
// the pacing the host should leave after delivering it.
type Event struct {
	Kind       EventKind
	Payload    any
	Recipients []string // user IDs; empty means broadcast
	Delay      time.Duration
}

type DealStartedPayload struct {
	DealID    string
	Hand      domain.Cards
	TrumpCard domain.Card
	StockSize int
	Lead      domain.Side
	Book      []domain.BookEntry
}

type CardPlayedPayload struct {
	Side     domain.Side
	Card     domain.Card
	Marriage domain.Marriage
	Leading  bool
}

type TrickTakenPayload struct {
	Winner      domain.Side
	PlayerCard  domain.Card
	AICard      domain.Card
	Points      int
	PlayerScore int
	AIScore     int
}

// CardsDrawnPayload carries only the player's side of a fill-up.
type CardsDrawnPayload struct {
	Drawn     domain.Card
	Hand      domain.Cards
	StockSize int
	Closed    domain.Closed
}

type MarriagePayload struct {
	Side    domain.Side
	Suit    domain.Suit
	Kind    domain.Marriage
	Score   int
	Pending int
}

type StockClosedPayload struct {
	By domain.Side
}

type JackChangedPayload struct {
	Side      domain.Side
	Taken     domain.Card
	TrumpCard domain.Card
}

type NoticePayload struct {
	Message domain.MessageKind
	Bell    bool
}

type GameEndedPayload struct {
	DealID      string
	Winner      domain.Side
	Reason      domain.MessageKind
	Entry       domain.BookEntry
	PlayerScore int
	AIScore     int
	Book        []domain.BookEntry
}

type MatchEndedPayload struct {
	Winner     domain.Side
	GamesWon   [2]int
	MatchesWon [2]int
}
