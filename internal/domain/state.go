package domain

// Phase represents the lifecycle stage of a deal.
type Phase string

const (
	// PhaseLobby is the state before the first deal.
	PhaseLobby Phase = "lobby"
	// PhasePlaying is the state while cards are being played.
	PhasePlaying Phase = "playing"
	// PhaseEnded is the state after the deal has a winner.
	PhaseEnded Phase = "ended"
)

// Side identifies one of the two participants.
type Side int8

const (
	SidePlayer Side = iota
	SideAI
)

// Other returns the opponent side.
func (s Side) Other() Side {
	if s == SidePlayer {
		return SideAI
	}
	return SidePlayer
}

func (s Side) String() string {
	if s == SidePlayer {
		return "player"
	}
	return "ai"
}

// MoveState tracks a participant's card between hand and table.
type MoveState int8

const (
	MoveNone MoveState = iota
	MoveMoving
	MoveOnTable
)

// Closed tells whether and how the stock was closed.
type Closed int8

const (
	ClosedNot Closed = iota
	ClosedByPlayer
	ClosedByAI
	ClosedAuto // stock exhausted
)

func (c Closed) String() string {
	switch c {
	case ClosedNot:
		return "open"
	case ClosedByPlayer:
		return "closed_by_player"
	case ClosedByAI:
		return "closed_by_ai"
	case ClosedAuto:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Marriage is the marriage declared with the current trick, if any.
type Marriage int8

const (
	MarriageNone Marriage = iota
	Marriage20
	Marriage40
)

// Points is the score a declaration is worth.
func (m Marriage) Points() int {
	switch m {
	case Marriage20:
		return 20
	case Marriage40:
		return 40
	default:
		return 0
	}
}

// GameState is one participant's state within a deal.
type GameState struct {
	Cards     Cards // hand
	Deck      Cards // cards won in tricks
	Card      Card  // card committed to the table
	Score     int
	Pending   int
	Marriages []Suit // suits of declared marriages, newest first
	MoveState MoveState
	LastDrawn Card
	Changed   Card // trump card taken by a jack exchange
}

// BankMarriage credits a declaration. Points wait in Pending until the next
// trick win when the stock is gone or no trick has been won yet.
func (s *GameState) BankMarriage(m Marriage, suit Suit, stockEmpty bool) {
	s.Marriages = append([]Suit{suit}, s.Marriages...)
	if stockEmpty || len(s.Deck) == 0 {
		s.Pending += m.Points()
		return
	}
	s.Score += m.Points()
}

// GameData is the shared table state of a deal.
type GameData struct {
	Cards    Cards // stock; the back element is the face-up trump card
	Trump    Suit
	Marriage Marriage
	Closed   Closed
	Move     Side
}

// TrumpCard returns the face-up card at the bottom of the stock.
func (g *GameData) TrumpCard() (Card, bool) {
	return g.Cards.Back()
}

// Draw takes the next card from the top of the stock.
func (g *GameData) Draw() (Card, bool) {
	return g.Cards.PopFront()
}

// ReplaceTrumpCard swaps the face-up trump card for c and returns the old one.
func (g *GameData) ReplaceTrumpCard(c Card) (Card, bool) {
	old, ok := g.Cards.Back()
	if !ok {
		return NoCard, false
	}
	g.Cards[len(g.Cards)-1] = c
	return old, true
}

// Table bundles the state of one deal.
type Table struct {
	Game   GameData
	Player GameState
	AI     GameState
}

// State returns the participant state of side.
func (t *Table) State(side Side) *GameState {
	if side == SidePlayer {
		return &t.Player
	}
	return &t.AI
}

// Idle reports that neither participant has a card moving or on the table.
func (t *Table) Idle() bool {
	return t.Player.MoveState == MoveNone && t.AI.MoveState == MoveNone
}

// NoCardsInPlay reports that both hands are empty and the table is clear.
func (t *Table) NoCardsInPlay() bool {
	return len(t.Player.Cards) == 0 && len(t.AI.Cards) == 0 && t.Idle()
}

// Outcome describes how a deal ended.
type Outcome struct {
	Winner Side
	Reason MessageKind // MsgYourGame, MsgAIGame, MsgYouNotEnough or MsgAINotEnough
	Entry  BookEntry
}

// Game is one deal plus its lifecycle.
type Game struct {
	ID      string
	Phase   Phase
	Table   Table
	Outcome *Outcome
}
