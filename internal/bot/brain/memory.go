package brain

import (
	"schnapsen/internal/domain"
)

// CardStatus represents what the bot knows about a specific card.
type CardStatus int

const (
	StatusUnknown CardStatus = iota // Could be in the opponent's hand or the stock
	StatusMine                      // In the bot's hand
	StatusPlayed                    // Won in a trick by either side
	StatusVisible                   // Face-up trump card at the bottom of the stock
)

// GameMemory stores the bot's private view of the deal.
type GameMemory struct {
	// DeckStatus tracks all 20 cards. Index = (Suit-1)*5 + (Face-1).
	DeckStatus [domain.PackSize]CardStatus
}

// NewMemory initializes a fresh memory state.
func NewMemory() *GameMemory {
	return &GameMemory{}
}

// Reset clears the memory for a new deal.
func (m *GameMemory) Reset() {
	for i := range m.DeckStatus {
		m.DeckStatus[i] = StatusUnknown
	}
}

// Observe rebuilds the memory from what the AI side can see at the table.
func (m *GameMemory) Observe(t *domain.Table) {
	m.Reset()
	if trump, ok := t.Game.TrumpCard(); ok {
		m.mark(trump, StatusVisible)
	}
	m.MarkPlayed(t.Player.Deck)
	m.MarkPlayed(t.AI.Deck)
	m.MarkMine(t.AI.Cards)
}

// MarkMine records the cards currently in the bot's hand.
func (m *GameMemory) MarkMine(cards domain.Cards) {
	for _, c := range cards {
		m.mark(c, StatusMine)
	}
}

// MarkPlayed records cards that went into a won pile.
func (m *GameMemory) MarkPlayed(cards domain.Cards) {
	for _, c := range cards {
		m.mark(c, StatusPlayed)
	}
}

// UpdateHand marks the current hand as Mine and forgets earlier Mine cards.
func (m *GameMemory) UpdateHand(hand domain.Cards) {
	for i, status := range m.DeckStatus {
		if status == StatusMine {
			m.DeckStatus[i] = StatusUnknown
		}
	}
	m.MarkMine(hand)
}

// Status returns what is known about c.
func (m *GameMemory) Status(c domain.Card) CardStatus {
	i, ok := cardToIndex(c)
	if !ok {
		return StatusUnknown
	}
	return m.DeckStatus[i]
}

// IsPlayed returns true if the card is already out of the deal.
func (m *GameMemory) IsPlayed(c domain.Card) bool {
	return m.Status(c) == StatusPlayed
}

// IsBoss returns true if every higher card of the same suit is either in
// the bot's hand or already won. Aces are always boss.
func (m *GameMemory) IsBoss(c domain.Card) bool {
	for _, f := range domain.Faces() {
		if f.Value() <= c.Face.Value() {
			continue
		}
		higher := domain.Card{Face: f, Suit: c.Suit}
		if m.Status(higher) != StatusMine && !m.IsPlayed(higher) {
			return false
		}
	}
	return true
}

func (m *GameMemory) mark(c domain.Card, s CardStatus) {
	if i, ok := cardToIndex(c); ok {
		m.DeckStatus[i] = s
	}
}

// cardToIndex converts a card to a 0-19 index.
func cardToIndex(c domain.Card) (int, bool) {
	if c.Suit <= domain.NoSuit || c.Suit >= domain.AnySuit || c.Face <= domain.NoFace || c.Face > domain.FaceAce {
		return 0, false
	}
	return int(c.Suit-1)*5 + int(c.Face-1), true
}
