package brain

import (
	"schnapsen/internal/domain"
)

// Estimator answers the AI's questions about the cards still in play. It
// sees what the AI side may see: its own hand, both won piles and the
// face-up trump card.
type Estimator struct {
	Memory *GameMemory
	table  *domain.Table
}

// NewEstimator creates a reasoning engine over the given table.
func NewEstimator(t *domain.Table) *Estimator {
	m := NewMemory()
	m.Observe(t)
	return &Estimator{Memory: m, table: t}
}

func (e *Estimator) trump() domain.Suit {
	return e.table.Game.Trump
}

// BossCards returns the cards in hand that no unseen card of their suit can beat.
func (e *Estimator) BossCards(hand domain.Cards) domain.Cards {
	var boss domain.Cards
	for _, c := range hand {
		if e.Memory.IsBoss(c) {
			boss = append(boss, c)
		}
	}
	return boss
}

// HighestCardsOfSuitInHand returns the boss cards of suit s in hand, sorted.
// Cards of hand count as seen.
func (e *Estimator) HighestCardsOfSuitInHand(hand domain.Cards, s domain.Suit) domain.Cards {
	m := *e.Memory
	m.UpdateHand(hand)
	var res domain.Cards
	for _, c := range domain.SuitInHand(s, hand) {
		if m.IsBoss(c) {
			res = append(res, c)
		}
	}
	res.Sort()
	return res
}

// HighestCardsInHand collects boss cards across all suits.
func (e *Estimator) HighestCardsInHand(hand domain.Cards) domain.Cards {
	var res domain.Cards
	for _, s := range []domain.Suit{domain.SuitHeart, domain.SuitSpade, domain.SuitDiamond, domain.SuitClub} {
		res = append(res, e.HighestCardsOfSuitInHand(hand, s)...)
	}
	res.Sort()
	return res
}

// AssumedPlayerCards is every card that is neither won, in the bot's hand
// nor the face-up trump card.
func (e *Estimator) AssumedPlayerCards() domain.Cards {
	t := e.table
	cards := domain.FullCards().Minus(t.Player.Deck...).Minus(t.AI.Deck...).Minus(t.AI.Cards...)
	if trump, ok := t.Game.TrumpCard(); ok {
		cards = cards.Minus(trump)
	}
	cards.Sort()
	return cards
}

// CardsToClaim returns the bot's cards of suit s (AnySuit for all) whose
// first same-suit opponent card cannot beat them, highest value first.
// Each opponent card answers at most one of the bot's cards.
func (e *Estimator) CardsToClaim(s domain.Suit) domain.Cards {
	player := e.AssumedPlayerCards()
	var res domain.Cards
	for _, c := range e.table.AI.Cards {
		if s != domain.AnySuit && c.Suit != s {
			continue
		}
		for i, pc := range player {
			if pc.Suit != c.Suit {
				continue
			}
			if domain.CardTricks(pc, c, e.trump()) {
				break
			}
			res = append(res, c)
			player.RemoveAt(i)
			break
		}
	}
	res.SortByValue(true)
	return res
}

// TrumpsToClaim is CardsToClaim restricted to trumps.
func (e *Estimator) TrumpsToClaim() domain.Cards {
	return e.CardsToClaim(e.trump())
}

// CountPlayedSuit returns the cards of suit s the bot knows are out of
// reach: both won piles plus the face-up trump while the stock is open.
func (e *Estimator) CountPlayedSuit(s domain.Suit) domain.Cards {
	t := e.table
	res := domain.SuitInHand(s, t.AI.Deck).Plus(domain.SuitInHand(s, t.Player.Deck)...)
	if trump, ok := t.Game.TrumpCard(); ok && t.Game.Closed == domain.ClosedNot && trump.Suit == s {
		res.Prepend(trump)
	}
	return res
}

// CardsInPlay is the number of cards of suit s not yet accounted for.
func (e *Estimator) CardsInPlay(s domain.Suit) int {
	return len(domain.Faces()) - len(e.CountPlayedSuit(s))
}

// MaxCardsPlayer bounds how many cards of suit s the opponent can hold.
func (e *Estimator) MaxCardsPlayer(s domain.Suit) int {
	return e.CardsInPlay(s) - len(domain.SuitInHand(s, e.table.AI.Cards))
}

// MaxTrumpsPlayer bounds how many trumps the opponent can hold.
func (e *Estimator) MaxTrumpsPlayer() int {
	return e.MaxCardsPlayer(e.trump())
}

// PullTrumpCards returns the non-trump cards that no same-suit card in from
// or the stock can beat, so the opponent must trump them. Empty when from
// holds no trump. Sorted low to high.
func (e *Estimator) PullTrumpCards(cards, from domain.Cards) domain.Cards {
	var res domain.Cards
	if len(domain.SuitInHand(e.trump(), from)) == 0 {
		return res
	}
	pool := from.Plus(e.table.Game.Cards...)
	for _, c := range cards {
		if c.Suit == e.trump() {
			continue
		}
		if domain.CanTrickWithSuit(c, pool, e.trump()) {
			continue
		}
		res = append(res, c)
	}
	res.SortByValue(false)
	return res
}
