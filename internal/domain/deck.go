package domain

import (
	"fmt"
	"math/rand"
)

// FullCards returns the canonical pack: suits clubs..spades, faces ten..ace.
func FullCards() Cards {
	cards := make(Cards, 0, PackSize)
	for _, s := range Suits() {
		for _, f := range Faces() {
			cards = append(cards, Card{Face: f, Suit: s})
		}
	}
	if len(cards) != PackSize {
		panic(fmt.Sprintf("full pack has %d cards", len(cards)))
	}
	return cards
}

// ShuffleDeck returns a shuffled copy of the given cards.
func ShuffleDeck(cards Cards, rng *rand.Rand) Cards {
	out := cards.Clone()
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// StockFromString parses a deterministic full-pack card string.
func StockFromString(s string) (Cards, error) {
	if len(s) != FullPackStringLen {
		return nil, fmt.Errorf("card string has %d bytes, want %d: %w", len(s), FullPackStringLen, ErrInvalidCardString)
	}
	cards, err := ParseCards(s)
	if err != nil {
		return nil, err
	}
	if !SamePack(cards, FullCards()) {
		return nil, fmt.Errorf("card string is not a full pack: %w", ErrInvalidCardString)
	}
	return cards, nil
}

// Deal resets t and deals from stock: three cards to the player, three to
// the AI, the trump card to the bottom of the stock, then two and two.
func Deal(t *Table, stock Cards) {
	*t = Table{}
	t.Game.Cards = stock.Clone()
	t.Game.Trump = NoSuit

	give := func(side Side, n int) {
		hand := &t.State(side).Cards
		for i := 0; i < n; i++ {
			c, ok := t.Game.Draw()
			if !ok {
				return
			}
			hand.Prepend(c)
		}
	}

	give(SidePlayer, 3)
	give(SideAI, 3)
	if trump, ok := t.Game.Draw(); ok {
		t.Game.Cards.Append(trump)
		t.Game.Trump = trump.Suit
	}
	give(SidePlayer, 2)
	give(SideAI, 2)

	t.Player.Cards.Sort()
	t.AI.Cards.Sort()
}

// SamePack reports whether a and b hold the same cards as multisets.
func SamePack(a, b Cards) bool {
	if len(a) != len(b) {
		return false
	}
	rest := b.Clone()
	for _, c := range a {
		if !rest.Remove(c) {
			return false
		}
	}
	return len(rest) == 0
}
