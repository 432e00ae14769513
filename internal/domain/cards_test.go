package domain

import (
	"errors"
	"testing"
)

const fixedPack = "|T♣|Q♦|T♦|Q♣|J♦|Q♠|T♠|Q♥|J♠|A♦|K♥|J♣|K♠|J♥|T♥|A♥|A♣|A♠|K♣|K♦|"

func mustCards(t *testing.T, s string) Cards {
	t.Helper()
	cards, err := ParseCards(s)
	if err != nil {
		t.Fatalf("ParseCards(%q) error: %v", s, err)
	}
	return cards
}

func TestFullCards(t *testing.T) {
	cards := FullCards()
	if len(cards) != PackSize {
		t.Fatalf("len(FullCards()) = %d, want %d", len(cards), PackSize)
	}
	seen := make(map[Card]bool)
	faces := make(map[Face]int)
	suits := make(map[Suit]int)
	for _, c := range cards {
		if seen[c] {
			t.Fatalf("duplicate card %s", c)
		}
		seen[c] = true
		faces[c.Face]++
		suits[c.Suit]++
	}
	if len(faces) != 5 || len(suits) != 4 {
		t.Fatalf("faces = %d, suits = %d, want 5 and 4", len(faces), len(suits))
	}
	if cards[0] != (Card{FaceTen, SuitClub}) || cards[19] != (Card{FaceAce, SuitSpade}) {
		t.Fatalf("pack order = %s", cards)
	}
	if got := cards.Value(); got != 120 {
		t.Fatalf("pack value = %d, want 120", got)
	}
}

func TestCardLookups(t *testing.T) {
	tests := []struct {
		card   Card
		value  int
		weight int
		str    string
	}{
		{Card{FaceTen, SuitClub}, 10, 1, "T♣"},
		{Card{FaceJack, SuitDiamond}, 2, 2, "J♦"},
		{Card{FaceQueen, SuitHeart}, 3, 3, "Q♥"},
		{Card{FaceKing, SuitSpade}, 4, 4, "K♠"},
		{Card{FaceAce, SuitSpade}, 11, 4, "A♠"},
	}
	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			if got := tt.card.Value(); got != tt.value {
				t.Fatalf("Value() = %d, want %d", got, tt.value)
			}
			if got := tt.card.SuitWeight(); got != tt.weight {
				t.Fatalf("SuitWeight() = %d, want %d", got, tt.weight)
			}
			if got := tt.card.String(); got != tt.str {
				t.Fatalf("String() = %q, want %q", got, tt.str)
			}
			parsed, err := ParseCard(tt.str)
			if err != nil || parsed != tt.card {
				t.Fatalf("ParseCard(%q) = %v, %v", tt.str, parsed, err)
			}
		})
	}
}

func TestCardsSort(t *testing.T) {
	cards := mustCards(t, "|K♣|Q♣|T♣|K♥|A♠|")
	cards.Sort()
	if got, want := cards.String(), "|A♠|K♥|T♣|K♣|Q♣|"; got != want {
		t.Fatalf("Sort() = %s, want %s", got, want)
	}

	cards = mustCards(t, "|A♠|K♥|T♣|K♣|Q♣|J♦|")
	cards.SortTrump(SuitClub)
	if got, want := cards.String(), "|T♣|K♣|Q♣|A♠|K♥|J♦|"; got != want {
		t.Fatalf("SortTrump(club) = %s, want %s", got, want)
	}

	cards = mustCards(t, "|Q♣|A♠|J♦|T♥|")
	cards.SortByValue(true)
	if got, want := cards.String(), "|A♠|T♥|Q♣|J♦|"; got != want {
		t.Fatalf("SortByValue(true) = %s, want %s", got, want)
	}
	cards.SortByValue(false)
	if got, want := cards.String(), "|J♦|Q♣|T♥|A♠|"; got != want {
		t.Fatalf("SortByValue(false) = %s, want %s", got, want)
	}
}

func TestCardsMultiset(t *testing.T) {
	tcards := mustCards(t, "|T♦|J♦|K♦|T♣|K♣|")
	got := tcards.Minus(mustCards(t, "|K♦|T♣|")...)
	if want := "|T♦|J♦|K♣|"; got.String() != want {
		t.Fatalf("Minus() = %s, want %s", got, want)
	}
	if tcards.String() != "|T♦|J♦|K♦|T♣|K♣|" {
		t.Fatalf("Minus() modified its receiver: %s", tcards)
	}

	dup := mustCards(t, "|T♦|K♣|T♦|J♦|T♦|")
	if got := dup.Minus(Card{FaceTen, SuitDiamond}); got.String() != "|K♣|T♦|J♦|T♦|" {
		t.Fatalf("Minus() removed more than one instance: %s", got)
	}
	if got := dup.Without(Card{FaceTen, SuitDiamond}); got.String() != "|K♣|J♦|" {
		t.Fatalf("Without() = %s, want |K♣|J♦|", got)
	}

	sum := mustCards(t, "|T♦|").Plus(mustCards(t, "|J♦|A♠|")...)
	if sum.String() != "|T♦|J♦|A♠|" {
		t.Fatalf("Plus() = %s", sum)
	}
}

func TestCardsOrderingContracts(t *testing.T) {
	var cs Cards
	cs.Append(Card{FaceTen, SuitHeart})
	cs.InsertHighestPriority(Card{FaceAce, SuitHeart})
	cs.Prepend(Card{FaceJack, SuitClub})
	if got, want := cs.String(), "|J♣|A♥|T♥|"; got != want {
		t.Fatalf("ordering = %s, want %s", got, want)
	}
	front, ok := cs.PopFront()
	if !ok || front != (Card{FaceJack, SuitClub}) {
		t.Fatalf("PopFront() = %v, %t", front, ok)
	}
	back, ok := cs.Back()
	if !ok || back != (Card{FaceTen, SuitHeart}) {
		t.Fatalf("Back() = %v, %t", back, ok)
	}
}

func TestCardsFind(t *testing.T) {
	cs := mustCards(t, "|A♠|K♥|T♣|")
	if i, ok := cs.FindPos(Card{FaceTen, SuitClub}); !ok || i != 2 {
		t.Fatalf("FindPos(T♣) = %d, %t", i, ok)
	}
	if _, ok := cs.FindPos(Card{FaceTen, SuitHeart}); ok {
		t.Fatalf("FindPos(T♥) found a missing card")
	}
	if i, ok := cs.FindFace(FaceKing); !ok || i != 1 {
		t.Fatalf("FindFace(king) = %d, %t", i, ok)
	}
	if _, ok := cs.FindFace(FaceJack); ok {
		t.Fatalf("FindFace(jack) found a missing face")
	}
	if c, ok := cs.Find(Card{FaceAce, SuitSpade}); !ok || c != (Card{FaceAce, SuitSpade}) {
		t.Fatalf("Find(A♠) = %v, %t", c, ok)
	}
}

func TestCardsSerializationRoundTrip(t *testing.T) {
	inputs := []Cards{
		{{FaceTen, SuitClub}},
		FullCards(),
		mustCards(t, "|A♠|A♠|J♦|"),
	}
	for _, in := range inputs {
		got, err := ParseCards(in.String())
		if err != nil {
			t.Fatalf("ParseCards(%q) error: %v", in.String(), err)
		}
		if !got.Equal(in) {
			t.Fatalf("round trip = %s, want %s", got, in)
		}
	}
	if got := len(FullCards().String()); got != FullPackStringLen {
		t.Fatalf("full pack string = %d bytes, want %d", got, FullPackStringLen)
	}
	if got := Cards(nil).String(); got != "" {
		t.Fatalf("empty String() = %q", got)
	}
}

func TestParseCardsRejectsMalformed(t *testing.T) {
	for _, s := range []string{"A♠", "|A♠", "|X♠|", "|A?|", "||"} {
		if _, err := ParseCards(s); !errors.Is(err, ErrInvalidCardString) {
			t.Fatalf("ParseCards(%q) error = %v, want ErrInvalidCardString", s, err)
		}
	}
}
