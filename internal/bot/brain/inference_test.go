package brain

import (
	"testing"

	"schnapsen/internal/domain"
)

func TestHighestCardsOfSuitInHand(t *testing.T) {
	var tbl domain.Table
	tbl.Game.Trump = domain.SuitSpade
	tbl.AI.Cards = mustCards(t, "|A♠|K♥|K♣|Q♣|")
	tbl.Player.Deck = mustCards(t, "|T♣|")
	tbl.AI.Deck = mustCards(t, "|A♣|")

	e := NewEstimator(&tbl)
	if got, want := e.HighestCardsOfSuitInHand(tbl.AI.Cards, domain.SuitClub).String(), "|K♣|Q♣|"; got != want {
		t.Fatalf("HighestCardsOfSuitInHand(club) = %s, want %s", got, want)
	}
	if got, want := e.HighestCardsInHand(tbl.AI.Cards).String(), "|A♠|K♣|Q♣|"; got != want {
		t.Fatalf("HighestCardsInHand() = %s, want %s", got, want)
	}

	tbl.AI.Deck = nil
	e = NewEstimator(&tbl)
	if got := e.HighestCardsOfSuitInHand(tbl.AI.Cards, domain.SuitClub); len(got) != 0 {
		t.Fatalf("HighestCardsOfSuitInHand(club) without A♣ = %s, want empty", got)
	}
}

func TestHighestCardsOfSuitInOtherHand(t *testing.T) {
	var tbl domain.Table
	tbl.Game.Trump = domain.SuitSpade
	tbl.AI.Cards = mustCards(t, "|K♥|")

	e := NewEstimator(&tbl)
	hand := mustCards(t, "|A♦|T♦|K♥|")
	if got, want := e.HighestCardsOfSuitInHand(hand, domain.SuitDiamond).String(), "|A♦|T♦|"; got != want {
		t.Fatalf("HighestCardsOfSuitInHand(diamond) = %s, want %s", got, want)
	}
	if got := e.Memory.Status(mustCards(t, "|A♦|")[0]); got != StatusUnknown {
		t.Fatalf("estimator memory changed: A♦ status = %v", got)
	}
}

func TestPullTrumpCards(t *testing.T) {
	var tbl domain.Table
	tbl.Game.Trump = domain.SuitSpade
	e := NewEstimator(&tbl)

	from := mustCards(t, "|A♠|Q♥|Q♦|Q♣|J♣|")
	cards := mustCards(t, "|K♠|Q♠|K♥|K♦|A♣|")
	if got, want := e.PullTrumpCards(cards, from).String(), "|K♥|K♦|A♣|"; got != want {
		t.Fatalf("PullTrumpCards() = %s, want %s", got, want)
	}

	noTrumps := mustCards(t, "|Q♥|Q♦|Q♣|J♣|")
	if got := e.PullTrumpCards(cards, noTrumps); len(got) != 0 {
		t.Fatalf("PullTrumpCards() without opponent trumps = %s, want empty", got)
	}

	tbl.Game.Cards = mustCards(t, "|A♥|")
	if got, want := e.PullTrumpCards(cards, from).String(), "|K♦|A♣|"; got != want {
		t.Fatalf("PullTrumpCards() with A♥ in stock = %s, want %s", got, want)
	}
}

func TestCardsToClaim(t *testing.T) {
	var tbl domain.Table
	tbl.Game.Trump = domain.SuitHeart
	tbl.Game.Closed = domain.ClosedByAI
	tbl.AI.Cards = mustCards(t, "|A♠|T♠|J♦|A♥|")
	tbl.Player.Cards = mustCards(t, "|K♠|Q♠|T♥|A♦|")
	tbl.AI.Deck = mustCards(t, "|T♣|J♣|Q♣|K♣|A♣|J♠|Q♦|K♦|T♦|Q♥|K♥|J♥|")

	e := NewEstimator(&tbl)
	// A♠ faces K♠, T♠ faces Q♠, J♦ loses to A♦, A♥ faces T♥
	if got, want := e.CardsToClaim(domain.AnySuit).String(), "|A♠|A♥|T♠|"; got != want {
		t.Fatalf("CardsToClaim(any) = %s, want %s", got, want)
	}
	if got, want := e.TrumpsToClaim().String(), "|A♥|"; got != want {
		t.Fatalf("TrumpsToClaim() = %s, want %s", got, want)
	}
	if got := e.MaxTrumpsPlayer(); got != 1 {
		t.Fatalf("MaxTrumpsPlayer() = %d, want 1", got)
	}
}

func TestCardsToClaimSkipsVoidSuits(t *testing.T) {
	var tbl domain.Table
	tbl.Game.Trump = domain.SuitHeart
	tbl.Game.Closed = domain.ClosedAuto
	tbl.AI.Cards = mustCards(t, "|J♣|")
	tbl.Player.Cards = mustCards(t, "|J♦|")
	pack := domain.FullCards().Minus(tbl.AI.Cards...).Minus(tbl.Player.Cards...)
	tbl.AI.Deck = pack

	e := NewEstimator(&tbl)
	if got := e.CardsToClaim(domain.AnySuit); len(got) != 0 {
		t.Fatalf("CardsToClaim() with no same-suit answer = %s, want empty", got)
	}
}

func TestCountPlayedSuit(t *testing.T) {
	var tbl domain.Table
	tbl.Game.Trump = domain.SuitSpade
	tbl.Game.Cards = mustCards(t, "|J♥|K♦|T♠|")
	tbl.AI.Cards = mustCards(t, "|A♠|Q♠|")
	tbl.AI.Deck = mustCards(t, "|J♠|T♣|")
	tbl.Player.Deck = mustCards(t, "|K♠|J♦|")

	e := NewEstimator(&tbl)
	if got := len(e.CountPlayedSuit(domain.SuitSpade)); got != 3 {
		t.Fatalf("CountPlayedSuit(spade) = %d cards, want 3", got)
	}
	if got := e.MaxTrumpsPlayer(); got != 0 {
		t.Fatalf("MaxTrumpsPlayer() = %d, want 0", got)
	}

	tbl.Game.Closed = domain.ClosedByPlayer
	if got := e.CardsInPlay(domain.SuitSpade); got != 3 {
		t.Fatalf("CardsInPlay(spade) closed = %d, want 3", got)
	}
	if got := e.MaxCardsPlayer(domain.SuitDiamond); got != 4 {
		t.Fatalf("MaxCardsPlayer(diamond) = %d, want 4", got)
	}
}
