package domain

// CardTricks reports whether a beats b: higher value in the same suit, or
// trump against a different suit. Two different non-trump suits never
// trick each other.
func CardTricks(a, b Card, trump Suit) bool {
	if a.Suit == b.Suit {
		return a.Value() > b.Value()
	}
	return a.Suit == trump
}

// HasSuit reports whether any card is of suit s.
func HasSuit(cards Cards, s Suit) bool {
	for _, c := range cards {
		if c.Suit == s {
			return true
		}
	}
	return false
}

// CanTrick reports whether any card beats lead.
func CanTrick(lead Card, cards Cards, trump Suit) bool {
	for _, c := range cards {
		if CardTricks(c, lead, trump) {
			return true
		}
	}
	return false
}

// CanTrickWithSuit reports whether a card of the lead's suit beats it.
func CanTrickWithSuit(lead Card, cards Cards, trump Suit) bool {
	for _, c := range cards {
		if c.Suit != lead.Suit {
			continue
		}
		if CardTricks(c, lead, trump) {
			return true
		}
	}
	return false
}

// SuitInHand collects the cards of suit s, most recently seen first.
func SuitInHand(s Suit, cards Cards) Cards {
	var out Cards
	for _, c := range cards {
		if c.Suit == s {
			out.InsertHighestPriority(c)
		}
	}
	return out
}

// Have40 returns [trump] when the hand holds trump king and queen.
func Have40(cards Cards, trump Suit) []Suit {
	if cards.Contains(Card{FaceQueen, trump}) && cards.Contains(Card{FaceKing, trump}) {
		return []Suit{trump}
	}
	return nil
}

// Have20 returns every non-trump suit with king and queen in hand, checked
// in the order spades, hearts, diamonds, clubs.
func Have20(cards Cards, trump Suit) []Suit {
	var out []Suit
	for _, s := range []Suit{SuitSpade, SuitHeart, SuitDiamond, SuitClub} {
		if s == trump {
			continue
		}
		if cards.Contains(Card{FaceQueen, s}) && cards.Contains(Card{FaceKing, s}) {
			out = append(out, s)
		}
	}
	return out
}

// MarriageWith returns the marriage formed by playing card while its
// partner stays in hand.
func MarriageWith(card Card, hand Cards, trump Suit) Marriage {
	var partner Face
	switch card.Face {
	case FaceQueen:
		partner = FaceKing
	case FaceKing:
		partner = FaceQueen
	default:
		return MarriageNone
	}
	if !hand.Contains(Card{partner, card.Suit}) {
		return MarriageNone
	}
	if card.Suit == trump {
		return Marriage40
	}
	return Marriage20
}

// ValidateFollow checks a follow to lead once the stock is closed. hand
// excludes card.
func ValidateFollow(card, lead Card, hand Cards, trump Suit) error {
	all := hand.Plus(card)
	if HasSuit(all, lead.Suit) {
		if card.Suit != lead.Suit {
			return reject(CodeInvalidSuit)
		}
		if CanTrickWithSuit(lead, all, trump) && !CardTricks(card, lead, trump) {
			return reject(CodeMustTrickWithSuit)
		}
		return nil
	}
	if CanTrick(lead, all, trump) && !CardTricks(card, lead, trump) {
		return reject(CodeMustTrickWithTrump)
	}
	return nil
}

// CheckClose validates closing the stock for the side to lead.
func CheckClose(t *Table) error {
	if t.Game.Closed != ClosedNot || !t.Idle() || len(t.Game.Cards) < MinStockToClose {
		return reject(CodeNoClose)
	}
	return nil
}

// CheckChange validates exchanging the trump jack for the face-up trump card.
func CheckChange(t *Table) error {
	if t.Game.Closed != ClosedNot || len(t.Game.Cards) < MinStockToClose {
		return reject(CodeNoChange)
	}
	return nil
}
