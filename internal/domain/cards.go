package domain

import (
	"fmt"
	"sort"
	"strings"
)

// Cards is an ordered card sequence. Order matters: the front of a candidate
// list is its highest priority and the back of the stock is the trump card.
type Cards []Card

// Clone returns an independent copy.
func (cs Cards) Clone() Cards {
	if cs == nil {
		return nil
	}
	out := make(Cards, len(cs))
	copy(out, cs)
	return out
}

// Plus returns cs followed by other.
func (cs Cards) Plus(other ...Card) Cards {
	out := make(Cards, 0, len(cs)+len(other))
	out = append(out, cs...)
	return append(out, other...)
}

// Minus returns a copy of cs with at most one matching instance removed for
// every element of other. Remaining order is preserved.
func (cs Cards) Minus(other ...Card) Cards {
	out := cs.Clone()
	for _, c := range other {
		out.Remove(c)
	}
	return out
}

// Without returns a copy of cs with every instance of the given cards removed.
func (cs Cards) Without(other ...Card) Cards {
	out := make(Cards, 0, len(cs))
	for _, c := range cs {
		if !Cards(other).Contains(c) {
			out = append(out, c)
		}
	}
	return out
}

// Append adds cards at the back.
func (cs *Cards) Append(c ...Card) {
	*cs = append(*cs, c...)
}

// Prepend inserts c at the front.
func (cs *Cards) Prepend(c Card) {
	*cs = append(*cs, NoCard)
	copy((*cs)[1:], (*cs)[:len(*cs)-1])
	(*cs)[0] = c
}

// InsertHighestPriority places c at the front of a candidate list so it is
// considered before everything already collected.
func (cs *Cards) InsertHighestPriority(c Card) {
	cs.Prepend(c)
}

// RemoveAt deletes and returns the card at index i.
func (cs *Cards) RemoveAt(i int) Card {
	c := (*cs)[i]
	*cs = append((*cs)[:i], (*cs)[i+1:]...)
	return c
}

// Remove deletes the first instance of c and reports whether one was found.
func (cs *Cards) Remove(c Card) bool {
	i, ok := cs.FindPos(c)
	if !ok {
		return false
	}
	cs.RemoveAt(i)
	return true
}

// PopFront removes and returns the front card.
func (cs *Cards) PopFront() (Card, bool) {
	if len(*cs) == 0 {
		return NoCard, false
	}
	return cs.RemoveAt(0), true
}

// Back returns the last card.
func (cs Cards) Back() (Card, bool) {
	if len(cs) == 0 {
		return NoCard, false
	}
	return cs[len(cs)-1], true
}

// FindPos returns the index of the first instance of c.
func (cs Cards) FindPos(c Card) (int, bool) {
	for i, x := range cs {
		if x == c {
			return i, true
		}
	}
	return -1, false
}

// Find returns the first instance of c.
func (cs Cards) Find(c Card) (Card, bool) {
	if i, ok := cs.FindPos(c); ok {
		return cs[i], true
	}
	return NoCard, false
}

// Contains reports whether c is present.
func (cs Cards) Contains(c Card) bool {
	_, ok := cs.FindPos(c)
	return ok
}

// FindFace returns the index of the first card with face f.
func (cs Cards) FindFace(f Face) (int, bool) {
	for i, x := range cs {
		if x.Face == f {
			return i, true
		}
	}
	return -1, false
}

// HasFace reports whether any card has face f.
func (cs Cards) HasFace(f Face) bool {
	_, ok := cs.FindFace(f)
	return ok
}

// OfSuit returns the cards of suit s in their current order.
func (cs Cards) OfSuit(s Suit) Cards {
	var out Cards
	for _, c := range cs {
		if c.Suit == s {
			out = append(out, c)
		}
	}
	return out
}

// Value sums the point values.
func (cs Cards) Value() int {
	total := 0
	for _, c := range cs {
		total += c.Value()
	}
	return total
}

// Sort orders for display: by suit weight descending, then value descending.
func (cs Cards) Sort() {
	cs.SortTrump(NoSuit)
}

// SortTrump sorts like Sort but puts the trump suit ahead of all others.
func (cs Cards) SortTrump(trump Suit) {
	weight := func(c Card) int {
		w := c.SuitWeight()
		if trump != NoSuit && c.Suit == trump {
			w *= 100
		}
		return w
	}
	sort.SliceStable(cs, func(i, j int) bool {
		if cs[i].Suit == cs[j].Suit {
			return cs[i].Value() > cs[j].Value()
		}
		return weight(cs[i]) > weight(cs[j])
	})
}

// SortByValue orders by point value only.
func (cs Cards) SortByValue(highToLow bool) {
	sort.SliceStable(cs, func(i, j int) bool {
		if highToLow {
			return cs[i].Value() > cs[j].Value()
		}
		return cs[i].Value() < cs[j].Value()
	})
}

// Equal reports element-wise equality, order included.
func (cs Cards) Equal(other Cards) bool {
	if len(cs) != len(other) {
		return false
	}
	for i := range cs {
		if cs[i] != other[i] {
			return false
		}
	}
	return true
}

// String renders "|T♣|Q♦|...|"; an empty sequence renders as "".
func (cs Cards) String() string {
	if len(cs) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("|")
	for _, c := range cs {
		b.WriteString(c.String())
		b.WriteString("|")
	}
	return b.String()
}

// ParseCards parses the output of Cards.String.
func ParseCards(s string) (Cards, error) {
	if s == "" {
		return Cards{}, nil
	}
	if len(s) < 2 || !strings.HasPrefix(s, "|") || !strings.HasSuffix(s, "|") {
		return nil, fmt.Errorf("parse cards %q: %w", s, ErrInvalidCardString)
	}
	parts := strings.Split(s[1:len(s)-1], "|")
	out := make(Cards, 0, len(parts))
	for _, part := range parts {
		c, err := ParseCard(part)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}
