package domain

import "fmt"

// Face is the rank of a card in the 20-card Schnapsen pack.
type Face int8

const (
	NoFace Face = iota
	FaceTen
	FaceJack
	FaceQueen
	FaceKing
	FaceAce
)

// Suit is the suit of a card. AnySuit and NoSuit are query sentinels only.
type Suit int8

const (
	NoSuit Suit = iota
	SuitClub
	SuitDiamond
	SuitHeart
	SuitSpade
	AnySuit
)

var (
	faceValues = [...]int{NoFace: 0, FaceTen: 10, FaceJack: 2, FaceQueen: 3, FaceKing: 4, FaceAce: 11}
	faceAbbrs  = [...]string{NoFace: "", FaceTen: "T", FaceJack: "J", FaceQueen: "Q", FaceKing: "K", FaceAce: "A"}
	faceNames  = [...]string{NoFace: "none", FaceTen: "ten", FaceJack: "jack", FaceQueen: "queen", FaceKing: "king", FaceAce: "ace"}

	suitWeights = [...]int{NoSuit: 0, SuitClub: 1, SuitDiamond: 2, SuitHeart: 3, SuitSpade: 4, AnySuit: 0}
	suitSymbols = [...]string{NoSuit: "", SuitClub: "♣", SuitDiamond: "♦", SuitHeart: "♥", SuitSpade: "♠", AnySuit: "*"}
	suitNames   = [...]string{NoSuit: "none", SuitClub: "clubs", SuitDiamond: "diamonds", SuitHeart: "hearts", SuitSpade: "spades", AnySuit: "any"}
)

// Faces lists the real faces in pack order.
func Faces() []Face {
	return []Face{FaceTen, FaceJack, FaceQueen, FaceKing, FaceAce}
}

// Suits lists the real suits in pack order.
func Suits() []Suit {
	return []Suit{SuitClub, SuitDiamond, SuitHeart, SuitSpade}
}

func (f Face) valid() bool { return f > NoFace && f <= FaceAce }

// Value is the point value of the face.
func (f Face) Value() int {
	if f < 0 || int(f) >= len(faceValues) {
		return 0
	}
	return faceValues[f]
}

// Abbr returns the one-letter abbreviation used in card strings.
func (f Face) Abbr() string {
	if f < 0 || int(f) >= len(faceAbbrs) {
		return ""
	}
	return faceAbbrs[f]
}

func (f Face) String() string {
	if f < 0 || int(f) >= len(faceNames) {
		return fmt.Sprintf("face(%d)", int8(f))
	}
	return faceNames[f]
}

func (s Suit) valid() bool { return s > NoSuit && s < AnySuit }

// Weight orders suits for display: spades first, clubs last.
func (s Suit) Weight() int {
	if s < 0 || int(s) >= len(suitWeights) {
		return 0
	}
	return suitWeights[s]
}

// Symbol returns the suit glyph used in card strings.
func (s Suit) Symbol() string {
	if s < 0 || int(s) >= len(suitSymbols) {
		return ""
	}
	return suitSymbols[s]
}

func (s Suit) String() string {
	if s < 0 || int(s) >= len(suitNames) {
		return fmt.Sprintf("suit(%d)", int8(s))
	}
	return suitNames[s]
}

// Card is an immutable (face, suit) value. The zero Card is NoCard.
type Card struct {
	Face Face
	Suit Suit
}

// NoCard marks an empty slot, e.g. nothing committed to the table.
var NoCard = Card{}

// IsZero reports whether c is NoCard.
func (c Card) IsZero() bool { return c == NoCard }

// Value is the card's point value.
func (c Card) Value() int { return c.Face.Value() }

// SuitWeight is the display weight of the card's suit.
func (c Card) SuitWeight() int { return c.Suit.Weight() }

// Name is the long form, e.g. "queen of hearts".
func (c Card) Name() string {
	return c.Face.String() + " of " + c.Suit.String()
}

func (c Card) String() string {
	if c.IsZero() {
		return "--"
	}
	return c.Face.Abbr() + c.Suit.Symbol()
}

// ParseCard parses the short form produced by Card.String, e.g. "Q♥".
func ParseCard(s string) (Card, error) {
	if len(s) < 2 {
		return NoCard, fmt.Errorf("parse card %q: %w", s, ErrInvalidCardString)
	}
	var c Card
	for _, f := range Faces() {
		if f.Abbr() == s[:1] {
			c.Face = f
			break
		}
	}
	for _, suit := range Suits() {
		if suit.Symbol() == s[1:] {
			c.Suit = suit
			break
		}
	}
	if !c.Face.valid() || !c.Suit.valid() {
		return NoCard, fmt.Errorf("parse card %q: %w", s, ErrInvalidCardString)
	}
	return c, nil
}
