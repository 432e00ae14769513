package domain

import "fmt"

// MessageKind identifies a localized status notice.
type MessageKind int

const (
	MsgNone MessageKind = iota
	MsgYouChanged
	MsgYouClosed
	MsgYourGame
	MsgYourTrick
	MsgYourTurn
	MsgYouLead
	MsgYouNotEnough
	MsgAIChanged
	MsgAIClosed
	MsgAIGame
	MsgAITrick
	MsgAITurn
	MsgAILeads
	MsgAINotEnough
	MsgTrump
	MsgTitle
	MsgGameBook
	MsgGameBookHeadline
	MsgYouWin
	MsgYouLost
	MsgInvalidSuit
	MsgMustTrickWithSuit
	MsgMustTrickWithTrump
	MsgNoClose
	MsgNoChange
	MsgRedeal
	MsgWelcome
	MsgGamesWon
	MsgMatchesWon
	MsgYouMarriage20
	MsgYouMarriage40
	MsgAIMarriage20
	MsgAIMarriage40
	MsgShuffle
	MsgAISleep
)

var messageKeys = [...]string{
	MsgNone:               "none",
	MsgYouChanged:         "you_changed",
	MsgYouClosed:          "you_closed",
	MsgYourGame:           "your_game",
	MsgYourTrick:          "your_trick",
	MsgYourTurn:           "your_turn",
	MsgYouLead:            "you_lead",
	MsgYouNotEnough:       "you_not_enough",
	MsgAIChanged:          "ai_changed",
	MsgAIClosed:           "ai_closed",
	MsgAIGame:             "ai_game",
	MsgAITrick:            "ai_trick",
	MsgAITurn:             "ai_turn",
	MsgAILeads:            "ai_leads",
	MsgAINotEnough:        "ai_not_enough",
	MsgTrump:              "trump",
	MsgTitle:              "title",
	MsgGameBook:           "gamebook",
	MsgGameBookHeadline:   "gamebook_headline",
	MsgYouWin:             "you_win",
	MsgYouLost:            "you_lost",
	MsgInvalidSuit:        "invalid_suite",
	MsgMustTrickWithSuit:  "must_trick_with_suite",
	MsgMustTrickWithTrump: "must_trick_with_trump",
	MsgNoClose:            "no_close",
	MsgNoChange:           "no_change",
	MsgRedeal:             "redeal",
	MsgWelcome:            "welcome",
	MsgGamesWon:           "games_won",
	MsgMatchesWon:         "matches_won",
	MsgYouMarriage20:      "you_marriage_20",
	MsgYouMarriage40:      "you_marriage_40",
	MsgAIMarriage20:       "ai_marriage_20",
	MsgAIMarriage40:       "ai_marriage_40",
	MsgShuffle:            "shuffle",
	MsgAISleep:            "ai_sleep",
}

// MessageKinds returns every kind in declaration order.
func MessageKinds() []MessageKind {
	out := make([]MessageKind, len(messageKeys))
	for i := range messageKeys {
		out[i] = MessageKind(i)
	}
	return out
}

// String returns the stable catalog key of the kind.
func (k MessageKind) String() string {
	if k < 0 || int(k) >= len(messageKeys) {
		return fmt.Sprintf("message(%d)", int(k))
	}
	return messageKeys[k]
}

// Notifier receives the observable effects of engine decisions. Hosts
// implement only what they render; embed NopNotifier for the rest.
type Notifier interface {
	// Update signals that state changed and should be redisplayed.
	Update()
	// AnimateMove signals a card moved between hand and table.
	AnimateMove()
	// AnimateChange signals a card moved between hand and stock.
	AnimateChange(fromHand bool)
	// Message requests a status notice; bell asks for an attention cue.
	Message(kind MessageKind, bell bool)
	// Wait requests a pacing delay. Decisions never depend on it.
	Wait(seconds float64)
}

// NopNotifier ignores every notification.
type NopNotifier struct{}

func (NopNotifier) Update()                     {}
func (NopNotifier) AnimateMove()                {}
func (NopNotifier) AnimateChange(fromHand bool) {}
func (NopNotifier) Message(MessageKind, bool)   {}
func (NopNotifier) Wait(float64)                {}

var _ Notifier = NopNotifier{}
