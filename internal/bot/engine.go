package bot

import (
	"github.com/heroiclabs/nakama-common/runtime"

	"schnapsen/internal/bot/brain"
	"schnapsen/internal/domain"
)

const (
	noMove = -1

	// closeThreshold is the score the AI expects to reach from its boss
	// cards before it closes the stock.
	closeThreshold = 60

	// lowestStart is above every card value.
	lowestStart = 20
)

// Log levels understood by Engine.
const (
	LogSilent = iota
	LogDecisions
	LogHelpers
	LogTrace
)

// Engine evaluates the rules and picks the AI's moves on one table. It
// mutates the table in place and reports observable effects to the
// Notifier. It never blocks; Wait requests are left to the host.
type Engine struct {
	table    *domain.Table
	ui       domain.Notifier
	logger   runtime.Logger
	logLevel int
	move     int
}

// NewEngine binds an engine to t. A nil ui discards notifications.
func NewEngine(t *domain.Table, ui domain.Notifier) *Engine {
	if ui == nil {
		ui = domain.NopNotifier{}
	}
	return &Engine{table: t, ui: ui, move: noMove}
}

// WithLogger attaches a logger. level 0 silences it.
func (e *Engine) WithLogger(logger runtime.Logger, level int) *Engine {
	e.logger = logger
	e.logLevel = level
	return e
}

func (e *Engine) logf(level int, format string, v ...interface{}) {
	if e.logger == nil || e.logLevel < level {
		return
	}
	e.logger.Debug(format, v...)
}

func (e *Engine) game() *domain.GameData    { return &e.table.Game }
func (e *Engine) player() *domain.GameState { return &e.table.Player }
func (e *Engine) ai() *domain.GameState     { return &e.table.AI }
func (e *Engine) trump() domain.Suit        { return e.table.Game.Trump }

// CardTricks reports whether a beats b under the table's trump.
func (e *Engine) CardTricks(a, b domain.Card) bool {
	return domain.CardTricks(a, b, e.trump())
}

// Have40 returns the trump suit if cards hold its king and queen.
func (e *Engine) Have40(cards domain.Cards) []domain.Suit {
	return domain.Have40(cards, e.trump())
}

// Have20 returns the non-trump suits with king and queen in cards.
func (e *Engine) Have20(cards domain.Cards) []domain.Suit {
	return domain.Have20(cards, e.trump())
}

// LowestCard returns the index of the lowest card. With noTrump set a
// non-trump card is preferred when one exists.
func (e *Engine) LowestCard(cards domain.Cards, noTrump bool) (int, bool) {
	lowestValue, lowestTrumpValue := lowestStart, lowestStart
	lowest, lowestTrump := noMove, noMove
	for i, c := range cards {
		if c.Suit == e.trump() {
			if c.Value() < lowestTrumpValue {
				lowestTrumpValue = c.Value()
				lowestTrump = i
			}
			continue
		}
		if c.Value() < lowestValue {
			lowestValue = c.Value()
			lowest = i
		}
	}
	if lowest == noMove {
		lowest = lowestTrump
	}
	if noTrump && lowest != noMove {
		return lowest, true
	}
	return lowestTrump, lowestTrump != noMove
}

// LowestCardThatTricks returns the cheapest card beating lead. Trumps cost
// an extra 100 so a plain win is preferred.
func (e *Engine) LowestCardThatTricks(lead domain.Card, cards domain.Cards) (int, bool) {
	lowestValue := 999
	lowest := noMove
	for i, c := range cards {
		if !e.CardTricks(c, lead) {
			continue
		}
		value := c.Value()
		if c.Suit == e.trump() {
			value += 100
		}
		if value < lowestValue {
			lowestValue = value
			lowest = i
		}
	}
	return lowest, lowest != noMove
}

// HighestCardThatTricks returns the most valuable card beating lead, a
// trump counting one less than a plain card of the same value.
func (e *Engine) HighestCardThatTricks(lead domain.Card, cards domain.Cards) (int, bool) {
	highestValue := 0
	highest := noMove
	for i, c := range cards {
		if !e.CardTricks(c, lead) {
			continue
		}
		value := c.Value()
		if c.Suit == e.trump() {
			value--
		}
		if value > highestValue {
			highestValue = value
			highest = i
		}
	}
	return highest, highest != noMove
}

// AllCardsThatTrick lists every card beating lead. Cards are scanned trumps
// first, each hit inserted at the front, so plain cards lead the result
// and the most valuable trumps end up last.
func (e *Engine) AllCardsThatTrick(lead domain.Card, cards domain.Cards) domain.Cards {
	sorted := cards.Clone()
	sorted.SortTrump(e.trump())
	var res domain.Cards
	for _, c := range sorted {
		if e.CardTricks(c, lead) {
			res.InsertHighestPriority(c)
		}
	}
	e.logf(LogHelpers, "all_cards_that_trick: %s - %s => %s", cards, lead, res)
	return res
}

// BestTrickCard picks among tricks: the first card that wins the deal, else
// the first that passes 33, else the cheapest winner.
func (e *Engine) BestTrickCard(lead domain.Card, tricks domain.Cards) (int, bool) {
	ai := e.ai()
	reach := func(target int) (int, bool) {
		for i, c := range tricks {
			if c.Value()+lead.Value()+ai.Score+ai.Pending >= target {
				return i, true
			}
		}
		return noMove, false
	}
	if i, ok := reach(domain.WinningScore); ok {
		return i, true
	}
	if i, ok := reach(domain.FirstThreshold); ok {
		return i, true
	}
	return e.LowestCardThatTricks(lead, tricks)
}

// MustGiveColorOrTrick returns the index of the AI's answer to lead once
// the stock is closed: follow suit and trick if possible, else trump if
// possible, else the lowest card.
func (e *Engine) MustGiveColorOrTrick(lead domain.Card, cards domain.Cards) (int, bool) {
	same := cards.OfSuit(lead.Suit)
	if len(same) == 0 {
		if lead.Suit == e.trump() {
			return e.LowestCard(cards, true)
		}
		trumps := cards.OfSuit(e.trump())
		if len(trumps) == 0 {
			return e.LowestCard(cards, true)
		}
		i, ok := e.BestTrickCard(lead, trumps)
		if !ok {
			return e.LowestCard(cards, true)
		}
		return cards.FindPos(trumps[i])
	}

	var tricks domain.Cards
	for _, c := range same {
		if e.CardTricks(c, lead) {
			tricks = append(tricks, c)
		}
	}
	if len(tricks) == 0 {
		i, _ := e.LowestCard(same, true)
		return cards.FindPos(same[i])
	}
	i, _ := e.BestTrickCard(lead, tricks)
	return cards.FindPos(tricks[i])
}

// TestChange reports whether side may exchange the trump jack for the
// face-up trump card. With commit set the exchange is performed.
func (e *Engine) TestChange(side domain.Side, commit bool) bool {
	g := e.game()
	if len(g.Cards) < domain.MinStockToClose || g.Closed != domain.ClosedNot {
		return false
	}
	trumpCard, _ := g.TrumpCard()
	s := e.table.State(side)
	i, ok := s.Cards.FindPos(domain.Card{Face: domain.FaceJack, Suit: trumpCard.Suit})
	if !commit || !ok {
		return ok
	}

	e.logf(LogDecisions, "%s changes jack for %s", side, trumpCard)
	jack := s.Cards.RemoveAt(i)
	if s.Card != jack {
		s.Card = jack
		e.ui.AnimateChange(true)
	}

	msg := domain.MsgYouChanged
	if side == domain.SideAI {
		msg = domain.MsgAIChanged
	}
	e.ui.Message(msg, true)
	e.ui.Update()

	old, _ := g.ReplaceTrumpCard(s.Card)
	s.Card = old
	e.ui.AnimateChange(false)

	s.Cards.Append(old)
	s.Cards.Sort()
	s.Changed = old
	e.ui.Wait(1.5)
	return true
}

// AIPlay2040 declares the AI's best marriage and returns the index of the
// queen to lead with it. 40 beats 20; among 20s the first suit found wins.
func (e *Engine) AIPlay2040() (int, bool) {
	g, ai := e.game(), e.ai()
	var (
		kind domain.Marriage
		suit domain.Suit
		bell domain.MessageKind
	)
	if suits := e.Have40(ai.Cards); len(suits) > 0 {
		kind, suit, bell = domain.Marriage40, suits[0], domain.MsgAIMarriage40
	} else if suits := e.Have20(ai.Cards); len(suits) > 0 {
		kind, suit, bell = domain.Marriage20, suits[0], domain.MsgAIMarriage20
	} else {
		return noMove, false
	}

	i, ok := ai.Cards.FindPos(domain.Card{Face: domain.FaceQueen, Suit: suit})
	if !ok {
		return noMove, false
	}
	g.Marriage = kind
	e.ui.Message(bell, true)
	ai.BankMarriage(kind, suit, len(g.Cards) == 0)
	e.logf(LogDecisions, "AI declares %d with %s", kind.Points(), ai.Cards[i])
	return i, true
}

// AITestClose closes the stock when the AI's boss cards plus its score
// promise at least 60 points.
func (e *Engine) AITestClose() bool {
	g, p, ai := e.game(), e.player(), e.ai()
	if g.Closed != domain.ClosedNot || p.MoveState != domain.MoveNone || ai.MoveState != domain.MoveMoving ||
		len(g.Cards) < domain.MinStockToClose {
		return false
	}
	est := brain.NewEstimator(e.table)
	maybe := est.HighestCardsInHand(ai.Cards).Value() + ai.Score + ai.Pending
	e.logf(LogHelpers, "maybe_score: %d", maybe)
	if maybe < closeThreshold {
		return false
	}
	e.logf(LogDecisions, "closed by AI")
	g.Closed = domain.ClosedByAI
	e.ui.Message(domain.MsgAIClosed, true)
	e.ui.Update()
	e.ui.Wait(1.5)
	return true
}
