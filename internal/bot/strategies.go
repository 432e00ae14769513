package bot

import (
	"github.com/heroiclabs/nakama-common/runtime"

	"schnapsen/internal/bot/brain"
	"schnapsen/internal/domain"
)

// aiState is the AI's situation: stock open or closed, leading or following.
type aiState int

const (
	stateOpenLead aiState = iota
	stateOpenFollow
	stateClosedLead
	stateClosedFollow
)

func (e *Engine) state() aiState {
	closed := e.game().Closed != domain.ClosedNot
	following := e.player().MoveState == domain.MoveOnTable
	switch {
	case closed && following:
		return stateClosedFollow
	case closed:
		return stateClosedLead
	case following:
		return stateOpenFollow
	default:
		return stateOpenLead
	}
}

// AIMove runs the standard decision procedure and commits the chosen card.
func (e *Engine) AIMove() (Move, error) {
	return e.play(func(m *Move) {
		switch e.state() {
		case stateOpenLead:
			e.moveLead(m)
		case stateOpenFollow:
			e.moveFollow()
		case stateClosedLead:
			e.moveClosedLead()
		case stateClosedFollow:
			e.moveClosedFollow()
		}
	})
}

// play resets the marriage flag, defaults to the lowest card, lets choose
// refine the move and then puts the card on the table.
func (e *Engine) play(choose func(m *Move)) (Move, error) {
	g, ai := e.game(), e.ai()
	if len(ai.Cards) == 0 {
		return Move{}, ErrEmptyHand
	}
	g.Marriage = domain.MarriageNone
	ai.MoveState = domain.MoveMoving

	e.move, _ = e.LowestCard(ai.Cards, true)

	var m Move
	choose(&m)

	ai.Card = ai.Cards.RemoveAt(e.move)
	e.ui.AnimateMove()
	ai.MoveState = domain.MoveOnTable
	e.ui.Update()
	e.logf(LogDecisions, "AI move: %s", ai.Card)

	m.Card = ai.Card
	m.Marriage = g.Marriage
	return m, nil
}

func (e *Engine) moveLead(m *Move) {
	ai := e.ai()
	m.Changed = e.TestChange(domain.SideAI, false) && e.TestChange(domain.SideAI, true)

	if i, ok := e.AIPlay2040(); ok {
		e.move = i
	}

	if e.AITestClose() {
		m.Closed = true
		if e.game().Marriage == domain.MarriageNone {
			best := brain.NewEstimator(e.table).HighestCardsInHand(ai.Cards)
			if len(best) > 0 {
				if i, ok := ai.Cards.FindPos(best[0]); ok {
					e.move = i
				}
			}
		}
	}
}

func (e *Engine) moveFollow() {
	g, p, ai := e.game(), e.player(), e.ai()
	lead := p.Card
	s20 := e.Have20(ai.Cards)
	s40 := e.Have40(ai.Cards)

	if len(s20) > 0 || len(s40) > 0 || lead.Value() >= 10 {
		// keep a held 40 intact while tricking
		temp := ai.Cards.Clone()
		if len(s40) > 0 {
			temp = temp.Minus(
				domain.Card{Face: domain.FaceQueen, Suit: g.Trump},
				domain.Card{Face: domain.FaceKing, Suit: g.Trump},
			)
		}
		if i, ok := e.LowestCardThatTricks(lead, temp); ok {
			e.move, _ = ai.Cards.FindPos(temp[i])
		}
		return
	}

	tricks := e.AllCardsThatTrick(lead, ai.Cards)
	if len(tricks) == 0 {
		return
	}
	best, ok := e.BestTrickCard(lead, tricks)
	if !ok {
		return
	}
	i, _ := ai.Cards.FindPos(tricks[best])
	c := ai.Cards[i]

	score := c.Value() + lead.Value() + ai.Pending
	var trick bool
	switch {
	case ai.Score < domain.FirstThreshold && ai.Score+score >= domain.FirstThreshold:
		trick = true
	case ai.Score >= domain.FirstThreshold && ai.Score+score >= domain.WinningScore:
		trick = true
	case len(g.Cards) <= 2 && ai.Score <= 50 && ai.Score+score >= closeThreshold:
		trick = true
	case lead.Suit != g.Trump && c.Suit != g.Trump:
		trick = true
	}
	if trick {
		e.move = i
	}
}

func (e *Engine) moveClosedLead() {
	ai := e.ai()
	if i, ok := e.AIPlay2040(); ok {
		e.move = i
		return
	}

	est := brain.NewEstimator(e.table)
	if claim := est.TrumpsToClaim(); len(claim) > 0 && len(claim) >= est.MaxTrumpsPlayer() {
		e.move, _ = ai.Cards.FindPos(claim[0])
		return
	}
	if claim := est.CardsToClaim(domain.AnySuit); len(claim) > 0 {
		e.move, _ = ai.Cards.FindPos(claim[0])
		return
	}
	if pull := est.PullTrumpCards(ai.Cards, e.player().Cards); len(pull) > 0 {
		e.move, _ = ai.Cards.FindPos(pull[0])
	}
}

func (e *Engine) moveClosedFollow() {
	if i, ok := e.MustGiveColorOrTrick(e.player().Card, e.ai().Cards); ok {
		e.move = i
	}
}

// StandardBot plays the full decision procedure.
type StandardBot struct {
	Logger   runtime.Logger
	LogLevel int
}

func (b *StandardBot) CalculateMove(t *domain.Table, ui domain.Notifier) (Move, error) {
	return NewEngine(t, ui).WithLogger(b.Logger, b.LogLevel).AIMove()
}

// EasyBot declares marriages and follows the closed-stock duties but
// otherwise sheds its lowest card. It never closes or exchanges the jack.
type EasyBot struct {
	Logger   runtime.Logger
	LogLevel int
}

func (b *EasyBot) CalculateMove(t *domain.Table, ui domain.Notifier) (Move, error) {
	e := NewEngine(t, ui).WithLogger(b.Logger, b.LogLevel)
	return e.play(func(m *Move) {
		switch e.state() {
		case stateOpenLead, stateClosedLead:
			if i, ok := e.AIPlay2040(); ok {
				e.move = i
			}
		case stateClosedFollow:
			e.moveClosedFollow()
		case stateOpenFollow:
		}
	})
}
