package app

import (
	"errors"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"schnapsen/internal/bot"
	"schnapsen/internal/domain"
)

// Service contains Schnapsen use-cases operating on domain state.
type Service struct {
	rng   *rand.Rand
	stock domain.Cards
	fast  bool
}

// NewService constructs a Service with provided rng or a time-seeded default.
func NewService(rng *rand.Rand) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{rng: rng}
}

// WithStock deals every deal from the given pack instead of shuffling.
func (s *Service) WithStock(stock domain.Cards) *Service {
	s.stock = stock.Clone()
	return s
}

// WithFast halves pacing delays of a second or more.
func (s *Service) WithFast(fast bool) *Service {
	s.fast = fast
	return s
}

var (
	ErrNotPlaying     = errors.New("deal not in playing phase")
	ErrDealInProgress = errors.New("deal still in progress")
	ErrNotYourTurn    = errors.New("not player's turn")
	ErrNotAITurn      = errors.New("not ai's turn")
	ErrCardNotInHand  = errors.New("card not in hand")
	ErrNotLeading     = errors.New("marriage only allowed when leading")
	ErrNoMarriage     = errors.New("card does not form a marriage")
	ErrNoJack         = errors.New("trump jack not in hand")
	ErrNoAgent        = errors.New("no ai agent")
)

const (
	aiThinkWait = 2.0
	trickWait   = 1.5
	gameEndWait = 2.0
)

func (s *Service) notifier() *eventNotifier {
	return &eventNotifier{fast: s.fast}
}

func (s *Service) playing(sess *Session) (*domain.Table, error) {
	if sess.Game == nil || sess.Game.Phase != domain.PhasePlaying {
		return nil, ErrNotPlaying
	}
	return &sess.Game.Table, nil
}

// StartDeal deals a new game of the session's match. The first mover
// alternates between deals.
func (s *Service) StartDeal(sess *Session) ([]Event, error) {
	if sess.Game != nil && sess.Game.Phase == domain.PhasePlaying {
		return nil, ErrDealInProgress
	}
	stock := s.stock
	if len(stock) == 0 {
		stock = domain.ShuffleDeck(domain.FullCards(), s.rng)
	}

	g := &domain.Game{ID: uuid.NewString(), Phase: domain.PhasePlaying}
	domain.Deal(&g.Table, stock)
	g.Table.Game.Move = sess.Match.NextLead()
	sess.Game = g

	t := &g.Table
	trumpCard, _ := t.Game.TrumpCard()
	n := s.notifier()
	n.emit(EventDealStarted, DealStartedPayload{
		DealID:    g.ID,
		Hand:      t.Player.Cards.Clone(),
		TrumpCard: trumpCard,
		StockSize: len(t.Game.Cards),
		Lead:      t.Game.Move,
		Book:      append([]domain.BookEntry(nil), sess.Match.Book...),
	})
	if t.Game.Move == domain.SidePlayer {
		announceTurn(n, t)
	}
	return n.events, nil
}

// PlayCard puts one of the player's cards on the table, optionally
// declaring the marriage it forms. Once the stock is closed a follow must
// obey suit and trick duties.
func (s *Service) PlayCard(sess *Session, card domain.Card, declare bool) ([]Event, error) {
	t, err := s.playing(sess)
	if err != nil {
		return nil, err
	}
	p := &t.Player
	if t.Game.Move != domain.SidePlayer || p.MoveState != domain.MoveNone {
		return nil, ErrNotYourTurn
	}
	i, ok := p.Cards.FindPos(card)
	if !ok {
		return nil, ErrCardNotInHand
	}
	rest := p.Cards.Clone()
	rest.RemoveAt(i)

	leading := t.AI.MoveState == domain.MoveNone
	if !leading && t.Game.Closed != domain.ClosedNot {
		if err := domain.ValidateFollow(card, t.AI.Card, rest, t.Game.Trump); err != nil {
			return nil, err
		}
	}
	marriage := domain.MarriageNone
	if declare {
		if !leading {
			return nil, ErrNotLeading
		}
		if marriage = domain.MarriageWith(card, rest, t.Game.Trump); marriage == domain.MarriageNone {
			return nil, ErrNoMarriage
		}
	}

	n := s.notifier()
	p.Cards = rest
	p.Card = card
	t.Game.Marriage = marriage
	if marriage != domain.MarriageNone {
		msg := domain.MsgYouMarriage20
		if marriage == domain.Marriage40 {
			msg = domain.MsgYouMarriage40
		}
		n.Message(msg, true)
		p.BankMarriage(marriage, card.Suit, len(t.Game.Cards) == 0)
		n.emit(EventMarriage, MarriagePayload{
			Side:    domain.SidePlayer,
			Suit:    card.Suit,
			Kind:    marriage,
			Score:   p.Score,
			Pending: p.Pending,
		})
	}
	p.MoveState = domain.MoveOnTable

	n.emit(EventCardPlayed, CardPlayedPayload{Side: domain.SidePlayer, Card: card, Marriage: marriage, Leading: leading})

	if s.checkEnd(n, sess, domain.SidePlayer) {
		return n.events, nil
	}
	if leading {
		t.Game.Move = domain.SideAI
		return n.events, nil
	}
	n.Wait(trickWait)
	s.resolveTrick(n, sess, domain.SideAI)
	return n.events, nil
}

// CloseStock closes the stock for the player, who must be about to lead.
func (s *Service) CloseStock(sess *Session) ([]Event, error) {
	t, err := s.playing(sess)
	if err != nil {
		return nil, err
	}
	if t.Game.Move != domain.SidePlayer {
		return nil, ErrNotYourTurn
	}
	if err := domain.CheckClose(t); err != nil {
		return nil, err
	}
	t.Game.Closed = domain.ClosedByPlayer
	n := s.notifier()
	n.Message(domain.MsgYouClosed, true)
	n.emit(EventStockClosed, StockClosedPayload{By: domain.SidePlayer})
	return n.events, nil
}

// ChangeJack exchanges the player's trump jack for the face-up trump card.
func (s *Service) ChangeJack(sess *Session) ([]Event, error) {
	t, err := s.playing(sess)
	if err != nil {
		return nil, err
	}
	if t.Game.Move != domain.SidePlayer || !t.Idle() {
		return nil, ErrNotYourTurn
	}
	if err := domain.CheckChange(t); err != nil {
		return nil, err
	}
	n := s.notifier()
	if !bot.NewEngine(t, n).TestChange(domain.SidePlayer, true) {
		return nil, ErrNoJack
	}
	trumpCard, _ := t.Game.TrumpCard()
	n.emitChange(JackChangedPayload{Side: domain.SidePlayer, Taken: t.Player.Changed, TrumpCard: trumpCard})
	return n.events, nil
}

// AIMove lets agent play the AI's turn and resolves the trick when the
// AI was following.
func (s *Service) AIMove(sess *Session, agent *bot.Agent) ([]Event, error) {
	t, err := s.playing(sess)
	if err != nil {
		return nil, err
	}
	ai := &t.AI
	if t.Game.Move != domain.SideAI || ai.MoveState != domain.MoveNone {
		return nil, ErrNotAITurn
	}
	if agent == nil {
		return nil, ErrNoAgent
	}

	n := s.notifier()
	leading := t.Player.MoveState == domain.MoveNone
	ai.MoveState = domain.MoveMoving
	if leading {
		n.Message(domain.MsgAILeads, false)
	} else {
		n.Message(domain.MsgAITurn, false)
	}
	n.Wait(aiThinkWait)

	move, err := agent.Play(t, n)
	if err != nil {
		ai.MoveState = domain.MoveNone
		return nil, err
	}
	if move.Changed {
		trumpCard, _ := t.Game.TrumpCard()
		n.emitChange(JackChangedPayload{Side: domain.SideAI, Taken: ai.Changed, TrumpCard: trumpCard})
	}
	if move.Closed {
		n.emit(EventStockClosed, StockClosedPayload{By: domain.SideAI})
	}
	if move.Marriage != domain.MarriageNone {
		n.emit(EventMarriage, MarriagePayload{
			Side:    domain.SideAI,
			Suit:    move.Card.Suit,
			Kind:    move.Marriage,
			Score:   ai.Score,
			Pending: ai.Pending,
		})
	}
	n.emit(EventCardPlayed, CardPlayedPayload{Side: domain.SideAI, Card: move.Card, Marriage: move.Marriage, Leading: leading})

	if s.checkEnd(n, sess, domain.SideAI) {
		return n.events, nil
	}
	if leading {
		t.Game.Move = domain.SidePlayer
		announceTurn(n, t)
		return n.events, nil
	}
	n.Wait(trickWait)
	s.resolveTrick(n, sess, domain.SidePlayer)
	return n.events, nil
}

// resolveTrick awards the trick led by leader, ends the deal if decided and
// otherwise fills up the hands.
func (s *Service) resolveTrick(n *eventNotifier, sess *Session, leader domain.Side) {
	t := &sess.Game.Table
	winner := leader
	if domain.CardTricks(t.State(leader.Other()).Card, t.State(leader).Card, t.Game.Trump) {
		winner = leader.Other()
	}
	t.Game.Marriage = domain.MarriageNone
	t.Game.Move = winner
	t.Player.MoveState = domain.MoveNone
	t.AI.MoveState = domain.MoveNone

	pc, ac := t.Player.Card, t.AI.Card
	w := t.State(winner)
	if winner == domain.SidePlayer {
		w.Deck.Prepend(ac)
		w.Deck.Prepend(pc)
	} else {
		w.Deck.Append(pc)
		w.Deck.Append(ac)
	}
	points := pc.Value() + ac.Value() + w.Pending
	w.Score += points
	w.Pending = 0

	n.emit(EventTrickTaken, TrickTakenPayload{
		Winner:      winner,
		PlayerCard:  pc,
		AICard:      ac,
		Points:      points,
		PlayerScore: t.Player.Score,
		AIScore:     t.AI.Score,
	})
	if winner == domain.SidePlayer {
		n.Message(domain.MsgYourTrick, false)
	} else {
		n.Message(domain.MsgAITrick, false)
	}

	if s.checkEnd(n, sess, winner) {
		return
	}
	fillUp(n, t)
	n.Wait(trickWait)
	if winner == domain.SidePlayer {
		announceTurn(n, t)
	}
}

// fillUp draws for both hands while the stock is open, the trick winner
// first. Drawing the last card exhausts the stock.
func fillUp(n *eventNotifier, t *domain.Table) {
	if t.Game.Closed != domain.ClosedNot {
		return
	}
	for _, side := range []domain.Side{t.Game.Move, t.Game.Move.Other()} {
		c, ok := t.Game.Draw()
		if !ok {
			break
		}
		st := t.State(side)
		st.Cards.Prepend(c)
		st.LastDrawn = c
	}
	t.Player.Cards.Sort()
	t.AI.Cards.Sort()
	if len(t.Game.Cards) == 0 {
		t.Game.Closed = domain.ClosedAuto
	}
	n.emit(EventCardsDrawn, CardsDrawnPayload{
		Drawn:     t.Player.LastDrawn,
		Hand:      t.Player.Cards.Clone(),
		StockSize: len(t.Game.Cards),
		Closed:    t.Game.Closed,
	})
}

// checkEnd finishes the deal when it is decided with move to act.
func (s *Service) checkEnd(n *eventNotifier, sess *Session, move domain.Side) bool {
	g := sess.Game
	winner, reason, ended := domain.CheckEnd(&g.Table, move)
	if !ended {
		return false
	}

	entry := domain.ScoreDeal(&g.Table, winner)
	g.Outcome = &domain.Outcome{Winner: winner, Reason: reason, Entry: entry}
	g.Phase = domain.PhaseEnded

	if reason == domain.MsgYouNotEnough || reason == domain.MsgAINotEnough {
		n.Message(reason, true)
	}
	if winner == domain.SidePlayer {
		n.Message(domain.MsgYourGame, true)
	} else {
		n.Message(domain.MsgAIGame, true)
	}

	book := append(append([]domain.BookEntry(nil), sess.Match.Book...), entry)
	n.emit(EventGameEnded, GameEndedPayload{
		DealID:      g.ID,
		Winner:      winner,
		Reason:      reason,
		Entry:       entry,
		PlayerScore: g.Table.Player.Score,
		AIScore:     g.Table.AI.Score,
		Book:        book,
	})
	n.Wait(gameEndWait)

	matchWinner, matchEnded := sess.Match.Record(entry)
	if !matchEnded {
		return true
	}
	if matchWinner == domain.SidePlayer {
		n.Message(domain.MsgYouWin, true)
	} else {
		n.Message(domain.MsgYouLost, true)
	}
	n.emit(EventMatchEnded, MatchEndedPayload{
		Winner:     matchWinner,
		GamesWon:   sess.Match.GamesWon,
		MatchesWon: sess.Match.MatchesWon,
	})
	return true
}

func announceTurn(n *eventNotifier, t *domain.Table) {
	if t.AI.MoveState == domain.MoveNone {
		n.Message(domain.MsgYouLead, false)
		return
	}
	n.Message(domain.MsgYourTurn, false)
}
