package nakama

import (
	"context"
	"database/sql"
	"math"
	"math/rand"
	"time"

	"schnapsen/internal/app"
	"schnapsen/internal/bot"
	"schnapsen/internal/config"
	"schnapsen/internal/domain"
	"schnapsen/internal/ports"

	"github.com/heroiclabs/nakama-common/runtime"
)

// queuedEvent is an app event waiting for its delivery tick.
type queuedEvent struct {
	Event   app.Event
	DueTick int64
}

// MatchState holds the authoritative runtime state for one human playing
// the AI.
type MatchState struct {
	HumanID      string                      `json:"human_id"`       // user ID of the seated human, empty while open
	Tick         int64                       `json:"tick"`           // current tick
	BotWaitUntil int64                       `json:"bot_wait_until"` // tick when the AI should act, 0 when unset
	LeftTick     int64                       `json:"left_tick"`      // tick the human disconnected, valid while Away
	Away         bool                        `json:"away"`           // the human left and may still rejoin
	Presences    map[string]runtime.Presence `json:"-"`
	Config       config.Config               `json:"-"`
	App          *app.Service                `json:"-"`
	Session      *app.Session                `json:"-"`
	Bot          bot.BotIdentity             `json:"-"` // identity the AI plays under
	Agent        *bot.Agent                  `json:"-"`
	Outbox       []queuedEvent               `json:"-"` // paced events not yet delivered
	Economy      ports.EconomyPort           `json:"-"` // Nakama wallet, nil disables settlement
	Stats        ports.StatsPort             `json:"-"` // per-user record, nil disables tracking
	rng          *rand.Rand
	nextTick     int64 // first tick free for the next queued event
}

// newMatchState builds the state of a fresh match from cfg.
func newMatchState(cfg config.Config, economy ports.EconomyPort, stats ports.StatsPort, rng *rand.Rand) (*MatchState, error) {
	stock, err := cfg.Stock()
	if err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &MatchState{
		Presences: make(map[string]runtime.Presence),
		Config:    cfg,
		App:       app.NewService(rand.New(rand.NewSource(rng.Int63()))).WithStock(stock).WithFast(cfg.Fast),
		Session:   app.NewSession(),
		Economy:   economy,
		Stats:     stats,
		rng:       rng,
	}, nil
}

// humanSeated reports whether a human currently holds the seat.
func (ms *MatchState) humanSeated() bool {
	return ms.HumanID != ""
}

// aiToAct reports whether the AI owes a move and every paced event has
// been delivered.
func (ms *MatchState) aiToAct() bool {
	g := ms.Session.Game
	if g == nil || g.Phase != domain.PhasePlaying || len(ms.Outbox) > 0 {
		return false
	}
	t := &g.Table
	return t.Game.Move == domain.SideAI && t.AI.MoveState == domain.MoveNone
}

// secondsToTicks converts a pacing delay to match ticks, rounding up.
func secondsToTicks(seconds float64) int64 {
	if seconds <= 0 {
		return 0
	}
	return int64(math.Ceil(seconds * MatchTickRate))
}

// NewMatch is the factory function registered with Nakama.
func NewMatch(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule) (runtime.Match, error) {
	return &matchHandler{}, nil
}

type matchHandler struct{}

// MatchInit is called when the match is created.
func (mh *matchHandler) MatchInit(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, params map[string]interface{}) (interface{}, int, string) {
	logger.Debug("MatchInit: Initializing match handler.")

	env, _ := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string)
	cfg, err := config.Parse(env)
	if err != nil {
		logger.Error("MatchInit: Invalid configuration, using defaults: %v", err)
		cfg = config.Default()
	}

	if err := bot.LoadIdentities(cfg.BotIdentitiesPath); err != nil {
		logger.Warn("MatchInit: Could not load bot identities: %v", err)
	}

	state, err := newMatchState(cfg, NewNakamaEconomyAdapter(nk), NewNakamaStatsAdapter(nk), nil)
	if err != nil {
		logger.Error("MatchInit: Failed to create match state: %v", err)
		return nil, 0, ""
	}

	label, err := labelString(domain.ComputeLabel(false, nil))
	if err != nil {
		logger.Error("MatchInit: Failed to marshal label: %v", err)
		return nil, 0, ""
	}

	return state, MatchTickRate, label
}

func (mh *matchHandler) MatchJoinAttempt(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presence runtime.Presence, metadata map[string]string) (interface{}, bool, string) {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state, false, "state not found"
	}

	// One human per match; the seated user may join from another session.
	if matchState.humanSeated() && matchState.HumanID != presence.GetUserId() {
		return state, false, "Match full"
	}
	return state, true, ""
}

func (mh *matchHandler) MatchJoin(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchJoin: state not found")
		return state
	}
	matchState.Tick = tick

	for _, p := range presences {
		userID := p.GetUserId()
		if matchState.humanSeated() && matchState.HumanID != userID {
			logger.Warn("MatchJoin: User %s joined but the seat belongs to %s.", userID, matchState.HumanID)
			continue
		}
		matchState.HumanID = userID
		matchState.Presences[userID] = p
		if matchState.Away {
			// The table state sent below supersedes anything still queued.
			logger.Info("MatchJoin: Player %s rejoined.", userID)
			matchState.Away = false
			matchState.Outbox = nil
			matchState.nextTick = tick
		}
	}

	if !matchState.humanSeated() {
		return matchState
	}

	if matchState.Agent == nil {
		mh.seatBot(matchState, logger)
	}

	mh.updateLabel(matchState, dispatcher, logger)
	mh.sendTableState(matchState, dispatcher, logger)

	if matchState.Session.Game == nil {
		mh.startDeal(ctx, matchState, dispatcher, logger)
	}

	return matchState
}

// seatBot picks the AI's identity and brain for the match.
func (mh *matchHandler) seatBot(state *MatchState, logger runtime.Logger) {
	identity := bot.GetBotIdentity(state.rng.Intn(1 << 16))
	brain, err := bot.NewBrain(state.Config.Level(), logger, state.Config.LogLevel)
	if err != nil {
		logger.Error("MatchJoin: Failed to create bot brain: %v", err)
		return
	}
	state.Bot = identity
	state.Agent = &bot.Agent{ID: identity.UserID, Name: identity.DisplayName, Strategy: brain}
	logger.Info("MatchJoin: %s (%s) plays %s at level %s.", identity.DisplayName, identity.UserID, state.HumanID, state.Config.Level())
}

// MatchLeave is called when one or more players leave the match.
func (mh *matchHandler) MatchLeave(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchLeave: state not found")
		return state
	}

	for _, p := range presences {
		delete(matchState.Presences, p.GetUserId())
		if p.GetUserId() == matchState.HumanID {
			logger.Info("MatchLeave: Player %s left, holding the seat for %d seconds.", p.GetUserId(), RejoinGraceSec)
			matchState.Away = true
			matchState.LeftTick = tick
		}
	}

	return matchState
}

func (mh *matchHandler) MatchLoop(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, messages []runtime.MatchData) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state
	}

	matchState.Tick = tick

	if matchState.Away {
		if tick-matchState.LeftTick >= RejoinGraceSec*MatchTickRate {
			logger.Info("MatchLoop: Player %s did not return, terminating match.", matchState.HumanID)
			return nil
		}
		return matchState
	}

	for _, msg := range messages {
		if msg.GetUserId() != matchState.HumanID {
			logger.Warn("MatchLoop: Ignoring message from %s.", msg.GetUserId())
			continue
		}
		switch msg.GetOpCode() {
		case OpPlayCard:
			mh.handlePlayCard(ctx, matchState, dispatcher, logger, msg)
		case OpCloseStock:
			mh.handleAction(ctx, matchState, dispatcher, logger, "CloseStock", matchState.App.CloseStock)
		case OpChangeJack:
			mh.handleAction(ctx, matchState, dispatcher, logger, "ChangeJack", matchState.App.ChangeJack)
		case OpNextDeal:
			mh.startDeal(ctx, matchState, dispatcher, logger)
		case OpTableState:
			mh.sendTableState(matchState, dispatcher, logger)
		default:
			logger.Warn("MatchLoop: Unknown opcode received: %d", msg.GetOpCode())
		}
	}

	mh.processBot(ctx, matchState, dispatcher, logger)
	mh.flushOutbox(matchState, dispatcher, logger)

	return matchState
}

// processBot lets the AI move once its random thinking delay has passed.
func (mh *matchHandler) processBot(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	if !state.aiToAct() {
		state.BotWaitUntil = 0
		return
	}
	if state.Agent == nil {
		logger.Error("processBot: No agent seated for match.")
		return
	}

	if state.BotWaitUntil == 0 {
		minTicks := secondsToTicks(state.Config.BotMinDelaySec)
		maxTicks := secondsToTicks(state.Config.BotMaxDelaySec)
		delay := minTicks + state.rng.Int63n(maxTicks-minTicks+1)
		state.BotWaitUntil = state.Tick + delay
		logger.Debug("processBot: %s will act at tick %d (current %d)", state.Bot.DisplayName, state.BotWaitUntil, state.Tick)
	}
	if state.Tick < state.BotWaitUntil {
		return
	}
	state.BotWaitUntil = 0

	events, err := state.App.AIMove(state.Session, state.Agent)
	if err != nil {
		logger.Error("processBot: %s failed to move: %v", state.Bot.DisplayName, err)
		return
	}
	mh.enqueue(ctx, state, dispatcher, logger, events)
}

func (mh *matchHandler) handlePlayCard(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	request, err := decodePlayCard(msg.GetData())
	if err != nil {
		logger.Warn("handlePlayCard: Invalid request from %s: %v", msg.GetUserId(), err)
		mh.sendError(state, dispatcher, logger, err)
		return
	}

	events, err := state.App.PlayCard(state.Session, request.Card, request.Marriage)
	if err != nil {
		var hand domain.Cards
		if state.Session.Game != nil {
			hand = state.Session.Game.Table.Player.Cards
		}
		logger.Warn("handlePlayCard: %s failed to play %s: %v. Hand: %s", msg.GetUserId(), request.Card, err, hand)
		mh.sendError(state, dispatcher, logger, err)
		return
	}
	mh.enqueue(ctx, state, dispatcher, logger, events)
}

func (mh *matchHandler) handleAction(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, name string, action func(*app.Session) ([]app.Event, error)) {
	events, err := action(state.Session)
	if err != nil {
		logger.Warn("%s: Rejected for %s: %v", name, state.HumanID, err)
		mh.sendError(state, dispatcher, logger, err)
		return
	}
	mh.enqueue(ctx, state, dispatcher, logger, events)
}

func (mh *matchHandler) startDeal(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	events, err := state.App.StartDeal(state.Session)
	if err != nil {
		logger.Warn("startDeal: %v", err)
		mh.sendError(state, dispatcher, logger, err)
		return
	}
	logger.Info("startDeal: Deal %s started, %s leads.", state.Session.Game.ID, state.Session.Game.Table.Game.Move)
	mh.updateLabel(state, dispatcher, logger)
	mh.enqueue(ctx, state, dispatcher, logger, events)
}

// enqueue schedules events behind those still waiting. Each event is due
// once the pacing delay of its predecessor has elapsed. Settlement happens
// immediately since the deal state has already moved on.
func (mh *matchHandler) enqueue(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, events []app.Event) {
	if g := state.Session.Game; g != nil {
		if err := domain.CheckTable(&g.Table); err != nil {
			logger.Error("enqueue: Deal %s is inconsistent: %v", g.ID, err)
		}
	}
	if state.nextTick < state.Tick {
		state.nextTick = state.Tick
	}
	for _, ev := range events {
		state.Outbox = append(state.Outbox, queuedEvent{Event: ev, DueTick: state.nextTick})
		state.nextTick += secondsToTicks(ev.Delay.Seconds())
		mh.settle(ctx, state, dispatcher, logger, ev)
	}
}

// flushOutbox delivers every event that is due.
func (mh *matchHandler) flushOutbox(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	sent := 0
	for _, q := range state.Outbox {
		if q.DueTick > state.Tick {
			break
		}
		mh.broadcastEvent(state, dispatcher, logger, q.Event)
		sent++
	}
	state.Outbox = state.Outbox[sent:]
}

// settle applies the persistent side effects of finished games and matches.
func (mh *matchHandler) settle(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, ev app.Event) {
	switch p := ev.Payload.(type) {
	case app.GameEndedPayload:
		delta := ports.Stats{GamesLost: 1}
		if p.Winner == domain.SidePlayer {
			delta = ports.Stats{GamesWon: 1}
		}
		mh.addStats(ctx, state, logger, delta)

		if state.Economy != nil && state.Config.StakePerPoint > 0 {
			amount := int64(p.Entry.Player-p.Entry.AI) * state.Config.StakePerPoint
			update := ports.WalletUpdate{
				UserID: state.HumanID,
				Amount: amount,
				Metadata: map[string]interface{}{
					"match_id": ctx.Value(runtime.RUNTIME_CTX_MATCH_ID),
					"deal_id":  p.DealID,
					"reason":   "game_settlement",
				},
			}
			if err := state.Economy.UpdateBalances(ctx, []ports.WalletUpdate{update}); err != nil {
				logger.Error("Failed to settle deal %s: %v", p.DealID, err)
			}
		}
		mh.updateLabel(state, dispatcher, logger)
	case app.MatchEndedPayload:
		delta := ports.Stats{MatchesLost: 1}
		if p.Winner == domain.SidePlayer {
			delta = ports.Stats{MatchesWon: 1}
		}
		mh.addStats(ctx, state, logger, delta)
	}
}

func (mh *matchHandler) addStats(ctx context.Context, state *MatchState, logger runtime.Logger, delta ports.Stats) {
	if state.Stats == nil || state.HumanID == "" {
		return
	}
	if err := state.Stats.AddStats(ctx, state.HumanID, delta); err != nil {
		logger.Error("Failed to update stats for %s: %v", state.HumanID, err)
	}
}

// broadcastEvent handles the conversion and dispatching of app events to Nakama.
func (mh *matchHandler) broadcastEvent(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, ev app.Event) {
	opCode, fields, err := eventMessage(ev, state.Config.Language)
	if err != nil {
		logger.Warn("Unknown event kind: %v", ev.Kind)
		return
	}
	mh.send(state, dispatcher, logger, opCode, fields)
}

func (mh *matchHandler) sendTableState(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	mh.send(state, dispatcher, logger, OpTableState, tableStateMessage(state.Session.View(), state.Bot.DisplayName))
}

// sendError reports a rejected action to the human.
func (mh *matchHandler) sendError(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, err error) {
	mh.send(state, dispatcher, logger, OpError, errorMessage(err, state.Config.Language))
}

// send delivers a message to the human only. Nothing is sent while the
// human is disconnected.
func (mh *matchHandler) send(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, opCode int64, fields map[string]interface{}) {
	presence, ok := state.Presences[state.HumanID]
	if !ok {
		return
	}
	data, err := encodeStruct(fields)
	if err != nil {
		logger.Error("Failed to marshal message %d: %v", opCode, err)
		return
	}
	if err := dispatcher.BroadcastMessage(opCode, data, []runtime.Presence{presence}, nil, true); err != nil {
		logger.Error("Failed to send message %d: %v", opCode, err)
	}
}

func (mh *matchHandler) updateLabel(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	label, err := labelString(domain.ComputeLabel(state.humanSeated(), state.Session.Game))
	if err != nil {
		logger.Error("UpdateLabel: Failed to marshal: %v", err)
		return
	}
	if err := dispatcher.MatchLabelUpdate(label); err != nil {
		logger.Error("UpdateLabel: Failed to update: %v", err)
	}
}

func (mh *matchHandler) MatchTerminate(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, graceSeconds int) interface{} {
	logger.Debug("MatchTerminate: Match terminated with %d grace seconds", graceSeconds)
	return state
}

func (mh *matchHandler) MatchSignal(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, data string) (interface{}, string) {
	return state, ""
}
