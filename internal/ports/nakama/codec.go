package nakama

import (
	"errors"
	"fmt"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"schnapsen/internal/app"
	"schnapsen/internal/domain"
	"schnapsen/internal/i18n"
)

// Wire messages in both directions are JSON objects carried as
// structpb.Struct and encoded with protojson.

var errUnknownEvent = errors.New("unknown event kind")

func encodeStruct(fields map[string]interface{}) ([]byte, error) {
	s, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, fmt.Errorf("build message: %w", err)
	}
	return protojson.Marshal(s)
}

func decodeStruct(data []byte) (*structpb.Struct, error) {
	s := &structpb.Struct{}
	if len(data) == 0 {
		return s, nil
	}
	if err := protojson.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("decode message: %w", err)
	}
	return s, nil
}

type playCardRequest struct {
	Card     domain.Card
	Marriage bool
}

func decodePlayCard(data []byte) (playCardRequest, error) {
	s, err := decodeStruct(data)
	if err != nil {
		return playCardRequest{}, err
	}
	fields := s.GetFields()
	card, err := domain.ParseCard(fields["card"].GetStringValue())
	if err != nil {
		return playCardRequest{}, err
	}
	return playCardRequest{Card: card, Marriage: fields["marriage"].GetBoolValue()}, nil
}

func cardValue(c domain.Card) interface{} {
	if c.IsZero() {
		return nil
	}
	return c.String()
}

func cardsValue(cards domain.Cards) []interface{} {
	out := make([]interface{}, 0, len(cards))
	for _, c := range cards {
		out = append(out, c.String())
	}
	return out
}

func entryValue(e domain.BookEntry) map[string]interface{} {
	return map[string]interface{}{"player": e.Player, "ai": e.AI}
}

func bookValue(book []domain.BookEntry) []interface{} {
	out := make([]interface{}, 0, len(book))
	for _, e := range book {
		out = append(out, entryValue(e))
	}
	return out
}

func perSide(v [2]int) map[string]interface{} {
	return map[string]interface{}{
		"player": v[domain.SidePlayer],
		"ai":     v[domain.SideAI],
	}
}

// eventMessage maps an app event to its op code and wire fields. Texts are
// rendered in lang.
func eventMessage(ev app.Event, lang string) (int64, map[string]interface{}, error) {
	switch p := ev.Payload.(type) {
	case app.DealStartedPayload:
		return OpDealStarted, map[string]interface{}{
			"deal_id":    p.DealID,
			"hand":       cardsValue(p.Hand),
			"trump_card": cardValue(p.TrumpCard),
			"trump":      p.TrumpCard.Suit.String(),
			"stock_size": p.StockSize,
			"lead":       p.Lead.String(),
			"book":       bookValue(p.Book),
		}, nil
	case app.CardPlayedPayload:
		return OpCardPlayed, map[string]interface{}{
			"side":     p.Side.String(),
			"card":     cardValue(p.Card),
			"marriage": p.Marriage.Points(),
			"leading":  p.Leading,
		}, nil
	case app.TrickTakenPayload:
		return OpTrickTaken, map[string]interface{}{
			"winner":       p.Winner.String(),
			"player_card":  cardValue(p.PlayerCard),
			"ai_card":      cardValue(p.AICard),
			"points":       p.Points,
			"player_score": p.PlayerScore,
			"ai_score":     p.AIScore,
		}, nil
	case app.CardsDrawnPayload:
		return OpCardsDrawn, map[string]interface{}{
			"drawn":      cardValue(p.Drawn),
			"hand":       cardsValue(p.Hand),
			"stock_size": p.StockSize,
			"closed":     p.Closed.String(),
		}, nil
	case app.MarriagePayload:
		fields := map[string]interface{}{
			"side":   p.Side.String(),
			"suit":   p.Suit.String(),
			"points": p.Kind.Points(),
		}
		if p.Side == domain.SidePlayer {
			fields["score"] = p.Score
			fields["pending"] = p.Pending
		}
		return OpMarriage, fields, nil
	case app.StockClosedPayload:
		return OpStockClosed, map[string]interface{}{"by": p.By.String()}, nil
	case app.JackChangedPayload:
		return OpJackChanged, map[string]interface{}{
			"side":       p.Side.String(),
			"taken":      cardValue(p.Taken),
			"trump_card": cardValue(p.TrumpCard),
		}, nil
	case app.NoticePayload:
		return OpNotice, map[string]interface{}{
			"message": p.Message.String(),
			"text":    i18n.Text(lang, p.Message),
			"bell":    p.Bell,
			"sound":   i18n.Sound(p.Message),
		}, nil
	case app.GameEndedPayload:
		return OpGameEnded, map[string]interface{}{
			"deal_id":      p.DealID,
			"winner":       p.Winner.String(),
			"reason":       p.Reason.String(),
			"reason_text":  i18n.Text(lang, p.Reason),
			"entry":        entryValue(p.Entry),
			"player_score": p.PlayerScore,
			"ai_score":     p.AIScore,
			"book":         bookValue(p.Book),
		}, nil
	case app.MatchEndedPayload:
		return OpMatchEnded, map[string]interface{}{
			"winner":      p.Winner.String(),
			"games_won":   perSide(p.GamesWon),
			"matches_won": perSide(p.MatchesWon),
		}, nil
	default:
		return 0, nil, fmt.Errorf("%w: %s", errUnknownEvent, ev.Kind)
	}
}

func tableStateMessage(v app.TableView, botName string) map[string]interface{} {
	fields := map[string]interface{}{
		"deal_id":        v.DealID,
		"phase":          string(v.Phase),
		"hand":           cardsValue(v.Hand),
		"ai_hand_size":   v.AIHandSize,
		"trump_card":     cardValue(v.TrumpCard),
		"trump":          v.Trump.String(),
		"stock_size":     v.StockSize,
		"closed":         v.Closed.String(),
		"move":           v.Move.String(),
		"player_card":    nil,
		"ai_card":        nil,
		"player_score":   v.PlayerScore,
		"player_pending": v.PlayerPending,
		"ai_score":       v.AIScore,
		"player_tricks":  v.PlayerTricks,
		"ai_tricks":      v.AITricks,
		"book":           bookValue(v.Book),
		"games_won":      perSide(v.GamesWon),
		"matches_won":    perSide(v.MatchesWon),
		"opponent":       botName,
	}
	if v.PlayerCard != nil {
		fields["player_card"] = v.PlayerCard.String()
	}
	if v.AICard != nil {
		fields["ai_card"] = v.AICard.String()
	}
	return fields
}

var errorCodes = []struct {
	err  error
	code string
}{
	{app.ErrNotPlaying, "NOT_PLAYING"},
	{app.ErrDealInProgress, "DEAL_IN_PROGRESS"},
	{app.ErrNotYourTurn, "NOT_YOUR_TURN"},
	{app.ErrCardNotInHand, "CARD_NOT_IN_HAND"},
	{app.ErrNotLeading, "NOT_LEADING"},
	{app.ErrNoMarriage, "NO_MARRIAGE"},
	{app.ErrNoJack, "NO_JACK"},
	{domain.ErrInvalidCardString, "INVALID_CARD"},
}

// errorMessage describes a rejected client action. Rule violations carry
// their localized notice.
func errorMessage(err error, lang string) map[string]interface{} {
	fields := map[string]interface{}{
		"code":    "BAD_REQUEST",
		"message": err.Error(),
		"text":    "",
	}
	var rule *domain.RuleError
	if errors.As(err, &rule) {
		fields["code"] = string(rule.Code)
		fields["text"] = i18n.Text(lang, rule.Message)
		fields["sound"] = i18n.Sound(rule.Message)
		return fields
	}
	for _, ec := range errorCodes {
		if errors.Is(err, ec.err) {
			fields["code"] = ec.code
			break
		}
	}
	return fields
}

// labelString renders the match label used by quick_match queries.
func labelString(l domain.LabelPayload) (string, error) {
	data, err := encodeStruct(map[string]interface{}{
		"open":  l.Open,
		"game":  l.Game,
		"phase": l.Phase,
	})
	if err != nil {
		return "", err
	}
	return string(data), nil
}
