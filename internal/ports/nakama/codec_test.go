package nakama

import (
	"errors"
	"fmt"
	"testing"

	"schnapsen/internal/app"
	"schnapsen/internal/domain"
)

func TestDecodePlayCard(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		card     string
		marriage bool
		wantErr  bool
	}{
		{name: "Plain", data: `{"card":"T♣"}`, card: "T♣"},
		{name: "Marriage", data: `{"card":"K♥","marriage":true}`, card: "K♥", marriage: true},
		{name: "MissingCard", data: `{}`, wantErr: true},
		{name: "WrongType", data: `{"card":7}`, wantErr: true},
		{name: "NotJSON", data: `card=T♣`, wantErr: true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := decodePlayCard([]byte(test.data))
			if test.wantErr {
				if err == nil {
					t.Fatalf("decodePlayCard(%s) = %+v, want error", test.data, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("decodePlayCard(%s) error: %v", test.data, err)
			}
			if got.Card.String() != test.card || got.Marriage != test.marriage {
				t.Fatalf("decodePlayCard(%s) = %s/%t, want %s/%t", test.data, got.Card, got.Marriage, test.card, test.marriage)
			}
		})
	}
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code string
		text string
	}{
		{
			name: "RuleError",
			err:  &domain.RuleError{Code: domain.CodeNoClose, Message: domain.MsgNoClose},
			code: "NO_CLOSE",
			text: "You can't close any more",
		},
		{name: "Wrapped", err: fmt.Errorf("play: %w", app.ErrNotYourTurn), code: "NOT_YOUR_TURN"},
		{name: "InvalidCard", err: fmt.Errorf("parse card: %w", domain.ErrInvalidCardString), code: "INVALID_CARD"},
		{name: "Unknown", err: errors.New("boom"), code: "BAD_REQUEST"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			fields := errorMessage(test.err, "en")
			if fields["code"] != test.code {
				t.Fatalf("code = %v, want %s", fields["code"], test.code)
			}
			if fields["text"] != test.text {
				t.Fatalf("text = %v, want %q", fields["text"], test.text)
			}
			if _, err := encodeStruct(fields); err != nil {
				t.Fatalf("encodeStruct() error: %v", err)
			}
		})
	}
}

func TestLabelString(t *testing.T) {
	label, err := labelString(domain.ComputeLabel(false, nil))
	if err != nil {
		t.Fatalf("labelString() error: %v", err)
	}
	s, err := decodeStruct([]byte(label))
	if err != nil {
		t.Fatalf("decodeStruct(%s) error: %v", label, err)
	}
	fields := s.GetFields()
	if !fields["open"].GetBoolValue() || fields["game"].GetStringValue() != "schnapsen" || fields["phase"].GetStringValue() != "lobby" {
		t.Fatalf("label = %s", label)
	}
}

func TestEventMessageEncodesEveryKind(t *testing.T) {
	card := domain.Card{Face: domain.FaceAce, Suit: domain.SuitHeart}
	events := []struct {
		payload any
		opCode  int64
	}{
		{app.DealStartedPayload{Hand: domain.Cards{card}, TrumpCard: card}, OpDealStarted},
		{app.CardPlayedPayload{Side: domain.SideAI, Card: card}, OpCardPlayed},
		{app.TrickTakenPayload{PlayerCard: card}, OpTrickTaken},
		{app.CardsDrawnPayload{}, OpCardsDrawn},
		{app.MarriagePayload{Kind: domain.Marriage40}, OpMarriage},
		{app.StockClosedPayload{By: domain.SideAI}, OpStockClosed},
		{app.JackChangedPayload{Taken: card}, OpJackChanged},
		{app.NoticePayload{Message: domain.MsgYouLead, Bell: true}, OpNotice},
		{app.GameEndedPayload{Reason: domain.MsgYourGame, Book: []domain.BookEntry{{Player: 2}}}, OpGameEnded},
		{app.MatchEndedPayload{GamesWon: [2]int{7, 3}}, OpMatchEnded},
	}
	for _, ev := range events {
		opCode, fields, err := eventMessage(app.Event{Payload: ev.payload}, "de")
		if err != nil {
			t.Fatalf("eventMessage(%T) error: %v", ev.payload, err)
		}
		if opCode != ev.opCode {
			t.Fatalf("eventMessage(%T) op = %d, want %d", ev.payload, opCode, ev.opCode)
		}
		if _, err := encodeStruct(fields); err != nil {
			t.Fatalf("encodeStruct(%T) error: %v", ev.payload, err)
		}
	}

	if _, _, err := eventMessage(app.Event{Kind: "bogus", Payload: 1}, "en"); !errors.Is(err, errUnknownEvent) {
		t.Fatalf("eventMessage(bogus) = %v, want errUnknownEvent", err)
	}
}
