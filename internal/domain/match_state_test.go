package domain

import "testing"

func TestScoreDeal(t *testing.T) {
	tests := []struct {
		name   string
		closed Closed
		player int
		ai     int
		winner Side
		want   BookEntry
	}{
		{"OpenSchneider", ClosedNot, 66, 20, SidePlayer, BookEntry{Player: 2}},
		{"OpenSchwarz", ClosedNot, 70, 0, SidePlayer, BookEntry{Player: 3}},
		{"OpenSingle", ClosedAuto, 40, 67, SideAI, BookEntry{AI: 1}},
		{"CloserWins", ClosedByPlayer, 66, 40, SidePlayer, BookEntry{Player: 1}},
		{"CloserWinsSchneider", ClosedByAI, 10, 70, SideAI, BookEntry{AI: 2}},
		{"CloserFails", ClosedByPlayer, 50, 30, SideAI, BookEntry{AI: 2}},
		{"CloserFailsWithoutPoints", ClosedByAI, 40, 0, SidePlayer, BookEntry{Player: 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tbl Table
			tbl.Game.Closed = tt.closed
			tbl.Player.Score = tt.player
			tbl.AI.Score = tt.ai
			if got := ScoreDeal(&tbl, tt.winner); got != tt.want {
				t.Fatalf("ScoreDeal() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestMatchRecord(t *testing.T) {
	m := NewMatch()
	for i, e := range []BookEntry{{Player: 3}, {AI: 2}, {Player: 2}} {
		if _, ended := m.Record(e); ended {
			t.Fatalf("Record(%d) ended the match early", i)
		}
	}
	if p, a := m.Totals(); p != 5 || a != 2 {
		t.Fatalf("Totals() = %d/%d, want 5/2", p, a)
	}
	winner, ended := m.Record(BookEntry{Player: 2})
	if !ended || winner != SidePlayer {
		t.Fatalf("Record() = %s, %t, want player, true", winner, ended)
	}
	if len(m.Book) != 0 {
		t.Fatalf("book not cleared: %v", m.Book)
	}
	if m.GamesWon[SidePlayer] != 3 || m.GamesWon[SideAI] != 1 || m.MatchesWon[SidePlayer] != 1 {
		t.Fatalf("stats = %v / %v", m.GamesWon, m.MatchesWon)
	}
}

func TestMatchNextLeadAlternates(t *testing.T) {
	m := NewMatch()
	want := []Side{SidePlayer, SideAI, SidePlayer, SideAI}
	for i, w := range want {
		if got := m.NextLead(); got != w {
			t.Fatalf("NextLead() #%d = %s, want %s", i, got, w)
		}
	}
}

func TestBankMarriage(t *testing.T) {
	var s GameState
	s.BankMarriage(Marriage40, SuitSpade, true)
	if s.Pending != 40 || s.Score != 0 {
		t.Fatalf("stock empty: pending=%d score=%d, want 40/0", s.Pending, s.Score)
	}

	s = GameState{Deck: Cards{{FaceJack, SuitClub}}, Score: 2}
	s.BankMarriage(Marriage20, SuitHeart, false)
	if s.Score != 22 || s.Pending != 0 {
		t.Fatalf("with won trick: score=%d pending=%d, want 22/0", s.Score, s.Pending)
	}

	s = GameState{}
	s.BankMarriage(Marriage20, SuitHeart, false)
	s.BankMarriage(Marriage20, SuitClub, false)
	if s.Pending != 40 || len(s.Marriages) != 2 || s.Marriages[0] != SuitClub {
		t.Fatalf("no trick yet: pending=%d marriages=%v", s.Pending, s.Marriages)
	}
}

func TestCheckEnd(t *testing.T) {
	oneCard := Cards{{FaceJack, SuitHeart}}
	tests := []struct {
		name       string
		closed     Closed
		move       Side
		player, ai int
		inPlay     bool
		wantEnded  bool
		wantWinner Side
		wantReason MessageKind
	}{
		{"OpenNotYet", ClosedNot, SidePlayer, 60, 50, true, false, 0, MsgNone},
		{"OpenMoverReaches", ClosedNot, SideAI, 20, 66, true, true, SideAI, MsgAIGame},
		{"OpenOnlyMoverCounts", ClosedNot, SideAI, 70, 20, true, false, 0, MsgNone},
		{"LastTrick", ClosedAuto, SidePlayer, 50, 60, false, true, SidePlayer, MsgYourGame},
		{"CloserReaches", ClosedByPlayer, SidePlayer, 66, 30, true, true, SidePlayer, MsgYourGame},
		{"OpponentOfCloserWaits", ClosedByPlayer, SideAI, 40, 70, true, false, 0, MsgNone},
		{"CloserForfeits", ClosedByPlayer, SidePlayer, 60, 50, false, true, SideAI, MsgYouNotEnough},
		{"AICloserForfeits", ClosedByAI, SideAI, 10, 65, false, true, SidePlayer, MsgAINotEnough},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tbl Table
			tbl.Game.Closed = tt.closed
			tbl.Player.Score = tt.player
			tbl.AI.Score = tt.ai
			if tt.inPlay {
				tbl.Player.Cards = oneCard.Clone()
			}
			winner, reason, ended := CheckEnd(&tbl, tt.move)
			if ended != tt.wantEnded {
				t.Fatalf("CheckEnd() ended = %t, want %t", ended, tt.wantEnded)
			}
			if ended && (winner != tt.wantWinner || reason != tt.wantReason) {
				t.Fatalf("CheckEnd() = %s, %s, want %s, %s", winner, reason, tt.wantWinner, tt.wantReason)
			}
		})
	}
}
