package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-crossing/internal/games/crossing"
	"github.com/vovakirdan/tui-crossing/internal/storage"
)

func pressMenu(m MenuModel, msgs ...tea.KeyMsg) MenuModel {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(MenuModel)
	}
	return m
}

func TestMenuResult(t *testing.T) {
	down := tea.KeyMsg{Type: tea.KeyDown}
	enter := tea.KeyMsg{Type: tea.KeyEnter}

	tests := []struct {
		name       string
		keys       []tea.KeyMsg
		gameID     string
		scoreboard bool
		quit       bool
	}{
		{"play", []tea.KeyMsg{enter}, crossing.GameID, false, false},
		{"high scores", []tea.KeyMsg{down, enter}, "", true, false},
		{"quit item", []tea.KeyMsg{down, down, down, down, enter}, "", false, true},
		{"quit key", []tea.KeyMsg{runeKey('q')}, "", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := pressMenu(NewMenuModel(nil, testRuntime()), tt.keys...)
			res := m.Result()
			if res.GameID != tt.gameID || res.WantsScoreboard != tt.scoreboard || res.Quit != tt.quit {
				t.Errorf("Result() = %+v", res)
			}
		})
	}
}

func TestMenuShowsBest(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveRound(storage.RoundResult{GameID: crossing.GameID, RoundID: "r1", Score: 9, Reason: "finish"}); err != nil {
		t.Fatalf("SaveRound failed: %v", err)
	}

	view := NewMenuModel(store, testRuntime()).View()
	for _, want := range []string{"Play Crossing", "best 9", "High Scores", "Quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("menu missing %q:\n%s", want, view)
		}
	}
}

func TestScoreboardRows(t *testing.T) {
	store := openTestStore(t)
	for i, score := range []int{3, 8} {
		r := storage.RoundResult{GameID: crossing.GameID, RoundID: string(rune('a' + i)), Score: score, Reason: "collision", Moves: score + 1}
		if _, err := store.SaveRound(r); err != nil {
			t.Fatalf("SaveRound failed: %v", err)
		}
	}

	m := NewScoreboardModel(store, 80, 24)
	rows := m.Rows()
	if len(rows) != 2 {
		t.Fatalf("got %d rows, expected 2", len(rows))
	}
	if rows[0][0] != "#1" || rows[0][1] != "8" || rows[0][2] != "collision" || rows[0][3] != "9" {
		t.Errorf("first row = %v", rows[0])
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("esc should go back to the menu")
	}
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	var m tea.Model = NewSessionModel(nil, testRuntime())
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	s := m.(SessionModel)
	if s.view != viewGame {
		t.Fatalf("view = %d, expected game", s.view)
	}

	m, _ = m.Update(TickMsg{})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	s = m.(SessionModel)
	if s.view != viewMenu || s.quitting {
		t.Errorf("esc in game should return to the menu, view = %d", s.view)
	}

	m, _ = m.Update(runeKey('q'))
	if !m.(SessionModel).quitting {
		t.Error("q in the menu should end the session")
	}
}
