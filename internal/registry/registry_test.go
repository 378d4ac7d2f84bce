package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-crossing/internal/core"
)

type stubGame struct {
	id    string
	state core.GameState
}

func (g *stubGame) ID() string    { return g.id }
func (g *stubGame) Title() string { return "Stub " + g.id }

func (g *stubGame) Reset(core.RuntimeConfig) error {
	g.state = core.GameState{}
	return nil
}

func (g *stubGame) Step(core.InputFrame) core.StepResult {
	return core.StepResult{State: g.state}
}
func (g *stubGame) Render(*core.Screen)   {}
func (g *stubGame) State() core.GameState { return g.state }

func TestRegisterCreateList(t *testing.T) {
	Register("zz-stub", func() Game { return &stubGame{id: "zz-stub"} })
	Register("aa-stub", func() Game { return &stubGame{id: "aa-stub"} })

	if !Exists("zz-stub") {
		t.Fatal("registered game should exist")
	}

	g, err := Create("aa-stub")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if g.ID() != "aa-stub" {
		t.Errorf("ID() = %q", g.ID())
	}

	list := List()
	seenA, seenZ := -1, -1
	for i, info := range list {
		switch info.ID {
		case "aa-stub":
			seenA = i
			if info.Title != "Stub aa-stub" {
				t.Errorf("title = %q", info.Title)
			}
		case "zz-stub":
			seenZ = i
		}
	}
	if seenA < 0 || seenZ < 0 || seenA > seenZ {
		t.Errorf("List() not sorted or incomplete: %+v", list)
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("does-not-exist")
	if !errors.Is(err, ErrUnknownGame) {
		t.Errorf("Create() error = %v, expected ErrUnknownGame", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup-stub", func() Game { return &stubGame{id: "dup-stub"} })
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("dup-stub", func() Game { return &stubGame{id: "dup-stub"} })
}
