package registry

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-breaker/internal/core"
)

type stubGame struct {
	id    string
	steps int
}

func (s *stubGame) ID() string               { return s.id }
func (s *stubGame) Title() string            { return strings.ToUpper(s.id) }
func (s *stubGame) Reset(core.RuntimeConfig) {}
func (s *stubGame) Render(*core.Screen)      {}
func (s *stubGame) State() core.GameState    { return core.GameState{Score: s.steps} }
func (s *stubGame) Step(core.InputFrame, core.FrameTime) core.StepResult {
	s.steps++
	return core.StepResult{State: s.State()}
}

func TestRegisterAndCreate(t *testing.T) {
	Register(GameInfo{ID: "zz_stub", Title: "Stub"}, func(opts Options) (Game, error) {
		return &stubGame{id: "zz_stub"}, nil
	})

	if !Exists("zz_stub") {
		t.Fatal("zz_stub should exist after Register")
	}

	g, err := Create("zz_stub", Options{})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if g.ID() != "zz_stub" {
		t.Errorf("got ID %q, expected zz_stub", g.ID())
	}

	found := false
	for _, info := range List() {
		if info.ID == "zz_stub" {
			found = true
			if info.Title != "Stub" {
				t.Errorf("got title %q, expected Stub", info.Title)
			}
		}
	}
	if !found {
		t.Error("List() should include zz_stub")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	f := func(Options) (Game, error) { return &stubGame{id: "zz_dup"}, nil }
	Register(GameInfo{ID: "zz_dup"}, f)

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register(GameInfo{ID: "zz_dup"}, f)
}

func TestCreateErrors(t *testing.T) {
	if _, err := Create("zz_missing", Options{}); err == nil || !strings.Contains(err.Error(), "unknown game") {
		t.Errorf("expected unknown game error, got %v", err)
	}

	boom := errors.New("boom")
	Register(GameInfo{ID: "zz_broken"}, func(Options) (Game, error) { return nil, boom })
	if _, err := Create("zz_broken", Options{}); !errors.Is(err, boom) {
		t.Errorf("expected wrapped factory error, got %v", err)
	}
}

func TestListSorted(t *testing.T) {
	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Errorf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
}
