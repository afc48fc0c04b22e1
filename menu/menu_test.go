package menu

import (
	"testing"

	"github.com/cobbes/jetstorm/internal/render"
)

// fakeInput scripts one tick of keyboard state per Update call.
type fakeInput struct {
	just []render.Key
}

func (f *fakeInput) IsKeyPressed(render.Key) bool { return false }

func (f *fakeInput) IsKeyJustPressed(k render.Key) bool {
	for _, j := range f.just {
		if j == k {
			return true
		}
	}
	return false
}

func (f *fakeInput) JustPressedKeys() []render.Key { return f.just }

func press(in *fakeInput, keys ...render.Key) { in.just = keys }

func TestMainMenuNavigation(t *testing.T) {
	in := &fakeInput{}
	m := NewMainMenu(nil, in, 800, 600)

	press(in, render.KeyDown)
	if got := m.Update(false); got != ActionNone {
		t.Fatalf("Expected no action from navigation, got %v", got)
	}
	press(in, render.KeyEnter)
	if got := m.Update(false); got != ActionRedefine {
		t.Errorf("Expected redefine on the second row, got %v", got)
	}
}

func TestMainMenuSelectionStopsAtEdges(t *testing.T) {
	in := &fakeInput{}
	m := NewMainMenu(nil, in, 800, 600)

	press(in, render.KeyUp)
	m.Update(false)
	press(in, render.KeyEnter)
	if got := m.Update(false); got != ActionNewGame {
		t.Errorf("Expected the selection held at the top, got %v", got)
	}

	for i := 0; i < 10; i++ {
		press(in, render.KeyDown)
		m.Update(false)
	}
	press(in, render.KeySpace)
	if got := m.Update(false); got != ActionExit {
		t.Errorf("Expected the selection held at the bottom, got %v", got)
	}
}

func TestMainMenuResumeEntry(t *testing.T) {
	in := &fakeInput{}
	m := NewMainMenu(nil, in, 800, 600)

	press(in, render.KeyEnter)
	if got := m.Update(true); got != ActionResume {
		t.Errorf("Expected resume offered mid-game, got %v", got)
	}
	if got := m.Update(false); got != ActionNewGame {
		t.Errorf("Expected new game without a running game, got %v", got)
	}
}

func TestMainMenuSelectionClampsWhenResumeDisappears(t *testing.T) {
	in := &fakeInput{}
	m := NewMainMenu(nil, in, 800, 600)

	for i := 0; i < 3; i++ {
		press(in, render.KeyDown)
		m.Update(true)
	}
	// The list shrank by one; the selection must not run off the end.
	press(in, render.KeyEnter)
	if got := m.Update(false); got != ActionNewGame {
		t.Errorf("Expected the selection reset on the shorter list, got %v", got)
	}
}

func TestMainMenuEscapeExits(t *testing.T) {
	in := &fakeInput{}
	m := NewMainMenu(nil, in, 800, 600)

	press(in, render.KeyEscape)
	if got := m.Update(false); got != ActionExit {
		t.Errorf("Expected escape to exit, got %v", got)
	}
}

func TestStartScreenDismissesOnAnyKey(t *testing.T) {
	in := &fakeInput{}
	s := NewStartScreen(nil, in, 800, 600)

	if s.Update() {
		t.Error("Expected the splash to hold without input")
	}
	press(in, render.KeyQ)
	if !s.Update() {
		t.Error("Expected any key to dismiss the splash")
	}
}

func TestEndScreenDismissal(t *testing.T) {
	in := &fakeInput{}
	e := NewGameOverScreen(nil, in, 800, 600)

	press(in, render.KeyQ)
	if e.Update() {
		t.Error("Expected only enter or space to dismiss")
	}
	press(in, render.KeyEnter)
	if !e.Update() {
		t.Error("Expected enter to dismiss")
	}
}

func TestRedefineCapturesAllBindings(t *testing.T) {
	in := &fakeInput{}
	s := NewRedefineScreen(nil, in, 800, 600)
	s.Reset()
	b := DefaultBindings()

	sequence := []render.Key{
		render.KeyW, render.KeyS, render.KeyA, render.KeyD, render.KeySpace, render.KeyEscape,
	}
	for i, k := range sequence {
		press(in, k)
		done := s.Update(&b)
		if want := i == len(sequence)-1; done != want {
			t.Fatalf("Step %d: expected done=%v, got %v", i, want, done)
		}
	}

	want := Bindings{
		Up:    render.KeyW,
		Down:  render.KeyS,
		Left:  render.KeyA,
		Right: render.KeyD,
		Fire:  render.KeySpace,
		Pause: render.KeyEscape,
	}
	if b != want {
		t.Errorf("Expected bindings %+v, got %+v", want, b)
	}
}

func TestRedefineIgnoresChords(t *testing.T) {
	in := &fakeInput{}
	s := NewRedefineScreen(nil, in, 800, 600)
	s.Reset()
	b := DefaultBindings()

	press(in, render.KeyW, render.KeyS)
	if s.Update(&b) {
		t.Error("Expected a chord ignored")
	}
	if s.step != 0 {
		t.Errorf("Expected no step taken, got %d", s.step)
	}

	press(in)
	if s.Update(&b) {
		t.Error("Expected an idle tick ignored")
	}
}

func TestRedefineResetRestarts(t *testing.T) {
	in := &fakeInput{}
	s := NewRedefineScreen(nil, in, 800, 600)
	s.Reset()
	b := DefaultBindings()

	press(in, render.KeyW)
	s.Update(&b)
	s.Reset()

	if s.step != 0 || len(s.captured) != 0 {
		t.Error("Expected the flow restarted")
	}
}
