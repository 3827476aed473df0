package cubelet

import (
	"errors"
	"testing"
)

func TestNewPlayerStartsSolved(t *testing.T) {
	p := NewPlayer()
	if !p.IsSolved() {
		t.Error("new player should start solved")
	}
	if len(p.Moves()) != 0 {
		t.Error("new player should have empty history")
	}
}

func TestPlayerApplyAndHistory(t *testing.T) {
	p := NewPlayer()
	if err := p.ApplyAll(R, U, RPrime, UPrime); err != nil {
		t.Fatal(err)
	}
	if p.IsSolved() {
		t.Error("player should not be solved after R U R' U'")
	}
	if got := FormatMoves(p.Moves()); got != "R U R' U'" {
		t.Errorf("history = %q, want \"R U R' U'\"", got)
	}
}

func TestPlayerApplyNotation(t *testing.T) {
	p := NewPlayer()
	if err := p.ApplyNotation("R U R' U'"); err != nil {
		t.Fatal(err)
	}
	if len(p.Moves()) != 4 {
		t.Errorf("history has %d moves, want 4", len(p.Moves()))
	}

	// A notation error commits nothing.
	before := p.State()
	if err := p.ApplyNotation("R Q"); !errors.Is(err, ErrInvalidNotation) {
		t.Errorf("ApplyNotation(\"R Q\") = %v, want ErrInvalidNotation", err)
	}
	if p.State() != before {
		t.Error("failed notation apply should not change state")
	}
}

func TestPlayerUndo(t *testing.T) {
	p := NewPlayer()
	if err := p.ApplyNotation("R U2 F'"); err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 3; i++ {
		if _, err := p.Undo(); err != nil {
			t.Fatal(err)
		}
	}
	if !p.IsSolved() {
		t.Error("undoing every move should restore solved")
	}

	if _, err := p.Undo(); !errors.Is(err, ErrNoHistory) {
		t.Errorf("Undo on empty history = %v, want ErrNoHistory", err)
	}
}

func TestPlayerUndoReturnsMove(t *testing.T) {
	p := NewPlayer()
	if err := p.Apply(R2); err != nil {
		t.Fatal(err)
	}
	undone, err := p.Undo()
	if err != nil {
		t.Fatal(err)
	}
	if undone != R2 {
		t.Errorf("Undo returned %s, want R2", undone)
	}
}

func TestPlayerReset(t *testing.T) {
	p := NewPlayer()
	if err := p.ApplyNotation("R U F"); err != nil {
		t.Fatal(err)
	}
	p.Reset()
	if !p.IsSolved() {
		t.Error("reset player should be solved")
	}
	if len(p.Moves()) != 0 {
		t.Error("reset should clear history")
	}
}

func TestPlayerWithoutHistory(t *testing.T) {
	p := NewPlayer(WithMoveHistory(false))
	if err := p.Apply(R); err != nil {
		t.Fatal(err)
	}
	if len(p.Moves()) != 0 {
		t.Error("history disabled, Moves should be empty")
	}
	if _, err := p.Undo(); !errors.Is(err, ErrNoHistory) {
		t.Errorf("Undo without history = %v, want ErrNoHistory", err)
	}
}

func TestPlayerWithInitialState(t *testing.T) {
	start, err := Apply(SolvedState(), R)
	if err != nil {
		t.Fatal(err)
	}
	p := NewPlayer(WithInitialState(start))
	if p.IsSolved() {
		t.Error("player should start from the given state")
	}
	if err := p.Apply(RPrime); err != nil {
		t.Fatal(err)
	}
	if !p.IsSolved() {
		t.Error("R' should solve a state one R away from solved")
	}
	p.Reset()
	if p.State() != start {
		t.Error("Reset should restore the initial state, not solved")
	}
}

func TestPlayerMoveCallback(t *testing.T) {
	var seen []Move
	p := NewPlayer(WithMoveCallback(func(m Move) {
		seen = append(seen, m)
	}))
	if err := p.ApplyAll(R, U); err != nil {
		t.Fatal(err)
	}
	if len(seen) != 2 || seen[0] != R || seen[1] != U {
		t.Errorf("callback saw %v, want [R U]", seen)
	}
}

func TestPlayerRejectsInvalidMove(t *testing.T) {
	p := NewPlayer()
	err := p.Apply(Move{Axis: 0, Side: 1, Turns: 0})
	if !errors.Is(err, ErrInvalidMove) {
		t.Errorf("Apply invalid move = %v, want ErrInvalidMove", err)
	}
	if !p.IsSolved() || len(p.Moves()) != 0 {
		t.Error("failed apply should not change state or history")
	}
}
