package cubelet

import (
	"errors"
	"testing"
)

func TestMoveValidate(t *testing.T) {
	valid := []Move{
		{Axis: 0, Side: 1, Turns: 1},
		{Axis: 1, Side: -1, Turns: -1},
		{Axis: 2, Side: 0, Turns: 2},
	}
	for _, m := range valid {
		if err := m.Validate(); err != nil {
			t.Errorf("Validate(%+v) = %v, want nil", m, err)
		}
	}

	invalid := []Move{
		{Axis: 3, Side: 1, Turns: 1},
		{Axis: -1, Side: 1, Turns: 1},
		{Axis: 0, Side: 2, Turns: 1},
		{Axis: 0, Side: 1, Turns: 0},
		{Axis: 0, Side: 1, Turns: 3},
		{Axis: 0, Side: 1, Turns: -2},
	}
	for _, m := range invalid {
		err := m.Validate()
		if !errors.Is(err, ErrInvalidMove) {
			t.Errorf("Validate(%+v) = %v, want ErrInvalidMove", m, err)
		}
	}
}

func TestMoveInverse(t *testing.T) {
	if got := R.Inverse(); got != RPrime {
		t.Errorf("R.Inverse() = %+v, want R'", got)
	}
	if got := RPrime.Inverse(); got != R {
		t.Errorf("R'.Inverse() = %+v, want R", got)
	}
	if got := U2.Inverse(); got != U2 {
		t.Errorf("U2.Inverse() = %+v, want U2 (half turn is its own inverse)", got)
	}
}

func TestParseMove(t *testing.T) {
	cases := []struct {
		in   string
		want Move
	}{
		{"R", Move{Axis: 0, Side: 1, Turns: 1}},
		{"r", Move{Axis: 0, Side: 1, Turns: 1}},
		{"R'", Move{Axis: 0, Side: 1, Turns: -1}},
		{"R2", Move{Axis: 0, Side: 1, Turns: 2}},
		{"L", Move{Axis: 0, Side: -1, Turns: 1}},
		{"B", Move{Axis: 1, Side: 1, Turns: 1}},
		{"F", Move{Axis: 1, Side: -1, Turns: 1}},
		{"U", Move{Axis: 2, Side: 1, Turns: 1}},
		{"D", Move{Axis: 2, Side: -1, Turns: 1}},
		{"x", Move{Axis: 0, Side: 0, Turns: 1}},
		{"y", Move{Axis: 2, Side: 0, Turns: 1}},
		{"z", Move{Axis: 1, Side: 0, Turns: -1}},
		{"z'", Move{Axis: 1, Side: 0, Turns: 1}},
		{"z2", Move{Axis: 1, Side: 0, Turns: 2}},
		{" U' ", Move{Axis: 2, Side: 1, Turns: -1}},
	}
	for _, tc := range cases {
		got, err := ParseMove(tc.in)
		if err != nil {
			t.Errorf("ParseMove(%q) error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseMove(%q) = %+v, want %+v", tc.in, got, tc.want)
		}
	}
}

func TestParseMoveInvalid(t *testing.T) {
	for _, in := range []string{"", "Q", "R3", "R''", "2R"} {
		if _, err := ParseMove(in); !errors.Is(err, ErrInvalidNotation) {
			t.Errorf("ParseMove(%q) = %v, want ErrInvalidNotation", in, err)
		}
	}
}

func TestNotationRoundTrip(t *testing.T) {
	moves := []Move{
		R, RPrime, R2, L, LPrime, L2,
		U, UPrime, U2, D, DPrime, D2,
		F, FPrime, F2, B, BPrime, B2,
		X, XPrime, X2, Y, YPrime, Y2, Z, ZPrime, Z2,
	}
	for _, m := range moves {
		n := m.Notation()
		got, err := ParseMove(n)
		if err != nil {
			t.Errorf("ParseMove(%q) error: %v", n, err)
			continue
		}
		if got != m {
			t.Errorf("notation round trip: %+v -> %q -> %+v", m, n, got)
		}
	}
}

func TestParseMovesSequence(t *testing.T) {
	moves, err := ParseMoves("R U R' U'")
	if err != nil {
		t.Fatalf("ParseMoves error: %v", err)
	}
	if len(moves) != 4 {
		t.Fatalf("parsed %d moves, want 4", len(moves))
	}
	if FormatMoves(moves) != "R U R' U'" {
		t.Errorf("FormatMoves = %q, want \"R U R' U'\"", FormatMoves(moves))
	}

	if _, err := ParseMoves("R Q U"); !errors.Is(err, ErrInvalidNotation) {
		t.Errorf("ParseMoves with bad token = %v, want ErrInvalidNotation", err)
	}
}

func TestFormatMovesEmpty(t *testing.T) {
	if FormatMoves(nil) != "" {
		t.Error("FormatMoves(nil) should be empty")
	}
}
