package model

import "testing"

func TestHistory_StillLifeIsStagnant(t *testing.T) {
	g := newTestGrid(t, 4, 4, cell{1, 1}, cell{1, 2}, cell{2, 1}, cell{2, 2})
	h := &History{}

	for i := range 3 {
		if h.IsStagnant(g) {
			t.Fatalf("generation %d: too little history to call stagnation", i)
		}
		h.Record(g)
		g.UpdateGrid()
	}
	if !h.IsStagnant(g) {
		t.Fatalf("block should be reported as stagnant")
	}

	h.Reset()
	if h.IsStagnant(g) {
		t.Fatalf("reset history should not report stagnation")
	}
}

func TestHistory_OscillatorIsStagnant(t *testing.T) {
	g := newTestGrid(t, 5, 5, cell{2, 1}, cell{2, 2}, cell{2, 3})
	h := &History{}

	for range 3 {
		h.Record(g)
		g.UpdateGrid()
	}
	if !h.IsStagnant(g) {
		t.Fatalf("blinker should be reported as stagnant")
	}
}

func TestHistory_GliderIsNotStagnant(t *testing.T) {
	g := newTestGrid(t, 20, 20, cell{0, 1}, cell{1, 2}, cell{2, 0}, cell{2, 1}, cell{2, 2})
	h := &History{}

	for i := range 10 {
		h.Record(g)
		g.UpdateGrid()
		if h.IsStagnant(g) {
			t.Fatalf("generation %d: a moving glider should not be stagnant", i+1)
		}
	}
	if len(h.hashes) != historySize {
		t.Fatalf("expected history capped at %d, got %d", historySize, len(h.hashes))
	}
}
