package life

import "testing"

func TestPlacePattern(t *testing.T) {
	b := New(mustConfig(t, 3, 6, 6))
	if err := b.Place(Patterns["glider"], 1, 1); err != nil {
		t.Fatalf("Place failed: %v", err)
	}
	if b.Population() != 5 || b.Cell(1, 2) != Alive || b.Cell(3, 1) != Alive {
		t.Fatal("glider not placed at the anchor")
	}
}

func TestPlaceRejectsOverflow(t *testing.T) {
	b := New(mustConfig(t, 3, 5, 5))
	if err := b.Place(Patterns["blinker"], 0, 3); err == nil {
		t.Fatal("expected error for a pattern past the edge")
	}
	if b.Population() != 0 {
		t.Fatal("a rejected pattern must not be partially written")
	}
}

func TestBlockIsStillLife(t *testing.T) {
	b := New(mustConfig(t, 3, 5, 5))
	if err := b.Place(Patterns["block"], 0, 0); err != nil {
		t.Fatal(err)
	}
	before := b.CopyCells(nil)
	b.Step()
	after := b.CopyCells(nil)
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("block changed at cell %d", i)
		}
	}
}

func TestPatternNamesSorted(t *testing.T) {
	names := PatternNames()
	if len(names) != len(Patterns) {
		t.Fatalf("expected %d names, got %d", len(Patterns), len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Fatalf("names not sorted: %v", names)
		}
	}
}
