package random

import (
	"testing"
)

func TestNewSourceIsDeterministic(t *testing.T) {
	a := NewSource(42)
	b := NewSource(42)
	for i := 0; i < 100; i++ {
		x, y := a.IntN(52), b.IntN(52)
		if x != y {
			t.Fatalf("draw %d: %d != %d", i, x, y)
		}
	}
}

func TestXOFSourceIsDeterministic(t *testing.T) {
	a := NewXOFSource(SeedBytes(7))
	b := NewXOFSource(SeedBytes(7))
	for i := 0; i < 100; i++ {
		x, y := a.IntN(1000), b.IntN(1000)
		if x != y {
			t.Fatalf("draw %d: %d != %d", i, x, y)
		}
	}
}

func TestXOFSourceSeedsDiffer(t *testing.T) {
	a := NewXOFSource(SeedBytes(1))
	b := NewXOFSource(SeedBytes(2))
	same := true
	for i := 0; i < 16; i++ {
		if a.Uint64() != b.Uint64() {
			same = false
		}
	}
	if same {
		t.Fatal("different seeds produced the same stream")
	}
}

func TestXOFSourceRange(t *testing.T) {
	s := NewXOFSource([]byte("range"))
	seen := make(map[int]bool)
	for i := 0; i < 2000; i++ {
		v := s.IntN(6)
		if v < 0 || v >= 6 {
			t.Fatalf("value %d out of [0, 6)", v)
		}
		seen[v] = true
	}
	if len(seen) != 6 {
		t.Fatalf("expected all 6 values, saw %d", len(seen))
	}
	if s.IntN(1) != 0 {
		t.Fatal("IntN(1) must be 0")
	}
}

func TestXOFSourcePanicsOnNonPositive(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	NewXOFSource(nil).IntN(0)
}

func TestResolveSeedUsesRequested(t *testing.T) {
	want := uint64(77)
	seed, source, err := ResolveSeed(&want)
	if err != nil {
		t.Fatal(err)
	}
	if seed != want {
		t.Fatalf("seed = %d, want %d", seed, want)
	}
	if source != SeedSourceClient {
		t.Fatalf("seed source = %q, want %q", source, SeedSourceClient)
	}
}

func TestResolveSeedGenerates(t *testing.T) {
	_, source, err := ResolveSeed(nil)
	if err != nil {
		t.Fatal(err)
	}
	if source != SeedSourceGenerated {
		t.Fatalf("seed source = %q, want %q", source, SeedSourceGenerated)
	}
}
