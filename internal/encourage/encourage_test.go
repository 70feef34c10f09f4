package encourage

import (
	"math/rand"
	"testing"
)

func TestPhrases_Fixed(t *testing.T) {
	if len(Phrases) != 12 {
		t.Fatalf("expected 12 phrases, got %d", len(Phrases))
	}
	for i, phrase := range Phrases {
		if phrase == "" {
			t.Errorf("phrase %d is empty", i)
		}
	}
}

func TestPicker_ReturnsMemberOfSet(t *testing.T) {
	members := make(map[string]bool, len(Phrases))
	for _, phrase := range Phrases {
		members[phrase] = true
	}

	p := NewPicker()
	for i := 0; i < 100; i++ {
		if phrase := p.Pick(); !members[phrase] {
			t.Fatalf("Pick() returned %q, not in the phrase set", phrase)
		}
	}
}

func TestPicker_DeterministicWithSeed(t *testing.T) {
	a := NewPickerWithSource(rand.NewSource(42))
	b := NewPickerWithSource(rand.NewSource(42))

	for i := 0; i < 20; i++ {
		if got, want := a.Pick(), b.Pick(); got != want {
			t.Fatalf("seeded pickers diverged at call %d: %q vs %q", i, got, want)
		}
	}
}

func TestPicker_EventuallyCoversSet(t *testing.T) {
	p := NewPickerWithSource(rand.NewSource(1))
	seen := make(map[string]bool)
	for i := 0; i < 2000; i++ {
		seen[p.Pick()] = true
	}
	if len(seen) != len(Phrases) {
		t.Errorf("after 2000 picks saw %d distinct phrases, expected %d", len(seen), len(Phrases))
	}
}
