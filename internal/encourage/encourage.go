// Package encourage supplies the motivational phrase shown alongside each
// goal's elapsed time.
package encourage

import (
	"math/rand"
	"time"
)

// Phrases is the fixed set of encouragements. Callers render one verbatim,
// so the wording is part of the display contract.
var Phrases = []string{
	"You've got this!",
	"Keep going strong!",
	"Amazing progress!",
	"One day at a time!",
	"You're doing great!",
	"Stay focused!",
	"Incredible work!",
	"Persistence pays off!",
	"Keep pushing forward!",
	"Celebrate this milestone!",
	"Look how far you've come!",
	"Keep up the momentum!",
}

// Picker returns encouragement phrases chosen uniformly at random. Every
// call is independent; repeats are not avoided.
type Picker struct {
	rng *rand.Rand
}

// NewPicker creates a picker seeded from the current time.
func NewPicker() *Picker {
	return NewPickerWithSource(rand.NewSource(time.Now().UnixNano()))
}

// NewPickerWithSource creates a picker driven by the given source, allowing
// deterministic sequences in tests.
func NewPickerWithSource(src rand.Source) *Picker {
	return &Picker{rng: rand.New(src)}
}

// Pick returns one phrase chosen uniformly from Phrases.
func (p *Picker) Pick() string {
	return Phrases[p.rng.Intn(len(Phrases))]
}
