// Package typing implements a typewriter effect that types out a list of
// words one rune at a time, holds each one, then deletes it again.
package typing

import "time"

// Default timings.
const (
	TypeDelay   = 150 * time.Millisecond
	DeleteDelay = 100 * time.Millisecond
	HoldDelay   = 2000 * time.Millisecond
)

// DefaultWords is the tagline rotation shown when none is configured.
var DefaultWords = []string{
	"Full Stack Developer",
	"UI/UX Designer",
	"Creative Coder",
	"Problem Solver",
	"Tech Enthusiast",
}

// Typewriter holds the state of the effect. The zero value shows nothing.
type Typewriter struct {
	TypeDelay   time.Duration
	DeleteDelay time.Duration
	HoldDelay   time.Duration

	words     [][]rune
	wordIndex int
	charIndex int
	deleting  bool
	text      string
}

// New creates a typewriter over words with the default timings. Empty
// words are dropped.
func New(words []string) *Typewriter {
	t := &Typewriter{
		TypeDelay:   TypeDelay,
		DeleteDelay: DeleteDelay,
		HoldDelay:   HoldDelay,
	}
	for _, w := range words {
		if w != "" {
			t.words = append(t.words, []rune(w))
		}
	}
	return t
}

// Text returns the currently visible text.
func (t *Typewriter) Text() string { return t.text }

// Word returns the word being typed or deleted.
func (t *Typewriter) Word() string {
	if len(t.words) == 0 {
		return ""
	}
	return string(t.words[t.wordIndex])
}

// Deleting reports whether the current word is being erased.
func (t *Typewriter) Deleting() bool { return t.deleting }

// Advance types or deletes one rune and returns how long to wait before
// the next call.
func (t *Typewriter) Advance() time.Duration {
	if len(t.words) == 0 {
		return t.HoldDelay
	}
	word := t.words[t.wordIndex]

	if t.deleting {
		t.charIndex--
	} else {
		t.charIndex++
	}
	t.text = string(word[:t.charIndex])

	delay := t.TypeDelay
	if t.deleting {
		delay = t.DeleteDelay
	}

	switch {
	case !t.deleting && t.charIndex == len(word):
		delay = t.HoldDelay
		t.deleting = true
	case t.deleting && t.charIndex == 0:
		t.deleting = false
		t.wordIndex = (t.wordIndex + 1) % len(t.words)
	}
	return delay
}
