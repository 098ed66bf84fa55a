package model

import (
	"fmt"
	"strings"
)

type Note = string
type Roman = string

type Scale string

const (
	ScaleMinor Scale = "Minor"
	ScaleMajor Scale = "Major"
)

// Progression is a fixed sequence of rendered chords with a moving cursor.
// The sequence never changes after creation; only the cursor moves, wrapping
// at the end.
type Progression struct {
	Root   Note
	Scale  Scale
	Chords []string
	BPM    int

	current int
}

func NewProgression(root Note, scale Scale, chords []string, bpm int) *Progression {
	if len(chords) == 0 {
		panic("Progression needs at least one chord")
	}
	return &Progression{Root: root, Scale: scale, Chords: chords, BPM: bpm}
}

func (p *Progression) nextChordIndex() int {
	return (p.current + 1) % len(p.Chords)
}

// QuarterNoteSeconds returns the fraction of a second per quarter note at
// this BPM.
func (p *Progression) QuarterNoteSeconds() float64 {
	return 60 / float64(p.BPM)
}

// CurrentChord returns the chord under the cursor.
func (p *Progression) CurrentChord() string {
	return p.Chords[p.current]
}

// NextChord returns the chord after the cursor without moving it.
func (p *Progression) NextChord() string {
	return p.Chords[p.nextChordIndex()]
}

// AdvanceChord continues to the next chord.
func (p *Progression) AdvanceChord() {
	p.current = p.nextChordIndex()
}

func (p *Progression) String() string {
	return fmt.Sprintf("Scale: %v %v\nProgression: %v\nBPM: %v",
		p.Root, p.Scale, strings.Join(p.Chords, ", "), p.BPM)
}
