// Package theory holds the fixed note, scale and chord rule tables and the
// roman-numeral resolution built on them. The tables are immutable; a lookup
// miss is a corrupted table, not a runtime condition, so everything here
// panics instead of returning errors.
package theory

import (
	"strings"

	"github.com/johnmpetty/progress/model"
)

// NoteIndex returns the slot of a note, scanning both spellings of every
// slot.
func NoteIndex(note model.Note) int {
	for i, spellings := range Notes {
		for _, s := range spellings {
			if s == note {
				return i
			}
		}
	}
	panic("Unknown note: " + note)
}

func offsetOf(roman model.Roman) int {
	offset, ok := RomanToOffset[roman]
	if !ok {
		panic("No offset for roman numeral: " + roman)
	}
	return offset
}

// An uppercase I or V in the numeral marks a major-quality chord.
func isMajor(roman model.Roman) bool {
	return strings.Contains(roman, "I") || strings.Contains(roman, "V")
}

// ResolveChord converts roman notation to the written chord name. For
// example with a root of "A" and a roman of "iv" the result is "D Minor",
// the minor 4th degree.
func ResolveChord(root model.Note, roman model.Roman) string {
	scale := model.ScaleMinor
	if isMajor(roman) {
		scale = model.ScaleMajor
	}

	idx := (NoteIndex(root) + offsetOf(roman)) % len(Notes)

	// When the chord note is an accidental it matches the style of the
	// root: sharp unless the root itself is spelled flat.
	spellings := Notes[idx]
	note := spellings[0]
	if len(spellings) == 2 && !strings.Contains(root, "♯") && strings.Contains(root, "♭") {
		note = spellings[1]
	}

	var qualifier string
	if strings.Contains(roman, "°") {
		qualifier = " Diminished"
	}

	return note + " " + string(scale) + qualifier
}

// ChordTones returns the MIDI notes of the triad a numeral names over a
// root, voiced in the octave starting at A3.
func ChordTones(root model.Note, roman model.Roman) []uint8 {
	const a3 = 57
	base := uint8(a3 + (NoteIndex(root)+offsetOf(roman))%len(Notes))

	third := uint8(4)
	fifth := uint8(7)
	if !isMajor(roman) {
		third = 3
	}
	if strings.Contains(roman, "°") {
		third, fifth = 3, 6
	}
	return []uint8{base, base + third, base + fifth}
}
