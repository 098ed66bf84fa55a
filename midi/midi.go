// Package midi renders progressions to standard MIDI files so they can be
// practiced against richer sounds in a DAW.
package midi

import (
	"strings"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/johnmpetty/progress/constants"
	"github.com/johnmpetty/progress/model"
	"github.com/johnmpetty/progress/theory"
)

const velocity = 90

// romanOf recovers the roman numeral from a rendered chord string like
// "IV (F Major)".
func romanOf(chord string) model.Roman {
	roman, _, found := strings.Cut(chord, " (")
	if !found {
		panic("Chord is not in rendered form: " + chord)
	}
	return roman
}

// WriteProgressionFile renders each progression as held triads, one chord
// per measure at the progression's own tempo, into a single-track SMF.
func WriteProgressionFile(path string, progressions []*model.Progression) error {
	var s smf.SMF
	ticks := smf.MetricTicks(960)
	s.TimeFormat = ticks
	measure := ticks.Ticks4th() * constants.NotesPerMeasure

	var track smf.Track
	for _, p := range progressions {
		track.Add(0, smf.MetaTempo(float64(p.BPM)))
		for _, chord := range p.Chords {
			tones := theory.ChordTones(p.Root, romanOf(chord))
			for _, tone := range tones {
				track.Add(0, gomidi.NoteOn(0, tone, velocity))
			}
			track.Add(measure, gomidi.NoteOff(0, tones[0]))
			for _, tone := range tones[1:] {
				track.Add(0, gomidi.NoteOff(0, tone))
			}
		}
	}
	track.Close(0)

	s.Tracks = append(s.Tracks, track)
	return s.WriteFile(path)
}
