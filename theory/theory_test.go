package theory

import (
	"strings"
	"testing"

	"github.com/johnmpetty/progress/model"
	"github.com/stretchr/testify/assert"
)

func TestResolvesMinorFourthDegree(t *testing.T) {
	assert.Equal(t, "D Minor", ResolveChord("A", "iv"))
}

func TestResolvesFirstDegreeOnRoot(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("C Major", ResolveChord("C", "I"))
	assert.Equal("C Minor", ResolveChord("C", "i"))
}

func TestResolvesDiminished(t *testing.T) {
	// vii° has no uppercase numeral so it resolves minor
	assert.Equal(t, "A♯ Minor Diminished", ResolveChord("C", "vii°"))
}

func TestAccidentalMatchesRootStyle(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("D♯ Major", ResolveChord("D♯", "I"))
	assert.Equal("E♭ Major", ResolveChord("E♭", "I"))
	// natural roots take the sharp spelling
	assert.Equal("A♯ Minor Diminished", ResolveChord("C", "vii°"))
	assert.Equal("D♭ Major", ResolveChord("G♭", "V"))
}

func TestResolveNeverPanicsAndSpellsConsistently(t *testing.T) {
	assert := assert.New(t)
	for _, spellings := range Notes {
		for _, root := range spellings {
			for roman := range RomanToOffset {
				var name string
				assert.NotPanics(func() { name = ResolveChord(root, roman) })
				if strings.Contains(root, "♭") {
					assert.NotContains(name, "♯")
				} else {
					assert.NotContains(name, "♭")
				}
			}
		}
	}
}

func TestNoteIndexScansBothSpellings(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(1, NoteIndex("A♯"))
	assert.Equal(1, NoteIndex("B♭"))
	assert.Equal(3, NoteIndex("C"))
}

func TestNoteIndexPanicsOutsideDomain(t *testing.T) {
	assert.Panics(t, func() { NoteIndex("H") })
}

func TestChordTones(t *testing.T) {
	assert := assert.New(t)
	assert.Equal([]uint8{60, 64, 67}, ChordTones("C", "I"))
	assert.Equal([]uint8{62, 65, 69}, ChordTones("A", "iv"))
	assert.Equal([]uint8{58, 61, 64}, ChordTones("C", "vii°"))
}

func TestTablesValidate(t *testing.T) {
	err := validate(Notes, ScaleChords, ChordFollowing, RomanToOffset, CommonProgressions)
	assert.NoError(t, err)
}

func TestValidateRejectsMissingOffset(t *testing.T) {
	offsets := make(map[model.Roman]int)
	for k, v := range RomanToOffset {
		offsets[k] = v
	}
	delete(offsets, "vii°")

	err := validate(Notes, ScaleChords, ChordFollowing, offsets, CommonProgressions)
	assert.ErrorContains(t, err, "no offset")
}

func TestValidateRejectsChordWithoutSuccessors(t *testing.T) {
	following := make(map[model.Roman][]model.Roman)
	for k, v := range ChordFollowing {
		following[k] = v
	}
	delete(following, "V")

	err := validate(Notes, ScaleChords, following, RomanToOffset, CommonProgressions)
	assert.Error(t, err)
}

func TestValidateRejectsTransitionChordOutsideScales(t *testing.T) {
	following := make(map[model.Roman][]model.Roman)
	for k, v := range ChordFollowing {
		following[k] = v
	}
	following["ix"] = []model.Roman{"I"}

	err := validate(Notes, ScaleChords, following, RomanToOffset, CommonProgressions)
	assert.ErrorContains(t, err, "in no scale")
}

func TestValidateRejectsShortVocabulary(t *testing.T) {
	vocab := map[model.Scale][]model.Roman{
		model.ScaleMajor: {"I", "IV", "V"},
		model.ScaleMinor: ScaleChords[model.ScaleMinor],
	}

	err := validate(Notes, vocab, ChordFollowing, RomanToOffset, CommonProgressions)
	assert.ErrorContains(t, err, "exactly 7")
}

func TestValidateRejectsEmptyCommonProgression(t *testing.T) {
	commons := map[model.Scale][][]model.Roman{
		model.ScaleMajor: {{}},
		model.ScaleMinor: CommonProgressions[model.ScaleMinor],
	}

	err := validate(Notes, ScaleChords, ChordFollowing, RomanToOffset, commons)
	assert.ErrorContains(t, err, "empty common progression")
}
