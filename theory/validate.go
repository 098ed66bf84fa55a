package theory

import (
	"fmt"

	"github.com/johnmpetty/progress/model"
	"github.com/johnmpetty/progress/util"
)

func init() {
	if err := validate(Notes, ScaleChords, ChordFollowing, RomanToOffset, CommonProgressions); err != nil {
		panic("Corrupted theory tables: " + err.Error())
	}
}

// validate cross-checks the rule tables against each other so a lookup miss
// becomes a startup assertion instead of a runtime surprise: every
// vocabulary chord has an offset and successors, every transition key
// belongs to a vocabulary, and the transition table is closed under walking.
func validate(
	notes [][]model.Note,
	vocab map[model.Scale][]model.Roman,
	following map[model.Roman][]model.Roman,
	offsets map[model.Roman]int,
	commons map[model.Scale][][]model.Roman,
) error {
	if len(notes) != 12 {
		return fmt.Errorf("expected 12 note slots, have %v", len(notes))
	}
	for i, spellings := range notes {
		if len(spellings) == 0 || len(spellings) > 2 {
			return fmt.Errorf("note slot %v needs 1 or 2 spellings", i)
		}
	}

	inVocab := make(map[model.Roman]bool)
	for _, scale := range Scales {
		chords, ok := vocab[scale]
		if !ok || len(chords) != 7 {
			return fmt.Errorf("scale %v needs exactly 7 chords", scale)
		}
		for _, chord := range chords {
			inVocab[chord] = true
			if _, ok := offsets[chord]; !ok {
				return fmt.Errorf("no offset for chord %v", chord)
			}
			if len(following[chord]) == 0 {
				return fmt.Errorf("chord %v has no successors", chord)
			}
		}
	}

	for _, chord := range util.SortedKeys(following) {
		if !inVocab[chord] {
			return fmt.Errorf("transition chord %v is in no scale", chord)
		}
		for _, successor := range following[chord] {
			if _, ok := offsets[successor]; !ok {
				return fmt.Errorf("no offset for successor %v of %v", successor, chord)
			}
			if len(following[successor]) == 0 {
				return fmt.Errorf("successor %v of %v cannot be walked from", successor, chord)
			}
		}
	}

	for _, scale := range Scales {
		for _, progression := range commons[scale] {
			if len(progression) == 0 {
				return fmt.Errorf("empty common progression for scale %v", scale)
			}
			for _, chord := range progression {
				if _, ok := offsets[chord]; !ok {
					return fmt.Errorf("no offset for common progression chord %v", chord)
				}
			}
		}
	}

	return nil
}
