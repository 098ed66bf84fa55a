// Package generator builds randomized, musically plausible progressions by
// drawing roots, scales and tempos from shuffle bags and walking the chord
// transition table.
package generator

import (
	"fmt"
	"math/rand"

	"github.com/johnmpetty/progress/bag"
	"github.com/johnmpetty/progress/constants"
	"github.com/johnmpetty/progress/model"
	"github.com/johnmpetty/progress/theory"
)

// Config selects how progressions are built. The zero value starts every
// progression on the tonic and walks the transition table.
type Config struct {
	// StartOnNonRoot starts progressions on any degree for a challenge at
	// the expense of musicality. Ignored in common-progression mode.
	StartOnNonRoot bool
	// OnlyCommonProgressions draws whole fixed progressions instead of
	// walking the transition table.
	OnlyCommonProgressions bool
}

// Generator draws new progressions. The shuffle bags make it stateful
// across calls; it is not safe for concurrent use without external locking.
type Generator struct {
	cfg Config
	rng *rand.Rand

	notes   *bag.Bag[[]model.Note]
	scales  *bag.Bag[model.Scale]
	bpms    *bag.Bag[int]
	commons map[model.Scale]*bag.Bag[[]model.Roman]
}

func New(cfg Config, rng *rand.Rand) *Generator {
	var bpms []int
	for bpm := constants.BpmMin; bpm < constants.BpmMax; bpm += constants.BpmStep {
		bpms = append(bpms, bpm)
	}

	commons := make(map[model.Scale]*bag.Bag[[]model.Roman])
	for _, scale := range theory.Scales {
		commons[scale] = bag.New(rng, theory.CommonProgressions[scale])
	}

	return &Generator{
		cfg:     cfg,
		rng:     rng,
		notes:   bag.New(rng, theory.Notes),
		scales:  bag.New(rng, theory.Scales),
		bpms:    bag.New(rng, bpms),
		commons: commons,
	}
}

// NewProgression draws a fresh progression with the cursor on the first
// chord.
func (g *Generator) NewProgression() *model.Progression {
	spellings := g.notes.Draw()
	// One final choice as we may have to pick between a sharp and a flat.
	// This choice is deliberately not bag-tracked.
	root := spellings[g.rng.Intn(len(spellings))]

	scale := g.scales.Draw()

	var romans []model.Roman
	if g.cfg.OnlyCommonProgressions {
		romans = g.commons[scale].Draw()
	} else {
		romans = g.walk(scale)
	}

	bpm := g.bpms.Draw()

	chords := make([]string, len(romans))
	for i, roman := range romans {
		chords[i] = fmt.Sprintf("%v (%v)", roman, theory.ResolveChord(root, roman))
	}

	return model.NewProgression(root, scale, chords, bpm)
}

// walk follows the transition table from a seed chord until a goal length
// drawn from [ProgressionLengthMin, ProgressionLengthMax] is reached.
func (g *Generator) walk(scale model.Scale) []model.Roman {
	degrees := theory.ScaleChords[scale]
	seed := degrees[0]
	if g.cfg.StartOnNonRoot {
		seed = degrees[g.rng.Intn(len(degrees))]
	}
	sequence := []model.Roman{seed}

	spread := constants.ProgressionLengthMax - constants.ProgressionLengthMin
	goal := constants.ProgressionLengthMin + g.rng.Intn(spread+1)
	for len(sequence) < goal {
		current := sequence[len(sequence)-1]
		successors := theory.ChordFollowing[current]
		if len(successors) == 0 {
			panic("No chords can follow: " + current)
		}
		sequence = append(sequence, successors[g.rng.Intn(len(successors))])
	}
	return sequence
}
