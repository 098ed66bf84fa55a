// Package trainer runs the timed presentation loop: print the current and
// next chord in time with the metronome and advance once per measure.
package trainer

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/bep/debounce"

	"github.com/johnmpetty/progress/constants"
	"github.com/johnmpetty/progress/generator"
	"github.com/johnmpetty/progress/metronome"
	"github.com/johnmpetty/progress/model"
)

// How long to wait before beginning the preroll.
const initialDelay = 3 * time.Second

// How many metronome clicks before the progression starts.
const prerollCount = 4

// How long repeated restart requests are collapsed for.
const restartDebounce = 250 * time.Millisecond

// Trainer presents generated progressions. One background pass at a time
// owns all chord-state access; Train only signals it to stop.
type Trainer struct {
	Generator *generator.Generator
	Clicker   metronome.Clicker
	Out       io.Writer

	// OnNewProgression is called once for every progression a pass starts
	// with. Optional.
	OnNewProgression func(*model.Progression)

	// sleep is a seam for tests
	sleep func(time.Duration)

	stop chan struct{}
	done chan struct{}
}

func New(g *generator.Generator, clicker metronome.Clicker, out io.Writer) *Trainer {
	return &Trainer{
		Generator: g,
		Clicker:   clicker,
		Out:       out,
		sleep:     time.Sleep,
	}
}

func (t *Trainer) stopped() bool {
	select {
	case <-t.stop:
		return true
	default:
		return false
	}
}

// breakableWait sleeps in small slices so a stop request cuts the wait
// short. Reports whether the full wait completed.
func (t *Trainer) breakableWait(d time.Duration) bool {
	const slice = 100 * time.Millisecond
	for waited := time.Duration(0); waited < d; waited += slice {
		t.sleep(slice)
		if t.stopped() {
			return false
		}
	}
	return true
}

func quarterNote(p *model.Progression) time.Duration {
	return time.Duration(p.QuarterNoteSeconds() * float64(time.Second))
}

// playOnce runs one pass: initial delay, preroll, then tick through the
// progression until stopped.
func (t *Trainer) playOnce() {
	defer close(t.done)

	progression := t.Generator.NewProgression()
	if t.OnNewProgression != nil {
		t.OnNewProgression(progression)
	}
	fmt.Fprintln(t.Out, progression.String(), "(press enter to generate a new progression)")

	fmt.Fprint(t.Out, "(Waiting for the initial delay)\r")
	if !t.breakableWait(initialDelay) {
		return
	}

	for countdown := prerollCount; countdown > 0; countdown-- {
		if t.stopped() {
			return
		}
		fmt.Fprintf(t.Out, "Preroll counting down from: %v  \r", countdown)
		t.Clicker.Click()
		t.sleep(quarterNote(progression))
	}

	var note int
	for !t.stopped() {
		t.Clicker.Click()
		// Trailing whitespace so a longer previous chord name is fully
		// overwritten.
		fmt.Fprint(t.Out, progression.CurrentChord()+" next is "+progression.NextChord()+"                 \r")
		t.sleep(quarterNote(progression))
		note++
		if note == constants.NotesPerMeasure {
			progression.AdvanceChord()
			note = 0
		}
	}
}

// Train plays passes until in is exhausted, restarting with a fresh
// progression on every line. Rapid repeats are debounced into one restart.
func (t *Trainer) Train(in io.Reader) {
	restarts := make(chan struct{}, 1)
	eof := make(chan struct{})
	debounced := debounce.New(restartDebounce)
	go func() {
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			debounced(func() {
				select {
				case restarts <- struct{}{}:
				default:
				}
			})
		}
		close(eof)
	}()

	for {
		t.stop = make(chan struct{})
		t.done = make(chan struct{})
		go t.playOnce()

		select {
		case <-restarts:
			close(t.stop)
			<-t.done
			fmt.Fprint(t.Out, "\n\n\n")
		case <-eof:
			close(t.stop)
			<-t.done
			return
		}
	}
}
