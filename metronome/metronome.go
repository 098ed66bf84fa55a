// Package metronome plays a synthesized click through the system speaker,
// so no sample files ship with the binary.
package metronome

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Clicker is anything the trainer can tick against.
type Clicker interface {
	Click()
}

// Metronome plays a short decaying sine burst on each click.
type Metronome struct {
	mixer *beep.Mixer
	click [][2]float64
}

// New initializes the speaker and returns a ready metronome.
func New() (*Metronome, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50)); err != nil {
		return nil, err
	}

	m := &Metronome{
		mixer: &beep.Mixer{},
		click: generateClick(),
	}
	speaker.Play(m.mixer)
	return m, nil
}

// Click queues one click on the mixer. The mixer drops the streamer once it
// is drained, so overlapping clicks at high BPMs just stack.
func (m *Metronome) Click() {
	samples := m.click
	var pos int
	streamer := beep.StreamerFunc(func(out [][2]float64) (int, bool) {
		if pos >= len(samples) {
			return 0, false
		}
		n := copy(out, samples[pos:])
		pos += n
		return n, true
	})

	speaker.Lock()
	m.mixer.Add(streamer)
	speaker.Unlock()
}

// generateClick renders roughly 30ms of a 1kHz burst with an exponential
// decay.
func generateClick() [][2]float64 {
	n := sampleRate.N(time.Millisecond * 30)
	samples := make([][2]float64, n)
	for i := range samples {
		t := float64(i) / float64(sampleRate)
		v := math.Sin(2*math.Pi*1000*t) * math.Exp(-t*120) * 0.6
		samples[i][0] = v
		samples[i][1] = v
	}
	return samples
}

// Silent is a no-op click sink for --no-audio runs.
type Silent struct{}

func (Silent) Click() {}
