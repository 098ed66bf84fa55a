package cmd

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/johnmpetty/progress/db"
	"github.com/johnmpetty/progress/generator"
	"github.com/johnmpetty/progress/metronome"
	"github.com/johnmpetty/progress/model"
	"github.com/johnmpetty/progress/trainer"
)

var startOnNonRoot bool
var onlyCommonProgressions bool
var noAudio bool
var logSessions bool

func init() {
	trainCmd.Flags().BoolVar(&startOnNonRoot, "start-on-non-root", false,
		"Start progressions on any degree")
	trainCmd.Flags().BoolVar(&onlyCommonProgressions, "only-use-common-progressions", false,
		"Only use fixed common progressions")
	trainCmd.Flags().BoolVar(&noAudio, "no-audio", false,
		"Run without the metronome click")
	trainCmd.Flags().BoolVar(&logSessions, "log-sessions", false,
		"Record each progression to the session history")
	rootCmd.AddCommand(trainCmd)
}

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Runs the trainer",
	Long:  `Plays progressions in time with a metronome, press enter for a new one`,
	Run: func(cmd *cobra.Command, args []string) {
		if startOnNonRoot && onlyCommonProgressions {
			fmt.Println("Can't specify start on non root when using common progressions")
			os.Exit(1)
		}
		train()
	},
}

func train() {
	cfg := generator.Config{
		StartOnNonRoot:         startOnNonRoot,
		OnlyCommonProgressions: onlyCommonProgressions,
	}
	g := generator.New(cfg, rand.New(rand.NewSource(time.Now().UnixNano())))

	var clicker metronome.Clicker = metronome.Silent{}
	if !noAudio {
		m, err := metronome.New()
		if err != nil {
			fmt.Println("Running without audio:", err)
		} else {
			clicker = m
		}
	}

	t := trainer.New(g, clicker, os.Stdout)
	if logSessions {
		t.OnNewProgression = func(p *model.Progression) {
			db.PutSession(model.PracticeSession{
				Id:        uuid.New().String(),
				StartedAt: time.Now().UTC().Format(time.RFC3339),
				Root:      p.Root,
				Scale:     string(p.Scale),
				Chords:    p.Chords,
				Bpm:       p.BPM,
			})
		}
	}
	t.Train(os.Stdin)
}
