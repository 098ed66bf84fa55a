package cmd

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/johnmpetty/progress/generator"
	"github.com/johnmpetty/progress/midi"
	"github.com/johnmpetty/progress/model"
)

var exportCount int

func init() {
	exportCmd.Flags().IntVar(&exportCount, "progressions", 4,
		"How many progressions to render")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export <out.mid>",
	Short: "Exports progressions to a MIDI file",
	Long:  `Exports generated progressions to a MIDI file, one held triad per measure`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		export(args[0])
	},
}

func export(path string) {
	g := generator.New(generator.Config{}, rand.New(rand.NewSource(time.Now().UnixNano())))

	var progressions []*model.Progression
	for i := 0; i < exportCount; i++ {
		progressions = append(progressions, g.NewProgression())
	}

	if err := midi.WriteProgressionFile(path, progressions); err != nil {
		panic("Could not write midi file: " + err.Error())
	}
	fmt.Printf("Wrote %v progressions to %v\n", len(progressions), path)
}
