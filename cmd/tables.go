package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/johnmpetty/progress/theory"
	"github.com/johnmpetty/progress/util"
)

func init() {
	rootCmd.AddCommand(tablesCmd)
}

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Prints the rule tables",
	Long:  `Prints the scale chords, chord transitions and common progressions`,
	Run: func(cmd *cobra.Command, args []string) {
		printTables()
	},
}

func printTables() {
	for _, scale := range theory.Scales {
		fmt.Printf("%v chords: %v\n", scale, strings.Join(theory.ScaleChords[scale], ", "))
	}

	fmt.Println()
	fmt.Println("Transitions:")
	for _, chord := range util.SortedKeys(theory.ChordFollowing) {
		fmt.Printf("  %v -> %v\n", chord, strings.Join(theory.ChordFollowing[chord], ", "))
	}

	for _, scale := range theory.Scales {
		fmt.Println()
		fmt.Printf("Common %v progressions:\n", scale)
		for _, progression := range theory.CommonProgressions[scale] {
			fmt.Printf("  %v\n", strings.Join(progression, " - "))
		}
	}
}
