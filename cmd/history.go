package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/johnmpetty/progress/db"
)

var historyLimit int64

func init() {
	historyCmd.Flags().Int64Var(&historyLimit, "limit", 20, "Max sessions to show")
	rootCmd.AddCommand(historyCmd)
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Shows recorded practice sessions",
	Long:  `Shows practice sessions recorded with train --log-sessions`,
	Run: func(cmd *cobra.Command, args []string) {
		history()
	},
}

func history() {
	sessions := db.GetRecentSessions(historyLimit)
	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet")
		return
	}
	for _, s := range sessions {
		fmt.Printf("%v  %v %v at %v BPM\n", s.StartedAt, s.Root, s.Scale, s.Bpm)
		fmt.Printf("    %v\n", strings.Join(s.Chords, ", "))
	}
}
