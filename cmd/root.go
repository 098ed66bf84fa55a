package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "progress",
	Short: "A chord progression training tool",
	Long:  `Play along with the current chord in a randomly generated progression.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
