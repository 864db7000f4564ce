package cmd

import (
	"github.com/spf13/cobra"
)

// version is overridden at build time via -ldflags.
var version = "dev"

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the exline version",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Println("exline " + version)
		},
	}
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
