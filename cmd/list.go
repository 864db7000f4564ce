package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pale-fox/exline/internal/domain"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [root]",
		Short: "List candidate components and what would migrate",
		Long: `List inspects every candidate component file under the root and shows,
per file, whether the template and styles concerns would migrate, are
already in reference form, or are unusable. Nothing is written.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plans, err := buildWorkflow(cmd).Plan(domain.Options{Root: rootArg(args)})
			if err != nil {
				return err
			}

			return ui.DisplayPlan(plans)
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
