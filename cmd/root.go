// Package cmd provides the root command and CLI setup for exline.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pale-fox/exline/internal/adapter"
	"github.com/pale-fox/exline/internal/controller"
	"github.com/pale-fox/exline/internal/domain"
	m "github.com/pale-fox/exline/internal/model"
)

var discovery adapter.Discovery
var workspace adapter.Workspace
var ui controller.UI

func init() {
	discovery = adapter.NewLocalDiscovery()
	workspace = adapter.NewLocalWorkspace()
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
}

var dryRunFlag bool
var verboseFlag bool
var templateExtFlag string
var styleExtFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exline [root]",
		Short: "Move inline component templates and styles into external files",
		Long: `Exline rewrites component files that embed their template or styles as
literals inside the @Component({...}) block, extracting each literal into a
file next to the component and pointing the block at it (templateUrl,
styleUrls). Everything else in the file is left byte-identical.

Entries that are not plain literals (identifiers, calls, interpolated
templates) are skipped with a diagnostic, never guessed at. Reruns are
idempotent: already-migrated components are left alone.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			run, err := buildWorkflow(cmd).Migrate(domain.Options{
				Root:        rootArg(args),
				TemplateExt: templateExtFlag,
				StyleExt:    styleExtFlag,
				DryRun:      dryRunFlag,
			})
			if err != nil {
				return err
			}

			_ = run

			return nil
		},
	}

	cmd.Flags().BoolVarP(&dryRunFlag, "dry-run", "n", false, "show the edits as diffs without writing anything")
	cmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", false, "also print debug diagnostics")
	cmd.Flags().StringVar(&templateExtFlag, "template-ext", domain.DefaultTemplateExt, "extension for emitted markup files")
	cmd.Flags().StringVar(&styleExtFlag, "style-ext", domain.DefaultStyleExt, "extension for emitted stylesheet files")

	return cmd
}

// buildWorkflow wires the workflow with the package-level adapters so tests
// can substitute them.
func buildWorkflow(cmd *cobra.Command) domain.Workflow {
	sink := adapter.NewConsoleSink(cmd.ErrOrStderr(), verboseFlag)

	return domain.NewWorkflow(discovery, workspace, sink, ui)
}

func rootArg(args []string) m.Path {
	if len(args) == 0 {
		return "."
	}

	return m.Path(args[0])
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
