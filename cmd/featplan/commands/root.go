// Package commands implements the CLI commands for the featplan tool.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/quantimg/featplan/internal/app"
	"github.com/quantimg/featplan/internal/build"
)

// Planner is the application surface the CLI drives.
type Planner interface {
	Plan(path string) (*app.PlanResult, error)
}

// CLI represents the command line interface for featplan.
type CLI struct {
	app     Planner
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a Planner) *CLI {
	rootCmd := &cobra.Command{
		Use:           "featplan",
		Short:         "Deduplication planner for radiomics preprocessing pipelines",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newPlanCmd())
	rootCmd.AddCommand(c.newRulesetsCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput redirects the command output and error streams. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
