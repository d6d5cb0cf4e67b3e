// Package commands implements the CLI commands for geocache.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/geocache/internal/app"
	"go.trai.ch/geocache/internal/build"
	"go.trai.ch/geocache/internal/core/domain"
)

// CLI represents the command line interface for geocache.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Play(ctx context.Context, opts app.PlayOptions) error
	Status(ctx context.Context) error
	Walk(ctx context.Context, dirs []domain.Direction) error
	Collect(ctx context.Context, cell domain.Cell, coinID string) error
	Deposit(ctx context.Context, cell domain.Cell) error
	Reset(ctx context.Context, opts app.ResetOptions) error

	SetConfigFile(path string)
	SetJSONLogs(enable bool)
	EnableTracing()
	Shutdown(ctx context.Context) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "geocache",
		Short:         "Walk a deterministic world and trade coins between caches",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to geocache.yaml (default: discovered from the working directory)")
	rootCmd.PersistentFlags().Bool("json-logs", false, "Write logs as JSON")
	rootCmd.PersistentFlags().Bool("trace", false, "Log a line for every world operation")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		if path, _ := cmd.Flags().GetString("config"); path != "" {
			c.app.SetConfigFile(path)
		}
		if jsonLogs, _ := cmd.Flags().GetBool("json-logs"); jsonLogs {
			c.app.SetJSONLogs(true)
		}
		if trace, _ := cmd.Flags().GetBool("trace"); trace {
			c.app.EnableTracing()
		}
	}
	rootCmd.PersistentPostRunE = func(cmd *cobra.Command, _ []string) error {
		return c.app.Shutdown(context.WithoutCancel(cmd.Context()))
	}

	rootCmd.AddCommand(c.newPlayCmd())
	rootCmd.AddCommand(c.newStatusCmd())
	rootCmd.AddCommand(c.newWalkCmd())
	rootCmd.AddCommand(c.newCollectCmd())
	rootCmd.AddCommand(c.newDepositCmd())
	rootCmd.AddCommand(c.newResetCmd())
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

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// SetInput sets the stream the reset prompt reads from. Used for testing.
func (c *CLI) SetInput(in io.Reader) {
	c.rootCmd.SetIn(in)
}
