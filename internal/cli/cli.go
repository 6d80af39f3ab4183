// Package cli implements the wordvis command-line interface.
//
// wordvis reads a list of word frequencies and draws it as a sunburst chart:
//
//	wordvis [flags] <word file> <output file>
//
// The word file holds one WORD<TAB>COUNT pair per line. The output format is
// taken from --format, else from the output file extension, else SVG.
// Render settings can be supplied in a TOML file via --config; flags given on
// the command line take precedence over the file.
//
// # Logging
//
// Progress is logged to stderr with charmbracelet/log; --verbose (-v)
// enables debug output. The logger travels through the command context.
//
// # Exit Status
//
// [ExitCode] maps errors to exit statuses: 2 for usage errors, 130 when
// interrupted and 1 for everything else.
package cli

import (
	"context"
	stderrors "errors"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/wordvis/pkg/buildinfo"
	"github.com/matzehuels/wordvis/pkg/errors"
)

// appName is the application name used for display.
const appName = "wordvis"

// CLI holds shared state for the command.
type CLI struct {
	Logger *log.Logger
	Out    io.Writer
}

// New creates a CLI printing results to out and logging to logw.
func New(out, logw io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(logw, level),
		Out:    out,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the wordvis command.
func (c *CLI) RootCommand() *cobra.Command {
	var flags chartFlags

	root := &cobra.Command{
		Use:   appName + " [flags] <word file> <output file>",
		Short: "wordvis draws word frequencies as a sunburst chart",
		Long: `wordvis reads WORD<TAB>COUNT lines and draws them as concentric rings:
the first ring holds the first letters, each further ring splits its parent's
arc by how often each letter follows that prefix.`,
		Version:       buildinfo.Version,
		Args:          exactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			c.SetLogLevel(levelFor(flags.verbose))
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options(cmd.Flags(), args[0], args[1])
			if err != nil {
				return err
			}
			return c.runChart(cmd.Context(), opts, flags.stats)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errors.Wrap(errors.ErrCodeUsage, err, "invalid flags")
	})
	flags.bind(root)

	return root
}

// exactArgs is cobra.ExactArgs reporting a USAGE error.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return errors.New(errors.ErrCodeUsage,
				"expected <word file> <output file>, got %d argument(s)", len(args))
		}
		return nil
	}
}

// ExitCode maps an error returned by the root command to a process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case stderrors.Is(err, context.Canceled):
		return 130 // Standard shell convention for SIGINT
	case errors.Is(err, errors.ErrCodeUsage):
		return 2
	default:
		return 1
	}
}
