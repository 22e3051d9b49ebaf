// Package cli provides the command line interface.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tyemirov/dirtree/internal/tree"
)

const (
	rootUse              = "dirtree [path] [options]"
	rootShortDescription = "print a sorted directory tree"
	rootLongDescription  = `dirtree prints the subdirectories of a path as an indented, sorted tree.
Use --with-files to list files beneath their directories. Version control,
dependency and editor folders are never shown.`

	// errorPathMissingFormat reports a target path that cannot be found.
	errorPathMissingFormat = "Path does not exist: %s"
	// rootLevel is the nesting level of the target directory's children.
	rootLevel = 0
)

// Execute runs the dirtree application against the process arguments and streams.
func Execute(logger *zap.Logger) error {
	rootCommand := NewRootCommand(os.Stdout, os.Stderr, logger, os.Args[1:])
	return rootCommand.Execute()
}

// NewRootCommand builds the root Cobra command for the given raw arguments.
// Tree lines and help text go to stdout; diagnostics go to logger. The raw
// arguments are handed to ParseArguments directly and the command itself runs
// with an empty argument list, so a path named like a reserved cobra command
// (completion, __complete) is still treated as a path.
func NewRootCommand(stdout io.Writer, stderr io.Writer, logger *zap.Logger, rawArguments []string) *cobra.Command {
	if logger == nil {
		logger = zap.NewNop()
	}

	rootCommand := &cobra.Command{
		Use:                rootUse,
		Short:              rootShortDescription,
		Long:               rootLongDescription,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(command *cobra.Command, _ []string) error {
			request := ParseArguments(rawArguments)
			if request.ShowHelp {
				return command.Help()
			}

			if _, statError := os.Stat(request.TargetPath); statError != nil {
				logger.Error(fmt.Sprintf(errorPathMissingFormat, request.TargetPath))
				return nil
			}

			printer := tree.NewPrinter(command.OutOrStdout(), logger)
			printer.Print(request.TargetPath, rootLevel, request.IncludeFiles)
			return nil
		},
	}
	rootCommand.SetArgs([]string{})
	rootCommand.SetOut(stdout)
	rootCommand.SetErr(stderr)
	rootCommand.SetHelpFunc(func(command *cobra.Command, arguments []string) {
		PrintHelp(command.OutOrStdout())
	})
	return rootCommand
}
