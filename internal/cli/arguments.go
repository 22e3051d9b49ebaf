package cli

import (
	"strings"

	"github.com/tyemirov/dirtree/internal/types"
)

const (
	flagPrefix           = "-"
	helpFlagName         = "--help"
	helpFlagShorthand    = "-h"
	withFilesFlagName    = "--with-files"
	withFilesShorthand   = "-F"
	foldersOnlyFlagName  = "--folders-only"
	foldersOnlyShorthand = "-D"
)

// ParseArguments converts raw command line tokens, excluding the program name,
// into an invocation request. Tokens are applied left to right so later flags
// override earlier ones. Unknown flags are ignored and the last positional token
// becomes the target path.
func ParseArguments(arguments []string) types.InvocationRequest {
	request := types.InvocationRequest{
		TargetPath:   types.DefaultTargetPath,
		IncludeFiles: false,
		ShowHelp:     len(arguments) == 0,
	}

	for _, argumentValue := range arguments {
		switch argumentValue {
		case helpFlagName, helpFlagShorthand:
			request.ShowHelp = true
		case withFilesFlagName, withFilesShorthand:
			request.IncludeFiles = true
			request.ShowHelp = false
		case foldersOnlyFlagName, foldersOnlyShorthand:
			request.IncludeFiles = false
			request.ShowHelp = false
		default:
			if !strings.HasPrefix(argumentValue, flagPrefix) {
				request.TargetPath = argumentValue
			}
		}
	}

	return request
}
