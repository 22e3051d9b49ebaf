package cli

import (
	"fmt"
	"io"
)

const helpText = `Usage: dirtree [path] [options]

Options:
  -F, --with-files     Show folders and files
  -D, --folders-only   Show folders only (default)
  -h, --help           Show this help message

Examples:
  dirtree ./project -F      Folders and files
  dirtree ./project -D      Folders only
`

// PrintHelp writes the usage text to writer.
func PrintHelp(writer io.Writer) {
	fmt.Fprint(writer, helpText)
}
