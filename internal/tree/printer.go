// Package tree renders a directory hierarchy as indented plain text.
package tree

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/tyemirov/dirtree/internal/types"
)

const (
	// indentUnit is repeated once per nesting level.
	indentUnit = "  "
	// fileMarker prefixes every file line.
	fileMarker = "- "

	// warningReadDirectoryFormat is logged when a directory cannot be listed.
	warningReadDirectoryFormat = "Failed to read directory: %s %v"
	// errorReadDirectoryFormat wraps listing failures.
	errorReadDirectoryFormat = "reading directory %s: %w"
	// summaryMessage is logged at debug level once a traversal completes.
	summaryMessage = "tree traversal finished"
)

// DirectoryListing holds the filtered and sorted children of one directory.
type DirectoryListing struct {
	Directories []types.Entry
	Files       []types.Entry
}

// Summary counts what a traversal printed and how many directories failed.
type Summary struct {
	Directories  int
	Files        int
	ReadFailures int
}

func (summary *Summary) add(other Summary) {
	summary.Directories += other.Directories
	summary.Files += other.Files
	summary.ReadFailures += other.ReadFailures
}

// Printer writes directory trees to an output writer.
// A Printer is not safe for concurrent use.
type Printer struct {
	output        io.Writer
	logger        *zap.Logger
	sorter        *entrySorter
	readDirectory func(directoryPath string) ([]fs.DirEntry, error)
}

// NewPrinter returns a Printer writing tree lines to output and read failures to logger.
func NewPrinter(output io.Writer, logger *zap.Logger) *Printer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Printer{
		output:        output,
		logger:        logger,
		sorter:        newEntrySorter(),
		readDirectory: os.ReadDir,
	}
}

// Print renders the contents of directoryPath starting at the given nesting level.
// Subdirectories are printed and fully expanded before the files of the same
// directory. A directory that cannot be read is reported through the logger and
// skipped without affecting its siblings.
func (printer *Printer) Print(directoryPath string, level int, includeFiles bool) Summary {
	summary := printer.printLevel(directoryPath, level, includeFiles)
	printer.logger.Debug(summaryMessage,
		zap.String("path", directoryPath),
		zap.Int("directories", summary.Directories),
		zap.Int("files", summary.Files),
		zap.Int("read_failures", summary.ReadFailures),
	)
	return summary
}

func (printer *Printer) printLevel(directoryPath string, level int, includeFiles bool) Summary {
	var summary Summary

	listing, readDirectoryError := printer.listDirectory(directoryPath, includeFiles)
	if readDirectoryError != nil {
		printer.logger.Warn(fmt.Sprintf(warningReadDirectoryFormat, directoryPath, rootCause(readDirectoryError)))
		summary.ReadFailures++
		return summary
	}

	indentation := strings.Repeat(indentUnit, level)
	for _, directoryEntry := range listing.Directories {
		printer.printEntry(indentation, directoryEntry)
		summary.Directories++
		childPath := filepath.Join(directoryPath, directoryEntry.Name)
		summary.add(printer.printLevel(childPath, level+1, includeFiles))
	}
	for _, fileEntry := range listing.Files {
		printer.printEntry(indentation, fileEntry)
		summary.Files++
	}
	return summary
}

// printEntry writes one indented line; files carry the file marker.
func (printer *Printer) printEntry(indentation string, entry types.Entry) {
	if entry.Kind == types.EntryKindFile {
		fmt.Fprintln(printer.output, indentation+fileMarker+entry.Name)
		return
	}
	fmt.Fprintln(printer.output, indentation+entry.Name)
}

// listDirectory lists directoryPath, drops skipped names and returns the sorted
// directory and file groups. The file group is empty unless includeFiles is set.
func (printer *Printer) listDirectory(directoryPath string, includeFiles bool) (DirectoryListing, error) {
	directoryEntries, readDirectoryError := printer.readDirectory(directoryPath)
	if readDirectoryError != nil {
		return DirectoryListing{}, fmt.Errorf(errorReadDirectoryFormat, directoryPath, readDirectoryError)
	}

	var listing DirectoryListing
	for _, directoryEntry := range directoryEntries {
		entryName := directoryEntry.Name()
		if IsSkipped(entryName) {
			continue
		}
		entryKind, recognized := classifyEntry(directoryPath, directoryEntry)
		if !recognized {
			continue
		}
		entry := types.Entry{Name: entryName, Kind: entryKind}
		switch entry.Kind {
		case types.EntryKindDirectory:
			listing.Directories = append(listing.Directories, entry)
		case types.EntryKindFile:
			if includeFiles {
				listing.Files = append(listing.Files, entry)
			}
		}
	}

	printer.sorter.sortEntries(listing.Directories)
	printer.sorter.sortEntries(listing.Files)
	return listing, nil
}

// classifyEntry maps a directory entry onto a directory or a regular file.
// Symbolic links are resolved to their targets; dangling links and special
// files are not recognized.
func classifyEntry(directoryPath string, directoryEntry fs.DirEntry) (types.EntryKind, bool) {
	entryMode := directoryEntry.Type()
	if entryMode&fs.ModeSymlink != 0 {
		targetInfo, statError := os.Stat(filepath.Join(directoryPath, directoryEntry.Name()))
		if statError != nil {
			return 0, false
		}
		entryMode = targetInfo.Mode().Type()
	}
	switch {
	case entryMode.IsDir():
		return types.EntryKindDirectory, true
	case entryMode.IsRegular():
		return types.EntryKindFile, true
	default:
		return 0, false
	}
}

// rootCause returns the operating system error beneath any wrapping and path context.
func rootCause(err error) error {
	var pathError *fs.PathError
	if errors.As(err, &pathError) {
		return pathError.Err
	}
	return err
}
