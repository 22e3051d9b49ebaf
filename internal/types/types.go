// Package types holds the request and entry types shared by the dirtree packages.
package types

const (
	// DefaultTargetPath is the directory rendered when no path argument is given.
	DefaultTargetPath = "."
)

// EntryKind distinguishes directories from files in a directory listing.
type EntryKind int

const (
	EntryKindDirectory EntryKind = iota
	EntryKindFile
)

// Entry is a single child of a directory that survived filtering.
type Entry struct {
	Name string
	Kind EntryKind
}

// InvocationRequest is the parsed form of the command line.
type InvocationRequest struct {
	TargetPath   string
	IncludeFiles bool
	ShowHelp     bool
}
