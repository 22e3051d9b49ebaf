// Package utils contains helpers shared by the dirtree packages.
package utils

const (
	// ApplicationExecutionFailedMessage prefixes fatal command errors.
	ApplicationExecutionFailedMessage = "application execution failed"
)
