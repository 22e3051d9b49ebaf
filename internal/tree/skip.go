package tree

// skippedNames lists entry names that never appear in a rendered tree.
var skippedNames = map[string]struct{}{
	".git":         {},
	"node_modules": {},
	".idea":        {},
	".vscode":      {},
	".next":        {},
	"lib":          {},
	"libs":         {},
	".DS_Store":    {},
}

// IsSkipped reports whether an entry with the given base name is excluded.
// The comparison is exact and case-sensitive.
func IsSkipped(entryName string) bool {
	_, skipped := skippedNames[entryName]
	return skipped
}
