package tree

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/tyemirov/dirtree/internal/types"
)

// entrySorter orders entries by locale-aware collation of their names.
type entrySorter struct {
	collator *collate.Collator
}

func newEntrySorter() *entrySorter {
	return &entrySorter{collator: collate.New(language.Und)}
}

// sortEntries sorts entries in place. Names that collate equal fall back to
// byte order so repeated runs print identical output.
func (sorter *entrySorter) sortEntries(entries []types.Entry) {
	slices.SortStableFunc(entries, func(left, right types.Entry) int {
		if order := sorter.collator.CompareString(left.Name, right.Name); order != 0 {
			return order
		}
		return strings.Compare(left.Name, right.Name)
	})
}
