package dataset

import (
	"sort"

	"emojimenu/internal/domain"
)

// CategoryList is "All" followed by the sorted distinct categories of a table
type CategoryList []string

// Categories derives the category list of a table. Uncategorized records do
// not contribute an entry.
func Categories(t *Table) CategoryList {
	seen := make(map[string]bool)
	var names []string
	for _, r := range t.Records() {
		if r.Category == "" || seen[r.Category] {
			continue
		}
		seen[r.Category] = true
		names = append(names, r.Category)
	}
	sort.Strings(names)

	list := make(CategoryList, 0, len(names)+1)
	list = append(list, domain.AllCategory)
	for _, name := range names {
		// a dataset category literally named "All" is already covered
		if name != domain.AllCategory {
			list = append(list, name)
		}
	}
	return list
}

// IndexOf returns the position of name, or -1
func (l CategoryList) IndexOf(name string) int {
	for i, c := range l {
		if c == name {
			return i
		}
	}
	return -1
}

// Contains reports whether name is in the list
func (l CategoryList) Contains(name string) bool {
	return l.IndexOf(name) >= 0
}

// At returns the category at index i, or false if i is out of range
func (l CategoryList) At(i int) (string, bool) {
	if i < 0 || i >= len(l) {
		return "", false
	}
	return l[i], true
}
