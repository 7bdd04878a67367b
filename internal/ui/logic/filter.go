package logic

import (
	"sort"
	"strings"

	"emojimenu/internal/dataset"
	"emojimenu/internal/domain"
)

// NormalizeTerm trims and case-folds a raw search field value
func NormalizeTerm(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// MatchesCategory checks if a record belongs to the selected category
func MatchesCategory(record domain.EmojiRecord, category string) bool {
	return category == domain.AllCategory || record.Category == category
}

// MatchesSearch checks if a normalized term is a substring of the record's
// name or of any of its short aliases
func MatchesSearch(record domain.EmojiRecord, term string) bool {
	if term == "" {
		return true
	}
	if strings.Contains(strings.ToLower(record.Name), term) {
		return true
	}
	for _, alias := range record.ShortAliases {
		if strings.Contains(strings.ToLower(alias), term) {
			return true
		}
	}
	return false
}

// Filter returns the records of table matching both the term and the
// category, sorted by name. Equal names keep their dataset order.
func Filter(table *dataset.Table, term, category string) []domain.VisibleItem {
	term = NormalizeTerm(term)

	var matched []domain.EmojiRecord
	for _, record := range table.Records() {
		if !MatchesCategory(record, category) {
			continue
		}
		if !MatchesSearch(record, term) {
			continue
		}
		matched = append(matched, record)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Name < matched[j].Name
	})

	items := make([]domain.VisibleItem, len(matched))
	for i, record := range matched {
		items[i] = domain.VisibleItem{Name: record.Name, Character: record.Character}
	}
	return items
}
