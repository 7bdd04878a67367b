package dataset

import (
	"regexp"
	"strings"

	"github.com/forPelevin/gomoji"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"emojimenu/internal/domain"
)

// versionPrefix matches the "E1.0 " emoji version tag some Unicode names carry
var versionPrefix = regexp.MustCompile(`^E\d+(\.\d+)?\s+`)

// LoadBundled builds the table from the dataset compiled into gomoji
func LoadBundled() (*Table, error) {
	return FromGomoji(gomoji.AllEmojis()), nil
}

// FromGomoji converts gomoji entries into emoji records
func FromGomoji(emojis []gomoji.Emoji) *Table {
	title := cases.Title(language.English)
	records := make([]domain.EmojiRecord, 0, len(emojis))
	for _, e := range emojis {
		if e.Character == "" {
			continue
		}
		name := versionPrefix.ReplaceAllString(strings.TrimSpace(e.UnicodeName), "")
		if name == "" {
			name = strings.ReplaceAll(e.Slug, "-", " ")
		}
		records = append(records, domain.EmojiRecord{
			Name:         title.String(name),
			Category:     e.Group,
			Character:    e.Character,
			ShortAliases: gomojiAliases(e),
		})
	}
	return NewTable(records)
}

func gomojiAliases(e gomoji.Emoji) []string {
	var aliases []string
	if e.Slug != "" {
		aliases = append(aliases, strings.ReplaceAll(e.Slug, "-", "_"))
	}
	if e.SubGroup != "" {
		aliases = append(aliases, e.SubGroup)
	}
	return aliases
}
