package dataset

import (
	"encoding/json"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"emojimenu/internal/domain"
)

// fileEntry is one entry of an emoji-data style JSON file
type fileEntry struct {
	Name       string   `json:"name"`
	ShortName  string   `json:"short_name"`
	ShortNames []string `json:"short_names"`
	Category   string   `json:"category"`
	Unified    string   `json:"unified"`
	Char       string   `json:"char"`
}

// FileLoader returns a loader reading an emoji-data JSON file at path
func FileLoader(path string) Loader {
	return func() (*Table, error) {
		return LoadFile(path)
	}
}

// LoadFile reads an emoji-data JSON array. Entries without a usable
// character are skipped.
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read dataset file")
	}

	var entries []fileEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, errors.Wrapf(err, "failed to parse dataset file %s", path)
	}

	title := cases.Title(language.English)
	records := make([]domain.EmojiRecord, 0, len(entries))
	for _, e := range entries {
		char := e.Char
		if char == "" {
			char, err = decodeUnified(e.Unified)
			if err != nil {
				continue
			}
		}

		name := strings.TrimSpace(e.Name)
		if name == "" {
			name = strings.ReplaceAll(e.ShortName, "_", " ")
		}
		if name == "" {
			continue
		}
		// emoji-data ships upper-case names
		if name == strings.ToUpper(name) {
			name = title.String(strings.ToLower(name))
		}

		aliases := e.ShortNames
		if len(aliases) == 0 && e.ShortName != "" {
			aliases = []string{e.ShortName}
		}

		records = append(records, domain.EmojiRecord{
			Name:         name,
			Category:     e.Category,
			Character:    char,
			ShortAliases: aliases,
		})
	}
	return NewTable(records), nil
}

// decodeUnified turns "2764-FE0F" into the glyph it names
func decodeUnified(unified string) (string, error) {
	if unified == "" {
		return "", errors.New("empty code point sequence")
	}
	var b strings.Builder
	for _, part := range strings.Split(unified, "-") {
		cp, err := strconv.ParseUint(part, 16, 32)
		if err != nil {
			return "", errors.Wrapf(err, "invalid code point %q", part)
		}
		if cp > utf8.MaxRune || !utf8.ValidRune(rune(cp)) {
			return "", errors.Errorf("code point %q out of range", part)
		}
		b.WriteRune(rune(cp))
	}
	return b.String(), nil
}
