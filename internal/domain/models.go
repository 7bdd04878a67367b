package domain

// AllCategory is the pseudo-category that matches every record
const AllCategory = "All"

// EmojiRecord is one entry of the emoji dataset
type EmojiRecord struct {
	Name         string
	Category     string   // "" if uncategorized
	Character    string   // glyph(s) copied to the clipboard, never interpreted
	ShortAliases []string // searched, never displayed
}

// VisibleItem is a row of the emoji list as shown to the user
type VisibleItem struct {
	Name      string
	Character string
}
