// Package dataset holds the read-only emoji table and the category index
// derived from it. Both are built once per process and shared by every dialog.
package dataset

import (
	"sync"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"emojimenu/internal/domain"
)

// ErrEmptyDataset is returned when a loader produced no records
var ErrEmptyDataset = errors.New("emoji dataset is empty")

// Table is an immutable view over the emoji records
type Table struct {
	records []domain.EmojiRecord
}

// NewTable creates a table from records, keeping their order
func NewTable(records []domain.EmojiRecord) *Table {
	owned := make([]domain.EmojiRecord, len(records))
	copy(owned, records)
	return &Table{records: owned}
}

// Len returns the number of records
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.records)
}

// Records returns the records in dataset order. Callers must not modify them.
func (t *Table) Records() []domain.EmojiRecord {
	if t == nil {
		return nil
	}
	return t.records
}

// Loader produces a table. It is called at most once by a Source.
type Loader func() (*Table, error)

// Source loads the table lazily and caches the result, including a failure
type Source struct {
	once       sync.Once
	load       Loader
	table      *Table
	categories CategoryList
	err        error
}

// NewSource creates a source around a loader
func NewSource(load Loader) *Source {
	return &Source{load: load}
}

// Get returns the shared table and its category list
func (s *Source) Get() (*Table, CategoryList, error) {
	s.once.Do(func() {
		if s.load == nil {
			s.err = errors.New("no emoji dataset configured")
			return
		}
		table, err := s.load()
		if err != nil {
			s.err = errors.Wrap(err, "failed to load emoji dataset")
			return
		}
		if table.Len() == 0 {
			s.err = ErrEmptyDataset
			return
		}
		s.table = table
		s.categories = Categories(table)
		log.Printf("Loaded %d emojis in %d categories", table.Len(), len(s.categories)-1)
	})
	return s.table, s.categories, s.err
}
