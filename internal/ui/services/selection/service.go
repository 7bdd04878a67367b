package selection

import (
	log "github.com/sirupsen/logrus"

	"emojimenu/internal/config"
	"emojimenu/internal/dataset"
	"emojimenu/internal/domain"
)

// Store remembers the last chosen category across sessions.
// Persistence failures never reach the caller.
type Store struct {
	kv         config.Store
	categories dataset.CategoryList
}

// NewStore creates a selection store validating against categories
func NewStore(kv config.Store, categories dataset.CategoryList) *Store {
	return &Store{kv: kv, categories: categories}
}

// Load returns the persisted category, or "All" if it is unreadable or no
// longer one of the known categories
func (s *Store) Load() string {
	name, err := s.kv.Get(config.KeyLastCategory, domain.AllCategory)
	if err != nil {
		log.Warnf("Could not read last category: %v", err)
		return domain.AllCategory
	}
	if !s.categories.Contains(name) {
		log.Debugf("Stored category %q is not available, using %s", name, domain.AllCategory)
		return domain.AllCategory
	}
	return name
}

// Save persists name unconditionally
func (s *Store) Save(name string) {
	if err := s.kv.Set(config.KeyLastCategory, name); err != nil {
		log.Warnf("Could not save last category %q: %v", name, err)
	}
}
