package config

import (
	"sync"

	"github.com/pkg/errors"
)

// KeyLastCategory holds the category chosen most recently in the dialog
const KeyLastCategory = "lastCategory"

// Schema declares every persisted key with its default value
var Schema = map[string]string{
	KeyLastCategory: "All",
}

// ErrUnknownKey is returned for keys missing from Schema
var ErrUnknownKey = errors.New("unknown config key")

// Store is a key-value view over persisted state
type Store interface {
	Get(key, def string) (string, error)
	Set(key, value string) error
}

func defaultState() map[string]string {
	state := make(map[string]string, len(Schema))
	for k, v := range Schema {
		state[k] = v
	}
	return state
}

func checkKey(key string) error {
	if _, ok := Schema[key]; !ok {
		return errors.Wrapf(ErrUnknownKey, "%q", key)
	}
	return nil
}

// FileStore persists state in the [state] table of the config file.
// Every Set rereads the file and writes back only the changed key, so
// settings overridden for this run never reach disk.
type FileStore struct {
	mu  sync.Mutex
	svc ConfigService
	cfg *Config
}

// NewFileStore wraps an already loaded config
func NewFileStore(svc ConfigService, cfg *Config) *FileStore {
	if cfg.State == nil {
		cfg.State = defaultState()
	}
	return &FileStore{svc: svc, cfg: cfg}
}

// Get returns the stored value, or def when unset
func (s *FileStore) Get(key, def string) (string, error) {
	if err := checkKey(key); err != nil {
		return def, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if v, ok := s.cfg.State[key]; ok {
		return v, nil
	}
	return def, nil
}

// Set stores value and saves the config file
func (s *FileStore) Set(key, value string) error {
	if err := checkKey(key); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg.State[key] = value

	onDisk, err := s.svc.Load()
	if err != nil {
		return errors.Wrapf(err, "failed to persist %s", key)
	}
	if onDisk.State == nil {
		onDisk.State = defaultState()
	}
	onDisk.State[key] = value
	if err := s.svc.Save(onDisk); err != nil {
		return errors.Wrapf(err, "failed to persist %s", key)
	}
	return nil
}

// MemoryStore keeps state in memory only
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]string
	// SetErr, when set, is returned by every Set
	SetErr error
	// GetErr, when set, is returned by every Get
	GetErr error
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

// Get returns the stored value, or def when unset
func (s *MemoryStore) Get(key, def string) (string, error) {
	if s.GetErr != nil {
		return def, s.GetErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if v, ok := s.values[key]; ok {
		return v, nil
	}
	return def, nil
}

// Set stores value
func (s *MemoryStore) Set(key, value string) error {
	if s.SetErr != nil {
		return s.SetErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}
