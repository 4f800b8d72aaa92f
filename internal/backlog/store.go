package backlog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/TudorHulban/roadmap"
)

var ErrItemNotFound = errors.New("backlog item not found")

// Store keeps the backlog in a single file. It is safe for concurrent use.
type Store struct {
	path   string
	format Format

	mu sync.Mutex
}

func NewStore(path string) (*Store, error) {
	format, errFormat := FormatFromPath(path)
	if errFormat != nil {
		return nil,
			errFormat
	}

	return &Store{
			path:   path,
			format: format,
		},
		nil
}

func (s *Store) Path() string {
	return s.path
}

// Load returns an empty backlog when the file does not exist yet.
func (s *Store) Load() ([]roadmap.WorkItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load()
}

func (s *Store) Save(items []roadmap.WorkItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.save(items)
}

// Put validates the item and replaces the one with the same name, or appends it.
func (s *Store) Put(item roadmap.WorkItem) error {
	if errValidation := item.IsValid(); errValidation != nil {
		return &roadmap.ItemError{
			Kind:  roadmap.ErrInvalidItem,
			Issue: errValidation,
			Name:  item.Name,
			Index: -1,
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items, errLoad := s.load()
	if errLoad != nil {
		return errLoad
	}

	ix := slices.IndexFunc(
		items,
		func(existing roadmap.WorkItem) bool {
			return existing.Name == item.Name
		},
	)

	if ix == -1 {
		items = append(items, item)
	} else {
		items[ix] = item
	}

	return s.save(items)
}

func (s *Store) Remove(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, errLoad := s.load()
	if errLoad != nil {
		return errLoad
	}

	remaining := slices.DeleteFunc(
		items,
		func(existing roadmap.WorkItem) bool {
			return existing.Name == name
		},
	)

	if len(remaining) == len(items) {
		return fmt.Errorf(
			"%w: %q",

			ErrItemNotFound,
			name,
		)
	}

	return s.save(remaining)
}

func (s *Store) load() ([]roadmap.WorkItem, error) {
	data, errRead := os.ReadFile(s.path)
	if errRead != nil {
		if errors.Is(errRead, fs.ErrNotExist) {
			return []roadmap.WorkItem{},
				nil
		}

		return nil,
			fmt.Errorf("read backlog %s: %w", s.path, errRead)
	}

	items, errParse := Parse(data, s.format)
	if errParse != nil {
		return nil,
			fmt.Errorf("parse backlog %s: %w", s.path, errParse)
	}

	return items,
		nil
}

// save writes through a temporary file so readers never see a partial backlog.
func (s *Store) save(items []roadmap.WorkItem) error {
	data, errEncode := Encode(items, s.format)
	if errEncode != nil {
		return errEncode
	}

	if dir := filepath.Dir(s.path); dir != "" {
		if errMkdir := os.MkdirAll(dir, 0755); errMkdir != nil {
			return fmt.Errorf("create backlog directory: %w", errMkdir)
		}
	}

	tmp := s.path + ".tmp"

	if errWrite := os.WriteFile(tmp, data, 0644); errWrite != nil {
		return fmt.Errorf("write backlog %s: %w", tmp, errWrite)
	}

	if errRename := os.Rename(tmp, s.path); errRename != nil {
		return fmt.Errorf("replace backlog %s: %w", s.path, errRename)
	}

	return nil
}
