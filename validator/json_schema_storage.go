package validator

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"
)

// Storage abstraction
type Storage interface {
	Get(schemaID string) (string, error)
	Store(schemaID string, schema string) error
	IDs() []string
}

type inMemStorage struct {
	mu      sync.RWMutex
	storage map[string]string
}

// NewInMemStorage constructor
func NewInMemStorage() Storage {
	return &inMemStorage{storage: make(map[string]string)}
}

// NewFSStorage load all json schema under rootDir of fsys into in memory storage
func NewFSStorage(fsys fs.FS, rootDir string) (Storage, error) {
	inMem := NewInMemStorage()

	err := fs.WalkDir(fsys, rootDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		fileName := d.Name()
		if strings.HasSuffix(fileName, ".json") {
			s, err := fs.ReadFile(fsys, p)
			if err != nil {
				return fmt.Errorf("%s: %w", fileName, err)
			}

			var data map[string]interface{}
			if err := json.Unmarshal(s, &data); err != nil {
				return fmt.Errorf("%s: %w", fileName, err)
			}
			id, ok := data["$id"].(string)
			if !ok {
				id = strings.Trim(strings.TrimSuffix(strings.TrimPrefix(p, path.Clean(rootDir)), ".json"), "/") // take filename without extension
			}
			inMem.Store(id, string(s))
		}
		return nil
	})

	return inMem, err
}

func (i *inMemStorage) Get(schemaID string) (string, error) {
	i.mu.RLock()
	defer i.mu.RUnlock()

	schema, ok := i.storage[schemaID]
	if !ok {
		return "", fmt.Errorf("schema '%s' not found", schemaID)
	}
	return schema, nil
}

func (i *inMemStorage) Store(schemaID string, schema string) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	i.storage[schemaID] = schema
	return nil
}

func (i *inMemStorage) IDs() []string {
	i.mu.RLock()
	defer i.mu.RUnlock()

	ids := make([]string, 0, len(i.storage))
	for id := range i.storage {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
