package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"school-service/pkg/response"
)

// collection is one resource persisted as a single JSON array file. Every
// mutation rewrites the whole file.
type collection[T any] struct {
	path  string
	id    func(T) string
	text  func(T) string
	mu    sync.Mutex
	items []T
}

func newCollection[T any](dir, name string, id func(T) string, text func(T) string) (*collection[T], error) {
	const op = "storage.jsonfile.newCollection"

	c := &collection[T]{
		path: filepath.Join(dir, name+".json"),
		id:   id,
		text: text,
	}

	if err := c.load(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return c, nil
}

func (c *collection[T]) load() error {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			c.items = []T{}
			return nil
		}
		return err
	}

	return json.Unmarshal(data, &c.items)
}

// persist writes through a temp file so a failed write cannot truncate the
// collection on disk.
func (c *collection[T]) persist() error {
	data, err := json.MarshalIndent(c.items, "", "  ")
	if err != nil {
		return err
	}

	tmp := c.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}

	return os.Rename(tmp, c.path)
}

func (c *collection[T]) list() ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]T, len(c.items))
	copy(out, c.items)

	return out, nil
}

func (c *collection[T]) get(id string) (*T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.id(c.items[i]) == id {
			item := c.items[i]
			return &item, nil
		}
	}

	return nil, response.ErrNotFound
}

func (c *collection[T]) search(query string) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	query = strings.ToLower(query)

	out := []T{}
	for i := range c.items {
		if strings.Contains(strings.ToLower(c.text(c.items[i])), query) {
			out = append(out, c.items[i])
		}
	}

	return out, nil
}

func (c *collection[T]) create(item T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = append(c.items, item)

	if err := c.persist(); err != nil {
		c.items = c.items[:len(c.items)-1]
		return err
	}

	return nil
}

func (c *collection[T]) update(id string, item T) (*T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.id(c.items[i]) == id {
			prev := c.items[i]
			c.items[i] = item

			if err := c.persist(); err != nil {
				c.items[i] = prev
				return nil, err
			}

			return &item, nil
		}
	}

	return nil, response.ErrNotFound
}

func (c *collection[T]) delete(id string) (*T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.id(c.items[i]) == id {
			removed := c.items[i]
			rest := append(c.items[:i:i], c.items[i+1:]...)

			prev := c.items
			c.items = rest

			if err := c.persist(); err != nil {
				c.items = prev
				return nil, err
			}

			return &removed, nil
		}
	}

	return nil, response.ErrNotFound
}
