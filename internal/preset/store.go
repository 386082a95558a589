package preset

import (
	"encoding/json"
	"fmt"
	"iter"
	"os"
	"path/filepath"

	"github.com/wethinkt/gnomefavs/internal/debuglog"
)

// Store reads and writes the whole collection file on every operation.
// There is no locking: concurrent writers race and the last one wins.
type Store struct {
	path string
}

// NewStore returns a store backed by the file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// ReadAll parses the collection file.
// A missing file yields an error wrapping fs.ErrNotExist.
func (s *Store) ReadAll() (Collection, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read presets: %w", err)
	}

	var c Collection
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("%w in %s: %v", ErrMalformed, s.path, err)
	}
	// A literal JSON null decodes to a nil map.
	if c == nil {
		return nil, fmt.Errorf("%w in %s: not a JSON object", ErrMalformed, s.path)
	}

	debuglog.Log.Debug("read presets", "path", s.path, "count", c.Len())
	return c, nil
}

// WriteAll replaces the collection file with c.
// The data is written to a sibling temp file and renamed over the target.
func (s *Store) WriteAll(c Collection) error {
	if c == nil {
		c = Collection{}
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("encode presets: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("write presets: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write presets: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write presets: %w", err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write presets: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write presets: %w", err)
	}

	debuglog.Log.Debug("wrote presets", "path", s.path, "count", c.Len())
	return nil
}

// Upsert stores value under name and writes the collection back.
func (s *Store) Upsert(name, value string) error {
	c, err := s.ReadAll()
	if err != nil {
		return err
	}
	c.Set(name, value)
	return s.WriteAll(c)
}

// Delete removes name and writes the collection back.
func (s *Store) Delete(name string) error {
	c, err := s.ReadAll()
	if err != nil {
		return err
	}
	if err := c.Delete(name); err != nil {
		return fmt.Errorf("%w: %q", err, name)
	}
	return s.WriteAll(c)
}

// Names reads the collection and yields its preset names in sorted order.
func (s *Store) Names() (iter.Seq[string], error) {
	c, err := s.ReadAll()
	if err != nil {
		return nil, err
	}
	return c.Names(), nil
}
