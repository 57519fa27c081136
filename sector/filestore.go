package sector

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"
)

// fileDoc is the on-disk shape of a dataset
type fileDoc struct {
	Sectors []Sector `toml:"sector"`
}

// FileStore is a TOML-backed Store. The whole dataset is held in
// memory and rewritten atomically on every Save; datasets are small
// (hundreds of sectors) so this stays cheap.
type FileStore struct {
	mu      sync.Mutex
	path    string
	sectors []Sector
	index   map[string]int
}

// OpenFileStore loads a dataset file. A missing file yields an empty
// store that materializes on first Save.
func OpenFileStore(path string) (*FileStore, error) {
	fs := &FileStore{
		path:  path,
		index: make(map[string]int),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fs, nil
		}
		return nil, fmt.Errorf("read dataset: %w", err)
	}

	var doc fileDoc
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse dataset %s: %w", path, err)
	}

	fs.sectors = doc.Sectors
	for i := range fs.sectors {
		fs.index[fs.sectors[i].Address] = i
	}
	return fs, nil
}

// GetAll returns a copy of the full known set
func (f *FileStore) GetAll() ([]Sector, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]Sector, len(f.sectors))
	copy(out, f.sectors)
	return out, nil
}

// Save upserts by address and rewrites the dataset file
func (f *FileStore) Save(s Sector) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if i, ok := f.index[s.Address]; ok {
		f.sectors[i] = s
	} else {
		f.index[s.Address] = len(f.sectors)
		f.sectors = append(f.sectors, s)
	}
	return f.flushLocked()
}

// flushLocked writes via a temp file and rename so readers never see a
// partial dataset
func (f *FileStore) flushLocked() error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("dataset dir: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".sectors-*.toml")
	if err != nil {
		return fmt.Errorf("dataset temp file: %w", err)
	}

	enc := toml.NewEncoder(tmp)
	if err := enc.Encode(fileDoc{Sectors: f.sectors}); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("encode dataset: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close dataset temp: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace dataset: %w", err)
	}
	return nil
}
