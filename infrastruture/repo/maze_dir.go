package repo

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	dmn "github.com/beka-birhanu/vinom-maze-solver/domain"
	"github.com/beka-birhanu/vinom-maze-solver/service/i"
)

const mazeFileExt = ".txt"

// DirSource keeps mazes as text files in a single directory. A maze named
// "first" lives in "<dir>/first.txt".
type DirSource struct {
	dir string
}

var _ i.MazeSource = &DirSource{}

// NewDirSource creates a DirSource reading from dir.
func NewDirSource(dir string) *DirSource {
	return &DirSource{dir: dir}
}

// List returns the names of the maze files in the directory, sorted.
func (d *DirSource) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(d.dir)
	if err != nil {
		return nil, fmt.Errorf("listing maze directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != mazeFileExt {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), mazeFileExt))
	}
	sort.Strings(names)
	return names, nil
}

// Load reads the named maze file.
func (d *DirSource) Load(ctx context.Context, name string) (string, error) {
	path, err := d.path(name)
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", dmn.ErrMazeNotFound, name)
		}
		return "", fmt.Errorf("reading maze %s: %w", name, err)
	}
	return string(data), nil
}

// Save writes the named maze file, replacing an existing one.
func (d *DirSource) Save(ctx context.Context, name, text string) error {
	path, err := d.path(name)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return fmt.Errorf("creating maze directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("writing maze %s: %w", name, err)
	}
	return nil
}

// path maps a maze name to its file, refusing names that leave the directory.
func (d *DirSource) path(name string) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}
	return filepath.Join(d.dir, name+mazeFileExt), nil
}

// ValidateName rejects empty names and names containing path elements.
func ValidateName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: %q", dmn.ErrInvalidMazeName, name)
	}
	return nil
}
