package world

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

//go:embed maps/*.yaml
var embeddedMaps embed.FS

// ErrMapNotFound is returned when no map file has the requested name.
var ErrMapNotFound = errors.New("world: map not found")

var validName = regexp.MustCompile(`^[a-z0-9_-]+$`)

// Loader reads maps from a directory, falling back to the maps built into
// the binary. Parsed definitions are cached until the file changes.
type Loader struct {
	dir    string
	logger *log.Logger

	mu    sync.Mutex
	cache map[string]*Definition
}

// NewLoader creates a loader. An empty dir loads built-in maps only.
func NewLoader(dir string, logger *log.Logger) *Loader {
	return &Loader{
		dir:    dir,
		logger: logger,
		cache:  make(map[string]*Definition),
	}
}

// Dir returns the map directory, or "" when only built-in maps are used.
func (l *Loader) Dir() string {
	return l.dir
}

// Load returns a fresh map built from the named definition.
func (l *Loader) Load(name string) (*TileMap, error) {
	def, err := l.Definition(name)
	if err != nil {
		return nil, err
	}
	return def.Build()
}

// Definition returns the parsed definition of a map.
func (l *Loader) Definition(name string) (*Definition, error) {
	if !validName.MatchString(name) {
		return nil, fmt.Errorf("%w: %q", ErrMapNotFound, name)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if def, ok := l.cache[name]; ok {
		return def, nil
	}
	data, err := l.read(name)
	if err != nil {
		return nil, err
	}
	def, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("world: load %s: %w", name, err)
	}
	l.cache[name] = def
	if l.logger != nil {
		l.logger.Debug("map loaded", "name", name, "cols", len([]rune(def.Rows[0])), "rows", len(def.Rows))
	}
	return def, nil
}

// Names lists every available map, built-in and on disk.
func (l *Loader) Names() ([]string, error) {
	set := make(map[string]bool)
	entries, err := fs.ReadDir(embeddedMaps, "maps")
	if err != nil {
		return nil, fmt.Errorf("world: list built-in maps: %w", err)
	}
	for _, e := range entries {
		if name, ok := mapName(e.Name()); ok {
			set[name] = true
		}
	}
	if l.dir != "" {
		entries, err := os.ReadDir(l.dir)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("world: list maps in %s: %w", l.dir, err)
		}
		for _, e := range entries {
			if name, ok := mapName(e.Name()); ok && !e.IsDir() {
				set[name] = true
			}
		}
	}

	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Invalidate drops a cached definition so the next load rereads it.
func (l *Loader) Invalidate(name string) {
	l.mu.Lock()
	delete(l.cache, name)
	l.mu.Unlock()
}

// Watch invalidates cached maps whenever their files change on disk.
// It returns once the watcher is running and stops when ctx is done.
func (l *Loader) Watch(ctx context.Context) error {
	if l.dir == "" {
		return fmt.Errorf("world: watch: no map directory configured")
	}
	w, err := NewWatcher(l.dir)
	if err != nil {
		return fmt.Errorf("world: watch %s: %w", l.dir, err)
	}
	go func() {
		defer w.Close()
		for {
			select {
			case path, ok := <-w.Events:
				if !ok {
					return
				}
				if name, ok := mapName(filepath.Base(path)); ok {
					l.Invalidate(name)
					if l.logger != nil {
						l.logger.Info("map changed", "name", name)
					}
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				if l.logger != nil {
					l.logger.Warn("map watcher", "err", err)
				}
			case <-ctx.Done():
				return
			}
		}
	}()
	return nil
}

func (l *Loader) read(name string) ([]byte, error) {
	if l.dir != "" {
		for _, ext := range [...]string{".yaml", ".yml"} {
			data, err := os.ReadFile(filepath.Join(l.dir, name+ext))
			if err == nil {
				return data, nil
			}
			if !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("world: read %s%s: %w", name, ext, err)
			}
		}
	}
	data, err := embeddedMaps.ReadFile("maps/" + name + ".yaml")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMapNotFound, name)
		}
		return nil, fmt.Errorf("world: read built-in %s: %w", name, err)
	}
	return data, nil
}

func mapName(file string) (string, bool) {
	ext := strings.ToLower(filepath.Ext(file))
	if ext != ".yaml" && ext != ".yml" {
		return "", false
	}
	name := strings.TrimSuffix(file, filepath.Ext(file))
	return name, validName.MatchString(name)
}
