package icons

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/fsnotify/fsnotify"

	"deploykit/observability"
)

const watchDebounce = 100 * time.Millisecond

// Store persists per-icon overrides in a TOML file keyed by device type.
// It can watch the file and reload when an external editor (or the tuner)
// rewrites it.
type Store struct {
	path string
	log  observability.Logger

	mu      sync.RWMutex
	entries map[string]Override

	watcher  *fsnotify.Watcher
	debounce *time.Timer
	stopCh   chan struct{}
	onChange func()
	changeMu sync.Mutex
}

// NewStore creates a store for the given file path. The file does not need
// to exist yet.
func NewStore(path string, log observability.Logger) *Store {
	if log == nil {
		log = observability.NopLogger{}
	}
	return &Store{
		path:    path,
		log:     log,
		entries: make(map[string]Override),
	}
}

// Load reads the overrides file. A missing file leaves the store empty.
func (s *Store) Load() error {
	entries := make(map[string]Override)
	if _, err := toml.DecodeFile(s.path, &entries); err != nil {
		if os.IsNotExist(err) {
			s.mu.Lock()
			s.entries = make(map[string]Override)
			s.mu.Unlock()
			return nil
		}
		return fmt.Errorf("decode overrides %s: %w", s.path, err)
	}
	s.mu.Lock()
	s.entries = entries
	s.mu.Unlock()
	s.log.Debug("overrides loaded", observability.String("path", s.path), observability.Int("count", len(entries)))
	return nil
}

// Get returns the override for a device type, if any.
func (s *Store) Get(subject string) (Override, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ov, ok := s.entries[subject]
	return ov, ok
}

// Set records an override and writes the file.
func (s *Store) Set(subject string, ov Override) error {
	s.mu.Lock()
	s.entries[subject] = ov
	s.mu.Unlock()
	return s.save()
}

// Delete removes an override and writes the file.
func (s *Store) Delete(subject string) error {
	s.mu.Lock()
	delete(s.entries, subject)
	s.mu.Unlock()
	return s.save()
}

func (s *Store) save() error {
	s.mu.RLock()
	entries := make(map[string]Override, len(s.entries))
	for k, v := range s.entries {
		entries[k] = v
	}
	s.mu.RUnlock()

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(s.path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(entries)
}

// Watch reloads the store whenever the overrides file changes and then
// calls onChange. Events are debounced because editors fire several write
// events per save.
func (s *Store) Watch(onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	dir := filepath.Dir(s.path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return err
	}
	s.watcher = watcher
	s.onChange = onChange
	s.stopCh = make(chan struct{})

	go s.watchLoop()
	return nil
}

func (s *Store) watchLoop() {
	for {
		select {
		case <-s.stopCh:
			return
		case ev, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != filepath.Clean(s.path) {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			s.scheduleReload()
		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			s.log.Warn("overrides watch error", observability.Error("err", err))
		}
	}
}

func (s *Store) scheduleReload() {
	s.changeMu.Lock()
	defer s.changeMu.Unlock()
	if s.debounce != nil {
		s.debounce.Stop()
	}
	s.debounce = time.AfterFunc(watchDebounce, func() {
		if err := s.Load(); err != nil {
			s.log.Error("overrides reload failed", observability.Error("err", err))
			return
		}
		if s.onChange != nil {
			s.onChange()
		}
	})
}

// Close stops watching. The store remains usable for Get/Set.
func (s *Store) Close() error {
	if s.watcher == nil {
		return nil
	}
	close(s.stopCh)
	err := s.watcher.Close()
	s.watcher = nil
	return err
}
