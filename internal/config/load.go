package config

import (
	"fmt"
	"sync"

	"github.com/dshills/autoscroll/internal/config/loader"
	"github.com/dshills/autoscroll/internal/config/watcher"
)

// Source describes where a configuration is read from.
type Source struct {
	// Path is the configuration file. Empty means defaults and
	// environment only.
	Path string

	// FS reads Path. Defaults to the OS file system.
	FS loader.FileSystem

	// Environ replaces the process environment when non-nil.
	Environ map[string]string
}

// Load builds a validated configuration from src. A missing file is not an
// error.
func Load(src Source) (*Config, error) {
	cfg := Default()

	if src.Path != "" {
		l, err := loader.ForPath(src.FS, src.Path)
		if err != nil {
			return nil, err
		}
		if _, err := l.LoadInto(src.Path, cfg); err != nil {
			return nil, err
		}
	}

	if err := loader.ApplyEnvFrom(cfg, EnvPrefix, src.Environ); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ChangeFunc receives the new configuration after a successful reload.
type ChangeFunc func(cfg *Config)

// ErrorFunc receives reload failures.
type ErrorFunc func(err error)

// Manager holds the current configuration and reloads it on demand or when
// the file changes.
type Manager struct {
	mu      sync.RWMutex
	src     Source
	current *Config

	onChange []ChangeFunc
	onError  []ErrorFunc

	watcher *watcher.Watcher
}

// NewManager loads the initial configuration from src.
func NewManager(src Source) (*Manager, error) {
	cfg, err := Load(src)
	if err != nil {
		return nil, err
	}
	return &Manager{src: src, current: cfg}, nil
}

// Current returns a copy of the configuration in effect.
func (m *Manager) Current() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current.Clone()
}

// OnChange registers fn to run after every successful reload.
func (m *Manager) OnChange(fn ChangeFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onChange = append(m.onChange, fn)
}

// OnError registers fn to run when a reload fails.
func (m *Manager) OnError(fn ErrorFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onError = append(m.onError, fn)
}

// Reload re-reads the source. On failure the current configuration is kept
// and the error is returned and reported to OnError subscribers.
func (m *Manager) Reload() error {
	cfg, err := Load(m.src)

	m.mu.Lock()
	if err == nil {
		m.current = cfg
	}
	changeFns := append([]ChangeFunc(nil), m.onChange...)
	errorFns := append([]ErrorFunc(nil), m.onError...)
	m.mu.Unlock()

	if err != nil {
		err = fmt.Errorf("reload %s: %w", m.src.Path, err)
		for _, fn := range errorFns {
			fn(err)
		}
		return err
	}
	for _, fn := range changeFns {
		fn(cfg.Clone())
	}
	return nil
}

// Watch reloads the configuration whenever its file changes, until Close.
// Callbacks run on the watcher's goroutine.
func (m *Manager) Watch(opts ...watcher.Option) error {
	if m.src.Path == "" {
		return ErrNoPath
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.watcher != nil {
		return ErrWatcherRunning
	}

	w, err := watcher.New(opts...)
	if err != nil {
		return err
	}
	w.OnChange(func(watcher.Event) {
		_ = m.Reload()
	})
	if err := w.Watch(m.src.Path); err != nil {
		_ = w.Close()
		return fmt.Errorf("watch %s: %w", m.src.Path, err)
	}
	m.watcher = w
	return nil
}

// Close stops watching.
func (m *Manager) Close() error {
	m.mu.Lock()
	w := m.watcher
	m.watcher = nil
	m.mu.Unlock()

	if w == nil {
		return nil
	}
	return w.Close()
}
