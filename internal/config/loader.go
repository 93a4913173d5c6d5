package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"
)

// ErrRejected wraps the error of a check that refused a reloaded config.
var ErrRejected = errors.New("config rejected")

// Loader reads a YAML config file and watches it for changes. A reloaded
// config must pass every registered check before Config returns it.
type Loader struct {
	path     string
	reloadMu sync.Mutex // serializes Reload so checks and callbacks see one candidate at a time
	mu       sync.RWMutex
	current  *Config
	checks   []func(*Config) error
	onChange []func(*Config)
	watcher  *fsnotify.Watcher
}

// NewLoader creates a Loader and performs the initial load.
func NewLoader(path string) (*Loader, error) {
	l := &Loader{path: path}
	cfg, err := l.load()
	if err != nil {
		return nil, err
	}
	l.current = cfg
	return l, nil
}

// Config returns the current (latest) configuration.
func (l *Loader) Config() *Config {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.current
}

// Check registers fn to vet every reloaded config before it is published.
// Checks run in registration order; the first error rejects the reload.
func (l *Loader) Check(fn func(*Config) error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.checks = append(l.checks, fn)
}

// OnChange registers a callback invoked after a reloaded config is published.
func (l *Loader) OnChange(fn func(*Config)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.onChange = append(l.onChange, fn)
}

// Watch starts a background goroutine that hot-reloads the config on file changes.
// Call the returned stop function to clean up.
func (l *Loader) Watch() (stop func(), err error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config watcher: %w", err)
	}
	if err := w.Add(l.path); err != nil {
		w.Close()
		return nil, fmt.Errorf("config watcher add %s: %w", l.path, err)
	}
	l.watcher = w

	done := make(chan struct{})
	go func() {
		defer w.Close()
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
					if _, err := l.Reload(); err != nil {
						slog.Warn("config reload failed, keeping previous config", "path", l.path, "err", err)
					}
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				slog.Warn("config watcher error", "err", err)
			case <-done:
				return
			}
		}
	}()

	return func() { close(done) }, nil
}

// Reload forces an immediate re-read of the config file. A config that fails
// a check is discarded and the error wraps ErrRejected; the previous config
// stays current.
func (l *Loader) Reload() (*Config, error) {
	l.reloadMu.Lock()
	defer l.reloadMu.Unlock()

	cfg, err := l.load()
	if err != nil {
		return nil, err
	}

	l.mu.RLock()
	checks := make([]func(*Config) error, len(l.checks))
	copy(checks, l.checks)
	l.mu.RUnlock()
	for _, check := range checks {
		if err := check(cfg); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrRejected, err)
		}
	}

	l.mu.Lock()
	l.current = cfg
	callbacks := make([]func(*Config), len(l.onChange))
	copy(callbacks, l.onChange)
	l.mu.Unlock()
	for _, fn := range callbacks {
		fn(cfg)
	}
	return cfg, nil
}

func (l *Loader) load() (*Config, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", l.path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", l.path, err)
	}
	return cfg, nil
}

// Parse decodes YAML and applies defaults. It does not validate.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	applyDefaults(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Receiver.EventWorkers == 0 {
		cfg.Receiver.EventWorkers = 16
	}
	if cfg.Receiver.QueueDepth == 0 {
		cfg.Receiver.QueueDepth = 4096
	}
	if cfg.Receiver.EventTimeoutMs == 0 {
		cfg.Receiver.EventTimeoutMs = 5000
	}
	if cfg.Receiver.MaxBodyBytes == 0 {
		cfg.Receiver.MaxBodyBytes = 1 << 20
	}
	if cfg.Receiver.MaxBatch == 0 {
		cfg.Receiver.MaxBatch = 100
	}
	if cfg.DeadLetter.Driver == "" {
		cfg.DeadLetter.Driver = "memory"
	}
	if cfg.DeadLetter.Key == "" {
		cfg.DeadLetter.Key = "payhook:deadletter"
	}
	if cfg.DeadLetter.MaxLen == 0 {
		cfg.DeadLetter.MaxLen = 1000
	}
}
