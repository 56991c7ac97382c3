package config

import (
	"context"
	"maps"
	"reflect"

	"github.com/fsnotify/fsnotify"

	"github.com/bnema/dozer/internal/logging"
)

// Watch reloads the config file whenever it changes on disk. Subscribers are
// notified only when the decoded configuration differs from the current one;
// an invalid edit is logged and the previous configuration stays in effect.
func (m *Manager) Watch(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return nil
	}

	log := logging.FromContext(ctx).With().Str("component", "config-watcher").Logger()
	m.viper.OnConfigChange(func(e fsnotify.Event) {
		log.Debug().Str("op", e.Op.String()).Str("file", e.Name).Msg("config file event")

		m.mu.Lock()
		changed, err := m.reload()
		if err != nil {
			m.mu.Unlock()
			log.Warn().Err(err).Msg("keeping previous configuration")
			return
		}
		if !changed {
			m.mu.Unlock()
			return
		}
		log.Info().Msg("configuration reloaded")
		m.notifyLocked()
	})
	m.viper.WatchConfig()

	m.watching = true
	return nil
}

// OnConfigChange subscribes fn to configuration changes.
func (m *Manager) OnConfigChange(fn func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.callbacks = append(m.callbacks, fn)
}

// Reload re-reads the config file and notifies subscribers when it changed.
func (m *Manager) Reload() error {
	m.mu.Lock()
	changed, err := m.reload()
	if err != nil || !changed {
		m.mu.Unlock()
		return err
	}
	m.notifyLocked()
	return nil
}

// reload decodes the file into m.config. Callers hold m.mu for write.
func (m *Manager) reload() (bool, error) {
	if err := m.viper.ReadInConfig(); err != nil {
		return false, err
	}
	next, err := m.decode()
	if err != nil {
		return false, err
	}
	if m.config != nil && reflect.DeepEqual(m.config, next) {
		return false, nil
	}
	m.config = next
	return true, nil
}

// notifyLocked releases m.mu, then hands every subscriber its own copy.
func (m *Manager) notifyLocked() {
	snapshot := *m.config
	callbacks := append([]func(*Config){}, m.callbacks...)
	m.mu.Unlock()

	for _, fn := range callbacks {
		cfg := snapshot
		cfg.Performance.Profiles = maps.Clone(snapshot.Performance.Profiles)
		fn(&cfg)
	}
}
