package config

import (
	"context"
	"fmt"
	"slices"

	"github.com/fsnotify/fsnotify"

	"github.com/bnema/dockyard/internal/logging"
)

// Watch reloads the config whenever the file changes on disk and hands the
// new values to every OnConfigChange callback. An edit that fails
// validation keeps the previous values. Calling Watch twice is a no-op.
func (m *Manager) Watch(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return nil
	}
	if m.viper.ConfigFileUsed() == "" {
		return fmt.Errorf("no config file to watch")
	}

	log := logging.FromContext(logging.WithComponent(ctx, "config"))
	m.viper.OnConfigChange(func(e fsnotify.Event) {
		log.Debug().Str("op", e.Op.String()).Str("file", e.Name).Msg("config file changed")

		cfg, callbacks, err := m.applyChange()
		if err != nil {
			log.Warn().Err(err).Msg("config change ignored")
			return
		}
		for _, fn := range callbacks {
			fn(cfg)
		}
	})
	m.viper.WatchConfig()

	m.watching = true
	return nil
}

// applyChange re-reads the file unless the event comes from our own Save,
// whose values are already in memory.
func (m *Manager) applyChange() (*Config, []func(*Config), error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.skipNextReload {
		m.skipNextReload = false
		if err := m.viper.ReadInConfig(); err != nil {
			return nil, nil, err
		}
	} else if err := m.reload(); err != nil {
		return nil, nil, err
	}
	return m.config, slices.Clone(m.callbacks), nil
}

// OnConfigChange registers fn to run after each successful reload.
func (m *Manager) OnConfigChange(fn func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.callbacks = append(m.callbacks, fn)
}

// reload must be called with m.mu held.
func (m *Manager) reload() error {
	if err := m.viper.ReadInConfig(); err != nil {
		return err
	}

	cfg, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	if err := fillPaths(cfg); err != nil {
		return err
	}
	normalizeConfig(cfg)

	if err := validateConfig(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = cfg
	return nil
}
