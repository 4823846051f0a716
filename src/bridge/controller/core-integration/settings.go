package coreintegration

import (
	"fmt"
	"time"

	"go.uber.org/config"
)

const (
	_configKeyPollInterval      = "coreIntegration.pollIntervalMs"
	_configKeyActivationTimeout = "coreIntegration.activationTimeoutMs"

	// DefaultPollInterval is how often the activation flag is checked while waiting.
	DefaultPollInterval = 100 * time.Millisecond
	// DefaultActivationTimeout bounds the wait before activation is forced.
	DefaultActivationTimeout = 4000 * time.Millisecond
)

// Settings tune the activation wait.
type Settings struct {
	PollInterval      time.Duration
	ActivationTimeout time.Duration
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		PollInterval:      DefaultPollInterval,
		ActivationTimeout: DefaultActivationTimeout,
	}
}

// NewSettings reads the coreIntegration section, keeping defaults for absent keys.
func NewSettings(cfg config.Provider) (Settings, error) {
	s := DefaultSettings()

	poll, err := millis(cfg, _configKeyPollInterval, s.PollInterval)
	if err != nil {
		return Settings{}, err
	}
	timeout, err := millis(cfg, _configKeyActivationTimeout, s.ActivationTimeout)
	if err != nil {
		return Settings{}, err
	}

	if poll <= 0 {
		return Settings{}, fmt.Errorf("%s must be positive, got %v", _configKeyPollInterval, poll)
	}
	if timeout < 0 {
		return Settings{}, fmt.Errorf("%s must not be negative, got %v", _configKeyActivationTimeout, timeout)
	}

	s.PollInterval = poll
	s.ActivationTimeout = timeout
	return s, nil
}

func millis(cfg config.Provider, key string, fallback time.Duration) (time.Duration, error) {
	v := cfg.Get(key)
	if !v.HasValue() {
		return fallback, nil
	}

	var ms int64
	if err := v.Populate(&ms); err != nil {
		return 0, fmt.Errorf("reading %s: %w", key, err)
	}
	return time.Duration(ms) * time.Millisecond, nil
}
