package entity

import (
	"fmt"
	"strings"

	"github.com/gofrs/uuid"
)

// IntegrationMode selects whether the Project Admin integration runs.
type IntegrationMode int

const (
	// IntegrationModeStatic disables the integration.
	IntegrationModeStatic IntegrationMode = iota
	// IntegrationModeAutomatic tracks the Project Admin extension's active project.
	IntegrationModeAutomatic
)

// ParseIntegrationMode maps the pathSource setting to a mode. Only the literal "automatic" selects automatic mode.
func ParseIntegrationMode(pathSource string) IntegrationMode {
	if pathSource == PathSourceAutomatic {
		return IntegrationModeAutomatic
	}
	return IntegrationModeStatic
}

// String returns a string representation of the mode.
func (m IntegrationMode) String() string {
	if m == IntegrationModeAutomatic {
		return "automatic"
	}
	return "static"
}

// IntegrationState is the lifecycle state of the Project Admin integration.
type IntegrationState int

const (
	// IntegrationStateUninitialized - setup has not run, or the subscription was released.
	IntegrationStateUninitialized IntegrationState = iota
	// IntegrationStateResolving - a setup operation is in flight.
	IntegrationStateResolving
	// IntegrationStateStatic - integration disabled by configuration.
	IntegrationStateStatic
	// IntegrationStateUnavailable - automatic mode, but the extension or its API is missing.
	IntegrationStateUnavailable
	// IntegrationStateSubscribed - automatic mode with a live project change subscription.
	IntegrationStateSubscribed
)

// String returns a string representation of the state.
func (s IntegrationState) String() string {
	switch s {
	case IntegrationStateUninitialized:
		return "uninitialized"
	case IntegrationStateResolving:
		return "resolving"
	case IntegrationStateStatic:
		return "static"
	case IntegrationStateUnavailable:
		return "unavailable"
	case IntegrationStateSubscribed:
		return "subscribed"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s IntegrationState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// ProjectInfo is a snapshot of the project selected in the Project Admin extension.
// A nil *ProjectInfo means no project is selected.
type ProjectInfo struct {
	Name        string `json:"name" zap:"name"`
	InstallPath string `json:"installPath" zap:"installPath"`
}

// String implements fmt.Stringer.
func (p ProjectInfo) String() string {
	return fmt.Sprintf("%s (%s)", p.Name, p.InstallPath)
}

// ProjectChangeNotification carries a project change for one subscription.
type ProjectChangeNotification struct {
	SubscriptionID uuid.UUID
	Project        *ProjectInfo
}

// ConfigurationChange lists the setting keys affected by a host configuration change.
type ConfigurationChange struct {
	Affected []string
}

// AffectsConfiguration reports whether the change touches section, either exactly or through a parent or child key.
func (c ConfigurationChange) AffectsConfiguration(section string) bool {
	for _, key := range c.Affected {
		if key == section || strings.HasPrefix(section, key+".") || strings.HasPrefix(key, section+".") {
			return true
		}
	}
	return false
}

// QualifiedConfigKey joins a key onto the extension's configuration section.
func QualifiedConfigKey(key string) string {
	return ConfigSection + "." + key
}
