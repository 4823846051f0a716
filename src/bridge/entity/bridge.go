// Package entity contains the domain types of the extension bridge.
package entity

import (
	"github.com/gofrs/uuid"
	"go.lsp.dev/jsonrpc2"
)

type keyType string

// SessionContextKey indicates the key to be used to identify the session UUID in the context.
const SessionContextKey keyType = "SessionUUID"

// Identity of the extension served by this daemon and of the Project Admin extension it integrates with.
const (
	ExtensionID     = "winccoa.yourExtensionId"
	ExtensionName   = "WinCC OA Your Extension Name"
	CoreExtensionID = "RichardJanisch.winccoa-project-admin"
)

// Settings read from the host configuration store.
const (
	ConfigSection       = "winccoaTemplateExtension"
	ConfigKeyPathSource = "pathSource"
	ConfigKeyLogLevel   = "logLevel"

	PathSourceAutomatic = "automatic"
	DefaultLogLevel     = "INFO"
)

// Session represents a single connected extension host.
type Session struct {
	UUID          uuid.UUID      `json:"uuid" zap:"uuid"`
	Conn          *jsonrpc2.Conn `json:"-" zap:"-"`
	ExtensionPath string         `json:"extensionPath" zap:"extensionPath"`
	HostVersion   string         `json:"hostVersion" zap:"hostVersion"`
	Activated     bool           `json:"activated" zap:"activated"`
}

// ActivateParams describe the extension instance being activated by the host.
type ActivateParams struct {
	ExtensionPath string
	HostVersion   string
}

// ActivateResult reports where the integration lifecycle settled after activation.
type ActivateResult struct {
	IntegrationState IntegrationState `json:"integrationState"`
}
