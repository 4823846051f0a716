// Package model holds the repository and wire layer shapes used by the extension bridge.
package model

import (
	"github.com/gofrs/uuid"
	"go.lsp.dev/jsonrpc2"
)

// Session is the repository layer model for a connected extension host.
type Session struct {
	UUID          uuid.UUID
	Conn          *jsonrpc2.Conn
	ExtensionPath string
	HostVersion   string
	Activated     bool
}

// Project is the Project Admin extension's project shape on the wire.
type Project struct {
	Name          string `json:"name"`
	OAInstallPath string `json:"oaInstallPath"`
}

// ExtensionQuery identifies an extension in the host registry.
type ExtensionQuery struct {
	ID string `json:"id"`
}

// ExtensionDescription is the host's answer to an extension lookup.
type ExtensionDescription struct {
	Found      bool `json:"found"`
	IsActive   bool `json:"isActive"`
	HasExports bool `json:"hasExports"`
}

// CurrentProjectQuery asks an extension's API for its current project.
type CurrentProjectQuery struct {
	ExtensionID string `json:"extensionId"`
}

// SubscribeProjectChange asks the host to forward an extension's project changes under SubscriptionID.
type SubscribeProjectChange struct {
	ExtensionID    string `json:"extensionId"`
	SubscriptionID string `json:"subscriptionId"`
}

// SubscribeProjectChangeResult reports whether onDidChangeProject returned a callable unsubscribe.
type SubscribeProjectChangeResult struct {
	Disposable bool `json:"disposable"`
}

// UnsubscribeProjectChange releases a subscription.
type UnsubscribeProjectChange struct {
	SubscriptionID string `json:"subscriptionId"`
}

// ProjectChange is an inbound project change notification.
type ProjectChange struct {
	SubscriptionID string   `json:"subscriptionId"`
	Project        *Project `json:"project"`
}

// Activate is sent by the host when the extension activates.
type Activate struct {
	ExtensionPath string `json:"extensionPath"`
	HostVersion   string `json:"hostVersion"`
}

// ConfigurationChange is sent by the host when settings change.
type ConfigurationChange struct {
	Affected []string `json:"affected"`
}

// IntegrationState is the reply to an integration state query.
type IntegrationState struct {
	IntegrationState string `json:"integrationState"`
}
