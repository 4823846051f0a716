// Package bridge implements the extension bridge's JSON-RPC handlers.
package bridge

import (
	"fmt"

	"github.com/gofrs/uuid"
	tally "github.com/uber-go/tally/v4"
	"github.com/winccoa/extension-bridge/src/bridge/controller/extension"
	"github.com/winccoa/extension-bridge/src/bridge/internal/jsonrpcfx"
)

// Handler represents the bridge's inbound JSON-RPC API.
type Handler interface {
	// Connections reports the number of hosts currently connected.
	Connections() int
}

type handler struct {
	extension         extension.Controller
	connectionManager *jsonRPCConnectionManager
	stats             tally.Scope
}

// New constructs a new bridge Handler and registers its connection manager with the JSON-RPC module.
func New(ctrl extension.Controller, jsonrpcmod jsonrpcfx.JSONRPCModule, stats tally.Scope) (Handler, error) {
	c := jsonRPCConnectionManager{
		ctrl:  ctrl,
		stats: stats.SubScope("json_rpc"),
		conns: make(map[uuid.UUID]struct{}),
	}
	if err := jsonrpcmod.RegisterConnectionManager(&c); err != nil {
		return nil, fmt.Errorf("registering connection manager: %w", err)
	}

	return &handler{
		extension:         ctrl,
		connectionManager: &c,
		stats:             stats,
	}, nil
}

func (h *handler) Connections() int {
	return h.connectionManager.count()
}
