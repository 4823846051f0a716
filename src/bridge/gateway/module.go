// Package gateway groups the outbound clients of the bridge.
package gateway

import (
	hostclient "github.com/winccoa/extension-bridge/src/bridge/gateway/host-client"
	"go.uber.org/fx"
)

// Module provides the bridge's outbound gateways.
var Module = fx.Options(
	hostclient.Module,
)
