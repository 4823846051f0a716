package controller

import (
	coreintegration "github.com/winccoa/extension-bridge/src/bridge/controller/core-integration"
	"github.com/winccoa/extension-bridge/src/bridge/controller/extension"
	"go.uber.org/fx"
)

// Module provides the controllers of the bridge.
var Module = fx.Options(
	fx.Provide(extension.New),
	coreintegration.Module,
)
