package handler

import (
	"github.com/winccoa/extension-bridge/src/bridge/controller"
	"github.com/winccoa/extension-bridge/src/bridge/controller/extension"
	handler "github.com/winccoa/extension-bridge/src/bridge/handler/bridge"
	"github.com/winccoa/extension-bridge/src/bridge/repository/session"
	"go.uber.org/fx"
)

// Module provides the bridge's inbound handlers and everything behind them into an Fx application.
var Module = fx.Options(
	controller.Module,
	fx.Provide(session.New),
	fx.Provide(handler.New),
	fx.Invoke(outputProcessInfo),
	fx.Invoke(func(h handler.Handler) {}),
	fx.Invoke(func(c extension.Controller) {}),
)
