// Package app assembles the extension bridge's fx application.
package app

import (
	"context"
	"time"

	tally "github.com/uber-go/tally/v4"
	"github.com/winccoa/extension-bridge/src/bridge/gateway"
	"github.com/winccoa/extension-bridge/src/bridge/handler"
	"github.com/winccoa/extension-bridge/src/bridge/internal/clock"
	"github.com/winccoa/extension-bridge/src/bridge/internal/core"
	"github.com/winccoa/extension-bridge/src/bridge/internal/fs"
	"github.com/winccoa/extension-bridge/src/bridge/internal/jsonrpcfx"
	"github.com/winccoa/extension-bridge/src/bridge/internal/logfilewriter"
	"github.com/winccoa/extension-bridge/src/bridge/internal/serverinfofile"
	"go.uber.org/fx"
)

// Module defines the extension bridge application module.
var Module = fx.Options(
	gateway.Module, // outbounds
	handler.Module, // inbounds
	jsonrpcfx.Module,
	fs.Module,
	logfilewriter.Module,
	serverinfofile.Module,
	core.ConfigModule,
	core.LoggerModule,
	fx.Provide(clock.New),
	fx.Provide(func(lc fx.Lifecycle) tally.Scope {
		rs, closer := tally.NewRootScope(tally.ScopeOptions{
			Tags: map[string]string{
				"service": "extension-bridge",
			},
		}, 1*time.Second)

		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return closer.Close()
			},
		})

		return rs
	}),
	fx.Decorate(decorateEnvContext),
	fx.Decorate(decorateConfigProvider),
	fx.Provide(func() Context {
		return Context{
			Environment:        EnvLocal,
			RuntimeEnvironment: EnvLocal,
		}
	}),
)
