// Package extension implements the activation entry point of the WinCC OA extension for each connected host.
package extension

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/gofrs/uuid"
	tally "github.com/uber-go/tally/v4"
	coreintegration "github.com/winccoa/extension-bridge/src/bridge/controller/core-integration"
	"github.com/winccoa/extension-bridge/src/bridge/entity"
	hostclient "github.com/winccoa/extension-bridge/src/bridge/gateway/host-client"
	"github.com/winccoa/extension-bridge/src/bridge/internal/clock"
	"github.com/winccoa/extension-bridge/src/bridge/internal/logfilewriter"
	"github.com/winccoa/extension-bridge/src/bridge/internal/outputchannel"
	"github.com/winccoa/extension-bridge/src/bridge/mapper"
	"github.com/winccoa/extension-bridge/src/bridge/repository/session"
	"go.lsp.dev/jsonrpc2"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	_idleTimeoutMinutesKey = "idleTimeoutMinutes"
	_loggerName            = "Extension"
	_metricsScope          = "extension"
)

// Controller handles the lifecycle requests of every connected extension host.
type Controller interface {
	InitSession(ctx context.Context, conn *jsonrpc2.Conn) (uuid.UUID, error)
	EndSession(ctx context.Context, id uuid.UUID) error

	Activate(ctx context.Context, params *entity.ActivateParams) (*entity.ActivateResult, error)
	Deactivate(ctx context.Context) error

	DidChangeConfiguration(ctx context.Context, params *entity.ConfigurationChange) error
	DidChangeProject(ctx context.Context, params *entity.ProjectChangeNotification) error
	IntegrationState(ctx context.Context) (entity.IntegrationState, error)
}

// Params are inbound parameters to initialize a new controller.
type Params struct {
	fx.In

	Shutdowner fx.Shutdowner
	Sessions   session.Repository
	Gateway    hostclient.Gateway
	Logger     *zap.Logger
	Config     config.Provider
	Clock      clock.Clock
	Stats      tally.Scope
	Settings   coreintegration.Settings
	OutputFile logfilewriter.OutputWriter `optional:"true"`
}

// sessionState is what the controller keeps per connected host.
type sessionState struct {
	output      *outputchannel.Channel
	logger      *zap.SugaredLogger
	coordinator coreintegration.Controller
}

type controller struct {
	shutdowner fx.Shutdowner
	sessions   session.Repository
	gateway    hostclient.Gateway
	logger     *zap.Logger
	clock      clock.Clock
	stats      tally.Scope
	settings   coreintegration.Settings
	outputFile logfilewriter.OutputWriter

	newCoordinator func(p coreintegration.Params) coreintegration.Controller

	mu     sync.Mutex
	states map[uuid.UUID]*sessionState

	idleTimeout time.Duration
	idleTimerMu sync.Mutex
	idleTimer   *time.Timer
}

// New creates the controller. A positive idleTimeoutMinutes shuts the daemon down once no host has been connected for that long.
func New(p Params) (Controller, error) {
	var idleMinutes int64
	if v := p.Config.Get(_idleTimeoutMinutesKey); v.HasValue() {
		if err := v.Populate(&idleMinutes); err != nil {
			return nil, fmt.Errorf("unable to get idle timeout from config: %w", err)
		}
	}

	c := &controller{
		shutdowner:     p.Shutdowner,
		sessions:       p.Sessions,
		gateway:        p.Gateway,
		logger:         p.Logger,
		clock:          p.Clock,
		stats:          p.Stats,
		settings:       p.Settings,
		outputFile:     p.OutputFile,
		newCoordinator: coreintegration.New,
		states:         make(map[uuid.UUID]*sessionState),
		idleTimeout:    time.Duration(idleMinutes) * time.Minute,
	}
	if err := c.refreshIdleTimer(context.Background()); err != nil {
		return nil, err
	}
	return c, nil
}

// InitSession registers a new host connection and prepares its output channel and integration coordinator.
func (c *controller) InitSession(ctx context.Context, conn *jsonrpc2.Conn) (uuid.UUID, error) {
	defer c.refreshIdleTimer(ctx)

	id, err := uuid.NewV4()
	if err != nil {
		return uuid.Nil, err
	}

	if err := c.gateway.RegisterClient(ctx, id, conn); err != nil {
		return uuid.Nil, err
	}
	if err := c.sessions.Set(ctx, &entity.Session{UUID: id, Conn: conn}); err != nil {
		return uuid.Nil, err
	}

	// Output is routed by the session id, so it must not depend on the lifetime of ctx.
	sessionCtx := mapper.SessionUUIDToContext(context.Background(), id)
	var opts []outputchannel.Option
	if c.outputFile != nil {
		opts = append(opts, outputchannel.WithFile(c.outputFile))
	}
	output := outputchannel.New(sessionCtx, c.logger.With(zap.Stringer("session", id)), c.gateway, entity.DefaultLogLevel, opts...)

	c.mu.Lock()
	c.states[id] = &sessionState{
		output: output,
		logger: output.Named(_loggerName).Sugar(),
		coordinator: c.newCoordinator(coreintegration.Params{
			Gateway:  c.gateway,
			Logger:   output.Logger(),
			Clock:    c.clock,
			Stats:    c.stats,
			Settings: c.settings,
		}),
	}
	c.mu.Unlock()

	return id, nil
}

// EndSession deactivates a host that is still active and releases everything registered for it.
func (c *controller) EndSession(ctx context.Context, id uuid.UUID) error {
	defer c.refreshIdleTimer(ctx)

	sessionCtx := mapper.SessionUUIDToContext(ctx, id)
	if s, err := c.sessions.Get(ctx, id); err == nil && s.Activated {
		if err := c.Deactivate(sessionCtx); err != nil {
			c.logger.Warn("deactivating ended session", zap.Stringer("session", id), zap.Error(err))
		}
	}

	if err := c.gateway.DeregisterClient(ctx, id); err != nil {
		c.logger.Error("deregistering host client", zap.Stringer("session", id), zap.Error(err))
	}

	c.mu.Lock()
	delete(c.states, id)
	c.mu.Unlock()

	return c.sessions.Delete(ctx, id)
}

func (c *controller) state(ctx context.Context) (*sessionState, error) {
	id, err := mapper.ContextToSessionUUID(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	st, ok := c.states[id]
	if !ok {
		return nil, fmt.Errorf("no extension state for session %q", id)
	}
	return st, nil
}

// refreshIdleTimer shuts the daemon down after a period with no connected hosts.
func (c *controller) refreshIdleTimer(ctx context.Context) error {
	if c.idleTimeout <= 0 {
		return nil
	}

	c.idleTimerMu.Lock()
	defer c.idleTimerMu.Unlock()

	if c.idleTimer == nil {
		c.idleTimer = time.AfterFunc(c.idleTimeout, c.shutdownIdle)
		return nil
	}

	count, err := c.sessions.SessionCount(ctx)
	if err != nil {
		return fmt.Errorf("error resetting timeout: %w", err)
	}

	c.idleTimer.Stop()
	if count == 0 {
		c.idleTimer.Reset(c.idleTimeout)
	}
	return nil
}

func (c *controller) shutdownIdle() {
	c.logger.Info("No extension host connected, shutting down.")
	if err := c.shutdowner.Shutdown(); err != nil {
		os.Exit(1)
	}
}
