// Package coreintegration tracks the WinCC OA Project Admin extension for one extension host.
package coreintegration

import (
	"context"
	"fmt"
	"sync"
	"time"

	tally "github.com/uber-go/tally/v4"
	"github.com/winccoa/extension-bridge/src/bridge/entity"
	hostclient "github.com/winccoa/extension-bridge/src/bridge/gateway/host-client"
	"github.com/winccoa/extension-bridge/src/bridge/internal/clock"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	_loggerName   = "CoreIntegration"
	_metricsScope = "core_integration"
)

// Module provides the activation wait settings.
var Module = fx.Provide(NewSettings)

// Controller owns the integration lifecycle of one extension host: at most one setup in flight and at most one project change subscription.
type Controller interface {
	// Setup starts a setup run, or returns the pending one if a run is already in flight.
	Setup(ctx context.Context) *SetupOperation
	// WaitForActive polls ext until it is active or timeout passes, and returns the last observed flag.
	WaitForActive(ctx context.Context, ext hostclient.Extension, timeout time.Duration) (bool, error)
	// Cleanup releases the current subscription, if any.
	Cleanup()
	// Reset releases the current subscription and returns to the uninitialized state. A setup run still in flight can no longer change either.
	Reset()
	State() entity.IntegrationState
}

// Params are inbound parameters to initialize a new controller.
type Params struct {
	Gateway  hostclient.Gateway
	Logger   *zap.Logger
	Clock    clock.Clock
	Stats    tally.Scope
	Settings Settings
}

type controller struct {
	gateway  hostclient.Gateway
	logger   *zap.SugaredLogger
	clock    clock.Clock
	stats    tally.Scope
	settings Settings

	mu           sync.Mutex
	pending      *SetupOperation
	subscription *subscription
	state        entity.IntegrationState
	// generation changes on every Reset. A run started under an older generation no longer owns the state.
	generation uint64
}

// New creates a controller in the uninitialized state.
func New(p Params) Controller {
	return &controller{
		gateway:  p.Gateway,
		logger:   p.Logger.Named(_loggerName).Sugar(),
		clock:    p.Clock,
		stats:    p.Stats.SubScope(_metricsScope),
		settings: p.Settings,
		state:    entity.IntegrationStateUninitialized,
	}
}

func (c *controller) Setup(ctx context.Context) *SetupOperation {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.pending != nil {
		c.stats.Counter("setup_joined").Inc(1)
		return c.pending
	}

	op := newSetupOperation()
	gen := c.generation
	c.pending = op
	c.state = entity.IntegrationStateResolving
	c.stats.Counter("setup_started").Inc(1)

	go func() {
		var err error
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("core integration setup panicked: %v", r)
			}

			c.mu.Lock()
			if c.pending == op {
				c.pending = nil
			}
			if err != nil && c.generation == gen {
				c.state = c.settledStateLocked()
			}
			c.mu.Unlock()

			op.finish(err)
		}()

		err = c.setup(context.WithoutCancel(ctx), gen)
	}()

	return op
}

func (c *controller) setup(ctx context.Context, gen uint64) error {
	pathSource, err := c.gateway.GetConfigString(ctx, entity.ConfigSection, entity.ConfigKeyPathSource, entity.PathSourceAutomatic)
	if err != nil {
		return fmt.Errorf("reading %s: %w", entity.QualifiedConfigKey(entity.ConfigKeyPathSource), err)
	}

	if entity.ParseIntegrationMode(pathSource) != entity.IntegrationModeAutomatic {
		c.logger.Info("Static mode - Core extension integration disabled")
		c.release(gen)
		c.setState(gen, entity.IntegrationStateStatic)
		return nil
	}

	ext, err := c.gateway.GetExtension(ctx, entity.CoreExtensionID)
	if err != nil {
		return fmt.Errorf("looking up %s: %w", entity.CoreExtensionID, err)
	}
	if ext == nil {
		c.logger.Warn("WinCC OA Core extension not found - automatic mode unavailable")
		c.setState(gen, entity.IntegrationStateUnavailable)
		return nil
	}

	if err := c.ensureActive(ctx, ext); err != nil {
		return err
	}
	c.logger.Info("Core extension active")

	api, err := ext.Exports(ctx)
	if err != nil {
		return fmt.Errorf("reading exports of %s: %w", ext.ID(), err)
	}
	if api == nil {
		c.logger.Warn("Core extension has no exported API")
		c.setState(gen, entity.IntegrationStateUnavailable)
		return nil
	}

	c.release(gen)

	result, err := api.OnDidChangeProject(ctx, c.onProjectChanged)
	if err != nil {
		return fmt.Errorf("subscribing to project changes: %w", err)
	}

	if sub := c.newSubscription(result); sub != nil {
		sub.unregister = func() error {
			return c.gateway.UnregisterDisposable(ctx, sub)
		}

		c.mu.Lock()
		current := c.generation == gen
		if current {
			c.subscription = sub
			c.state = entity.IntegrationStateSubscribed
		}
		c.mu.Unlock()

		if !current {
			c.logger.Debug("dropping project change subscription of a reset setup")
			if err := sub.Dispose(); err != nil {
				c.logger.Debugw("releasing project change subscription", zap.Error(err))
			}
			return nil
		}
		c.stats.Counter("subscriptions").Inc(1)

		if err := c.gateway.RegisterDisposable(ctx, sub); err != nil {
			return fmt.Errorf("registering project change subscription: %w", err)
		}
	} else {
		c.setState(gen, entity.IntegrationStateUnavailable)
	}

	project, err := api.GetCurrentProject(ctx)
	if err != nil {
		return fmt.Errorf("reading current project: %w", err)
	}
	if project != nil {
		c.logger.Infof("Current project: %s", project)
	} else {
		c.logger.Info("No project currently selected")
	}
	return nil
}

// ensureActive lets the extension activate on its own and forces activation only once the wait has run out.
func (c *controller) ensureActive(ctx context.Context, ext hostclient.Extension) error {
	active, err := ext.IsActive(ctx)
	if err != nil {
		return fmt.Errorf("checking whether %s is active: %w", ext.ID(), err)
	}
	if active {
		return nil
	}

	c.logger.Info("Waiting for Core extension to activate...")
	active, err = c.WaitForActive(ctx, ext, c.settings.ActivationTimeout)
	if err != nil {
		return fmt.Errorf("waiting for %s to activate: %w", ext.ID(), err)
	}
	if active {
		return nil
	}

	c.logger.Info("Core still inactive - activating (fallback)...")
	c.stats.Counter("activation_fallback").Inc(1)
	if err := ext.Activate(ctx); err != nil {
		return fmt.Errorf("activating %s: %w", ext.ID(), err)
	}
	return nil
}

func (c *controller) WaitForActive(ctx context.Context, ext hostclient.Extension, timeout time.Duration) (bool, error) {
	active, err := ext.IsActive(ctx)
	if err != nil || active {
		return active, err
	}

	sw := c.stats.Timer("activation_wait").Start()
	defer sw.Stop()

	deadline := c.clock.Now().Add(timeout)
	for c.clock.Now().Before(deadline) {
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case <-c.clock.After(c.settings.PollInterval):
		}

		active, err = ext.IsActive(ctx)
		if err != nil || active {
			return active, err
		}
	}
	return ext.IsActive(ctx)
}

func (c *controller) Cleanup() {
	c.mu.Lock()
	sub := c.subscription
	c.subscription = nil
	if sub != nil && c.state == entity.IntegrationStateSubscribed {
		c.state = entity.IntegrationStateUninitialized
	}
	c.mu.Unlock()

	c.dispose(sub)
}

func (c *controller) Reset() {
	c.mu.Lock()
	sub := c.subscription
	c.subscription = nil
	c.state = entity.IntegrationStateUninitialized
	c.pending = nil
	c.generation++
	c.mu.Unlock()

	c.dispose(sub)
}

func (c *controller) State() entity.IntegrationState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *controller) onProjectChanged(project *entity.ProjectInfo) {
	if project != nil {
		c.logger.Infof("Project changed: %s", project)
		return
	}
	c.logger.Info("No project selected")
}

// release drops the current subscription without touching the state. Runs from before a Reset leave it alone.
func (c *controller) release(gen uint64) {
	c.mu.Lock()
	if c.generation != gen {
		c.mu.Unlock()
		return
	}
	sub := c.subscription
	c.subscription = nil
	c.mu.Unlock()

	c.dispose(sub)
}

// dispose unsubscribes and takes sub out of the session's disposables.
func (c *controller) dispose(sub *subscription) {
	if sub == nil {
		return
	}
	if err := sub.Dispose(); err != nil {
		c.logger.Debugw("releasing project change subscription", zap.Error(err))
	}
	if sub.unregister == nil {
		return
	}
	if err := sub.unregister(); err != nil {
		c.logger.Debugw("unregistering project change subscription", zap.Error(err))
	}
}

func (c *controller) setState(gen uint64, s entity.IntegrationState) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.generation == gen {
		c.state = s
	}
}

func (c *controller) settledStateLocked() entity.IntegrationState {
	if c.subscription != nil {
		return entity.IntegrationStateSubscribed
	}
	return entity.IntegrationStateUnavailable
}

// newSubscription keeps callable results of OnDidChangeProject. Anything else is not tracked.
func (c *controller) newSubscription(result interface{}) *subscription {
	var unsubscribe func() error
	switch v := result.(type) {
	case func():
		if v == nil {
			return nil
		}
		unsubscribe = hostclient.DisposeFunc(v).Dispose
	case hostclient.Disposable:
		if v == nil {
			return nil
		}
		unsubscribe = v.Dispose
	default:
		return nil
	}
	return &subscription{unsubscribe: unsubscribe, released: c.stats.Counter("unsubscribes")}
}

// subscription is the single live project change subscription. Dispose is safe to call more than once.
type subscription struct {
	once        sync.Once
	unsubscribe func() error
	unregister  func() error
	released    tally.Counter
	err         error
}

func (s *subscription) Dispose() error {
	s.once.Do(func() {
		s.err = s.unsubscribe()
		s.released.Inc(1)
	})
	return s.err
}
