package extension

import (
	"context"
	"fmt"

	"github.com/winccoa/extension-bridge/src/bridge/entity"
)

// Activate runs the extension's activation for the session in ctx. A failed integration setup is reported but does not fail activation.
func (c *controller) Activate(ctx context.Context, params *entity.ActivateParams) (*entity.ActivateResult, error) {
	st, err := c.state(ctx)
	if err != nil {
		return nil, err
	}

	c.updateLogLevel(ctx, st)

	st.logger.Infof("%s (%s) activated", entity.ExtensionName, entity.ExtensionID)
	st.logger.Infof("Extension Path: %s", params.ExtensionPath)
	st.logger.Debugf("VS Code Version: %s", params.HostVersion)

	s, err := c.sessions.GetFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting session from context: %w", err)
	}
	s.ExtensionPath = params.ExtensionPath
	s.HostVersion = params.HostVersion
	s.Activated = true
	if err := c.sessions.Set(ctx, s); err != nil {
		return nil, err
	}
	c.stats.SubScope(_metricsScope).Counter("activations").Inc(1)

	if err := st.coordinator.Setup(ctx).Wait(ctx); err != nil {
		st.logger.Warnf("Core extension integration setup failed: %v", err)
	}

	return &entity.ActivateResult{IntegrationState: st.coordinator.State()}, nil
}

// Deactivate releases the integration and everything the session registered for disposal.
func (c *controller) Deactivate(ctx context.Context) error {
	st, err := c.state(ctx)
	if err != nil {
		return err
	}

	st.logger.Infof("WinCC OA %s Extension deactivated", entity.ExtensionName)
	st.coordinator.Reset()

	if s, err := c.sessions.GetFromContext(ctx); err == nil {
		s.Activated = false
		if err := c.sessions.Set(ctx, s); err != nil {
			return err
		}
	}

	if err := c.gateway.DisposeAll(ctx); err != nil {
		return fmt.Errorf("disposing session resources: %w", err)
	}
	return nil
}

func (c *controller) updateLogLevel(ctx context.Context, st *sessionState) {
	level, err := c.gateway.GetConfigString(ctx, entity.ConfigSection, entity.ConfigKeyLogLevel, entity.DefaultLogLevel)
	if err != nil {
		st.logger.Warnf("Unable to read %s: %v", entity.QualifiedConfigKey(entity.ConfigKeyLogLevel), err)
		return
	}
	st.output.SetLevel(level)
}
