package extension

import (
	"context"

	"github.com/winccoa/extension-bridge/src/bridge/entity"
	"github.com/winccoa/extension-bridge/src/bridge/internal/errors"
	"go.uber.org/zap"
)

// DidChangeConfiguration re-reads the log level and restarts the integration when their settings change.
// Changes reaching a session that is not activated are ignored.
func (c *controller) DidChangeConfiguration(ctx context.Context, params *entity.ConfigurationChange) error {
	st, err := c.state(ctx)
	if err != nil {
		return err
	}

	s, err := c.sessions.GetFromContext(ctx)
	if err != nil {
		return err
	}
	if !s.Activated {
		c.logger.Debug("configuration change on inactive session", zap.Strings("affected", params.Affected))
		return nil
	}

	if params.AffectsConfiguration(entity.QualifiedConfigKey(entity.ConfigKeyLogLevel)) {
		c.updateLogLevel(ctx, st)
	}

	if params.AffectsConfiguration(entity.QualifiedConfigKey(entity.ConfigKeyPathSource)) {
		op := st.coordinator.Setup(ctx)
		go func() {
			<-op.Done()
			if err := op.Err(); err != nil {
				st.logger.Warnf("Core extension integration setup failed: %v", err)
			}
		}()
	}
	return nil
}

// DidChangeProject hands a project change to the listener of its subscription.
func (c *controller) DidChangeProject(ctx context.Context, params *entity.ProjectChangeNotification) error {
	err := c.gateway.DispatchProjectChange(ctx, params)
	if id, ok := errors.NotFoundUUID(err); ok && id == params.SubscriptionID {
		c.logger.Debug("project change for released subscription", zap.Stringer("subscription", id))
		return nil
	}
	return err
}

// IntegrationState reports where the session's integration lifecycle currently is.
func (c *controller) IntegrationState(ctx context.Context) (entity.IntegrationState, error) {
	st, err := c.state(ctx)
	if err != nil {
		return entity.IntegrationStateUninitialized, err
	}
	return st.coordinator.State(), nil
}
