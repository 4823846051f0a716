package hostclient

import (
	"context"
	"sync"

	"github.com/gofrs/uuid"
	"github.com/winccoa/extension-bridge/src/bridge/entity"
	"github.com/winccoa/extension-bridge/src/bridge/mapper"
	"github.com/winccoa/extension-bridge/src/bridge/model"
	"go.uber.org/zap"
)

type extension struct {
	id      string
	gateway *gateway
}

type projectAPI struct {
	extensionID string
	gateway     *gateway
}

func (g *gateway) describe(ctx context.Context, id string) (*model.ExtensionDescription, error) {
	var desc model.ExtensionDescription
	if err := g.call(ctx, MethodGetExtension, &model.ExtensionQuery{ID: id}, &desc); err != nil {
		return nil, err
	}
	return &desc, nil
}

func (e *extension) ID() string {
	return e.id
}

func (e *extension) IsActive(ctx context.Context) (bool, error) {
	desc, err := e.gateway.describe(ctx, e.id)
	if err != nil {
		return false, err
	}
	return desc.Found && desc.IsActive, nil
}

func (e *extension) Activate(ctx context.Context) error {
	return e.gateway.call(ctx, MethodActivateExtension, &model.ExtensionQuery{ID: e.id}, nil)
}

func (e *extension) Exports(ctx context.Context) (ProjectAPI, error) {
	desc, err := e.gateway.describe(ctx, e.id)
	if err != nil {
		return nil, err
	}
	if !desc.Found || !desc.HasExports {
		return nil, nil
	}
	return &projectAPI{extensionID: e.id, gateway: e.gateway}, nil
}

func (p *projectAPI) GetCurrentProject(ctx context.Context) (*entity.ProjectInfo, error) {
	var project *model.Project
	if err := p.gateway.call(ctx, MethodGetCurrentProject, &model.CurrentProjectQuery{ExtensionID: p.extensionID}, &project); err != nil {
		return nil, err
	}
	return mapper.ModelToProjectInfo(project), nil
}

func (p *projectAPI) OnDidChangeProject(ctx context.Context, listener ProjectListener) (interface{}, error) {
	session, err := mapper.ContextToSessionUUID(ctx)
	if err != nil {
		return nil, err
	}
	subID, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}

	// The listener is in place before the request so that an immediate notification is not lost.
	p.gateway.addListener(subID, session, listener)

	var result model.SubscribeProjectChangeResult
	params := &model.SubscribeProjectChange{ExtensionID: p.extensionID, SubscriptionID: subID.String()}
	if err := p.gateway.call(ctx, MethodSubscribeProjectChange, params, &result); err != nil {
		p.gateway.removeListener(subID)
		return nil, err
	}

	if !result.Disposable {
		return result, nil
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			p.gateway.removeListener(subID)
			if err := p.gateway.notify(ctx, MethodUnsubscribeProjectChange, &model.UnsubscribeProjectChange{SubscriptionID: subID.String()}); err != nil {
				p.gateway.logger.Debug("unsubscribing from project changes", zap.Stringer("subscription", subID), zap.Error(err))
			}
		})
	}, nil
}
