package bridge

import (
	"context"

	"github.com/winccoa/extension-bridge/src/bridge/mapper"
	"github.com/winccoa/extension-bridge/src/bridge/model"
	"go.lsp.dev/jsonrpc2"
)

// DidChangeConfiguration handles a host configuration change notification.
func (r *jsonRPCRouter) DidChangeConfiguration(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToConfigurationChange(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	go func() {
		err := r.extension.DidChangeConfiguration(ctx, params)
		reply(ctx, nil, err)
	}()
	return nil
}

// DidChangeProject delivers a project change from the Project Admin extension to its subscriber.
func (r *jsonRPCRouter) DidChangeProject(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToProjectChange(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	err = r.extension.DidChangeProject(ctx, params)
	return reply(ctx, nil, err)
}

// IntegrationState reports the current lifecycle state of the core integration.
func (r *jsonRPCRouter) IntegrationState(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	state, err := r.extension.IntegrationState(ctx)
	if err != nil {
		return reply(ctx, nil, err)
	}
	return reply(ctx, &model.IntegrationState{IntegrationState: state.String()}, nil)
}
