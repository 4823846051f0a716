package bridge

import (
	"context"

	"github.com/winccoa/extension-bridge/src/bridge/mapper"
	"go.lsp.dev/jsonrpc2"
)

// Activate extracts the activation parameters and runs extension activation for this host.
// The reply is sent once activation, including the core integration setup, has finished.
func (r *jsonRPCRouter) Activate(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToActivateParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	go func() {
		result, err := r.extension.Activate(ctx, params)
		if err != nil {
			r.stats.Counter("activate_errors").Inc(1)
		}
		reply(ctx, result, err)
	}()
	return nil
}

// Deactivate releases the integration and everything registered for this host.
// Deactivation never calls the host, so it runs inline.
func (r *jsonRPCRouter) Deactivate(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	err := r.extension.Deactivate(ctx)
	return reply(ctx, nil, err)
}
