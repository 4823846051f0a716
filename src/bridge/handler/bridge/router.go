package bridge

import (
	"context"

	"github.com/gofrs/uuid"
	tally "github.com/uber-go/tally/v4"
	"github.com/winccoa/extension-bridge/src/bridge/controller/extension"
	"github.com/winccoa/extension-bridge/src/bridge/entity"
	"go.lsp.dev/jsonrpc2"
)

// Methods sent by the extension host shim to the bridge.
const (
	MethodActivate               = "bridge/activate"
	MethodDeactivate             = "bridge/deactivate"
	MethodDidChangeConfiguration = "bridge/didChangeConfiguration"
	MethodIntegrationState       = "bridge/integrationState"
	MethodDidChangeProject       = "winccoa/didChangeProject"
)

type jsonRPCRouter struct {
	extension extension.Controller
	uuid      uuid.UUID
	stats     tally.Scope
}

// HandleReq handles routing for a single request.
func (r *jsonRPCRouter) HandleReq(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	ctx = context.WithValue(ctx, entity.SessionContextKey, r.uuid)

	// Handlers run on the connection's read loop. Methods that call back into the host
	// must not block it, or the host's replies can never be read.
	switch req.Method() {
	// Lifecycle related methods.
	case MethodActivate:
		return r.Activate(ctx, reply, req)

	case MethodDeactivate:
		return r.Deactivate(ctx, reply, req)

	// Workspace related methods.
	case MethodDidChangeConfiguration:
		return r.DidChangeConfiguration(ctx, reply, req)

	case MethodDidChangeProject:
		return r.DidChangeProject(ctx, reply, req)

	case MethodIntegrationState:
		return r.IntegrationState(ctx, reply, req)

	default:
		return jsonrpc2.MethodNotFoundHandler(ctx, reply, req)
	}
}

func (r *jsonRPCRouter) UUID() uuid.UUID {
	return r.uuid
}
