package bridge

import (
	"context"
	"fmt"
	"sync"

	"github.com/gofrs/uuid"
	tally "github.com/uber-go/tally/v4"
	"github.com/winccoa/extension-bridge/src/bridge/controller/extension"
	"github.com/winccoa/extension-bridge/src/bridge/entity"
	"github.com/winccoa/extension-bridge/src/bridge/internal/jsonrpcfx"
	"go.lsp.dev/jsonrpc2"
)

type jsonRPCConnectionManager struct {
	ctrl  extension.Controller
	stats tally.Scope

	mu    sync.Mutex
	conns map[uuid.UUID]struct{}
}

// NewConnection will store a new connection and return a router that includes its UUID.
func (c *jsonRPCConnectionManager) NewConnection(ctx context.Context, conn *jsonrpc2.Conn) (router jsonrpcfx.Router, err error) {
	id, err := c.ctrl.InitSession(ctx, conn)
	if err != nil {
		c.stats.Counter("connect_failures").Inc(1)
		return nil, fmt.Errorf("error while creating new connection: %w", err)
	}

	c.mu.Lock()
	c.conns[id] = struct{}{}
	c.stats.Gauge("active_connections").Update(float64(len(c.conns)))
	c.mu.Unlock()

	r := jsonRPCRouter{
		extension: c.ctrl,
		uuid:      id,
		stats:     c.stats,
	}

	return &r, nil
}

// RemoveConnection cleans up a closed connection.
func (c *jsonRPCConnectionManager) RemoveConnection(ctx context.Context, id uuid.UUID) {
	// Ensure the session is ended even if no deactivate call has been received.
	ctx = context.WithValue(ctx, entity.SessionContextKey, id)
	c.ctrl.EndSession(ctx, id)

	c.mu.Lock()
	delete(c.conns, id)
	c.stats.Gauge("active_connections").Update(float64(len(c.conns)))
	c.mu.Unlock()
}

func (c *jsonRPCConnectionManager) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.conns)
}
