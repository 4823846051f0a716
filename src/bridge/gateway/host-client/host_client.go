// Package hostclient exposes the editor's extension host to the daemon over the session's JSON-RPC connection.
package hostclient

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"github.com/gofrs/uuid"
	"github.com/winccoa/extension-bridge/src/bridge/entity"
	"github.com/winccoa/extension-bridge/src/bridge/internal/errors"
	"github.com/winccoa/extension-bridge/src/bridge/mapper"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.uber.org/fx"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Methods served by the editor shim.
const (
	MethodGetExtension             = "winccoa/getExtension"
	MethodActivateExtension        = "winccoa/activateExtension"
	MethodGetCurrentProject        = "winccoa/getCurrentProject"
	MethodSubscribeProjectChange   = "winccoa/subscribeProjectChange"
	MethodUnsubscribeProjectChange = "winccoa/unsubscribeProjectChange"
)

const _errSendToClient = "sending call/notification to host: %w"

// Module provides the host gateway.
var Module = fx.Provide(New)

// Gateway is used to reach the extension host of a session.
// All calls should include a context with a session UUID, which routes them to the correct host connection.
type Gateway interface {
	// RegisterClient registers a new host connection. Should be called each time a new connection is initialized.
	RegisterClient(ctx context.Context, id uuid.UUID, conn *jsonrpc2.Conn) error
	// DeregisterClient disposes everything registered for the session and removes its connection.
	DeregisterClient(ctx context.Context, id uuid.UUID) error

	// GetExtension looks up an extension by its publisher-qualified id. Returns nil without error when it is not installed.
	GetExtension(ctx context.Context, id string) (Extension, error)
	// GetConfigString reads section.key from the host configuration, falling back to defaultValue when unset or not a string.
	GetConfigString(ctx context.Context, section, key, defaultValue string) (string, error)

	// RegisterDisposable ties d to the session so that it is released when the session ends.
	RegisterDisposable(ctx context.Context, d Disposable) error
	// UnregisterDisposable forgets d without disposing it. d must be comparable, such as a pointer.
	UnregisterDisposable(ctx context.Context, d Disposable) error
	// DisposeAll releases every disposable registered for the session, most recent first.
	DisposeAll(ctx context.Context) error

	// DispatchProjectChange delivers an inbound project change to the listener of its subscription.
	DispatchProjectChange(ctx context.Context, params *entity.ProjectChangeNotification) error

	LogMessage(ctx context.Context, params *protocol.LogMessageParams) error
	ShowMessage(ctx context.Context, params *protocol.ShowMessageParams) error
}

// Disposable is a resource released when its owner goes away.
type Disposable interface {
	Dispose() error
}

// DisposeFunc adapts a plain function to Disposable.
type DisposeFunc func()

// Dispose calls f.
func (f DisposeFunc) Dispose() error {
	f()
	return nil
}

// ProjectListener receives project changes. A nil project means no project is selected.
type ProjectListener func(project *entity.ProjectInfo)

// Extension is a handle to an extension installed in the host.
type Extension interface {
	ID() string
	IsActive(ctx context.Context) (bool, error)
	Activate(ctx context.Context) error
	// Exports returns the extension's API, or nil when it exports nothing.
	Exports(ctx context.Context) (ProjectAPI, error)
}

// ProjectAPI is the API exported by the Project Admin extension.
type ProjectAPI interface {
	GetCurrentProject(ctx context.Context) (*entity.ProjectInfo, error)
	// OnDidChangeProject subscribes listener to project changes.
	// The result is a func() when the host handed back a callable unsubscribe, otherwise whatever the host returned.
	OnDidChangeProject(ctx context.Context, listener ProjectListener) (interface{}, error)
}

type projectSubscription struct {
	session  uuid.UUID
	listener ProjectListener
}

type gateway struct {
	clients     map[uuid.UUID]protocol.Client
	connections map[uuid.UUID]jsonrpc2.Conn
	disposables map[uuid.UUID][]Disposable
	listeners   map[uuid.UUID]projectSubscription
	mu          sync.Mutex
	logger      *zap.Logger
}

// New returns a Gateway for reaching extension hosts.
func New(logger *zap.Logger) Gateway {
	return &gateway{
		clients:     make(map[uuid.UUID]protocol.Client),
		connections: make(map[uuid.UUID]jsonrpc2.Conn),
		disposables: make(map[uuid.UUID][]Disposable),
		listeners:   make(map[uuid.UUID]projectSubscription),
		logger:      logger,
	}
}

func (g *gateway) RegisterClient(ctx context.Context, id uuid.UUID, conn *jsonrpc2.Conn) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.clients[id] = protocol.ClientDispatcher(*conn, g.logger)
	g.connections[id] = *conn

	return nil
}

func (g *gateway) DeregisterClient(ctx context.Context, id uuid.UUID) error {
	err := g.dispose(id)

	g.mu.Lock()
	defer g.mu.Unlock()

	delete(g.clients, id)
	delete(g.connections, id)
	delete(g.disposables, id)
	for subID, sub := range g.listeners {
		if sub.session == id {
			delete(g.listeners, subID)
		}
	}

	return err
}

func (g *gateway) GetExtension(ctx context.Context, id string) (Extension, error) {
	desc, err := g.describe(ctx, id)
	if err != nil {
		return nil, err
	}
	if !desc.Found {
		return nil, nil
	}
	return &extension{id: id, gateway: g}, nil
}

func (g *gateway) GetConfigString(ctx context.Context, section, key, defaultValue string) (string, error) {
	c, _, err := g.getClient(ctx)
	if err != nil {
		return "", fmt.Errorf(_errSendToClient, err)
	}

	values, err := c.Configuration(ctx, &protocol.ConfigurationParams{
		Items: []protocol.ConfigurationItem{{Section: section + "." + key}},
	})
	if err != nil {
		return "", &errors.HostCallError{Method: protocol.MethodWorkspaceConfiguration, Err: err}
	}

	if len(values) == 0 {
		return defaultValue, nil
	}
	value, ok := values[0].(string)
	if !ok {
		return defaultValue, nil
	}
	return value, nil
}

func (g *gateway) RegisterDisposable(ctx context.Context, d Disposable) error {
	id, err := mapper.ContextToSessionUUID(ctx)
	if err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.connections[id]; !ok {
		return &errors.UUIDNotFoundError{UUID: id}
	}
	g.disposables[id] = append(g.disposables[id], d)
	return nil
}

func (g *gateway) UnregisterDisposable(ctx context.Context, d Disposable) error {
	id, err := mapper.ContextToSessionUUID(ctx)
	if err != nil {
		return err
	}
	if d == nil || !reflect.TypeOf(d).Comparable() {
		return fmt.Errorf("disposable %T cannot be unregistered", d)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	registered := g.disposables[id]
	for i, existing := range registered {
		if existing != d {
			continue
		}
		if len(registered) == 1 {
			delete(g.disposables, id)
		} else {
			g.disposables[id] = append(registered[:i:i], registered[i+1:]...)
		}
		return nil
	}
	return nil
}

func (g *gateway) DisposeAll(ctx context.Context) error {
	id, err := mapper.ContextToSessionUUID(ctx)
	if err != nil {
		return err
	}
	return g.dispose(id)
}

func (g *gateway) DispatchProjectChange(ctx context.Context, params *entity.ProjectChangeNotification) error {
	id, err := mapper.ContextToSessionUUID(ctx)
	if err != nil {
		return err
	}

	g.mu.Lock()
	sub, ok := g.listeners[params.SubscriptionID]
	g.mu.Unlock()

	if !ok || sub.session != id {
		return &errors.UUIDNotFoundError{UUID: params.SubscriptionID}
	}

	sub.listener(params.Project)
	return nil
}

func (g *gateway) LogMessage(ctx context.Context, params *protocol.LogMessageParams) error {
	c, _, err := g.getClient(ctx)
	if err != nil {
		return fmt.Errorf(_errSendToClient, err)
	}
	return c.LogMessage(ctx, params)
}

func (g *gateway) ShowMessage(ctx context.Context, params *protocol.ShowMessageParams) error {
	c, _, err := g.getClient(ctx)
	if err != nil {
		return fmt.Errorf(_errSendToClient, err)
	}
	return c.ShowMessage(ctx, params)
}

func (g *gateway) getClient(ctx context.Context) (protocol.Client, jsonrpc2.Conn, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	id, err := mapper.ContextToSessionUUID(ctx)
	if err != nil {
		return nil, nil, err
	}

	client, ok := g.clients[id]
	if !ok {
		return nil, nil, &errors.UUIDNotFoundError{UUID: id}
	}

	conn, ok := g.connections[id]
	if !ok {
		return nil, nil, &errors.UUIDNotFoundError{UUID: id}
	}
	return client, conn, nil
}

// call sends a request to the session's host and decodes the response into result.
func (g *gateway) call(ctx context.Context, method string, params, result interface{}) error {
	_, conn, err := g.getClient(ctx)
	if err != nil {
		return fmt.Errorf(_errSendToClient, err)
	}
	if _, err := conn.Call(ctx, method, params, result); err != nil {
		return &errors.HostCallError{Method: method, Err: err}
	}
	return nil
}

func (g *gateway) notify(ctx context.Context, method string, params interface{}) error {
	_, conn, err := g.getClient(ctx)
	if err != nil {
		return fmt.Errorf(_errSendToClient, err)
	}
	if err := conn.Notify(ctx, method, params); err != nil {
		return &errors.HostCallError{Method: method, Err: err}
	}
	return nil
}

func (g *gateway) dispose(id uuid.UUID) error {
	g.mu.Lock()
	pending := g.disposables[id]
	delete(g.disposables, id)
	g.mu.Unlock()

	var err error
	for i := len(pending) - 1; i >= 0; i-- {
		err = multierr.Append(err, pending[i].Dispose())
	}
	return err
}

func (g *gateway) addListener(subID, session uuid.UUID, listener ProjectListener) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.listeners[subID] = projectSubscription{session: session, listener: listener}
}

func (g *gateway) removeListener(subID uuid.UUID) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.listeners, subID)
}
