package mapper

import (
	"context"
	"errors"
	"testing"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/winccoa/extension-bridge/src/bridge/entity"
	"github.com/winccoa/extension-bridge/src/bridge/factory"
	ulsperrors "github.com/winccoa/extension-bridge/src/bridge/internal/errors"
	"github.com/winccoa/extension-bridge/src/bridge/model"
	"go.lsp.dev/jsonrpc2"
)

func TestProjectInfoMapping(t *testing.T) {
	assert.Nil(t, ModelToProjectInfo(nil))

	wire := &model.Project{Name: "P1", OAInstallPath: "/opt/x"}
	info := ModelToProjectInfo(wire)
	assert.Equal(t, &entity.ProjectInfo{Name: "P1", InstallPath: "/opt/x"}, info)
}

func TestRequestToActivateParams(t *testing.T) {
	t.Run("filesystem path", func(t *testing.T) {
		req := factory.JSONRPCRequest("bridge/activate", model.Activate{ExtensionPath: "/home/u/.vscode/ext", HostVersion: "1.95.0"})
		params, err := RequestToActivateParams(req)
		require.NoError(t, err)
		assert.Equal(t, "/home/u/.vscode/ext", params.ExtensionPath)
		assert.Equal(t, "1.95.0", params.HostVersion)
	})

	t.Run("file uri", func(t *testing.T) {
		req := factory.JSONRPCRequest("bridge/activate", model.Activate{ExtensionPath: "file:///home/u/ext"})
		params, err := RequestToActivateParams(req)
		require.NoError(t, err)
		assert.Equal(t, "/home/u/ext", params.ExtensionPath)
	})

	t.Run("invalid params", func(t *testing.T) {
		req := factory.JSONRPCRequest("bridge/activate", struct{ ExtensionPath int }{5})
		_, err := RequestToActivateParams(req)
		assert.True(t, errors.Is(err, jsonrpc2.ErrParse))
	})

	t.Run("missing params", func(t *testing.T) {
		_, err := RequestToActivateParams(factory.JSONRPCRequest("bridge/activate", nil))
		assert.True(t, ulsperrors.IsBadRequest(err))
	})
}

func TestRequestToConfigurationChange(t *testing.T) {
	req := factory.JSONRPCNotification("bridge/didChangeConfiguration", model.ConfigurationChange{Affected: []string{"a.b"}})
	change, err := RequestToConfigurationChange(req)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.b"}, change.Affected)

	_, err = RequestToConfigurationChange(factory.JSONRPCNotification("bridge/didChangeConfiguration", "not-an-object"))
	assert.Error(t, err)
}

func TestRequestToProjectChange(t *testing.T) {
	id := factory.UUID()

	t.Run("with project", func(t *testing.T) {
		req := factory.JSONRPCNotification("winccoa/didChangeProject", model.ProjectChange{
			SubscriptionID: id.String(),
			Project:        &model.Project{Name: "P1", OAInstallPath: "/opt/x"},
		})
		change, err := RequestToProjectChange(req)
		require.NoError(t, err)
		assert.Equal(t, id, change.SubscriptionID)
		assert.Equal(t, &entity.ProjectInfo{Name: "P1", InstallPath: "/opt/x"}, change.Project)
	})

	t.Run("no project selected", func(t *testing.T) {
		req := factory.JSONRPCNotification("winccoa/didChangeProject", model.ProjectChange{SubscriptionID: id.String()})
		change, err := RequestToProjectChange(req)
		require.NoError(t, err)
		assert.Nil(t, change.Project)
	})

	t.Run("missing subscription", func(t *testing.T) {
		req := factory.JSONRPCNotification("winccoa/didChangeProject", model.ProjectChange{})
		_, err := RequestToProjectChange(req)
		assert.True(t, errors.Is(err, ulsperrors.NoUUIDOnWireError))
	})

	t.Run("malformed subscription", func(t *testing.T) {
		req := factory.JSONRPCNotification("winccoa/didChangeProject", model.ProjectChange{SubscriptionID: "nope"})
		_, err := RequestToProjectChange(req)
		assert.True(t, errors.Is(err, jsonrpc2.ErrParse))
	})
}

func TestContextToSessionUUID(t *testing.T) {
	_, err := ContextToSessionUUID(context.Background())
	var noSession *ulsperrors.NoSessionFoundError
	assert.ErrorAs(t, err, &noSession)

	id := factory.UUID()
	got, err := ContextToSessionUUID(SessionUUIDToContext(context.Background(), id))
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestSessionMapping(t *testing.T) {
	s := &entity.Session{UUID: uuid.Must(uuid.NewV4()), ExtensionPath: "/ext", HostVersion: "1.0", Activated: true}
	back, err := ModelToSession(SessionToModel(s))
	require.NoError(t, err)
	assert.Equal(t, s, back)
}
