package bridge

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/winccoa/extension-bridge/src/bridge/controller/extension/extensionmock"
	"github.com/winccoa/extension-bridge/src/bridge/entity"
	"github.com/winccoa/extension-bridge/src/bridge/factory"
	"github.com/winccoa/extension-bridge/src/bridge/model"
	"go.lsp.dev/jsonrpc2"
	"go.uber.org/mock/gomock"
)

func TestDidChangeConfiguration(t *testing.T) {
	tests := []struct {
		name            string
		controllerError error
		wantErr         bool
	}{
		{
			name:            "error from controller",
			controllerError: errors.New("controller error"),
			wantErr:         true,
		},
		{
			name: "no error from controller",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			ctx := context.Background()
			replier, replies := newAsyncReplier()

			affected := []string{entity.QualifiedConfigKey(entity.ConfigKeyPathSource)}
			c := extensionmock.NewMockController(ctrl)
			c.EXPECT().DidChangeConfiguration(gomock.Any(), &entity.ConfigurationChange{Affected: affected}).Return(tt.controllerError)

			r := jsonRPCRouter{extension: c}
			req, _ := jsonrpc2.NewNotification(MethodDidChangeConfiguration, model.ConfigurationChange{Affected: affected})
			require.NoError(t, r.HandleReq(ctx, replier, req))

			reply := awaitReply(t, replies)
			if tt.wantErr {
				assert.Error(t, reply.err)
			} else {
				assert.NoError(t, reply.err)
			}
		})
	}
}

func TestDidChangeProject(t *testing.T) {
	subID := factory.UUID()

	tests := []struct {
		name       string
		params     interface{}
		setupMocks func(c *extensionmock.MockController)
		wantErr    bool
	}{
		{
			name: "project selected",
			params: model.ProjectChange{
				SubscriptionID: subID.String(),
				Project:        &model.Project{Name: "P1", OAInstallPath: "/opt/WinCC_OA/3.19"},
			},
			setupMocks: func(c *extensionmock.MockController) {
				c.EXPECT().DidChangeProject(gomock.Any(), &entity.ProjectChangeNotification{
					SubscriptionID: subID,
					Project:        factory.ProjectInfo(1),
				}).Return(nil)
			},
		},
		{
			name:   "no project selected",
			params: model.ProjectChange{SubscriptionID: subID.String()},
			setupMocks: func(c *extensionmock.MockController) {
				c.EXPECT().DidChangeProject(gomock.Any(), &entity.ProjectChangeNotification{SubscriptionID: subID}).Return(nil)
			},
		},
		{
			name:   "error from controller",
			params: model.ProjectChange{SubscriptionID: subID.String()},
			setupMocks: func(c *extensionmock.MockController) {
				c.EXPECT().DidChangeProject(gomock.Any(), gomock.Any()).Return(errors.New("controller error"))
			},
			wantErr: true,
		},
		{
			name:       "missing subscription id",
			params:     model.ProjectChange{},
			setupMocks: func(c *extensionmock.MockController) {},
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			c := extensionmock.NewMockController(ctrl)
			tt.setupMocks(c)

			r := jsonRPCRouter{extension: c}
			req, _ := jsonrpc2.NewNotification(MethodDidChangeProject, tt.params)
			err := r.HandleReq(context.Background(), newMockReplier(), req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIntegrationState(t *testing.T) {
	t.Run("state reported", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		c := extensionmock.NewMockController(ctrl)
		c.EXPECT().IntegrationState(gomock.Any()).Return(entity.IntegrationStateStatic, nil)

		var got interface{}
		replier := func(ctx context.Context, result interface{}, err error) error {
			got = result
			return err
		}

		r := jsonRPCRouter{extension: c}
		req, _ := jsonrpc2.NewCall(jsonrpc2.NewNumberID(7), MethodIntegrationState, nil)
		require.NoError(t, r.HandleReq(context.Background(), replier, req))
		assert.Equal(t, &model.IntegrationState{IntegrationState: "static"}, got)
	})

	t.Run("error from controller", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		c := extensionmock.NewMockController(ctrl)
		c.EXPECT().IntegrationState(gomock.Any()).Return(entity.IntegrationStateUninitialized, errors.New("no session"))

		r := jsonRPCRouter{extension: c}
		req, _ := jsonrpc2.NewCall(jsonrpc2.NewNumberID(7), MethodIntegrationState, nil)
		assert.Error(t, r.HandleReq(context.Background(), newMockReplier(), req))
	})
}
