package jsonrpcfx

import (
	"context"
	"errors"
	"net"
	"strings"
	"testing"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/winccoa/extension-bridge/idl/mock/jsonrpc2mock"
	"github.com/winccoa/extension-bridge/src/bridge/internal/serverinfofile/serverinfofilemock"
	"go.lsp.dev/jsonrpc2"
	"go.uber.org/config"
	"go.uber.org/fx/fxtest"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newProvider(t *testing.T, yaml string) config.Provider {
	p, err := config.NewYAML(config.Source(strings.NewReader(yaml)))
	require.NoError(t, err)
	return p
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		params  func(t *testing.T) Params
		wantErr bool
	}{
		{
			name:    "missing required params",
			params:  func(t *testing.T) Params { return Params{} },
			wantErr: true,
		},
		{
			name: "missing address",
			params: func(t *testing.T) Params {
				return Params{
					Lifecycle: fxtest.NewLifecycle(t),
					Config:    newProvider(t, "jsonrpc:\n  other: 1"),
				}
			},
			wantErr: true,
		},
		{
			name: "all required params are present",
			params: func(t *testing.T) Params {
				return Params{
					Lifecycle: fxtest.NewLifecycle(t),
					Config:    newProvider(t, "jsonrpc:\n  address: 127.0.0.1:0"),
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.params(t))
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRegisterConnectionManager(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := module{}

	mockConnectionManager := NewMockConnectionManager(ctrl)

	assert.NoError(t, m.RegisterConnectionManager(mockConnectionManager))
	assert.Error(t, m.RegisterConnectionManager(mockConnectionManager))
}

func TestServeStream(t *testing.T) {
	ctx := context.Background()

	t.Run("no connection manager registered", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := module{logger: zap.NewNop().Sugar()}
		conn := jsonrpc2mock.NewMockConn(ctrl)

		assert.Error(t, m.ServeStream(ctx, conn))
	})

	t.Run("connection manager rejects connection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mgr := NewMockConnectionManager(ctrl)
		mgr.EXPECT().NewConnection(ctx, gomock.Any()).Return(nil, errors.New("rejected"))
		m := module{logger: zap.NewNop().Sugar(), connectionMgr: mgr}

		assert.Error(t, m.ServeStream(ctx, jsonrpc2mock.NewMockConn(ctrl)))
	})

	t.Run("serves until connection closes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		id := uuid.Must(uuid.NewV4())

		router := NewMockRouter(ctrl)
		router.EXPECT().UUID().Return(id).AnyTimes()

		mgr := NewMockConnectionManager(ctrl)
		mgr.EXPECT().NewConnection(ctx, gomock.Any()).Return(router, nil)
		mgr.EXPECT().RemoveConnection(ctx, id)

		done := make(chan struct{})
		close(done)
		conn := jsonrpc2mock.NewMockConn(ctrl)
		conn.EXPECT().Go(ctx, gomock.Any())
		conn.EXPECT().Done().Return((<-chan struct{})(done))
		conn.EXPECT().Err().Return(nil)

		m := module{logger: zap.NewNop().Sugar(), connectionMgr: mgr}
		assert.NoError(t, m.ServeStream(ctx, conn))
	})
}

func TestOnStartOnStop(t *testing.T) {
	ctrl := gomock.NewController(t)
	infoFile := serverinfofilemock.NewMockServerInfoFile(ctrl)

	var published string
	infoFile.EXPECT().UpdateField(_outputKey, gomock.Any()).DoAndReturn(func(key, value string) error {
		published = value
		return nil
	})

	m := module{
		Address:        "127.0.0.1:0",
		logger:         zap.NewNop().Sugar(),
		serverInfoFile: infoFile,
	}
	require.NoError(t, m.OnStart(context.Background()))

	host, port, err := net.SplitHostPort(published)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1", host)
	assert.NotEqual(t, "0", port)

	assert.NoError(t, m.OnStop(context.Background()))
	assert.NoError(t, m.OnStop(context.Background()), "closing twice is tolerated")
}

func TestOnStartPublishFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	infoFile := serverinfofilemock.NewMockServerInfoFile(ctrl)
	infoFile.EXPECT().UpdateField(_outputKey, gomock.Any()).Return(errors.New("read-only"))

	m := module{
		Address:        "127.0.0.1:0",
		logger:         zap.NewNop().Sugar(),
		serverInfoFile: infoFile,
	}
	assert.Error(t, m.OnStart(context.Background()))
}

func TestSetupWithoutAddress(t *testing.T) {
	m := module{}
	assert.Error(t, m.setup())
}

var _ jsonrpc2.StreamServer = (*module)(nil)
