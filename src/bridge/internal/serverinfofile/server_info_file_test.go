package serverinfofile

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/winccoa/extension-bridge/src/bridge/internal/fs"
	"go.uber.org/config"
	"go.uber.org/fx/fxtest"
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
		yaml    string
		wantErr bool
	}{
		{
			name: "valid path",
			yaml: "serverInfoFilePath: /tmp/bridge/info.json",
		},
		{
			name:    "missing key",
			yaml:    "other: value",
			wantErr: true,
		},
		{
			name:    "wrong type",
			yaml:    "serverInfoFilePath:\n  nested: true",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(Params{
				Config:    newProvider(t, tt.yaml),
				Lifecycle: fxtest.NewLifecycle(t),
				Logger:    zap.NewNop().Sugar(),
				FS:        fs.New(),
			})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUpdateField(t *testing.T) {
	infoPath := filepath.Join(t.TempDir(), "nested", "info.json")
	lc := fxtest.NewLifecycle(t)

	f, err := New(Params{
		Config:    newProvider(t, "serverInfoFilePath: "+infoPath),
		Lifecycle: lc,
		Logger:    zap.NewNop().Sugar(),
		FS:        fs.New(),
	})
	require.NoError(t, err)
	lc.RequireStart()

	require.NoError(t, f.UpdateField("bridge-address", "127.0.0.1:27890"))
	require.NoError(t, f.UpdateField("pid", "42"))

	contents, err := os.ReadFile(infoPath)
	require.NoError(t, err)
	var parsed map[string]string
	require.NoError(t, json.Unmarshal(contents, &parsed))
	assert.Equal(t, map[string]string{"bridge-address": "127.0.0.1:27890", "pid": "42"}, parsed)

	lc.RequireStop()
	_, err = os.Stat(infoPath)
	assert.True(t, os.IsNotExist(err))
}

func TestOnStopWithoutWrite(t *testing.T) {
	m := module{infofile: filepath.Join(t.TempDir(), "never-written.json"), fs: fs.New()}
	assert.NoError(t, m.OnStop(context.Background()))
}
