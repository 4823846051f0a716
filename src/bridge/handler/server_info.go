package handler

import (
	"fmt"
	"os"
	"strconv"

	"github.com/winccoa/extension-bridge/src/bridge/entity"
	"github.com/winccoa/extension-bridge/src/bridge/internal/serverinfofile"
)

const (
	_infoKeyPID       = "bridge-pid"
	_infoKeyExtension = "bridge-extension"
	_infoKeyCore      = "bridge-core-extension"
)

// Output process details next to the JSON-RPC address so the host shim can tell which daemon it reached.
func outputProcessInfo(infofile serverinfofile.ServerInfoFile) error {
	fields := []struct {
		key   string
		value string
	}{
		{_infoKeyPID, strconv.Itoa(os.Getpid())},
		{_infoKeyExtension, entity.ExtensionID},
		{_infoKeyCore, entity.CoreExtensionID},
	}

	for _, f := range fields {
		if err := infofile.UpdateField(f.key, f.value); err != nil {
			return fmt.Errorf("outputting %q to info file: %w", f.key, err)
		}
	}
	return nil
}
