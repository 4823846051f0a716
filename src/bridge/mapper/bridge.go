package mapper

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gofrs/uuid"
	"github.com/winccoa/extension-bridge/src/bridge/entity"
	"github.com/winccoa/extension-bridge/src/bridge/internal/errors"
	"github.com/winccoa/extension-bridge/src/bridge/model"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/uri"
)

// ModelToProjectInfo maps a wire project to a ProjectInfo. A nil project stays nil.
func ModelToProjectInfo(p *model.Project) *entity.ProjectInfo {
	if p == nil {
		return nil
	}
	return &entity.ProjectInfo{
		Name:        p.Name,
		InstallPath: p.OAInstallPath,
	}
}

// RequestToActivateParams maps the parameters of an activate request.
func RequestToActivateParams(req jsonrpc2.Request) (*entity.ActivateParams, error) {
	params := model.Activate{}
	if err := unmarshalParams(req, &params); err != nil {
		return nil, err
	}
	return &entity.ActivateParams{
		ExtensionPath: ExtensionPathFromWire(params.ExtensionPath),
		HostVersion:   params.HostVersion,
	}, nil
}

// RequestToConfigurationChange maps the parameters of a configuration change notification.
func RequestToConfigurationChange(req jsonrpc2.Request) (*entity.ConfigurationChange, error) {
	params := model.ConfigurationChange{}
	if err := unmarshalParams(req, &params); err != nil {
		return nil, err
	}
	return &entity.ConfigurationChange{Affected: params.Affected}, nil
}

// RequestToProjectChange maps the parameters of a project change notification.
func RequestToProjectChange(req jsonrpc2.Request) (*entity.ProjectChangeNotification, error) {
	params := model.ProjectChange{}
	if err := unmarshalParams(req, &params); err != nil {
		return nil, err
	}
	if params.SubscriptionID == "" {
		return nil, wrapErrParse(errors.NoUUIDOnWireError)
	}
	id, err := uuid.FromString(params.SubscriptionID)
	if err != nil {
		return nil, wrapErrParse(err)
	}
	return &entity.ProjectChangeNotification{
		SubscriptionID: id,
		Project:        ModelToProjectInfo(params.Project),
	}, nil
}

// ExtensionPathFromWire accepts either a filesystem path or a file:// URI and returns a filesystem path.
func ExtensionPathFromWire(p string) string {
	if strings.HasPrefix(p, uri.FileScheme+"://") {
		return uri.New(p).Filename()
	}
	return p
}

func unmarshalParams(req jsonrpc2.Request, v interface{}) error {
	raw := req.Params()
	if len(raw) == 0 || string(raw) == "null" {
		return wrapErrParse(errors.NoMessageOnWireError)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return wrapErrParse(err)
	}
	return nil
}

func wrapErrParse(err error) error {
	return fmt.Errorf("%w: %w", jsonrpc2.ErrParse, err)
}
