package factory

import (
	"fmt"

	"github.com/gofrs/uuid"
	"github.com/winccoa/extension-bridge/src/bridge/entity"
	"go.lsp.dev/jsonrpc2"
)

// UUID is a user-defined factory for a random uuid.UUID.
func UUID() uuid.UUID {
	return uuid.Must(uuid.NewV4())
}

// JSONRPCRequest is a user-defined factory for a JSON-RPC request containing the specified method and parameters.
func JSONRPCRequest(method string, params interface{}) jsonrpc2.Request {
	req, _ := jsonrpc2.NewCall(jsonrpc2.NewNumberID(5), method, params)
	return req
}

// JSONRPCNotification is a user-defined factory for a JSON-RPC notification containing the specified method and parameters.
func JSONRPCNotification(method string, params interface{}) jsonrpc2.Request {
	n, _ := jsonrpc2.NewNotification(method, params)
	return n
}

// ProjectInfo is a factory for a ProjectInfo with a name derived from id.
func ProjectInfo(id int) *entity.ProjectInfo {
	return &entity.ProjectInfo{
		Name:        fmt.Sprintf("P%d", id),
		InstallPath: fmt.Sprintf("/opt/WinCC_OA/3.%d", 18+id),
	}
}
