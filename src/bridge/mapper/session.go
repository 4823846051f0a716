package mapper

import (
	"context"

	"github.com/gofrs/uuid"
	"github.com/winccoa/extension-bridge/src/bridge/entity"
	"github.com/winccoa/extension-bridge/src/bridge/internal/errors"
	"github.com/winccoa/extension-bridge/src/bridge/model"
)

// SessionToModel maps a Session entity to its model equivalent.
func SessionToModel(f *entity.Session) *model.Session {
	return &model.Session{
		UUID:          f.UUID,
		Conn:          f.Conn,
		ExtensionPath: f.ExtensionPath,
		HostVersion:   f.HostVersion,
		Activated:     f.Activated,
	}
}

// ModelToSession maps a model Session to its entity equivalent.
func ModelToSession(f *model.Session) (*entity.Session, error) {
	return &entity.Session{
		UUID:          f.UUID,
		Conn:          f.Conn,
		ExtensionPath: f.ExtensionPath,
		HostVersion:   f.HostVersion,
		Activated:     f.Activated,
	}, nil
}

// ContextToSessionUUID extracts the session UUID from a context.
func ContextToSessionUUID(c context.Context) (uuid.UUID, error) {
	s, ok := c.Value(entity.SessionContextKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, &errors.NoSessionFoundError{}
	}
	return s, nil
}

// SessionUUIDToContext returns a context carrying the session UUID.
func SessionUUIDToContext(c context.Context, id uuid.UUID) context.Context {
	return context.WithValue(c, entity.SessionContextKey, id)
}
