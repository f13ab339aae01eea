package contracts

import (
	"context"
	"healthme-client/internal/app/models"
)

type SessionStore interface {
	Save(ctx context.Context, session *models.Session) error
	Load(ctx context.Context) (*models.Session, error)
	Clear(ctx context.Context) error
	CurrentRole(ctx context.Context) string
	WithToken(ctx context.Context, fn func(ctx context.Context, session *models.Session) error) error
}
