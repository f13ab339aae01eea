package contracts

import (
	"context"
	"healthme-client/internal/app/models"
	"healthme-client/internal/pkg/dto/requests"
)

type AuthUsecase interface {
	Login(ctx context.Context, request *requests.Login) (*models.AuthResult, error)
	Register(ctx context.Context, request *requests.Register) (*models.AuthResult, error)
	Logout(ctx context.Context) (*models.AuthResult, error)
	CurrentSession(ctx context.Context) (*models.Session, error)
	InFlight() bool
}
