package contracts

import (
	"context"
	"healthme-client/internal/app/models"
)

type AdminUsecase interface {
	Dashboard(ctx context.Context, panel string) (*models.AdminDashboard, error)
}

type PatientUsecase interface {
	Dashboard(ctx context.Context) (*models.PatientDashboard, error)
}
