package contracts

import (
	"context"
	"healthme-client/internal/app/models"
	"healthme-client/internal/pkg/dto/requests"
)

type PractitionerUsecase interface {
	Dashboard(ctx context.Context) (*models.PractitionerDashboard, error)
	UpdateProfile(ctx context.Context, request *requests.UpdatePractitionerProfile) error
	ListPublic(ctx context.Context, search string) ([]models.Practitioner, error)
	GetPublic(ctx context.Context, practitionerID string) (*models.Practitioner, error)
	Nearby(ctx context.Context, request *requests.NearbyPractitioners) ([]models.NearbyPractitioner, error)
	InFlight() bool
}
