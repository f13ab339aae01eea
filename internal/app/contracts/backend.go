package contracts

import (
	"context"
	"healthme-client/internal/app/models"
	"healthme-client/internal/pkg/dto/requests"
	"healthme-client/internal/pkg/dto/responses"

	"github.com/goccy/go-json"
)

// BackendClient exposes one typed call per backend endpoint. Every response is
// decoded into its schema and validated before it is returned.
type BackendClient interface {
	Register(ctx context.Context, request *requests.Register) (*responses.Register, error)
	Login(ctx context.Context, request *requests.Login) (*responses.Login, error)
	Logout(ctx context.Context, token string) error

	SaveKyc(ctx context.Context, token string, details *models.KycDetails) error
	UploadKycDocument(ctx context.Context, token string, document *Document) error
	GetKycStatus(ctx context.Context, token string) (string, error)

	CreateAppointment(ctx context.Context, token string, request *requests.CreateAppointment) (*models.Appointment, error)
	ListAppointments(ctx context.Context, token, userID string) ([]models.Appointment, error)
	GetAppointment(ctx context.Context, token, appointmentID string) (*models.Appointment, error)
	RescheduleAppointment(ctx context.Context, token, appointmentID string, request *requests.RescheduleAppointment) error
	CancelAppointment(ctx context.Context, token, appointmentID string) error

	GetPractitionerOverview(ctx context.Context, token string) (json.RawMessage, error)
	ListPractitionerAppointments(ctx context.Context, token string) ([]models.Appointment, error)
	ListPractitionerPatients(ctx context.Context, token string) ([]models.PatientEntry, error)
	GetPractitionerProfile(ctx context.Context, token string) (*models.Practitioner, error)
	UpdatePractitionerProfile(ctx context.Context, token string, request *requests.UpdatePractitionerProfile) error
	ListPublicPractitioners(ctx context.Context) ([]models.Practitioner, error)
	GetPublicPractitioner(ctx context.Context, practitionerID string) (*models.Practitioner, error)
	ListNearbyPractitioners(ctx context.Context, request *requests.NearbyPractitioners) ([]models.NearbyPractitioner, error)

	GetAdminOverview(ctx context.Context, token string) (json.RawMessage, error)
	GetAdminPanel(ctx context.Context, token, panel string) ([]json.RawMessage, error)

	GetPatientSection(ctx context.Context, token, userID, section string, target responses.Enveloped) error
}
