package contracts

import (
	"context"
	"healthme-client/internal/app/models"
	"healthme-client/internal/pkg/dto/requests"
)

type AppointmentUsecase interface {
	List(ctx context.Context) ([]models.Appointment, error)
	Get(ctx context.Context, appointmentID string) (*models.Appointment, error)
	Create(ctx context.Context, request *requests.CreateAppointment) (*models.Appointment, error)
	Reschedule(ctx context.Context, appointmentID string, request *requests.RescheduleAppointment) (*models.Appointment, error)
	Cancel(ctx context.Context, appointmentID string) (*models.Appointment, error)
	Projection() []models.Appointment
	InFlight() bool
}
