package appointments

import (
	"context"
	"errors"
	"healthme-client/internal/app/contracts"
	"healthme-client/internal/app/models"
	"healthme-client/internal/pkg/constvars"
	"healthme-client/internal/pkg/dto/requests"
	"healthme-client/internal/pkg/exceptions"
	"healthme-client/internal/pkg/utils"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// appointmentUsecase keeps a client projection of the patient's appointments.
// The projection only changes after the backend confirmed a transition.
type appointmentUsecase struct {
	sessions contracts.SessionStore
	backend  contracts.BackendClient
	inFlight utils.InFlight
	Log      *zap.Logger

	mu         sync.RWMutex
	projection []models.Appointment
}

func NewAppointmentUsecase(sessions contracts.SessionStore, backend contracts.BackendClient, logger *zap.Logger) contracts.AppointmentUsecase {
	return &appointmentUsecase{
		sessions: sessions,
		backend:  backend,
		Log:      logger,
	}
}

func (uc *appointmentUsecase) List(ctx context.Context) ([]models.Appointment, error) {
	uc.Log.Info("appointmentUsecase.List called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
	)

	var appointments []models.Appointment
	err := uc.sessions.WithToken(ctx, func(ctx context.Context, session *models.Session) error {
		var err error
		appointments, err = uc.backend.ListAppointments(ctx, session.Token, session.UserID)
		return err
	})
	if err != nil {
		return nil, err
	}

	uc.mu.Lock()
	uc.projection = appointments
	uc.mu.Unlock()

	return uc.Projection(), nil
}

func (uc *appointmentUsecase) Get(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	appointmentID, err := requireAppointmentID(appointmentID)
	if err != nil {
		return nil, err
	}

	var appointment *models.Appointment
	err = uc.sessions.WithToken(ctx, func(ctx context.Context, session *models.Session) error {
		var err error
		appointment, err = uc.backend.GetAppointment(ctx, session.Token, appointmentID)
		return err
	})
	if err != nil {
		return nil, err
	}

	uc.apply(appointmentID, func(existing *models.Appointment) { *existing = *appointment })
	return appointment, nil
}

// Create books a new appointment. The projection gains the entry only once the
// backend accepted it; without an echoed appointment the entry is built from
// the request as pending.
func (uc *appointmentUsecase) Create(ctx context.Context, request *requests.CreateAppointment) (*models.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPractitionerIDKey, request.PractitionerID),
	)

	utils.SanitizeCreateAppointmentRequest(request)
	err := utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	done, err := uc.inFlight.Begin()
	if err != nil {
		return nil, err
	}
	defer done()

	var created *models.Appointment
	err = uc.sessions.WithToken(ctx, func(ctx context.Context, session *models.Session) error {
		var err error
		created, err = uc.backend.CreateAppointment(ctx, session.Token, request)
		return err
	})
	if err != nil {
		uc.Log.Warn("appointmentUsecase.Create backend refused appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if created == nil {
		created = &models.Appointment{
			Date:         request.Date,
			Time:         request.Time,
			Status:       constvars.AppointmentStatusPending,
			Practitioner: &models.PractitionerSummary{ID: request.PractitionerID, Specialization: request.Specialty},
		}
	}

	uc.mu.Lock()
	uc.projection = append(uc.projection, *created)
	uc.mu.Unlock()

	return created, nil
}

func (uc *appointmentUsecase) Reschedule(ctx context.Context, appointmentID string, request *requests.RescheduleAppointment) (*models.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.Reschedule called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	appointmentID, err := requireAppointmentID(appointmentID)
	if err != nil {
		return nil, err
	}

	utils.SanitizeRescheduleAppointmentRequest(request)
	err = utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	done, err := uc.inFlight.Begin()
	if err != nil {
		return nil, err
	}
	defer done()

	err = uc.sessions.WithToken(ctx, func(ctx context.Context, session *models.Session) error {
		return uc.backend.RescheduleAppointment(ctx, session.Token, appointmentID, request)
	})
	if err != nil {
		return nil, err
	}

	updated, ok := uc.apply(appointmentID, func(existing *models.Appointment) {
		existing.Date = request.Date
		existing.Time = request.Time
	})
	if ok {
		return updated, nil
	}
	return uc.Get(ctx, appointmentID)
}

// Cancel asks the backend to cancel. A rejection (for example "Already
// cancelled") is returned as is and the projection is left untouched.
func (uc *appointmentUsecase) Cancel(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.Cancel called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	appointmentID, err := requireAppointmentID(appointmentID)
	if err != nil {
		return nil, err
	}

	done, err := uc.inFlight.Begin()
	if err != nil {
		return nil, err
	}
	defer done()

	err = uc.sessions.WithToken(ctx, func(ctx context.Context, session *models.Session) error {
		return uc.backend.CancelAppointment(ctx, session.Token, appointmentID)
	})
	if err != nil {
		uc.Log.Warn("appointmentUsecase.Cancel backend refused cancellation",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
			zap.Error(err),
		)
		return nil, err
	}

	updated, ok := uc.apply(appointmentID, func(existing *models.Appointment) {
		existing.Status = constvars.AppointmentStatusCancelled
	})
	if ok {
		return updated, nil
	}
	return &models.Appointment{ID: appointmentID, Status: constvars.AppointmentStatusCancelled}, nil
}

// Projection returns a copy of the last confirmed appointment list.
func (uc *appointmentUsecase) Projection() []models.Appointment {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	appointments := make([]models.Appointment, len(uc.projection))
	copy(appointments, uc.projection)
	return appointments
}

func (uc *appointmentUsecase) InFlight() bool {
	return uc.inFlight.Active()
}

func (uc *appointmentUsecase) apply(appointmentID string, mutate func(*models.Appointment)) (*models.Appointment, bool) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	for i := range uc.projection {
		if uc.projection[i].ID == appointmentID {
			mutate(&uc.projection[i])
			updated := uc.projection[i]
			return &updated, true
		}
	}
	return nil, false
}

func requireAppointmentID(appointmentID string) (string, error) {
	appointmentID = strings.TrimSpace(appointmentID)
	if appointmentID == "" {
		return "", exceptions.ErrClientCustomMessage(errors.New("appointment id is required"))
	}
	return appointmentID, nil
}
