package practitioners

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

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type practitionerUsecase struct {
	sessions contracts.SessionStore
	backend  contracts.BackendClient
	inFlight utils.InFlight
	Log      *zap.Logger
}

func NewPractitionerUsecase(sessions contracts.SessionStore, backend contracts.BackendClient, logger *zap.Logger) contracts.PractitionerUsecase {
	return &practitionerUsecase{
		sessions: sessions,
		backend:  backend,
		Log:      logger,
	}
}

// Dashboard loads the four practitioner views concurrently. Any failure fails
// the whole dashboard.
func (uc *practitionerUsecase) Dashboard(ctx context.Context) (*models.PractitionerDashboard, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("practitionerUsecase.Dashboard called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	dashboard := new(models.PractitionerDashboard)
	err := uc.sessions.WithToken(ctx, func(ctx context.Context, session *models.Session) error {
		if session.Role != constvars.RolePractitioner {
			return exceptions.ErrPractitionerOnly(session.Role)
		}

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			overview, err := uc.backend.GetPractitionerOverview(gctx, session.Token)
			dashboard.Overview = overview
			return err
		})
		g.Go(func() error {
			appointments, err := uc.backend.ListPractitionerAppointments(gctx, session.Token)
			dashboard.Appointments = appointments
			return err
		})
		g.Go(func() error {
			patients, err := uc.backend.ListPractitionerPatients(gctx, session.Token)
			dashboard.Patients = patients
			return err
		})
		g.Go(func() error {
			profile, err := uc.backend.GetPractitionerProfile(gctx, session.Token)
			if profile != nil {
				dashboard.Profile = *profile
			}
			return err
		})
		return g.Wait()
	})
	if err != nil {
		uc.Log.Error("practitionerUsecase.Dashboard failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingErrorKindKey, string(exceptions.KindOf(err))),
			zap.Error(err),
		)
		return nil, err
	}
	return dashboard, nil
}

func (uc *practitionerUsecase) UpdateProfile(ctx context.Context, request *requests.UpdatePractitionerProfile) error {
	done, err := uc.inFlight.Begin()
	if err != nil {
		return err
	}
	defer done()

	utils.SanitizeUpdatePractitionerProfileRequest(request)
	err = utils.ValidateStruct(request)
	if err != nil {
		return exceptions.ErrInputValidation(err)
	}

	return uc.sessions.WithToken(ctx, func(ctx context.Context, session *models.Session) error {
		if session.Role != constvars.RolePractitioner {
			return exceptions.ErrPractitionerOnly(session.Role)
		}
		return uc.backend.UpdatePractitionerProfile(ctx, session.Token, request)
	})
}

// ListPublic returns the public directory, filtered by a case-insensitive
// match on name, specialization, focus or location when search is set.
func (uc *practitionerUsecase) ListPublic(ctx context.Context, search string) ([]models.Practitioner, error) {
	practitioners, err := uc.backend.ListPublicPractitioners(ctx)
	if err != nil {
		return nil, err
	}

	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		return practitioners, nil
	}

	matches := make([]models.Practitioner, 0, len(practitioners))
	for _, practitioner := range practitioners {
		if matchesSearch(practitioner, search) {
			matches = append(matches, practitioner)
		}
	}
	return matches, nil
}

func (uc *practitionerUsecase) GetPublic(ctx context.Context, practitionerID string) (*models.Practitioner, error) {
	practitionerID = strings.TrimSpace(practitionerID)
	if practitionerID == "" {
		return nil, exceptions.ErrClientCustomMessage(errors.New("practitioner id is required"))
	}
	return uc.backend.GetPublicPractitioner(ctx, practitionerID)
}

// Nearby lists practitioners close to the given coordinates for the booking
// form. Coordinates are checked before the backend is called.
func (uc *practitionerUsecase) Nearby(ctx context.Context, request *requests.NearbyPractitioners) ([]models.NearbyPractitioner, error) {
	utils.SanitizeNearbyPractitionersRequest(request)
	err := utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	uc.Log.Debug("practitionerUsecase.Nearby called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
	)
	return uc.backend.ListNearbyPractitioners(ctx, request)
}

func (uc *practitionerUsecase) InFlight() bool {
	return uc.inFlight.Active()
}

func matchesSearch(practitioner models.Practitioner, search string) bool {
	for _, field := range []string{practitioner.FullName, practitioner.Specialization, practitioner.Focus, practitioner.Location} {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	return false
}
