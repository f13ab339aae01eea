package auth

import (
	"context"
	"healthme-client/internal/app/contracts"
	"healthme-client/internal/app/models"
	"healthme-client/internal/pkg/constvars"
	"healthme-client/internal/pkg/dto/requests"
	"healthme-client/internal/pkg/dto/responses"
	"healthme-client/internal/pkg/exceptions"
	"healthme-client/internal/pkg/utils"

	"go.uber.org/zap"
)

type authUsecase struct {
	sessions contracts.SessionStore
	backend  contracts.BackendClient
	router   contracts.RoleRouter
	inFlight utils.InFlight
	Log      *zap.Logger
}

func NewAuthUsecase(
	sessions contracts.SessionStore,
	backend contracts.BackendClient,
	router contracts.RoleRouter,
	logger *zap.Logger,
) contracts.AuthUsecase {
	return &authUsecase{
		sessions: sessions,
		backend:  backend,
		router:   router,
		Log:      logger,
	}
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*models.AuthResult, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	done, err := uc.inFlight.Begin()
	if err != nil {
		return nil, err
	}
	defer done()

	utils.SanitizeLoginRequest(request)
	err = utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	response, err := uc.backend.Login(ctx, request)
	if err != nil {
		uc.Log.Error("authUsecase.Login backend rejected login",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingErrorKindKey, string(exceptions.KindOf(err))),
			zap.Error(err),
		)
		return nil, err
	}

	session := sessionFrom(response.User, response.Token)
	err = uc.sessions.Save(ctx, session)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("authUsecase.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
		zap.String(constvars.LoggingSessionRoleKey, session.Role),
	)
	return &models.AuthResult{
		Session:  session,
		Redirect: uc.router.DestinationFor(session, true),
	}, nil
}

// Register signs the user up. A session is stored only when the backend
// returns a token with the new account.
func (uc *authUsecase) Register(ctx context.Context, request *requests.Register) (*models.AuthResult, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.Register called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	done, err := uc.inFlight.Begin()
	if err != nil {
		return nil, err
	}
	defer done()

	utils.SanitizeRegisterRequest(request)
	err = utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	response, err := uc.backend.Register(ctx, request)
	if err != nil {
		uc.Log.Error("authUsecase.Register backend rejected signup",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingErrorKindKey, string(exceptions.KindOf(err))),
			zap.Error(err),
		)
		return nil, err
	}

	result := &models.AuthResult{Redirect: uc.router.AfterSignup(response.User.Role)}
	if response.Token != "" {
		session := sessionFrom(response.User, response.Token)
		err = uc.sessions.Save(ctx, session)
		if err != nil {
			return nil, err
		}
		result.Session = session
	}

	uc.Log.Info("authUsecase.Register succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionRoleKey, response.User.Role),
		zap.Bool("session_stored", result.Session != nil),
	)
	return result, nil
}

// Logout always clears the local session. The backend call is best effort.
func (uc *authUsecase) Logout(ctx context.Context) (*models.AuthResult, error) {
	requestID := utils.GetRequestID(ctx)

	session, err := uc.sessions.Load(ctx)
	if err != nil {
		return nil, err
	}

	if session != nil {
		err = uc.backend.Logout(ctx, session.Token)
		if err != nil {
			uc.Log.Warn("authUsecase.Logout backend logout failed, clearing local session anyway",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingErrorKindKey, string(exceptions.KindOf(err))),
				zap.Error(err),
			)
		}
	}

	err = uc.sessions.Clear(ctx)
	if err != nil {
		return nil, err
	}
	return &models.AuthResult{Redirect: constvars.PathLogin}, nil
}

func (uc *authUsecase) CurrentSession(ctx context.Context) (*models.Session, error) {
	return uc.sessions.Load(ctx)
}

func (uc *authUsecase) InFlight() bool {
	return uc.inFlight.Active()
}

func sessionFrom(user *responses.AuthUser, token string) *models.Session {
	return &models.Session{
		UserID:   user.ID,
		FullName: user.FullName,
		Email:    user.Email,
		Role:     user.Role,
		Token:    token,
	}
}
