package session

import (
	"context"
	"errors"
	"healthme-client/internal/app/contracts"
	"healthme-client/internal/app/models"
	"healthme-client/internal/pkg/constvars"
	"healthme-client/internal/pkg/exceptions"
	"healthme-client/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type sessionStore struct {
	store contracts.KeyValueStore
	Log   *zap.Logger
}

func NewSessionStore(store contracts.KeyValueStore, logger *zap.Logger) contracts.SessionStore {
	return &sessionStore{
		store: store,
		Log:   logger,
	}
}

// Save overwrites any previous session. The token is also written under its
// own key for pages that only need the bearer token.
func (s *sessionStore) Save(ctx context.Context, session *models.Session) error {
	if session == nil || session.Token == "" {
		return exceptions.ErrClientCustomMessage(errors.New(constvars.ErrClientNotLoggedIn))
	}

	data, err := json.Marshal(session)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	err = s.store.Set(ctx, constvars.StoreKeyUser, string(data))
	if err != nil {
		return err
	}

	err = s.store.Set(ctx, constvars.StoreKeyToken, session.Token)
	if err != nil {
		return err
	}

	s.Log.Debug("sessionStore.Save succeeded",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingSessionRoleKey, session.Role),
	)
	return nil
}

// Load returns nil when no usable session is stored. Unparsable or token-less
// values count as absent and are removed so later pages see a clean store.
func (s *sessionStore) Load(ctx context.Context) (*models.Session, error) {
	requestID := utils.GetRequestID(ctx)

	raw, found, err := s.store.Get(ctx, constvars.StoreKeyUser)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}

	session := new(models.Session)
	err = json.Unmarshal([]byte(raw), session)
	if err != nil {
		s.Log.Warn("sessionStore.Load malformed session, clearing",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		s.discard(ctx)
		return nil, nil
	}

	if session.Token == "" {
		s.Log.Warn("sessionStore.Load session without token, clearing",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		s.discard(ctx)
		return nil, nil
	}

	return session, nil
}

func (s *sessionStore) discard(ctx context.Context) {
	err := s.Clear(ctx)
	if err != nil {
		s.Log.Error("sessionStore.discard error clearing unusable session",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
	}
}

func (s *sessionStore) Clear(ctx context.Context) error {
	err := s.store.Delete(ctx, constvars.StoreKeyUser, constvars.StoreKeyToken)
	if err != nil {
		return err
	}

	s.Log.Debug("sessionStore.Clear succeeded",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
	)
	return nil
}

func (s *sessionStore) CurrentRole(ctx context.Context) string {
	session, err := s.Load(ctx)
	if err != nil || session == nil {
		return constvars.RoleAnonymous
	}
	return session.Role
}

// WithToken runs an authenticated backend call. Without a session it fails
// locally; a 401 from the backend clears the stored session.
func (s *sessionStore) WithToken(ctx context.Context, fn func(ctx context.Context, session *models.Session) error) error {
	session, err := s.Load(ctx)
	if err != nil {
		return err
	}
	if session == nil {
		return exceptions.ErrNotLoggedIn()
	}

	err = fn(ctx, session)
	if exceptions.IsUnauthorized(err) {
		s.Log.Info("sessionStore.WithToken token rejected by backend, clearing session",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingUserIDKey, session.UserID),
		)
		if clearErr := s.Clear(ctx); clearErr != nil {
			s.Log.Error("sessionStore.WithToken error clearing rejected session",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
				zap.Error(clearErr),
			)
		}
	}
	return err
}
