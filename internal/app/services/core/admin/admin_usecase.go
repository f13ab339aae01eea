package admin

import (
	"context"
	"healthme-client/internal/app/contracts"
	"healthme-client/internal/app/models"
	"healthme-client/internal/pkg/constvars"
	"healthme-client/internal/pkg/exceptions"
	"healthme-client/internal/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var adminPanels = map[string]bool{
	constvars.AdminPanelPractitioners: true,
	constvars.AdminPanelUsers:         true,
	constvars.AdminPanelKyc:           true,
	constvars.AdminPanelLogs:          true,
	constvars.AdminPanelSupport:       true,
}

type adminUsecase struct {
	sessions contracts.SessionStore
	backend  contracts.BackendClient
	Log      *zap.Logger
}

func NewAdminUsecase(sessions contracts.SessionStore, backend contracts.BackendClient, logger *zap.Logger) contracts.AdminUsecase {
	return &adminUsecase{
		sessions: sessions,
		backend:  backend,
		Log:      logger,
	}
}

// Dashboard loads the overview and, when panel is set, that panel's items.
func (uc *adminUsecase) Dashboard(ctx context.Context, panel string) (*models.AdminDashboard, error) {
	uc.Log.Info("adminUsecase.Dashboard called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingPanelKey, panel),
	)

	if panel != "" && !adminPanels[panel] {
		return nil, exceptions.ErrUnknownAdminPanel(panel)
	}

	dashboard := &models.AdminDashboard{Panel: panel}
	err := uc.sessions.WithToken(ctx, func(ctx context.Context, session *models.Session) error {
		if session.Role != constvars.RoleAdmin {
			return exceptions.ErrRoleMismatch(session.Role, constvars.RoleAdmin)
		}

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			overview, err := uc.backend.GetAdminOverview(gctx, session.Token)
			dashboard.Overview = overview
			return err
		})
		if panel != "" {
			g.Go(func() error {
				items, err := uc.backend.GetAdminPanel(gctx, session.Token, panel)
				dashboard.Items = items
				return err
			})
		}
		return g.Wait()
	})
	if err != nil {
		return nil, err
	}
	return dashboard, nil
}
