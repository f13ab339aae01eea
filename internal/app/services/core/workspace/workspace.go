package workspace

import (
	"context"
	"healthme-client/internal/app/contracts"
	"healthme-client/internal/app/services/core/admin"
	"healthme-client/internal/app/services/core/appointments"
	"healthme-client/internal/app/services/core/auth"
	"healthme-client/internal/app/services/core/navigation"
	"healthme-client/internal/app/services/core/onboarding"
	"healthme-client/internal/app/services/core/patients"
	"healthme-client/internal/app/services/core/practitioners"
	"healthme-client/internal/app/services/core/session"
	"healthme-client/internal/pkg/constvars"
	"time"

	"go.uber.org/zap"
)

// Dependencies are shared by every workspace of a process. Notifier and
// Locker are optional and must be left nil, not typed-nil, when disabled.
type Dependencies struct {
	Backend          contracts.BackendClient
	Documents        contracts.DocumentSource
	Notifier         contracts.PaymentNotifier
	Locker           contracts.LockerService
	PollInterval     time.Duration
	MaxWatchDuration time.Duration
	Logger           *zap.Logger
}

// Workspace is the service graph of one client over its own key/value store.
type Workspace struct {
	Store         contracts.KeyValueStore
	Sessions      contracts.SessionStore
	Router        contracts.RoleRouter
	Auth          contracts.AuthUsecase
	Onboarding    contracts.OnboardingController
	Appointments  contracts.AppointmentUsecase
	Practitioners contracts.PractitionerUsecase
	Admin         contracts.AdminUsecase
	Patients      contracts.PatientUsecase
}

func New(store contracts.KeyValueStore, deps Dependencies) *Workspace {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	sessions := session.NewSessionStore(store, logger)
	router := navigation.NewRoleRouter()

	opts := []onboarding.Option{
		onboarding.WithPollInterval(deps.PollInterval),
		onboarding.WithMaxWatchDuration(deps.MaxWatchDuration),
	}
	if deps.Notifier != nil {
		opts = append(opts, onboarding.WithNotifier(deps.Notifier))
	}
	if deps.Locker != nil {
		opts = append(opts, onboarding.WithWatchLocker(deps.Locker))
	}

	return &Workspace{
		Store:         store,
		Sessions:      sessions,
		Router:        router,
		Auth:          auth.NewAuthUsecase(sessions, deps.Backend, router, logger),
		Onboarding:    onboarding.NewOnboardingController(sessions, store, deps.Backend, deps.Documents, logger, opts...),
		Appointments:  appointments.NewAppointmentUsecase(sessions, deps.Backend, logger),
		Practitioners: practitioners.NewPractitionerUsecase(sessions, deps.Backend, logger),
		Admin:         admin.NewAdminUsecase(sessions, deps.Backend, logger),
		Patients:      patients.NewPatientUsecase(sessions, deps.Backend, logger),
	}
}

// Close ends the page lifecycle: any payment watch is stopped and late
// results are discarded.
func (w *Workspace) Close() {
	w.Onboarding.Teardown()
}

// StoreFactory opens the durable store of one client.
type StoreFactory func(clientID string) contracts.KeyValueStore

// Builder hands out a fresh workspace per client over that client's store.
type Builder struct {
	stores StoreFactory
	deps   Dependencies
}

func NewBuilder(stores StoreFactory, deps Dependencies) *Builder {
	return &Builder{stores: stores, deps: deps}
}

func (b *Builder) For(clientID string) *Workspace {
	return New(b.stores(clientID), b.deps)
}

func WithContext(ctx context.Context, ws *Workspace) context.Context {
	return context.WithValue(ctx, constvars.CONTEXT_WORKSPACE_KEY, ws)
}

func FromContext(ctx context.Context) (*Workspace, bool) {
	ws, ok := ctx.Value(constvars.CONTEXT_WORKSPACE_KEY).(*Workspace)
	return ws, ok && ws != nil
}
