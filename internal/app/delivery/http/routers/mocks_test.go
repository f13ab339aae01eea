package routers

import (
	"context"
	"healthme-client/internal/app/config"
	"healthme-client/internal/app/contracts"
	"healthme-client/internal/app/delivery/http/middlewares"
	"healthme-client/internal/app/models"
	"healthme-client/internal/app/services/core/navigation"
	"healthme-client/internal/app/services/core/workspace"
	"healthme-client/internal/pkg/dto/requests"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockAuthUsecase struct {
	mock.Mock
}

func (m *MockAuthUsecase) Login(ctx context.Context, request *requests.Login) (*models.AuthResult, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*models.AuthResult)
	return result, args.Error(1)
}

func (m *MockAuthUsecase) Register(ctx context.Context, request *requests.Register) (*models.AuthResult, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*models.AuthResult)
	return result, args.Error(1)
}

func (m *MockAuthUsecase) Logout(ctx context.Context) (*models.AuthResult, error) {
	args := m.Called(ctx)
	result, _ := args.Get(0).(*models.AuthResult)
	return result, args.Error(1)
}

func (m *MockAuthUsecase) CurrentSession(ctx context.Context) (*models.Session, error) {
	args := m.Called(ctx)
	session, _ := args.Get(0).(*models.Session)
	return session, args.Error(1)
}

func (m *MockAuthUsecase) InFlight() bool {
	return m.Called().Bool(0)
}

type MockOnboardingController struct {
	mock.Mock
}

func (m *MockOnboardingController) Restore(ctx context.Context) (*models.OnboardingSnapshot, error) {
	args := m.Called(ctx)
	snapshot, _ := args.Get(0).(*models.OnboardingSnapshot)
	return snapshot, args.Error(1)
}

func (m *MockOnboardingController) Snapshot() models.OnboardingSnapshot {
	return m.Called().Get(0).(models.OnboardingSnapshot)
}

func (m *MockOnboardingController) Plans() []models.Plan {
	return m.Called().Get(0).([]models.Plan)
}

func (m *MockOnboardingController) EnterTerms(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockOnboardingController) SelectPlan(ctx context.Context, agreed bool, planID string) error {
	return m.Called(ctx, agreed, planID).Error(0)
}

func (m *MockOnboardingController) ProceedToPayment(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockOnboardingController) ConfirmPayment(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockOnboardingController) StartPaymentWatch(ctx context.Context) (contracts.PaymentWatch, error) {
	args := m.Called(ctx)
	watch, _ := args.Get(0).(contracts.PaymentWatch)
	return watch, args.Error(1)
}

func (m *MockOnboardingController) WaitForPaymentApproval(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockOnboardingController) StopPaymentWatch() {
	m.Called()
}

func (m *MockOnboardingController) EnterKyc(ctx context.Context) (*models.KycGate, error) {
	args := m.Called(ctx)
	gate, _ := args.Get(0).(*models.KycGate)
	return gate, args.Error(1)
}

func (m *MockOnboardingController) SubmitKyc(ctx context.Context, request *requests.SubmitKyc) error {
	return m.Called(ctx, request).Error(0)
}

func (m *MockOnboardingController) RefreshKycStatus(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockOnboardingController) Teardown() {
	m.Called()
}

func (m *MockOnboardingController) InFlight() bool {
	return m.Called().Bool(0)
}

type MockAppointmentUsecase struct {
	mock.Mock
}

func (m *MockAppointmentUsecase) List(ctx context.Context) ([]models.Appointment, error) {
	args := m.Called(ctx)
	result, _ := args.Get(0).([]models.Appointment)
	return result, args.Error(1)
}

func (m *MockAppointmentUsecase) Get(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	args := m.Called(ctx, appointmentID)
	result, _ := args.Get(0).(*models.Appointment)
	return result, args.Error(1)
}

func (m *MockAppointmentUsecase) Create(ctx context.Context, request *requests.CreateAppointment) (*models.Appointment, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*models.Appointment)
	return result, args.Error(1)
}

func (m *MockAppointmentUsecase) Reschedule(ctx context.Context, appointmentID string, request *requests.RescheduleAppointment) (*models.Appointment, error) {
	args := m.Called(ctx, appointmentID, request)
	result, _ := args.Get(0).(*models.Appointment)
	return result, args.Error(1)
}

func (m *MockAppointmentUsecase) Cancel(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	args := m.Called(ctx, appointmentID)
	result, _ := args.Get(0).(*models.Appointment)
	return result, args.Error(1)
}

func (m *MockAppointmentUsecase) Projection() []models.Appointment {
	return m.Called().Get(0).([]models.Appointment)
}

func (m *MockAppointmentUsecase) InFlight() bool {
	return m.Called().Bool(0)
}

type MockPractitionerUsecase struct {
	mock.Mock
}

func (m *MockPractitionerUsecase) Dashboard(ctx context.Context) (*models.PractitionerDashboard, error) {
	args := m.Called(ctx)
	result, _ := args.Get(0).(*models.PractitionerDashboard)
	return result, args.Error(1)
}

func (m *MockPractitionerUsecase) UpdateProfile(ctx context.Context, request *requests.UpdatePractitionerProfile) error {
	return m.Called(ctx, request).Error(0)
}

func (m *MockPractitionerUsecase) ListPublic(ctx context.Context, search string) ([]models.Practitioner, error) {
	args := m.Called(ctx, search)
	result, _ := args.Get(0).([]models.Practitioner)
	return result, args.Error(1)
}

func (m *MockPractitionerUsecase) GetPublic(ctx context.Context, practitionerID string) (*models.Practitioner, error) {
	args := m.Called(ctx, practitionerID)
	result, _ := args.Get(0).(*models.Practitioner)
	return result, args.Error(1)
}

func (m *MockPractitionerUsecase) Nearby(ctx context.Context, request *requests.NearbyPractitioners) ([]models.NearbyPractitioner, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).([]models.NearbyPractitioner)
	return result, args.Error(1)
}

func (m *MockPractitionerUsecase) InFlight() bool {
	return m.Called().Bool(0)
}

type MockAdminUsecase struct {
	mock.Mock
}

func (m *MockAdminUsecase) Dashboard(ctx context.Context, panel string) (*models.AdminDashboard, error) {
	args := m.Called(ctx, panel)
	result, _ := args.Get(0).(*models.AdminDashboard)
	return result, args.Error(1)
}

type MockPatientUsecase struct {
	mock.Mock
}

func (m *MockPatientUsecase) Dashboard(ctx context.Context) (*models.PatientDashboard, error) {
	args := m.Called(ctx)
	result, _ := args.Get(0).(*models.PatientDashboard)
	return result, args.Error(1)
}

// newTestRouter mounts routes behind a middleware that hands every request
// the given workspace, standing in for the client cookie lookup.
func newTestRouter(ws *workspace.Workspace, attach func(r chi.Router, m *middlewares.Middlewares)) *chi.Mux {
	logger := zap.NewNop()
	if ws.Router == nil {
		ws.Router = navigation.NewRoleRouter()
	}

	middlewareInstance := &middlewares.Middlewares{
		Log: logger,
		InternalConfig: &config.InternalConfig{
			Web: config.AppWeb{
				RequestTimeoutInSeconds:    5,
				WatchRequestTimeoutSeconds: 5,
			},
		},
	}

	router := chi.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(workspace.WithContext(r.Context(), ws)))
		})
	})
	attach(router, middlewareInstance)
	return router
}
