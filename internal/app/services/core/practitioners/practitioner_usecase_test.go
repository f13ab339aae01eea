package practitioners

import (
	"context"
	"healthme-client/internal/app/contracts"
	"healthme-client/internal/app/models"
	"healthme-client/internal/app/services/backend"
	"healthme-client/internal/app/services/core/session"
	"healthme-client/internal/app/services/shared/gateway"
	"healthme-client/internal/app/services/shared/kvstore"
	"healthme-client/internal/pkg/constvars"
	"healthme-client/internal/pkg/dto/requests"
	"healthme-client/internal/pkg/exceptions"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newUsecase(t *testing.T, role string, patientsStatus int) (contracts.PractitionerUsecase, *atomic.Int32) {
	t.Helper()
	calls := new(atomic.Int32)

	router := chi.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.Header().Set("Content-Type", "application/json")
			next.ServeHTTP(w, r)
		})
	})
	router.Get(constvars.BackendPractitionerOverview, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":{"totalPatients":12,"earnings":54000}}`))
	})
	router.Get(constvars.BackendPractitionerAppointments, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":[{"_id":"a1","date":"2024-06-01","time":"09:00","status":"pending"}]}`))
	})
	router.Get(constvars.BackendPractitionerPatients, func(w http.ResponseWriter, r *http.Request) {
		if patientsStatus != http.StatusOK {
			w.WriteHeader(patientsStatus)
			w.Write([]byte(`{"message":"patients unavailable"}`))
			return
		}
		w.Write([]byte(`{"success":true,"data":[{"_id":"p1","fullName":"Amy Pond"}]}`))
	})
	router.Get(constvars.BackendPractitionerProfile, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":{"_id":"d1","fullName":"Dr Who","specialization":"Cardiology"}}`))
	})
	router.Put(constvars.BackendPractitionerProfile, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"message":"Profile updated"}`))
	})
	router.Get(constvars.BackendPractitionerPublic, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Write([]byte(`{"success":true,"data":[
			{"_id":"d1","fullName":"Dr Who","specialization":"Cardiology","location":"Lagos"},
			{"_id":"d2","fullName":"Dr Song","specialization":"Dermatology","focus":"Skin care","location":"Abuja"}
		]}`))
	})
	router.Get(constvars.BackendPractitionersNearby, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "6.5244", r.URL.Query().Get(constvars.QueryParamLatitude))
		assert.Equal(t, "3.3792", r.URL.Query().Get(constvars.QueryParamLongitude))
		w.Write([]byte(`{"practitioners":[
			{"_id":"d1","name":"Dr Who","specialty":"Cardiology","distance":"1.2 km"},
			{"_id":"d3","name":"Dr Pond","specialty":"Pediatrics","distance":3.4}
		]}`))
	})
	router.Get("/api/practitioner/public/{id}", func(w http.ResponseWriter, r *http.Request) {
		if chi.URLParam(r, "id") != "d1" {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"message":"Practitioner not found"}`))
			return
		}
		w.Write([]byte(`{"success":true,"data":{"_id":"d1","fullName":"Dr Who"}}`))
	})

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	logger := zap.NewNop()
	sessions := session.NewSessionStore(kvstore.NewMemoryStore(), logger)
	require.NoError(t, sessions.Save(context.Background(), &models.Session{UserID: "d1", Role: role, Token: "t1"}))

	client := backend.NewBackendClient(gateway.NewGateway(server.URL, 5*time.Second, logger), logger)
	return NewPractitionerUsecase(sessions, client, logger), calls
}

func TestPractitionerUsecase_Dashboard(t *testing.T) {
	ctx := context.Background()
	uc, calls := newUsecase(t, constvars.RolePractitioner, http.StatusOK)

	dashboard, err := uc.Dashboard(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, `{"totalPatients":12,"earnings":54000}`, string(dashboard.Overview))
	assert.Len(t, dashboard.Appointments, 1)
	assert.Len(t, dashboard.Patients, 1)
	assert.Equal(t, "Dr Who", dashboard.Profile.FullName)
	assert.Equal(t, int32(4), calls.Load())
}

func TestPractitionerUsecase_DashboardAllOrNothing(t *testing.T) {
	uc, _ := newUsecase(t, constvars.RolePractitioner, http.StatusInternalServerError)

	dashboard, err := uc.Dashboard(context.Background())
	require.Error(t, err)
	assert.Nil(t, dashboard)
	assert.Equal(t, "patients unavailable", exceptions.ClientMessageOf(err))
}

func TestPractitionerUsecase_DashboardRejectsOtherRoles(t *testing.T) {
	uc, calls := newUsecase(t, constvars.RolePatient, http.StatusOK)

	_, err := uc.Dashboard(context.Background())
	assert.Equal(t, constvars.ErrClientPractitionerOnly, exceptions.ClientMessageOf(err))
	assert.Equal(t, int32(0), calls.Load())
}

func TestPractitionerUsecase_UpdateProfile(t *testing.T) {
	ctx := context.Background()
	uc, calls := newUsecase(t, constvars.RolePractitioner, http.StatusOK)

	err := uc.UpdateProfile(ctx, &requests.UpdatePractitionerProfile{FullName: "Dr Who", Email: "not-an-email"})
	assert.True(t, exceptions.IsKind(err, exceptions.KindValidation))
	assert.Equal(t, int32(0), calls.Load())

	err = uc.UpdateProfile(ctx, &requests.UpdatePractitionerProfile{FullName: " Dr Who ", Email: "DR@WHO.COM", Bio: "Time travelling cardiologist"})
	require.NoError(t, err)
	assert.False(t, uc.InFlight())
}

func TestPractitionerUsecase_PublicDirectory(t *testing.T) {
	ctx := context.Background()
	uc, _ := newUsecase(t, constvars.RolePatient, http.StatusOK)

	all, err := uc.ListPublic(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	matches, err := uc.ListPublic(ctx, "  SKIN ")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "d2", matches[0].ID)

	matches, err = uc.ListPublic(ctx, "nairobi")
	require.NoError(t, err)
	assert.Empty(t, matches)

	practitioner, err := uc.GetPublic(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, "Dr Who", practitioner.FullName)

	_, err = uc.GetPublic(ctx, "missing")
	assert.Equal(t, "Practitioner not found", exceptions.ClientMessageOf(err))

	_, err = uc.GetPublic(ctx, "")
	assert.True(t, exceptions.IsKind(err, exceptions.KindValidation))
}

func TestPractitionerUsecase_Nearby(t *testing.T) {
	ctx := context.Background()
	uc, calls := newUsecase(t, constvars.RolePatient, http.StatusOK)

	nearby, err := uc.Nearby(ctx, &requests.NearbyPractitioners{Latitude: " 6.5244", Longitude: "3.3792 "})
	require.NoError(t, err)
	require.Len(t, nearby, 2)
	assert.Equal(t, "d1", nearby[0].ID)
	assert.Equal(t, "1.2 km", nearby[0].Distance)
	assert.Equal(t, 3.4, nearby[1].Distance)

	before := calls.Load()
	testCases := map[string]*requests.NearbyPractitioners{
		"latitude out of range": {Latitude: "91", Longitude: "3.3792"},
		"longitude missing":     {Latitude: "6.5244"},
		"not a number":          {Latitude: "north", Longitude: "3.3792"},
	}
	for name, request := range testCases {
		t.Run(name, func(t *testing.T) {
			_, err := uc.Nearby(ctx, request)
			assert.True(t, exceptions.IsKind(err, exceptions.KindValidation))
		})
	}
	assert.Equal(t, before, calls.Load())
}
