package patients

import (
	"context"
	"healthme-client/internal/app/contracts"
	"healthme-client/internal/app/models"
	"healthme-client/internal/pkg/constvars"
	"healthme-client/internal/pkg/dto/responses"
	"healthme-client/internal/pkg/exceptions"
	"healthme-client/internal/pkg/utils"
	"sync"

	"go.uber.org/zap"
)

type patientUsecase struct {
	sessions contracts.SessionStore
	backend  contracts.BackendClient
	Log      *zap.Logger
}

func NewPatientUsecase(sessions contracts.SessionStore, backend contracts.BackendClient, logger *zap.Logger) contracts.PatientUsecase {
	return &patientUsecase{
		sessions: sessions,
		backend:  backend,
		Log:      logger,
	}
}

// section couples a dashboard section with the schema it decodes into and
// the step that copies the decoded value onto the dashboard.
type section struct {
	name   string
	target responses.Enveloped
	apply  func(*models.PatientDashboard)
}

func sectionsFor(dashboard *models.PatientDashboard) []section {
	metrics := new(responses.PatientMetrics)
	appointments := new(responses.PatientAppointments)
	summary := new(responses.PatientSummary)
	progress := new(responses.PatientHealthProgress)
	report := new(responses.PatientReport)
	treatment := new(responses.PatientTreatment)
	medicine := new(responses.PatientMedicine)

	return []section{
		{constvars.PatientSectionMetrics, metrics, func(d *models.PatientDashboard) { d.Metrics = metrics.Metrics }},
		{constvars.PatientSectionAppointments, appointments, func(d *models.PatientDashboard) { d.Appointments = appointments.Appointments }},
		{constvars.PatientSectionSummary, summary, func(d *models.PatientDashboard) { d.Summary = summary.Summary }},
		{constvars.PatientSectionHealthProgress, progress, func(d *models.PatientDashboard) { d.HealthProgressScore = progress.Score }},
		{constvars.PatientSectionReport, report, func(d *models.PatientDashboard) {
			d.Report = &models.HealthReport{Labels: report.Labels, Values: report.Values}
		}},
		{constvars.PatientSectionTreatment, treatment, func(d *models.PatientDashboard) { d.Treatment = treatment.Treatment }},
		{constvars.PatientSectionMedicine, medicine, func(d *models.PatientDashboard) { d.Medicine = medicine.Medicine }},
	}
}

// Dashboard loads every section concurrently. A failing section does not fail
// the dashboard; its client message is reported under Errors. An expired
// session still fails the whole call.
func (uc *patientUsecase) Dashboard(ctx context.Context) (*models.PatientDashboard, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("patientUsecase.Dashboard called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	dashboard := &models.PatientDashboard{}
	err := uc.sessions.WithToken(ctx, func(ctx context.Context, session *models.Session) error {
		sections := sectionsFor(dashboard)
		errs := make([]error, len(sections))

		var wg sync.WaitGroup
		for i, s := range sections {
			wg.Add(1)
			go func(i int, s section) {
				defer wg.Done()
				errs[i] = uc.backend.GetPatientSection(ctx, session.Token, session.UserID, s.name, s.target)
			}(i, s)
		}
		wg.Wait()

		for i, s := range sections {
			err := errs[i]
			if err == nil {
				s.apply(dashboard)
				continue
			}
			if exceptions.IsUnauthorized(err) {
				return err
			}
			uc.Log.Warn("patientUsecase.Dashboard section failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingSectionKey, s.name),
				zap.Error(err),
			)
			if dashboard.Errors == nil {
				dashboard.Errors = make(map[string]string)
			}
			dashboard.Errors[s.name] = exceptions.ClientMessageOf(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dashboard, nil
}
