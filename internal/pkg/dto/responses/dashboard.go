package responses

import (
	"healthme-client/internal/app/models"

	"github.com/goccy/go-json"
)

// AdminItems is the shape of the practitioners and users panels. The other
// panels return a bare array.
type AdminItems struct {
	Items []json.RawMessage `json:"items"`
}

type PatientMetrics struct {
	Envelope
	Metrics []json.RawMessage `json:"metrics"`
}

type PatientAppointments struct {
	Envelope
	Appointments []models.Appointment `json:"appointments"`
}

type PatientSummary struct {
	Envelope
	Summary json.RawMessage `json:"summary"`
}

type PatientHealthProgress struct {
	Envelope
	Score *float64 `json:"score"`
}

type PatientReport struct {
	Envelope
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

type PatientTreatment struct {
	Envelope
	Treatment json.RawMessage `json:"treatment"`
}

type PatientMedicine struct {
	Envelope
	Medicine json.RawMessage `json:"medicine"`
}
