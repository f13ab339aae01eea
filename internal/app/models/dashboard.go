package models

import "github.com/goccy/go-json"

type PractitionerDashboard struct {
	Overview     json.RawMessage `json:"overview"`
	Appointments []Appointment   `json:"appointments"`
	Patients     []PatientEntry  `json:"patients"`
	Profile      Practitioner    `json:"profile"`
}

type PatientEntry struct {
	ID       string `json:"_id,omitempty"`
	FullName string `json:"fullName,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Age      int    `json:"age,omitempty"`
	Gender   string `json:"gender,omitempty"`
}

// PatientDashboard holds whatever sections loaded; sections that failed are
// listed in Errors keyed by section name.
type PatientDashboard struct {
	Metrics             []json.RawMessage `json:"metrics,omitempty"`
	Appointments        []Appointment     `json:"appointments,omitempty"`
	Summary             json.RawMessage   `json:"summary,omitempty"`
	HealthProgressScore *float64          `json:"healthProgressScore,omitempty"`
	Report              *HealthReport     `json:"report,omitempty"`
	Treatment           json.RawMessage   `json:"treatment,omitempty"`
	Medicine            json.RawMessage   `json:"medicine,omitempty"`
	Errors              map[string]string `json:"errors,omitempty"`
}

type HealthReport struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

type AdminDashboard struct {
	Overview json.RawMessage   `json:"overview"`
	Panel    string            `json:"panel,omitempty"`
	Items    []json.RawMessage `json:"items,omitempty"`
}
