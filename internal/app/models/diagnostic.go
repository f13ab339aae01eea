package models

import "time"

// GatewayDiagnostic records a backend exchange the gateway could not use.
type GatewayDiagnostic struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	RequestID   string    `json:"requestId" bson:"requestId"`
	Method      string    `json:"method" bson:"method"`
	Path        string    `json:"path" bson:"path"`
	Kind        string    `json:"kind" bson:"kind"`
	StatusCode  int       `json:"statusCode,omitempty" bson:"statusCode,omitempty"`
	Message     string    `json:"message" bson:"message"`
	BodySnippet string    `json:"bodySnippet,omitempty" bson:"bodySnippet,omitempty"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
}
