package responses

type ResponseDTO struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// Envelope is the discriminator every backend endpoint may carry. Success is a
// pointer because some endpoints omit it.
type Envelope struct {
	Success *bool  `json:"success,omitempty"`
	Message string `json:"message,omitempty"`
}

func (e Envelope) Rejected() bool {
	return e.Success != nil && !*e.Success
}

func (e Envelope) RejectionMessage() string {
	return e.Message
}

// DataEnvelope is the shape of endpoints that return their payload under data.
type DataEnvelope[T any] struct {
	Envelope
	Data T `json:"data"`
}

// Enveloped is implemented by every backend schema embedding Envelope.
type Enveloped interface {
	Rejected() bool
	RejectionMessage() string
}
