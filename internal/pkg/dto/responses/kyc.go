package responses

type kycStatusData struct {
	Status string `json:"status"`
}

// KycStatus accepts the status at the top level or nested under data.
type KycStatus struct {
	Envelope
	TopLevelStatus string         `json:"status"`
	Data           *kycStatusData `json:"data"`
}

func (k KycStatus) Status() string {
	if k.TopLevelStatus != "" {
		return k.TopLevelStatus
	}
	if k.Data != nil {
		return k.Data.Status
	}
	return ""
}
