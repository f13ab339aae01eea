package backend

import (
	"context"
	"fmt"
	"healthme-client/internal/app/contracts"
	"healthme-client/internal/app/models"
	"healthme-client/internal/pkg/constvars"
	"healthme-client/internal/pkg/dto/requests"
	"healthme-client/internal/pkg/dto/responses"
	"healthme-client/internal/pkg/exceptions"
	"healthme-client/internal/pkg/utils"
	"net/url"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type backendClient struct {
	gateway contracts.Gateway
	Log     *zap.Logger
}

func NewBackendClient(gateway contracts.Gateway, logger *zap.Logger) contracts.BackendClient {
	return &backendClient{
		gateway: gateway,
		Log:     logger,
	}
}

// decode applies the envelope rules shared by every endpoint: a body that does
// not fit the schema is malformed, success=false is a rejection carrying the
// backend message, and the decoded value must pass its validate tags.
func decode(raw json.RawMessage, target responses.Enveloped, schema string) error {
	err := json.Unmarshal(raw, target)
	if err != nil {
		return exceptions.ErrResponseSchema(err, schema)
	}
	if target.Rejected() {
		return exceptions.ErrBackendRejected(target.RejectionMessage())
	}
	err = utils.ValidateStruct(target)
	if err != nil {
		return exceptions.ErrResponseSchema(err, schema)
	}
	return nil
}

func (c *backendClient) Register(ctx context.Context, request *requests.Register) (*responses.Register, error) {
	raw, err := c.gateway.Request(ctx, constvars.MethodPost, constvars.BackendAuthRegister, request, "")
	if err != nil {
		return nil, err
	}

	response := new(responses.Register)
	err = decode(raw, response, "register")
	if err != nil {
		return nil, err
	}
	return response, nil
}

func (c *backendClient) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	raw, err := c.gateway.Request(ctx, constvars.MethodPost, constvars.BackendAuthLogin, request, "")
	if err != nil {
		return nil, err
	}

	response := new(responses.Login)
	err = decode(raw, response, "login")
	if err != nil {
		return nil, err
	}
	return response, nil
}

func (c *backendClient) Logout(ctx context.Context, token string) error {
	return c.send(ctx, constvars.MethodPost, constvars.BackendAuthLogout, nil, token, "logout")
}

func (c *backendClient) SaveKyc(ctx context.Context, token string, details *models.KycDetails) error {
	return c.send(ctx, constvars.MethodPost, constvars.BackendKycSave, details, token, "kyc save")
}

func (c *backendClient) UploadKycDocument(ctx context.Context, token string, document *contracts.Document) error {
	raw, err := c.gateway.Upload(ctx, constvars.BackendKycUpload, nil, &contracts.UploadFile{
		FieldName:   constvars.KycUploadFieldCertificate,
		FileName:    document.Name,
		ContentType: document.ContentType,
		Content:     document.Content,
	}, token)
	if err != nil {
		return err
	}
	return decode(raw, new(responses.Message), "kyc upload")
}

func (c *backendClient) GetKycStatus(ctx context.Context, token string) (string, error) {
	raw, err := c.gateway.Request(ctx, constvars.MethodGet, constvars.BackendKycMe, nil, token)
	if err != nil {
		return "", err
	}

	response := new(responses.KycStatus)
	err = decode(raw, response, "kyc status")
	if err != nil {
		return "", err
	}
	if response.Status() == "" {
		return "", exceptions.ErrResponseSchema(fmt.Errorf("status missing"), "kyc status")
	}
	return response.Status(), nil
}

// CreateAppointment books a visit. The backend may answer with success alone,
// in which case the returned appointment is nil.
func (c *backendClient) CreateAppointment(ctx context.Context, token string, request *requests.CreateAppointment) (*models.Appointment, error) {
	raw, err := c.gateway.Request(ctx, constvars.MethodPost, constvars.BackendAppointmentCreate, request, token)
	if err != nil {
		return nil, err
	}

	response := new(responses.AppointmentCreated)
	err = decode(raw, response, "appointment create")
	if err != nil {
		return nil, err
	}
	return response.Created(), nil
}

func (c *backendClient) ListAppointments(ctx context.Context, token, userID string) ([]models.Appointment, error) {
	path := constvars.BackendPatientAppointments
	if userID != "" {
		path = fmt.Sprintf("%s?%s=%s", path, constvars.QueryParamUserID, url.QueryEscape(userID))
	}

	raw, err := c.gateway.Request(ctx, constvars.MethodGet, path, nil, token)
	if err != nil {
		return nil, err
	}

	response := new(responses.AppointmentList)
	err = decode(raw, response, "appointment list")
	if err != nil {
		return nil, err
	}

	appointments, err := response.Appointments()
	if err != nil {
		return nil, exceptions.ErrResponseSchema(err, "appointment list")
	}
	return appointments, nil
}

func (c *backendClient) GetAppointment(ctx context.Context, token, appointmentID string) (*models.Appointment, error) {
	path := fmt.Sprintf(constvars.BackendPatientAppointmentFormat, url.PathEscape(appointmentID))
	raw, err := c.gateway.Request(ctx, constvars.MethodGet, path, nil, token)
	if err != nil {
		return nil, err
	}

	response := new(responses.Appointment)
	err = decode(raw, response, "appointment")
	if err != nil {
		return nil, err
	}
	return response.Data, nil
}

func (c *backendClient) RescheduleAppointment(ctx context.Context, token, appointmentID string, request *requests.RescheduleAppointment) error {
	path := fmt.Sprintf(constvars.BackendPatientAppointmentReschedule, url.PathEscape(appointmentID))
	return c.send(ctx, constvars.MethodPatch, path, request, token, "appointment reschedule")
}

func (c *backendClient) CancelAppointment(ctx context.Context, token, appointmentID string) error {
	path := fmt.Sprintf(constvars.BackendPatientAppointmentCancel, url.PathEscape(appointmentID))
	return c.send(ctx, constvars.MethodDelete, path, nil, token, "appointment cancel")
}

func (c *backendClient) GetPractitionerOverview(ctx context.Context, token string) (json.RawMessage, error) {
	raw, err := c.gateway.Request(ctx, constvars.MethodGet, constvars.BackendPractitionerOverview, nil, token)
	if err != nil {
		return nil, err
	}

	response := new(responses.DataEnvelope[json.RawMessage])
	err = decode(raw, response, "practitioner overview")
	if err != nil {
		return nil, err
	}
	return orEmptyObject(response.Data), nil
}

func (c *backendClient) ListPractitionerAppointments(ctx context.Context, token string) ([]models.Appointment, error) {
	raw, err := c.gateway.Request(ctx, constvars.MethodGet, constvars.BackendPractitionerAppointments, nil, token)
	if err != nil {
		return nil, err
	}

	response := new(responses.DataEnvelope[[]models.Appointment])
	err = decode(raw, response, "practitioner appointments")
	if err != nil {
		return nil, err
	}
	if response.Data == nil {
		return []models.Appointment{}, nil
	}
	return response.Data, nil
}

func (c *backendClient) ListPractitionerPatients(ctx context.Context, token string) ([]models.PatientEntry, error) {
	raw, err := c.gateway.Request(ctx, constvars.MethodGet, constvars.BackendPractitionerPatients, nil, token)
	if err != nil {
		return nil, err
	}

	response := new(responses.DataEnvelope[[]models.PatientEntry])
	err = decode(raw, response, "practitioner patients")
	if err != nil {
		return nil, err
	}
	if response.Data == nil {
		return []models.PatientEntry{}, nil
	}
	return response.Data, nil
}

func (c *backendClient) GetPractitionerProfile(ctx context.Context, token string) (*models.Practitioner, error) {
	raw, err := c.gateway.Request(ctx, constvars.MethodGet, constvars.BackendPractitionerProfile, nil, token)
	if err != nil {
		return nil, err
	}

	response := new(responses.DataEnvelope[models.Practitioner])
	err = decode(raw, response, "practitioner profile")
	if err != nil {
		return nil, err
	}
	return &response.Data, nil
}

func (c *backendClient) UpdatePractitionerProfile(ctx context.Context, token string, request *requests.UpdatePractitionerProfile) error {
	return c.send(ctx, constvars.MethodPut, constvars.BackendPractitionerProfile, request, token, "practitioner profile update")
}

func (c *backendClient) ListPublicPractitioners(ctx context.Context) ([]models.Practitioner, error) {
	raw, err := c.gateway.Request(ctx, constvars.MethodGet, constvars.BackendPractitionerPublic, nil, "")
	if err != nil {
		return nil, err
	}

	response := new(responses.DataEnvelope[[]models.Practitioner])
	err = decode(raw, response, "practitioner directory")
	if err != nil {
		return nil, err
	}
	if response.Data == nil {
		return []models.Practitioner{}, nil
	}
	return response.Data, nil
}

func (c *backendClient) GetPublicPractitioner(ctx context.Context, practitionerID string) (*models.Practitioner, error) {
	path := fmt.Sprintf(constvars.BackendPractitionerPublicByIDFmt, url.PathEscape(practitionerID))
	raw, err := c.gateway.Request(ctx, constvars.MethodGet, path, nil, "")
	if err != nil {
		return nil, err
	}

	response := new(responses.DataEnvelope[*models.Practitioner])
	err = decode(raw, response, "practitioner")
	if err != nil {
		return nil, err
	}
	if response.Data == nil {
		return nil, exceptions.ErrResponseSchema(fmt.Errorf("data missing"), "practitioner")
	}
	return response.Data, nil
}

func (c *backendClient) ListNearbyPractitioners(ctx context.Context, request *requests.NearbyPractitioners) ([]models.NearbyPractitioner, error) {
	query := url.Values{}
	query.Set(constvars.QueryParamLatitude, request.Latitude)
	query.Set(constvars.QueryParamLongitude, request.Longitude)
	path := fmt.Sprintf("%s?%s", constvars.BackendPractitionersNearby, query.Encode())

	raw, err := c.gateway.Request(ctx, constvars.MethodGet, path, nil, "")
	if err != nil {
		return nil, err
	}

	response := new(responses.NearbyPractitioners)
	err = decode(raw, response, "nearby practitioners")
	if err != nil {
		return nil, err
	}
	if response.Practitioners == nil {
		return []models.NearbyPractitioner{}, nil
	}
	return response.Practitioners, nil
}

func (c *backendClient) GetAdminOverview(ctx context.Context, token string) (json.RawMessage, error) {
	raw, err := c.gateway.Request(ctx, constvars.MethodGet, constvars.BackendAdminOverview, nil, token)
	if err != nil {
		return nil, err
	}

	var envelope responses.Envelope
	err = json.Unmarshal(raw, &envelope)
	if err == nil && envelope.Rejected() {
		return nil, exceptions.ErrBackendRejected(envelope.RejectionMessage())
	}
	return raw, nil
}

// GetAdminPanel normalises the two panel shapes: {items: [...]} for the
// practitioners and users panels and a bare array for the others.
func (c *backendClient) GetAdminPanel(ctx context.Context, token, panel string) ([]json.RawMessage, error) {
	path := fmt.Sprintf(constvars.BackendAdminPanelFormat, panel)
	raw, err := c.gateway.Request(ctx, constvars.MethodGet, path, nil, token)
	if err != nil {
		return nil, err
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err == nil {
		return items, nil
	}

	var wrapped struct {
		responses.Envelope
		responses.AdminItems
	}
	err = json.Unmarshal(raw, &wrapped)
	if err != nil {
		return nil, exceptions.ErrResponseSchema(err, "admin "+panel)
	}
	if wrapped.Rejected() {
		return nil, exceptions.ErrBackendRejected(wrapped.RejectionMessage())
	}
	if wrapped.Items == nil {
		return []json.RawMessage{}, nil
	}
	return wrapped.Items, nil
}

func (c *backendClient) GetPatientSection(ctx context.Context, token, userID, section string, target responses.Enveloped) error {
	path := fmt.Sprintf(constvars.BackendPatientDashboardSectionFormat, section)
	if userID != "" {
		path = fmt.Sprintf("%s?%s=%s", path, constvars.QueryParamUserID, url.QueryEscape(userID))
	}

	raw, err := c.gateway.Request(ctx, constvars.MethodGet, path, nil, token)
	if err != nil {
		return err
	}
	return decode(raw, target, "patient "+section)
}

func (c *backendClient) send(ctx context.Context, method, path string, body interface{}, token, schema string) error {
	raw, err := c.gateway.Request(ctx, method, path, body, token)
	if err != nil {
		return err
	}
	return decode(raw, new(responses.Message), schema)
}

func orEmptyObject(raw json.RawMessage) json.RawMessage {
	if len(raw) == 0 || string(raw) == "null" {
		return json.RawMessage(`{}`)
	}
	return raw
}
