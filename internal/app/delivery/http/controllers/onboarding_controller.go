package controllers

import (
	"healthme-client/internal/app/contracts"
	"healthme-client/internal/pkg/constvars"
	"healthme-client/internal/pkg/dto/requests"
	"healthme-client/internal/pkg/dto/responses"
	"healthme-client/internal/pkg/exceptions"
	"healthme-client/internal/pkg/utils"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

const (
	kycFormMaxMemory       = 8 << 20
	kycCertificateField    = "certificate"
	kycSpoolDirPattern     = "healthme-kyc-*"
	defaultCertificateName = "certificate"
)

type OnboardingController struct {
	Log *zap.Logger
}

func NewOnboardingController(logger *zap.Logger) *OnboardingController {
	return &OnboardingController{
		Log: logger,
	}
}

// restored resolves the caller's onboarding controller with its flow state
// rebuilt from the client store, the same way a page load does.
func (ctrl *OnboardingController) restored(w http.ResponseWriter, r *http.Request) (contracts.OnboardingController, bool) {
	ws, err := workspaceFrom(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return nil, false
	}

	_, err = ws.Onboarding.Restore(r.Context())
	if err != nil {
		respondError(ctrl.Log, w, err)
		return nil, false
	}
	return ws.Onboarding, true
}

func (ctrl *OnboardingController) GetState(w http.ResponseWriter, r *http.Request) {
	onboarding, ok := ctrl.restored(w, r)
	if !ok {
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetOnboardingStateSuccessMessage, onboarding.Snapshot())
}

func (ctrl *OnboardingController) GetPlans(w http.ResponseWriter, r *http.Request) {
	ws, err := workspaceFrom(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPlansSuccessMessage, ws.Onboarding.Plans())
}

// Subscribe runs the terms and subscription page: agree, pick a plan and
// move on to checkout.
func (ctrl *OnboardingController) Subscribe(w http.ResponseWriter, r *http.Request) {
	request := new(requests.Subscribe)
	err := decodeBody(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	request.PlanID = strings.TrimSpace(request.PlanID)

	onboarding, ok := ctrl.restored(w, r)
	if !ok {
		return
	}

	ctx := r.Context()
	err = onboarding.EnterTerms(ctx)
	if err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	err = onboarding.SelectPlan(ctx, request.AgreedToTerms, request.PlanID)
	if err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	err = onboarding.ProceedToPayment(ctx)
	if err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SubscribeSuccessMessage, onboarding.Snapshot())
}

func (ctrl *OnboardingController) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	onboarding, ok := ctrl.restored(w, r)
	if !ok {
		return
	}

	err := onboarding.ConfirmPayment(r.Context())
	if err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusAccepted, constvars.ConfirmPaymentSuccessMessage, onboarding.Snapshot())
}

// WatchPayment blocks until the backend approves the payment. A client that
// disconnects cancels the watch.
func (ctrl *OnboardingController) WatchPayment(w http.ResponseWriter, r *http.Request) {
	onboarding, ok := ctrl.restored(w, r)
	if !ok {
		return
	}

	err := onboarding.WaitForPaymentApproval(r.Context())
	if err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PaymentApprovedSuccessMessage, onboarding.Snapshot())
}

func (ctrl *OnboardingController) EnterKyc(w http.ResponseWriter, r *http.Request) {
	onboarding, ok := ctrl.restored(w, r)
	if !ok {
		return
	}

	gate, err := onboarding.EnterKyc(r.Context())
	if err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.KycGateSuccessMessage, gate)
}

// SubmitKyc accepts the KYC form either as multipart with the certificate
// file or as JSON referencing an object storage document.
func (ctrl *OnboardingController) SubmitKyc(w http.ResponseWriter, r *http.Request) {
	request, cleanup, err := ctrl.bindKycRequest(r)
	if cleanup != nil {
		defer cleanup()
	}
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.SanitizeSubmitKycRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	onboarding, ok := ctrl.restored(w, r)
	if !ok {
		return
	}

	ctx := r.Context()
	gate, err := onboarding.EnterKyc(ctx)
	if err != nil {
		respondError(ctrl.Log, w, err)
		return
	}
	if !gate.Allowed {
		utils.BuildErrorResponseWithData(ctrl.Log, w, exceptions.ErrKycGateRefused(gate.Status), gate)
		return
	}

	err = onboarding.SubmitKyc(ctx, request)
	if err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	response := &responses.WebKycStatus{
		Status:   onboarding.Snapshot().KycStatus,
		Redirect: constvars.PathProcessing,
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.KycSubmitSuccessMessage, response)
}

// GetKycStatus backs the processing page: it reloads the gate and reports
// where the practitioner stands.
func (ctrl *OnboardingController) GetKycStatus(w http.ResponseWriter, r *http.Request) {
	onboarding, ok := ctrl.restored(w, r)
	if !ok {
		return
	}

	gate, err := onboarding.EnterKyc(r.Context())
	if err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	response := &responses.WebKycStatus{
		Status:   gate.Status,
		Redirect: gate.Redirect,
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.KycStatusSuccessMessage, response)
}

func (ctrl *OnboardingController) bindKycRequest(r *http.Request) (*requests.SubmitKyc, func(), error) {
	request := new(requests.SubmitKyc)

	if !strings.HasPrefix(r.Header.Get(constvars.HeaderContentType), constvars.MIMEMultipartForm) {
		err := decodeBody(r, request)
		if err != nil {
			return nil, nil, err
		}
		// Local paths are only meaningful to the CLI.
		ref := strings.TrimSpace(request.DocumentRef)
		if ref != "" && !strings.HasPrefix(ref, constvars.DocumentRefMinioScheme) {
			return nil, nil, exceptions.ErrDocumentRefNotAllowed(ref)
		}
		return request, nil, nil
	}

	err := r.ParseMultipartForm(kycFormMaxMemory)
	if err != nil {
		return nil, nil, exceptions.ErrCannotParseForm(err)
	}
	request.Specialization = r.FormValue("specialization")
	request.LicenseNumber = r.FormValue("licenseNumber")
	request.YearsOfExperience = r.FormValue("yearsOfExperience")
	request.Bio = r.FormValue("bio")

	file, header, err := r.FormFile(kycCertificateField)
	if err == http.ErrMissingFile {
		return request, nil, nil
	}
	if err != nil {
		return nil, nil, exceptions.ErrCannotParseForm(err)
	}
	defer file.Close()

	dir, err := os.MkdirTemp("", kycSpoolDirPattern)
	if err != nil {
		return nil, nil, exceptions.ErrSpoolUpload(err)
	}
	cleanup := func() {
		os.RemoveAll(dir)
	}

	name := filepath.Base(header.Filename)
	if name == "." || name == string(filepath.Separator) {
		name = defaultCertificateName
	}
	path := filepath.Join(dir, name)

	spooled, err := os.Create(path)
	if err != nil {
		return nil, cleanup, exceptions.ErrSpoolUpload(err)
	}
	_, err = io.Copy(spooled, file)
	closeErr := spooled.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		return nil, cleanup, exceptions.ErrSpoolUpload(err)
	}

	request.DocumentRef = path
	return request, cleanup, nil
}
