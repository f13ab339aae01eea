package onboarding

import (
	"context"
	"healthme-client/internal/app/contracts"
	"healthme-client/internal/app/models"
	"healthme-client/internal/pkg/constvars"
	"healthme-client/internal/pkg/dto/requests"
	"healthme-client/internal/pkg/exceptions"
	"healthme-client/internal/pkg/utils"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const defaultPollInterval = 4 * time.Second

type onboardingController struct {
	sessions  contracts.SessionStore
	store     contracts.KeyValueStore
	backend   contracts.BackendClient
	documents contracts.DocumentSource
	notifier  contracts.PaymentNotifier
	locker    contracts.LockerService

	pollInterval     time.Duration
	maxWatchDuration time.Duration
	Log              *zap.Logger

	mu            sync.Mutex
	state         models.OnboardingState
	agreedToTerms bool
	selectedPlan  *models.Plan
	paymentStatus string
	kycStatus     string
	gateVerified  bool
	generation    uint64
	watch         *paymentWatch

	inFlight utils.InFlight
}

type Option func(*onboardingController)

func WithPollInterval(interval time.Duration) Option {
	return func(c *onboardingController) {
		if interval > 0 {
			c.pollInterval = interval
		}
	}
}

// WithMaxWatchDuration bounds how long a single payment watch may run.
func WithMaxWatchDuration(duration time.Duration) Option {
	return func(c *onboardingController) {
		c.maxWatchDuration = duration
	}
}

// WithNotifier lets pushed payment approvals trigger an immediate backend check.
func WithNotifier(notifier contracts.PaymentNotifier) Option {
	return func(c *onboardingController) {
		c.notifier = notifier
	}
}

// WithWatchLocker makes the payment watch exclusive per user across processes.
func WithWatchLocker(locker contracts.LockerService) Option {
	return func(c *onboardingController) {
		c.locker = locker
	}
}

func NewOnboardingController(
	sessions contracts.SessionStore,
	store contracts.KeyValueStore,
	backend contracts.BackendClient,
	documents contracts.DocumentSource,
	logger *zap.Logger,
	opts ...Option,
) contracts.OnboardingController {
	c := &onboardingController{
		sessions:      sessions,
		store:         store,
		backend:       backend,
		documents:     documents,
		pollInterval:  defaultPollInterval,
		Log:           logger,
		state:         models.OnboardingStateSignedUp,
		paymentStatus: constvars.PaymentStatusUnpaid,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Restore rebuilds the flow state from the persisted selectedPlan and
// paymentStatus keys. Values that cannot be parsed are ignored.
func (c *onboardingController) Restore(ctx context.Context) (*models.OnboardingSnapshot, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("onboardingController.Restore called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	_, err := c.requirePractitioner(ctx)
	if err != nil {
		return nil, err
	}

	plan := c.loadSelectedPlan(ctx)

	paymentStatus, _, err := c.store.Get(ctx, constvars.StoreKeyPaymentStatus)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.selectedPlan = plan
	c.agreedToTerms = plan != nil
	switch {
	case paymentStatus == constvars.PaymentStatusApproved:
		c.paymentStatus = constvars.PaymentStatusApproved
		c.state = models.OnboardingStatePaymentApproved
	case paymentStatus == constvars.PaymentStatusPending:
		c.paymentStatus = constvars.PaymentStatusPending
		c.state = models.OnboardingStatePaymentPending
	case plan != nil:
		c.paymentStatus = constvars.PaymentStatusUnpaid
		c.state = models.OnboardingStatePaymentPending
	default:
		c.paymentStatus = constvars.PaymentStatusUnpaid
		c.state = models.OnboardingStateSignedUp
	}
	snapshot := c.snapshotLocked()
	c.mu.Unlock()

	c.Log.Debug("onboardingController.Restore succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStateKey, string(snapshot.State)),
		zap.String(constvars.LoggingPaymentStatusKey, snapshot.PaymentStatus),
	)
	return &snapshot, nil
}

func (c *onboardingController) Snapshot() models.OnboardingSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *onboardingController) Plans() []models.Plan {
	return models.Plans()
}

// EnterTerms runs when the terms page is reached. Once a payment is pending
// or approved the flow stays where it is.
func (c *onboardingController) EnterTerms(ctx context.Context) error {
	_, err := c.requirePractitioner(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.state {
	case models.OnboardingStateSignedUp, models.OnboardingStatePlanSelected:
		c.transitionLocked(ctx, models.OnboardingStateTermsPending)
	case models.OnboardingStatePaymentPending:
		if c.paymentStatus == constvars.PaymentStatusUnpaid {
			c.transitionLocked(ctx, models.OnboardingStateTermsPending)
		}
	}
	return nil
}

func (c *onboardingController) SelectPlan(ctx context.Context, agreed bool, planID string) error {
	_, err := c.requirePractitioner(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != models.OnboardingStateTermsPending && c.state != models.OnboardingStatePlanSelected {
		return exceptions.ErrFlowOrder(string(c.state), string(models.OnboardingStatePlanSelected), "the terms step")
	}
	if !agreed {
		return exceptions.ErrAgreeToTerms()
	}
	if planID == "" {
		return exceptions.ErrSelectPlan()
	}
	plan, ok := models.FindPlan(planID)
	if !ok {
		return exceptions.ErrUnknownPlan(planID)
	}

	c.agreedToTerms = true
	c.selectedPlan = &plan
	c.transitionLocked(ctx, models.OnboardingStatePlanSelected)
	return nil
}

func (c *onboardingController) ProceedToPayment(ctx context.Context) error {
	_, err := c.requirePractitioner(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != models.OnboardingStatePlanSelected || c.selectedPlan == nil {
		return exceptions.ErrFlowOrder(string(c.state), string(models.OnboardingStatePaymentPending), "the plan selection")
	}

	planJSON, err := json.Marshal(c.selectedPlan)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}
	err = c.store.Set(ctx, constvars.StoreKeySelectedPlan, string(planJSON))
	if err != nil {
		return err
	}
	err = c.store.Set(ctx, constvars.StoreKeyPaymentStatus, constvars.PaymentStatusUnpaid)
	if err != nil {
		return err
	}

	c.paymentStatus = constvars.PaymentStatusUnpaid
	c.transitionLocked(ctx, models.OnboardingStatePaymentPending)
	return nil
}

// ConfirmPayment records that the practitioner says they have paid.
func (c *onboardingController) ConfirmPayment(ctx context.Context) error {
	done, err := c.inFlight.Begin()
	if err != nil {
		return err
	}
	defer done()

	_, err = c.requirePractitioner(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.selectedPlan == nil {
		return exceptions.ErrSelectPlan()
	}
	if c.paymentStatus != constvars.PaymentStatusUnpaid {
		return nil
	}
	if c.state != models.OnboardingStatePaymentPending {
		return exceptions.ErrFlowOrder(string(c.state), string(models.OnboardingStatePaymentPending), "the checkout step")
	}

	err = c.store.Set(ctx, constvars.StoreKeyPaymentStatus, constvars.PaymentStatusPending)
	if err != nil {
		return err
	}
	c.paymentStatus = constvars.PaymentStatusPending

	c.Log.Info("onboardingController.ConfirmPayment payment marked pending",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingPlanIDKey, c.selectedPlan.ID),
	)
	return nil
}

// EnterKyc re-checks the KYC status with the backend on every KYC page load.
// The local paymentStatus cache is never trusted here.
func (c *onboardingController) EnterKyc(ctx context.Context) (*models.KycGate, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("onboardingController.EnterKyc called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	_, err := c.requirePractitioner(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	generation := c.generation
	c.mu.Unlock()

	var status string
	err = c.sessions.WithToken(ctx, func(ctx context.Context, session *models.Session) error {
		var err error
		status, err = c.backend.GetKycStatus(ctx, session.Token)
		return err
	})
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if generation != c.generation {
		c.Log.Debug("onboardingController.EnterKyc discarding stale result",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Uint64(constvars.LoggingGenerationKey, generation),
		)
		return nil, context.Canceled
	}

	gate := &models.KycGate{Status: status}
	switch status {
	case constvars.KycStatusPaymentConfirmed:
		if c.paymentStatus != constvars.PaymentStatusApproved {
			err = c.store.Set(ctx, constvars.StoreKeyPaymentStatus, constvars.PaymentStatusApproved)
			if err != nil {
				return nil, err
			}
			c.paymentStatus = constvars.PaymentStatusApproved
		}
		gate.Allowed = true
		c.gateVerified = true
		c.transitionLocked(ctx, models.OnboardingStatePaymentApproved)
	case constvars.KycStatusRejected:
		gate.Allowed = true
		c.gateVerified = true
		c.transitionLocked(ctx, models.OnboardingStateKycRejected)
	case constvars.KycStatusSubmitted:
		gate.Redirect = constvars.PathProcessing
		c.gateVerified = false
		c.transitionLocked(ctx, models.OnboardingStateKycSubmitted)
	case constvars.KycStatusApproved:
		gate.Redirect = constvars.PathPractitionerDashboard
		c.gateVerified = false
		c.transitionLocked(ctx, models.OnboardingStateKycApproved)
	default:
		stored, _, err := c.store.Get(ctx, constvars.StoreKeyPaymentStatus)
		if err != nil {
			return nil, err
		}
		if stored == constvars.PaymentStatusApproved {
			err = c.store.Delete(ctx, constvars.StoreKeyPaymentStatus)
			if err != nil {
				return nil, err
			}
			c.Log.Warn("onboardingController.EnterKyc removed stale approved payment flag",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingKycStatusKey, status),
			)
		}
		if c.paymentStatus == constvars.PaymentStatusApproved {
			c.paymentStatus = constvars.PaymentStatusUnpaid
		}
		gate.Redirect = constvars.PathSubscription
		c.gateVerified = false
		c.transitionLocked(ctx, models.OnboardingStateTermsPending)
	}
	c.kycStatus = status

	return gate, nil
}

func (c *onboardingController) SubmitKyc(ctx context.Context, request *requests.SubmitKyc) error {
	requestID := utils.GetRequestID(ctx)

	done, err := c.inFlight.Begin()
	if err != nil {
		return err
	}
	defer done()

	_, err = c.requirePractitioner(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	state, gateVerified, generation := c.state, c.gateVerified, c.generation
	c.mu.Unlock()

	if state != models.OnboardingStatePaymentApproved && state != models.OnboardingStateKycRejected {
		return exceptions.ErrFlowOrder(string(state), string(models.OnboardingStateKycSubmitted), "payment")
	}
	if !gateVerified {
		return exceptions.ErrKycGateNotVerified()
	}

	utils.SanitizeSubmitKycRequest(request)
	err = utils.ValidateStruct(request)
	if err != nil {
		return exceptions.ErrInputValidation(err)
	}

	document, err := c.documents.Open(ctx, request.DocumentRef)
	if err != nil {
		return err
	}
	defer document.Content.Close()

	details := &models.KycDetails{
		Specialization:    request.Specialization,
		LicenseNumber:     request.LicenseNumber,
		YearsOfExperience: request.YearsOfExperience,
		Bio:               request.Bio,
	}

	err = c.sessions.WithToken(ctx, func(ctx context.Context, session *models.Session) error {
		err := c.backend.SaveKyc(ctx, session.Token, details)
		if err != nil {
			return err
		}
		return c.backend.UploadKycDocument(ctx, session.Token, document)
	})
	if err != nil {
		c.Log.Error("onboardingController.SubmitKyc backend call failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingErrorKindKey, string(exceptions.KindOf(err))),
			zap.Error(err),
		)
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if generation != c.generation {
		return context.Canceled
	}
	c.kycStatus = constvars.KycStatusSubmitted
	c.gateVerified = false
	c.transitionLocked(ctx, models.OnboardingStateKycSubmitted)
	return nil
}

// RefreshKycStatus reads the review outcome decided by the backend.
func (c *onboardingController) RefreshKycStatus(ctx context.Context) (string, error) {
	_, err := c.requirePractitioner(ctx)
	if err != nil {
		return "", err
	}

	c.mu.Lock()
	state, generation := c.state, c.generation
	c.mu.Unlock()

	switch state {
	case models.OnboardingStateKycSubmitted, models.OnboardingStateKycApproved, models.OnboardingStateKycRejected:
	default:
		return "", exceptions.ErrFlowOrder(string(state), string(models.OnboardingStateKycApproved), "the KYC submission")
	}

	var status string
	err = c.sessions.WithToken(ctx, func(ctx context.Context, session *models.Session) error {
		var err error
		status, err = c.backend.GetKycStatus(ctx, session.Token)
		return err
	})
	if err != nil {
		return "", err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if generation != c.generation {
		return "", context.Canceled
	}

	c.kycStatus = status
	switch status {
	case constvars.KycStatusApproved:
		c.transitionLocked(ctx, models.OnboardingStateKycApproved)
	case constvars.KycStatusRejected:
		c.transitionLocked(ctx, models.OnboardingStateKycRejected)
	}
	return status, nil
}

// Teardown ends the page lifecycle. Results of calls still running are
// discarded.
func (c *onboardingController) Teardown() {
	c.mu.Lock()
	c.generation++
	c.gateVerified = false
	watch := c.watch
	c.mu.Unlock()

	if watch != nil {
		watch.stop()
	}
}

func (c *onboardingController) InFlight() bool {
	return c.inFlight.Active()
}

func (c *onboardingController) requirePractitioner(ctx context.Context) (*models.Session, error) {
	session, err := c.sessions.Load(ctx)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, exceptions.ErrNotLoggedIn()
	}
	if session.Role != constvars.RolePractitioner {
		return nil, exceptions.ErrPractitionerOnly(session.Role)
	}
	return session, nil
}

func (c *onboardingController) loadSelectedPlan(ctx context.Context) *models.Plan {
	raw, found, err := c.store.Get(ctx, constvars.StoreKeySelectedPlan)
	if err != nil || !found || raw == "" {
		return nil
	}

	plan := new(models.Plan)
	err = json.Unmarshal([]byte(raw), plan)
	if err == nil {
		err = utils.ValidateStruct(plan)
	}
	if err != nil {
		c.Log.Warn("onboardingController.Restore ignoring malformed selected plan",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
		return nil
	}
	return plan
}

func (c *onboardingController) transitionLocked(ctx context.Context, next models.OnboardingState) {
	if c.state == next {
		return
	}
	c.Log.Info("onboardingController transition",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingStateKey, string(c.state)),
		zap.String(constvars.LoggingNextStateKey, string(next)),
	)
	c.state = next
}

func (c *onboardingController) snapshotLocked() models.OnboardingSnapshot {
	snapshot := models.OnboardingSnapshot{
		State:         c.state,
		AgreedToTerms: c.agreedToTerms,
		PaymentStatus: c.paymentStatus,
		KycStatus:     c.kycStatus,
		Watching:      c.watch != nil,
		InFlight:      c.inFlight.Active(),
	}
	if c.selectedPlan != nil {
		plan := *c.selectedPlan
		snapshot.SelectedPlan = &plan
	}
	return snapshot
}
