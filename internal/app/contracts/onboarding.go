package contracts

import (
	"context"
	"healthme-client/internal/app/models"
	"healthme-client/internal/pkg/dto/requests"
)

type PaymentWatch interface {
	Done() <-chan struct{}
	Err() error
}

type OnboardingController interface {
	Restore(ctx context.Context) (*models.OnboardingSnapshot, error)
	Snapshot() models.OnboardingSnapshot
	Plans() []models.Plan
	EnterTerms(ctx context.Context) error
	SelectPlan(ctx context.Context, agreed bool, planID string) error
	ProceedToPayment(ctx context.Context) error
	ConfirmPayment(ctx context.Context) error
	StartPaymentWatch(ctx context.Context) (PaymentWatch, error)
	WaitForPaymentApproval(ctx context.Context) error
	StopPaymentWatch()
	EnterKyc(ctx context.Context) (*models.KycGate, error)
	SubmitKyc(ctx context.Context, request *requests.SubmitKyc) error
	RefreshKycStatus(ctx context.Context) (string, error)
	Teardown()
	InFlight() bool
}
