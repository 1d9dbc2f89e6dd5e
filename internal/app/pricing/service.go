// Package pricing records pricing-plan inquiries with the same
// persist-then-notify sequencing as contact intake.
package pricing

import (
	"context"
	"errors"
	"fmt"

	"folio/internal/mailer"
	"folio/internal/store"
)

// ErrNotifyFailed indicates the inquiry was stored but the owner
// notification could not be delivered.
var ErrNotifyFailed = errors.New("notification failed")

// Store defines persistence operations required for pricing workflows.
type Store interface {
	CreatePricingRequest(ctx context.Context, req store.PricingRequest) (store.PricingRequest, error)
}

// Request carries the visitor-selected plan details.
type Request struct {
	Plan    string
	Billing string
	Price   float64
}

// Service describes the pricing intake operation used by the HTTP handlers.
type Service interface {
	Submit(ctx context.Context, req Request) error
}

type service struct {
	store Store
	mail  mailer.Sender
	owner string
}

// New constructs a pricing Service. A nil mail sender disables
// notifications; inquiries are still persisted.
func New(st Store, mail mailer.Sender, owner string) Service {
	return &service{store: st, mail: mail, owner: owner}
}

// Submit persists the inquiry, then sends one internal notification.
// Persistence failure aborts before any send; a failed send is reported
// but the stored row stays.
func (s *service) Submit(ctx context.Context, req Request) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	stored, err := s.store.CreatePricingRequest(ctx, store.PricingRequest{
		Plan:    req.Plan,
		Billing: req.Billing,
		Price:   req.Price,
	})
	if err != nil {
		return fmt.Errorf("store pricing request: %w", err)
	}

	if s.mail == nil || s.owner == "" {
		return nil
	}

	body, err := mailer.RenderPricingNotice(mailer.PricingNoticeData{
		Plan:    stored.Plan,
		Billing: stored.Billing,
		Price:   stored.Price,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNotifyFailed, err)
	}
	if err := s.mail.Send(ctx, mailer.Message{
		To:      []string{s.owner},
		Subject: fmt.Sprintf("New pricing inquiry: %s (%s)", stored.Plan, stored.Billing),
		HTML:    body,
	}); err != nil {
		return fmt.Errorf("%w: %v", ErrNotifyFailed, err)
	}

	return nil
}
