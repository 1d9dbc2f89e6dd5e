package store

import (
	"context"
	"fmt"
)

// PricingRequest records a visitor's interest in a pricing plan.
type PricingRequest struct {
	ID      int64   `json:"id"`
	Plan    string  `json:"plan"`
	Billing string  `json:"billing"`
	Price   float64 `json:"price"`
}

// CreatePricingRequest persists a pricing inquiry and returns it with its
// assigned ID.
func (s *Store) CreatePricingRequest(ctx context.Context, req PricingRequest) (PricingRequest, error) {
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO pricing_requests (plan, billing, price)
		VALUES ($1, $2, $3)
		RETURNING id
	`, req.Plan, req.Billing, req.Price).Scan(&req.ID)
	if err != nil {
		return PricingRequest{}, fmt.Errorf("insert pricing request: %w", err)
	}

	return req, nil
}
