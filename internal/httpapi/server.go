// Package httpapi maps the portfolio-site REST surface onto the like,
// contact and pricing services.
package httpapi

import (
	"context"
	"encoding/json"
	"net/http"

	"folio/internal/app/contact"
	"folio/internal/app/pricing"
	"folio/internal/store"
)

// LikeService captures the like-ledger operations needed by the HTTP
// handlers. Reads never fail; they degrade to zero values.
type LikeService interface {
	Count(ctx context.Context, postID string) int64
	AllCounts(ctx context.Context) []store.PostCount
	IsLiked(ctx context.Context, postID, deviceID string) bool
	Like(ctx context.Context, postID, deviceID string) (bool, error)
	Unlike(ctx context.Context, postID, deviceID string) (bool, error)
}

// ContactService handles contact-form submissions.
type ContactService interface {
	Submit(ctx context.Context, sub contact.Submission) error
}

// PricingService handles pricing-plan inquiries.
type PricingService interface {
	Submit(ctx context.Context, req pricing.Request) error
}

// Server wires HTTP handlers to the underlying services.
type Server struct {
	likes   LikeService
	contact ContactService
	pricing PricingService
}

// New configures a Server with the given services.
func New(likes LikeService, contactSvc ContactService, pricingSvc PricingService) *Server {
	return &Server{
		likes:   likes,
		contact: contactSvc,
		pricing: pricingSvc,
	}
}

// Routes exposes the HTTP handlers for the public API.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	mux.HandleFunc("GET /api/count/{postId}", s.handleCount)
	mux.HandleFunc("GET /api/counts", s.handleCounts)
	mux.HandleFunc("GET /api/liked/{postId}/{deviceId}", s.handleLiked)
	mux.HandleFunc("POST /api/like", s.handleLike)
	mux.HandleFunc("POST /api/unlike", s.handleUnlike)
	mux.HandleFunc("POST /api/contact", s.handleContact)
	mux.HandleFunc("POST /api/pricing-request", s.handlePricingRequest)

	return mux
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}
