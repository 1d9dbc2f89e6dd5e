package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"folio/internal/app/contact"
	"folio/internal/app/pricing"
)

type successResponse struct {
	Success bool `json:"success"`
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

type pricingRequest struct {
	Plan    string  `json:"plan"`
	Billing string  `json:"billing"`
	Price   float64 `json:"price"`
}

func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON payload"})
		return
	}
	if req.Name == "" || req.Email == "" || req.Message == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "name, email and message are required"})
		return
	}

	err := s.contact.Submit(r.Context(), contact.Submission{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	})
	if err != nil {
		// A lost submission is user-visible, so unlike the like endpoints
		// this reports a hard failure.
		log.Error().Err(err).Msg("contact submission failed")
		writeJSON(w, http.StatusInternalServerError, successResponse{Success: false})
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

func (s *Server) handlePricingRequest(w http.ResponseWriter, r *http.Request) {
	var req pricingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON payload"})
		return
	}
	if req.Plan == "" || req.Billing == "" || req.Price < 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "plan, billing and a non-negative price are required"})
		return
	}

	err := s.pricing.Submit(r.Context(), pricing.Request{
		Plan:    req.Plan,
		Billing: req.Billing,
		Price:   req.Price,
	})
	if err != nil {
		log.Error().Err(err).Msg("pricing inquiry failed")
		writeJSON(w, http.StatusInternalServerError, successResponse{Success: false})
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}
