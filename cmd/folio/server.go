package main

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"folio/internal/app/contact"
	"folio/internal/app/likes"
	"folio/internal/app/pricing"
	"folio/internal/httpapi"
	"folio/internal/mailer"
	"folio/internal/store"
)

func newHTTPHandler(cfg Config, dataStore *store.Store) http.Handler {
	var likeSvc likes.Service
	if cfg.LikesModel == "counter" {
		log.Info().Msg("using legacy counter like model")
		likeSvc = likes.NewCounter(dataStore)
	} else {
		likeSvc = likes.New(dataStore)
	}

	var sender mailer.Sender
	if cfg.SMTPEnabled() {
		sender = mailer.NewSMTP(cfg.SMTP)
	} else {
		log.Info().Msg("SMTP not configured, notifications disabled")
	}

	contactSvc := contact.New(dataStore, sender, cfg.MailOwner, cfg.MailAutoReply)
	pricingSvc := pricing.New(dataStore, sender, cfg.MailOwner)

	routes := httpapi.New(likeSvc, contactSvc, pricingSvc).Routes()

	return withCORS(cfg.AllowedOrigins, httpapi.RequestLogging(httpapi.Recovery(routes)))
}

func withCORS(allowedOrigins []string, next http.Handler) http.Handler {
	originAllowed := func(origin string) bool {
		if len(allowedOrigins) == 0 || origin == "" {
			return false
		}
		for _, o := range allowedOrigins {
			if o == "*" || strings.EqualFold(o, origin) {
				return true
			}
		}
		return false
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if originAllowed(origin) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type")
			w.Header().Set("Access-Control-Max-Age", "3600")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
