// Package contact handles contact-form submissions: persist first, then
// notify best-effort.
package contact

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"folio/internal/mailer"
	"folio/internal/store"
)

// ErrNotifyFailed indicates the submission was stored but the owner
// notification could not be delivered.
var ErrNotifyFailed = errors.New("notification failed")

// Store defines persistence operations required for contact workflows.
type Store interface {
	CreateContactMessage(ctx context.Context, msg store.ContactMessage) (store.ContactMessage, error)
}

// Submission carries the visitor-supplied contact form fields.
type Submission struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

// Service describes the contact intake operation used by the HTTP handlers.
type Service interface {
	Submit(ctx context.Context, sub Submission) error
}

type service struct {
	store     Store
	mail      mailer.Sender
	owner     string
	autoReply bool
}

// New constructs a contact Service. A nil mail sender disables
// notifications; submissions are still persisted.
func New(st Store, mail mailer.Sender, owner string, autoReply bool) Service {
	return &service{store: st, mail: mail, owner: owner, autoReply: autoReply}
}

// Submit persists the message, then notifies. Persistence failure aborts
// the whole operation; a failed owner notification is reported to the
// caller but never rolls back the stored row. The visitor acknowledgement
// is optional and its failure is only logged.
func (s *service) Submit(ctx context.Context, sub Submission) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg, err := s.store.CreateContactMessage(ctx, store.ContactMessage{
		Name:    sub.Name,
		Email:   sub.Email,
		Phone:   sub.Phone,
		Message: sub.Message,
	})
	if err != nil {
		return fmt.Errorf("store contact message: %w", err)
	}

	if s.mail == nil || s.owner == "" {
		return nil
	}

	data := mailer.ContactNoticeData{
		Name:    msg.Name,
		Email:   msg.Email,
		Phone:   msg.Phone,
		Message: msg.Message,
	}

	body, err := mailer.RenderContactNotice(data)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNotifyFailed, err)
	}
	if err := s.mail.Send(ctx, mailer.Message{
		To:      []string{s.owner},
		ReplyTo: msg.Email,
		Subject: fmt.Sprintf("New contact message from %s", msg.Name),
		HTML:    body,
	}); err != nil {
		return fmt.Errorf("%w: %v", ErrNotifyFailed, err)
	}

	if s.autoReply && msg.Email != "" {
		ack, err := mailer.RenderContactAck(data)
		if err == nil {
			err = s.mail.Send(ctx, mailer.Message{
				To:      []string{msg.Email},
				Subject: "Thanks for getting in touch",
				HTML:    ack,
			})
		}
		if err != nil {
			log.Warn().Err(err).Int64("contact_id", msg.ID).Msg("auto-reply skipped")
		}
	}

	return nil
}
