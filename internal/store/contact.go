package store

import (
	"context"
	"fmt"
	"time"
)

// ContactMessage is a contact-form submission. Rows are immutable once
// written; the site owner reads them out of band.
type ContactMessage struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateContactMessage persists a contact submission and returns it with
// its assigned ID and timestamp.
func (s *Store) CreateContactMessage(ctx context.Context, msg ContactMessage) (ContactMessage, error) {
	msg.CreatedAt = time.Now().UTC()

	err := s.db.QueryRowContext(ctx, `
		INSERT INTO contact_messages (name, email, phone, message, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, msg.Name, msg.Email, msg.Phone, msg.Message, msg.CreatedAt).Scan(&msg.ID)
	if err != nil {
		return ContactMessage{}, fmt.Errorf("insert contact message: %w", err)
	}

	return msg, nil
}
