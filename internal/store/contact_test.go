package store

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestCreateContactMessage(t *testing.T) {
	s, mock, done := newMockStore(t)
	defer done()

	mock.ExpectQuery(regexp.QuoteMeta(`
		INSERT INTO contact_messages (name, email, phone, message, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`)).
		WithArgs("Ada", "ada@example.com", "555-0100", "Hello there", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(11)))

	msg, err := s.CreateContactMessage(context.Background(), ContactMessage{
		Name:    "Ada",
		Email:   "ada@example.com",
		Phone:   "555-0100",
		Message: "Hello there",
	})
	if err != nil {
		t.Fatalf("CreateContactMessage error: %v", err)
	}
	if msg.ID != 11 {
		t.Fatalf("id = %d, want 11", msg.ID)
	}
	if msg.CreatedAt.IsZero() {
		t.Fatalf("expected created_at to be stamped")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateContactMessageStorageFailure(t *testing.T) {
	s, mock, done := newMockStore(t)
	defer done()

	mock.ExpectQuery(regexp.QuoteMeta(`
		INSERT INTO contact_messages (name, email, phone, message, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`)).
		WillReturnError(errors.New("connection reset"))

	if _, err := s.CreateContactMessage(context.Background(), ContactMessage{Name: "Ada"}); err == nil {
		t.Fatalf("expected storage failure to surface")
	}
}

func TestCreatePricingRequest(t *testing.T) {
	s, mock, done := newMockStore(t)
	defer done()

	mock.ExpectQuery(regexp.QuoteMeta(`
		INSERT INTO pricing_requests (plan, billing, price)
		VALUES ($1, $2, $3)
		RETURNING id
	`)).
		WithArgs("pro", "yearly", 99.0).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(4)))

	req, err := s.CreatePricingRequest(context.Background(), PricingRequest{
		Plan:    "pro",
		Billing: "yearly",
		Price:   99.0,
	})
	if err != nil {
		t.Fatalf("CreatePricingRequest error: %v", err)
	}
	if req.ID != 4 {
		t.Fatalf("id = %d, want 4", req.ID)
	}
}
