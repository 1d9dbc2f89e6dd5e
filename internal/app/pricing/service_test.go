package pricing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folio/internal/mailer"
	"folio/internal/store"
)

type fakeStore struct {
	stored []store.PricingRequest
	err    error
}

func (f *fakeStore) CreatePricingRequest(_ context.Context, req store.PricingRequest) (store.PricingRequest, error) {
	if f.err != nil {
		return store.PricingRequest{}, f.err
	}
	req.ID = int64(len(f.stored) + 1)
	f.stored = append(f.stored, req)
	return req, nil
}

type fakeSender struct {
	sent []mailer.Message
	err  error
}

func (f *fakeSender) Send(_ context.Context, msg mailer.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

func TestSubmitPersistsAndNotifies(t *testing.T) {
	fs := &fakeStore{}
	sender := &fakeSender{}
	svc := New(fs, sender, "owner@example.com")

	err := svc.Submit(context.Background(), Request{Plan: "pro", Billing: "yearly", Price: 99})
	require.NoError(t, err)

	require.Len(t, fs.stored, 1)
	assert.Equal(t, "pro", fs.stored[0].Plan)

	require.Len(t, sender.sent, 1)
	assert.Equal(t, []string{"owner@example.com"}, sender.sent[0].To)
	assert.Contains(t, sender.sent[0].Subject, "pro")
}

func TestSubmitStorageFailureSkipsNotification(t *testing.T) {
	fs := &fakeStore{err: errors.New("connection refused")}
	sender := &fakeSender{}
	svc := New(fs, sender, "owner@example.com")

	err := svc.Submit(context.Background(), Request{Plan: "pro", Billing: "monthly", Price: 12})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotifyFailed)
	assert.Empty(t, sender.sent)
}

func TestSubmitNotifyFailureKeepsRow(t *testing.T) {
	fs := &fakeStore{}
	sender := &fakeSender{err: errors.New("smtp timeout")}
	svc := New(fs, sender, "owner@example.com")

	err := svc.Submit(context.Background(), Request{Plan: "starter", Billing: "monthly", Price: 5})
	assert.ErrorIs(t, err, ErrNotifyFailed)
	assert.Len(t, fs.stored, 1)
}

func TestSubmitWithoutNotifierConfigured(t *testing.T) {
	fs := &fakeStore{}
	svc := New(fs, nil, "")

	err := svc.Submit(context.Background(), Request{Plan: "pro", Billing: "yearly", Price: 99})
	require.NoError(t, err)
	assert.Len(t, fs.stored, 1)
}
