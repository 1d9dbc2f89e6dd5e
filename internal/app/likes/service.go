// Package likes implements the like ledger: per-device like rows as the
// canonical model, with the legacy anonymous counter model kept as an
// alternate implementation of the same interface.
package likes

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"folio/internal/store"
)

// Store defines persistence operations required by the row-model ledger.
type Store interface {
	InsertLike(ctx context.Context, postID, deviceID string) (bool, error)
	DeleteLike(ctx context.Context, postID, deviceID string) (bool, error)
	CountLikes(ctx context.Context, postID string) (int64, error)
	AllLikeCounts(ctx context.Context) ([]store.PostCount, error)
	LikeExists(ctx context.Context, postID, deviceID string) (bool, error)
}

// Service describes the like operations used by the HTTP handlers. Reads
// fail soft: a storage failure yields the zero value, never an error, so
// display endpoints stay up while the database is down. The returned bool
// from Like and Unlike is the liked state after the operation.
type Service interface {
	Count(ctx context.Context, postID string) int64
	AllCounts(ctx context.Context) []store.PostCount
	IsLiked(ctx context.Context, postID, deviceID string) bool
	Like(ctx context.Context, postID, deviceID string) (bool, error)
	Unlike(ctx context.Context, postID, deviceID string) (bool, error)
}

type service struct {
	store Store
}

// New constructs the row-model like Service backed by the given store.
func New(st Store) Service {
	return &service{store: st}
}

func (s *service) Count(ctx context.Context, postID string) int64 {
	count, err := s.store.CountLikes(ctx, postID)
	if err != nil {
		log.Warn().Err(err).Str("post_id", postID).Msg("like count degraded to zero")
		return 0
	}
	return count
}

func (s *service) AllCounts(ctx context.Context) []store.PostCount {
	counts, err := s.store.AllLikeCounts(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("like counts degraded to empty")
		return []store.PostCount{}
	}
	if counts == nil {
		counts = []store.PostCount{}
	}
	return counts
}

func (s *service) IsLiked(ctx context.Context, postID, deviceID string) bool {
	liked, err := s.store.LikeExists(ctx, postID, deviceID)
	if err != nil {
		log.Warn().Err(err).Str("post_id", postID).Msg("liked check degraded to false")
		return false
	}
	return liked
}

// Like records the device's like. Repeats are no-ops: the uniqueness
// constraint on (post_id, device_id) guarantees exactly one row even under
// concurrent calls, and the insert-if-absent statement keeps the duplicate
// from ever surfacing as an error.
func (s *service) Like(ctx context.Context, postID, deviceID string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if _, err := s.store.InsertLike(ctx, postID, deviceID); err != nil {
		return false, err
	}
	return true, nil
}

// Unlike removes the device's like if present; a missing row is a no-op.
func (s *service) Unlike(ctx context.Context, postID, deviceID string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if _, err := s.store.DeleteLike(ctx, postID, deviceID); err != nil {
		return false, err
	}
	return false, nil
}

var errCounterModel = errors.New("counter model cannot track devices")

// CounterStore defines persistence operations required by the counter-model
// ledger.
type CounterStore interface {
	EnsureCounter(ctx context.Context, postID string) error
	CounterValue(ctx context.Context, postID string) (int64, error)
	IncrementCounter(ctx context.Context, postID string) error
	DecrementCounter(ctx context.Context, postID string) error
	AllCounterValues(ctx context.Context) ([]store.PostCount, error)
}

type counterService struct {
	store CounterStore
}

// NewCounter constructs the legacy counter-model Service. It keeps a single
// anonymous tally per post: Like is a bare increment with no device
// deduplication, Unlike clamps at zero, and IsLiked always reports false
// because the model cannot represent who liked what.
func NewCounter(st CounterStore) Service {
	return &counterService{store: st}
}

func (s *counterService) Count(ctx context.Context, postID string) int64 {
	// Self-heal missing rows before reading, matching the deployed
	// counter-schema revisions.
	if err := s.store.EnsureCounter(ctx, postID); err != nil {
		log.Warn().Err(err).Str("post_id", postID).Msg("counter ensure degraded to zero")
		return 0
	}
	count, err := s.store.CounterValue(ctx, postID)
	if err != nil {
		log.Warn().Err(err).Str("post_id", postID).Msg("counter read degraded to zero")
		return 0
	}
	return count
}

func (s *counterService) AllCounts(ctx context.Context) []store.PostCount {
	counts, err := s.store.AllCounterValues(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("counter list degraded to empty")
		return []store.PostCount{}
	}
	if counts == nil {
		counts = []store.PostCount{}
	}
	return counts
}

func (s *counterService) IsLiked(ctx context.Context, postID, deviceID string) bool {
	log.Debug().Err(errCounterModel).Str("post_id", postID).Msg("liked check reports false")
	return false
}

func (s *counterService) Like(ctx context.Context, postID, deviceID string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if err := s.store.EnsureCounter(ctx, postID); err != nil {
		return false, err
	}
	if err := s.store.IncrementCounter(ctx, postID); err != nil {
		return false, err
	}
	return true, nil
}

func (s *counterService) Unlike(ctx context.Context, postID, deviceID string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if err := s.store.DecrementCounter(ctx, postID); err != nil {
		return false, err
	}
	return false, nil
}
