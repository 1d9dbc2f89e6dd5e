package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// The counter tables predate per-device likes: one row per post holding an
// anonymous tally. Kept alive so deployments still running that schema keep
// working.

// EnsureCounter inserts a zero counter for a post if none exists.
func (s *Store) EnsureCounter(ctx context.Context, postID string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO like_counters (post_id, count)
		VALUES ($1, 0)
		ON CONFLICT (post_id) DO NOTHING
	`, postID)
	if err != nil {
		return fmt.Errorf("ensure counter: %w", err)
	}
	return nil
}

// CounterValue reads the current tally for a post.
func (s *Store) CounterValue(ctx context.Context, postID string) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, `
		SELECT count
		FROM like_counters
		WHERE post_id = $1
	`, postID).Scan(&count)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrNoCounter
		}
		return 0, fmt.Errorf("read counter: %w", err)
	}
	return count, nil
}

// IncrementCounter adds one like to a post's tally.
func (s *Store) IncrementCounter(ctx context.Context, postID string) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE like_counters
		SET count = count + 1
		WHERE post_id = $1
	`, postID)
	if err != nil {
		return fmt.Errorf("increment counter: %w", err)
	}
	return nil
}

// DecrementCounter removes one like from a post's tally, clamped at zero.
func (s *Store) DecrementCounter(ctx context.Context, postID string) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE like_counters
		SET count = GREATEST(count - 1, 0)
		WHERE post_id = $1
	`, postID)
	if err != nil {
		return fmt.Errorf("decrement counter: %w", err)
	}
	return nil
}

// AllCounterValues returns every counter row ordered by post ID.
func (s *Store) AllCounterValues(ctx context.Context) ([]PostCount, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT post_id, count
		FROM like_counters
		ORDER BY post_id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("select counters: %w", err)
	}
	defer rows.Close()

	var counts []PostCount
	for rows.Next() {
		var pc PostCount
		if err := rows.Scan(&pc.PostID, &pc.Count); err != nil {
			return nil, fmt.Errorf("scan counter: %w", err)
		}
		counts = append(counts, pc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate counters: %w", err)
	}

	return counts, nil
}
