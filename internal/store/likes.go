package store

import (
	"context"
	"fmt"
)

// PostCount pairs a post with the number of devices that currently like it.
type PostCount struct {
	PostID string `json:"post_id"`
	Count  int64  `json:"count"`
}

// InsertLike records that a device likes a post. The insert is
// insert-if-absent: a (post_id, device_id) pair that already exists leaves
// the table unchanged and is not an error. Returns whether a new row was
// created.
func (s *Store) InsertLike(ctx context.Context, postID, deviceID string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO likes (post_id, device_id)
		VALUES ($1, $2)
		ON CONFLICT (post_id, device_id) DO NOTHING
	`, postID, deviceID)
	if err != nil {
		// Schemas from before the composite unique index carried a plain
		// unique constraint without a usable conflict target; absorb the
		// violation the same way ON CONFLICT would.
		if isUniqueViolation(err) {
			return false, nil
		}
		return false, fmt.Errorf("insert like: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return affected > 0, nil
}

// DeleteLike removes a device's like for a post. Deleting a like that was
// never recorded is a no-op, not an error.
func (s *Store) DeleteLike(ctx context.Context, postID, deviceID string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `
		DELETE FROM likes
		WHERE post_id = $1 AND device_id = $2
	`, postID, deviceID)
	if err != nil {
		return false, fmt.Errorf("delete like: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return affected > 0, nil
}

// CountLikes returns the number of distinct devices liking a post.
func (s *Store) CountLikes(ctx context.Context, postID string) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM likes
		WHERE post_id = $1
	`, postID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count likes: %w", err)
	}
	return count, nil
}

// AllLikeCounts returns per-post like totals ordered by post ID.
func (s *Store) AllLikeCounts(ctx context.Context) ([]PostCount, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT post_id, COUNT(*)
		FROM likes
		GROUP BY post_id
		ORDER BY post_id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("select like counts: %w", err)
	}
	defer rows.Close()

	var counts []PostCount
	for rows.Next() {
		var pc PostCount
		if err := rows.Scan(&pc.PostID, &pc.Count); err != nil {
			return nil, fmt.Errorf("scan like count: %w", err)
		}
		counts = append(counts, pc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate like counts: %w", err)
	}

	return counts, nil
}

// LikeExists reports whether a device currently likes a post.
func (s *Store) LikeExists(ctx context.Context, postID, deviceID string) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx, `
		SELECT EXISTS(SELECT 1 FROM likes WHERE post_id = $1 AND device_id = $2)
	`, postID, deviceID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check like: %w", err)
	}
	return exists, nil
}
