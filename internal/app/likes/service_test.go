package likes

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folio/internal/store"
)

var errDown = errors.New("storage unavailable")

// fakeStore keeps likes in memory with the same insert-if-absent and
// delete-if-present semantics the SQL store guarantees.
type fakeStore struct {
	rows map[string]map[string]bool
	fail bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{rows: make(map[string]map[string]bool)}
}

func (f *fakeStore) InsertLike(_ context.Context, postID, deviceID string) (bool, error) {
	if f.fail {
		return false, errDown
	}
	if f.rows[postID] == nil {
		f.rows[postID] = make(map[string]bool)
	}
	if f.rows[postID][deviceID] {
		return false, nil
	}
	f.rows[postID][deviceID] = true
	return true, nil
}

func (f *fakeStore) DeleteLike(_ context.Context, postID, deviceID string) (bool, error) {
	if f.fail {
		return false, errDown
	}
	if !f.rows[postID][deviceID] {
		return false, nil
	}
	delete(f.rows[postID], deviceID)
	return true, nil
}

func (f *fakeStore) CountLikes(_ context.Context, postID string) (int64, error) {
	if f.fail {
		return 0, errDown
	}
	return int64(len(f.rows[postID])), nil
}

func (f *fakeStore) AllLikeCounts(_ context.Context) ([]store.PostCount, error) {
	if f.fail {
		return nil, errDown
	}
	var counts []store.PostCount
	for postID, devices := range f.rows {
		if len(devices) > 0 {
			counts = append(counts, store.PostCount{PostID: postID, Count: int64(len(devices))})
		}
	}
	sort.Slice(counts, func(i, j int) bool { return counts[i].PostID < counts[j].PostID })
	return counts, nil
}

func (f *fakeStore) LikeExists(_ context.Context, postID, deviceID string) (bool, error) {
	if f.fail {
		return false, errDown
	}
	return f.rows[postID][deviceID], nil
}

func TestLikeTwiceYieldsOneRow(t *testing.T) {
	ctx := context.Background()
	fs := newFakeStore()
	svc := New(fs)

	liked, err := svc.Like(ctx, "post1", "deviceA")
	require.NoError(t, err)
	assert.True(t, liked)

	liked, err = svc.Like(ctx, "post1", "deviceA")
	require.NoError(t, err)
	assert.True(t, liked, "repeated like must still report liked")

	assert.Equal(t, int64(1), svc.Count(ctx, "post1"))
}

func TestUnlikeMissingIsNoOp(t *testing.T) {
	ctx := context.Background()
	fs := newFakeStore()
	svc := New(fs)

	liked, err := svc.Unlike(ctx, "post1", "deviceA")
	require.NoError(t, err)
	assert.False(t, liked)
	assert.Equal(t, int64(0), svc.Count(ctx, "post1"))
}

func TestLikeRoundTrip(t *testing.T) {
	ctx := context.Background()
	fs := newFakeStore()
	svc := New(fs)

	_, err := svc.Like(ctx, "post1", "deviceA")
	require.NoError(t, err)
	assert.True(t, svc.IsLiked(ctx, "post1", "deviceA"))

	_, err = svc.Unlike(ctx, "post1", "deviceA")
	require.NoError(t, err)
	assert.False(t, svc.IsLiked(ctx, "post1", "deviceA"))
}

func TestCountTracksDistinctDevices(t *testing.T) {
	ctx := context.Background()
	fs := newFakeStore()
	svc := New(fs)

	_, err := svc.Like(ctx, "post1", "deviceA")
	require.NoError(t, err)
	assert.Equal(t, int64(1), svc.Count(ctx, "post1"))

	_, err = svc.Like(ctx, "post1", "deviceB")
	require.NoError(t, err)
	assert.Equal(t, int64(2), svc.Count(ctx, "post1"))

	_, err = svc.Unlike(ctx, "post1", "deviceA")
	require.NoError(t, err)
	assert.Equal(t, int64(1), svc.Count(ctx, "post1"))
}

func TestReadsFailSoft(t *testing.T) {
	ctx := context.Background()
	fs := newFakeStore()
	svc := New(fs)

	_, err := svc.Like(ctx, "post1", "deviceA")
	require.NoError(t, err)

	fs.fail = true

	assert.Equal(t, int64(0), svc.Count(ctx, "post1"))
	assert.Equal(t, []store.PostCount{}, svc.AllCounts(ctx))
	assert.False(t, svc.IsLiked(ctx, "post1", "deviceA"))
}

func TestWritesSurfaceStorageFailure(t *testing.T) {
	ctx := context.Background()
	fs := newFakeStore()
	fs.fail = true
	svc := New(fs)

	liked, err := svc.Like(ctx, "post1", "deviceA")
	assert.ErrorIs(t, err, errDown)
	assert.False(t, liked)

	_, err = svc.Unlike(ctx, "post1", "deviceA")
	assert.ErrorIs(t, err, errDown)
}

func TestAllCountsOrdered(t *testing.T) {
	ctx := context.Background()
	fs := newFakeStore()
	svc := New(fs)

	for _, pair := range [][2]string{{"zeta", "d1"}, {"alpha", "d1"}, {"alpha", "d2"}} {
		_, err := svc.Like(ctx, pair[0], pair[1])
		require.NoError(t, err)
	}

	counts := svc.AllCounts(ctx)
	require.Len(t, counts, 2)
	assert.Equal(t, store.PostCount{PostID: "alpha", Count: 2}, counts[0])
	assert.Equal(t, store.PostCount{PostID: "zeta", Count: 1}, counts[1])
}

// fakeCounterStore mirrors the legacy single-tally schema.
type fakeCounterStore struct {
	counts map[string]int64
	fail   bool
}

func newFakeCounterStore() *fakeCounterStore {
	return &fakeCounterStore{counts: make(map[string]int64)}
}

func (f *fakeCounterStore) EnsureCounter(_ context.Context, postID string) error {
	if f.fail {
		return errDown
	}
	if _, ok := f.counts[postID]; !ok {
		f.counts[postID] = 0
	}
	return nil
}

func (f *fakeCounterStore) CounterValue(_ context.Context, postID string) (int64, error) {
	if f.fail {
		return 0, errDown
	}
	count, ok := f.counts[postID]
	if !ok {
		return 0, store.ErrNoCounter
	}
	return count, nil
}

func (f *fakeCounterStore) IncrementCounter(_ context.Context, postID string) error {
	if f.fail {
		return errDown
	}
	f.counts[postID]++
	return nil
}

func (f *fakeCounterStore) DecrementCounter(_ context.Context, postID string) error {
	if f.fail {
		return errDown
	}
	if f.counts[postID] > 0 {
		f.counts[postID]--
	}
	return nil
}

func (f *fakeCounterStore) AllCounterValues(_ context.Context) ([]store.PostCount, error) {
	if f.fail {
		return nil, errDown
	}
	var counts []store.PostCount
	for postID, count := range f.counts {
		counts = append(counts, store.PostCount{PostID: postID, Count: count})
	}
	sort.Slice(counts, func(i, j int) bool { return counts[i].PostID < counts[j].PostID })
	return counts, nil
}

func TestCounterLikeIncrements(t *testing.T) {
	ctx := context.Background()
	fs := newFakeCounterStore()
	svc := NewCounter(fs)

	// No device dedup in this model: every call counts.
	for i := 0; i < 3; i++ {
		liked, err := svc.Like(ctx, "post1", "deviceA")
		require.NoError(t, err)
		assert.True(t, liked)
	}

	assert.Equal(t, int64(3), svc.Count(ctx, "post1"))
}

func TestCounterNeverGoesNegative(t *testing.T) {
	ctx := context.Background()
	fs := newFakeCounterStore()
	svc := NewCounter(fs)

	_, err := svc.Like(ctx, "post1", "deviceA")
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		_, err := svc.Unlike(ctx, "post1", "deviceA")
		require.NoError(t, err)
	}

	assert.Equal(t, int64(0), svc.Count(ctx, "post1"))
}

func TestCounterCountSelfHeals(t *testing.T) {
	ctx := context.Background()
	fs := newFakeCounterStore()
	svc := NewCounter(fs)

	assert.Equal(t, int64(0), svc.Count(ctx, "fresh"))
	if _, ok := fs.counts["fresh"]; !ok {
		t.Fatalf("expected Count to create the missing counter row")
	}
}

func TestCounterIsLikedAlwaysFalse(t *testing.T) {
	ctx := context.Background()
	fs := newFakeCounterStore()
	svc := NewCounter(fs)

	_, err := svc.Like(ctx, "post1", "deviceA")
	require.NoError(t, err)
	assert.False(t, svc.IsLiked(ctx, "post1", "deviceA"))
}

func TestCounterFailSoft(t *testing.T) {
	ctx := context.Background()
	fs := newFakeCounterStore()
	fs.fail = true
	svc := NewCounter(fs)

	assert.Equal(t, int64(0), svc.Count(ctx, "post1"))
	assert.Equal(t, []store.PostCount{}, svc.AllCounts(ctx))
}
