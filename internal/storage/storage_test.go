//nolint:testpackage // White-box tests require access to unexported identifiers in this package.
package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "nested", "inbox.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStore_SaveGetList(t *testing.T) {
	ctx := context.Background()
	s := openTemp(t)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tick := 0
	s.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Minute)
	}

	first, err := s.Save(ctx, Submission{FirstName: "Jane", EmailAddress: "jane@example.com", EmailMessage: "hi"})
	require.NoError(t, err)
	require.NotEmpty(t, first.ID)
	assert.Equal(t, base.Add(time.Minute), first.ReceivedAt)

	second, err := s.Save(ctx, Submission{EmailAddress: "sam@example.com", RequestID: "req-2"})
	require.NoError(t, err)

	got, err := s.Get(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, first, got)

	all, err := s.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID, "newest first")
	assert.Equal(t, "req-2", all[0].RequestID)

	one, err := s.List(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, one, 1)

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
}

func TestStore_Validation(t *testing.T) {
	s := openTemp(t)

	_, err := s.Save(context.Background(), Submission{EmailAddress: "abc"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid submission")

	n, err := s.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestStore_GetMissing(t *testing.T) {
	s := openTemp(t)

	_, err := s.Get(context.Background(), "nope")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestStore_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inbox.db")
	s, err := Open(path)
	require.NoError(t, err)
	saved, err := s.Save(context.Background(), Submission{EmailAddress: "jane@example.com"})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s2, err := Open(path)
	require.NoError(t, err)
	defer s2.Close()
	got, err := s2.Get(context.Background(), saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", got.EmailAddress)
}

func TestExpandTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	got, err := expandTilde("~/inbox.db")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "inbox.db"), got)

	got, err = expandTilde("/tmp/inbox.db")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/inbox.db", got)
}

func TestOpen_EmptyPath(t *testing.T) {
	_, err := Open("")
	require.Error(t, err)
}
