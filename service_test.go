package lexit

import (
	"context"
	"testing"

	"github.com/poiesic/lexit/core"
	"github.com/poiesic/lexit/storage"
	"github.com/poiesic/lexit/storage/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	store := memory.NewStore()
	service, err := NewService(store)
	require.NoError(t, err)
	t.Cleanup(func() { service.Close() })
	return service
}

func TestNewService(t *testing.T) {
	t.Run("valid configuration", func(t *testing.T) {
		service, err := NewService(memory.NewStore())
		require.NoError(t, err)
		assert.NotNil(t, service)
	})

	t.Run("nil repository", func(t *testing.T) {
		_, err := NewService(nil)
		assert.Equal(t, ErrRecordRepositoryRequired, err)
	})
}

func TestService_CreateAndGetRoundTrip(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	created, err := service.Create(ctx, "round trip")
	require.NoError(t, err)
	assert.Equal(t, core.IDFromContent("round trip"), created.Id)
	assert.Equal(t, created.Id, created.Properties.Sha256Hash)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := service.GetByValue(ctx, "round trip")
	require.NoError(t, err)
	assert.Equal(t, "round trip", got.Value)
	assert.Equal(t, created.Id, got.Id)
}

func TestService_CreateConflict(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	_, err := service.Create(ctx, "once")
	require.NoError(t, err)

	_, err = service.Create(ctx, "once")
	assert.ErrorIs(t, err, storage.ErrConflict)

	records, err := service.ListAll(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestService_DeleteByValue(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	_, err := service.Create(ctx, "short lived")
	require.NoError(t, err)

	require.NoError(t, service.DeleteByValue(ctx, "short lived"))
	assert.ErrorIs(t, service.DeleteByValue(ctx, "short lived"), storage.ErrNotFound)
}

func TestService_ListAllFilters(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	for _, v := range []string{"abc", "aba"} {
		_, err := service.Create(ctx, v)
		require.NoError(t, err)
	}

	palindrome := true
	minLength := uint64(3)
	records, err := service.ListAll(ctx, &core.FilterCriteria{
		IsPalindrome: &palindrome,
		MinLength:    &minLength,
	})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "aba", records[0].Value)
}

func TestService_ListAllValidatesBeforeScanning(t *testing.T) {
	service := newTestService(t)
	bad := "ab"

	// The store is empty; an invalid filter must still be rejected.
	_, err := service.ListAll(context.Background(), &core.FilterCriteria{ContainsCharacter: &bad})
	assert.ErrorIs(t, err, core.ErrInvalidFilter)
}

func TestService_ListByPhrase(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	for _, v := range []string{"abc", "aba", "level crossing"} {
		_, err := service.Create(ctx, v)
		require.NoError(t, err)
	}

	criteria, records, err := service.ListByPhrase(ctx, "all palindromic strings")
	require.NoError(t, err)
	require.NotNil(t, criteria.IsPalindrome)
	assert.True(t, *criteria.IsPalindrome)
	require.Len(t, records, 1)
	assert.Equal(t, "aba", records[0].Value)
}

func TestService_ListByPhraseUnrecognized(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	_, err := service.Create(ctx, "anything")
	require.NoError(t, err)

	criteria, records, err := service.ListByPhrase(ctx, "gibberish that matches nothing")
	require.NoError(t, err)
	assert.Equal(t, core.FilterCriteria{}, criteria)
	assert.Len(t, records, 1, "an unconstrained phrase lists everything")
}

func TestService_IngestionPipeline(t *testing.T) {
	service := newTestService(t)

	pipeline, err := service.NewIngestionPipeline()
	require.NoError(t, err)
	defer pipeline.Release()

	result, err := pipeline.Ingest(context.Background(), "a", "b", "a")
	require.NoError(t, err)
	assert.Equal(t, 2, result.Inserted)
	assert.Equal(t, 1, result.Duplicates)
}
