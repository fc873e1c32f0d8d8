package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/noah-isme/attendance-api/pkg/errors"
)

func TestCacheRepositoryWithoutClient(t *testing.T) {
	repo := NewCacheRepository(nil, "attendance")
	ctx := context.Background()

	var dest []string
	err := repo.Get(ctx, "students:list", &dest)
	assert.ErrorIs(t, err, appErrors.ErrCacheMiss)

	require.NoError(t, repo.Set(ctx, "students:list", []string{"a"}, time.Minute))
	require.NoError(t, repo.DeleteByPattern(ctx, "students:*"))
	require.NoError(t, repo.Close())
}

func TestCacheRepositoryKeyPrefix(t *testing.T) {
	assert.Equal(t, "attendance:students:list", NewCacheRepository(nil, "attendance").key("students:list"))
	assert.Equal(t, "students:list", NewCacheRepository(nil, "").key("students:list"))
}
