package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLikeRepositoryIdempotentAdd(t *testing.T) {
	repo := NewPostgresLikeRepository(newTestDB(t))

	require.NoError(t, repo.AddLike("post-1", 1))
	require.NoError(t, repo.AddLike("post-1", 1))

	liked, err := repo.HasUserLikedPost("post-1", 1)
	require.NoError(t, err)
	assert.True(t, liked)

	ids, err := repo.GetLikedPostIDs(1)
	require.NoError(t, err)
	assert.Equal(t, []string{"post-1"}, ids)
}

func TestLikeRepositoryRemove(t *testing.T) {
	repo := NewPostgresLikeRepository(newTestDB(t))

	require.NoError(t, repo.AddLike("post-1", 1))
	require.NoError(t, repo.RemoveLike("post-1", 1))

	liked, err := repo.HasUserLikedPost("post-1", 1)
	require.NoError(t, err)
	assert.False(t, liked)

	// Removing a missing entry is a no-op success.
	require.NoError(t, repo.RemoveLike("post-1", 1))
	require.NoError(t, repo.RemoveLike("never-liked", 2))
}

func TestLikeRepositoryIndexPerUser(t *testing.T) {
	repo := NewPostgresLikeRepository(newTestDB(t))

	require.NoError(t, repo.AddLike("post-1", 1))
	require.NoError(t, repo.AddLike("post-2", 1))
	require.NoError(t, repo.AddLike("post-3", 2))

	ids, err := repo.GetLikedPostIDs(1)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"post-1", "post-2"}, ids)

	ids, err = repo.GetLikedPostIDs(2)
	require.NoError(t, err)
	assert.Equal(t, []string{"post-3"}, ids)
}
