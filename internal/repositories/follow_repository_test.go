package repositories

import (
	"testing"

	"github.com/Anasnaveed69/MingleMe-sub000/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowRepositoryEdgeLifecycle(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresFollowRepository(db)

	require.NoError(t, repo.CreateFollow(&models.Follow{FollowerID: 1, FollowingID: 2}))

	following, err := repo.IsFollowing(1, 2)
	require.NoError(t, err)
	assert.True(t, following)

	// Direction matters.
	reverse, err := repo.IsFollowing(2, 1)
	require.NoError(t, err)
	assert.False(t, reverse)

	existed, err := repo.DeleteFollow(1, 2)
	require.NoError(t, err)
	assert.True(t, existed)

	existed, err = repo.DeleteFollow(1, 2)
	require.NoError(t, err)
	assert.False(t, existed)
}

func TestFollowRepositoryListsAndCounts(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresFollowRepository(db)
	userRepo := NewPostgresUserRepository(db)

	for _, name := range []string{"alice", "bob", "carol"} {
		require.NoError(t, userRepo.CreateUser(&models.User{Username: name, Email: name + "@example.com", Active: true}))
	}

	// bob and carol follow alice; alice follows bob.
	require.NoError(t, repo.CreateFollow(&models.Follow{FollowerID: 2, FollowingID: 1}))
	require.NoError(t, repo.CreateFollow(&models.Follow{FollowerID: 3, FollowingID: 1}))
	require.NoError(t, repo.CreateFollow(&models.Follow{FollowerID: 1, FollowingID: 2}))

	followers, err := repo.GetFollowers(1)
	require.NoError(t, err)
	names := make([]string, len(followers))
	for i, u := range followers {
		names[i] = u.Username
	}
	assert.ElementsMatch(t, []string{"bob", "carol"}, names)

	following, err := repo.GetFollowing(1)
	require.NoError(t, err)
	require.Len(t, following, 1)
	assert.Equal(t, "bob", following[0].Username)

	followerCount, err := repo.GetFollowersCount(1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), followerCount)

	followingCount, err := repo.GetFollowingCount(1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), followingCount)
}
