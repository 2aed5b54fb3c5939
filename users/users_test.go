package users_test

import (
	"testing"

	"github.com/sessionapi/go-session-server/users"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := users.HashPassword("admin123")
	require.NoError(t, err)
	require.NotEqual(t, "admin123", hash)

	require.True(t, users.CheckPasswordHash("admin123", hash))
	require.False(t, users.CheckPasswordHash("admin124", hash))
	require.False(t, users.CheckPasswordHash("admin123", "not-a-hash"))
}

func TestInMemoryUserRepoLookups(t *testing.T) {
	repo, err := users.NewInMemoryUserRepo([]*users.User{
		{ID: 1, Username: "admin", Email: "admin@test.com", Role: users.RoleAdmin},
		{ID: 2, Username: "user1", Email: "user1@test.com", Role: users.RoleUser},
	})
	require.NoError(t, err)

	byName, err := repo.GetByUsername("admin")
	require.NoError(t, err)
	require.Equal(t, 1, byName.ID)
	require.True(t, byName.IsAdmin())

	byID, err := repo.GetByID(2)
	require.NoError(t, err)
	require.Equal(t, "user1", byID.Username)
	require.False(t, byID.IsAdmin())

	_, err = repo.GetByUsername("nobody")
	require.Error(t, err)
	_, err = repo.GetByID(99)
	require.Error(t, err)

	require.Len(t, repo.List(), 2)
}

func TestInMemoryUserRepoRejectsDuplicates(t *testing.T) {
	_, err := users.NewInMemoryUserRepo([]*users.User{
		{ID: 1, Username: "admin"},
		{ID: 2, Username: "admin"},
	})
	require.Error(t, err)

	_, err = users.NewInMemoryUserRepo([]*users.User{
		{ID: 1, Username: "admin"},
		{ID: 1, Username: "user1"},
	})
	require.Error(t, err)

	_, err = users.NewInMemoryUserRepo([]*users.User{{ID: 1}})
	require.Error(t, err)
}

func TestSeedUsers(t *testing.T) {
	seed := users.SeedUsers()
	require.Len(t, seed, 2)

	require.Equal(t, "admin", seed[0].Username)
	require.Equal(t, users.RoleAdmin, seed[0].Role)
	require.True(t, users.CheckPasswordHash("admin123", seed[0].PasswordHash))

	require.Equal(t, "user1", seed[1].Username)
	require.Equal(t, users.RoleUser, seed[1].Role)
	require.True(t, users.CheckPasswordHash("user123", seed[1].PasswordHash))
}
