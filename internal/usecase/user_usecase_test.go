package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"caterlink/internal/domain/entity"
	"caterlink/pkg/errors"
)

func TestSaveUserRejectsUnknownRole(t *testing.T) {
	uc := NewUserUseCase(newFakeUserRepo(), newFakeProfileRepo())

	_, err := uc.SaveUser(context.Background(), AdminUserInput{
		UserID: "u1",
		Email:  "a@b.com",
		Role:   "SUPERUSER",
	})

	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestSaveUserPreservesJoinedAt(t *testing.T) {
	existing := &entity.User{ID: "u1", Email: "old@b.com", JoinedAt: 12345}
	userRepo := newFakeUserRepo(existing)
	uc := NewUserUseCase(userRepo, newFakeProfileRepo())

	saved, err := uc.SaveUser(context.Background(), AdminUserInput{
		UserID:      "u1",
		Email:       "new@b.com",
		DisplayName: "Renamed",
		Role:        entity.RoleCompany,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(12345), saved.JoinedAt)
	assert.Equal(t, "new@b.com", userRepo.users["u1"].Email)
}

func TestSaveUserCreatesNewAccount(t *testing.T) {
	userRepo := newFakeUserRepo()
	uc := NewUserUseCase(userRepo, newFakeProfileRepo())

	saved, err := uc.SaveUser(context.Background(), AdminUserInput{
		UserID: "u2",
		Email:  "c@d.com",
		Role:   entity.RoleClient,
	})

	require.NoError(t, err)
	assert.Zero(t, saved.JoinedAt)
	assert.Contains(t, userRepo.users, "u2")
}

func TestDeleteUserLeavesNoCascade(t *testing.T) {
	user := &entity.User{ID: "u1"}
	userRepo := newFakeUserRepo(user)
	uc := NewUserUseCase(userRepo, newFakeProfileRepo())

	require.NoError(t, uc.DeleteUser(context.Background(), "u1"))
	assert.NotContains(t, userRepo.users, "u1")
}
