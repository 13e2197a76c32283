package usecase

import (
	"context"

	"caterlink/internal/domain/entity"
	"caterlink/internal/domain/repository"
	"caterlink/pkg/errors"
)

type UserUseCase struct {
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
}

func NewUserUseCase(userRepo repository.UserRepository, profileRepo repository.ProfileRepository) *UserUseCase {
	return &UserUseCase{
		userRepo:    userRepo,
		profileRepo: profileRepo,
	}
}

type AdminUserInput struct {
	UserID      string
	Email       string
	DisplayName string
	Role        string
	Affiliation string
	Address     string
	Description string
}

// SaveUser is the admin editor's merge-upsert; an existing joinedAt is kept
// by reading the current document first.
func (uc *UserUseCase) SaveUser(ctx context.Context, input AdminUserInput) (*entity.User, error) {
	if !entity.ValidRole(input.Role) {
		return nil, errors.BadRequest("Unknown role", nil)
	}

	var joinedAt int64
	if existing, err := uc.userRepo.GetByID(ctx, input.UserID); err == nil {
		joinedAt = existing.JoinedAt
	}

	user := &entity.User{
		ID:                 input.UserID,
		Email:              input.Email,
		DisplayName:        input.DisplayName,
		Role:               input.Role,
		Affiliation:        input.Affiliation,
		Address:            input.Address,
		ProfileDescription: input.Description,
		JoinedAt:           joinedAt,
	}

	if err := uc.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// DeleteUser removes the user document only; authored publications and
// inbox entries stay behind as orphans.
func (uc *UserUseCase) DeleteUser(ctx context.Context, id string) error {
	return uc.userRepo.Delete(ctx, id)
}

func (uc *UserUseCase) ListUsers(ctx context.Context) ([]*entity.PublicProfile, error) {
	return uc.profileRepo.List(ctx)
}
