package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"caterlink/internal/domain/entity"
	"caterlink/internal/domain/repository"
	"caterlink/pkg/errors"
)

type firestoreUserRepository struct {
	client *firestore.Client
}

func NewFirestoreUserRepository(client *firestore.Client) repository.UserRepository {
	return &firestoreUserRepository{client: client}
}

func (r *firestoreUserRepository) Create(ctx context.Context, user *entity.User) error {
	if user.JoinedAt == 0 {
		user.JoinedAt = time.Now().UnixMilli()
	}

	_, err := r.client.Collection(collectionUsers).Doc(user.ID).Set(ctx, userToMap(user))
	if err != nil {
		return errors.Internal("Failed to create user", err)
	}

	return nil
}

func (r *firestoreUserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	doc, err := r.client.Collection(collectionUsers).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("User", err)
		}
		return nil, errors.Internal("Failed to get user", err)
	}

	return decodeUser(doc), nil
}

func (r *firestoreUserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	iter := r.client.Collection(collectionUsers).Where("email", "==", email).Limit(1).Documents(ctx)
	doc, err := iter.Next()
	if err != nil {
		if err == iterator.Done {
			return nil, errors.NotFound("User", nil)
		}
		return nil, errors.Internal("Failed to query user", err)
	}

	return decodeUser(doc), nil
}

// Save is the merge-upsert used by both post-login profile sync and the
// admin user editor; joinedAt is backfilled so a resync never zeroes the
// registration date.
func (r *firestoreUserRepository) Save(ctx context.Context, user *entity.User) error {
	if user.JoinedAt == 0 {
		user.JoinedAt = time.Now().UnixMilli()
	}

	_, err := r.client.Collection(collectionUsers).Doc(user.ID).Set(ctx, userToMap(user), firestore.MergeAll)
	if err != nil {
		return errors.Internal("Failed to save user", err)
	}

	return nil
}

func (r *firestoreUserRepository) UpdateDescription(ctx context.Context, id, description string) error {
	_, err := r.client.Collection(collectionUsers).Doc(id).Set(ctx, map[string]interface{}{
		"profileDescription": description,
	}, firestore.MergeAll)
	if err != nil {
		return errors.Internal("Failed to update profile description", err)
	}
	return nil
}

// Delete removes only the user document. Authored publications and inbox
// entries are left behind; readers skip records whose author is gone.
func (r *firestoreUserRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(collectionUsers).Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete user", err)
	}
	return nil
}

func decodeUser(doc *firestore.DocumentSnapshot) *entity.User {
	data := doc.Data()
	role := strField(data, "role")
	if !entity.ValidRole(role) {
		role = entity.RoleClient
	}
	return &entity.User{
		ID:                 doc.Ref.ID,
		Email:              strField(data, "email"),
		DisplayName:        strField(data, "displayName"),
		Role:               role,
		Affiliation:        strField(data, "affiliation"),
		Address:            strField(data, "address"),
		ProfileDescription: strField(data, "profileDescription"),
		JoinedAt:           epochMillis(data["joinedAt"]),
	}
}

func userToMap(user *entity.User) map[string]interface{} {
	return map[string]interface{}{
		"email":              user.Email,
		"displayName":        user.PublicName(),
		"role":               user.Role,
		"affiliation":        user.Affiliation,
		"address":            user.Address,
		"profileDescription": user.ProfileDescription,
		"joinedAt":           user.JoinedAt,
	}
}
