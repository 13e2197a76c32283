package usecase

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"caterlink/internal/domain/entity"
	"caterlink/pkg/errors"
)

type stubUploader struct {
	folders []string
	url     string
}

func (u *stubUploader) UploadFile(ctx context.Context, file io.Reader, contentType, folder string) (string, error) {
	u.folders = append(u.folders, folder)
	return u.url, nil
}

func TestSubmitReviewResolvesTargetName(t *testing.T) {
	profileRepo := newFakeProfileRepo(&entity.PublicProfile{ID: "company-1", Name: "Acme Catering"})
	uc := NewProfileUseCase(profileRepo, newFakeUserRepo(), nil)

	actor := &entity.User{ID: "client-1", DisplayName: "Alice"}
	err := uc.SubmitReview(context.Background(), actor, ReviewInput{
		TargetID: "company-1",
		Rating:   5,
		Comment:  "  great food  ",
	})

	require.NoError(t, err)
	require.Len(t, profileRepo.applied, 1)
	review := profileRepo.applied[0]
	assert.Equal(t, "client-1", review.FromID)
	assert.Equal(t, "Acme Catering", review.ToName)
	assert.Equal(t, "great food", review.Comment)
}

func TestSubmitReviewToSelf(t *testing.T) {
	uc := NewProfileUseCase(newFakeProfileRepo(), newFakeUserRepo(), nil)

	actor := &entity.User{ID: "u1"}
	err := uc.SubmitReview(context.Background(), actor, ReviewInput{TargetID: "u1", Rating: 5})

	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestSubmitFinalReviewsRequiresParticipant(t *testing.T) {
	uc := NewProfileUseCase(newFakeProfileRepo(), newFakeUserRepo(), nil)

	outsider := &entity.User{ID: "other"}
	err := uc.SubmitFinalReviews(context.Background(), outsider, FinalReviewsInput{
		ClientID:  "client-1",
		CompanyID: "company-1",
	})

	assert.True(t, errors.Is(err, "FORBIDDEN"))
}

func TestSubmitFinalReviewsRejectsSameUser(t *testing.T) {
	uc := NewProfileUseCase(newFakeProfileRepo(), newFakeUserRepo(), nil)

	actor := &entity.User{ID: "u1"}
	err := uc.SubmitFinalReviews(context.Background(), actor, FinalReviewsInput{
		ClientID:  "u1",
		CompanyID: "u1",
	})

	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestSubmitFinalReviewsAppliesPair(t *testing.T) {
	profileRepo := newFakeProfileRepo()
	uc := NewProfileUseCase(profileRepo, newFakeUserRepo(), nil)

	client := &entity.User{ID: "client-1", DisplayName: "Alice"}
	err := uc.SubmitFinalReviews(context.Background(), client, FinalReviewsInput{
		ClientID:       "client-1",
		ClientName:     "Alice",
		CompanyID:      "company-1",
		CompanyName:    "Acme",
		ClientRating:   5,
		ClientComment:  "great",
		CompanyRating:  4,
		CompanyComment: "prompt payment",
	})

	require.NoError(t, err)
	require.Len(t, profileRepo.pairs, 1)

	pair := profileRepo.pairs[0]
	assert.Equal(t, "company-1", pair[0].ToID)
	assert.Equal(t, 5, pair[0].Rating)
	assert.Equal(t, "client-1", pair[1].ToID)
	assert.Equal(t, 4, pair[1].Rating)
}

func TestAddPreviousWorkWithoutImage(t *testing.T) {
	profileRepo := newFakeProfileRepo()
	uc := NewProfileUseCase(profileRepo, newFakeUserRepo(), nil)

	user := &entity.User{ID: "company-1"}
	work, err := uc.AddPreviousWork(context.Background(), user, PreviousWorkInput{
		Title:       "Summer wedding",
		Description: "200 guests",
	})

	require.NoError(t, err)
	assert.Empty(t, work.ImageURL)
	require.Len(t, profileRepo.works["company-1"], 1)
	assert.Equal(t, "Summer wedding", profileRepo.works["company-1"][0].Title)
}

func TestAddPreviousWorkUploadsImage(t *testing.T) {
	profileRepo := newFakeProfileRepo()
	uploader := &stubUploader{url: "https://storage.googleapis.com/bucket/works/company-1/img.jpg"}
	uc := NewProfileUseCase(profileRepo, newFakeUserRepo(), uploader)

	user := &entity.User{ID: "company-1"}
	work, err := uc.AddPreviousWork(context.Background(), user, PreviousWorkInput{
		Title:       "Gala dinner",
		Image:       strings.NewReader("fake-bytes"),
		ContentType: "image/jpeg",
	})

	require.NoError(t, err)
	assert.Equal(t, uploader.url, work.ImageURL)
	assert.Equal(t, []string{"works/company-1"}, uploader.folders)
}

func TestUpdateDescription(t *testing.T) {
	user := &entity.User{ID: "u1"}
	userRepo := newFakeUserRepo(user)
	uc := NewProfileUseCase(newFakeProfileRepo(), userRepo, nil)

	require.NoError(t, uc.UpdateDescription(context.Background(), user, "family-run kitchen"))
	assert.Equal(t, "family-run kitchen", userRepo.users["u1"].ProfileDescription)
}
