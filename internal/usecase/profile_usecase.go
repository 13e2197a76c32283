package usecase

import (
	"context"
	"io"
	"strings"

	"caterlink/internal/domain/entity"
	"caterlink/internal/domain/repository"
	"caterlink/pkg/errors"
)

type ProfileUseCase struct {
	profileRepo repository.ProfileRepository
	userRepo    repository.UserRepository
	uploader    FileUploader
}

func NewProfileUseCase(
	profileRepo repository.ProfileRepository,
	userRepo repository.UserRepository,
	uploader FileUploader,
) *ProfileUseCase {
	return &ProfileUseCase{
		profileRepo: profileRepo,
		userRepo:    userRepo,
		uploader:    uploader,
	}
}

func (uc *ProfileUseCase) GetProfile(ctx context.Context, id string) (*entity.PublicProfile, error) {
	return uc.profileRepo.GetByID(ctx, id)
}

func (uc *ProfileUseCase) ListProfiles(ctx context.Context) ([]*entity.PublicProfile, error) {
	return uc.profileRepo.List(ctx)
}

func (uc *ProfileUseCase) UpdateDescription(ctx context.Context, user *entity.User, description string) error {
	return uc.userRepo.UpdateDescription(ctx, user.ID, description)
}

// SyncProfile merge-upserts the caller's user document; the client calls it
// after sign-in so the public projection stays loosely in line with the
// auth record.
func (uc *ProfileUseCase) SyncProfile(ctx context.Context, user *entity.User) error {
	return uc.userRepo.Save(ctx, user)
}

type ReviewInput struct {
	TargetID   string
	TargetName string
	Rating     int
	Comment    string
}

// SubmitReview applies one review to the target's rating aggregate. The
// rating value is trusted to be 1..5 here; request validation constrains
// the input before it ever reaches the aggregator.
func (uc *ProfileUseCase) SubmitReview(ctx context.Context, actor *entity.User, input ReviewInput) error {
	if actor.ID == input.TargetID {
		return errors.BadRequest("Cannot review yourself", nil)
	}

	targetName := input.TargetName
	if profile, err := uc.profileRepo.GetByID(ctx, input.TargetID); err == nil {
		targetName = profile.Name
	}

	return uc.profileRepo.ApplyReview(ctx, repository.ReviewTarget{
		FromID:   actor.ID,
		FromName: actor.PublicName(),
		ToID:     input.TargetID,
		ToName:   targetName,
		Rating:   input.Rating,
		Comment:  strings.TrimSpace(input.Comment),
	})
}

type FinalReviewsInput struct {
	ClientID       string
	ClientName     string
	CompanyID      string
	CompanyName    string
	ClientRating   int
	ClientComment  string
	CompanyRating  int
	CompanyComment string
}

// SubmitFinalReviews applies the client→company and company→client reviews
// of a finished job as one atomic pair. The submitting user must be one of
// the two sides.
func (uc *ProfileUseCase) SubmitFinalReviews(ctx context.Context, actor *entity.User, input FinalReviewsInput) error {
	if actor.ID != input.ClientID && actor.ID != input.CompanyID {
		return errors.Forbidden("Only a participant can submit the final reviews", nil)
	}
	if input.ClientID == input.CompanyID {
		return errors.BadRequest("Review pair must involve two distinct users", nil)
	}

	clientReview := repository.ReviewTarget{
		FromID:   input.ClientID,
		FromName: input.ClientName,
		ToID:     input.CompanyID,
		ToName:   input.CompanyName,
		Rating:   input.ClientRating,
		Comment:  strings.TrimSpace(input.ClientComment),
	}
	companyReview := repository.ReviewTarget{
		FromID:   input.CompanyID,
		FromName: input.CompanyName,
		ToID:     input.ClientID,
		ToName:   input.ClientName,
		Rating:   input.CompanyRating,
		Comment:  strings.TrimSpace(input.CompanyComment),
	}

	return uc.profileRepo.ApplyReviewPair(ctx, clientReview, companyReview)
}

type PreviousWorkInput struct {
	Title       string
	Description string
	Image       io.Reader
	ContentType string
}

// AddPreviousWork uploads the portfolio image (when one is attached) and
// appends the work item to the caller's profile.
func (uc *ProfileUseCase) AddPreviousWork(ctx context.Context, user *entity.User, input PreviousWorkInput) (*entity.PreviousWork, error) {
	work := entity.PreviousWork{
		Title:       input.Title,
		Description: input.Description,
	}

	if input.Image != nil {
		url, err := uc.uploader.UploadFile(ctx, input.Image, input.ContentType, "works/"+user.ID)
		if err != nil {
			return nil, errors.Internal("Failed to upload work image", err)
		}
		work.ImageURL = url
	}

	if err := uc.profileRepo.AppendPreviousWork(ctx, user.ID, work); err != nil {
		return nil, err
	}

	return &work, nil
}
