package usecase

import (
	"context"

	"caterlink/internal/domain/entity"
	"caterlink/internal/domain/repository"
	"caterlink/pkg/logger"
)

type PreferenceUseCase struct {
	prefRepo    repository.PreferenceRepository
	offerRepo   repository.OfferRepository
	requestRepo repository.RequestRepository
	inboxUc     *InboxUseCase
}

func NewPreferenceUseCase(
	prefRepo repository.PreferenceRepository,
	offerRepo repository.OfferRepository,
	requestRepo repository.RequestRepository,
	inboxUc *InboxUseCase,
) *PreferenceUseCase {
	return &PreferenceUseCase{
		prefRepo:    prefRepo,
		offerRepo:   offerRepo,
		requestRepo: requestRepo,
		inboxUc:     inboxUc,
	}
}

func (uc *PreferenceUseCase) Get(ctx context.Context, userID string) (*entity.Preferences, error) {
	return uc.prefRepo.Get(ctx, userID)
}

type ToggleResult struct {
	Accepted bool `json:"accepted"`
}

// ToggleOffer flips the offer in the caller's accepted set. Toggling on a
// foreign offer fans out an execution request to its author; toggling on
// one's own offer is a plain bookmark, and toggling off never notifies.
// The toggle itself is already committed by the time the notification is
// attempted, so a notification failure only logs.
func (uc *PreferenceUseCase) ToggleOffer(ctx context.Context, user *entity.User, offerID string) (*ToggleResult, error) {
	added, err := uc.prefRepo.Toggle(ctx, user.ID, repository.PreferenceOffers, offerID)
	if err != nil {
		return nil, err
	}

	if added {
		offer, err := uc.offerRepo.GetByID(ctx, offerID)
		if err != nil {
			logger.Warn("Accepted offer %s not found, skipping execution request: %v", offerID, err)
			return &ToggleResult{Accepted: added}, nil
		}
		if offer.AuthorID != user.ID {
			_, err := uc.inboxUc.SubmitExecutionRequest(ctx, ExecutionRequestInput{
				PublicationID:    offer.ID,
				PublicationTitle: offer.Title(),
				PublicationType:  entity.PublicationOffer,
				RequesterID:      user.ID,
				RequesterName:    user.PublicName(),
				RecipientID:      offer.AuthorID,
				RecipientName:    offer.AuthorName,
			})
			if err != nil {
				logger.Warn("Execution request for offer %s failed: %v", offerID, err)
			}
		}
	}

	return &ToggleResult{Accepted: added}, nil
}

func (uc *PreferenceUseCase) ToggleRequest(ctx context.Context, user *entity.User, requestID string) (*ToggleResult, error) {
	added, err := uc.prefRepo.Toggle(ctx, user.ID, repository.PreferenceRequests, requestID)
	if err != nil {
		return nil, err
	}

	if added {
		request, err := uc.requestRepo.GetByID(ctx, requestID)
		if err != nil {
			logger.Warn("Accepted request %s not found, skipping execution request: %v", requestID, err)
			return &ToggleResult{Accepted: added}, nil
		}
		if request.AuthorID != user.ID {
			_, err := uc.inboxUc.SubmitExecutionRequest(ctx, ExecutionRequestInput{
				PublicationID:    request.ID,
				PublicationTitle: request.Title(),
				PublicationType:  entity.PublicationRequest,
				RequesterID:      user.ID,
				RequesterName:    user.PublicName(),
				RecipientID:      request.AuthorID,
				RecipientName:    request.AuthorName,
			})
			if err != nil {
				logger.Warn("Execution request for request %s failed: %v", requestID, err)
			}
		}
	}

	return &ToggleResult{Accepted: added}, nil
}
