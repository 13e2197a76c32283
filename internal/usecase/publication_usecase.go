package usecase

import (
	"context"

	"caterlink/internal/domain/entity"
	"caterlink/internal/domain/repository"
	"caterlink/pkg/errors"
	"caterlink/pkg/logger"
)

type PublicationUseCase struct {
	offerRepo   repository.OfferRepository
	requestRepo repository.RequestRepository
	userRepo    repository.UserRepository
	inboxUc     *InboxUseCase
}

func NewPublicationUseCase(
	offerRepo repository.OfferRepository,
	requestRepo repository.RequestRepository,
	userRepo repository.UserRepository,
	inboxUc *InboxUseCase,
) *PublicationUseCase {
	return &PublicationUseCase{
		offerRepo:   offerRepo,
		requestRepo: requestRepo,
		userRepo:    userRepo,
		inboxUc:     inboxUc,
	}
}

type OfferInput struct {
	PriceRange    string
	PeopleRange   string
	LocationRange string
	Description   string
	CateringType  string

	// AuthorID lets an admin publish on another user's behalf; everyone
	// else publishes as themselves.
	AuthorID string
}

type RequestInput struct {
	PriceRange   string
	PeopleCount  int
	Services     []string
	CateringType string
	Location     string
	EventDate    string
	Notes        string
	AuthorID     string
}

func (uc *PublicationUseCase) CreateOffer(ctx context.Context, actor *entity.User, input OfferInput) (*entity.Offer, error) {
	author, err := uc.resolveAuthor(ctx, actor, input.AuthorID)
	if err != nil {
		return nil, err
	}

	offer := &entity.Offer{
		AuthorID:      author.ID,
		AuthorName:    author.PublicName(),
		PriceRange:    input.PriceRange,
		PeopleRange:   input.PeopleRange,
		LocationRange: input.LocationRange,
		Description:   input.Description,
		CateringType:  input.CateringType,
	}

	if err := uc.offerRepo.Create(ctx, offer); err != nil {
		return nil, err
	}

	return offer, nil
}

func (uc *PublicationUseCase) CreateRequest(ctx context.Context, actor *entity.User, input RequestInput) (*entity.Request, error) {
	author, err := uc.resolveAuthor(ctx, actor, input.AuthorID)
	if err != nil {
		return nil, err
	}

	request := &entity.Request{
		AuthorID:     author.ID,
		AuthorName:   author.PublicName(),
		PriceRange:   input.PriceRange,
		PeopleCount:  input.PeopleCount,
		Services:     input.Services,
		CateringType: input.CateringType,
		Location:     input.Location,
		EventDate:    input.EventDate,
		Notes:        input.Notes,
	}

	if err := uc.requestRepo.Create(ctx, request); err != nil {
		return nil, err
	}

	return request, nil
}

func (uc *PublicationUseCase) ListOffers(ctx context.Context, limit, offset int) ([]*entity.Offer, int64, error) {
	return uc.offerRepo.List(ctx, limit, offset)
}

func (uc *PublicationUseCase) ListRequests(ctx context.Context, limit, offset int) ([]*entity.Request, int64, error) {
	return uc.requestRepo.List(ctx, limit, offset)
}

func (uc *PublicationUseCase) GetOffer(ctx context.Context, id string) (*entity.Offer, error) {
	return uc.offerRepo.GetByID(ctx, id)
}

func (uc *PublicationUseCase) GetRequest(ctx context.Context, id string) (*entity.Request, error) {
	return uc.requestRepo.GetByID(ctx, id)
}

type OfferEdit struct {
	PriceRange    string
	PeopleRange   string
	LocationRange string
	Description   string
	CateringType  string
}

func (uc *PublicationUseCase) UpdateOffer(ctx context.Context, actor *entity.User, id string, edit OfferEdit) error {
	offer, err := uc.offerRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := requireOwnerOrAdmin(actor, offer.AuthorID); err != nil {
		return err
	}

	// Partial merge: absent fields stay untouched, and authorId and
	// status never travel through a field edit.
	fields := map[string]interface{}{}
	if edit.PriceRange != "" {
		fields["priceRange"] = edit.PriceRange
	}
	if edit.PeopleRange != "" {
		fields["peopleRange"] = edit.PeopleRange
	}
	if edit.LocationRange != "" {
		fields["locationRange"] = edit.LocationRange
	}
	if edit.Description != "" {
		fields["description"] = edit.Description
	}
	if edit.CateringType != "" {
		fields["cateringType"] = edit.CateringType
	}
	if len(fields) == 0 {
		return nil
	}

	return uc.offerRepo.UpdateFields(ctx, id, fields)
}

type RequestEdit struct {
	PriceRange   string
	PeopleCount  int
	Services     []string
	CateringType string
	Location     string
	EventDate    string
	Notes        string
}

func (uc *PublicationUseCase) UpdateRequest(ctx context.Context, actor *entity.User, id string, edit RequestEdit) error {
	request, err := uc.requestRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := requireOwnerOrAdmin(actor, request.AuthorID); err != nil {
		return err
	}

	fields := map[string]interface{}{}
	if edit.PriceRange != "" {
		fields["priceRange"] = edit.PriceRange
	}
	if edit.PeopleCount > 0 {
		fields["peopleCount"] = edit.PeopleCount
	}
	if edit.Services != nil {
		fields["services"] = edit.Services
	}
	if edit.CateringType != "" {
		fields["cateringType"] = edit.CateringType
	}
	if edit.Location != "" {
		fields["location"] = edit.Location
	}
	if edit.EventDate != "" {
		fields["eventDate"] = edit.EventDate
	}
	if edit.Notes != "" {
		fields["notes"] = edit.Notes
	}
	if len(fields) == 0 {
		return nil
	}

	return uc.requestRepo.UpdateFields(ctx, id, fields)
}

// UpdateOfferStatus merges the new status and, when the actor is not the
// author, notifies the author through the inbox. Marking FINISHED as a
// non-author returns a review prompt pairing the actor (client side) with
// the offer's author (company side).
func (uc *PublicationUseCase) UpdateOfferStatus(ctx context.Context, actor *entity.User, id, newStatus string) (*entity.ReviewPrompt, error) {
	if !entity.ValidStatus(newStatus) {
		return nil, errors.BadRequest("Unknown publication status", nil)
	}

	offer, err := uc.offerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := uc.offerRepo.UpdateStatus(ctx, id, newStatus); err != nil {
		return nil, err
	}

	if actor.ID != offer.AuthorID {
		err := uc.inboxUc.NotifyStatusChange(ctx, StatusChangeInput{
			PublicationID:    offer.ID,
			PublicationTitle: offer.Title(),
			PublicationType:  entity.PublicationOffer,
			Status:           newStatus,
			ActorID:          actor.ID,
			ActorName:        actor.PublicName(),
			RecipientID:      offer.AuthorID,
			RecipientName:    offer.AuthorName,
		})
		if err != nil {
			logger.Warn("Status-change notification failed for offer %s: %v", id, err)
		}
	}

	if newStatus == entity.StatusFinished && actor.ID != offer.AuthorID {
		return &entity.ReviewPrompt{
			ClientID:    actor.ID,
			ClientName:  actor.PublicName(),
			CompanyID:   offer.AuthorID,
			CompanyName: offer.AuthorName,
			Subject:     "Proposal finished",
		}, nil
	}

	return nil, nil
}

func (uc *PublicationUseCase) UpdateRequestStatus(ctx context.Context, actor *entity.User, id, newStatus string) (*entity.ReviewPrompt, error) {
	if !entity.ValidStatus(newStatus) {
		return nil, errors.BadRequest("Unknown publication status", nil)
	}

	request, err := uc.requestRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := uc.requestRepo.UpdateStatus(ctx, id, newStatus); err != nil {
		return nil, err
	}

	if actor.ID != request.AuthorID {
		err := uc.inboxUc.NotifyStatusChange(ctx, StatusChangeInput{
			PublicationID:    request.ID,
			PublicationTitle: request.Title(),
			PublicationType:  entity.PublicationRequest,
			Status:           newStatus,
			ActorID:          actor.ID,
			ActorName:        actor.PublicName(),
			RecipientID:      request.AuthorID,
			RecipientName:    request.AuthorName,
		})
		if err != nil {
			logger.Warn("Status-change notification failed for request %s: %v", id, err)
		}
	}

	// On a request the acting company finishes the client's posting, so
	// the sides swap relative to the offer case.
	if newStatus == entity.StatusFinished && actor.ID != request.AuthorID {
		return &entity.ReviewPrompt{
			ClientID:    request.AuthorID,
			ClientName:  request.AuthorName,
			CompanyID:   actor.ID,
			CompanyName: actor.PublicName(),
			Subject:     "Request finished",
		}, nil
	}

	return nil, nil
}

func (uc *PublicationUseCase) DeleteOffer(ctx context.Context, actor *entity.User, id string) error {
	offer, err := uc.offerRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := requireOwnerOrAdmin(actor, offer.AuthorID); err != nil {
		return err
	}
	return uc.offerRepo.Delete(ctx, id)
}

func (uc *PublicationUseCase) DeleteRequest(ctx context.Context, actor *entity.User, id string) error {
	request, err := uc.requestRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := requireOwnerOrAdmin(actor, request.AuthorID); err != nil {
		return err
	}
	return uc.requestRepo.Delete(ctx, id)
}

func (uc *PublicationUseCase) resolveAuthor(ctx context.Context, actor *entity.User, authorID string) (*entity.User, error) {
	if authorID == "" || authorID == actor.ID {
		return actor, nil
	}
	if actor.Role != entity.RoleAdmin {
		return nil, errors.Forbidden("Only admins can publish on behalf of another user", nil)
	}
	return uc.userRepo.GetByID(ctx, authorID)
}

func requireOwnerOrAdmin(actor *entity.User, authorID string) error {
	if actor.ID == authorID || actor.Role == entity.RoleAdmin {
		return nil
	}
	return errors.Forbidden("Only the author or an admin can modify this publication", nil)
}
