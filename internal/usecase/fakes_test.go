package usecase

import (
	"context"
	"fmt"

	"caterlink/internal/domain/entity"
	"caterlink/internal/domain/repository"
	"caterlink/pkg/errors"
)

type fakeOfferRepo struct {
	offers   map[string]*entity.Offer
	statuses map[string]string
}

func newFakeOfferRepo(offers ...*entity.Offer) *fakeOfferRepo {
	repo := &fakeOfferRepo{
		offers:   make(map[string]*entity.Offer),
		statuses: make(map[string]string),
	}
	for _, o := range offers {
		repo.offers[o.ID] = o
	}
	return repo
}

func (r *fakeOfferRepo) Create(ctx context.Context, offer *entity.Offer) error {
	if offer.ID == "" {
		offer.ID = fmt.Sprintf("offer-%d", len(r.offers)+1)
	}
	offer.Status = entity.StatusActive
	r.offers[offer.ID] = offer
	return nil
}

func (r *fakeOfferRepo) GetByID(ctx context.Context, id string) (*entity.Offer, error) {
	offer, ok := r.offers[id]
	if !ok {
		return nil, errors.NotFound("Offer", nil)
	}
	return offer, nil
}

func (r *fakeOfferRepo) List(ctx context.Context, limit, offset int) ([]*entity.Offer, int64, error) {
	var out []*entity.Offer
	for _, o := range r.offers {
		out = append(out, o)
	}
	return out, int64(len(out)), nil
}

func (r *fakeOfferRepo) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	if _, ok := r.offers[id]; !ok {
		return errors.NotFound("Offer", nil)
	}
	return nil
}

func (r *fakeOfferRepo) UpdateStatus(ctx context.Context, id string, status string) error {
	offer, ok := r.offers[id]
	if !ok {
		return errors.NotFound("Offer", nil)
	}
	offer.Status = status
	r.statuses[id] = status
	return nil
}

func (r *fakeOfferRepo) Delete(ctx context.Context, id string) error {
	delete(r.offers, id)
	return nil
}

func (r *fakeOfferRepo) Watch(ctx context.Context) (<-chan []*entity.Offer, error) {
	ch := make(chan []*entity.Offer)
	close(ch)
	return ch, nil
}

type fakeRequestRepo struct {
	requests map[string]*entity.Request
	statuses map[string]string
}

func newFakeRequestRepo(requests ...*entity.Request) *fakeRequestRepo {
	repo := &fakeRequestRepo{
		requests: make(map[string]*entity.Request),
		statuses: make(map[string]string),
	}
	for _, req := range requests {
		repo.requests[req.ID] = req
	}
	return repo
}

func (r *fakeRequestRepo) Create(ctx context.Context, request *entity.Request) error {
	if request.ID == "" {
		request.ID = fmt.Sprintf("request-%d", len(r.requests)+1)
	}
	request.Status = entity.StatusActive
	r.requests[request.ID] = request
	return nil
}

func (r *fakeRequestRepo) GetByID(ctx context.Context, id string) (*entity.Request, error) {
	request, ok := r.requests[id]
	if !ok {
		return nil, errors.NotFound("Request", nil)
	}
	return request, nil
}

func (r *fakeRequestRepo) List(ctx context.Context, limit, offset int) ([]*entity.Request, int64, error) {
	var out []*entity.Request
	for _, req := range r.requests {
		out = append(out, req)
	}
	return out, int64(len(out)), nil
}

func (r *fakeRequestRepo) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	if _, ok := r.requests[id]; !ok {
		return errors.NotFound("Request", nil)
	}
	return nil
}

func (r *fakeRequestRepo) UpdateStatus(ctx context.Context, id string, status string) error {
	request, ok := r.requests[id]
	if !ok {
		return errors.NotFound("Request", nil)
	}
	request.Status = status
	r.statuses[id] = status
	return nil
}

func (r *fakeRequestRepo) Delete(ctx context.Context, id string) error {
	delete(r.requests, id)
	return nil
}

func (r *fakeRequestRepo) Watch(ctx context.Context) (<-chan []*entity.Request, error) {
	ch := make(chan []*entity.Request)
	close(ch)
	return ch, nil
}

type fakeInboxRepo struct {
	entries []*entity.InboxEntry
}

func (r *fakeInboxRepo) Append(ctx context.Context, entry *entity.InboxEntry) error {
	if entry.ID == "" {
		entry.ID = fmt.Sprintf("entry-%d", len(r.entries)+1)
	}
	r.entries = append(r.entries, entry)
	return nil
}

func (r *fakeInboxRepo) GetByID(ctx context.Context, id string) (*entity.InboxEntry, error) {
	for _, e := range r.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, errors.NotFound("Inbox entry", nil)
}

func (r *fakeInboxRepo) ListByParticipant(ctx context.Context, userID string) ([]*entity.InboxEntry, error) {
	var out []*entity.InboxEntry
	for _, e := range r.entries {
		for _, p := range e.Participants {
			if p == userID {
				out = append(out, e)
				break
			}
		}
	}
	return out, nil
}

func (r *fakeInboxRepo) Resolve(ctx context.Context, entryID, decision string) (*entity.InboxEntry, error) {
	entry, err := r.GetByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if entry.ExecutionStatus != entity.ExecutionPending {
		return nil, errors.Conflict("Execution request already resolved")
	}
	entry.ExecutionStatus = decision
	entry.Body = entity.ExecutionResolutionBody(entry.RecipientName, entry.PublicationTitle, decision)

	response := &entity.InboxEntry{
		EntryType:        entity.EntryExecutionResponse,
		Body:             entry.Body,
		ActorID:          entry.RecipientID,
		ActorName:        entry.RecipientName,
		RecipientID:      entry.ActorID,
		RecipientName:    entry.ActorName,
		PublicationID:    entry.PublicationID,
		PublicationTitle: entry.PublicationTitle,
		PublicationType:  entry.PublicationType,
		Participants:     entity.ParticipantsOf(entry.ActorID, entry.RecipientID),
	}
	r.Append(ctx, response)

	return entry, nil
}

func (r *fakeInboxRepo) Watch(ctx context.Context, userID string) (<-chan []*entity.InboxEntry, error) {
	ch := make(chan []*entity.InboxEntry)
	close(ch)
	return ch, nil
}

func (r *fakeInboxRepo) lastEntry() *entity.InboxEntry {
	if len(r.entries) == 0 {
		return nil
	}
	return r.entries[len(r.entries)-1]
}

type fakePreferenceRepo struct {
	prefs map[string]*entity.Preferences
}

func newFakePreferenceRepo() *fakePreferenceRepo {
	return &fakePreferenceRepo{prefs: make(map[string]*entity.Preferences)}
}

func (r *fakePreferenceRepo) Get(ctx context.Context, userID string) (*entity.Preferences, error) {
	if p, ok := r.prefs[userID]; ok {
		return p, nil
	}
	return &entity.Preferences{AcceptedOffers: []string{}, AcceptedRequests: []string{}}, nil
}

func (r *fakePreferenceRepo) Toggle(ctx context.Context, userID, field, publicationID string) (bool, error) {
	p, ok := r.prefs[userID]
	if !ok {
		p = &entity.Preferences{}
		r.prefs[userID] = p
	}

	var present bool
	switch field {
	case repository.PreferenceOffers:
		p.AcceptedOffers, present = entity.ToggleMember(p.AcceptedOffers, publicationID)
	case repository.PreferenceRequests:
		p.AcceptedRequests, present = entity.ToggleMember(p.AcceptedRequests, publicationID)
	}
	return present, nil
}

func (r *fakePreferenceRepo) Watch(ctx context.Context, userID string) (<-chan *entity.Preferences, error) {
	ch := make(chan *entity.Preferences)
	close(ch)
	return ch, nil
}

type fakeProfileRepo struct {
	profiles map[string]*entity.PublicProfile
	applied  []repository.ReviewTarget
	pairs    [][2]repository.ReviewTarget
	works    map[string][]entity.PreviousWork
}

func newFakeProfileRepo(profiles ...*entity.PublicProfile) *fakeProfileRepo {
	repo := &fakeProfileRepo{
		profiles: make(map[string]*entity.PublicProfile),
		works:    make(map[string][]entity.PreviousWork),
	}
	for _, p := range profiles {
		repo.profiles[p.ID] = p
	}
	return repo
}

func (r *fakeProfileRepo) GetByID(ctx context.Context, id string) (*entity.PublicProfile, error) {
	profile, ok := r.profiles[id]
	if !ok {
		return nil, errors.NotFound("Profile", nil)
	}
	return profile, nil
}

func (r *fakeProfileRepo) List(ctx context.Context) ([]*entity.PublicProfile, error) {
	var out []*entity.PublicProfile
	for _, p := range r.profiles {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeProfileRepo) ApplyReview(ctx context.Context, review repository.ReviewTarget) error {
	r.applied = append(r.applied, review)
	return nil
}

func (r *fakeProfileRepo) ApplyReviewPair(ctx context.Context, first, second repository.ReviewTarget) error {
	r.pairs = append(r.pairs, [2]repository.ReviewTarget{first, second})
	return nil
}

func (r *fakeProfileRepo) AppendPreviousWork(ctx context.Context, userID string, work entity.PreviousWork) error {
	r.works[userID] = append(r.works[userID], work)
	return nil
}

func (r *fakeProfileRepo) Watch(ctx context.Context) (<-chan []*entity.PublicProfile, error) {
	ch := make(chan []*entity.PublicProfile)
	close(ch)
	return ch, nil
}

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[string]*entity.User)}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	return user, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *fakeUserRepo) Save(ctx context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) UpdateDescription(ctx context.Context, id, description string) error {
	user, ok := r.users[id]
	if !ok {
		return errors.NotFound("User", nil)
	}
	user.ProfileDescription = description
	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id string) error {
	delete(r.users, id)
	return nil
}
