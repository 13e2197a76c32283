package usecase

import (
	"context"
	"encoding/json"
	"sync"

	"caterlink/internal/domain/repository"
	"caterlink/internal/infrastructure/websocket"
	"caterlink/pkg/logger"
)

// Frame is one push message on the live feed.
type Frame struct {
	Topic string      `json:"topic"`
	Data  interface{} `json:"data"`
}

const (
	TopicOffers      = "offers"
	TopicRequests    = "requests"
	TopicProfiles    = "profiles"
	TopicInbox       = "inbox"
	TopicPreferences = "preferences"
)

// FeedUseCase pushes collection snapshots to connected WebSocket clients.
// Shared topics (offers, requests, profiles) are broadcast to everyone;
// inbox and preference topics are streamed per user by ServeUser.
type FeedUseCase struct {
	offerRepo   repository.OfferRepository
	requestRepo repository.RequestRepository
	profileRepo repository.ProfileRepository
	inboxRepo   repository.InboxRepository
	prefRepo    repository.PreferenceRepository
	manager     *websocket.Manager

	mutex      sync.RWMutex
	lastFrames map[string][]byte
}

func NewFeedUseCase(
	offerRepo repository.OfferRepository,
	requestRepo repository.RequestRepository,
	profileRepo repository.ProfileRepository,
	inboxRepo repository.InboxRepository,
	prefRepo repository.PreferenceRepository,
	manager *websocket.Manager,
) *FeedUseCase {
	return &FeedUseCase{
		offerRepo:   offerRepo,
		requestRepo: requestRepo,
		profileRepo: profileRepo,
		inboxRepo:   inboxRepo,
		prefRepo:    prefRepo,
		manager:     manager,
		lastFrames:  make(map[string][]byte),
	}
}

// Start subscribes to the shared collections and broadcasts every snapshot.
func (uc *FeedUseCase) Start(ctx context.Context) error {
	offers, err := uc.offerRepo.Watch(ctx)
	if err != nil {
		return err
	}
	requests, err := uc.requestRepo.Watch(ctx)
	if err != nil {
		return err
	}
	profiles, err := uc.profileRepo.Watch(ctx)
	if err != nil {
		return err
	}

	go func() {
		for {
			select {
			case snapshot, ok := <-offers:
				if !ok {
					return
				}
				uc.publish(TopicOffers, snapshot)
			case snapshot, ok := <-requests:
				if !ok {
					return
				}
				uc.publish(TopicRequests, snapshot)
			case snapshot, ok := <-profiles:
				if !ok {
					return
				}
				uc.publish(TopicProfiles, snapshot)
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

func (uc *FeedUseCase) publish(topic string, data interface{}) {
	payload, err := json.Marshal(Frame{Topic: topic, Data: data})
	if err != nil {
		logger.Error("Failed to encode %s frame: %v", topic, err)
		return
	}

	uc.mutex.Lock()
	uc.lastFrames[topic] = payload
	uc.mutex.Unlock()

	uc.manager.Broadcast(payload)
}

// SendCached replays the last known frame of each shared topic to a client
// that just connected, so it does not wait for the next change.
func (uc *FeedUseCase) SendCached(userID string) {
	uc.mutex.RLock()
	defer uc.mutex.RUnlock()

	for _, topic := range []string{TopicOffers, TopicRequests, TopicProfiles} {
		if payload, ok := uc.lastFrames[topic]; ok {
			uc.manager.SendToUser(userID, payload)
		}
	}
}

// ServeUser streams the caller's inbox and preferences until ctx is done.
func (uc *FeedUseCase) ServeUser(ctx context.Context, userID string) error {
	inbox, err := uc.inboxRepo.Watch(ctx, userID)
	if err != nil {
		return err
	}
	prefs, err := uc.prefRepo.Watch(ctx, userID)
	if err != nil {
		return err
	}

	go func() {
		for {
			select {
			case snapshot, ok := <-inbox:
				if !ok {
					return
				}
				uc.sendTo(userID, TopicInbox, snapshot)
			case snapshot, ok := <-prefs:
				if !ok {
					return
				}
				uc.sendTo(userID, TopicPreferences, snapshot)
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

func (uc *FeedUseCase) sendTo(userID, topic string, data interface{}) {
	payload, err := json.Marshal(Frame{Topic: topic, Data: data})
	if err != nil {
		logger.Error("Failed to encode %s frame: %v", topic, err)
		return
	}
	uc.manager.SendToUser(userID, payload)
}
