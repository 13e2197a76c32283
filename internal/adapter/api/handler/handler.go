package handler

import (
	"caterlink/internal/domain/repository"
	"caterlink/internal/usecase"
)

var (
	authHandler       *AuthHandler
	offerHandler      *OfferHandler
	requestHandler    *RequestHandler
	profileHandler    *ProfileHandler
	inboxHandler      *InboxHandler
	preferenceHandler *PreferenceHandler
	userHandler       *UserHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	publicationUseCase *usecase.PublicationUseCase,
	profileUseCase *usecase.ProfileUseCase,
	inboxUseCase *usecase.InboxUseCase,
	preferenceUseCase *usecase.PreferenceUseCase,
	userUseCase *usecase.UserUseCase,
	userRepo repository.UserRepository,
) {
	authHandler = NewAuthHandler(authUseCase)
	offerHandler = NewOfferHandler(publicationUseCase, userRepo)
	requestHandler = NewRequestHandler(publicationUseCase, userRepo)
	profileHandler = NewProfileHandler(profileUseCase, userRepo)
	inboxHandler = NewInboxHandler(inboxUseCase, userRepo)
	preferenceHandler = NewPreferenceHandler(preferenceUseCase, userRepo)
	userHandler = NewUserHandler(userUseCase)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetOfferHandler() *OfferHandler {
	return offerHandler
}

func GetRequestHandler() *RequestHandler {
	return requestHandler
}

func GetProfileHandler() *ProfileHandler {
	return profileHandler
}

func GetInboxHandler() *InboxHandler {
	return inboxHandler
}

func GetPreferenceHandler() *PreferenceHandler {
	return preferenceHandler
}

func GetUserHandler() *UserHandler {
	return userHandler
}
