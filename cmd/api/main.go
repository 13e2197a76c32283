package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"caterlink/internal/adapter/api"
	"caterlink/internal/adapter/api/handler"
	apimiddleware "caterlink/internal/adapter/api/middleware"
	"caterlink/internal/adapter/api/router"
	"caterlink/internal/adapter/repository"
	"caterlink/internal/infrastructure/firebase"
	"caterlink/internal/infrastructure/storage"
	"caterlink/internal/infrastructure/websocket"
	"caterlink/internal/usecase"
	"caterlink/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opt option.ClientOption
	serviceAccountPath := ""

	// Service account from the environment in production, from a file in
	// local development.
	if serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); serviceAccountJSON != "" {
		log.Printf("Using Firebase service account from environment variable")
		opt = option.WithCredentialsJSON([]byte(serviceAccountJSON))
	} else {
		serviceAccountPath = os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH")
		if serviceAccountPath == "" {
			serviceAccountPath = "./service-account.json"
		}

		if _, err := os.Stat(serviceAccountPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", serviceAccountPath)
		}

		log.Printf("Using Firebase service account from file: %s", serviceAccountPath)
		opt = option.WithCredentialsFile(serviceAccountPath)
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opt)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opt)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	storageClient, err := storage.NewCloudStorageClient(ctx, cfg.StorageBucket, serviceAccountPath)
	if err != nil {
		log.Fatalf("Failed to initialize Cloud Storage: %v", err)
	}
	defer storageClient.Close()

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	offerRepo := repository.NewFirestoreOfferRepository(firestoreClient)
	requestRepo := repository.NewFirestoreRequestRepository(firestoreClient)
	profileRepo := repository.NewFirestoreProfileRepository(firestoreClient)
	preferenceRepo := repository.NewFirestorePreferenceRepository(firestoreClient)
	inboxRepo := repository.NewFirestoreInboxRepository(firestoreClient)

	firebaseAuthClient := firebase.NewFirebaseAuthClient(authClient, cfg.FirebaseApiKey)

	wsManager := websocket.NewManager()
	wsManager.Start(ctx)

	authUseCase := usecase.NewAuthUseCase(userRepo, firebaseAuthClient)
	inboxUseCase := usecase.NewInboxUseCase(inboxRepo)
	publicationUseCase := usecase.NewPublicationUseCase(offerRepo, requestRepo, userRepo, inboxUseCase)
	preferenceUseCase := usecase.NewPreferenceUseCase(preferenceRepo, offerRepo, requestRepo, inboxUseCase)
	profileUseCase := usecase.NewProfileUseCase(profileRepo, userRepo, storageClient)
	userUseCase := usecase.NewUserUseCase(userRepo, profileRepo)
	feedUseCase := usecase.NewFeedUseCase(offerRepo, requestRepo, profileRepo, inboxRepo, preferenceRepo, wsManager)

	if err := feedUseCase.Start(ctx); err != nil {
		log.Fatalf("Failed to start feed: %v", err)
	}

	handler.Setup(authUseCase, publicationUseCase, profileUseCase, inboxUseCase, preferenceUseCase, userUseCase, userRepo)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(authClient)
	adminMiddleware := apimiddleware.NewAdminMiddleware(userRepo)

	feedHandler := handler.NewFeedHandler(wsManager, feedUseCase)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	router.Setup(e, authMiddleware, adminMiddleware)
	router.SetupFeedRouter(e, feedHandler, authMiddleware)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
