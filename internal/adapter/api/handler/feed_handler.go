package handler

import (
	"context"
	"net/http"

	gorillaws "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	ws "caterlink/internal/infrastructure/websocket"
	"caterlink/internal/usecase"
	"caterlink/pkg/errors"
)

// FeedHandler upgrades authenticated clients onto the live feed.
type FeedHandler struct {
	wsManager   *ws.Manager
	feedUseCase *usecase.FeedUseCase
}

var upgrader = gorillaws.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // You should restrict this in production
	},
}

func NewFeedHandler(wsManager *ws.Manager, feedUseCase *usecase.FeedUseCase) *FeedHandler {
	return &FeedHandler{
		wsManager:   wsManager,
		feedUseCase: feedUseCase,
	}
}

func (h *FeedHandler) HandleFeed(c echo.Context) error {
	userID, ok := c.Get("uid").(string)
	if !ok || userID == "" {
		return errors.Unauthorized("Authentication required", nil)
	}

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return errors.Internal("Failed to upgrade connection", err)
	}

	client := &ws.Client{
		UserID: userID,
		Conn:   conn,
		Send:   make(chan []byte, 256),
	}

	h.wsManager.Register <- client

	// The per-user watches must outlive this request but not the
	// connection, so their context is cancelled when the read pump exits.
	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		client.ReadPump(h.wsManager)
		cancel()
	}()
	go client.WritePump()

	// Replay the shared snapshots, then stream the caller's private topics.
	h.feedUseCase.SendCached(userID)
	if err := h.feedUseCase.ServeUser(ctx, userID); err != nil {
		cancel()
		return err
	}

	return nil
}
