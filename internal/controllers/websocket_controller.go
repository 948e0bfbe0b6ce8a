package controllers

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	appwebsocket "inventory-system/pkg/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type WebSocketController struct {
	hub    *appwebsocket.Hub
	logger *zap.Logger
}

func NewWebSocketController(hub *appwebsocket.Hub, logger *zap.Logger) *WebSocketController {
	return &WebSocketController{hub: hub, logger: logger}
}

// ServeWs upgrades the connection and subscribes it to live alerts.
func (c *WebSocketController) ServeWs(ctx echo.Context) error {
	conn, err := upgrader.Upgrade(ctx.Response(), ctx.Request(), nil)
	if err != nil {
		c.logger.Error("websocket upgrade failed", zap.Error(err))
		return err
	}

	client := appwebsocket.NewClient(c.hub, conn)
	client.Hub.Register <- client

	go client.WritePump()
	go client.ReadPump()

	c.logger.Info("websocket client connected")
	return nil
}
