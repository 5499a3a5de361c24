package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/danuarta/pos-backend/events"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type EventsController struct {
	Auth Identity
}

func NewEventsController(auth Identity) *EventsController {
	return &EventsController{Auth: auth}
}

// Stream upgrades a dashboard client to a websocket and keeps it
// subscribed to order/payment/shift events until it disconnects. Browsers
// cannot set headers on websocket requests, so the token rides the query
// string.
func (ec *EventsController) Stream(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	claims, err := ec.Auth.Resolve("Bearer " + token)
	if err != nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	events.RegisterClient(ws, claims.Role)

	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			break
		}
	}

	events.UnregisterClient(ws)
}
