package events

import (
	"sync"

	"github.com/gorilla/websocket"

	"github.com/danuarta/pos-backend/models"
	"github.com/danuarta/pos-backend/utils"
)

// Event types pushed to connected dashboards.
const (
	EventOrderCreated   = "order_created"
	EventOrderClosed    = "order_closed"
	EventOrderCancelled = "order_cancelled"
	EventItemAdded      = "item_added"
	EventItemVoided     = "item_voided"
	EventPaymentTaken   = "payment_taken"
	EventShiftOpened    = "shift_opened"
	EventShiftClosed    = "shift_closed"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Hub holds every connected dashboard client keyed by role.
type Hub struct {
	clients map[*websocket.Conn]string
	mutex   sync.Mutex
}

var hub = Hub{
	clients: make(map[*websocket.Conn]string),
}

func RegisterClient(conn *websocket.Conn, role string) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	hub.clients[conn] = role
}

func UnregisterClient(conn *websocket.Conn) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	delete(hub.clients, conn)
	conn.Close()
}

func BroadcastOrder(event string, order *models.Order) {
	Broadcast(Message{Event: event, Data: order})
}

func BroadcastPayment(payment *models.Payment) {
	Broadcast(Message{Event: EventPaymentTaken, Data: payment})
}

func BroadcastShift(event string, shift *models.Shift) {
	Broadcast(Message{Event: event, Data: shift})
}

// Broadcast sends a message to every connected client. Dead connections
// are dropped on write failure.
func Broadcast(msg Message) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()

	for conn := range hub.clients {
		if err := conn.WriteJSON(msg); err != nil {
			if utils.ErrorLogger != nil {
				utils.ErrorLogger.Printf("ws write failed, dropping client: %v", err)
			}
			delete(hub.clients, conn)
			conn.Close()
		}
	}
}
